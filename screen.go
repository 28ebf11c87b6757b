package atari800ai

import "strings"

// FormatScreen renders lines from ScreenASCII as a bordered block, a
// horizontal rule above and below and each row framed in pipes. The result
// ends with a newline.
func FormatScreen(lines []string) string {
	rule := "+" + strings.Repeat("-", TextColumns) + "+"

	var b strings.Builder
	b.WriteString(rule)
	b.WriteByte('\n')
	for _, line := range lines {
		b.WriteByte('|')
		b.WriteString(line)
		b.WriteByte('|')
		b.WriteByte('\n')
	}
	b.WriteString(rule)
	b.WriteByte('\n')
	return b.String()
}
