package atari800ai

import "unicode"

// releaseSettleFrames is run after each key release during TypeString so
// the OS keyboard scan observes the key going up before the next press.
const releaseSettleFrames = 2

// KeyCode is an Atari internal key code as understood by the emulated
// keyboard controller. These are hardware scan codes, not ASCII.
type KeyCode int

// Key codes for the keys the typing helpers can reach.
const (
	// KeyNone means no key held; sending it releases the keyboard.
	KeyNone KeyCode = -1

	KeyA KeyCode = 63
	KeyB KeyCode = 21
	KeyC KeyCode = 18
	KeyD KeyCode = 58
	KeyE KeyCode = 42
	KeyF KeyCode = 56
	KeyG KeyCode = 61
	KeyH KeyCode = 57
	KeyI KeyCode = 13
	KeyJ KeyCode = 1
	KeyK KeyCode = 5
	KeyL KeyCode = 0
	KeyM KeyCode = 37
	KeyN KeyCode = 35
	KeyO KeyCode = 8
	KeyP KeyCode = 10
	KeyQ KeyCode = 47
	KeyR KeyCode = 40
	KeyS KeyCode = 62
	KeyT KeyCode = 45
	KeyU KeyCode = 11
	KeyV KeyCode = 16
	KeyW KeyCode = 46
	KeyX KeyCode = 22
	KeyY KeyCode = 43
	KeyZ KeyCode = 23

	Key0 KeyCode = 50
	Key1 KeyCode = 31
	Key2 KeyCode = 30
	Key3 KeyCode = 26
	Key4 KeyCode = 24
	Key5 KeyCode = 29
	Key6 KeyCode = 27
	Key7 KeyCode = 51
	Key8 KeyCode = 53
	Key9 KeyCode = 48

	KeySpace     KeyCode = 33
	KeyReturn    KeyCode = 12
	KeyEscape    KeyCode = 28
	KeyTab       KeyCode = 44
	KeyBackspace KeyCode = 52
)

// keyCodes maps typeable characters to key codes. The Atari keyboard has
// no lowercase row; letters are stored upper case and callers fold.
var keyCodes = map[rune]KeyCode{
	'A': KeyA, 'B': KeyB, 'C': KeyC, 'D': KeyD,
	'E': KeyE, 'F': KeyF, 'G': KeyG, 'H': KeyH,
	'I': KeyI, 'J': KeyJ, 'K': KeyK, 'L': KeyL,
	'M': KeyM, 'N': KeyN, 'O': KeyO, 'P': KeyP,
	'Q': KeyQ, 'R': KeyR, 'S': KeyS, 'T': KeyT,
	'U': KeyU, 'V': KeyV, 'W': KeyW, 'X': KeyX,
	'Y': KeyY, 'Z': KeyZ,
	'0': Key0, '1': Key1, '2': Key2, '3': Key3,
	'4': Key4, '5': Key5, '6': Key6, '7': Key7,
	'8': Key8, '9': Key9,
	' ': KeySpace, '\n': KeyReturn,
}

// KeyCodeFor returns the key code for a typeable character, folding letters
// to upper case. ok is false for characters with no Atari key code.
func KeyCodeFor(ch rune) (KeyCode, bool) {
	code, ok := keyCodes[unicode.ToUpper(ch)]
	if !ok {
		return KeyNone, false
	}
	return code, true
}

// TypeChar presses the key for a single character. It reports false without
// error when the character has no Atari key code. The key is left held;
// callers run a few frames and then KeyRelease, or use TypeString which
// handles the pacing.
func (c *Client) TypeChar(ch rune) (bool, error) {
	code, ok := KeyCodeFor(ch)
	if !ok {
		return false, nil
	}
	return c.Key(code, false)
}

// TypeString types text one character at a time, pacing each keystroke so
// the emulated OS keyboard handler can see it: the key is held for
// frameDelay frames, released, and emulation runs two more frames before
// the next character. A frameDelay below 1 means DefaultTypeDelay.
// Characters that could not be typed are returned; a nil slice means the
// whole text went through.
func (c *Client) TypeString(text string, frameDelay int) ([]rune, error) {
	if frameDelay < 1 {
		frameDelay = DefaultTypeDelay
	}

	var skipped []rune
	for _, ch := range text {
		ok, err := c.TypeChar(ch)
		if err != nil {
			return skipped, err
		}
		if !ok {
			skipped = append(skipped, ch)
			continue
		}
		if _, err := c.Run(frameDelay); err != nil {
			return skipped, err
		}
		if _, err := c.KeyRelease(); err != nil {
			return skipped, err
		}
		if _, err := c.Run(releaseSettleFrames); err != nil {
			return skipped, err
		}
	}
	return skipped, nil
}
