package atari800ai

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
)

// encodeFrame returns the wire encoding of body: its byte length in ASCII
// decimal, a newline, then the body itself.
func encodeFrame(body []byte) []byte {
	frame := make([]byte, 0, len(body)+8)
	frame = strconv.AppendInt(frame, int64(len(body)), 10)
	frame = append(frame, '\n')
	return append(frame, body...)
}

// writeFrame writes body to w as a single framed message.
func writeFrame(w io.Writer, body []byte) error {
	if _, err := w.Write(encodeFrame(body)); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionClosed, err)
	}
	return nil
}

// readLength reads the decimal length header one byte at a time, up to the
// newline terminator. A byte that is neither a digit nor the terminator
// makes the header malformed; end of stream before the terminator means the
// peer closed the connection.
func readLength(r io.ByteReader) (int, error) {
	length := 0
	digits := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: reading length header: %v", ErrConnectionClosed, err)
		}
		if b == '\n' {
			if digits == 0 {
				return 0, fmt.Errorf("%w: empty length header", ErrMalformedHeader)
			}
			return length, nil
		}
		if b < '0' || b > '9' {
			return 0, fmt.Errorf("%w: unexpected byte %q in length header", ErrMalformedHeader, b)
		}
		if length > (math.MaxInt-9)/10 {
			return 0, fmt.Errorf("%w: length header overflows", ErrMalformedHeader)
		}
		length = length*10 + int(b-'0')
		digits++
	}
}

// readBody reads exactly length body bytes, accumulating across partial
// reads. A stream that ends short of length bytes is a closed connection.
func readBody(r io.Reader, length int) ([]byte, error) {
	body := make([]byte, length)
	n, err := io.ReadFull(r, body)
	if err != nil {
		return nil, fmt.Errorf("%w: body truncated at %d of %d bytes", ErrConnectionClosed, n, length)
	}
	return body, nil
}

// readFrame reads one complete framed message from r.
func readFrame(r *bufio.Reader) ([]byte, error) {
	length, err := readLength(r)
	if err != nil {
		return nil, err
	}
	return readBody(r, length)
}
