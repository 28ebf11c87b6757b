package atari800ai

import (
	"errors"
	"fmt"
)

// Sentinel errors for the AI protocol.
var (
	// ErrNotConnected indicates an operation was attempted without a connection.
	ErrNotConnected = errors.New("not connected to emulator")

	// ErrAlreadyConnected indicates Connect was called while already connected.
	ErrAlreadyConnected = errors.New("already connected")

	// ErrConnectionClosed indicates the emulator closed the socket before a
	// full frame could be read or written.
	ErrConnectionClosed = errors.New("connection closed")

	// ErrMalformedHeader indicates a length prefix that is not a valid decimal.
	ErrMalformedHeader = errors.New("malformed length header")

	// ErrMalformedResponse indicates a response body that could not be decoded.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrVerificationFailed indicates the connect-time ping was not answered
	// with an ok status. The socket exists and accepts connections, but
	// whatever is listening does not speak the AI protocol (or the emulator
	// is wedged).
	ErrVerificationFailed = errors.New("emulator did not answer ping")

	// ErrTimeout indicates WaitForEmulator gave up before the emulator
	// became available.
	ErrTimeout = errors.New("timed out waiting for emulator")
)

// ConnectionError represents a connection-related error.
type ConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("connection failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("connection failed: %s", e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a new connection error.
func NewConnectionError(message string, cause error) error {
	return &ConnectionError{Message: message, Cause: cause}
}

// CommandError represents a command the emulator answered with an error
// status. Command holds the wire name of the command, Msg the emulator's
// message, if any.
type CommandError struct {
	Command string
	Msg     string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s failed", e.Command)
	}
	return fmt.Sprintf("%s failed: %s", e.Command, e.Msg)
}

// NewCommandError creates a new command error.
func NewCommandError(command, msg string) error {
	return &CommandError{Command: command, Msg: msg}
}
