// Package atari800ai implements the JSON command protocol for controlling
// a running Atari800 emulator through its AI interface socket.
//
// The emulator listens on a Unix domain socket and exchanges length-prefixed
// JSON messages. Every message, in both directions, is framed the same way:
// the body's byte length in ASCII decimal, a newline, then the body.
//
// Protocol Format:
//
//	Request:  <length>\n{"cmd":"<name>", ...arguments}
//	Response: <length>\n{"status":"ok", ...fields}
//	Error:    <length>\n{"status":"error","msg":"<message>"}
//
// Example Session:
//
//	CLI: 14\n{"cmd":"ping"}
//	SRV: 28\n{"status":"ok","msg":"pong"}
//	CLI: 32\n{"cmd":"peek","addr":88,"len":2}
//	SRV: 41\n{"status":"ok","addr":88,"data":[64,156]}
package atari800ai

import "time"

// Protocol constants matching the emulator's AI interface.
const (
	// DefaultSocketPath is where the emulator creates the AI socket unless
	// started with -ai-socket.
	DefaultSocketPath = "/tmp/atari800_ai.sock"

	// StatusOK is the status value of a successful response.
	StatusOK = "ok"

	// StatusError is the status value of a failed response.
	StatusError = "error"

	// MaxCommandSize is the largest command the emulator accepts, in bytes.
	// Larger frames are rejected server-side.
	MaxCommandSize = 64 * 1024

	// MaxResponseSize is the largest response the emulator produces, in bytes.
	MaxResponseSize = 1024 * 1024

	// TextColumns and TextRows are the dimensions of the ASCII screen
	// rendering returned by ScreenASCII.
	TextColumns = 40
	TextRows    = 24

	// RawScreenWidth and RawScreenHeight are the dimensions of the raw
	// screen buffer returned by ScreenRaw. Each byte is an Atari color code.
	RawScreenWidth  = 384
	RawScreenHeight = 240

	// DefaultDebugPort is the memory address the debug output port is mapped
	// to unless DebugEnable is called with a different one.
	DefaultDebugPort uint16 = 0xD7FF

	// DefaultTypeDelay is the number of frames a key is held down by
	// TypeString when no delay is given.
	DefaultTypeDelay = 5

	// DefaultWaitTimeout is how long WaitForEmulator keeps retrying when no
	// timeout is given.
	DefaultWaitTimeout = 10 * time.Second
)
