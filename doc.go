// Package atari800ai provides a Go client for the AI interface of the
// Atari800 emulator, a JSON-over-Unix-socket remote control for driving
// the emulated machine programmatically.
//
// The package is protocol-compatible with the emulator's -ai socket
// while following Go idioms: frame-by-frame execution control, keyboard
// and joystick injection, memory access, and register inspection for the
// 6502 and the custom chips.
//
// # Protocol Overview
//
// The AI protocol is a synchronous request/response protocol. Every
// message, in both directions, is a length-prefixed JSON object:
//
//	<length>\n<body>
//
// where length is the byte count of body in ASCII decimal. A ping looks
// like this on the wire:
//
//	client: 14\n{"cmd":"ping"}
//	server: 28\n{"status":"ok","msg":"pong"}
//
// Requests carry a "cmd" discriminator plus command parameters; replies
// carry "status" ("ok" or "error") plus result fields. There are no
// request identifiers and no unsolicited server messages: each reply
// answers the most recent request.
//
// The emulator pauses when a client connects and advances only under
// client control (Run, Step). It serves one client at a time; a new
// connection displaces the previous one.
//
// # Basic Usage
//
// Create a client and connect to a running emulator:
//
//	client := atari800ai.NewClient()
//	if err := client.Connect(""); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//
//	// Boot a program and run a second of emulated time
//	if ok, err := client.Load("/tmp/game.xex"); err != nil || !ok {
//	    log.Fatal("load failed")
//	}
//	client.Run(60)
//
//	// Type into the running program
//	client.TypeString("RUN\n", 0)
//
// An empty socket path means DefaultSocketPath. Connect verifies the
// emulator with a ping before returning, so a nil error means the
// emulator is alive and answering.
//
// # Waiting and Launching
//
// To start an emulator process and connect once it is ready:
//
//	pid, err := atari800ai.LaunchEmulator("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := atari800ai.WaitForEmulator("", 10*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//
// WaitForEmulator also works against an emulator started by hand with
//
//	atari800 -ai -ai-socket /tmp/atari800_ai.sock
//
// # Reading State
//
// Registers and memory come back as typed snapshots:
//
//	cpu, err := client.CPU()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("PC=$%04X A=$%02X\n", cpu.PC, cpu.A)
//
//	mem, err := client.Peek(0x0600, 16)
//
//	lines, err := client.ScreenASCII()
//	if err == nil {
//	    fmt.Print(atari800ai.FormatScreen(lines))
//	}
//
// # Command Types
//
// The package provides constructor functions for all supported commands:
//
//   - Session: NewPingCommand
//   - Execution: NewLoadCommand, NewRunCommand, NewStepCommand, NewPauseCommand, NewResetCommand
//   - Input: NewKeyCommand, NewKeyReleaseCommand, NewJoystickCommand, NewPaddleCommand, NewConsolCommand
//   - Screen: NewScreenshotCommand, NewScreenASCIICommand, NewScreenRawCommand
//   - Memory: NewPeekCommand, NewPokeCommand, NewDumpCommand
//   - CPU: NewCPUCommand, NewCPUSetCommand
//   - Chips: NewANTICCommand, NewGTIACommand, NewPOKEYCommand, NewPIACommand
//   - Debug: NewDebugEnableCommand, NewDebugReadCommand
//   - State: NewSaveStateCommand, NewLoadStateCommand
//
// Most callers use the Client methods (Run, Peek, Joystick, ...) rather
// than building commands directly.
//
// # Thread Safety
//
// The Client type is safe for concurrent use from multiple goroutines.
// The protocol allows one command in flight per connection, so concurrent
// calls are serialized internally; each call blocks until its reply has
// been read. Disconnect may be called from another goroutine to abort a
// blocked call.
package atari800ai
