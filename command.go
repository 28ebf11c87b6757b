package atari800ai

import (
	"encoding/json"
	"fmt"
)

// CommandType represents the type of AI protocol command.
type CommandType int

const (
	// Connection
	CmdPing CommandType = iota

	// Emulator control
	CmdLoad
	CmdRun
	CmdStep
	CmdPause
	CmdReset

	// Input
	CmdKey
	CmdKeyRelease
	CmdJoystick
	CmdPaddle
	CmdConsol

	// Screen
	CmdScreenshot
	CmdScreenASCII
	CmdScreenRaw

	// Memory
	CmdPeek
	CmdPoke
	CmdDump

	// CPU
	CmdCPU
	CmdCPUSet

	// Chips
	CmdANTIC
	CmdGTIA
	CmdPOKEY
	CmdPIA

	// Debug output port
	CmdDebugEnable
	CmdDebugRead

	// State management
	CmdSaveState
	CmdLoadState
)

// commandNames maps each command type to its wire discriminator.
var commandNames = [...]string{
	CmdPing:        "ping",
	CmdLoad:        "load",
	CmdRun:         "run",
	CmdStep:        "step",
	CmdPause:       "pause",
	CmdReset:       "reset",
	CmdKey:         "key",
	CmdKeyRelease:  "key_release",
	CmdJoystick:    "joystick",
	CmdPaddle:      "paddle",
	CmdConsol:      "consol",
	CmdScreenshot:  "screenshot",
	CmdScreenASCII: "screen_ascii",
	CmdScreenRaw:   "screen_raw",
	CmdPeek:        "peek",
	CmdPoke:        "poke",
	CmdDump:        "dump",
	CmdCPU:         "cpu",
	CmdCPUSet:      "cpu_set",
	CmdANTIC:       "antic",
	CmdGTIA:        "gtia",
	CmdPOKEY:       "pokey",
	CmdPIA:         "pia",
	CmdDebugEnable: "debug_enable",
	CmdDebugRead:   "debug_read",
	CmdSaveState:   "save_state",
	CmdLoadState:   "load_state",
}

// String returns the wire name of the command type.
func (t CommandType) String() string {
	if t >= 0 && int(t) < len(commandNames) {
		return commandNames[t]
	}
	return "unknown"
}

// Direction is a joystick direction as understood by the emulator.
type Direction string

// Joystick directions. The diagonals use the emulator's two-letter codes
// (upper-left, upper-right, lower-left, lower-right).
const (
	DirectionCenter    Direction = "center"
	DirectionUp        Direction = "up"
	DirectionDown      Direction = "down"
	DirectionLeft      Direction = "left"
	DirectionRight     Direction = "right"
	DirectionUpLeft    Direction = "ul"
	DirectionUpRight   Direction = "ur"
	DirectionDownLeft  Direction = "ll"
	DirectionDownRight Direction = "lr"
)

// CPURegisters selects 6502 registers for modification. Only non-nil fields
// are transmitted; the emulator leaves absent registers untouched.
type CPURegisters struct {
	PC *uint16 `json:"pc,omitempty"`
	A  *uint8  `json:"a,omitempty"`
	X  *uint8  `json:"x,omitempty"`
	Y  *uint8  `json:"y,omitempty"`
	SP *uint8  `json:"sp,omitempty"`
}

// Command represents an AI protocol command with its arguments.
// Use the constructor functions (NewPingCommand, NewPeekCommand, etc.)
// to create Command instances.
type Command struct {
	Type CommandType

	// Fields used by various commands (only relevant fields are populated)
	Path      string       // load, screenshot, dump, save_state, load_state
	Count     int          // run frames, step instructions, peek length
	Code      KeyCode      // key
	Shift     bool         // key
	Port      int          // joystick, paddle
	Direction Direction    // joystick
	Fire      bool         // joystick
	Value     int          // paddle
	Start     bool         // consol
	Select    bool         // consol
	Option    bool         // consol
	Addr      uint16       // peek, poke, debug_enable, dump start
	EndAddr   uint16       // dump end
	Data      []byte       // poke
	Registers CPURegisters // cpu_set
}

// Command constructors - these provide a clean API for creating commands.

// NewPingCommand creates a ping command.
func NewPingCommand() Command {
	return Command{Type: CmdPing}
}

// NewLoadCommand creates a command to load a program file (XEX, COM, BAS,
// ATR, CAS, ROM, etc.).
func NewLoadCommand(path string) Command {
	return Command{Type: CmdLoad, Path: path}
}

// NewRunCommand creates a command to run the emulation for the given number
// of frames. If frames is less than 1, a single frame is run.
func NewRunCommand(frames int) Command {
	if frames <= 0 {
		frames = 1
	}
	return Command{Type: CmdRun, Count: frames}
}

// NewStepCommand creates a command to single-step the given number of CPU
// instructions. If instructions is less than 1, a single step is performed.
func NewStepCommand(instructions int) Command {
	if instructions <= 0 {
		instructions = 1
	}
	return Command{Type: CmdStep, Count: instructions}
}

// NewPauseCommand creates a pause command.
func NewPauseCommand() Command {
	return Command{Type: CmdPause}
}

// NewResetCommand creates a command to cold-start the machine.
func NewResetCommand() Command {
	return Command{Type: CmdReset}
}

// NewKeyCommand creates a command to press the key with the given code.
func NewKeyCommand(code KeyCode, shift bool) Command {
	return Command{Type: CmdKey, Code: code, Shift: shift}
}

// NewKeyReleaseCommand creates a command to release all keys.
func NewKeyReleaseCommand() Command {
	return Command{Type: CmdKeyRelease}
}

// NewJoystickCommand creates a command to set the state of the joystick in
// the given port (0-3). An empty direction means centered.
func NewJoystickCommand(port int, direction Direction, fire bool) Command {
	if direction == "" {
		direction = DirectionCenter
	}
	return Command{Type: CmdJoystick, Port: port, Direction: direction, Fire: fire}
}

// NewPaddleCommand creates a command to set the paddle in the given port
// (0-7) to a position between 0 and 228.
func NewPaddleCommand(port, value int) Command {
	return Command{Type: CmdPaddle, Port: port, Value: value}
}

// NewConsolCommand creates a command to set the console switch state
// (START, SELECT, OPTION).
func NewConsolCommand(start, sel, option bool) Command {
	return Command{Type: CmdConsol, Start: start, Select: sel, Option: option}
}

// NewScreenshotCommand creates a command to save a screenshot.
// If path is empty, the emulator picks a path under /tmp.
func NewScreenshotCommand(path string) Command {
	return Command{Type: CmdScreenshot, Path: path}
}

// NewScreenASCIICommand creates a command to read the screen as ASCII art.
func NewScreenASCIICommand() Command {
	return Command{Type: CmdScreenASCII}
}

// NewScreenRawCommand creates a command to read the raw screen buffer.
func NewScreenRawCommand() Command {
	return Command{Type: CmdScreenRaw}
}

// NewPeekCommand creates a command to read length bytes of memory starting
// at addr. If length is less than 1, a single byte is read.
func NewPeekCommand(addr uint16, length int) Command {
	if length <= 0 {
		length = 1
	}
	return Command{Type: CmdPeek, Addr: addr, Count: length}
}

// NewPokeCommand creates a command to write data to memory starting at addr.
func NewPokeCommand(addr uint16, data []byte) Command {
	return Command{Type: CmdPoke, Addr: addr, Data: data}
}

// NewDumpCommand creates a command to dump the memory range [start, end]
// to a file on the emulator's host.
func NewDumpCommand(start, end uint16, path string) Command {
	return Command{Type: CmdDump, Addr: start, EndAddr: end, Path: path}
}

// NewCPUCommand creates a command to read the CPU state.
func NewCPUCommand() Command {
	return Command{Type: CmdCPU}
}

// NewCPUSetCommand creates a command to modify CPU registers. Only the
// non-nil fields of regs are applied.
func NewCPUSetCommand(regs CPURegisters) Command {
	return Command{Type: CmdCPUSet, Registers: regs}
}

// NewANTICCommand creates a command to read the ANTIC chip state.
func NewANTICCommand() Command {
	return Command{Type: CmdANTIC}
}

// NewGTIACommand creates a command to read the GTIA chip state.
func NewGTIACommand() Command {
	return Command{Type: CmdGTIA}
}

// NewPOKEYCommand creates a command to read the POKEY chip state.
func NewPOKEYCommand() Command {
	return Command{Type: CmdPOKEY}
}

// NewPIACommand creates a command to read the PIA chip state.
func NewPIACommand() Command {
	return Command{Type: CmdPIA}
}

// NewDebugEnableCommand creates a command to map the debug output port at
// the given address. Addr 0 means DefaultDebugPort.
func NewDebugEnableCommand(addr uint16) Command {
	if addr == 0 {
		addr = DefaultDebugPort
	}
	return Command{Type: CmdDebugEnable, Addr: addr}
}

// NewDebugReadCommand creates a command to read and clear the debug output
// buffer.
func NewDebugReadCommand() Command {
	return Command{Type: CmdDebugRead}
}

// NewSaveStateCommand creates a command to save the emulator state to a file.
func NewSaveStateCommand(path string) Command {
	return Command{Type: CmdSaveState, Path: path}
}

// NewLoadStateCommand creates a command to load the emulator state from a file.
func NewLoadStateCommand(path string) Command {
	return Command{Type: CmdLoadState, Path: path}
}

// MarshalJSON encodes the command as its wire JSON object. Each command type
// contributes exactly the fields the emulator reads for it, with the cmd
// discriminator first.
func (c Command) MarshalJSON() ([]byte, error) {
	name := c.Type.String()
	switch c.Type {
	case CmdPing, CmdPause, CmdReset, CmdKeyRelease, CmdScreenASCII, CmdScreenRaw,
		CmdCPU, CmdANTIC, CmdGTIA, CmdPOKEY, CmdPIA, CmdDebugRead:
		return json.Marshal(struct {
			Cmd string `json:"cmd"`
		}{name})
	case CmdLoad, CmdSaveState, CmdLoadState:
		return json.Marshal(struct {
			Cmd  string `json:"cmd"`
			Path string `json:"path"`
		}{name, c.Path})
	case CmdRun:
		return json.Marshal(struct {
			Cmd    string `json:"cmd"`
			Frames int    `json:"frames"`
		}{name, c.Count})
	case CmdStep:
		return json.Marshal(struct {
			Cmd          string `json:"cmd"`
			Instructions int    `json:"instructions"`
		}{name, c.Count})
	case CmdKey:
		return json.Marshal(struct {
			Cmd   string  `json:"cmd"`
			Code  KeyCode `json:"code"`
			Shift bool    `json:"shift"`
		}{name, c.Code, c.Shift})
	case CmdJoystick:
		return json.Marshal(struct {
			Cmd       string    `json:"cmd"`
			Port      int       `json:"port"`
			Direction Direction `json:"direction"`
			Fire      bool      `json:"fire"`
		}{name, c.Port, c.Direction, c.Fire})
	case CmdPaddle:
		return json.Marshal(struct {
			Cmd   string `json:"cmd"`
			Port  int    `json:"port"`
			Value int    `json:"value"`
		}{name, c.Port, c.Value})
	case CmdConsol:
		return json.Marshal(struct {
			Cmd    string `json:"cmd"`
			Start  bool   `json:"start"`
			Select bool   `json:"select"`
			Option bool   `json:"option"`
		}{name, c.Start, c.Select, c.Option})
	case CmdScreenshot:
		return json.Marshal(struct {
			Cmd  string `json:"cmd"`
			Path string `json:"path,omitempty"`
		}{name, c.Path})
	case CmdPeek:
		return json.Marshal(struct {
			Cmd  string `json:"cmd"`
			Addr uint16 `json:"addr"`
			Len  int    `json:"len"`
		}{name, c.Addr, c.Count})
	case CmdPoke:
		data := make([]int, len(c.Data))
		for i, b := range c.Data {
			data[i] = int(b)
		}
		return json.Marshal(struct {
			Cmd  string `json:"cmd"`
			Addr uint16 `json:"addr"`
			Data []int  `json:"data"`
		}{name, c.Addr, data})
	case CmdDump:
		return json.Marshal(struct {
			Cmd   string `json:"cmd"`
			Start uint16 `json:"start"`
			End   uint16 `json:"end"`
			Path  string `json:"path"`
		}{name, c.Addr, c.EndAddr, c.Path})
	case CmdCPUSet:
		return json.Marshal(struct {
			Cmd string `json:"cmd"`
			CPURegisters
		}{name, c.Registers})
	case CmdDebugEnable:
		return json.Marshal(struct {
			Cmd  string `json:"cmd"`
			Addr uint16 `json:"addr"`
		}{name, c.Addr})
	default:
		return nil, fmt.Errorf("unknown command type %d", int(c.Type))
	}
}
