package atari800ai

import (
	"encoding/base64"
	"fmt"
)

// Ping checks that the emulator is responding.
func (c *Client) Ping() (bool, error) {
	return c.exchangeOK(NewPingCommand())
}

// Load loads a program file (XEX, ATR, CAS or BAS) into the emulator.
// The path is resolved by the emulator process, not by this client.
func (c *Client) Load(path string) (bool, error) {
	return c.exchangeOK(NewLoadCommand(path))
}

// Run executes the given number of frames and blocks until they have all
// run. A count below 1 runs a single frame.
func (c *Client) Run(frames int) (RunResult, error) {
	var r runReply
	if err := c.exchange(NewRunCommand(frames), &r); err != nil {
		return RunResult{}, err
	}
	if !r.ok() {
		return RunResult{}, NewCommandError(CmdRun.String(), r.Msg)
	}
	return r.RunResult, nil
}

// Step executes the given number of CPU instructions and returns the
// program counter after the last one. A count below 1 steps a single
// instruction.
func (c *Client) Step(instructions int) (StepResult, error) {
	var r stepReply
	if err := c.exchange(NewStepCommand(instructions), &r); err != nil {
		return StepResult{}, err
	}
	if !r.ok() {
		return StepResult{}, NewCommandError(CmdStep.String(), r.Msg)
	}
	return r.StepResult, nil
}

// Pause halts emulation until the next Run or Step.
func (c *Client) Pause() (bool, error) {
	return c.exchangeOK(NewPauseCommand())
}

// Reset cold-starts the emulated machine.
func (c *Client) Reset() (bool, error) {
	return c.exchangeOK(NewResetCommand())
}

// Key presses a key. The key stays down until KeyRelease is called; run a
// few frames in between so the OS keyboard scan sees it.
func (c *Client) Key(code KeyCode, shift bool) (bool, error) {
	return c.exchangeOK(NewKeyCommand(code, shift))
}

// KeyRelease releases the currently pressed key.
func (c *Client) KeyRelease() (bool, error) {
	return c.exchangeOK(NewKeyReleaseCommand())
}

// Joystick points the stick on the given port (0-3) and sets the trigger.
// DirectionCenter releases the stick override and fire false releases the
// trigger override, so console keyboard input reaches the port again.
func (c *Client) Joystick(port int, direction Direction, fire bool) (bool, error) {
	return c.exchangeOK(NewJoystickCommand(port, direction, fire))
}

// Paddle sets the paddle position (0-228) on the given port (0-7).
func (c *Client) Paddle(port, value int) (bool, error) {
	return c.exchangeOK(NewPaddleCommand(port, value))
}

// Consol sets the console keys. The CONSOL lines are active low: false
// presses a key, true releases it.
func (c *Client) Consol(start, sel, option bool) (bool, error) {
	return c.exchangeOK(NewConsolCommand(start, sel, option))
}

// Screenshot saves a PNG screenshot on the emulator's filesystem and
// returns the written path. An empty path lets the emulator pick one under
// /tmp.
func (c *Client) Screenshot(path string) (string, error) {
	var r screenshotReply
	if err := c.exchange(NewScreenshotCommand(path), &r); err != nil {
		return "", err
	}
	if !r.ok() {
		return "", NewCommandError(CmdScreenshot.String(), r.Msg)
	}
	return r.Path, nil
}

// ScreenASCII returns the text-mode screen as TextRows lines of TextColumns
// characters each. Reading the screen does not disturb emulation.
func (c *Client) ScreenASCII() ([]string, error) {
	var r screenASCIIReply
	if err := c.exchange(NewScreenASCIICommand(), &r); err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, NewCommandError(CmdScreenASCII.String(), r.Msg)
	}
	return r.Data, nil
}

// ScreenRaw returns the raw screen buffer, RawScreenWidth*RawScreenHeight
// bytes of Atari color codes, one byte per pixel. Returns nil if the
// emulator sent no pixel data.
func (c *Client) ScreenRaw() ([]byte, error) {
	var r screenRawReply
	if err := c.exchange(NewScreenRawCommand(), &r); err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, NewCommandError(CmdScreenRaw.String(), r.Msg)
	}
	if r.Data == "" {
		return nil, nil
	}
	pixels, err := base64.StdEncoding.DecodeString(r.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 screen data: %v", ErrMalformedResponse, err)
	}
	return pixels, nil
}

// Peek reads memory starting at addr. The emulator caps a single read at
// 256 bytes; longer ranges need multiple calls.
func (c *Client) Peek(addr uint16, length int) ([]byte, error) {
	var r peekReply
	if err := c.exchange(NewPeekCommand(addr, length), &r); err != nil {
		return nil, err
	}
	if !r.ok() {
		return nil, NewCommandError(CmdPeek.String(), r.Msg)
	}
	data := make([]byte, len(r.Data))
	for i, b := range r.Data {
		data[i] = byte(b)
	}
	return data, nil
}

// Poke writes data into memory starting at addr.
func (c *Client) Poke(addr uint16, data []byte) (bool, error) {
	return c.exchangeOK(NewPokeCommand(addr, data))
}

// PokeByte writes a single byte at addr.
func (c *Client) PokeByte(addr uint16, value byte) (bool, error) {
	return c.Poke(addr, []byte{value})
}

// Dump writes the memory range [start, end] to a file on the emulator's
// filesystem and returns the number of bytes written.
func (c *Client) Dump(start, end uint16, path string) (int, error) {
	var r dumpReply
	if err := c.exchange(NewDumpCommand(start, end, path), &r); err != nil {
		return 0, err
	}
	if !r.ok() {
		return 0, NewCommandError(CmdDump.String(), r.Msg)
	}
	return r.Bytes, nil
}

// CPU returns a snapshot of the 6502 registers and decoded status flags.
func (c *Client) CPU() (CPUState, error) {
	var r cpuReply
	if err := c.exchange(NewCPUCommand(), &r); err != nil {
		return CPUState{}, err
	}
	if !r.ok() {
		return CPUState{}, NewCommandError(CmdCPU.String(), r.Msg)
	}
	return r.CPUState, nil
}

// SetCPU writes the registers set in regs. Nil fields are left unchanged
// by the emulator.
func (c *Client) SetCPU(regs CPURegisters) (bool, error) {
	return c.exchangeOK(NewCPUSetCommand(regs))
}

// ANTIC returns a snapshot of the ANTIC display chip registers.
func (c *Client) ANTIC() (ANTICState, error) {
	var r anticReply
	if err := c.exchange(NewANTICCommand(), &r); err != nil {
		return ANTICState{}, err
	}
	if !r.ok() {
		return ANTICState{}, NewCommandError(CmdANTIC.String(), r.Msg)
	}
	return r.ANTICState, nil
}

// GTIA returns a snapshot of the GTIA graphics chip registers.
func (c *Client) GTIA() (GTIAState, error) {
	var r gtiaReply
	if err := c.exchange(NewGTIACommand(), &r); err != nil {
		return GTIAState{}, err
	}
	if !r.ok() {
		return GTIAState{}, NewCommandError(CmdGTIA.String(), r.Msg)
	}
	return r.GTIAState, nil
}

// POKEY returns a snapshot of the POKEY sound and I/O chip registers.
func (c *Client) POKEY() (POKEYState, error) {
	var r pokeyReply
	if err := c.exchange(NewPOKEYCommand(), &r); err != nil {
		return POKEYState{}, err
	}
	if !r.ok() {
		return POKEYState{}, NewCommandError(CmdPOKEY.String(), r.Msg)
	}
	return r.POKEYState, nil
}

// PIA returns a snapshot of the PIA port chip registers.
func (c *Client) PIA() (PIAState, error) {
	var r piaReply
	if err := c.exchange(NewPIACommand(), &r); err != nil {
		return PIAState{}, err
	}
	if !r.ok() {
		return PIAState{}, NewCommandError(CmdPIA.String(), r.Msg)
	}
	return r.PIAState, nil
}

// DebugEnable installs a memory-mapped debug output port at addr. Programs
// running inside the emulator write bytes to that address; DebugRead
// collects them. Addr 0 installs the port at DefaultDebugPort.
func (c *Client) DebugEnable(addr uint16) (bool, error) {
	return c.exchangeOK(NewDebugEnableCommand(addr))
}

// DebugRead drains the debug port buffer. The read is destructive: the
// buffer is cleared, and a second call returns nothing until the emulated
// program writes more.
func (c *Client) DebugRead() (DebugOutput, error) {
	var r debugReadReply
	if err := c.exchange(NewDebugReadCommand(), &r); err != nil {
		return DebugOutput{}, err
	}
	if !r.ok() {
		return DebugOutput{}, NewCommandError(CmdDebugRead.String(), r.Msg)
	}
	data := make([]byte, len(r.Data))
	for i, b := range r.Data {
		data[i] = byte(b)
	}
	return DebugOutput{Data: data, ASCII: r.ASCII}, nil
}

// SaveState saves the full machine state to a file on the emulator's
// filesystem.
func (c *Client) SaveState(path string) (bool, error) {
	return c.exchangeOK(NewSaveStateCommand(path))
}

// LoadState restores machine state from a file on the emulator's
// filesystem.
func (c *Client) LoadState(path string) (bool, error) {
	return c.exchangeOK(NewLoadStateCommand(path))
}
