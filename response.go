package atari800ai

// reply is the status envelope every response carries. Responses to
// data-bearing commands embed it alongside their own fields.
type reply struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// ok returns true if the response reports success.
func (r reply) ok() bool {
	return r.Status == StatusOK
}

// RunResult reports the outcome of a run command. The emulator replies once
// the last requested frame has completed.
type RunResult struct {
	FramesRun int `json:"frames_run"`
}

// StepResult reports the outcome of a step command, with the program counter
// after the last executed instruction.
type StepResult struct {
	PC uint16 `json:"pc"`
}

// CPUState is a snapshot of the 6502 registers. The flag fields are the bits
// of P decoded to 0 or 1, exactly as the emulator reports them.
type CPUState struct {
	PC uint16 `json:"pc"`
	A  uint8  `json:"a"`
	X  uint8  `json:"x"`
	Y  uint8  `json:"y"`
	SP uint8  `json:"sp"`
	P  uint8  `json:"p"`
	N  int    `json:"n"`
	V  int    `json:"v"`
	B  int    `json:"b"`
	D  int    `json:"d"`
	I  int    `json:"i"`
	Z  int    `json:"z"`
	C  int    `json:"c"`
}

// ANTICState is a snapshot of the ANTIC display chip registers, plus the
// current scan position (YPos counts scanlines, XPos color clocks).
type ANTICState struct {
	DMACTL uint8  `json:"dmactl"`
	CHACTL uint8  `json:"chactl"`
	DLIST  uint16 `json:"dlist"`
	HSCROL uint8  `json:"hscrol"`
	VSCROL uint8  `json:"vscrol"`
	PMBASE uint8  `json:"pmbase"`
	CHBASE uint8  `json:"chbase"`
	NMIEN  uint8  `json:"nmien"`
	NMIST  uint8  `json:"nmist"`
	YPos   int    `json:"ypos"`
	XPos   int    `json:"xpos"`
}

// GTIAState is a snapshot of the GTIA graphics chip registers.
type GTIAState struct {
	HPOSP0 uint8 `json:"hposp0"`
	HPOSP1 uint8 `json:"hposp1"`
	HPOSP2 uint8 `json:"hposp2"`
	HPOSP3 uint8 `json:"hposp3"`
	HPOSM0 uint8 `json:"hposm0"`
	HPOSM1 uint8 `json:"hposm1"`
	HPOSM2 uint8 `json:"hposm2"`
	HPOSM3 uint8 `json:"hposm3"`
	SIZEP0 uint8 `json:"sizep0"`
	SIZEP1 uint8 `json:"sizep1"`
	SIZEP2 uint8 `json:"sizep2"`
	SIZEP3 uint8 `json:"sizep3"`
	SIZEM  uint8 `json:"sizem"`
	GRAFP0 uint8 `json:"grafp0"`
	GRAFP1 uint8 `json:"grafp1"`
	GRAFP2 uint8 `json:"grafp2"`
	GRAFP3 uint8 `json:"grafp3"`
	GRAFM  uint8 `json:"grafm"`
	COLPM0 uint8 `json:"colpm0"`
	COLPM1 uint8 `json:"colpm1"`
	COLPM2 uint8 `json:"colpm2"`
	COLPM3 uint8 `json:"colpm3"`
	COLPF0 uint8 `json:"colpf0"`
	COLPF1 uint8 `json:"colpf1"`
	COLPF2 uint8 `json:"colpf2"`
	COLPF3 uint8 `json:"colpf3"`
	COLBK  uint8 `json:"colbk"`
	PRIOR  uint8 `json:"prior"`
	GRACTL uint8 `json:"gractl"`
	TRIG0  uint8 `json:"trig0"`
	TRIG1  uint8 `json:"trig1"`
	TRIG2  uint8 `json:"trig2"`
	TRIG3  uint8 `json:"trig3"`
}

// POKEYState is a snapshot of the POKEY sound and keyboard chip registers.
type POKEYState struct {
	AUDF1  uint8 `json:"audf1"`
	AUDC1  uint8 `json:"audc1"`
	AUDF2  uint8 `json:"audf2"`
	AUDC2  uint8 `json:"audc2"`
	AUDF3  uint8 `json:"audf3"`
	AUDC3  uint8 `json:"audc3"`
	AUDF4  uint8 `json:"audf4"`
	AUDC4  uint8 `json:"audc4"`
	AUDCTL uint8 `json:"audctl"`
	KBCODE uint8 `json:"kbcode"`
	IRQEN  uint8 `json:"irqen"`
	IRQST  uint8 `json:"irqst"`
	SKSTAT uint8 `json:"skstat"`
	SKCTL  uint8 `json:"skctl"`
	POT0   uint8 `json:"pot0"`
	POT1   uint8 `json:"pot1"`
	POT2   uint8 `json:"pot2"`
	POT3   uint8 `json:"pot3"`
	POT4   uint8 `json:"pot4"`
	POT5   uint8 `json:"pot5"`
	POT6   uint8 `json:"pot6"`
	POT7   uint8 `json:"pot7"`
}

// PIAState is a snapshot of the PIA chip registers and port input latches.
type PIAState struct {
	PORTA      uint8 `json:"porta"`
	PORTB      uint8 `json:"portb"`
	PACTL      uint8 `json:"pactl"`
	PBCTL      uint8 `json:"pbctl"`
	PortInput0 uint8 `json:"port_input0"`
	PortInput1 uint8 `json:"port_input1"`
}

// DebugOutput holds one drain of the debug output buffer: the raw bytes and
// the emulator's printable rendering of them (non-printables become '.').
type DebugOutput struct {
	Data  []byte
	ASCII string
}

// Wire shapes of the data-bearing responses.

type runReply struct {
	reply
	RunResult
}

type stepReply struct {
	reply
	StepResult
}

type screenshotReply struct {
	reply
	Path string `json:"path"`
}

type screenASCIIReply struct {
	reply
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Data   []string `json:"data"`
}

type screenRawReply struct {
	reply
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   string `json:"data"`
}

type peekReply struct {
	reply
	Addr uint16 `json:"addr"`
	Data []int  `json:"data"`
}

type dumpReply struct {
	reply
	Bytes int `json:"bytes"`
}

type cpuReply struct {
	reply
	CPUState
}

type anticReply struct {
	reply
	ANTICState
}

type gtiaReply struct {
	reply
	GTIAState
}

type pokeyReply struct {
	reply
	POKEYState
}

type piaReply struct {
	reply
	PIAState
}

type debugReadReply struct {
	reply
	Data  []int  `json:"data"`
	ASCII string `json:"ascii"`
}
