package atari800ai

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// mockServer is a lightweight stand-in for the emulator's AI socket.
//
// It listens on a Unix domain socket, decodes framed JSON commands, and
// answers through a configurable handler. The handler's return value
// controls the response: a map or struct is marshaled and framed, a []byte
// is written to the socket verbatim (for malformed-wire tests), and nil
// closes the connection without answering.
type mockServer struct {
	// listener is the Unix socket listener accepting client connections.
	listener net.Listener

	// socketPath is the filesystem path of the Unix socket.
	socketPath string

	// handler is called with each decoded command. If nil, a default
	// handler answers ping with pong and everything else with a bare ok.
	handler func(cmd map[string]any) any

	// mu protects connections and commands.
	mu sync.Mutex

	// connections tracks all active client connections for cleanup.
	connections []net.Conn

	// commands records every decoded command in arrival order.
	commands []map[string]any

	// wg tracks all goroutines spawned by the server for clean shutdown.
	wg sync.WaitGroup
}

// startMockServer creates and starts a mock emulator endpoint on a
// temporary Unix socket. The server is automatically cleaned up when the
// test finishes.
func startMockServer(t *testing.T, handler func(cmd map[string]any) any) *mockServer {
	t.Helper()

	// os.MkdirTemp under /tmp instead of t.TempDir(): macOS caps Unix
	// socket paths at 104 bytes, and t.TempDir() routes through
	// /var/folders/... which can exceed that with long test names.
	tmpDir, err := os.MkdirTemp("/tmp", "atari-test-")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })
	socketPath := filepath.Join(tmpDir, "s.sock")

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("failed to create mock server socket: %v", err)
	}

	if handler == nil {
		handler = defaultMockHandler
	}

	ms := &mockServer{
		listener:   listener,
		socketPath: socketPath,
		handler:    handler,
	}

	ms.wg.Add(1)
	go ms.acceptLoop()

	t.Cleanup(func() {
		ms.stop()
	})

	return ms
}

// acceptLoop runs in a goroutine, accepting and handling client connections.
func (ms *mockServer) acceptLoop() {
	defer ms.wg.Done()

	for {
		conn, err := ms.listener.Accept()
		if err != nil {
			// Listener was closed (normal shutdown)
			return
		}

		ms.mu.Lock()
		ms.connections = append(ms.connections, conn)
		ms.mu.Unlock()

		ms.wg.Add(1)
		go ms.handleConnection(conn)
	}
}

// handleConnection reads framed commands from a client and sends responses.
func (ms *mockServer) handleConnection(conn net.Conn) {
	defer ms.wg.Done()

	reader := bufio.NewReader(conn)
	for {
		body, err := readFrame(reader)
		if err != nil {
			return
		}

		var cmd map[string]any
		if err := json.Unmarshal(body, &cmd); err != nil {
			return
		}

		ms.mu.Lock()
		ms.commands = append(ms.commands, cmd)
		ms.mu.Unlock()

		switch resp := ms.handler(cmd).(type) {
		case nil:
			conn.Close()
			return
		case []byte:
			if _, err := conn.Write(resp); err != nil {
				return
			}
		default:
			body, err := json.Marshal(resp)
			if err != nil {
				return
			}
			if err := writeFrame(conn, body); err != nil {
				return
			}
		}
	}
}

// stop gracefully shuts down the mock server.
func (ms *mockServer) stop() {
	// Close the listener first so acceptLoop exits.
	ms.listener.Close()

	// Close all active connections so handleConnection goroutines exit.
	ms.mu.Lock()
	for _, conn := range ms.connections {
		conn.Close()
	}
	ms.connections = nil
	ms.mu.Unlock()

	ms.wg.Wait()

	os.Remove(ms.socketPath)
}

// receivedCommands returns a copy of every command decoded so far, in
// arrival order.
func (ms *mockServer) receivedCommands() []map[string]any {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	out := make([]map[string]any, len(ms.commands))
	copy(out, ms.commands)
	return out
}

// commandNames returns the cmd discriminator of every command received so
// far, in arrival order.
func (ms *mockServer) commandNames() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	names := make([]string, len(ms.commands))
	for i, cmd := range ms.commands {
		names[i], _ = cmd["cmd"].(string)
	}
	return names
}

// defaultMockHandler answers ping with pong, required for Connect's
// verification, and everything else with a bare ok.
func defaultMockHandler(cmd map[string]any) any {
	if cmd["cmd"] == "ping" {
		return map[string]any{"status": "ok", "msg": "pong"}
	}
	return map[string]any{"status": "ok"}
}

// intField reads an integer command parameter. JSON numbers decode as
// float64 in a map.
func intField(cmd map[string]any, key string, def int) int {
	v, ok := cmd[key].(float64)
	if !ok {
		return def
	}
	return int(v)
}

// strField reads a string command parameter, empty if absent.
func strField(cmd map[string]any, key string) string {
	s, _ := cmd[key].(string)
	return s
}

// fakeEmulator mimics the emulator's AI dispatcher closely enough for full
// round-trip tests: a 64 KiB memory image, CPU registers, and a debug
// buffer, with reply shapes matching the real interface.
type fakeEmulator struct {
	mu        sync.Mutex
	mem       [65536]byte
	pc        uint16
	a, x, y   byte
	sp, p     byte
	debugBuf  []byte
	debugPort uint16
}

func newFakeEmulator() *fakeEmulator {
	return &fakeEmulator{
		pc: 0xE477,
		sp: 0xFD,
		p:  0x34,
	}
}

// writeDebug appends bytes as if the emulated program had stored them to
// the debug port.
func (e *fakeEmulator) writeDebug(data []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debugBuf = append(e.debugBuf, data...)
}

// handle answers one decoded command. It is used as a mockServer handler.
func (e *fakeEmulator) handle(cmd map[string]any) any {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch cmd["cmd"] {
	case "ping":
		return map[string]any{"status": "ok", "msg": "pong"}

	case "load":
		if strField(cmd, "path") == "" {
			return map[string]any{"status": "error", "msg": "Failed to load "}
		}
		return map[string]any{"status": "ok"}

	case "run":
		return map[string]any{"status": "ok", "frames_run": 1}

	case "step":
		// Advance deterministically so tests can predict the reported PC.
		e.pc += 2 * uint16(intField(cmd, "instructions", 1))
		return map[string]any{"status": "ok", "pc": e.pc}

	case "pause", "reset", "key", "key_release", "joystick", "paddle",
		"consol", "save_state", "load_state":
		return map[string]any{"status": "ok"}

	case "peek":
		addr := intField(cmd, "addr", 0)
		length := intField(cmd, "len", 1)
		if length > 256 {
			length = 256
		}
		data := make([]int, length)
		for i := range data {
			data[i] = int(e.mem[(addr+i)&0xFFFF])
		}
		return map[string]any{"status": "ok", "addr": addr, "data": data}

	case "poke":
		addr := intField(cmd, "addr", 0)
		arr, _ := cmd["data"].([]any)
		for i, v := range arr {
			if b, ok := v.(float64); ok {
				e.mem[(addr+i)&0xFFFF] = byte(b)
			}
		}
		return map[string]any{"status": "ok"}

	case "dump":
		if strField(cmd, "path") == "" {
			return map[string]any{"status": "error", "msg": "No path specified"}
		}
		start := intField(cmd, "start", 0)
		end := intField(cmd, "end", 0)
		return map[string]any{"status": "ok", "bytes": end - start + 1}

	case "cpu":
		return map[string]any{
			"status": "ok",
			"pc":     e.pc, "a": e.a, "x": e.x, "y": e.y,
			"sp": e.sp, "p": e.p,
			"n": flagBit(e.p, 0x80), "v": flagBit(e.p, 0x40),
			"b": flagBit(e.p, 0x10), "d": flagBit(e.p, 0x08),
			"i": flagBit(e.p, 0x04), "z": flagBit(e.p, 0x02),
			"c": flagBit(e.p, 0x01),
		}

	case "cpu_set":
		// Only registers named in the command change.
		if _, ok := cmd["pc"]; ok {
			e.pc = uint16(intField(cmd, "pc", 0))
		}
		if _, ok := cmd["a"]; ok {
			e.a = byte(intField(cmd, "a", 0))
		}
		if _, ok := cmd["x"]; ok {
			e.x = byte(intField(cmd, "x", 0))
		}
		if _, ok := cmd["y"]; ok {
			e.y = byte(intField(cmd, "y", 0))
		}
		if _, ok := cmd["sp"]; ok {
			e.sp = byte(intField(cmd, "sp", 0))
		}
		return map[string]any{"status": "ok"}

	case "antic":
		return map[string]any{
			"status": "ok",
			"dmactl": 34, "chactl": 2, "dlist": 39968,
			"hscrol": 0, "vscrol": 0, "pmbase": 0, "chbase": 224,
			"nmien": 64, "nmist": 31, "ypos": 103, "xpos": 56,
		}

	case "gtia":
		return map[string]any{
			"status": "ok",
			"hposp0": 0, "hposp1": 0, "hposp2": 0, "hposp3": 0,
			"hposm0": 0, "hposm1": 0, "hposm2": 0, "hposm3": 0,
			"sizep0": 0, "sizep1": 0, "sizep2": 0, "sizep3": 0, "sizem": 0,
			"grafp0": 0, "grafp1": 0, "grafp2": 0, "grafp3": 0, "grafm": 0,
			"colpm0": 0, "colpm1": 0, "colpm2": 0, "colpm3": 0,
			"colpf0": 40, "colpf1": 202, "colpf2": 148, "colpf3": 70,
			"colbk": 0, "prior": 0, "gractl": 0,
			"trig0": 1, "trig1": 1, "trig2": 1, "trig3": 1,
		}

	case "pokey":
		return map[string]any{
			"status": "ok",
			"audf1": 0, "audc1": 0, "audf2": 0, "audc2": 0,
			"audf3": 0, "audc3": 0, "audf4": 0, "audc4": 0,
			"audctl": 0, "kbcode": 255, "irqen": 64, "irqst": 247,
			"skstat": 255, "skctl": 3,
			"pot0": 228, "pot1": 228, "pot2": 228, "pot3": 228,
			"pot4": 228, "pot5": 228, "pot6": 228, "pot7": 228,
		}

	case "pia":
		return map[string]any{
			"status": "ok",
			"porta": 255, "portb": 253, "pactl": 60, "pbctl": 60,
			"port_input0": 255, "port_input1": 255,
		}

	case "screenshot":
		path := strField(cmd, "path")
		if path == "" {
			path = "/tmp/atari800_ai_1756000000.png"
		}
		return map[string]any{"status": "ok", "path": path}

	case "screen_ascii":
		lines := make([]string, TextRows)
		lines[0] = "READY" + strings.Repeat(" ", TextColumns-5)
		for i := 1; i < TextRows; i++ {
			lines[i] = strings.Repeat(" ", TextColumns)
		}
		return map[string]any{
			"status": "ok",
			"width":  TextColumns, "height": TextRows, "data": lines,
		}

	case "screen_raw":
		pixels := make([]byte, RawScreenWidth*RawScreenHeight)
		for i := range pixels {
			pixels[i] = byte(i)
		}
		return map[string]any{
			"status": "ok",
			"width":  RawScreenWidth, "height": RawScreenHeight,
			"data": base64.StdEncoding.EncodeToString(pixels),
		}

	case "debug_enable":
		e.debugPort = uint16(intField(cmd, "addr", 0xD7FF))
		return map[string]any{"status": "ok"}

	case "debug_read":
		data := make([]int, len(e.debugBuf))
		ascii := make([]byte, len(e.debugBuf))
		for i, b := range e.debugBuf {
			data[i] = int(b)
			if b >= 32 && b < 127 {
				ascii[i] = b
			} else {
				ascii[i] = '.'
			}
		}
		e.debugBuf = nil
		return map[string]any{"status": "ok", "data": data, "ascii": string(ascii)}

	default:
		name, _ := cmd["cmd"].(string)
		return map[string]any{"status": "error", "msg": "Unknown command: " + name}
	}
}

// flagBit renders one status flag the way the emulator reports it.
func flagBit(p, bit byte) int {
	if p&bit != 0 {
		return 1
	}
	return 0
}
