package atari800ai

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"sync"
	"syscall"
	"time"
)

// waitPollInterval is how often WaitForEmulator retries the connection.
const waitPollInterval = 100 * time.Millisecond

// Client is a Unix domain socket client for the emulator's AI interface.
//
// All protocol operations are synchronous: each one sends a single command
// and blocks until the reply has been fully read. The protocol carries no
// request identifiers, so the client allows only one command in flight per
// connection.
//
// Thread Safety:
// The client serializes exchanges internally and is safe for concurrent use
// from multiple goroutines. Disconnect may be called while an exchange is
// blocked on a read; the closed handle surfaces to the blocked caller as a
// connection error.
type Client struct {
	// mu protects the connection state fields.
	mu            sync.Mutex
	conn          net.Conn
	reader        *bufio.Reader
	connectedPath string
	isConnected   bool

	// exch serializes request/response exchanges. Replies are correlated to
	// requests by order alone, so at most one command may be outstanding.
	exch sync.Mutex
}

// NewClient creates a new AI interface client.
func NewClient() *Client {
	return &Client{}
}

// IsConnected returns true if the client is currently connected.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isConnected
}

// ConnectedPath returns the path of the currently connected socket.
// Returns empty string if not connected.
func (c *Client) ConnectedPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connectedPath
}

// Connect connects to the emulator's AI socket. An empty socketPath means
// DefaultSocketPath. The connection is verified with a ping before Connect
// returns; a socket that accepts the connection but does not answer the ping
// with an ok status fails with ErrVerificationFailed.
//
// The emulator pauses when a client connects and advances only through Run
// and Step.
func (c *Client) Connect(socketPath string) error {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	c.mu.Lock()
	if c.isConnected {
		c.mu.Unlock()
		return ErrAlreadyConnected
	}
	c.mu.Unlock()

	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return NewConnectionError("failed to connect", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.reader = bufio.NewReader(conn)
	c.connectedPath = socketPath
	c.isConnected = true
	c.mu.Unlock()

	// Verify the connection with a ping
	ok, err := c.Ping()
	if err != nil {
		c.Disconnect()
		return NewConnectionError("ping failed", err)
	}
	if !ok {
		c.Disconnect()
		return ErrVerificationFailed
	}

	return nil
}

// Disconnect disconnects from the emulator. It is safe to call on an
// already-disconnected client.
func (c *Client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isConnected {
		return
	}

	c.isConnected = false
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
	c.reader = nil
	c.connectedPath = ""
}

// exchange sends one command and decodes the reply into out. The reply is
// whatever message the emulator sends next: the protocol has no request
// identifiers, so exchanges are strictly one at a time.
func (c *Client) exchange(cmd Command, out any) error {
	c.exch.Lock()
	defer c.exch.Unlock()

	c.mu.Lock()
	if !c.isConnected {
		c.mu.Unlock()
		return ErrNotConnected
	}
	conn := c.conn
	reader := c.reader
	c.mu.Unlock()

	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encode %s command: %w", cmd.Type, err)
	}
	if err := writeFrame(conn, body); err != nil {
		return err
	}

	respBody, err := readFrame(reader)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// exchangeOK sends one command and reports whether the emulator answered
// with an ok status.
func (c *Client) exchangeOK(cmd Command) (bool, error) {
	var r reply
	if err := c.exchange(cmd, &r); err != nil {
		return false, err
	}
	return r.ok(), nil
}

// WithClient connects to the emulator's AI socket, runs fn with the
// connected client, and disconnects on every return path once the
// connection has been established.
func WithClient(socketPath string, fn func(*Client) error) error {
	c := NewClient()
	if err := c.Connect(socketPath); err != nil {
		return err
	}
	defer c.Disconnect()
	return fn(c)
}

// WaitForEmulator repeatedly attempts to connect until the emulator becomes
// available or timeout elapses. Attempts that fail because the socket file
// does not exist yet, or because nothing is accepting on it, are retried
// every 100 ms; any other failure is returned immediately. A timeout of 0
// means DefaultWaitTimeout.
func WaitForEmulator(socketPath string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultWaitTimeout
	}
	deadline := time.Now().Add(timeout)

	for {
		c := NewClient()
		err := c.Connect(socketPath)
		if err == nil {
			return c, nil
		}
		if !isRetryable(err) {
			return nil, err
		}
		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
		}
		time.Sleep(waitPollInterval)
	}
}

// isRetryable reports whether a connect failure means the emulator is simply
// not up yet: the socket file is absent or nobody is listening on it.
func isRetryable(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, fs.ErrNotExist)
}
