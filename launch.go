package atari800ai

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

const (
	// emulatorExecutableName is the name of the Atari800 binary.
	emulatorExecutableName = "atari800"

	// launchSocketTimeout is how long to wait for the AI socket to appear
	// after launching the emulator process.
	launchSocketTimeout = 4 * time.Second

	// launchSocketPollInterval is how often to check for the AI socket
	// during the startup wait.
	launchSocketPollInterval = 100 * time.Millisecond
)

// LaunchEmulator starts an atari800 process with the AI interface listening
// on socketPath (empty means DefaultSocketPath) and waits for the socket to
// appear. Extra arguments are passed to the emulator after the AI flags, so
// callers can add things like "-ai-run" or a program to boot. Returns the
// emulator's PID.
//
// The emulator starts paused and its output is discarded. The caller owns
// the process and stops it when done.
func LaunchEmulator(socketPath string, extraArgs ...string) (int, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	exePath, err := findEmulatorExecutable()
	if err != nil {
		return 0, fmt.Errorf("could not find %s executable: %w", emulatorExecutableName, err)
	}

	cmdArgs := []string{"-ai", "-ai-socket", socketPath}
	cmdArgs = append(cmdArgs, extraArgs...)

	cmd := exec.Command(exePath, cmdArgs...)

	// Discard emulator output rather than inheriting the caller's terminal
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to launch %s: %w", emulatorExecutableName, err)
	}

	pid := cmd.Process.Pid

	if err := waitForSocket(socketPath, launchSocketTimeout); err != nil {
		return pid, fmt.Errorf("%s started (PID: %d) but socket not found: %w", emulatorExecutableName, pid, err)
	}

	return pid, nil
}

// findEmulatorExecutable searches for the atari800 binary in standard
// locations. Returns the full path to the executable.
func findEmulatorExecutable() (string, error) {
	// 1. Check the same directory as the calling binary
	if selfPath, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(selfPath), emulatorExecutableName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	// 2. Check PATH
	if path, err := exec.LookPath(emulatorExecutableName); err == nil {
		return path, nil
	}

	// 3. Check common locations
	commonPaths := []string{
		"/usr/local/bin",
		"/opt/homebrew/bin",
		filepath.Join(homeDir(), ".local", "bin"),
	}
	for _, dir := range commonPaths {
		candidate := filepath.Join(dir, emulatorExecutableName)
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%s not found in PATH or common locations", emulatorExecutableName)
}

// waitForSocket polls for a Unix socket file to appear. Returns an error if
// the timeout is reached first.
func waitForSocket(path string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return nil
		}
		time.Sleep(launchSocketPollInterval)
	}

	return fmt.Errorf("timeout waiting for socket %s", path)
}

// isExecutable checks if a file exists and is executable.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	// Check that it's a regular file with at least one execute bit set
	return !info.IsDir() && info.Mode().Perm()&0111 != 0
}

// homeDir returns the current user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
