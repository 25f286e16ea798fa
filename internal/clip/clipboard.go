package clip

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when clipboard access is not available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// readCommand returns the shell command that prints the clipboard contents.
func readCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbpaste"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard", "-o"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--output"), nil
		}
		return nil, ErrClipboardUnavailable
	default:
		return nil, ErrClipboardUnavailable
	}
}

// writeCommand returns the shell command that fills the clipboard from stdin.
func writeCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, ErrClipboardUnavailable
	default:
		return nil, ErrClipboardUnavailable
	}
}

// Read returns the current system clipboard contents.
func Read() (string, error) {
	cmd, err := readCommand()
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Copy places the given text on the system clipboard.
func Copy(text string) error {
	cmd, err := writeCommand()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// IsAvailable checks if clipboard functionality is available on this system.
func IsAvailable() bool {
	_, err := readCommand()
	return err == nil
}
