package app

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Note content is copied from the preview pane. The system clipboard is
// tried first; terminals without one (ssh sessions, bare consoles) get an
// OSC52 escape sequence written to the tty instead.

var systemClipboardWrite = clipboard.WriteAll
var oscClipboardWrite = writeOSC52

func copyText(text string) error {
	sysErr := systemClipboardWrite(text)
	if sysErr == nil {
		return nil
	}
	oscErr := oscClipboardWrite(text)
	if oscErr == nil {
		return nil
	}
	return clipboardError(sysErr, oscErr)
}

func (m *Model) copyWithStatus(text, success string) bool {
	if err := copyText(text); err != nil {
		m.setStatusError("copy failed: " + err.Error())
		return false
	}
	m.setStatusInfo(success)
	return true
}

func writeOSC52(text string) error {
	if osc52Unavailable() {
		return errors.New("OSC52 disabled or unsupported terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()

	seq := osc52.New(text)
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(term, "screen"):
		seq = seq.Screen()
	}
	_, err = seq.WriteTo(tty)
	return err
}

func osc52Unavailable() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("JOT_DISABLE_OSC52"))) {
	case "1", "true", "yes", "on":
		return true
	}
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term == "" || strings.EqualFold(term, "dumb")
}

func clipboardError(sysErr, oscErr error) error {
	sysMsg := strings.TrimSpace(sysErr.Error())
	// The helper binaries xclip/xsel exit 1 when no display server is up,
	// which is the common case over ssh.
	if sysMsg == "exit status 1" && missingDisplay() {
		sysMsg = "no GUI clipboard available (DISPLAY/WAYLAND_DISPLAY unset)"
	}
	return fmt.Errorf("system clipboard: %s; OSC52 fallback: %s", sysMsg, oscErr.Error())
}

func missingDisplay() bool {
	return strings.TrimSpace(os.Getenv("DISPLAY")) == "" && strings.TrimSpace(os.Getenv("WAYLAND_DISPLAY")) == ""
}
