package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts and animations may be shown.
// A session is headless when stdin is not a terminal, which is the case in
// CI jobs, pipes and editors running phpgen as a subprocess.
type HeadlessManager struct {
	forced *bool
	stdin  *os.File
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{stdin: os.Stdin}
}

// IsHeadless returns true when the UI must not prompt. ForceHeadless
// overrides TTY detection.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	return !IsTerminal(h.stdin)
}

// ForceHeadless overrides TTY detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce removes any forced override, reverting to automatic TTY detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}

// IsTerminal reports whether w is a terminal. Writers that are not files,
// such as buffers in tests, are never terminals.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
