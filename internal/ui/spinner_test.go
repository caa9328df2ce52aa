package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// newTestProgram creates a tea.Program configured for test environments
// without a TTY.
func newTestProgram(m tea.Model) *tea.Program {
	return tea.NewProgram(m,
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
}

// stopWithin fails the test if Stop does not return within the timeout.
func stopWithin(t *testing.T, s Spinner) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("spinner did not stop within 2 second timeout")
	}
}

func TestNewSpinner_HeadlessPrintsTitle(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)

	var buf bytes.Buffer
	s := NewSpinner(NewTheme(false), hm, &buf, "Running composer install")
	s.SetTitle("Still running")
	s.Stop()
	s.SetTitle("after stop")

	want := "Running composer install\nStill running\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestNewSpinner_NonTerminalWriterIsPlain(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	var buf bytes.Buffer
	s := NewSpinner(NewTheme(false), hm, &buf, "Installing")
	if _, ok := s.(*headlessSpinner); !ok {
		t.Fatalf("NewSpinner() = %T, want *headlessSpinner for a buffer", s)
	}
	s.Stop()
}

func TestNewSpinner_NilTheme(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)

	var buf bytes.Buffer
	s := NewSpinner(nil, hm, &buf, "Installing")
	s.Stop()
	if !strings.Contains(buf.String(), "Installing") {
		t.Errorf("output = %q, want title", buf.String())
	}
}

func TestInteractiveSpinner_SetTitleThenStop(t *testing.T) {
	s := startInteractiveSpinner(newTestProgram(newSpinnerModel(NewTheme(false), "Resolving")))

	s.SetTitle("Downloading packages")
	s.SetTitle("Writing lock file")
	stopWithin(t, s)
}

func TestInteractiveSpinner_Stop_Idempotent(t *testing.T) {
	s := startInteractiveSpinner(newTestProgram(newSpinnerModel(NewTheme(true), "Loading")))

	stopWithin(t, s)
	stopWithin(t, s)
}

func TestSpinnerModel_Update(t *testing.T) {
	m := newSpinnerModel(NewTheme(false), "Initial")

	updated, _ := m.Update(spinnerTitleMsg("Next"))
	m = updated.(spinnerModel)
	if m.title != "Next" {
		t.Errorf("title = %q, want Next", m.title)
	}
	if !strings.Contains(m.View(), "Next") {
		t.Errorf("View() = %q, want title", m.View())
	}

	updated, cmd := m.Update(spinnerStopMsg{})
	m = updated.(spinnerModel)
	if !m.done {
		t.Error("stop message should mark the model done")
	}
	if cmd == nil {
		t.Error("stop message should return tea.Quit")
	}
	if m.View() != "" {
		t.Errorf("View() after stop = %q, want empty", m.View())
	}
}

func TestSpinnerModel_Tick(t *testing.T) {
	m := newSpinnerModel(NewTheme(false), "Ticking")
	tickCmd := m.Init()
	if tickCmd == nil {
		t.Fatal("Init should return a non-nil tick command")
	}
	msg, ok := tickCmd().(spinner.TickMsg)
	if !ok {
		t.Skip("unexpected message type from tick command")
	}
	updated, _ := m.Update(msg)
	if updated.(spinnerModel).done {
		t.Error("tick should not stop the spinner")
	}
}
