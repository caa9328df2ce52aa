package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderKeyValueLines(t *testing.T) {
	out := renderKeyValueLines([]kvPair{
		{"Directory", "/tmp/x"},
		{"Package", "acme/x"},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	// Values start in the same column.
	if a, b := strings.Index(lines[0], "/tmp/x"), strings.Index(lines[1], "acme/x"); a != b {
		t.Errorf("values not aligned (%d vs %d):\n%s", a, b, out)
	}
}

func TestRenderSuccessCard(t *testing.T) {
	card := renderSuccessCard("Done", "detail line")
	for _, want := range []string{"Done", "detail line", "╭", "╯"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	if h := lipgloss.Height(card); h != 5 {
		t.Errorf("card height = %d, want 5 (border, title, blank, detail, border)", h)
	}

	if h := lipgloss.Height(renderSuccessCard("Only title")); h != 3 {
		t.Errorf("title-only card height = %d, want 3", h)
	}
}
