package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#4F5B93", Dark: "#7A86B8"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }
func symError() string   { return cliError.Render("✗") }
func symWarning() string { return cliWarn.Render("!") }

// kvPair is one aligned "key: value" line.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns values on the longest key.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.key))
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := cliMuted.Render(fmt.Sprintf("%-*s", width, p.key))
		lines = append(lines, fmt.Sprintf("  %s  %s", key, p.value))
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard draws a bordered card with a check mark title.
func renderSuccessCard(title string, details ...string) string {
	body := symSuccess() + " " + cliPrimary.Bold(true).Render(title)
	if len(details) > 0 {
		body += "\n\n" + strings.Join(details, "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 1).
		Render(body)
}
