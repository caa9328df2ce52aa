package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/libforge/phpgen/internal/ui"
)

// Run asks every question that initial leaves unanswered and returns the
// completed answers. Defaults are resolved from the answers given so far
// right before each question is shown.
// Each question runs as its own huh.Form to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
func Run(questions []Question, initial Answers, defaults Defaults) (Answers, error) {
	if len(questions) == 0 {
		return initial, ErrNoQuestions
	}

	result := initial
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]
		if result.Get(q.ID) != "" {
			continue
		}

		def := ResolveDefault(q.ID, result, defaults)
		form := huh.NewForm(huh.NewGroup(buildInputField(q, def, &result))).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return initial, ErrCancelled
			}
			return initial, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildInputField creates a huh.Input field for a question. An empty
// submission takes def.
func buildInputField(q *Question, def string, result *Answers) *huh.Input {
	var value string

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if def != "" {
		inp = inp.Placeholder(def)
	}

	inp = inp.Validate(func(val string) error {
		v, err := resolveInput(q, def, val)
		if err != nil {
			return err
		}
		result.Set(q.ID, v)
		return nil
	})

	return inp
}

// resolveInput turns raw input into the answer for q.
func resolveInput(q *Question, def, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		v = def
	}
	if v == "" && q.Required {
		return "", errors.New("this field is required")
	}
	if err := checkAnswer(q, v); err != nil {
		return "", err
	}
	return v, nil
}

// newWizardTheme creates a huh.Theme in the phpgen colors.
func newWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: ui.ColorSecondary, Dark: ui.ColorPrimary}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}

	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())

	return t
}
