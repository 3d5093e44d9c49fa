package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Autocomplete is a text input that completes the token after the last
// comma from a fixed candidate list. ctrl+n cycles, right arrow accepts.
type Autocomplete struct {
	input      textinput.Model
	candidates []string
	multi      bool
	selected   int
	limit      int
}

func NewAutocomplete(placeholder string, candidates []string, multi bool) Autocomplete {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	return Autocomplete{input: in, candidates: candidates, multi: multi, limit: 5}
}

func (a *Autocomplete) Focus() tea.Cmd { return a.input.Focus() }
func (a *Autocomplete) Blur()          { a.input.Blur() }
func (a Autocomplete) Value() string   { return a.input.Value() }

func (a *Autocomplete) SetValue(s string) {
	a.input.SetValue(s)
	a.input.CursorEnd()
	a.selected = 0
}

// token is the fragment being completed.
func (a Autocomplete) token() string {
	v := a.input.Value()
	if a.multi {
		if i := strings.LastIndex(v, ","); i >= 0 {
			v = v[i+1:]
		}
	}
	return strings.TrimSpace(v)
}

// Suggestions lists candidates starting with the current token, excluding
// exact matches.
func (a Autocomplete) Suggestions() []string {
	return Complete(a.token(), a.candidates, a.limit)
}

func (a Autocomplete) Update(msg tea.Msg) (Autocomplete, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+n":
			if n := len(a.Suggestions()); n > 0 {
				a.selected = (a.selected + 1) % n
			}
			return a, nil
		case "right":
			if a.accept() {
				return a, nil
			}
		}
	}
	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	if a.input.Value() != before {
		a.selected = 0
	}
	return a, cmd
}

func (a *Autocomplete) accept() bool {
	s := a.Suggestions()
	if len(s) == 0 || a.input.Position() < len(a.input.Value()) {
		return false
	}
	pick := s[a.selected%len(s)]
	v := a.input.Value()
	if a.multi {
		if i := strings.LastIndex(v, ","); i >= 0 {
			a.SetValue(v[:i+1] + " " + pick)
			return true
		}
	}
	a.SetValue(pick)
	return true
}

func (a Autocomplete) View(t Theme) string {
	out := a.input.View()
	s := a.Suggestions()
	if !a.input.Focused() || len(s) == 0 {
		return out
	}
	parts := make([]string, len(s))
	for i, c := range s {
		if i == a.selected%len(s) {
			parts[i] = t.Selected.Render(c)
		} else {
			parts[i] = t.Hint.Render(c)
		}
	}
	return out + "  " + strings.Join(parts, t.Hint.Render(" · "))
}

// Complete returns up to limit candidates with a case-insensitive prefix
// match on token.
func Complete(token string, candidates []string, limit int) []string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil
	}
	var out []string
	for _, c := range candidates {
		lc := strings.ToLower(c)
		if lc == token || !strings.HasPrefix(lc, token) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}
