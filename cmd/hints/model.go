// cmd/hints/model.go
//
// bubbletea model for the hint finder.
//
// Two inputs describe the same pattern: blank ("__b__") and compact ("2b2").
// Editing one rewrites the other through the pattern codec. Results are the
// words matching both, sorted, capped at maxResults.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/skribbl-hints/internal/pattern"
	"github.com/robalobadob/skribbl-hints/internal/words"
)

const (
	maxResults  = 500
	defaultRows = 15
)

type field int

const (
	fieldBlank field = iota
	fieldCompact
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle    = lipgloss.NewStyle().Width(9).Foreground(lipgloss.Color("#999999"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

type model struct {
	all     []string
	blank   textinput.Model
	compact textinput.Model
	focus   field

	results []string
	cursor  int
	offset  int
	rows    int

	status string
	err    error
	copy   func(string) error
}

func newModel(list []string) *model {
	blank := textinput.New()
	blank.Placeholder = "__b__ or ___ _____"
	blank.Prompt = ""
	blank.CharLimit = 64
	blank.Focus()

	compact := textinput.New()
	compact.Placeholder = "2b2 or 3 5"
	compact.Prompt = ""
	compact.CharLimit = 32

	m := &model{
		all:     list,
		blank:   blank,
		compact: compact,
		rows:    defaultRows,
		copy:    clipboard.WriteAll,
	}
	m.search()
	return m
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, two inputs, count line, blank line, footer
		m.rows = max(3, msg.Height-7)
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			return m, m.toggleFocus()
		case "up", "ctrl+p":
			m.move(-1)
			return m, nil
		case "down", "ctrl+n":
			m.move(1)
			return m, nil
		case "pgup":
			m.move(-m.rows)
			return m, nil
		case "pgdown":
			m.move(m.rows)
			return m, nil
		case "enter":
			m.copySelected()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == fieldBlank {
		before := m.blank.Value()
		m.blank, cmd = m.blank.Update(msg)
		if v := m.blank.Value(); v != before {
			m.compact.SetValue(blankToCompact(v))
			m.search()
		}
	} else {
		before := m.compact.Value()
		m.compact, cmd = m.compact.Update(msg)
		if v := m.compact.Value(); v != before {
			m.blank.SetValue(pattern.CompactToBlank(v))
			m.search()
		}
	}
	return m, cmd
}

// blankToCompact converts what the user typed; text without any '_' is
// treated as a plain word and leaves the compact field empty.
func blankToCompact(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if !strings.Contains(v, "_") {
		return ""
	}
	return pattern.BlankToCompact(v)
}

func (m *model) toggleFocus() tea.Cmd {
	if m.focus == fieldBlank {
		m.focus = fieldCompact
		m.blank.Blur()
		return m.compact.Focus()
	}
	m.focus = fieldBlank
	m.compact.Blur()
	return m.blank.Focus()
}

func (m *model) search() {
	m.results = words.Search(m.all, words.Query{
		Pattern: strings.TrimSpace(m.blank.Value()),
		Letters: strings.TrimSpace(m.compact.Value()),
		Limit:   maxResults,
	})
	m.cursor, m.offset = 0, 0
	m.status = ""
	m.err = nil
}

func (m *model) move(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.results)-1)
	m.clampScroll()
}

func (m *model) clampScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.rows {
		m.offset = m.cursor - m.rows + 1
	}
}

func (m *model) selected() string {
	if m.cursor < len(m.results) {
		return m.results[m.cursor]
	}
	return ""
}

func (m *model) copySelected() {
	w := m.selected()
	if w == "" {
		return
	}
	if err := m.copy(w); err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.status = "copied " + w
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("skribbl hints") + "\n")
	b.WriteString(labelStyle.Render("hint") + m.blank.View() + "\n")
	b.WriteString(labelStyle.Render("compact") + m.compact.View() + "\n")

	count := fmt.Sprintf("%d matches", len(m.results))
	if len(m.results) == maxResults {
		count = fmt.Sprintf("%d+ matches", maxResults)
	}
	b.WriteString(mutedStyle.Render(count) + "\n\n")

	end := min(m.offset+m.rows, len(m.results))
	for i := m.offset; i < end; i++ {
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> "+m.results[i]) + "\n")
		} else {
			b.WriteString("  " + m.results[i] + "\n")
		}
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("clipboard: "+m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(mutedStyle.Render(m.status) + "\n")
	default:
		b.WriteString(mutedStyle.Render("tab switch field · ↑/↓ select · enter copy · esc quit") + "\n")
	}
	return b.String()
}
