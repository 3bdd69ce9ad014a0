package main

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testModel() (*model, *[]string) {
	var copied []string
	m := newModel([]string{"dog", "cat", "bat", "apple", "ice cream", "owl"})
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return m, &copied
}

func typeText(m *model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *model, t tea.KeyType) {
	m.Update(tea.KeyMsg{Type: t})
}

func TestBlankInputDrivesCompact(t *testing.T) {
	m, _ := testModel()
	typeText(m, "_a_")

	if got := m.compact.Value(); got != "1a1" {
		t.Fatalf("compact = %q", got)
	}
	if !reflect.DeepEqual(m.results, []string{"bat", "cat"}) {
		t.Fatalf("results = %q", m.results)
	}
}

func TestCompactInputDrivesBlank(t *testing.T) {
	m, _ := testModel()
	press(m, tea.KeyTab)
	if m.focus != fieldCompact {
		t.Fatal("tab did not move focus")
	}
	typeText(m, "3 5")

	if got := m.blank.Value(); got != "___ _____" {
		t.Fatalf("blank = %q", got)
	}
	if !reflect.DeepEqual(m.results, []string{"ice cream"}) {
		t.Fatalf("results = %q", m.results)
	}
}

func TestPlainTextSearchLeavesCompactEmpty(t *testing.T) {
	m, _ := testModel()
	typeText(m, "ow")
	if m.compact.Value() != "" {
		t.Fatalf("compact = %q", m.compact.Value())
	}
	if !reflect.DeepEqual(m.results, []string{"owl"}) {
		t.Fatalf("results = %q", m.results)
	}
}

func TestEnterCopiesSelection(t *testing.T) {
	m, copied := testModel()
	typeText(m, "___")
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyDown) // clamped at the last result
	press(m, tea.KeyEnter)

	// bat, cat, dog, owl
	if !reflect.DeepEqual(*copied, []string{"owl"}) {
		t.Fatalf("copied = %q", *copied)
	}
	if !strings.Contains(m.View(), "copied owl") {
		t.Fatalf("view missing status:\n%s", m.View())
	}
}

func TestCopyFailureIsShown(t *testing.T) {
	m, _ := testModel()
	m.copy = func(string) error { return errors.New("no clipboard") }
	typeText(m, "d__")
	press(m, tea.KeyEnter)
	if m.err == nil || !strings.Contains(m.View(), "no clipboard") {
		t.Fatalf("err = %v", m.err)
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m, _ := testModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10}) // three rows
	for i := 0; i < 5; i++ {
		press(m, tea.KeyDown)
	}
	if m.cursor != 5 || m.offset != 3 {
		t.Fatalf("cursor=%d offset=%d", m.cursor, m.offset)
	}
	press(m, tea.KeyPgUp)
	if m.cursor != 2 || m.offset != 2 {
		t.Fatalf("after pgup cursor=%d offset=%d", m.cursor, m.offset)
	}
}
