package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/logic"
	"github.com/pbaille/meetbook/internal/model"
	"github.com/pbaille/meetbook/internal/store"
)

type nopClipboard struct{}

func (nopClipboard) WriteAll(string) error { return nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := store.NewJSON(filepath.Join(t.TempDir(), "addressbook.json"))
	m := model.New(model.SampleAddressBook(), model.WithClipboard(nopClipboard{}))
	log := zaptest.NewLogger(t)
	tm := New(logic.New(m, s, log), log)
	next, _ := tm.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	return next.(Model)
}

func typeLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, cmd := next.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, next.(Model).running)
	msg := cmd()
	require.IsType(t, resultMsg{}, msg)
	next, cmd = next.(Model).Update(msg)
	return next.(Model), cmd
}

func TestViewShowsPersonsByDefault(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Persons (6)")
	assert.Contains(t, view, "Meetings (3)")
	assert.Contains(t, view, "Alex Yeoh")
	assert.Contains(t, view, "Roy Balakrishnan")
	assert.NotContains(t, view, "Project Sync")
}

func TestSubmitRunsCommand(t *testing.T) {
	m := newTestModel(t)

	m, cmd := typeLine(t, m, "find alex")
	assert.Nil(t, cmd)
	assert.False(t, m.running)
	assert.False(t, m.failed)
	assert.Equal(t, "", m.input.Value())
	assert.Contains(t, m.feedback, "1 persons listed!")
	assert.Contains(t, m.View(), "Persons (1)")
	assert.NotContains(t, m.View(), "Bernice Yu")
}

func TestSubmitKeepsLineOnError(t *testing.T) {
	m := newTestModel(t)

	m, _ = typeLine(t, m, "delete 42")
	assert.True(t, m.failed)
	assert.Equal(t, command.MessageInvalidPersonIndex, m.feedback)
	assert.Equal(t, "delete 42", m.input.Value())
}

func TestSwitchToMeetings(t *testing.T) {
	m := newTestModel(t)

	m, _ = typeLine(t, m, "meetings")
	view := m.View()
	assert.Contains(t, view, "Project Sync")
	assert.Contains(t, view, "Oct 20 2021 20:00")
	assert.Contains(t, view, "45 min")
	assert.NotContains(t, view, "Alex Yeoh")
	assert.Contains(t, m.input.AvailableSuggestions(), "peek")
}

func TestHelpOpensAndCloses(t *testing.T) {
	m := newTestModel(t)

	m, _ = typeLine(t, m, "help")
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Persons")
	assert.Contains(t, m.list.View(), "Meetbook")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.showHelp)
	assert.Contains(t, m.View(), "Alex Yeoh")
}

func TestNextCommandClosesHelp(t *testing.T) {
	m := newTestModel(t)

	m, _ = typeLine(t, m, "help")
	require.True(t, m.showHelp)

	m, _ = typeLine(t, m, "list")
	assert.False(t, m.showHelp)
	assert.Contains(t, m.list.View(), "Alex Yeoh")
	assert.NotContains(t, m.list.View(), "## Persons")
}

func TestExitQuits(t *testing.T) {
	m := newTestModel(t)

	_, cmd := typeLine(t, m, "exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEnterOnBlankLineDoesNothing(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).running)
}

func TestWindowSizeIgnoresNonsense(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: -1, Height: 0})
	m = next.(Model)
	assert.Equal(t, defaultWidth, m.width)
	assert.Equal(t, defaultHeight, m.height)
	assert.NotEmpty(t, m.View())
}

func TestHelpRendersWithoutRawMarkup(t *testing.T) {
	out := renderHelp(400)
	assert.Contains(t, out, "Esc closes this page")
	assert.NotContains(t, out, "**")
}

func TestHelpMarkdownListsEveryCommand(t *testing.T) {
	md := helpMarkdown()
	for _, word := range []string{"add:", "edit:", "delete:", "find:", "copy:", "peek:", "list:", "clear:", "help:", "exit:"} {
		assert.Contains(t, md, word)
	}
}
