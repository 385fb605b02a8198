// Package tui is the terminal interface: mode tabs, the active list, the
// result of the last command and a command box.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/logic"
	"github.com/pbaille/meetbook/internal/parser"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, result box, input and footer
	chromeHeight = 9
)

// Model is the bubbletea model.
type Model struct {
	logic *logic.Logic
	log   *zap.Logger

	input textinput.Model
	list  viewport.Model

	feedback string
	failed   bool
	running  bool
	showHelp bool
	help     string

	width, height int
}

// New returns a Model showing the current lists of l.
func New(l *logic.Logic, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Enter command here... (help for usage, Ctrl+C to exit)"
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = defaultWidth - 4
	ti.ShowSuggestions = true
	ti.Focus()

	m := Model{
		logic:  l,
		log:    log,
		input:  ti,
		list:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()
	return m
}

// Run starts the program on the terminal and blocks until it exits.
func Run(l *logic.Logic, log *zap.Logger) error {
	p := tea.NewProgram(New(l, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case resultMsg:
		return m.finish(msg)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			if m.showHelp {
				m.showHelp = false
				m.refresh()
				return m, nil
			}
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resultMsg carries the outcome of a command line run off the update loop.
type resultMsg struct {
	line string
	res  command.Result
	err  error
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	if strings.TrimSpace(line) == "" || m.running {
		return m, nil
	}
	m.running = true
	l := m.logic
	return m, func() tea.Msg {
		res, err := l.Execute(line)
		return resultMsg{line: line, res: res, err: err}
	}
}

func (m Model) finish(msg resultMsg) (tea.Model, tea.Cmd) {
	m.running = false
	if msg.err != nil {
		// keep the line so it can be corrected
		m.feedback = msg.err.Error()
		m.failed = true
		return m, nil
	}

	if m.input.Value() == msg.line {
		m.input.Reset()
	}
	m.feedback = msg.res.Feedback
	m.failed = false
	m.showHelp = msg.res.ShowHelp
	m.refresh()
	if msg.res.Exit {
		m.log.Info("exit requested")
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	m.width, m.height = width, height
	m.input.Width = max(width-4, 10)
	m.list.Width = width
	m.list.Height = max(height-chromeHeight, 3)
	m.help = ""
	m.refresh()
}

// refresh redraws the list panel and the completion words for the active mode.
func (m *Model) refresh() {
	mode := m.logic.Mode()
	m.input.SetSuggestions(parser.CommandWords(mode))

	if m.showHelp {
		if m.help == "" {
			m.help = renderHelp(m.width - 2)
		}
		m.list.SetContent(m.help)
		m.list.GotoTop()
		return
	}

	var content string
	if mode == command.ModeMeetings {
		content = renderMeetings(m.logic.Meetings(), m.width)
	} else {
		content = renderPersons(m.logic.FilteredPersons(), m.width)
	}
	m.list.SetContent(content)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")

	if m.feedback != "" {
		style := resultStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Width(max(m.width-2, 10)).Render(m.feedback))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.logic.StoragePath()))
	return b.String()
}

func (m Model) header() string {
	mode := m.logic.Mode()
	tab := func(name string, on bool) string {
		if on && !m.showHelp {
			return activeTab.Render(name)
		}
		return inactiveTab.Render(name)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("Meetbook"),
		" ",
		tab(fmt.Sprintf("Persons (%d)", len(m.logic.FilteredPersons())), mode == command.ModePersons),
		tab(fmt.Sprintf("Meetings (%d)", len(m.logic.Meetings())), mode == command.ModeMeetings),
		tab("Help", m.showHelp),
	)
}

func renderTags(tags []domain.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = tagStyle.Render(string(t))
	}
	return strings.Join(parts, " ")
}

func cardHeading(i int, name string, tags []domain.Tag) string {
	line := indexStyle.Render(fmt.Sprintf("%3d.", i+1)) + " " + nameStyle.Render(name)
	if len(tags) > 0 {
		line += "  " + renderTags(tags)
	}
	return line
}

func renderPersons(persons []domain.Person, width int) string {
	if len(persons) == 0 {
		return emptyStyle.Render("No persons to show.")
	}
	detail := detailStyle.Width(max(width-2, 10))
	cards := make([]string, len(persons))
	for i, p := range persons {
		cards[i] = lipgloss.JoinVertical(lipgloss.Left,
			cardHeading(i, string(p.Name), p.Tags),
			detail.Render(fmt.Sprintf("%s  ·  %s", p.Phone, p.Email)),
			detail.Render(string(p.Address)),
		)
	}
	return strings.Join(cards, "\n")
}

func renderMeetings(meetings []domain.Meeting, width int) string {
	if len(meetings) == 0 {
		return emptyStyle.Render("No meetings to show.")
	}
	detail := detailStyle.Width(max(width-2, 10))
	cards := make([]string, len(meetings))
	for i, mt := range meetings {
		cards[i] = lipgloss.JoinVertical(lipgloss.Left,
			cardHeading(i, string(mt.Title), mt.Tags),
			detail.Render(fmt.Sprintf("%s  ·  %d min", mt.StartTime, mt.Duration)),
			detail.Render(string(mt.Link)),
		)
	}
	return strings.Join(cards, "\n")
}
