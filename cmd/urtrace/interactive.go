package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unifiedrt/urprint/trace"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	callStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserModel struct {
	err      error
	filename string
	capture  *trace.Capture
	rendered []string
	view     viewport.Model
	selected int
	width    int
	height   int
	ready    bool
}

type capLoadedMsg struct {
	err      error
	capture  *trace.Capture
	rendered []string
}

func newBrowserModel(filename string) *browserModel {
	return &browserModel{filename: filename}
}

func (m *browserModel) Init() tea.Cmd {
	return m.loadCapture
}

func (m *browserModel) loadCapture() tea.Msg {
	f, err := os.Open(m.filename)
	if err != nil {
		return capLoadedMsg{err: err}
	}
	defer f.Close()

	capture, err := trace.ParseCapture(f)
	if err != nil {
		return capLoadedMsg{err: err}
	}

	rendered := make([]string, len(capture.Entries))
	for i, e := range capture.Entries {
		var b strings.Builder
		if err := trace.RenderEntry(&b, e); err != nil {
			rendered[i] = errorStyle.Render(err.Error())
			continue
		}
		rendered[i] = b.String()
	}

	return capLoadedMsg{capture: capture, rendered: rendered}
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.syncViewport()
			}
		case "down", "j":
			if m.capture != nil && m.selected < len(m.capture.Entries)-1 {
				m.selected++
				m.syncViewport()
			}
		case "pgup":
			m.view.HalfPageUp()
		case "pgdown":
			m.view.HalfPageDown()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := m.listHeight()
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-listHeight-3)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - listHeight - 3
		}
		m.syncViewport()

	case capLoadedMsg:
		m.err = msg.err
		m.capture = msg.capture
		m.rendered = msg.rendered
		m.syncViewport()
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(nil)
	return m, cmd
}

func (m *browserModel) listHeight() int {
	if m.capture == nil {
		return 1
	}
	h := len(m.capture.Entries)
	if h > 8 {
		h = 8
	}
	return h
}

func (m *browserModel) syncViewport() {
	if !m.ready || m.capture == nil || m.selected >= len(m.rendered) {
		return
	}
	m.view.SetContent(m.rendered[m.selected])
	m.view.GotoTop()
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("urtrace " + m.filename))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}
	if m.capture == nil {
		b.WriteString("loading...\n")
		return b.String()
	}

	first := 0
	if m.selected >= m.listHeight() {
		first = m.selected - m.listHeight() + 1
	}
	for i := first; i < len(m.capture.Entries) && i < first+m.listHeight(); i++ {
		line := fmt.Sprintf("%3d  %s", i+1, m.capture.Entries[i].Call)
		if i == m.selected {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(callStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.view.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("up/down: select call  pgup/pgdown: scroll  q: quit"))
	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newBrowserModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
