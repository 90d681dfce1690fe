// Package ui holds the interactive viewer for rendered reports.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
}

// NewPagerModel returns a Bubble Tea model that pages rendered report
// text.
func NewPagerModel(title, content string) tea.Model {
	return &pagerModel{title: title, content: content}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.header())
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.header() + "\n" + m.vp.View()
}

func (m *pagerModel) header() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("  (q to quit)")
	return titleStyle.Render(m.title) + hint
}

// Page shows content in an alternate-screen pager until the user quits.
func Page(title, content string) error {
	p := tea.NewProgram(NewPagerModel(title, content), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pager failed: %w", err)
	}
	return nil
}
