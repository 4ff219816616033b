package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui/ansi"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui/terminal"
)

// dashboardModel is the Bubble Tea model for the interactive dashboard.
type dashboardModel struct {
	tui      *TUI
	width    int
	height   int
	quitting bool
}

// tickMsg is sent on each refresh interval.
type tickMsg time.Time

// Init starts the refresh timer and switches to the alternate screen.
func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), tea.EnterAltScreen)
}

// scheduleTick returns a command that fires after the configured interval.
func (m dashboardModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.tui.tick(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses, resize events, and refresh ticks.
func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		return m, m.scheduleTick()
	}
	return m, nil
}

// View renders the current dashboard frame.
func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}
	width := m.width
	if width == 0 {
		width = terminal.GetSize().Cols
	}
	return ansi.ClearScreen + ansi.CursorHome + m.tui.render(width)
}

// runBubbleTea starts the Bubble Tea program and blocks until it exits or
// ctx is cancelled.
func (t *TUI) runBubbleTea(ctx context.Context) error {
	size := terminal.GetSize()

	m := dashboardModel{
		tui:    t,
		width:  size.Cols,
		height: size.Rows,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	select {
	case <-ctx.Done():
		p.Quit()
		return ctx.Err()
	case err := <-done:
		return err
	}
}
