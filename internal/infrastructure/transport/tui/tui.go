package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/kodflow/meshbus/internal/domain/middleware"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui/ansi"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui/terminal"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui/widget"
)

// TUI renders the middleware registry's topic snapshots to a terminal,
// either as a single static render or as a refreshing dashboard.
type TUI struct {
	config    Config
	registry  *middleware.Registry
	indicator *widget.StatusIndicator
}

// New creates a new TUI bound to registry.
func New(config Config, registry *middleware.Registry) *TUI {
	return &TUI{
		config:    config,
		registry:  registry,
		indicator: widget.NewStatusIndicator(),
	}
}

// Run executes the TUI according to its configured mode.
func (t *TUI) Run(ctx context.Context) error {
	switch t.config.Mode {
	case ModeInteractive:
		return t.runInteractive(ctx)
	case ModeRaw:
		return t.runRaw()
	default:
		// Fallback to raw mode for unknown modes.
		return t.runRaw()
	}
}

// runRaw renders a single snapshot and returns.
func (t *TUI) runRaw() error {
	size := terminal.GetSize()
	_, err := fmt.Fprintln(t.config.Output, t.render(size.Cols))
	return err
}

// runInteractive falls back to raw mode when stdout is not a terminal,
// otherwise runs the Bubble Tea refresh loop.
func (t *TUI) runInteractive(ctx context.Context) error {
	if !terminal.IsTTY() {
		return t.runRaw()
	}
	return t.runBubbleTea(ctx)
}

// render builds the full dashboard text for the given terminal width.
func (t *TUI) render(width int) string {
	header := ansi.DefaultTheme().Header + "meshbus " + t.config.Version + ansi.Reset
	table := t.buildTable(width)
	return header + "\n\n" + table.Render()
}

// buildTable renders the registry's topic snapshots as a table.
func (t *TUI) buildTable(width int) *widget.Table {
	snapshots := t.registry.Snapshot()

	table := widget.NewTable(width)
	table.AddColumn("HEALTH", 6, widget.AlignCenter)
	table.AddFlexColumn("TOPIC", 12, widget.AlignLeft)
	table.AddColumn("SIZE", 6, widget.AlignRight)
	table.AddColumn("PUB", 5, widget.AlignRight)
	table.AddColumn("SUB", 5, widget.AlignRight)
	table.AddColumn("BRIDGE", 8, widget.AlignCenter)

	for _, snap := range snapshots {
		downstream := snap.Subscribers + snap.RemoteSubscribers
		table.AddRow(
			t.indicator.TopicHealth(snap.Publishers, downstream),
			snap.Name,
			strconv.Itoa(snap.PayloadSize),
			strconv.Itoa(snap.Publishers),
			strconv.Itoa(snap.Subscribers),
			t.indicator.Bool(snap.HasRemotePublisher || snap.RemoteSubscribers > 0),
		)
	}

	return table
}

// tick returns the interval between dashboard refreshes. A zero or
// negative configured value falls back to defaultRefreshInterval; any
// positive value is used as given, with no lower bound.
func (t *TUI) tick() time.Duration {
	if t.config.RefreshInterval <= 0 {
		return defaultRefreshInterval
	}
	return t.config.RefreshInterval
}
