// Package widget provides reusable TUI components.
package widget

import (
	"github.com/kodflow/meshbus/internal/domain/event"
	"github.com/kodflow/meshbus/internal/infrastructure/transport/tui/ansi"
)

// StatusIndicator renders event and endpoint indicators with colors. It
// provides themed icons and text for topic activity, bridge health, and
// log levels.
type StatusIndicator struct {
	Theme ansi.Theme
	Icons ansi.StatusIcon
}

// NewStatusIndicator creates a new status indicator with default theme.
//
// Returns:
//   - *StatusIndicator: configured indicator with default theme
func NewStatusIndicator() *StatusIndicator {
	// Return configured status indicator with defaults.
	return &StatusIndicator{
		Theme: ansi.DefaultTheme(),
		Icons: ansi.DefaultIcons(),
	}
}

// EventIcon returns a colored icon for an event type, based on its
// Severity: good events get the running icon, bad events get the failed
// icon, everything else gets the unknown icon.
//
// Params:
//   - t: the event type to render
//
// Returns:
//   - string: colored icon representing the event's severity
func (s *StatusIndicator) EventIcon(t event.Type) string {
	switch t.Severity() {
	case "good":
		return s.Theme.Success + s.Icons.Running + ansi.Reset
	case "bad":
		return s.Theme.Error + s.Icons.Failed + ansi.Reset
	default:
		return s.Theme.Muted + s.Icons.Unknown + ansi.Reset
	}
}

// EventText returns the event type's name in a color matching its
// Severity.
//
// Params:
//   - t: the event type to render
//
// Returns:
//   - string: colored text naming the event
func (s *StatusIndicator) EventText(t event.Type) string {
	switch t.Severity() {
	case "good":
		return s.Theme.Success + t.String() + ansi.Reset
	case "bad":
		return s.Theme.Error + t.String() + ansi.Reset
	default:
		return s.Theme.Muted + t.String() + ansi.Reset
	}
}

// TopicHealth classifies a topic's bound endpoints for the dashboard: a
// topic with a publisher and at least one subscriber or bridge is
// healthy; a publisher with nothing downstream is degraded (messages are
// broadcast to no one); a topic with neither is unhealthy.
//
// Params:
//   - publishers: the topic's bound local publisher count.
//   - downstream: subscriber count plus remote subscriber count.
//
// Returns:
//   - string: colored icon summarizing the topic's health.
func (s *StatusIndicator) TopicHealth(publishers, downstream int) string {
	switch {
	case publishers > 0 && downstream > 0:
		return s.Theme.Success + s.Icons.Healthy + ansi.Reset
	case publishers > 0:
		return s.Theme.Warning + s.Icons.Starting + ansi.Reset
	default:
		return s.Theme.Muted + s.Icons.Stopped + ansi.Reset
	}
}

// ListenerState returns colored icon for listener state.
//
// Params:
//   - state: the listener state string
//
// Returns:
//   - string: colored icon representing the state
func (s *StatusIndicator) ListenerState(state string) string {
	// Map listener state to appropriate icon and color.
	switch state {
	// Ready state.
	case "ready":
		// Return green success icon.
		return s.Theme.Success + s.Icons.Running + ansi.Reset
	// Listening state.
	case "listening":
		// Return yellow warning icon.
		return s.Theme.Warning + s.Icons.Starting + ansi.Reset
	// Closed state.
	case "closed":
		// Return muted stopped icon.
		return s.Theme.Muted + s.Icons.Stopped + ansi.Reset
	// Unknown state.
	default:
		// Return muted unknown icon.
		return s.Theme.Muted + s.Icons.Unknown + ansi.Reset
	}
}

// LogLevel returns colored log level.
//
// Params:
//   - level: the log level string
//
// Returns:
//   - string: colored log level text
func (s *StatusIndicator) LogLevel(level string) string {
	// Map log level to appropriate color.
	switch level {
	// Info level.
	case "INFO", "INF":
		// Return green text.
		return s.Theme.Success + level + ansi.Reset
	// Warning level.
	case "WARN", "WRN":
		// Return yellow text.
		return s.Theme.Warning + level + ansi.Reset
	// Error level.
	case "ERROR", "ERR":
		// Return red text.
		return s.Theme.Error + level + ansi.Reset
	// Debug level.
	case "DEBUG", "DBG":
		// Return muted text.
		return s.Theme.Muted + level + ansi.Reset
	// Unknown level.
	default:
		// Return without color.
		return level
	}
}

// Bool returns colored boolean indicator.
//
// Params:
//   - value: boolean value to render
//
// Returns:
//   - string: colored icon for true/false
func (s *StatusIndicator) Bool(value bool) string {
	// Map boolean to colored icon.
	if value {
		// True: green success icon.
		return s.Theme.Success + s.Icons.Healthy + ansi.Reset
	}
	// False: red error icon.
	return s.Theme.Error + s.Icons.Failed + ansi.Reset
}

// Detected returns colored detection status.
//
// Params:
//   - detected: whether the item was detected
//
// Returns:
//   - string: colored icon for detection status
func (s *StatusIndicator) Detected(detected bool) string {
	// Map detection status to colored icon.
	if detected {
		// Detected: green running icon.
		return s.Theme.Success + s.Icons.Running + ansi.Reset
	}
	// Not detected: muted stopped icon.
	return s.Theme.Muted + s.Icons.Stopped + ansi.Reset
}
