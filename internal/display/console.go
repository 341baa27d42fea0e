// Package display renders bingo games and simulation reports for a terminal.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bingo/internal/bingo"
)

// Styles holds the lipgloss styles used for console output
type Styles struct {
	Title   lipgloss.Style
	Draw    lipgloss.Style
	Match   lipgloss.Style
	Winner  lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles builds the default palette on the given renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		Draw:    r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		Match:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Winner:  r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Summary: r.NewStyle().Foreground(lipgloss.Color("#96CEB4")),
	}
}

// Console writes game events to a terminal. It is an EventSubscriber.
type Console struct {
	w         io.Writer
	styles    Styles
	formatter *EventFormatter
}

// NewConsole creates a console that detects the colour profile of w.
func NewConsole(w io.Writer, opts FormattingOptions) *Console {
	return NewConsoleWithRenderer(w, lipgloss.NewRenderer(w), opts)
}

// NewConsoleWithRenderer creates a console using an explicit renderer, which
// lets callers force a colour profile.
func NewConsoleWithRenderer(w io.Writer, r *lipgloss.Renderer, opts FormattingOptions) *Console {
	return &Console{
		w:         w,
		styles:    NewStyles(r),
		formatter: NewEventFormatter(opts),
	}
}

// OnEvent implements bingo.EventSubscriber.
func (c *Console) OnEvent(event bingo.Event) {
	line, ok := c.formatter.Format(event)
	if !ok {
		return
	}

	var style lipgloss.Style
	switch event.EventType() {
	case bingo.EventTypeGameStart:
		style = c.styles.Title
	case bingo.EventTypeNumberMatched:
		style = c.styles.Match
	case bingo.EventTypeWinner:
		style = c.styles.Winner
	case bingo.EventTypeGameEnd:
		style = c.styles.Summary
	default:
		style = c.styles.Draw
	}
	fmt.Fprintln(c.w, style.Render(line))
}
