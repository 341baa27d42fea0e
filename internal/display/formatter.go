package display

import (
	"fmt"
	"strings"

	"github.com/lox/bingo/internal/bingo"
)

// FormattingOptions controls how much of a game is written out
type FormattingOptions struct {
	ShowMatches bool // Include a line for every number a player crosses off
	ShowSummary bool // Include a closing line with the draw count
}

// EventFormatter turns game events into plain console lines
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the line for an event, or false when the event is not shown.
func (ef *EventFormatter) Format(event bingo.Event) (string, bool) {
	switch e := event.(type) {
	case bingo.GameStartEvent:
		return "Welcome to the Bingo game!", true
	case bingo.NumberDrawnEvent:
		return fmt.Sprintf("We got number: %d", e.Number), true
	case bingo.NumberMatchedEvent:
		if !ef.opts.ShowMatches {
			return "", false
		}
		return fmt.Sprintf("  %s crosses off %d (%d left)", e.Player, e.Number, e.Remaining), true
	case bingo.WinnerEvent:
		return FormatWinner(e.Player), true
	case bingo.GameEndEvent:
		if !ef.opts.ShowSummary {
			return "", false
		}
		return fmt.Sprintf("Game over after %d draws", e.Draws), true
	default:
		return "", false
	}
}

// FormatWinner is the winner's call, shouted.
func FormatWinner(name string) string {
	return strings.ToUpper(name) + " BINGO!!!"
}
