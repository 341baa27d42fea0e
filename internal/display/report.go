package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/bingo/internal/statistics"
)

// Report renders simulation statistics
type Report struct {
	w      io.Writer
	styles Styles
}

// NewReport creates a report writer using the given renderer
func NewReport(w io.Writer, r *lipgloss.Renderer) *Report {
	return &Report{w: w, styles: NewStyles(r)}
}

// Write prints the summary of a batch of games.
func (r *Report) Write(stats *statistics.Statistics, elapsed time.Duration) {
	low, high := stats.ConfidenceInterval95()

	var b strings.Builder
	fmt.Fprintln(&b, r.styles.Title.Render(fmt.Sprintf("Simulated %d games in %s", stats.Games, elapsed.Round(time.Millisecond))))
	fmt.Fprintf(&b, "Draws to win: mean %.2f ± %.2f (95%% CI %.2f–%.2f)\n", stats.Mean(), stats.StdDev(), low, high)
	fmt.Fprintf(&b, "              median %.1f, p10 %.1f, p90 %.1f, min %d, max %d\n",
		stats.Median(), stats.Percentile(0.1), stats.Percentile(0.9), stats.MinDraws, stats.MaxDraws)
	fmt.Fprintf(&b, "Shared wins:  %d\n", stats.SharedWins)

	fmt.Fprintln(&b, r.styles.Summary.Render("Wins by player:"))
	for _, name := range stats.Players() {
		fmt.Fprintf(&b, "  %-24s %6d  %5.1f%%\n", name, stats.Wins[name], 100*stats.WinRate(name))
	}

	fmt.Fprint(r.w, b.String())
}
