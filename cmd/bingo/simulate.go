package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"

	"github.com/lox/bingo/internal/display"
	"github.com/lox/bingo/internal/fileutil"
	"github.com/lox/bingo/internal/simulator"
)

type SimulateCmd struct {
	GameFlags `embed:""`

	Games    int    `short:"n" default:"1000" help:"Number of games to play"`
	Parallel int    `help:"Games played at once (default: number of CPUs)"`
	Output   string `short:"o" type:"path" help:"Also write a JSON summary to this file"`
}

func (c *SimulateCmd) Run() error {
	settings, err := c.Settings()
	if err != nil {
		return err
	}
	logger := newLogger(settings.Level())

	seed, err := seed(settings)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	clock := quartz.NewReal()
	start := clock.Now()

	logger.Info("Starting simulation", "games", c.Games, "seed", seed, "players", len(settings.Players))

	stats, err := simulator.New(simulator.Config{
		Games:      c.Games,
		Parallel:   c.Parallel,
		Seed:       seed,
		Players:    settings.Players,
		Range:      settings.Range,
		TicketSize: settings.TicketSize,
		Logger:     logger,
		Clock:      clock,
	}).Run(ctx)
	if err != nil {
		return err
	}

	display.NewReport(os.Stdout, lipgloss.NewRenderer(os.Stdout)).Write(stats, clock.Since(start))

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, stats.Summary()); err != nil {
			return err
		}
		logger.Info("Wrote summary", "path", c.Output)
	}
	return nil
}
