package main

import (
	"os"

	"github.com/lox/bingo/internal/bingo"
	"github.com/lox/bingo/internal/display"
	"github.com/lox/bingo/internal/randutil"
)

type PlayCmd struct {
	GameFlags `embed:""`

	Verbose bool `help:"Show every number each player crosses off"`
}

func (c *PlayCmd) Run() error {
	settings, err := c.Settings()
	if err != nil {
		return err
	}
	logger := newLogger(settings.Level())

	seed, err := seed(settings)
	if err != nil {
		return err
	}
	rng := randutil.New(seed)

	console := display.NewConsole(os.Stdout, display.FormattingOptions{
		ShowMatches: c.Verbose,
		ShowSummary: c.Verbose,
	})

	game, err := bingo.NewGame(
		bingo.WithRange(settings.Range),
		bingo.WithRNG(rng),
		bingo.WithLogger(logger),
		bingo.WithEventSubscriber(console),
	)
	if err != nil {
		return err
	}

	prototype := bingo.NewPlayer(
		bingo.WithTicketSize(settings.TicketSize),
		bingo.WithTicketRange(settings.Range),
	)
	players, err := bingo.RegisterPlayers(game, prototype, settings.Players, rng)
	if err != nil {
		return err
	}
	for _, p := range players {
		logger.Debug("Player registered", "player", p.Name(), "ticket", p.Ticket())
	}

	logger.Info("Starting game", "game", game.ID(), "seed", seed, "players", len(players), "range", settings.Range)

	result, err := game.Run()
	if err != nil {
		return err
	}

	logger.Info("Game finished",
		"game", result.GameID,
		"draws", result.DrawCount(),
		"winners", result.Winners,
		"elapsed", result.FinishedAt.Sub(result.StartedAt))
	return nil
}
