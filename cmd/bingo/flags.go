package main

import (
	"github.com/charmbracelet/log"

	"github.com/lox/bingo/internal/config"
	"github.com/lox/bingo/internal/randutil"
)

// GameFlags are shared by every command that plays games. Flags override the
// config file, which overrides the built-in defaults.
type GameFlags struct {
	Config     string   `short:"c" type:"path" help:"HCL config file" env:"BINGO_CONFIG"`
	Players    []string `short:"p" sep:"none" help:"Player name, repeat for each player in registration order"`
	Seed       int64    `help:"Random seed, 0 picks a fresh one" env:"BINGO_SEED"`
	RangeBegin *int     `help:"First number that can be drawn"`
	RangeEnd   *int     `help:"Upper bound of the draw range (exclusive)"`
	TicketSize int      `help:"Numbers on each ticket"`
	Debug      bool     `help:"Enable debug logging"`
}

// Settings resolves defaults, the config file and the flags into one set of
// validated settings.
func (f *GameFlags) Settings() (*config.Settings, error) {
	settings := config.Default()
	if f.Config != "" {
		loaded, err := config.Load(f.Config)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if len(f.Players) > 0 {
		settings.Players = f.Players
	}
	if f.Seed != 0 {
		settings.Seed = f.Seed
	}
	if f.RangeBegin != nil {
		settings.Range.Begin = *f.RangeBegin
	}
	if f.RangeEnd != nil {
		settings.Range.End = *f.RangeEnd
	}
	if f.TicketSize != 0 {
		settings.TicketSize = f.TicketSize
	}
	if f.Debug {
		settings.LogLevel = log.DebugLevel.String()
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// seed returns the configured seed, or a fresh one when none was given.
func seed(settings *config.Settings) (int64, error) {
	if settings.Seed != 0 {
		return settings.Seed, nil
	}
	return randutil.NewSeed()
}
