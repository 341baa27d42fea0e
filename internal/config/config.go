// Package config loads game settings from an optional HCL file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/bingo/internal/bingo"
)

// DefaultPlayers is the line-up used when neither the config file nor the
// command line names any players.
var DefaultPlayers = []string{
	"Thomas Aquinas",
	"Aristotle",
	"Confucius",
	"René Descartes",
	"Ralph Waldo Emerson",
}

// Settings is the resolved configuration for a game or a batch of games.
type Settings struct {
	Range      bingo.NumberRange
	TicketSize int
	Seed       int64 // 0 means pick a fresh seed per run
	LogLevel   string
	Players    []string
}

// fileConfig mirrors the HCL file layout.
type fileConfig struct {
	Game    *gameBlock    `hcl:"game,block"`
	Players []playerBlock `hcl:"player,block"`
}

type gameBlock struct {
	RangeBegin *int    `hcl:"range_begin,optional"`
	RangeEnd   *int    `hcl:"range_end,optional"`
	TicketSize *int    `hcl:"ticket_size,optional"`
	Seed       *int64  `hcl:"seed,optional"`
	LogLevel   *string `hcl:"log_level,optional"`
}

type playerBlock struct {
	Name string `hcl:"name,label"`
}

// Default returns the built-in settings
func Default() *Settings {
	players := make([]string, len(DefaultPlayers))
	copy(players, DefaultPlayers)
	return &Settings{
		Range:      bingo.DefaultRange,
		TicketSize: bingo.DefaultTicketSize,
		LogLevel:   "info",
		Players:    players,
	}
}

// Load reads settings from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Settings, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source on top of the defaults and validates the result.
func Parse(src []byte, filename string) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	settings := Default()
	if g := fc.Game; g != nil {
		if g.RangeBegin != nil {
			settings.Range.Begin = *g.RangeBegin
		}
		if g.RangeEnd != nil {
			settings.Range.End = *g.RangeEnd
		}
		if g.TicketSize != nil {
			settings.TicketSize = *g.TicketSize
		}
		if g.Seed != nil {
			settings.Seed = *g.Seed
		}
		if g.LogLevel != nil {
			settings.LogLevel = *g.LogLevel
		}
	}
	if len(fc.Players) > 0 {
		settings.Players = settings.Players[:0]
		for _, p := range fc.Players {
			settings.Players = append(settings.Players, p.Name)
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks the settings can produce a playable game.
func (s *Settings) Validate() error {
	if err := s.Range.Validate(); err != nil {
		return err
	}
	if s.TicketSize <= 0 || s.TicketSize > s.Range.Size() {
		return fmt.Errorf("%w: %d numbers from %s", bingo.ErrInvalidTicketSize, s.TicketSize, s.Range)
	}
	if len(s.Players) == 0 {
		return bingo.ErrNoParticipants
	}
	for i, name := range s.Players {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("player %d has an empty name", i+1)
		}
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (s *Settings) Level() log.Level {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
