package simulator

import (
	"context"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/bingo/internal/bingo"
	"github.com/lox/bingo/internal/randutil"
	"github.com/lox/bingo/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Games      int
	Parallel   int // 0 means runtime.NumCPU()
	Seed       int64
	Players    []string
	Range      bingo.NumberRange
	TicketSize int
	Logger     *log.Logger
	Clock      quartz.Clock
}

// Simulator plays batches of independent bingo games
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Parallel <= 0 {
		config.Parallel = runtime.NumCPU()
	}
	if config.Range == (bingo.NumberRange{}) {
		config.Range = bingo.DefaultRange
	}
	if config.TicketSize == 0 {
		config.TicketSize = bingo.DefaultTicketSize
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Game i uses
// seed Seed+i, so any single game can be replayed with `bingo play --seed`.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}
	if len(s.config.Players) == 0 {
		return nil, bingo.ErrNoParticipants
	}

	results := make([]statistics.GameResult, s.config.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallel)

	for i := 0; i < s.config.Games; i++ {
		seed := s.config.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(seed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	return stats, nil
}

// playGame runs one game on its own RNG. Nothing is shared with other games.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)

	opts := []bingo.Option{
		bingo.WithRange(s.config.Range),
		bingo.WithRNG(rng),
		bingo.WithClock(s.config.Clock),
	}
	if s.config.Logger != nil {
		opts = append(opts, bingo.WithLogger(s.config.Logger.With("seed", seed)))
	}

	game, err := bingo.NewGame(opts...)
	if err != nil {
		return statistics.GameResult{}, err
	}

	prototype := bingo.NewPlayer(
		bingo.WithTicketSize(s.config.TicketSize),
		bingo.WithTicketRange(s.config.Range),
	)
	if _, err := bingo.RegisterPlayers(game, prototype, s.config.Players, rng); err != nil {
		return statistics.GameResult{}, err
	}

	result, err := game.Run()
	if err != nil {
		return statistics.GameResult{}, err
	}

	return statistics.GameResult{
		Seed:    seed,
		Draws:   result.DrawCount(),
		Winners: result.Winners,
	}, nil
}

// RunSimulation is a convenience function for running a batch with defaults
func RunSimulation(ctx context.Context, games int, seed int64, players []string, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Games:   games,
		Seed:    seed,
		Players: players,
		Logger:  logger,
	}).Run(ctx)
}
