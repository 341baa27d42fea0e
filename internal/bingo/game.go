package bingo

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/bingo/internal/gameid"
	"github.com/lox/bingo/internal/randutil"
)

// Handle is the view of a running game that listeners receive with every
// draw. It is the only way a listener can end the game.
type Handle interface {
	Number() int
	Running() bool
	Stop()
	Publish(event Event)
	Now() time.Time
}

// Listener is notified of every draw.
type Listener interface {
	OnDraw(number int, game Handle)
}

// Broadcaster manages listeners and notifies them of the current draw.
type Broadcaster interface {
	Register(listener Listener)
	Unregister(listener Listener) error
	Notify()
}

var (
	_ Broadcaster = (*Game)(nil)
	_ Handle      = (*Game)(nil)
	_ Listener    = (*Player)(nil)
)

// Result describes a finished game.
type Result struct {
	GameID     string
	Winners    []string
	Draws      []int
	StartedAt  time.Time
	FinishedAt time.Time
}

// DrawCount returns how many numbers were drawn before the game stopped.
func (r *Result) DrawCount() int {
	return len(r.Draws)
}

// Option configures a Game during creation.
type Option func(*gameConfig)

type gameConfig struct {
	id          string
	numbers     NumberRange
	rng         *rand.Rand
	source      DrawSource
	logger      *log.Logger
	clock       quartz.Clock
	subscribers []EventSubscriber
}

// WithRange sets the range numbers are drawn from. Default is DefaultRange.
func WithRange(numbers NumberRange) Option {
	return func(c *gameConfig) {
		c.numbers = numbers
	}
}

// WithRNG sets the random source used by the default Pool.
func WithRNG(rng *rand.Rand) Option {
	return func(c *gameConfig) {
		c.rng = rng
	}
}

// WithDrawSource replaces the random pool entirely, e.g. with a ScriptedSource.
func WithDrawSource(source DrawSource) Option {
	return func(c *gameConfig) {
		c.source = source
	}
}

// WithEventSubscriber subscribes s to the game's event bus.
func WithEventSubscriber(s EventSubscriber) Option {
	return func(c *gameConfig) {
		c.subscribers = append(c.subscribers, s)
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *gameConfig) {
		c.logger = logger
	}
}

func WithClock(clock quartz.Clock) Option {
	return func(c *gameConfig) {
		c.clock = clock
	}
}

func WithGameID(id string) Option {
	return func(c *gameConfig) {
		c.id = id
	}
}

// Game is the draw controller. It owns the undrawn pool, the current draw and
// the running flag, and notifies listeners in registration order.
//
// A game is single-threaded: listeners run synchronously on the goroutine
// that called Run, and the running flag is only checked between rounds, so a
// round always reaches every listener even after one of them has won.
type Game struct {
	id        string
	numbers   NumberRange
	source    DrawSource
	listeners []Listener

	number  int
	running bool
	draws   []int
	drawn   map[int]struct{}
	winners []string

	events *SimpleEventBus
	logger *log.Logger
	clock  quartz.Clock
}

// NewGame creates a game. Without WithRNG or WithDrawSource the pool is
// seeded from crypto/rand.
func NewGame(opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		numbers: DefaultRange,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.numbers.Validate(); err != nil {
		return nil, err
	}

	if cfg.source == nil {
		rng := cfg.rng
		if rng == nil {
			seed, err := randutil.NewSeed()
			if err != nil {
				return nil, err
			}
			rng = randutil.New(seed)
		}
		cfg.source = NewPool(rng)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.id == "" {
		cfg.id = gameid.Generate()
	}

	g := &Game{
		id:      cfg.id,
		numbers: cfg.numbers,
		source:  cfg.source,
		events:  NewEventBus(),
		logger:  cfg.logger,
		clock:   cfg.clock,
	}
	for _, s := range cfg.subscribers {
		g.events.Subscribe(s)
	}
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.id }

// Range returns the range numbers are drawn from.
func (g *Game) Range() NumberRange { return g.numbers }

// Events returns the bus that game and player events are published on.
func (g *Game) Events() EventBus { return g.events }

// Register appends a listener. Registering the same listener twice means it
// is notified twice per draw.
func (g *Game) Register(listener Listener) {
	g.listeners = append(g.listeners, listener)
}

// Unregister removes the first registration of listener.
func (g *Game) Unregister(listener Listener) error {
	for i, l := range g.listeners {
		if l == listener {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			return nil
		}
	}
	return ErrUnregisteredParticipant
}

// Registered returns the number of registrations.
func (g *Game) Registered() int {
	return len(g.listeners)
}

// Notify delivers the current draw to every listener, in registration order.
func (g *Game) Notify() {
	for _, l := range g.listeners {
		l.OnDraw(g.number, g)
	}
}

// Number returns the last drawn number, 0 before the first draw.
func (g *Game) Number() int { return g.number }

// Running reports whether the game will draw again.
func (g *Game) Running() bool { return g.running }

// Stop ends the game once the current round has been delivered.
func (g *Game) Stop() {
	g.running = false
}

// Remaining returns the number of undrawn numbers.
func (g *Game) Remaining() int { return g.source.Remaining() }

// Now returns the game clock's current time.
func (g *Game) Now() time.Time { return g.clock.Now() }

// Publish sends an event to every subscriber. Winner events are recorded in
// the game result.
func (g *Game) Publish(event Event) {
	if w, ok := event.(WinnerEvent); ok {
		g.winners = append(g.winners, w.Player)
		g.logger.Debug("Winner", "game", g.id, "player", w.Player, "number", w.Number, "draws", len(g.draws))
	}
	g.events.Publish(event)
}

// Run plays one game to completion. It returns ErrNoParticipants when
// nobody is registered and ErrExhaustedPool when the pool runs dry before
// anybody wins.
func (g *Game) Run() (*Result, error) {
	if len(g.listeners) == 0 {
		return nil, ErrNoParticipants
	}

	g.source.Reset(g.numbers)
	g.number = 0
	g.running = true
	g.draws = make([]int, 0, g.numbers.Size())
	g.drawn = make(map[int]struct{}, g.numbers.Size())
	g.winners = nil

	started := g.clock.Now()
	g.logger.Debug("Starting game", "game", g.id, "listeners", len(g.listeners), "range", g.numbers)
	g.events.Publish(NewGameStartEvent(g.id, g.playerNames(), g.numbers, started))

	for g.running {
		n, err := g.source.Draw()
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", len(g.draws)+1, err)
		}
		if err := g.accept(n); err != nil {
			return nil, err
		}

		g.number = n
		g.draws = append(g.draws, n)
		g.logger.Debug("Number drawn", "game", g.id, "number", n, "remaining", g.source.Remaining())
		g.events.Publish(NewNumberDrawnEvent(n, len(g.draws), g.source.Remaining(), g.clock.Now()))

		g.Notify()
	}

	finished := g.clock.Now()
	g.logger.Debug("Game over", "game", g.id, "winners", g.winners, "draws", len(g.draws))
	g.events.Publish(NewGameEndEvent(g.id, g.winners, len(g.draws), finished))

	draws := make([]int, len(g.draws))
	copy(draws, g.draws)
	winners := make([]string, len(g.winners))
	copy(winners, g.winners)

	return &Result{
		GameID:     g.id,
		Winners:    winners,
		Draws:      draws,
		StartedAt:  started,
		FinishedAt: finished,
	}, nil
}

// accept checks a drawn number against the range and the draw history.
func (g *Game) accept(n int) error {
	if !g.numbers.Contains(n) {
		return fmt.Errorf("%w: %d outside %s", ErrInvalidDraw, n, g.numbers)
	}
	if _, dup := g.drawn[n]; dup {
		return fmt.Errorf("%w: %d already drawn", ErrInvalidDraw, n)
	}
	g.drawn[n] = struct{}{}
	return nil
}

func (g *Game) playerNames() []string {
	var names []string
	for _, l := range g.listeners {
		if p, ok := l.(interface{ Name() string }); ok {
			names = append(names, p.Name())
		}
	}
	return names
}
