package bingo

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/bingo/internal/randutil"
)

// DefaultTicketSize is how many numbers a configured ticket holds.
const DefaultTicketSize = 5

// PlayerOption configures a player prototype.
type PlayerOption func(*Player)

// WithTicketSize sets how many numbers Configure puts on the ticket.
func WithTicketSize(size int) PlayerOption {
	return func(p *Player) {
		p.size = size
	}
}

// WithTicketRange sets the range Configure samples ticket numbers from. It
// should match the game's range.
func WithTicketRange(numbers NumberRange) PlayerOption {
	return func(p *Player) {
		p.numbers = numbers
	}
}

// Player holds a name and a ticket of numbers still to be matched.
//
// A player is Active while its ticket has numbers on it and Won once a draw
// has emptied it. Won is terminal: later draws are ignored.
type Player struct {
	name       string
	ticket     map[int]struct{}
	size       int
	numbers    NumberRange
	configured bool
	won        bool
}

// NewPlayer returns an unconfigured player, typically used as the prototype
// for RegisterPlayers.
func NewPlayer(opts ...PlayerOption) *Player {
	p := &Player{
		size:    DefaultTicketSize,
		numbers: DefaultRange,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewPlayerWithTicket returns a configured player holding exactly the given
// numbers. Duplicates collapse.
func NewPlayerWithTicket(name string, numbers ...int) *Player {
	p := &Player{
		name:       name,
		ticket:     make(map[int]struct{}, len(numbers)),
		configured: true,
	}
	for _, n := range numbers {
		p.ticket[n] = struct{}{}
	}
	p.size = len(p.ticket)
	return p
}

// Configure names the player and deals a fresh ticket sampled without
// repetition from the player's range.
func (p *Player) Configure(name string, rng *rand.Rand) error {
	if rng == nil {
		panic("rng is required to configure a player")
	}
	if err := p.numbers.Validate(); err != nil {
		return err
	}
	if p.size <= 0 || p.size > p.numbers.Size() {
		return fmt.Errorf("%w: %d numbers from %s", ErrInvalidTicketSize, p.size, p.numbers)
	}

	p.name = name
	p.ticket = make(map[int]struct{}, p.size)
	for _, n := range randutil.Sample(rng, p.numbers.Begin, p.numbers.End, p.size) {
		p.ticket[n] = struct{}{}
	}
	p.won = false
	p.configured = true
	return nil
}

// Clone returns a player with the same name and its own copy of the ticket.
func (p *Player) Clone() (*Player, error) {
	if !p.configured {
		return nil, ErrUninitializedParticipant
	}

	clone := *p
	clone.ticket = make(map[int]struct{}, len(p.ticket))
	for n := range p.ticket {
		clone.ticket[n] = struct{}{}
	}
	return &clone, nil
}

// OnDraw crosses number off the ticket. The draw that empties the ticket
// announces the win and stops the game.
func (p *Player) OnDraw(number int, game Handle) {
	if p.won {
		return
	}
	if _, ok := p.ticket[number]; !ok {
		return
	}

	delete(p.ticket, number)
	game.Publish(NewNumberMatchedEvent(p.name, number, len(p.ticket), game.Now()))

	if len(p.ticket) == 0 {
		p.won = true
		game.Publish(NewWinnerEvent(p.name, number, game.Now()))
		game.Stop()
	}
}

func (p *Player) Name() string { return p.name }

// Ticket returns the numbers still to be matched, in ascending order.
func (p *Player) Ticket() []int {
	numbers := make([]int, 0, len(p.ticket))
	for n := range p.ticket {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)
	return numbers
}

// Remaining returns how many numbers are still on the ticket.
func (p *Player) Remaining() int { return len(p.ticket) }

// Won reports whether a draw has emptied the ticket.
func (p *Player) Won() bool { return p.won }

func (p *Player) String() string {
	return fmt.Sprintf("%s %v", p.name, p.Ticket())
}
