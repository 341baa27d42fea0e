package bingo

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

// probe records what it sees on every draw. Registered after the players it
// watches, it observes their state at the end of each round.
type probe struct {
	name    string
	watch   []*Player
	numbers []int
	tickets [][][]int
	calls   *[]string
}

func (p *probe) OnDraw(number int, game Handle) {
	p.numbers = append(p.numbers, number)
	snapshot := make([][]int, len(p.watch))
	for i, player := range p.watch {
		snapshot[i] = player.Ticket()
	}
	p.tickets = append(p.tickets, snapshot)
	if p.calls != nil {
		*p.calls = append(*p.calls, p.name)
	}
}

// collector gathers published events.
type collector struct {
	events []Event
}

func (c *collector) OnEvent(event Event) {
	c.events = append(c.events, event)
}

func (c *collector) ofType(t EventType) []Event {
	var out []Event
	for _, e := range c.events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newScriptedGame(t *testing.T, numbers NumberRange, draws []int, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{
		WithRange(numbers),
		WithDrawSource(NewScriptedSource(draws...)),
		WithLogger(quietLogger()),
		WithGameID("test-game"),
	}, opts...)
	g, err := NewGame(opts...)
	require.NoError(t, err)
	return g
}
