package bingo

import (
	"fmt"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/bingo/internal/randutil"
)

func TestGame_SinglePlayerScenario(t *testing.T) {
	g := newScriptedGame(t, NumberRange{Begin: 1, End: 10}, []int{1, 3, 2, 7})

	player := NewPlayerWithTicket("Solo", 3, 7)
	g.Register(player)
	watcher := &probe{watch: []*Player{player}}
	g.Register(watcher)

	result, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 2, 7}, result.Draws)
	assert.Equal(t, []string{"Solo"}, result.Winners)
	assert.Equal(t, 4, result.DrawCount())

	require.Len(t, watcher.tickets, 4)
	assert.Equal(t, []int{3, 7}, watcher.tickets[0][0])
	assert.Equal(t, []int{7}, watcher.tickets[1][0])
	assert.Equal(t, []int{7}, watcher.tickets[2][0])
	assert.Empty(t, watcher.tickets[3][0])

	assert.True(t, player.Won())
	assert.False(t, g.Running())
	assert.Equal(t, 7, g.Number())
}

func TestGame_TwoPlayerScenario(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{5, 1, 6, 2})

	p1 := NewPlayerWithTicket("P1", 1, 2)
	p2 := NewPlayerWithTicket("P2", 5, 6)
	g.Register(p1)
	g.Register(p2)

	result, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, []int{5, 1, 6}, result.Draws, "the 4th draw must not happen")
	assert.Equal(t, []string{"P2"}, result.Winners)
	assert.Equal(t, []int{2}, p1.Ticket())
	assert.False(t, p1.Won())
	assert.True(t, p2.Won())
}

func TestGame_NoParticipants(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{1, 2, 3})

	result, err := g.Run()
	assert.ErrorIs(t, err, ErrNoParticipants)
	assert.Nil(t, result)
}

func TestGame_ExhaustedPool(t *testing.T) {
	t.Run("scripted source runs dry", func(t *testing.T) {
		g := newScriptedGame(t, DefaultRange, []int{1, 2})
		g.Register(NewPlayerWithTicket("Never", 50, 60))

		_, err := g.Run()
		assert.ErrorIs(t, err, ErrExhaustedPool)
	})

	t.Run("random pool runs dry", func(t *testing.T) {
		g, err := NewGame(
			WithRange(NumberRange{Begin: 1, End: 6}),
			WithRNG(randutil.New(3)),
			WithLogger(quietLogger()),
		)
		require.NoError(t, err)

		// A ticket number outside the range can never be matched.
		g.Register(NewPlayerWithTicket("Never", 99))

		_, err = g.Run()
		require.ErrorIs(t, err, ErrExhaustedPool)
		assert.Equal(t, 0, g.Remaining())
	})
}

func TestGame_RejectsInvalidScriptedDraws(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
	}{
		{"out of range", []int{1, 10}},
		{"below range", []int{0}},
		{"duplicate", []int{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newScriptedGame(t, NumberRange{Begin: 1, End: 10}, tt.draws)
			g.Register(NewPlayerWithTicket("P", 8, 9))

			_, err := g.Run()
			assert.ErrorIs(t, err, ErrInvalidDraw)
		})
	}
}

func TestGame_NotificationOrder(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{10, 20, 30})

	var calls []string
	a := &probe{name: "A", calls: &calls}
	b := &probe{name: "B", calls: &calls}
	c := &probe{name: "C", calls: &calls}
	g.Register(a)
	g.Register(b)
	g.Register(c)
	g.Register(NewPlayerWithTicket("Winner", 30))

	_, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"A", "B", "C",
		"A", "B", "C",
		"A", "B", "C",
	}, calls)
}

func TestGame_RoundCompletesAfterWin(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{7, 8, 9})

	early := NewPlayerWithTicket("Early", 7)
	late := NewPlayerWithTicket("Late", 7, 8)
	watcher := &probe{}
	g.Register(early)
	g.Register(late)
	g.Register(watcher)

	result, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, []int{7}, result.Draws)
	assert.Equal(t, []int{8}, late.Ticket(), "players after the winner still see the draw")
	assert.Equal(t, []int{7}, watcher.numbers)
}

func TestGame_SimultaneousWinners(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{1, 2, 3})

	g.Register(NewPlayerWithTicket("First", 1, 2))
	g.Register(NewPlayerWithTicket("Second", 2))
	g.Register(NewPlayerWithTicket("Third", 3))

	result, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2}, result.Draws)
	assert.Equal(t, []string{"First", "Second"}, result.Winners)
}

func TestGame_DuplicateRegistration(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{1, 2})

	watcher := &probe{}
	g.Register(watcher)
	g.Register(watcher)
	g.Register(NewPlayerWithTicket("P", 2))
	assert.Equal(t, 3, g.Registered())

	_, err := g.Run()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 2, 2}, watcher.numbers)
}

func TestGame_Unregister(t *testing.T) {
	g := newScriptedGame(t, DefaultRange, []int{1, 2})

	watcher := &probe{}
	player := NewPlayerWithTicket("P", 2)
	g.Register(watcher)
	g.Register(player)

	require.NoError(t, g.Unregister(watcher))
	assert.ErrorIs(t, g.Unregister(watcher), ErrUnregisteredParticipant)
	assert.ErrorIs(t, g.Unregister(NewPlayerWithTicket("Stranger", 1)), ErrUnregisteredParticipant)

	_, err := g.Run()
	require.NoError(t, err)
	assert.Empty(t, watcher.numbers)
}

func TestGame_InvalidRange(t *testing.T) {
	_, err := NewGame(WithRange(NumberRange{Begin: 5, End: 5}))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestGame_RandomRunProperties(t *testing.T) {
	names := []string{"Thomas Aquinas", "Aristotle", "Confucius", "René Descartes", "Ralph Waldo Emerson"}

	for seed := int64(1); seed <= 25; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := randutil.New(seed)
			g, err := NewGame(WithRNG(rng), WithLogger(quietLogger()))
			require.NoError(t, err)

			players, err := RegisterPlayers(g, NewPlayer(), names, rng)
			require.NoError(t, err)
			watcher := &probe{watch: players}
			g.Register(watcher)

			result, err := g.Run()
			require.NoError(t, err)

			// Draws are unique and within range.
			seen := make(map[int]bool)
			for _, n := range result.Draws {
				assert.True(t, DefaultRange.Contains(n), "draw %d out of range", n)
				assert.False(t, seen[n], "draw %d repeated", n)
				seen[n] = true
			}
			assert.LessOrEqual(t, result.DrawCount(), DefaultRange.Size())

			// Ticket sizes never grow.
			for i := range players {
				prev := DefaultTicketSize
				for _, round := range watcher.tickets {
					size := len(round[i])
					assert.LessOrEqual(t, size, prev)
					prev = size
				}
			}

			// The game stops on the first round that empties a ticket.
			last := len(watcher.tickets) - 1
			for round := 0; round < last; round++ {
				for i := range players {
					assert.NotEmpty(t, watcher.tickets[round][i], "ticket emptied before the final round")
				}
			}
			require.NotEmpty(t, result.Winners)
			for _, p := range players {
				assert.Equal(t, p.Won(), p.Remaining() == 0)
			}
		})
	}
}

func TestGame_SeededRunsAreReproducible(t *testing.T) {
	play := func() *Result {
		rng := randutil.New(99)
		g, err := NewGame(WithRNG(rng), WithLogger(quietLogger()), WithGameID("repeat"))
		require.NoError(t, err)
		_, err = RegisterPlayers(g, NewPlayer(), []string{"A", "B", "C"}, rng)
		require.NoError(t, err)
		result, err := g.Run()
		require.NoError(t, err)
		return result
	}

	first, second := play(), play()
	assert.Equal(t, first.Draws, second.Draws)
	assert.Equal(t, first.Winners, second.Winners)
}

func TestGame_Events(t *testing.T) {
	mClock := quartz.NewMock(t)
	start := mClock.Now()

	events := &collector{}
	g := newScriptedGame(t, DefaultRange, []int{5, 1, 6},
		WithClock(mClock),
		WithEventSubscriber(events),
	)
	g.Register(NewPlayerWithTicket("P1", 1, 2))
	g.Register(NewPlayerWithTicket("P2", 5, 6))
	g.Register(&ticker{clock: mClock})

	_, err := g.Run()
	require.NoError(t, err)

	types := make([]EventType, len(events.events))
	for i, e := range events.events {
		types[i] = e.EventType()
	}
	assert.Equal(t, []EventType{
		EventTypeGameStart,
		EventTypeNumberDrawn, EventTypeNumberMatched,
		EventTypeNumberDrawn, EventTypeNumberMatched,
		EventTypeNumberDrawn, EventTypeNumberMatched, EventTypeWinner,
		EventTypeGameEnd,
	}, types)

	startEvent := events.events[0].(GameStartEvent)
	assert.Equal(t, "test-game", startEvent.GameID)
	assert.Equal(t, []string{"P1", "P2"}, startEvent.Players)
	assert.Equal(t, start, startEvent.Timestamp())

	drawn := events.ofType(EventTypeNumberDrawn)
	for i, e := range drawn {
		d := e.(NumberDrawnEvent)
		assert.Equal(t, i+1, d.Sequence)
		assert.Equal(t, start.Add(time.Duration(i)*time.Second), d.Timestamp())
	}

	winner := events.ofType(EventTypeWinner)[0].(WinnerEvent)
	assert.Equal(t, "P2", winner.Player)
	assert.Equal(t, 6, winner.Number)

	end := events.ofType(EventTypeGameEnd)[0].(GameEndEvent)
	assert.Equal(t, []string{"P2"}, end.Winners)
	assert.Equal(t, 3, end.Draws)
	assert.Equal(t, start.Add(3*time.Second), end.Timestamp())
}

// ticker advances the mock clock by a second at the end of every round.
type ticker struct {
	clock *quartz.Mock
}

func (tk *ticker) OnDraw(int, Handle) {
	tk.clock.Advance(time.Second)
}
