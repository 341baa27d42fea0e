package bingo

import (
	"fmt"
	rand "math/rand/v2"
)

// Registrar is anything players can be registered with.
type Registrar interface {
	Register(listener Listener)
}

// RegisterPlayers configures the prototype once per name, registers a clone
// of it each time, and returns the clones in registration order.
func RegisterPlayers(r Registrar, prototype *Player, names []string, rng *rand.Rand) ([]*Player, error) {
	if len(names) == 0 {
		return nil, ErrNoParticipants
	}

	players := make([]*Player, 0, len(names))
	for _, name := range names {
		if err := prototype.Configure(name, rng); err != nil {
			return nil, fmt.Errorf("configure %q: %w", name, err)
		}
		player, err := prototype.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone %q: %w", name, err)
		}
		r.Register(player)
		players = append(players, player)
	}
	return players, nil
}
