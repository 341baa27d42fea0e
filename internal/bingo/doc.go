// Package bingo implements a single bingo game: a draw controller that pulls
// numbers from a pool without replacement, and players that cross numbers off
// their tickets until one of them has none left.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	g, err := bingo.NewGame(bingo.WithRNG(rng))
//	players, err := bingo.RegisterPlayers(g, bingo.NewPlayer(), names, rng)
//	result, err := g.Run()
//
// # Deterministic Testing
//
// Replace the pool with a fixed draw order:
//
//	g, _ := bingo.NewGame(bingo.WithDrawSource(bingo.NewScriptedSource(1, 3, 2, 7)))
//	g.Register(bingo.NewPlayerWithTicket("Alice", 3, 7))
//
// # Rounds
//
// Every draw is delivered to every registered listener before the running
// flag is checked again. A player that wins mid-round stops the game, but the
// players after it in registration order still see that draw, and more than
// one player can win on the same number.
package bingo
