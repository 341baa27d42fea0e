package bingo

import (
	rand "math/rand/v2"
)

// DrawSource supplies the numbers a game draws. Reset is called once at the
// start of every game with the game's range.
type DrawSource interface {
	Reset(numbers NumberRange)
	Draw() (int, error)
	Remaining() int
}

// Pool holds the numbers that have not been drawn yet and hands them out
// uniformly at random without replacement.
type Pool struct {
	numbers []int
	rng     *rand.Rand
}

// NewPool creates an empty pool. Reset fills it.
func NewPool(rng *rand.Rand) *Pool {
	if rng == nil {
		panic("rng is required for pool creation")
	}
	return &Pool{rng: rng}
}

// Reset refills the pool with every number in the range.
func (p *Pool) Reset(numbers NumberRange) {
	p.numbers = p.numbers[:0]
	for n := numbers.Begin; n < numbers.End; n++ {
		p.numbers = append(p.numbers, n)
	}
}

// Draw removes and returns a random number from the pool.
func (p *Pool) Draw() (int, error) {
	if len(p.numbers) == 0 {
		return 0, ErrExhaustedPool
	}

	i := p.rng.IntN(len(p.numbers))
	n := p.numbers[i]

	// Order of the remaining numbers does not matter, swap-remove.
	last := len(p.numbers) - 1
	p.numbers[i] = p.numbers[last]
	p.numbers = p.numbers[:last]
	return n, nil
}

// Remaining returns the number of undrawn numbers.
func (p *Pool) Remaining() int {
	return len(p.numbers)
}

// ScriptedSource replays a fixed sequence of draws. It is used to replay a
// recorded game and to drive scenarios in tests.
type ScriptedSource struct {
	script []int
	next   int
}

// NewScriptedSource returns a source that yields numbers in the given order.
func NewScriptedSource(numbers ...int) *ScriptedSource {
	script := make([]int, len(numbers))
	copy(script, numbers)
	return &ScriptedSource{script: script}
}

// Reset rewinds the script. The range is ignored; the game still rejects
// scripted numbers that fall outside it.
func (s *ScriptedSource) Reset(NumberRange) {
	s.next = 0
}

func (s *ScriptedSource) Draw() (int, error) {
	if s.next >= len(s.script) {
		return 0, ErrExhaustedPool
	}
	n := s.script[s.next]
	s.next++
	return n, nil
}

func (s *ScriptedSource) Remaining() int {
	return len(s.script) - s.next
}
