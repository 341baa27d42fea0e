package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Seed    int64    // RNG seed for this game (for replay)
	Draws   int      // Numbers drawn before the game stopped
	Winners []string // Players whose tickets emptied on the final draw
}

// Statistics tracks draws-to-win across many games
type Statistics struct {
	Games     int
	SumDraws  float64
	SumDraws2 float64   // Sum of squares for variance calculation
	Values    []float64 // Store all values for median/percentile calculation

	MinDraws int
	MaxDraws int

	// Win analytics
	Wins       map[string]int // Wins per player, shared wins count for every winner
	SharedWins int            // Games with more than one winner
}

// Mean returns the arithmetic mean number of draws per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumDraws / float64(s.Games)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumDraws2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	draws := float64(result.Draws)
	if s.Games == 0 || result.Draws < s.MinDraws {
		s.MinDraws = result.Draws
	}
	if result.Draws > s.MaxDraws {
		s.MaxDraws = result.Draws
	}

	s.Games++
	s.SumDraws += draws
	s.SumDraws2 += draws * draws
	s.Values = append(s.Values, draws)

	if s.Wins == nil {
		s.Wins = make(map[string]int)
	}
	for _, name := range result.Winners {
		s.Wins[name]++
	}
	if len(result.Winners) > 1 {
		s.SharedWins++
	}
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of games the named player won outright or shared
func (s *Statistics) WinRate(player string) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[player]) / float64(s.Games)
}

// Players returns every player with at least one win, most wins first
func (s *Statistics) Players() []string {
	names := make([]string, 0, len(s.Wins))
	for name := range s.Wins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if s.Wins[names[i]] != s.Wins[names[j]] {
			return s.Wins[names[i]] > s.Wins[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	// Every game ends with at least one winner
	totalWins := 0
	for _, n := range s.Wins {
		totalWins += n
	}
	if totalWins < s.Games {
		return fmt.Errorf("total wins (%d) below games count (%d)", totalWins, s.Games)
	}

	if s.MinDraws < 1 || s.MinDraws > s.MaxDraws {
		return fmt.Errorf("draw bounds out of order: min=%d max=%d", s.MinDraws, s.MaxDraws)
	}

	return nil
}

// Summary is the machine-readable digest of a simulation run.
type Summary struct {
	Games      int            `json:"games"`
	Mean       float64        `json:"mean_draws"`
	StdDev     float64        `json:"stddev_draws"`
	CILow      float64        `json:"ci95_low"`
	CIHigh     float64        `json:"ci95_high"`
	Median     float64        `json:"median_draws"`
	P10        float64        `json:"p10_draws"`
	P90        float64        `json:"p90_draws"`
	MinDraws   int            `json:"min_draws"`
	MaxDraws   int            `json:"max_draws"`
	SharedWins int            `json:"shared_wins"`
	Wins       map[string]int `json:"wins"`
}

// Summary computes the digest of the accumulated results
func (s *Statistics) Summary() Summary {
	low, high := s.ConfidenceInterval95()
	wins := make(map[string]int, len(s.Wins))
	for name, n := range s.Wins {
		wins[name] = n
	}
	return Summary{
		Games:      s.Games,
		Mean:       s.Mean(),
		StdDev:     s.StdDev(),
		CILow:      low,
		CIHigh:     high,
		Median:     s.Median(),
		P10:        s.Percentile(0.1),
		P90:        s.Percentile(0.9),
		MinDraws:   s.MinDraws,
		MaxDraws:   s.MaxDraws,
		SharedWins: s.SharedWins,
		Wins:       wins,
	}
}
