// Package dice simulates simple target-sum dice games.
//
// Design rules, applied throughout:
//   - Configuration is an immutable value held per instance; there is no
//     package-level mutable state, so concurrent games cannot bleed
//     settings into each other.
//   - All randomness comes from a seeded per-game stream (seed==0 maps
//     to a fixed default), never from a hidden global source.
//   - The wagering variant composes a base game instead of extending it;
//     both variants satisfy the small Roller capability interface.
package dice

import (
	"errors"
	"math/rand"
)

var (
	// ErrBadConfig indicates an unusable Config (Dice < 1 or Sides < 2).
	ErrBadConfig = errors.New("dice: invalid config")

	// ErrBadRounds indicates a round count < 1.
	ErrBadRounds = errors.New("dice: round count must be >= 1")

	// ErrBadWager indicates a wager amount <= 0.
	ErrBadWager = errors.New("dice: wager must be positive")

	// ErrBankroll indicates a wager exceeding the current bankroll.
	ErrBankroll = errors.New("dice: wager exceeds bankroll")
)

// defaultSeed replaces seed==0 so the zero value stays deterministic.
const defaultSeed int64 = 1

// Config describes one game: how many dice, how many sides per die, and
// the total that counts as a hit. It is copied into each Game; mutating
// a Config after construction affects nothing.
type Config struct {
	// Dice is the number of dice thrown per roll. Must be >= 1.
	Dice int

	// Sides is the number of faces per die. Must be >= 2.
	Sides int

	// Target is the total (sum of faces) that counts as a hit:
	// Total >= Target. Values below Dice always hit; values above
	// Dice·Sides never do. Both degenerate settings are legal.
	Target int
}

func (c Config) validate() error {
	if c.Dice < 1 || c.Sides < 2 {
		return ErrBadConfig
	}

	return nil
}

// Outcome is the result of a single roll.
type Outcome struct {
	// Faces holds each die's face value, in throw order.
	Faces []int

	// Total is the sum of Faces.
	Total int

	// Hit reports Total >= Target.
	Hit bool
}

// Stats summarizes repeated rolls.
type Stats struct {
	Rounds  int
	Hits    int
	HitRate float64
}

// Roller is the capability both game variants expose: produce one roll
// outcome. It is the seam a reporting layer programs against.
type Roller interface {
	Roll() Outcome
}

// Game is a dice game with its own immutable config and its own RNG
// stream. Not safe for concurrent use (math/rand.Rand is not).
type Game struct {
	cfg Config
	rng *rand.Rand
}

var _ Roller = (*Game)(nil)

// NewGame returns a game over cfg with a deterministic stream derived
// from seed (seed==0 selects the fixed default stream).
func NewGame(cfg Config, seed int64) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = defaultSeed
	}

	return &Game{cfg: cfg, rng: rand.New(rand.NewSource(seed))}, nil
}

// Config returns the game's configuration (a copy; games are immutable
// after construction).
func (g *Game) Config() Config {
	return g.cfg
}

// Roll throws all dice once.
//
// Complexity: O(Dice).
func (g *Game) Roll() Outcome {
	out := Outcome{Faces: make([]int, g.cfg.Dice)}
	for i := range out.Faces {
		out.Faces[i] = 1 + g.rng.Intn(g.cfg.Sides)
		out.Total += out.Faces[i]
	}
	out.Hit = out.Total >= g.cfg.Target

	return out
}

// Play rolls rounds times and aggregates hit statistics.
//
// Errors: ErrBadRounds for rounds < 1.
func (g *Game) Play(rounds int) (Stats, error) {
	if rounds < 1 {
		return Stats{}, ErrBadRounds
	}

	st := Stats{Rounds: rounds}
	for r := 0; r < rounds; r++ {
		if g.Roll().Hit {
			st.Hits++
		}
	}
	st.HitRate = float64(st.Hits) / float64(rounds)

	return st, nil
}
