package dice

// BettingGame adds monetary state and a wagering operation on top of a
// base Game. It wraps the game (composition) rather than specializing
// it: rolling semantics stay in Game, money handling lives here, and
// both satisfy Roller.
type BettingGame struct {
	game     *Game
	bankroll float64
}

var _ Roller = (*BettingGame)(nil)

// NewBettingGame builds the wagering variant around a fresh base game.
// bankroll < 0 is rejected with ErrBankroll; 0 is legal (no wagers will
// be accepted until funds exist, but Roll still works).
func NewBettingGame(cfg Config, seed int64, bankroll float64) (*BettingGame, error) {
	if bankroll < 0 {
		return nil, ErrBankroll
	}
	g, err := NewGame(cfg, seed)
	if err != nil {
		return nil, err
	}

	return &BettingGame{game: g, bankroll: bankroll}, nil
}

// Bankroll returns the current funds.
func (b *BettingGame) Bankroll() float64 {
	return b.bankroll
}

// Roll forwards to the base game without touching the bankroll.
func (b *BettingGame) Roll() Outcome {
	return b.game.Roll()
}

// Wager stakes amount on the next roll at even money: a hit adds amount
// to the bankroll, a miss subtracts it. The roll happens only after the
// stake validates, so a rejected wager never consumes randomness.
//
// Errors: ErrBadWager (amount <= 0), ErrBankroll (amount > Bankroll()).
func (b *BettingGame) Wager(amount float64) (Outcome, error) {
	if amount <= 0 {
		return Outcome{}, ErrBadWager
	}
	if amount > b.bankroll {
		return Outcome{}, ErrBankroll
	}

	out := b.game.Roll()
	if out.Hit {
		b.bankroll += amount
	} else {
		b.bankroll -= amount
	}

	return out, nil
}
