package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dstrand/simlab/dice"
)

func newDiceCmd() *cobra.Command {
	var (
		rounds   int
		nDice    int
		sides    int
		target   int
		seed     int64
		bet      float64
		bankroll float64
	)

	cmd := &cobra.Command{
		Use:   "dice",
		Short: "Play a seeded dice-game session",
		Long: `Plays a target-sum dice game for a number of rounds and reports hit
statistics. With --bet > 0 the wagering variant stakes that amount on
every round (even money) until the rounds run out or the bankroll can
no longer cover the bet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := dice.Config{Dice: nDice, Sides: sides, Target: target}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "game: %dd%d, target %d, seed %d\n", cfg.Dice, cfg.Sides, cfg.Target, seed)

			if bet <= 0 {
				g, err := dice.NewGame(cfg, seed)
				if err != nil {
					return err
				}
				st, err := g.Play(rounds)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "rounds: %d, hits: %d, hit rate: %.3f\n", st.Rounds, st.Hits, st.HitRate)

				return nil
			}

			b, err := dice.NewBettingGame(cfg, seed, bankroll)
			if err != nil {
				return err
			}
			played, hits := 0, 0
			for r := 0; r < rounds; r++ {
				outcome, werr := b.Wager(bet)
				if werr != nil {
					// bankroll exhausted below the stake; stop the session
					break
				}
				played++
				if outcome.Hit {
					hits++
				}
			}
			fmt.Fprintf(out, "rounds: %d, hits: %d, bankroll: %.2f (started %.2f, stake %.2f)\n",
				played, hits, b.Bankroll(), bankroll, bet)

			return nil
		},
	}

	cmd.Flags().IntVar(&rounds, "rounds", 100, "rounds to play")
	cmd.Flags().IntVar(&nDice, "dice", 2, "dice per roll")
	cmd.Flags().IntVar(&sides, "sides", 6, "faces per die")
	cmd.Flags().IntVar(&target, "target", 8, "total that counts as a hit")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = fixed default)")
	cmd.Flags().Float64Var(&bet, "bet", 0, "stake per round (0 = no wagering)")
	cmd.Flags().Float64Var(&bankroll, "bankroll", 100, "starting bankroll for wagering")

	return cmd
}
