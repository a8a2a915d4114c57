package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/suderio/coup/internal/engine"
	"github.com/suderio/coup/internal/session"
	"go.uber.org/zap"
)

// maxSteps bounds a simulated game that keeps undoing itself.
const maxSteps = 2000

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random games and report wins per role",
	Long: `Seats random roles, lets every player pick uniformly among its legal moves and
tallies the winning roles. Useful to check a house ruleset for balance.`,
	Run: func(cmd *cobra.Command, args []string) {
		games, _ := cmd.Flags().GetInt("games")
		players, _ := cmd.Flags().GetInt("players")
		out, _ := cmd.Flags().GetString("transcript")

		logger, err := newLogger()
		if err != nil {
			fmt.Printf("Failed to build logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		doc, err := loadRuleset()
		if err != nil {
			fmt.Printf("Failed to load ruleset: %v\n", err)
			os.Exit(1)
		}

		var rec *session.Transcript
		if out != "" {
			rec, err = session.NewTranscript(out)
			if err != nil {
				fmt.Printf("Failed to open transcript: %v\n", err)
				os.Exit(1)
			}
			defer rec.Close()
		}

		rng := newRand()
		wins := make(map[engine.RoleKind]int)
		unfinished := 0

		bar := progressbar.Default(int64(games), "Simulating")
		for i := 0; i < games; i++ {
			g, err := engine.New(doc.Rules,
				engine.WithLogger(logger),
				engine.WithRand(rand.New(rand.NewSource(rng.Int63()))),
			)
			if err != nil {
				fmt.Printf("Failed to create game: %v\n", err)
				os.Exit(1)
			}
			winner, err := simulate(g, players, rng)
			if err != nil {
				logger.Warn("simulated game aborted", zap.String("game_id", g.ID()), zap.Error(err))
			}
			if rec != nil {
				for _, evt := range g.Journal() {
					if err := rec.Append(evt); err != nil {
						fmt.Printf("Failed to write transcript: %v\n", err)
						os.Exit(1)
					}
				}
			}
			if winner == "" {
				unfinished++
			} else {
				role, _ := g.Role(winner)
				wins[role]++
			}
			bar.Add(1)
		}
		fmt.Println()

		roles := make([]engine.RoleKind, 0, len(wins))
		for r := range wins {
			roles = append(roles, r)
		}
		sort.Slice(roles, func(a, b int) bool { return wins[roles[a]] > wins[roles[b]] })
		for _, r := range roles {
			fmt.Printf("%-10s %6d  %5.1f%%\n", r, wins[r], 100*float64(wins[r])/float64(games))
		}
		if unfinished > 0 {
			fmt.Printf("%-10s %6d\n", "unfinished", unfinished)
		}
	},
}

// simulate seats n random players and plays uniformly random legal moves
// until someone wins. It returns "" when the game did not finish.
func simulate(g *engine.Game, n int, rng *rand.Rand) (string, error) {
	for i := 1; i <= n; i++ {
		if _, err := g.RegisterRandom(fmt.Sprintf("p%d", i)); err != nil {
			return "", err
		}
	}
	if err := g.Start(); err != nil {
		return "", err
	}
	for step := 0; step < maxSteps && !g.IsOver(); step++ {
		cur := g.CurrentTurn()
		moves := g.LegalActions(cur)
		if len(moves) == 0 {
			// Nothing legal left, e.g. broke and sanctioned: the seat forfeits.
			if _, err := g.Eliminate(cur); err != nil {
				return "", err
			}
			continue
		}
		m := moves[rng.Intn(len(moves))]
		if _, err := g.Do(m.Action, cur, m.Target); err != nil {
			return "", fmt.Errorf("legal move %s by %s rejected: %w", m, cur, err)
		}
	}
	if !g.IsOver() {
		return "", nil
	}
	return g.Winner()
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().IntP("games", "n", 100, "Number of games to play")
	simulateCmd.Flags().IntP("players", "p", 4, "Players per game")
	simulateCmd.Flags().StringP("transcript", "t", "", "Append every simulated game to this JSONL transcript")
}
