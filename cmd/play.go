package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boyter/dilemma/config"
	"github.com/boyter/dilemma/runner"
)

var (
	configPath string // Optional YAML game config
	rounds     int    // Number of rounds to play
	player1    string // Strategy key for player one
	player2    string // Strategy key for player two
	seed       uint64 // Seed for random strategies
	genomePath string // goNEAT genome for the neural strategy
	quiet      bool   // Suppress per-round output
)

// playCmd runs one repeated game between two strategies
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play two strategies against each other",
	Run:   runPlay,
}

// runPlay also backs the bare root command, which plays the reference game.
func runPlay(cmd *cobra.Command, args []string) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logrus.Fatalf("Failed to load config %s: %v", configPath, err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cmd, &cfg)

	if !cfg.Payoff.IsDilemma() {
		logrus.Warnf("Payoffs %+v do not satisfy temptation > reward > punishment > sucker", cfg.Payoff)
	}

	g, err := cfg.NewGame()
	if err != nil {
		logrus.Fatalf("Invalid game configuration: %v", err)
	}

	r := runner.New(cmd.OutOrStdout())
	r.Quiet = quiet
	res, err := r.Run(g)
	if err != nil {
		logrus.Fatalf("Game failed: %v", err)
	}
	logrus.WithField("game", res.GameID).Infof("Final score %s", res.Score)
}

// applyFlagOverrides copies flags the user actually set over the config, so
// flag defaults never clobber values from the file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("rounds") {
		cfg.Rounds = rounds
	}
	if flags.Changed("p1") {
		setPlayer(cfg, 0, player1)
	}
	if flags.Changed("p2") {
		setPlayer(cfg, 1, player2)
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("genome") {
		cfg.Genome = genomePath
	}
}

func setPlayer(cfg *config.Config, seat int, key string) {
	players := append([]string(nil), cfg.Players...)
	for len(players) <= seat {
		players = append(players, "")
	}
	players[seat] = key
	cfg.Players = players
}

func init() {
	playCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML game config")
	playCmd.Flags().IntVar(&rounds, "rounds", config.DefaultRounds, "Number of rounds to play")
	playCmd.Flags().StringVar(&player1, "p1", "always-cooperate", "Strategy for player one, see the strategies command")
	playCmd.Flags().StringVar(&player2, "p2", "always-defect", "Strategy for player two")
	playCmd.Flags().Uint64Var(&seed, "seed", 42, "Seed for random strategies")
	playCmd.Flags().StringVar(&genomePath, "genome", "", "goNEAT genome file for the neural strategy (random network if empty)")
	playCmd.Flags().BoolVar(&quiet, "quiet", false, "Only print the header and final score")

	rootCmd.AddCommand(playCmd)
	rootCmd.Run = runPlay
}
