package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/silabario/internal/cli"
	"github.com/at-ishikawa/silabario/internal/config"
	"github.com/at-ishikawa/silabario/internal/exercise"
)

type playFlags struct {
	mode ModeFlag
	seed uint64
}

func (f *playFlags) register(cmd *cobra.Command) {
	cmd.Flags().Var(&f.mode, "mode", "How the tonic syllable is answered in the complete game. Options: input, choice")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Random seed, 0 picks one")
}

func (f *playFlags) resolveMode(cfg *config.Config) exercise.Mode {
	if f.mode != "" {
		return exercise.Mode(f.mode)
	}
	return exercise.Mode(cfg.Game.CompleteMode)
}

func newPlayCommand() *cobra.Command {
	playCommand := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game with the stored words",
	}

	for _, kind := range exercise.Kinds() {
		playCommand.AddCommand(newPlayGameCommand(kind))
	}
	playCommand.AddCommand(newPlayRandomCommand())
	return playCommand
}

func newPlayGameCommand(kind exercise.Kind) *cobra.Command {
	var flags playFlags
	var batchSize int

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: kind.Title(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			words, err := repo.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repo.FindAll() > %w", err)
			}
			if batchSize <= 0 {
				batchSize = cfg.Game.BatchSize
			}

			base := cli.NewInteractiveCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			game, err := cli.NewGameCLI(base, kind, words, batchSize, flags.resolveMode(cfg), newRand(flags.seed))
			if err != nil {
				return fmt.Errorf("cli.NewGameCLI() > %w", err)
			}
			return game.Run(cmd.Context(), game)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&batchSize, "words", 0, "Number of words to play, 0 uses game.batch_size")
	return cmd
}

func newPlayRandomCommand() *cobra.Command {
	var flags playFlags
	var rounds int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Play a session of rounds with a random game each",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, repo, closeRepo, err := openRepository()
			if err != nil {
				return err
			}
			defer closeRepo()

			prefs, err := newSettingsStore(cfg).Load()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			if rounds == 0 {
				rounds = prefs.Rounds
			}

			words, err := repo.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("repo.FindAll() > %w", err)
			}

			base := cli.NewInteractiveCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			session, err := cli.NewRandomSessionCLI(base, prefs.Greeting(), words, rounds, flags.resolveMode(cfg), newRand(flags.seed))
			if err != nil {
				return fmt.Errorf("cli.NewRandomSessionCLI() > %w", err)
			}
			return session.Run(cmd.Context(), session)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Number of rounds, 0 uses the saved settings")
	return cmd
}
