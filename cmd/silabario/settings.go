package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCommand() *cobra.Command {
	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the player settings",
	}
	settingsCommand.AddCommand(newSettingsShowCommand(), newSettingsSetCommand())
	return settingsCommand
}

func newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			prefs, err := newSettingsStore(cfg).Load()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Nombre: %s\nRondas: %d\n", prefs.Greeting(), prefs.Rounds)
			return nil
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	var playerName string
	var rounds int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the player name or the number of rounds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("rounds") {
				return fmt.Errorf("nothing to change, use --name or --rounds")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := newSettingsStore(cfg)
			prefs, err := store.Load()
			if err != nil {
				return fmt.Errorf("load settings: %w", err)
			}
			if cmd.Flags().Changed("name") {
				prefs.PlayerName = playerName
			}
			if cmd.Flags().Changed("rounds") {
				prefs.Rounds = rounds
			}
			if err := store.Save(prefs); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Ajustes guardados.")
			return nil
		},
	}
	cmd.Flags().StringVar(&playerName, "name", "", "Player name")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Default number of rounds in a random session")
	return cmd
}
