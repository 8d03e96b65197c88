package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster management commands",
	}

	cmd.AddCommand(newRosterListCmd())
	cmd.AddCommand(newRosterAddCmd())
	cmd.AddCommand(newRosterRemoveCmd())

	return cmd
}

func newRosterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players in ranked order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster
			if err := client.Get("/api/v1/roster", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newRosterAddCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a player to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result Player

			if err := client.Post("/api/v1/roster", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRosterRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/roster/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Removed player %s", args[0]))
			return nil
		},
	}
}
