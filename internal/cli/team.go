package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team assembly commands",
	}

	cmd.AddCommand(newTeamShowCmd())
	cmd.AddCommand(newTeamSetCmd())
	cmd.AddCommand(newTeamSelectableCmd())
	cmd.AddCommand(newTeamCreatePlayerCmd())

	return cmd
}

func newTeamShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current team assembly and win probabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Assembly
			if err := client.Get("/api/v1/teams", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newTeamSetCmd() *cobra.Command {
	var members []string

	cmd := &cobra.Command{
		Use:   "set <index>",
		Short: "Set a team's members (empty member list deletes the team)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"members": members}
			var result Assembly

			if err := client.Put("/api/v1/teams/"+args[0], req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&members, "member", nil, "Player ID to include (repeatable)")

	return cmd
}

func newTeamSelectableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selectable <index>",
		Short: "List players eligible for a team slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SelectablePlayers
			if err := client.Get(fmt.Sprintf("/api/v1/teams/%s/selectable", args[0]), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newTeamCreatePlayerCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create-player <index>",
		Short: "Create a new player directly into a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result Player

			if err := client.Post(fmt.Sprintf("/api/v1/teams/%s/players", args[0]), req, &result); err != nil {
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
