package cli

import "github.com/spf13/cobra"

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchPredictCmd())
	cmd.AddCommand(newMatchFinalizeCmd())

	return cmd
}

func newMatchPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Show the current match outcome estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Prediction
			if err := client.Get("/api/v1/match", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newMatchFinalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finalize",
		Short: "Finalize the match (team order is placement order)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roster
			if err := client.Post("/api/v1/match", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
