package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Game session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionJoinCmd())
	cmd.AddCommand(newSessionFinalizeCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var teamMin, teamMax, playersMin, playersMax int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{
				"team_min":         teamMin,
				"team_max":         teamMax,
				"team_players_min": playersMin,
				"team_players_max": playersMax,
			}
			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&teamMin, "team-min", 0, "Minimum number of teams (required)")
	cmd.Flags().IntVar(&teamMax, "team-max", 0, "Maximum number of teams (required)")
	cmd.Flags().IntVar(&playersMin, "players-min", 0, "Minimum players per team (required)")
	cmd.Flags().IntVar(&playersMax, "players-max", 0, "Maximum players per team (required)")
	_ = cmd.MarkFlagRequired("team-min")
	_ = cmd.MarkFlagRequired("team-max")
	_ = cmd.MarkFlagRequired("players-min")
	_ = cmd.MarkFlagRequired("players-max")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <code>",
		Short: "Get session lobby details (creator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Join a session lobby",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/join", code), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Joined session %s", code))
			return nil
		},
	}
}

func newSessionFinalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finalize <code>",
		Short: "Finalize a session into balanced teams (creator only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]

			var result FinalizeResult

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/finalize", code), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
