package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"gym_backoffice_backend/internal/taskboard/transport"
)

func newStatsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print call status counts as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orgID, err := organizationID()
			if err != nil {
				return err
			}

			rt, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			stats, err := rt.board.Stats(cmd.Context(), orgID, filterParams())
			if err != nil {
				return fmt.Errorf("computing stats: %w", err)
			}

			data, err := json.MarshalIndent(transport.ToStatsResponse(stats), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
