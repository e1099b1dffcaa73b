package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gym_backoffice_backend/internal/scheduler"
)

func newSweepCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Queue a renewal follow-up sweep now",
		Long:  "Queues the renewal sweep for --org, or for every organization when --org is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload scheduler.RenewalSweepPayload
			if flagOrg != "" {
				orgID, err := organizationID()
				if err != nil {
					return err
				}
				payload.OrganizationID = orgID.String()
			}

			rt, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			if rt.sweeps == nil {
				return fmt.Errorf("REDIS_URL is required to queue a sweep")
			}
			if err := rt.sweeps.EnqueueRenewalSweep(cmd.Context(), payload); err != nil {
				return fmt.Errorf("queueing renewal sweep: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "renewal sweep queued")
			return nil
		},
	}
}
