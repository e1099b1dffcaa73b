package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gym_backoffice_backend/internal/taskboard/domain"
)

func newExportCmd(open opener) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export call tasks as CSV",
		Long:  "Writes the same CSV as the export endpoint. The tab restriction does not apply to exports.",
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

			tasks, err := rt.board.Export(cmd.Context(), orgID, filterParams())
			if err != nil {
				return fmt.Errorf("exporting call tasks: %w", err)
			}

			var buf bytes.Buffer
			if err := domain.WriteCSV(&buf, tasks); err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(tasks), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")

	return cmd
}
