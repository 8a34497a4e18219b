// Package check verifies the configured paths against the vault.
package check

import (
	"fmt"

	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the check command
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Check the configured folders and files exist",
	Long: `Check that the accounts and tags folders are folders, and that the entry template
and the summary file (when set) are files. Exits with an error if any check fails.`,
	RunE: checkFunc,
}

func checkFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	results := c.GetService().Check(cmd.Context(), root.Settings())
	failed := 0
	for _, r := range results {
		status := "valid"
		switch {
		case r.Err != nil:
			status = "ERROR: " + r.Err.Error()
		case !r.Valid:
			status = fmt.Sprintf("INVALID: expected a %s, found %s", r.Want, r.Found)
		}
		if !r.Valid {
			failed++
			root.Log.Warn("Setting check failed",
				logging.F(logging.FieldSource, r.Setting),
				logging.F(logging.FieldPath, r.Path))
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-45q %s\n", r.Setting, r.Path, status)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d path settings are invalid", failed, len(results))
	}
	return nil
}
