// Package open fills a budget entry from a prefill link.
package open

import (
	"errors"
	"fmt"

	"fjacquet/budget-form/cmd/common"
	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/protocol"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Submit creates the entry right away instead of printing the prefilled form.
var Submit bool

// Cmd represents the open command
var Cmd = &cobra.Command{
	Use:   "open <link>",
	Short: "Open a budget entry form from a prefill link",
	Long: `Open a budget entry form prefilled from a link such as
budgetform://open?amount=10.23&details=something&fromAccount=cash&toAccount=expenses&tag=going%20out

The amount is used only when it is a number. The other keys are used whenever present.
Without --submit the prefilled form and its choices are printed as YAML.`,
	Args: cobra.ExactArgs(1),
	RunE: openFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&Submit, "submit", "s", false, "Create the entry instead of printing the form")
}

func openFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	partial, err := protocol.Parse(args[0], c.GetLocation())
	if err != nil {
		return err
	}
	root.Log.Debug("Opening prefill link", logging.F("link", args[0]))

	settings := root.Settings()
	svc := c.GetService()

	if Submit {
		doc, err := svc.Submit(cmd.Context(), settings, partial, nil)
		if err != nil {
			return errors.New(common.Describe(err))
		}
		common.PrintCreated(cmd.Context(), cmd.OutOrStdout(), svc, settings, doc, root.Log)
		return nil
	}

	form, err := svc.Prepare(cmd.Context(), settings, partial)
	if err != nil {
		return errors.New(common.Describe(err))
	}
	out, err := yaml.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to render form: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
