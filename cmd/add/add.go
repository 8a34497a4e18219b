// Package add creates a budget entry from command line flags.
package add

import (
	"errors"
	"fmt"
	"time"

	"fjacquet/budget-form/cmd/common"
	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/internal/dateutils"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/protocol"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// Flags of the add command.
var (
	Date        string
	FromAccount string
	ToAccount   string
	Amount      string
	Tag         string
	Details     string
	PrintLink   bool
)

// Cmd represents the add command
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Create a budget entry",
	Long: `Create a budget entry from flags. Accounts and tag may be given by label
(the document name) or by link; labels are resolved against the configured folders.
Flags left out keep their default: today for the date, empty otherwise.`,
	Example: `  budget-form add --from cash --to expenses --amount 12.5 --tag food --details "Lunch"`,
	RunE:    addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Date, "date", "d", "", "Entry date, e.g. 2023-07-03 or 2023-07-03T10:00 (default now)")
	Cmd.Flags().StringVarP(&FromAccount, "from", "f", "", "Account the money comes from")
	Cmd.Flags().StringVarP(&ToAccount, "to", "t", "", "Account the money goes to")
	Cmd.Flags().StringVarP(&Amount, "amount", "a", "", "Amount transferred")
	Cmd.Flags().StringVar(&Tag, "tag", "", "Tag of the entry")
	Cmd.Flags().StringVarP(&Details, "details", "m", "", "Free text details")
	Cmd.Flags().BoolVar(&PrintLink, "link", false, "Print a prefill link for these values instead of creating the entry")
}

func addFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	partial, err := partialFromFlags(cmd, c.GetLocation())
	if err != nil {
		return err
	}

	if PrintLink {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), protocol.Link(partial))
		return nil
	}

	settings := root.Settings()
	svc := c.GetService()
	doc, err := svc.Submit(cmd.Context(), settings, partial, nil)
	if err != nil {
		return errors.New(common.Describe(err))
	}

	common.PrintCreated(cmd.Context(), cmd.OutOrStdout(), svc, settings, doc, root.Log)
	return nil
}

// partialFromFlags keeps only the flags the user actually set.
func partialFromFlags(cmd *cobra.Command, loc *time.Location) (models.PartialRecord, error) {
	var p models.PartialRecord
	flags := cmd.Flags()

	if flags.Changed("date") {
		date, _, err := dateutils.ParseDate(Date, loc)
		if err != nil {
			return p, fmt.Errorf("invalid --date: %w", err)
		}
		p.Date = &date
	}
	if flags.Changed("amount") {
		amount, err := decimal.NewFromString(Amount)
		if err != nil {
			return p, fmt.Errorf("invalid --amount %q: %w", Amount, err)
		}
		p.Amount = &amount
	}
	if flags.Changed("from") {
		v := FromAccount
		p.FromAccount = &v
	}
	if flags.Changed("to") {
		v := ToAccount
		p.ToAccount = &v
	}
	if flags.Changed("tag") {
		v := Tag
		p.Tag = &v
	}
	if flags.Changed("details") {
		v := Details
		p.Details = &v
	}
	return p, nil
}
