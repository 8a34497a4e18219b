// Package options lists the accounts and tags an entry can use.
package options

import (
	"errors"
	"fmt"

	"fjacquet/budget-form/cmd/common"
	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/internal/entry"
	"fjacquet/budget-form/internal/validation"

	"github.com/spf13/cobra"
)

// Flags of the options command.
var (
	Format string
	Kind   string
)

// Cmd represents the options command
var Cmd = &cobra.Command{
	Use:   "options",
	Short: "List the accounts and tags entries can use",
	Long: `List the accounts and tags read from the configured folders.
Each document in a folder is one choice: its name is the label, its link the stored value.`,
	RunE: optionsFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "F", "table", "Output format (table, csv, yaml, json)")
	Cmd.Flags().StringVarP(&Kind, "kind", "k", "all", "What to list (accounts, tags, all)")
}

func optionsFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidOutputFormat(Format); err != nil {
		return err
	}
	if Kind != "all" && Kind != entry.SourceAccounts && Kind != entry.SourceTags {
		return fmt.Errorf("unsupported kind: %s. Supported kinds are 'accounts', 'tags', 'all'", Kind)
	}

	c, err := root.Container()
	if err != nil {
		return err
	}

	accounts, tags, err := c.GetService().Options(cmd.Context(), root.Settings())
	if err != nil {
		return errors.New(common.Describe(err))
	}

	var rows []common.OptionRow
	if Kind != entry.SourceTags {
		rows = append(rows, common.OptionRows(entry.SourceAccounts, accounts)...)
	}
	if Kind != entry.SourceAccounts {
		rows = append(rows, common.OptionRows(entry.SourceTags, tags)...)
	}
	return common.WriteOptions(cmd.OutOrStdout(), Format, rows)
}
