// Package configcmd prints the effective configuration.
package configcmd

import (
	"fjacquet/budget-form/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the config command
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration after defaults, the config file, BUDGET_* environment
variables and command line flags have been applied.`,
	RunE: configFunc,
}

func configFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}
	out, err := c.GetConfig().ToYAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
