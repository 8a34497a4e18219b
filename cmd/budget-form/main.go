package main

import (
	"fmt"
	"os"

	"fjacquet/budget-form/cmd/add"
	"fjacquet/budget-form/cmd/check"
	"fjacquet/budget-form/cmd/configcmd"
	"fjacquet/budget-form/cmd/open"
	"fjacquet/budget-form/cmd/options"
	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(open.Cmd)
	root.Cmd.AddCommand(options.Cmd)
	root.Cmd.AddCommand(check.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
