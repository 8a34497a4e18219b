// Package serve runs the HTTP API.
package serve

import (
	"os"
	"os/signal"
	"syscall"

	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/internal/server"

	"github.com/spf13/cobra"
)

// Address overrides server.address from the configuration.
var Address string

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the entry API over HTTP",
	Long: `Serve the entry API over HTTP:

  GET  /options                 accounts and tags
  GET  /entries/new?<prefill>   prefilled form, same keys as a prefill link
  POST /entries                 create an entry from a JSON record
  GET  /check                   path settings checks
  GET  /health                  liveness`,
	RunE: serveFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Address, "address", "l", "", "Listen address (default from config, :8080)")
}

func serveFunc(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	addr := Address
	if addr == "" {
		addr = c.GetConfig().Server.Address
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(c.GetService(), root.Settings(), c.GetLocation(), c.GetLogger())
	return srv.ListenAndServe(ctx, addr)
}
