package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/kutbudev/notebook-cli/internal/server"
)

// NewServeCommand starts the local API server over the notebook store. It
// exposes the same surface the remote client speaks, so a second notebook can
// point API_BASE at it.
func NewServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the notebook over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on (defaults to PORT)"},
		},
		Action: func(c *cli.Context) error {
			st, cfg, err := openStore()
			if err != nil {
				return err
			}

			port := cfg.Port
			if c.IsSet("port") {
				port = c.Int("port")
			}

			r := server.New(st, cfg.HealthcheckPath)
			fmt.Printf("📘 Notebook API listening on :%d\n", port)
			return r.Run(fmt.Sprintf(":%d", port))
		},
	}
}
