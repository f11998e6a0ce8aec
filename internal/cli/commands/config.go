package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/kutbudev/notebook-cli/internal/config"
	"github.com/kutbudev/notebook-cli/internal/storage"
)

// NewConfigCommand shows the effective configuration, including whether the
// remote client is enabled or running in mock mode.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show the effective configuration",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			mode := mutedStyle.Render("Mock (no backend configured)")
			if cfg.RemoteEnabled() {
				mode = activeStyle.Render("API " + cfg.BaseURL())
			}

			fmt.Printf("Remote:     %s\n", mode)
			fmt.Printf("Data dir:   %s\n", cfg.DataDir)
			fmt.Printf("Snapshot:   %s\n", storage.New(cfg.DataDir).Path())
			fmt.Printf("Port:       %d\n", cfg.Port)
			fmt.Printf("Log level:  %s\n", cfg.LogLevel)
			if cfg.FeatureFlags != "" {
				fmt.Printf("Features:   %s\n", cfg.FeatureFlags)
			}
			return nil
		},
	}
}
