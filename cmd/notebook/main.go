package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kutbudev/notebook-cli/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "notebook",
		Usage:   "Local-first notes organized into categories",
		Version: Version,
		Commands: []*cli.Command{
			commands.NewNoteCommand(),
			commands.NewNotesCommand(),
			commands.NewCategoryCommand(),
			commands.NewServeCommand(),
			commands.NewConfigCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
