package commands

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/urfave/cli/v2"

	"github.com/kutbudev/notebook-cli/internal/models"
)

// NewCategoryCommand creates all subcommands for the 'category' command group.
func NewCategoryCommand() *cli.Command {
	return &cli.Command{
		Name:    "category",
		Aliases: []string{"cat", "categories"},
		Usage:   "Manage categories",
		Subcommands: []*cli.Command{
			categoryListCmd(),
			categoryAddCmd(),
		},
	}
}

func categoryListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List categories",
		Action: func(c *cli.Context) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			for _, cat := range st.Categories() {
				name := cat.Name
				if cat.ID == models.AllNotesCategoryID {
					name = activeStyle.Render(name)
				}
				fmt.Printf("📂 %d  %s\n", cat.ID, name)
			}
			return nil
		},
	}
}

// categoryAddCmd creates a category; the name comes from args or a prompt and
// must be non-blank.
func categoryAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Aliases:   []string{"create"},
		Usage:     "Add a new category",
		ArgsUsage: "[name]",
		Action: func(c *cli.Context) error {
			name := strings.Join(c.Args().Slice(), " ")
			if name == "" {
				prompt := &survey.Input{Message: "New category name"}
				if err := survey.AskOne(prompt, &name); err != nil {
					return err
				}
			}
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("category name is required")
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			cat := st.CreateCategory(name)
			fmt.Printf("✅ Category '%s' created!\n", cat.Name)
			fmt.Printf("   ID: %d\n", cat.ID)
			return nil
		},
	}
}
