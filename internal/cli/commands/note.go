package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"

	"github.com/kutbudev/notebook-cli/internal/models"
	"github.com/kutbudev/notebook-cli/internal/store"
)

// NewNoteCommand creates all subcommands for the 'note' command group.
func NewNoteCommand() *cli.Command {
	return &cli.Command{
		Name:    "note",
		Aliases: []string{"n"},
		Usage:   "Manage notes",
		Subcommands: []*cli.Command{
			noteListCmd(),
			noteShowCmd(),
			noteCreateCmd(),
			noteEditCmd(),
			noteDeleteCmd(),
			noteCopyCmd(),
		},
	}
}

// NewNotesCommand creates the top-level 'notes' shortcut for 'note list'.
func NewNotesCommand() *cli.Command {
	cmd := noteListCmd()
	return &cli.Command{
		Name:    "notes",
		Aliases: []string{"ls"},
		Usage:   "List notes (shortcut for 'note list')",
		Flags:   cmd.Flags,
		Action:  cmd.Action,
	}
}

// noteListCmd lists notes filtered by category and search, most recently
// updated first.
func noteListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List notes",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "category", Aliases: []string{"c"}, Usage: "Filter by category id (1 = all notes)"},
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "Search notes, tags, content..."},
		},
		Action: func(c *cli.Context) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			selected := c.Int("category")
			st.SetSearch(c.String("search"))
			notes := st.DeriveView(selected)

			if len(notes) == 0 {
				fmt.Println("No notes found. Try clearing search or create a new note.")
				return nil
			}

			header := "All Notes"
			if cat, ok := st.FindCategory(selected); ok && selected != models.AllNotesCategoryID {
				header = cat.Name
			}
			fmt.Printf("%s (%d)\n\n", activeStyle.Render("📂 "+header), len(notes))

			width := terminalWidth()
			for _, n := range notes {
				title := n.Title
				if title == "" {
					title = "Untitled"
				}
				fmt.Printf("%s %s\n", mutedStyle.Render(fmt.Sprintf("#%d", n.ID)), titleStyle.Render(truncateString(title, width-8)))
				meta := n.UpdatedAt.Format("2006-01-02 15:04")
				if len(n.Tags) > 0 {
					meta += " • " + tagStyle.Render(strings.Join(n.Tags, ", "))
				} else {
					meta += " • no tags"
				}
				fmt.Printf("   %s\n", mutedStyle.Render(meta))
			}
			return nil
		},
	}
}

// noteShowCmd prints a single note, optionally rendered as markdown.
func noteShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Aliases:   []string{"view"},
		Usage:     "Show a note",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "render", Aliases: []string{"r"}, Usage: "Render the content as markdown"},
		},
		Action: func(c *cli.Context) error {
			id, err := noteIDArg(c)
			if err != nil {
				return err
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			note, ok := st.FindNote(id)
			if !ok {
				fmt.Printf("❌ Note #%d not found\n", id)
				return store.ErrNoteNotFound
			}

			category := ""
			if cat, ok := st.FindCategory(note.CategoryID); ok {
				category = cat.Name
			}

			fmt.Println(titleStyle.Render(note.Title))
			fmt.Println(mutedStyle.Render(fmt.Sprintf("#%d • %s • updated %s", note.ID, category, note.UpdatedAt.Format("2006-01-02 15:04"))))
			if len(note.Tags) > 0 {
				fmt.Println(tagStyle.Render("#" + strings.Join(note.Tags, " #")))
			}
			fmt.Println()

			if c.Bool("render") {
				r, err := glamour.NewTermRenderer(
					glamour.WithAutoStyle(),
					glamour.WithWordWrap(terminalWidth()),
				)
				if err == nil {
					if out, err := r.Render(note.Content); err == nil {
						fmt.Print(out)
						return nil
					}
				}
			}
			fmt.Println(note.Content)
			return nil
		},
	}
}

// noteCreateCmd creates a note; title defaults to "Untitled" until edited.
func noteCreateCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Aliases:   []string{"add", "new"},
		Usage:     "Create a new note",
		ArgsUsage: "[title]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category id for the new note"},
		},
		Action: func(c *cli.Context) error {
			st, _, err := openStore()
			if err != nil {
				return err
			}

			note := st.CreateNote(c.Int("category"))

			if c.NArg() > 0 {
				title := strings.Join(c.Args().Slice(), " ")
				note, err = st.UpdateNote(note.ID, store.NotePatch{Title: &title})
				if err != nil {
					return err
				}
			}

			fmt.Printf("📝 Note '%s' created!\n", note.Title)
			fmt.Printf("   ID: %d\n", note.ID)
			fmt.Printf("   Category: %d\n", note.CategoryID)
			return nil
		},
	}
}

// noteEditCmd patches title, content, category, and tags.
func noteEditCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Aliases:   []string{"update"},
		Usage:     "Edit a note",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "content", Usage: "New content"},
			&cli.IntFlag{Name: "category", Aliases: []string{"c"}, Usage: "Move to category id"},
			&cli.StringSliceFlag{Name: "add-tag", Usage: "Add a tag (repeatable)"},
			&cli.StringSliceFlag{Name: "remove-tag", Usage: "Remove a tag (repeatable)"},
		},
		Action: func(c *cli.Context) error {
			id, err := noteIDArg(c)
			if err != nil {
				return err
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			patch := store.NotePatch{}
			if c.IsSet("title") {
				v := c.String("title")
				patch.Title = &v
			}
			if c.IsSet("content") {
				v := c.String("content")
				patch.Content = &v
			}
			if c.IsSet("category") {
				v := c.Int("category")
				patch.CategoryID = &v
			}

			addTags := c.StringSlice("add-tag")
			removeTags := c.StringSlice("remove-tag")
			if len(addTags) > 0 || len(removeTags) > 0 {
				note, ok := st.FindNote(id)
				if !ok {
					fmt.Printf("❌ Note #%d not found\n", id)
					return store.ErrNoteNotFound
				}
				tags := editTags(note.Tags, addTags, removeTags)
				patch.Tags = &tags
			}

			note, err := st.UpdateNote(id, patch)
			if err != nil {
				fmt.Printf("❌ Note #%d not found\n", id)
				return err
			}

			fmt.Printf("✅ Note '%s' updated!\n", note.Title)
			fmt.Printf("   Updated: %s\n", note.UpdatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

// noteDeleteCmd removes a note after confirmation.
func noteDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a note",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip confirmation"},
		},
		Action: func(c *cli.Context) error {
			id, err := noteIDArg(c)
			if err != nil {
				return err
			}

			if !c.Bool("yes") {
				confirmed := false
				prompt := &survey.Confirm{Message: "Delete this note?"}
				if err := survey.AskOne(prompt, &confirmed); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			if err := st.DeleteNote(id); err != nil {
				fmt.Printf("❌ Note #%d not found\n", id)
				return err
			}

			fmt.Printf("🗑  Note #%d deleted\n", id)
			return nil
		},
	}
}

// noteCopyCmd copies a note's content to the system clipboard.
func noteCopyCmd() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy a note's content to the clipboard",
		ArgsUsage: "[id]",
		Action: func(c *cli.Context) error {
			id, err := noteIDArg(c)
			if err != nil {
				return err
			}

			st, _, err := openStore()
			if err != nil {
				return err
			}

			note, ok := st.FindNote(id)
			if !ok {
				fmt.Printf("❌ Note #%d not found\n", id)
				return store.ErrNoteNotFound
			}

			if err := clipboard.WriteAll(note.Content); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			fmt.Printf("📋 Copied '%s' to clipboard\n", truncateString(note.Title, 40))
			return nil
		},
	}
}

func noteIDArg(c *cli.Context) (int, error) {
	if c.NArg() == 0 {
		return 0, fmt.Errorf("note id is required")
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return 0, fmt.Errorf("invalid note id '%s'", c.Args().First())
	}
	return id, nil
}

// editTags applies removals then additions, keeping insertion order and
// skipping duplicates, like the editor's tag row.
func editTags(current, add, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, t := range remove {
		removed[t] = true
	}

	tags := make([]string, 0, len(current)+len(add))
	for _, t := range current {
		if !removed[t] {
			tags = append(tags, t)
		}
	}
	for _, t := range add {
		t = strings.TrimSpace(t)
		if t == "" || removed[t] {
			continue
		}
		exists := false
		for _, have := range tags {
			if have == t {
				exists = true
				break
			}
		}
		if !exists {
			tags = append(tags, t)
		}
	}
	return tags
}
