package commands

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/kutbudev/notebook-cli/internal/config"
	"github.com/kutbudev/notebook-cli/internal/storage"
	"github.com/kutbudev/notebook-cli/internal/store"
)

// Shared styles for command output
var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
)

// openStore loads config, reads the persisted snapshot (seed state when
// missing or corrupt), and wires the store to the adapter so every mutation
// is written back.
func openStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	adapter := storage.New(cfg.DataDir)
	st := store.New(adapter.Load(), adapter)
	return st, cfg, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 60 {
		return 100
	}
	return w
}
