package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kutbudev/notebook-cli/internal/models"
)

const (
	dataDirName      = ".notebook"
	snapshotFileName = "notebook_pro_state_v1.json"
)

// Adapter persists the application snapshot as a single JSON file.
type Adapter struct {
	path string
}

// New creates an adapter rooted at dataDir.
func New(dataDir string) *Adapter {
	return &Adapter{path: filepath.Join(dataDir, snapshotFileName)}
}

// Path returns the snapshot file location.
func (a *Adapter) Path() string {
	return a.path
}

// DefaultDataDir returns the data directory under the user's home (~/.notebook).
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dataDirName), nil
}

// Load reads the persisted snapshot. Missing or malformed data yields nil so
// the caller falls back to the seed state; load never fails loudly.
func (a *Adapter) Load() *models.Snapshot {
	data, err := os.ReadFile(a.path)
	if err != nil {
		return nil
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}

	// A snapshot without both collections is treated as corrupt.
	if snap.Notes == nil || snap.Categories == nil {
		return nil
	}
	return &snap
}

// Save writes the snapshot. Persistence is best effort: serialization or
// write failures are dropped rather than surfaced to the caller.
func (a *Adapter) Save(snap *models.Snapshot) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return
	}

	dir := filepath.Dir(a.path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return
		}
	}

	_ = os.WriteFile(a.path, data, 0644)
}
