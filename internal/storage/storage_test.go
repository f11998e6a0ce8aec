package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kutbudev/notebook-cli/internal/models"
)

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Notes: []models.Note{
			{
				ID:         1,
				Title:      "Welcome to Notebook Pro",
				Content:    "Start typing your notes here...",
				CategoryID: 1,
				Tags:       []string{"welcome"},
				UpdatedAt:  time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC),
			},
			{
				ID:         2,
				Title:      "Groceries",
				Content:    "Milk",
				CategoryID: 2,
				Tags:       []string{},
				UpdatedAt:  time.Date(2030, 1, 3, 9, 0, 0, 0, time.UTC),
			},
		},
		Categories: []models.Category{
			{ID: 1, Name: "All Notes"},
			{ID: 2, Name: "Personal"},
			{ID: 3, Name: "Work"},
		},
		LastNoteID:     2,
		LastCategoryID: 3,
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	a := New(t.TempDir())

	want := sampleSnapshot()
	a.Save(want)

	got := a.Load()
	require.NotNil(t, got)
	require.Equal(t, want.Notes, got.Notes)
	require.Equal(t, want.Categories, got.Categories)
	require.Equal(t, want.LastNoteID, got.LastNoteID)
	require.Equal(t, want.LastCategoryID, got.LastCategoryID)
}

func TestLoad_MissingFile(t *testing.T) {
	a := New(t.TempDir())
	require.Nil(t, a.Load())
}

func TestLoad_CorruptData(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)

	require.NoError(t, os.WriteFile(a.Path(), []byte("{not json"), 0644))
	require.Nil(t, a.Load())
}

func TestLoad_MissingCollections(t *testing.T) {
	dir := t.TempDir()
	a := New(dir)

	// Valid JSON but not a usable snapshot.
	require.NoError(t, os.WriteFile(a.Path(), []byte(`{"lastNoteId": 4}`), 0644))
	require.Nil(t, a.Load())
}

func TestSave_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	a := New(dir)

	a.Save(sampleSnapshot())
	require.NotNil(t, a.Load())
}

func TestSave_BestEffortOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	// Data dir path is an existing file; the write fails and is swallowed.
	a := New(blocker)
	a.Save(sampleSnapshot())
	require.Nil(t, a.Load())
}
