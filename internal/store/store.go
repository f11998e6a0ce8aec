package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kutbudev/notebook-cli/internal/models"
)

// ErrNoteNotFound is returned when a mutation targets a note id that does not
// exist in the collection.
var ErrNoteNotFound = errors.New("note not found")

// Persister saves snapshots of the store state. Writes are best effort and
// never block a mutation.
type Persister interface {
	Save(*models.Snapshot)
}

// NotePatch carries the fields of a note update. Nil fields are left
// untouched.
type NotePatch struct {
	Title      *string
	Content    *string
	CategoryID *int
	Tags       *[]string
}

// Store is the sole authority over the note/category collection. It assigns
// ids from high-water-mark counters and writes a snapshot through the
// persister after every notes/categories mutation. Search-only changes are
// not persisted.
type Store struct {
	mu sync.Mutex

	notes          []models.Note
	categories     []models.Category
	lastNoteID     int
	lastCategoryID int
	search         string

	persist Persister
	now     func() time.Time
}

// New builds a store from a previously persisted snapshot, or from the seed
// state when snap is nil. persist may be nil for ephemeral stores.
func New(snap *models.Snapshot, persist Persister) *Store {
	s := &Store{
		persist: persist,
		now:     time.Now,
	}
	if snap == nil {
		snap = seedSnapshot(s.now())
	}
	s.notes = append(s.notes, snap.Notes...)
	s.categories = append(s.categories, snap.Categories...)
	s.lastNoteID = snap.LastNoteID
	s.lastCategoryID = snap.LastCategoryID
	return s
}

// seedSnapshot is the state used when no prior snapshot exists: one welcome
// note, the three default categories, and counters at 1/3.
func seedSnapshot(now time.Time) *models.Snapshot {
	return &models.Snapshot{
		Notes: []models.Note{
			{
				ID:         1,
				Title:      "Welcome to Notebook Pro",
				Content:    "Start typing your notes here...",
				CategoryID: models.AllNotesCategoryID,
				Tags:       []string{"welcome"},
				UpdatedAt:  now,
			},
		},
		Categories: []models.Category{
			{ID: 1, Name: "All Notes"},
			{ID: 2, Name: "Personal"},
			{ID: 3, Name: "Work"},
		},
		LastNoteID:     1,
		LastCategoryID: 3,
	}
}

// CreateNote creates an untitled note in the given category (category 1 when
// unset) and prepends it to the collection. It always succeeds.
func (s *Store) CreateNote(categoryID int) models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	if categoryID == 0 {
		categoryID = models.AllNotesCategoryID
	}

	s.lastNoteID++
	note := models.Note{
		ID:         s.lastNoteID,
		Title:      "Untitled",
		Content:    "",
		CategoryID: categoryID,
		Tags:       []string{},
		UpdatedAt:  s.now(),
	}
	s.notes = append([]models.Note{note}, s.notes...)

	s.persistLocked()
	return note
}

// UpdateNote merges patch into the note with the given id and refreshes its
// UpdatedAt stamp, whether or not any field actually changed. Tags are
// deduplicated preserving first occurrence.
func (s *Store) UpdateNote(id int, patch NotePatch) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		n := &s.notes[i]
		if patch.Title != nil {
			n.Title = *patch.Title
		}
		if patch.Content != nil {
			n.Content = *patch.Content
		}
		if patch.CategoryID != nil {
			n.CategoryID = *patch.CategoryID
		}
		if patch.Tags != nil {
			n.Tags = dedupeTags(*patch.Tags)
		}
		n.UpdatedAt = s.now()

		s.persistLocked()
		return *n, nil
	}
	return models.Note{}, ErrNoteNotFound
}

// DeleteNote removes the note with the given id.
func (s *Store) DeleteNote(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			s.persistLocked()
			return nil
		}
	}
	return ErrNoteNotFound
}

// CreateCategory adds a category with the next id. The name is stored
// verbatim; callers are responsible for rejecting blank names.
func (s *Store) CreateCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastCategoryID++
	cat := models.Category{ID: s.lastCategoryID, Name: name}
	s.categories = append(s.categories, cat)

	s.persistLocked()
	return cat
}

// SetSearch replaces the free-text filter. Not persisted.
func (s *Store) SetSearch(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = query
}

// Search returns the current free-text filter.
func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// FindNote looks up a note by id.
func (s *Store) FindNote(id int) (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// Categories returns the category sequence in insertion order.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// FindCategory looks up a category by id.
func (s *Store) FindCategory(id int) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// DeriveView returns the notes matching the selected category and the current
// search query, most recently updated first. selectedCategoryID 0 means no
// selection; 0 and the "All Notes" category both match every note. Ties on
// UpdatedAt keep the collection order, so a freshly prepended note wins.
func (s *Store) DeriveView(selectedCategoryID int) []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := strings.ToLower(s.search)
	out := make([]models.Note, 0, len(s.notes))
	for _, n := range s.notes {
		if !matchesCategory(n, selectedCategoryID) {
			continue
		}
		if !matchesSearch(n, query) {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// Snapshot returns the persisted portion of the state.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *models.Snapshot {
	snap := &models.Snapshot{
		Notes:          make([]models.Note, len(s.notes)),
		Categories:     make([]models.Category, len(s.categories)),
		LastNoteID:     s.lastNoteID,
		LastCategoryID: s.lastCategoryID,
	}
	copy(snap.Notes, s.notes)
	copy(snap.Categories, s.categories)
	return snap
}

func (s *Store) persistLocked() {
	if s.persist == nil {
		return
	}
	s.persist.Save(s.snapshotLocked())
}

func matchesCategory(n models.Note, selected int) bool {
	return selected == 0 || selected == models.AllNotesCategoryID || n.CategoryID == selected
}

func matchesSearch(n models.Note, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), query) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
