package models

import "time"

// AllNotesCategoryID is the reserved pseudo-category. Filtering by it matches
// notes of any category.
const AllNotesCategoryID = 1

// Note represents a single note in the notebook
type Note struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID int       `json:"categoryId"`
	Tags       []string  `json:"tags"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Category represents a note category
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the persisted portion of the application state. The search
// query is deliberately excluded from persistence.
type Snapshot struct {
	Notes          []Note     `json:"notes"`
	Categories     []Category `json:"categories"`
	LastNoteID     int        `json:"lastNoteId"`
	LastCategoryID int        `json:"lastCategoryId"`
}
