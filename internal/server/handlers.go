package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kutbudev/notebook-cli/internal/store"
)

type handlers struct {
	store *store.Store
}

// CreateNoteInput DTO for creating a new note
type CreateNoteInput struct {
	CategoryID int `json:"categoryId"`
}

// UpdateNoteInput DTO for updating a note; nil fields are left untouched
type UpdateNoteInput struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	CategoryID *int      `json:"categoryId"`
	Tags       *[]string `json:"tags"`
}

// CreateCategoryInput DTO for creating a category
type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// ListNotes returns the derived view: optional category and q query params
// map onto the store's filter and search.
func (h *handlers) ListNotes(c *gin.Context) {
	selected := 0
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category id"})
			return
		}
		selected = id
	}

	h.store.SetSearch(c.Query("q"))
	c.JSON(http.StatusOK, h.store.DeriveView(selected))
}

// CreateNote creates an untitled note, optionally in a given category.
func (h *handlers) CreateNote(c *gin.Context) {
	var input CreateNoteInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	note := h.store.CreateNote(input.CategoryID)
	c.JSON(http.StatusCreated, note)
}

// GetNote retrieves a single note by its ID.
func (h *handlers) GetNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}

	note, ok := h.store.FindNote(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// UpdateNote patches an existing note.
func (h *handlers) UpdateNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}

	var input UpdateNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.store.UpdateNote(id, store.NotePatch{
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		Tags:       input.Tags,
	})
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote removes a note. Success is 204 with no body.
func (h *handlers) DeleteNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note id"})
		return
	}

	if err := h.store.DeleteNote(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories returns all categories in insertion order.
func (h *handlers) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Categories())
}

// CreateCategory adds a category. Blank names are rejected here, at the
// boundary; the store treats non-empty names as a precondition.
func (h *handlers) CreateCategory(c *gin.Context) {
	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}

	category := h.store.CreateCategory(input.Name)
	c.JSON(http.StatusCreated, category)
}
