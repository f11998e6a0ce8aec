package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kutbudev/notebook-cli/internal/models"
)

func TestDisabledClient(t *testing.T) {
	client := NewClient("")
	require.False(t, client.Enabled())

	_, err := client.ListNotes()
	require.ErrorIs(t, err, ErrMockMode)

	_, err = client.GetNote(1)
	require.ErrorIs(t, err, ErrMockMode)

	_, err = client.CreateNote(nil)
	require.ErrorIs(t, err, ErrMockMode)

	_, err = client.UpdateNote(1, nil)
	require.ErrorIs(t, err, ErrMockMode)

	require.ErrorIs(t, client.DeleteNote(1), ErrMockMode)

	_, err = client.ListCategories()
	require.ErrorIs(t, err, ErrMockMode)

	_, err = client.CreateCategory("Travel")
	require.ErrorIs(t, err, ErrMockMode)
}

func TestListNotes(t *testing.T) {
	notes := []models.Note{
		{ID: 1, Title: "Welcome to Notebook Pro", CategoryID: 1, Tags: []string{"welcome"}, UpdatedAt: time.Date(2030, 1, 2, 15, 4, 5, 0, time.UTC)},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/notes", r.URL.Path)
		_ = json.NewEncoder(w).Encode(notes)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.True(t, client.Enabled())

	got, err := client.ListNotes()
	require.NoError(t, err)
	require.Equal(t, notes, got)
}

func TestCreateNote_SendsJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, float64(2), body["categoryId"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Note{ID: 2, Title: "Untitled", CategoryID: 2, Tags: []string{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	note, err := client.CreateNote(map[string]interface{}{"categoryId": 2})
	require.NoError(t, err)
	require.Equal(t, 2, note.ID)
	require.Equal(t, "Untitled", note.Title)
}

func TestGetNote_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Note not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.GetNote(42)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
	require.Contains(t, err.Error(), "Note not found")
}

func TestDeleteNote_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/notes/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	require.NoError(t, client.DeleteNote(3))
}

func TestCreateCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Travel", body["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Category{ID: 4, Name: "Travel"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	cat, err := client.CreateCategory("Travel")
	require.NoError(t, err)
	require.Equal(t, &models.Category{ID: 4, Name: "Travel"}, cat)
}
