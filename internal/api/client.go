package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kutbudev/notebook-cli/internal/models"
)

// ErrMockMode is returned by every call on the disabled client.
var ErrMockMode = errors.New("API disabled: running in mock mode")

// RemoteClient is the seam for a future backend. The enabled variant performs
// JSON HTTP calls; the disabled variant rejects every call with ErrMockMode.
// The variant is selected once at construction based on configuration.
type RemoteClient interface {
	Enabled() bool
	ListNotes() ([]models.Note, error)
	GetNote(id int) (*models.Note, error)
	CreateNote(data map[string]interface{}) (*models.Note, error)
	UpdateNote(id int, data map[string]interface{}) (*models.Note, error)
	DeleteNote(id int) error
	ListCategories() ([]models.Category, error)
	CreateCategory(name string) (*models.Category, error)
}

// NewClient creates a remote client. An empty baseURL yields the disabled
// (mock mode) variant, which never touches the network.
func NewClient(baseURL string) RemoteClient {
	if baseURL == "" {
		return disabledClient{}
	}
	return &httpClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type httpClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *httpClient) Enabled() bool { return true }

// makeRequest makes an HTTP request and returns the response body. A 204
// response yields an empty body; any non-2xx status is surfaced as an error
// carrying the status code and response text.
func (c *httpClient) makeRequest(method, endpoint string, body interface{}) ([]byte, error) {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	return respBody, nil
}

func (c *httpClient) ListNotes() ([]models.Note, error) {
	respBody, err := c.makeRequest("GET", "/notes", nil)
	if err != nil {
		return nil, err
	}

	var notes []models.Note
	if err := json.Unmarshal(respBody, &notes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notes: %w", err)
	}
	return notes, nil
}

func (c *httpClient) GetNote(id int) (*models.Note, error) {
	respBody, err := c.makeRequest("GET", fmt.Sprintf("/notes/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var note models.Note
	if err := json.Unmarshal(respBody, &note); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note: %w", err)
	}
	return &note, nil
}

func (c *httpClient) CreateNote(data map[string]interface{}) (*models.Note, error) {
	respBody, err := c.makeRequest("POST", "/notes", data)
	if err != nil {
		return nil, err
	}

	var note models.Note
	if err := json.Unmarshal(respBody, &note); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note: %w", err)
	}
	return &note, nil
}

func (c *httpClient) UpdateNote(id int, data map[string]interface{}) (*models.Note, error) {
	respBody, err := c.makeRequest("PUT", fmt.Sprintf("/notes/%d", id), data)
	if err != nil {
		return nil, err
	}

	var note models.Note
	if err := json.Unmarshal(respBody, &note); err != nil {
		return nil, fmt.Errorf("failed to unmarshal note: %w", err)
	}
	return &note, nil
}

func (c *httpClient) DeleteNote(id int) error {
	_, err := c.makeRequest("DELETE", fmt.Sprintf("/notes/%d", id), nil)
	return err
}

func (c *httpClient) ListCategories() ([]models.Category, error) {
	respBody, err := c.makeRequest("GET", "/categories", nil)
	if err != nil {
		return nil, err
	}

	var categories []models.Category
	if err := json.Unmarshal(respBody, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func (c *httpClient) CreateCategory(name string) (*models.Category, error) {
	respBody, err := c.makeRequest("POST", "/categories", map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	var category models.Category
	if err := json.Unmarshal(respBody, &category); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category: %w", err)
	}
	return &category, nil
}

// disabledClient is the mock-mode variant: no network, fixed failure.
type disabledClient struct{}

func (disabledClient) Enabled() bool { return false }

func (disabledClient) ListNotes() ([]models.Note, error) { return nil, ErrMockMode }

func (disabledClient) GetNote(int) (*models.Note, error) { return nil, ErrMockMode }

func (disabledClient) CreateNote(map[string]interface{}) (*models.Note, error) {
	return nil, ErrMockMode
}

func (disabledClient) UpdateNote(int, map[string]interface{}) (*models.Note, error) {
	return nil, ErrMockMode
}

func (disabledClient) DeleteNote(int) error { return ErrMockMode }

func (disabledClient) ListCategories() ([]models.Category, error) { return nil, ErrMockMode }

func (disabledClient) CreateCategory(string) (*models.Category, error) { return nil, ErrMockMode }
