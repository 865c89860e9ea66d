package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/adityav/starwars-portal/internal/models"
)

// FetchError reports a non-2xx response from the catalog API.
type FetchError struct {
	Endpoint   string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("catalog %s returned %d", e.Endpoint, e.StatusCode)
}

// checkResp returns a *FetchError if the status is not 2xx.
func checkResp(resp *http.Response, path string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &FetchError{Endpoint: path, StatusCode: resp.StatusCode}
}

// Client calls the read-only catalog API over HTTP. Requests carry the
// caller's context, so a torn-down view cancels its fetch and the result is
// discarded.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: &http.Client{}}
}

// FetchPeople retrieves the full summary collection in a single call.
func (c *Client) FetchPeople(ctx context.Context) ([]models.Person, error) {
	resp, err := c.get(ctx, "/")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResp(resp, "/"); err != nil {
		return nil, err
	}

	var result struct {
		Results []models.Person `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("catalog list: decode: %w", err)
	}
	for i := range result.Results {
		result.Results[i].ID = idFromURL(result.Results[i].URL)
	}
	return result.Results, nil
}

// FetchPerson retrieves one detail record by its numeric identifier.
func (c *Client) FetchPerson(ctx context.Context, id string) (*models.PersonDetail, error) {
	path := "/" + id + "/"
	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkResp(resp, path); err != nil {
		return nil, err
	}

	var detail models.PersonDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, fmt.Errorf("catalog detail %s: decode: %w", id, err)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return resp, nil
}

// idFromURL extracts the trailing identifier segment of an entry URL, e.g.
// "https://swapi.dev/api/people/1/" -> "1".
func idFromURL(u string) string {
	trimmed := strings.TrimRight(u, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return ""
}
