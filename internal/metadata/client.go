// Package metadata fetches auxiliary per-server repository statistics (stars,
// forks, activity) from a metadata endpoint and caches them for the process
// lifetime behind two lookup keys: server name and normalized repository URL.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-hclog"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/errors"
)

const (
	// DefaultBaseURL is the metadata listing endpoint.
	DefaultBaseURL = "https://api.pulsemcp.com/v0beta/servers"

	// DefaultPageSize is the fixed page size used for offset pagination.
	DefaultPageSize = 100

	clientName = "metadata"
)

// Option represents a function that can configure a Client.
type Option func(*Client) error

// WithBaseURL sets the metadata endpoint URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) error {
		if httpClient == nil {
			return fmt.Errorf("HTTP client cannot be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithPageSize overrides the page size used for offset pagination.
func WithPageSize(size int) Option {
	return func(c *Client) error {
		if size <= 0 {
			return fmt.Errorf("page size must be positive")
		}
		c.pageSize = size
		return nil
	}
}

// Client pages through the metadata endpoint once per process lifetime and
// answers lookups from the resulting in-memory tables.
type Client struct {
	logger     hclog.Logger
	httpClient *http.Client
	baseURL    string
	pageSize   int

	mu      sync.Mutex
	fetched bool
	byName  map[string]catalog.MetadataRecord
	byURL   map[string]catalog.MetadataRecord
}

// NewClient creates a metadata client.
func NewClient(logger hclog.Logger, opt ...Option) (*Client, error) {
	c := &Client{
		logger:     logger.Named(clientName),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
		pageSize:   DefaultPageSize,
		byName:     make(map[string]catalog.MetadataRecord),
		byURL:      make(map[string]catalog.MetadataRecord),
	}

	for _, o := range opt {
		if o == nil {
			continue
		}
		if err := o(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FetchAll populates the lookup tables from the metadata endpoint.
// It is idempotent: once populated, subsequent calls return immediately
// without any network activity until ClearCache is called.
func (c *Client) FetchAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetched {
		c.logger.Debug("Metadata already fetched this process lifetime, skipping")
		return nil
	}

	byName := make(map[string]catalog.MetadataRecord)
	byURL := make(map[string]catalog.MetadataRecord)

	offset := 0
	for {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			return err
		}

		for _, s := range page.Servers {
			// A missing star count means upstream could not resolve the
			// repository; such entries carry no usable statistics.
			if s.GitHub == nil || s.GitHub.Stars == nil {
				continue
			}

			record := s.GitHub.ToDomainType()
			if s.Name != "" {
				byName[s.Name] = record
			}
			if key := catalog.NormalizeRepoURL(s.RepositoryURL); key != "" {
				byURL[key] = record
			}
		}

		if !page.Pagination.HasMore {
			break
		}
		offset += c.pageSize
	}

	c.byName = byName
	c.byURL = byURL
	c.fetched = true

	c.logger.Debug("Fetched metadata", "by_name", len(byName), "by_url", len(byURL))

	return nil
}

// Lookup resolves metadata for a server. A name-table hit wins; otherwise the
// normalized repository URL is tried. The two sources key servers differently,
// so the URL acts as the more stable fallback identity.
func (c *Client) Lookup(name, repoURL string) (catalog.MetadataRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if record, ok := c.byName[name]; ok {
		return record, true
	}
	if key := catalog.NormalizeRepoURL(repoURL); key != "" {
		if record, ok := c.byURL[key]; ok {
			return record, true
		}
	}

	return catalog.MetadataRecord{}, false
}

// ClearCache drops both lookup tables and the fetched flag, forcing the next
// FetchAll to hit the network again.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byName = make(map[string]catalog.MetadataRecord)
	c.byURL = make(map[string]catalog.MetadataRecord)
	c.fetched = false
}

func (c *Client) fetchPage(ctx context.Context, offset int) (listResponse, error) {
	vals, err := query.Values(listOptions{Limit: c.pageSize, Offset: offset, LatestOnly: true})
	if err != nil {
		return listResponse{}, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	reqURL := c.baseURL + "?" + vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return listResponse{}, fmt.Errorf("failed to create request for '%s': %w", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return listResponse{}, fmt.Errorf("%w: failed to fetch metadata page: %w", errors.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return listResponse{}, fmt.Errorf(
			"%w: received non-2xx HTTP status from metadata endpoint: %d",
			errors.ErrInvalidResponse,
			resp.StatusCode,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return listResponse{}, fmt.Errorf("%w: failed to read metadata response body: %w", errors.ErrNetwork, err)
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return listResponse{}, fmt.Errorf("%w: failed to unmarshal metadata page: %w", errors.ErrInvalidResponse, err)
	}

	return page, nil
}
