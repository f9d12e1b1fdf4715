package registry

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
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

const (
	// DefaultPageLimit is the page size requested from the listing endpoint.
	DefaultPageLimit = 100

	clientName = "registry"
)

// Option represents a function that can configure a Client.
type Option func(*Client) error

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

// WithBaseURL overrides the active registry's listing endpoint, e.g. for a
// self-hosted registry exposing the same API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL cannot be empty")
		}
		c.active.BaseURL = baseURL
		return nil
	}
}

// WithActiveRegistry selects the initially active registry by name.
func WithActiveRegistry(name string) Option {
	return func(c *Client) error {
		d, err := FindDescriptor(name)
		if err != nil {
			return err
		}
		c.active = d
		return nil
	}
}

// Client fetches paginated server listings from the active registry.
// Switching registries does not invalidate anything automatically; callers
// re-trigger FetchAll after SetActive.
type Client struct {
	logger     hclog.Logger
	httpClient *http.Client

	mu     sync.RWMutex
	active Descriptor
}

// NewClient creates a registry client. The default active registry is the
// first descriptor returned by Descriptors.
func NewClient(logger hclog.Logger, opt ...Option) (*Client, error) {
	c := &Client{
		logger:     logger.Named(clientName),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		active:     Descriptors()[0],
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

// Active returns the currently selected registry descriptor.
func (c *Client) Active() Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.active
}

// SetActive switches the active registry by name.
func (c *Client) SetActive(name string) error {
	d, err := FindDescriptor(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.active = d
	c.mu.Unlock()

	c.logger.Debug("Switched active registry", "registry", d.Name)
	return nil
}

// FetchPage issues one GET against the active registry's listing endpoint.
// It returns the page's records and the cursor for the next page ("" when
// this was the last page).
func (c *Client) FetchPage(ctx context.Context, cursor string, limit int) ([]catalog.ServerRecord, string, error) {
	active := c.Active()

	if limit <= 0 {
		limit = DefaultPageLimit
	}

	vals, err := query.Values(listOptions{Cursor: cursor, Limit: limit})
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode query parameters: %w", err)
	}
	reqURL := active.BaseURL + "?" + vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request for '%s': %w", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to fetch '%s' registry page: %w", errors.ErrNetwork, active.Name, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf(
			"%w: received non-2xx HTTP status from '%s' registry: %d",
			errors.ErrInvalidResponse,
			active.Name,
			resp.StatusCode,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to read '%s' registry response body: %w", errors.ErrNetwork, active.Name, err)
	}

	var page listResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", fmt.Errorf("%w: failed to unmarshal '%s' registry page: %w", errors.ErrInvalidResponse, active.Name, err)
	}

	records := make([]catalog.ServerRecord, 0, len(page.Servers))
	for _, env := range page.Servers {
		record, err := env.Server.ToDomainType()
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", errors.ErrDecoding, err)
		}
		records = append(records, record)
	}

	return records, page.Metadata.NextCursor, nil
}

// FetchAll follows the cursor until the last page, concatenates the results
// and passes the full list through Dedupe. It fails fast: an error on any
// page aborts the whole fetch with no partial results.
func (c *Client) FetchAll(ctx context.Context) ([]catalog.ServerRecord, error) {
	var all []catalog.ServerRecord

	cursor := ""
	for {
		records, next, err := c.FetchPage(ctx, cursor, DefaultPageLimit)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)

		if next == "" {
			break
		}
		cursor = next
	}

	c.logger.Debug("Fetched registry listings", "registry", c.Active().Name, "count", len(all))

	return Dedupe(all), nil
}

// Search fetches all listings and filters them client-side on a
// case-insensitive substring match against name, description and display
// name. The upstream API has no search endpoint.
func (c *Client) Search(ctx context.Context, queryStr string) ([]catalog.ServerRecord, error) {
	all, err := c.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	q := filter.NormalizeString(queryStr)
	if q == "" {
		return all, nil
	}

	results := make([]catalog.ServerRecord, 0, len(all))
	for _, s := range all {
		if filter.AnyContainsFold(q, s.Name, s.Description, s.DisplayName()) {
			results = append(results, s)
		}
	}

	return results, nil
}
