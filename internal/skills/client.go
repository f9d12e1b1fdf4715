// Package skills queries a skills catalog API. The upstream surface is
// search-only (no "list all" or "trending" endpoint), so popularity discovery
// is approximated by issuing a fixed set of seed queries and merging the
// deduplicated results.
package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-hclog"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/errors"
)

const (
	// DefaultBaseURL is the skills search endpoint.
	DefaultBaseURL = "https://skills.sh/api/search"

	// DefaultSearchLimit is the fixed result limit per search call.
	DefaultSearchLimit = 50

	clientName = "skills"
)

// seedQueries are the topic terms used to approximate a popularity listing.
// An additional empty-query call is always issued alongside these.
func seedQueries() []string {
	return []string{
		"git",
		"code",
		"test",
		"docs",
		"data",
		"web",
		"search",
		"deploy",
	}
}

// Option represents a function that can configure a Client.
type Option func(*Client) error

// WithBaseURL sets the skills search endpoint URL.
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

// Client queries the skills catalog and caches the aggregated popular set for
// the process lifetime.
type Client struct {
	logger     hclog.Logger
	httpClient *http.Client
	baseURL    string

	mu      sync.Mutex
	fetched bool
	popular []catalog.SkillRecord
}

// NewClient creates a skills client.
func NewClient(logger hclog.Logger, opt ...Option) (*Client, error) {
	c := &Client{
		logger:     logger.Named(clientName),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    DefaultBaseURL,
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

// Search issues one query against the skills search endpoint.
func (c *Client) Search(ctx context.Context, queryStr string) ([]catalog.SkillRecord, error) {
	vals, err := query.Values(searchOptions{Query: queryStr, Limit: DefaultSearchLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	reqURL := c.baseURL + "?" + vals.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for '%s': %w", reqURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch skills search results: %w", errors.ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf(
			"%w: received non-2xx HTTP status from skills endpoint: %d",
			errors.ErrInvalidResponse,
			resp.StatusCode,
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read skills response body: %w", errors.ErrNetwork, err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal skills search results: %w", errors.ErrInvalidResponse, err)
	}

	records := make([]catalog.SkillRecord, 0, len(result.Skills))
	for _, s := range result.Skills {
		records = append(records, s.ToDomainType())
	}

	return records, nil
}

// FetchPopular builds a deduplicated catalog by issuing every seed query plus
// one empty-query call and merging the results by identifier; earlier results
// win on identifier collisions. Individual seed-query failures are logged and
// skipped, so the call degrades to a partial or empty set rather than failing.
// The result is sorted by install count descending and cached until
// ClearCache.
func (c *Client) FetchPopular(ctx context.Context) ([]catalog.SkillRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetched {
		c.logger.Debug("Skills already fetched this process lifetime, skipping")
		return slices.Clone(c.popular), nil
	}

	merged := make(map[string]catalog.SkillRecord)

	for _, seed := range append(seedQueries(), "") {
		results, err := c.Search(ctx, seed)
		if err != nil {
			c.logger.Warn("Skills seed query failed ... continuing", "query", seed, "error", err)
			continue
		}
		for _, r := range results {
			if _, exists := merged[r.ID]; exists {
				continue
			}
			merged[r.ID] = r
		}
	}

	popular := make([]catalog.SkillRecord, 0, len(merged))
	for _, r := range merged {
		popular = append(popular, r)
	}
	slices.SortFunc(popular, func(a, b catalog.SkillRecord) int {
		if a.Installs != b.Installs {
			return b.Installs - a.Installs
		}
		return strings.Compare(a.Name, b.Name)
	})

	c.popular = popular
	c.fetched = true

	c.logger.Debug("Fetched popular skills", "count", len(popular))

	return slices.Clone(popular), nil
}

// ClearCache drops the cached popular set, forcing the next FetchPopular to
// query the network again.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.popular = nil
	c.fetched = false
}
