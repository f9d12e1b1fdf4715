// Package aggregate combines the registry, metadata, skills and client
// configuration sources into a single refreshable snapshot.
package aggregate

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/clients"
	"github.com/Nirdeo/AgenticHub/internal/metadata"
	"github.com/Nirdeo/AgenticHub/internal/registry"
	"github.com/Nirdeo/AgenticHub/internal/skills"
)

// Snapshot is the combined state of all sources after a refresh.
// Metadata and skills are best-effort: when their upstreams are unavailable
// the snapshot still carries the full server list.
type Snapshot struct {
	// Servers is the deduplicated registry listing in first-seen order.
	Servers []catalog.ServerRecord

	// Skills is the popular-skills listing, sorted by install count.
	Skills []catalog.SkillRecord

	// Installed maps server name to its merged installation record across
	// all detected clients.
	Installed map[string]catalog.InstalledServerRecord

	// Discoveries holds the per-client discovery results for detected
	// clients only.
	Discoveries []clients.Discovery

	// MetadataAvailable reports whether the metadata source loaded.
	// When false, metadata lookups return no results and views fall back
	// to name ordering.
	MetadataAvailable bool
}

// Service orchestrates concurrent fetches across all upstream sources.
type Service struct {
	logger   hclog.Logger
	registry *registry.Client
	metadata *metadata.Client
	skills   *skills.Client
	clients  *clients.Manager
}

// Option is a functional option for configuring a Service.
type Option func(*Service) error

// WithRegistryClient overrides the registry client.
func WithRegistryClient(c *registry.Client) Option {
	return func(s *Service) error {
		if c == nil {
			return fmt.Errorf("registry client cannot be nil")
		}
		s.registry = c
		return nil
	}
}

// WithMetadataClient overrides the metadata client.
func WithMetadataClient(c *metadata.Client) Option {
	return func(s *Service) error {
		if c == nil {
			return fmt.Errorf("metadata client cannot be nil")
		}
		s.metadata = c
		return nil
	}
}

// WithSkillsClient overrides the skills client.
func WithSkillsClient(c *skills.Client) Option {
	return func(s *Service) error {
		if c == nil {
			return fmt.Errorf("skills client cannot be nil")
		}
		s.skills = c
		return nil
	}
}

// WithClientManager overrides the client configuration manager.
func WithClientManager(m *clients.Manager) Option {
	return func(s *Service) error {
		if m == nil {
			return fmt.Errorf("client manager cannot be nil")
		}
		s.clients = m
		return nil
	}
}

// NewService creates a Service with default clients for every source,
// each of which can be replaced via options.
func NewService(logger hclog.Logger, opt ...Option) (*Service, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logger = logger.Named("aggregate")

	registryClient, err := registry.NewClient(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry client: %w", err)
	}

	metadataClient, err := metadata.NewClient(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata client: %w", err)
	}

	skillsClient, err := skills.NewClient(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create skills client: %w", err)
	}

	s := &Service{
		logger:   logger,
		registry: registryClient,
		metadata: metadataClient,
		skills:   skillsClient,
		clients:  clients.NewManager(logger),
	}

	for _, o := range opt {
		if err := o(s); err != nil {
			return nil, fmt.Errorf("failed to apply service option: %w", err)
		}
	}

	return s, nil
}

// Registry exposes the underlying registry client, e.g. to switch the
// active registry before a refresh.
func (s *Service) Registry() *registry.Client {
	return s.registry
}

// Skills exposes the underlying skills client for direct searches.
func (s *Service) Skills() *skills.Client {
	return s.skills
}

// Clients exposes the underlying client configuration manager.
func (s *Service) Clients() *clients.Manager {
	return s.clients
}

// Refresh fetches all sources concurrently and assembles a snapshot.
//
// Registry and client discovery failures abort the refresh. Metadata and
// skills failures are logged and degrade the snapshot: server listings
// remain available without enrichment.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	var (
		servers     []catalog.ServerRecord
		skillSet    []catalog.SkillRecord
		discoveries []clients.Discovery
		metadataOK  bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		servers, err = s.registry.FetchAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch registry servers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		discoveries, err = s.clients.DiscoverAll()
		if err != nil {
			return fmt.Errorf("failed to discover clients: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.metadata.FetchAll(gctx); err != nil {
			s.logger.Warn("Metadata source unavailable, continuing without enrichment", "error", err)
			return nil
		}
		metadataOK = true
		return nil
	})

	g.Go(func() error {
		var err error
		skillSet, err = s.skills.FetchPopular(gctx)
		if err != nil {
			s.logger.Warn("Skills source unavailable, continuing without skills", "error", err)
			skillSet = nil
			return nil
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Servers:           servers,
		Skills:            skillSet,
		Installed:         MergeInstalled(discoveries),
		Discoveries:       discoveries,
		MetadataAvailable: metadataOK,
	}, nil
}

// MetadataFor returns the enrichment record for a server, keyed by name
// with a fallback to the normalized repository URL.
func (s *Service) MetadataFor(record catalog.ServerRecord) (catalog.MetadataRecord, bool) {
	return s.metadata.Lookup(record.Name, record.RepositoryURL())
}

// MergeInstalled unions per-client discovery results into a single map
// keyed by server name. A server configured in several clients carries
// all of their identifiers; the entry's command and args come from the
// first client that listed it.
func MergeInstalled(discoveries []clients.Discovery) map[string]catalog.InstalledServerRecord {
	merged := make(map[string]catalog.InstalledServerRecord)

	for _, d := range discoveries {
		for name, record := range d.Servers {
			existing, ok := merged[name]
			if !ok {
				merged[name] = record
				continue
			}

			for _, id := range record.Clients {
				existing.AddClient(id)
			}
			merged[name] = existing
		}
	}

	return merged
}
