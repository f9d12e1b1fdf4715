// Package registry fetches server listings from a selectable MCP registry
// endpoint, following cursor pagination, and collapses the results into a
// deduplicated set keyed by repository identity.
package registry

import (
	"fmt"

	"github.com/Nirdeo/AgenticHub/internal/errors"
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

// Descriptor describes one selectable registry source.
type Descriptor struct {
	Name        string
	DisplayName string
	BaseURL     string
	Category    string
	Official    bool
}

// Descriptors returns the fixed set of known registries. The first entry is
// the default active registry.
func Descriptors() []Descriptor {
	return []Descriptor{
		{
			Name:        "mcp-community",
			DisplayName: "MCP Community Registry",
			BaseURL:     "https://registry.modelcontextprotocol.io/v0/servers",
			Category:    "community",
			Official:    true,
		},
		{
			Name:        "smithery",
			DisplayName: "Smithery",
			BaseURL:     "https://registry.smithery.ai/servers",
			Category:    "community",
			Official:    false,
		},
		{
			Name:        "pulse",
			DisplayName: "PulseMCP",
			BaseURL:     "https://api.pulsemcp.com/v0beta/servers",
			Category:    "aggregator",
			Official:    false,
		},
	}
}

// FindDescriptor resolves a registry by name (case-insensitive).
func FindDescriptor(name string) (Descriptor, error) {
	n := filter.NormalizeString(name)
	for _, d := range Descriptors() {
		if filter.NormalizeString(d.Name) == n {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s", errors.ErrRegistryNotFound, name)
}
