// Package catalog defines the domain model shared by the registry, metadata,
// skills and client-configuration components: server listings, their
// packages, auxiliary repository statistics and locally installed servers.
package catalog

import (
	"strings"
)

// RegistryKind identifies the package registry a server package is published to.
type RegistryKind string

const (
	RegistryKindNPM     RegistryKind = "npm"
	RegistryKindPyPI    RegistryKind = "pypi"
	RegistryKindOCI     RegistryKind = "oci"
	RegistryKindBundle  RegistryKind = "mcpb"
	RegistryKindUnknown RegistryKind = "unknown"
)

// ParseRegistryKind maps a wire value onto a RegistryKind.
// Unrecognized values map to RegistryKindUnknown rather than failing, so new
// upstream registry types never break decoding.
func ParseRegistryKind(s string) RegistryKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "npm":
		return RegistryKindNPM
	case "pypi":
		return RegistryKindPyPI
	case "oci", "docker":
		return RegistryKindOCI
	case "mcpb", "bundle":
		return RegistryKindBundle
	default:
		return RegistryKindUnknown
	}
}

// TransportKind identifies how a client communicates with a server package.
type TransportKind string

const (
	TransportKindStdio          TransportKind = "stdio"
	TransportKindSSE            TransportKind = "sse"
	TransportKindStreamableHTTP TransportKind = "streamable-http"
	TransportKindUnknown        TransportKind = "unknown"
)

// ParseTransportKind maps a wire value onto a TransportKind, with the same
// unknown fallback behavior as ParseRegistryKind.
func ParseTransportKind(s string) TransportKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdio":
		return TransportKindStdio
	case "sse":
		return TransportKindSSE
	case "streamable-http", "streamable_http", "http":
		return TransportKindStreamableHTTP
	default:
		return TransportKindUnknown
	}
}

// Transport describes the connection mechanism declared for a package.
type Transport struct {
	Kind TransportKind
	URL  string
}

// EnvVar describes one environment variable a package expects.
type EnvVar struct {
	Name        string
	Description string
	Secret      bool
	Format      string
}

// PackageRecord describes one installable package of a server listing.
type PackageRecord struct {
	Registry   RegistryKind
	Identifier string
	Version    string
	Transport  *Transport
	EnvVars    []EnvVar
}

// Repository is a reference to the source repository of a server.
type Repository struct {
	URL    string
	Source string
}

// ServerRecord is one server listing from a registry.
// Name is always present and non-empty; the identity used for deduplication
// is the normalized repository URL when present, else Name.
type ServerRecord struct {
	Name        string
	Title       string
	Description string
	Version     string
	Packages    []PackageRecord
	IconURL     string
	Repository  *Repository
	WebsiteURL  string
}

// DisplayName returns the human-facing name for a server: the title when the
// listing carries one, otherwise the last path segment of the (often
// reverse-DNS namespaced) registry name.
func (s ServerRecord) DisplayName() string {
	if t := strings.TrimSpace(s.Title); t != "" {
		return t
	}
	if idx := strings.LastIndex(s.Name, "/"); idx != -1 && idx < len(s.Name)-1 {
		return s.Name[idx+1:]
	}
	return s.Name
}

// RepositoryURL returns the raw repository URL, or "" when the listing has no
// repository reference.
func (s ServerRecord) RepositoryURL() string {
	if s.Repository == nil {
		return ""
	}
	return s.Repository.URL
}

// Identity returns the deduplication identity for the server: the normalized
// repository URL when one is present, else the bare name.
func (s ServerRecord) Identity() string {
	if u := NormalizeRepoURL(s.RepositoryURL()); u != "" {
		return u
	}
	return s.Name
}

// HasRegistryKind reports whether any of the server's packages is published
// to the given package registry.
func (s ServerRecord) HasRegistryKind(kind RegistryKind) bool {
	for _, p := range s.Packages {
		if p.Registry == kind {
			return true
		}
	}
	return false
}

// NormalizeRepoURL normalizes a repository URL for identity comparison:
// lowercase, scheme and "www." prefix removed, leading/trailing slashes
// removed, trailing ".git" removed. Normalization is idempotent, so values
// that are already normalized pass through unchanged.
func NormalizeRepoURL(raw string) string {
	u := strings.ToLower(strings.TrimSpace(raw))
	if u == "" {
		return ""
	}

	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(u, scheme) {
			u = u[len(scheme):]
			break
		}
	}
	u = strings.TrimPrefix(u, "www.")
	u = strings.Trim(u, "/")
	u = strings.TrimSuffix(u, ".git")
	u = strings.Trim(u, "/")

	return u
}
