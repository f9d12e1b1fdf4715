// Package clients knows the fixed set of third-party AI-agent clients that
// consume MCP server configuration files: where each keeps its config, which
// syntax the file uses, and under which root key server entries live. It
// reads installed-server state from those files and writes server entries
// into them.
package clients

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/Nirdeo/AgenticHub/internal/errors"
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

// Category groups clients by the kind of application they are.
type Category string

const (
	CategoryDesktop Category = "desktop"
	CategoryCLI     Category = "cli"
	CategoryEditor  Category = "editor"
)

// Format identifies the configuration file syntax a client uses.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatTOML  Format = "toml"
	FormatYAML  Format = "yaml"
)

// DefaultRootKey is the root key most clients keep server entries under.
const DefaultRootKey = "mcpServers"

// Descriptor statically describes one known client.
type Descriptor struct {
	ID          string
	DisplayName string
	Category    Category

	// ConfigPath is the client's global configuration file; empty when the
	// client keeps no writable global config.
	ConfigPath string

	// ProjectConfigPath is the path of a project-level config relative to a
	// project root, when the client supports one.
	ProjectConfigPath string

	Format  Format
	RootKey string

	// ProjectRootKey overrides RootKey inside the project-level config for
	// clients whose two files disagree on the key.
	ProjectRootKey string

	// DetectPaths are well-known filesystem locations (application bundles,
	// CLI marker directories) whose presence marks the client as installed.
	DetectPaths []string
}

// Descriptors returns the fixed set of known clients with paths resolved
// against the current user's home directory.
func Descriptors() []Descriptor {
	home := xdg.Home
	appSupport := filepath.Join(home, "Library", "Application Support")

	return []Descriptor{
		{
			ID:          "claude-desktop",
			DisplayName: "Claude Desktop",
			Category:    CategoryDesktop,
			ConfigPath:  filepath.Join(appSupport, "Claude", "claude_desktop_config.json"),
			Format:      FormatJSON,
			RootKey:     DefaultRootKey,
			DetectPaths: []string{
				"/Applications/Claude.app",
				filepath.Join(appSupport, "Claude"),
			},
		},
		{
			ID:                "claude-code",
			DisplayName:       "Claude Code",
			Category:          CategoryCLI,
			ConfigPath:        filepath.Join(home, ".claude.json"),
			ProjectConfigPath: ".mcp.json",
			Format:            FormatJSON,
			RootKey:           DefaultRootKey,
			DetectPaths: []string{
				filepath.Join(home, ".claude"),
			},
		},
		{
			ID:                "cursor",
			DisplayName:       "Cursor",
			Category:          CategoryEditor,
			ConfigPath:        filepath.Join(home, ".cursor", "mcp.json"),
			ProjectConfigPath: filepath.Join(".cursor", "mcp.json"),
			Format:            FormatJSON,
			RootKey:           DefaultRootKey,
			DetectPaths: []string{
				"/Applications/Cursor.app",
				filepath.Join(home, ".cursor"),
			},
		},
		{
			ID:          "windsurf",
			DisplayName: "Windsurf",
			Category:    CategoryEditor,
			ConfigPath:  filepath.Join(home, ".codeium", "windsurf", "mcp_config.json"),
			Format:      FormatJSON,
			RootKey:     DefaultRootKey,
			DetectPaths: []string{
				"/Applications/Windsurf.app",
				filepath.Join(home, ".codeium", "windsurf"),
			},
		},
		{
			ID:                "vscode",
			DisplayName:       "Visual Studio Code",
			Category:          CategoryEditor,
			ConfigPath:        filepath.Join(appSupport, "Code", "User", "settings.json"),
			ProjectConfigPath: filepath.Join(".vscode", "mcp.json"),
			Format:            FormatJSONC,
			RootKey:           "mcp",
			ProjectRootKey:    "servers",
			DetectPaths: []string{
				"/Applications/Visual Studio Code.app",
				filepath.Join(appSupport, "Code"),
			},
		},
		{
			ID:          "zed",
			DisplayName: "Zed",
			Category:    CategoryEditor,
			ConfigPath:  filepath.Join(xdg.ConfigHome, "zed", "settings.json"),
			Format:      FormatJSONC,
			RootKey:     "context_servers",
			DetectPaths: []string{
				"/Applications/Zed.app",
				filepath.Join(xdg.ConfigHome, "zed"),
			},
		},
		{
			ID:          "codex",
			DisplayName: "Codex CLI",
			Category:    CategoryCLI,
			ConfigPath:  filepath.Join(home, ".codex", "config.toml"),
			Format:      FormatTOML,
			RootKey:     "mcp_servers",
			DetectPaths: []string{
				filepath.Join(home, ".codex"),
			},
		},
		{
			ID:          "goose",
			DisplayName: "Goose",
			Category:    CategoryCLI,
			ConfigPath:  filepath.Join(xdg.ConfigHome, "goose", "config.yaml"),
			Format:      FormatYAML,
			RootKey:     "extensions",
			DetectPaths: []string{
				filepath.Join(xdg.ConfigHome, "goose"),
			},
		},
	}
}

// projectRootKey returns the root key for the client's project-level config,
// falling back to the global one.
func (d Descriptor) projectRootKey() string {
	if d.ProjectRootKey != "" {
		return d.ProjectRootKey
	}
	return d.RootKey
}

// FindDescriptor resolves a client by identifier (case-insensitive).
func FindDescriptor(id string) (Descriptor, error) {
	n := filter.NormalizeString(id)
	for _, d := range Descriptors() {
		if filter.NormalizeString(d.ID) == n {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s", errors.ErrClientNotFound, id)
}
