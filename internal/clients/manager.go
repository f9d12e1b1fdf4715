package clients

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/errors"
	"github.com/Nirdeo/AgenticHub/internal/files"
	"github.com/Nirdeo/AgenticHub/internal/filter"
)

const managerName = "clients"

// ServerEntry is the shape written into a client configuration file when a
// server is installed.
type ServerEntry struct {
	Command string
	Args    []string
	Env     map[string]string
}

// Discovery is the result of inspecting one client: whether it is installed
// and which servers its configuration currently references.
type Discovery struct {
	Client    Descriptor
	Installed bool
	Servers   map[string]catalog.InstalledServerRecord
}

// Manager reads and writes client configuration files.
type Manager struct {
	logger      hclog.Logger
	descriptors []Descriptor

	// projectDir anchors relative project-level config paths; empty means
	// they resolve against the current working directory.
	projectDir string
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithDescriptors replaces the set of clients the manager knows about.
func WithDescriptors(ds ...Descriptor) ManagerOption {
	return func(m *Manager) {
		m.descriptors = ds
	}
}

// WithProjectDir sets the directory project-level config paths resolve
// against.
func WithProjectDir(dir string) ManagerOption {
	return func(m *Manager) {
		m.projectDir = dir
	}
}

// NewManager creates a client configuration manager covering every known
// client by default.
func NewManager(logger hclog.Logger, opt ...ManagerOption) *Manager {
	m := &Manager{
		logger:      logger.Named(managerName),
		descriptors: Descriptors(),
	}

	for _, o := range opt {
		o(m)
	}

	return m
}

// Descriptor resolves one of the manager's clients by identifier
// (case-insensitive).
func (m *Manager) Descriptor(id string) (Descriptor, error) {
	n := filter.NormalizeString(id)
	for _, d := range m.descriptors {
		if filter.NormalizeString(d.ID) == n {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s", errors.ErrClientNotFound, id)
}

// Discover checks the client's well-known paths to decide whether it is
// installed and, when readable configs exist, extracts the installed-server
// map under the client's root key. The project-level config, when the client
// has one, is read as well; its entries shadow global entries of the same
// name. Entries without a command are silently skipped.
func (m *Manager) Discover(d Descriptor) (Discovery, error) {
	result := Discovery{
		Client:    d,
		Installed: m.isInstalled(d),
		Servers:   make(map[string]catalog.InstalledServerRecord),
	}

	if !result.Installed {
		return result, nil
	}

	if d.ConfigPath != "" {
		servers, err := m.readServers(d, d.ConfigPath, d.RootKey)
		if err != nil {
			return Discovery{}, err
		}
		for name, record := range servers {
			result.Servers[name] = record
		}
	}

	if d.ProjectConfigPath != "" {
		path := d.ProjectConfigPath
		if m.projectDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(m.projectDir, path)
		}
		servers, err := m.readServers(d, path, d.projectRootKey())
		if err != nil {
			return Discovery{}, err
		}
		for name, record := range servers {
			result.Servers[name] = record
		}
	}

	return result, nil
}

// readServers extracts server entries from one config file. A missing file
// yields an empty map; an unreadable or unparsable one is an error.
func (m *Manager) readServers(d Descriptor, path, rootKey string) (map[string]catalog.InstalledServerRecord, error) {
	servers := make(map[string]catalog.InstalledServerRecord)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return servers, nil
		}
		return nil, fmt.Errorf("%w: failed to read config for client '%s': %w", errors.ErrConfiguration, d.ID, err)
	}

	doc, err := decodeConfig(d.Format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse config for client '%s': %w", errors.ErrConfiguration, d.ID, err)
	}

	root, ok := doc[rootKey].(map[string]any)
	if !ok {
		return servers, nil
	}

	for name, raw := range root {
		record, ok := installedRecord(d.ID, name, raw)
		if !ok {
			m.logger.Debug("Skipping server entry without a command", "client", d.ID, "server", name)
			continue
		}
		servers[name] = record
	}

	return servers, nil
}

// DiscoverAll runs Discover for every known client, returning only clients
// that are present on this machine.
func (m *Manager) DiscoverAll() ([]Discovery, error) {
	var discoveries []Discovery

	for _, d := range m.descriptors {
		discovery, err := m.Discover(d)
		if err != nil {
			return nil, err
		}
		if !discovery.Installed {
			continue
		}
		discoveries = append(discoveries, discovery)
	}

	return discoveries, nil
}

// Install merges a server entry into the client's configuration under its
// root key, overwriting any existing entry of the same name. The config file
// and its parent directories are created when absent; unrelated top-level
// keys already present in the file are preserved.
func (m *Manager) Install(d Descriptor, serverName string, entry ServerEntry) error {
	if d.ConfigPath == "" {
		return fmt.Errorf("%w: client '%s' has no configuration path", errors.ErrConfiguration, d.ID)
	}

	doc := make(map[string]any)
	data, err := os.ReadFile(d.ConfigPath)
	switch {
	case err == nil:
		doc, err = decodeConfig(d.Format, data)
		if err != nil {
			return fmt.Errorf("%w: failed to parse existing config for client '%s': %w", errors.ErrConfiguration, d.ID, err)
		}
	case os.IsNotExist(err):
		// Start from an empty document.
	default:
		return fmt.Errorf("%w: failed to read config for client '%s': %w", errors.ErrConfiguration, d.ID, err)
	}

	root, ok := doc[d.RootKey].(map[string]any)
	if !ok {
		root = make(map[string]any)
	}

	serverMap := map[string]any{
		"command": entry.Command,
		"args":    toAnySlice(entry.Args),
	}
	if len(entry.Env) > 0 {
		serverMap["env"] = toAnyMap(entry.Env)
	}
	root[serverName] = serverMap
	doc[d.RootKey] = root

	encoded, err := encodeConfig(d.Format, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInstallationFailed, err)
	}

	if err := files.EnsureDir(filepath.Dir(d.ConfigPath)); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInstallationFailed, err)
	}
	if err := files.AtomicWrite(d.ConfigPath, encoded); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInstallationFailed, err)
	}

	m.logger.Debug("Installed server into client config", "client", d.ID, "server", serverName, "path", d.ConfigPath)

	return nil
}

// Uninstall removes the named server entry from the client's configuration
// and rewrites the file. A missing or unreadable config, and a server that is
// not present, are both no-ops rather than errors.
func (m *Manager) Uninstall(d Descriptor, serverName string) error {
	if d.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(d.ConfigPath)
	if err != nil {
		return nil
	}

	doc, err := decodeConfig(d.Format, data)
	if err != nil {
		return nil
	}

	root, ok := doc[d.RootKey].(map[string]any)
	if !ok {
		return nil
	}
	if _, exists := root[serverName]; !exists {
		return nil
	}

	delete(root, serverName)
	doc[d.RootKey] = root

	encoded, err := encodeConfig(d.Format, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrConfiguration, err)
	}
	if err := files.AtomicWrite(d.ConfigPath, encoded); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrConfiguration, err)
	}

	m.logger.Debug("Removed server from client config", "client", d.ID, "server", serverName, "path", d.ConfigPath)

	return nil
}

// isInstalled reports whether any of the client's well-known paths exist.
func (m *Manager) isInstalled(d Descriptor) bool {
	for _, p := range d.DetectPaths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	if d.ConfigPath != "" {
		if _, err := os.Stat(d.ConfigPath); err == nil {
			return true
		}
	}
	return false
}

// installedRecord builds an InstalledServerRecord from one raw config entry.
// Returns false when the entry is not a map or has no usable command.
func installedRecord(clientID, name string, raw any) (catalog.InstalledServerRecord, bool) {
	entry, ok := raw.(map[string]any)
	if !ok {
		return catalog.InstalledServerRecord{}, false
	}

	command, ok := entry["command"].(string)
	if !ok || command == "" {
		return catalog.InstalledServerRecord{}, false
	}

	record := catalog.InstalledServerRecord{
		Name:    name,
		Command: command,
		Enabled: true,
		Clients: []string{clientID},
	}

	if rawArgs, ok := entry["args"].([]any); ok {
		for _, a := range rawArgs {
			if s, ok := a.(string); ok {
				record.Args = append(record.Args, s)
			}
		}
	}

	if rawEnv, ok := entry["env"].(map[string]any); ok {
		record.Env = make(map[string]string, len(rawEnv))
		for k, v := range rawEnv {
			if s, ok := v.(string); ok {
				record.Env[k] = s
			}
		}
	}

	if disabled, ok := entry["disabled"].(bool); ok && disabled {
		record.Enabled = false
	}

	return record, true
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func toAnyMap(values map[string]string) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
