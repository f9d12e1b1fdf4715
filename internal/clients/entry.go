package clients

import (
	"fmt"

	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/errors"
)

// launcher order when a server publishes packages for several registries.
var preferredKinds = []catalog.RegistryKind{
	catalog.RegistryKindNPM,
	catalog.RegistryKindPyPI,
	catalog.RegistryKindOCI,
}

// ServerEntryFor derives the config entry used to launch a server from its
// published packages. npm packages run through npx, PyPI through uvx, OCI
// images through docker. Required environment variables are carried as empty
// values for the user to fill in.
func ServerEntryFor(record catalog.ServerRecord) (ServerEntry, error) {
	pkg, ok := launchablePackage(record)
	if !ok {
		return ServerEntry{}, fmt.Errorf("%w: server '%s' has no installable package", errors.ErrInstallationFailed, record.Name)
	}

	entry := ServerEntry{}

	switch pkg.Registry {
	case catalog.RegistryKindNPM:
		entry.Command = "npx"
		entry.Args = []string{"-y", versionedIdentifier(pkg)}
	case catalog.RegistryKindPyPI:
		entry.Command = "uvx"
		entry.Args = []string{pkg.Identifier}
	case catalog.RegistryKindOCI:
		entry.Command = "docker"
		entry.Args = []string{"run", "--rm", "-i", pkg.Identifier}
	default:
		return ServerEntry{}, fmt.Errorf("%w: no launcher for registry kind '%s'", errors.ErrInstallationFailed, pkg.Registry)
	}

	for _, v := range pkg.EnvVars {
		if entry.Env == nil {
			entry.Env = make(map[string]string)
		}
		entry.Env[v.Name] = ""
	}

	return entry, nil
}

func launchablePackage(record catalog.ServerRecord) (catalog.PackageRecord, bool) {
	for _, kind := range preferredKinds {
		for _, pkg := range record.Packages {
			if pkg.Registry == kind {
				return pkg, true
			}
		}
	}
	return catalog.PackageRecord{}, false
}

// versionedIdentifier pins the npm package to the published version when one
// is known.
func versionedIdentifier(pkg catalog.PackageRecord) string {
	if pkg.Version == "" {
		return pkg.Identifier
	}
	return fmt.Sprintf("%s@%s", pkg.Identifier, pkg.Version)
}
