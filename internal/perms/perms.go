// Package perms provides centralized file and directory permission constants
// so that client configuration files are always written with consistent modes.
package perms

import "os"

const (
	// RegularFile permissions for standard files (client configs, logs).
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for standard directories (config parents, cache).
	// Mode 0755: owner read/write/execute, group and others read/execute.
	RegularDir os.FileMode = 0o755
)
