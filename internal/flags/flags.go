package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarLogPath  = "AGENTICHUB_LOG_PATH"
	EnvVarLogLevel = "AGENTICHUB_LOG_LEVEL"
	EnvVarRegistry = "AGENTICHUB_REGISTRY"

	// Defaults
	DefaultLogPath  = ""
	DefaultLogLevel = "info"
	DefaultRegistry = "mcp-community"

	// Flag names
	FlagNameLogPath  = "log-path"
	FlagNameLogLevel = "log-level"
	FlagNameRegistry = "registry"
)

var (
	LogPath  string
	LogLevel string
	Registry string
)

func InitFlags(fs *pflag.FlagSet) {
	initLogger(fs)
	initRegistry(fs)
}

func initLogger(fs *pflag.FlagSet) {
	if LogPath == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogPath)); env != "" {
			LogPath = env
		} else {
			LogPath = DefaultLogPath
		}
	}
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to generated log file")

	if LogLevel == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarLogLevel)); env != "" {
			LogLevel = strings.ToLower(env)
		} else {
			LogLevel = DefaultLogLevel
		}
	}
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level for agentichub logs")
}

func initRegistry(fs *pflag.FlagSet) {
	if Registry == "" {
		if env := strings.TrimSpace(os.Getenv(EnvVarRegistry)); env != "" {
			Registry = env
		} else {
			Registry = DefaultRegistry
		}
	}
	fs.StringVar(&Registry, FlagNameRegistry, Registry, "name of the active server registry")
}
