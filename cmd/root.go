package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/flags"
)

var version = "dev" // Set at build time using -ldflags

type RootCmd struct {
	*cmd.BaseCmd
}

func Execute() error {
	logger, err := configureLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error configuring logger: %s\n", err)
		os.Exit(1)
	}

	rootCmd, err := NewRootCmd(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating root command: %s\n", err)
		os.Exit(1)
	}

	return rootCmd.Execute()
}

func NewRootCmd(logger hclog.Logger) (*cobra.Command, error) {
	base := &cmd.BaseCmd{}
	base.SetLogger(logger)

	c := &RootCmd{
		BaseCmd: base,
	}

	rootCmd := &cobra.Command{
		Use:          "agentichub <command> [args]",
		Short:        "Browse MCP registries and agent skills, and manage client configurations.",
		Long:         c.longDescription(),
		SilenceUsage: true,
		Version:      version,
	}

	// Global flags
	flags.InitFlags(rootCmd.PersistentFlags())

	commands := []func(*cmd.BaseCmd, ...cmdopts.CmdOption) (*cobra.Command, error){
		NewSearchCmd,
		NewSkillsCmd,
		NewClientsCmd,
		NewInstallCmd,
		NewUninstallCmd,
		NewRegistriesCmd,
	}

	for _, create := range commands {
		sub, err := create(base)
		if err != nil {
			return nil, err
		}
		rootCmd.AddCommand(sub)
	}

	return rootCmd, nil
}

func (c *RootCmd) longDescription() string {
	return `AgenticHub aggregates MCP server registries and agent-skill catalogs, and
reads and writes the local configuration files of AI-agent clients such as
Claude Desktop, Cursor, Zed, Codex and Goose.`
}

func configureLogger() (hclog.Logger, error) {
	logPath := strings.TrimSpace(os.Getenv(flags.EnvVarLogPath))

	// If AGENTICHUB_LOG_PATH is not set, don't log anywhere.
	logOutput := io.Discard

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		logOutput = f
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "agentichub",
		Level:  hclog.LevelFromString(getLogLevel()),
		Output: logOutput,
	})

	return logger, nil
}

func getLogLevel() string {
	lvl := strings.ToLower(os.Getenv(flags.EnvVarLogLevel))
	switch lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return lvl
	default:
		return flags.DefaultLogLevel
	}
}
