package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nirdeo/AgenticHub/internal/aggregate"
	"github.com/Nirdeo/AgenticHub/internal/catalog"
	"github.com/Nirdeo/AgenticHub/internal/cmd"
	cmdopts "github.com/Nirdeo/AgenticHub/internal/cmd/options"
	"github.com/Nirdeo/AgenticHub/internal/cmd/output"
	"github.com/Nirdeo/AgenticHub/internal/printer"
)

type SkillsCmd struct {
	*cmd.BaseCmd
	Format  cmd.OutputFormat
	service *aggregate.Service
}

func NewSkillsCmd(baseCmd *cmd.BaseCmd, opt ...cmdopts.CmdOption) (*cobra.Command, error) {
	opts, err := cmdopts.NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	c := &SkillsCmd{
		BaseCmd: baseCmd,
		Format:  cmd.FormatText,
		service: opts.Service,
	}

	cobraCommand := &cobra.Command{
		Use:   "skills [query]",
		Short: "Lists popular agent skills, or searches the skills catalog.",
		Long:  c.longDescription(),
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.run,
	}

	allowed := cmd.AllowedOutputFormats()
	cobraCommand.Flags().Var(
		&c.Format,
		"format",
		fmt.Sprintf("Optional, output format, one of: %s", allowed.String()),
	)

	return cobraCommand, nil
}

// longDescription returns the long version of the command description.
func (c *SkillsCmd) longDescription() string {
	return `Lists popular agent skills from the skills catalog, sorted by install count.
With a query, searches the catalog instead.`
}

func (c *SkillsCmd) run(cobraCmd *cobra.Command, args []string) error {
	service := c.service
	if service == nil {
		var err error
		service, err = c.CreateService()
		if err != nil {
			return err
		}
	}

	var (
		records []catalog.SkillRecord
		err     error
	)

	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		records, err = service.Skills().Search(cobraCmd.Context(), strings.TrimSpace(args[0]))
	} else {
		records, err = service.Skills().FetchPopular(cobraCmd.Context())
	}
	if err != nil {
		return err
	}

	views := make([]printer.SkillView, 0, len(records))
	for _, r := range records {
		views = append(views, printer.NewSkillView(r))
	}

	return skillHandler(c.Format, cobraCmd).HandleResults(views...)
}

func skillHandler(format cmd.OutputFormat, cobraCmd *cobra.Command) output.Handler[printer.SkillView] {
	w := cobraCmd.OutOrStdout()

	switch format {
	case cmd.FormatJSON:
		return output.NewJSONHandler[printer.SkillView](w, 2)
	case cmd.FormatYAML:
		return output.NewYAMLHandler[printer.SkillView](w, 2)
	default:
		return output.NewTextHandler[printer.SkillView](w, printer.NewSkillPrinter())
	}
}
