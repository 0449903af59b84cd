package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/runtime/terminal/commands"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costgen",
		Short: "Synthetic multi-cloud cost dataset generator",
	}

	cmd.AddCommand(commands.NewGenerateCmd(cli.reporter))
	cmd.AddCommand(commands.NewScenariosCmd(cli.output))
	cmd.AddCommand(commands.NewLoadCmd(cli.output))

	return cmd
}
