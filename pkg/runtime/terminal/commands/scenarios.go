package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yashshah-dev/cloud-cost-optimizer/pkg/services/synth"
)

func NewScenariosCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List supported scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range synth.KnownScenarios() {
				if _, err := fmt.Fprintf(out, "%-14s %s\n", name, synth.ScenarioDescription(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
