package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph [batch.json]",
	Short: "Print the dependency edges of a batch without grouping",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	analyzer, cleanup, err := newAnalyzer()
	if err != nil {
		return err
	}
	defer cleanup()

	calls, err := loadBatch(args)
	if err != nil {
		return err
	}

	analyzer.Analyze(calls)

	out := cmd.OutOrStdout()
	for _, c := range calls {
		if len(c.DependsOn) == 0 {
			fmt.Fprintf(out, "%s (%s): no dependencies\n", c.ID, c.Name)
			continue
		}
		for _, dep := range c.DependsOn {
			fmt.Fprintf(out, "%s (%s) <- %s [%s]\n", c.ID, c.Name, dep, c.DependencyTypes[dep])
		}
	}
	return nil
}
