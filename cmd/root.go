package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhubert/toolplan/internal/logging"
	"github.com/zhubert/toolplan/internal/schedule"
	"github.com/zhubert/toolplan/internal/version"
)

var (
	markdownFlag bool
	dirFlag      string
)

var rootCmd = &cobra.Command{
	Use:   "toolplan [batch.json]",
	Short: "Plan safe parallel execution of an agent tool-call batch",
	Long: "toolplan reads a batch of tool calls (a JSON array of objects with " +
		"id, name, and input fields), infers the dependencies between them, and " +
		"prints the ordered groups an executor may run concurrently. " +
		"With no file argument the batch is read from stdin.",
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runPlan,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&markdownFlag, "markdown", false,
		"render the report as styled terminal markdown")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "",
		"project directory whose .toolplan/tools.yaml should be loaded (default: working directory)")
}

func runPlan(cmd *cobra.Command, args []string) error {
	analyzer, cleanup, err := newAnalyzer()
	if err != nil {
		return err
	}
	defer cleanup()

	calls, err := loadBatch(args)
	if err != nil {
		return err
	}

	plan := analyzer.BuildPlan(calls)
	report := plan.Report()
	if markdownFlag {
		report = renderMarkdown(report)
	}
	fmt.Fprintln(cmd.OutOrStdout(), report)
	return nil
}

// newAnalyzer builds an analyzer with logging and config loaded the same way
// for every subcommand.
func newAnalyzer() (*schedule.Analyzer, func(), error) {
	logger, closeLog, err := logging.Setup()
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logging: %w", err)
	}
	cleanup := func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(os.Stderr, "closing log file: %v\n", cerr)
		}
	}

	analyzer := schedule.NewAnalyzer(logger)

	if _, err := analyzer.LoadGlobal(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading global tool config: %w", err)
	}

	dir := dirFlag
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("getting working directory: %w", err)
		}
	}
	loaded, err := analyzer.LoadFromDirectory(dir)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("loading tool config: %w", err)
	}
	logger.Info("analyzer ready", "dir", dir, "custom_tools", loaded)

	return analyzer, cleanup, nil
}

// batchEntry is the JSON shape of one call in a batch file.
type batchEntry struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// loadBatch reads the batch from the file argument, or stdin when absent.
// Entries without an id are assigned one.
func loadBatch(args []string) ([]*schedule.ToolCall, error) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading batch file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading batch from stdin: %w", err)
		}
	}

	var entries []batchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing batch: %w", err)
	}

	calls := make([]*schedule.ToolCall, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("batch entry %d: missing name", i)
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		calls[i] = &schedule.ToolCall{ID: e.ID, Name: e.Name, Input: e.Input}
	}
	return calls, nil
}

// renderMarkdown converts markdown to styled terminal output using glamour.
func renderMarkdown(content string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0), // No wrapping - let terminal handle it
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSuffix(rendered, "\n")
}
