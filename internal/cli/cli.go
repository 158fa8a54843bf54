package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pfrederiksen/rank-trends/internal/config"
	"github.com/pfrederiksen/rank-trends/internal/logger"
	"github.com/pfrederiksen/rank-trends/internal/pipeline"
	"github.com/pfrederiksen/rank-trends/internal/ranking"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess            = 0
	ExitError              = 1
	ExitDepartmentNotFound = 3
)

var version = "dev"

type options struct {
	configPath string
	department string
	format     string
	marker     string
	limit      int
	logLevel   string
	sortOrder  string
	university string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rank-trends",
		Short: "Compare a university's success ranking against a baseline",
		Long: `A CLI tool that fetches the 2024 base score and success ranking table for a
department from universitego.com and compares one university's last four years of
success ranks against the average of the top state universities.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/rank-trends/config.yaml)")
	flags.StringVarP(&opts.department, "department", "d", "", fmt.Sprintf("Department name (default %q)", config.DefaultDepartment))
	flags.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or markdown")
	flags.StringVar(&opts.marker, "marker", ranking.DefaultMarker, "Name marker selecting baseline universities")
	flags.IntVar(&opts.limit, "limit", ranking.DefaultLimit, "Number of matching universities in the baseline (0 = all)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error (default from config, else info)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging (same as --log-level debug)")

	cmd.AddCommand(newCompareCmd(opts))
	cmd.AddCommand(newListCmd(opts))

	return cmd
}

func newCompareCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Chart one university against the baseline",
		Long: `Fetches the department table and prints the selected university's success
ranks next to the baseline, oldest year first. Without --university the first
university in the table is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), cmd, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.university, "university", "u", "", "Exact university name as listed in the table")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the universities in the department table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.sortOrder, "sort", string(SortByTable), "Sort order: table, name or rank")
	return cmd
}

// setup resolves the configuration, output format and department for a command.
func setup(cmd *cobra.Command, opts *options) (*config.Config, OutputFormat, string, error) {
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON && format != FormatMarkdown {
		return nil, "", "", fmt.Errorf("invalid format: %s (must be 'text', 'json' or 'markdown')", opts.format)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, "", "", fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("marker") {
		cfg.Marker = opts.marker
	}
	if flags.Changed("limit") {
		cfg.BaselineLimit = opts.limit
	}
	if opts.department != "" {
		cfg.Department = opts.department
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", "", fmt.Errorf("invalid config: %w", err)
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.Verbose {
		level = logger.LevelDebug
	}
	logger.Default().SetLevel(level)

	return cfg, format, strings.TrimSpace(cfg.Department), nil
}

func runCompare(ctx context.Context, cmd *cobra.Command, opts *options, w io.Writer) error {
	cfg, format, department, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.NewScraper(cfg), cfg)

	table, err := p.Load(ctx, department)
	if err != nil {
		return err
	}

	chart, err := table.Chart(opts.university)
	if err != nil {
		return err
	}

	logMetrics()

	return WriteChart(w, &ChartResult{
		CheckedAt:  time.Now().UTC(),
		Department: table.Department,
		URL:        table.URL,
		Chart:      chart,
	}, format)
}

func runList(ctx context.Context, cmd *cobra.Command, opts *options, w io.Writer) error {
	cfg, format, department, err := setup(cmd, opts)
	if err != nil {
		return err
	}

	order := SortOrder(strings.ToLower(opts.sortOrder))
	if order != SortByTable && order != SortByName && order != SortByRank {
		return fmt.Errorf("invalid sort order: %s (must be 'table', 'name' or 'rank')", opts.sortOrder)
	}

	p := pipeline.New(pipeline.NewScraper(cfg), cfg)

	table, err := p.Load(ctx, department)
	if err != nil {
		return err
	}

	logMetrics()

	return WriteList(w, &ListResult{
		CheckedAt:    time.Now().UTC(),
		Department:   table.Department,
		URL:          table.URL,
		Universities: sortRecords(table.Records, order),
		Baseline:     table.Baseline,
		BaselineName: table.BaselineName,
		Marker:       cfg.Marker,
	}, format)
}

func logMetrics() {
	logger.Debug("run metrics", logger.MetricsSnapshot().Fields())
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, pipeline.ErrDepartmentNotFound):
		return ExitDepartmentNotFound
	default:
		return ExitError
	}
}

// Execute runs the CLI
func Execute() {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		os.Exit(ExitSuccess)
	}

	if errors.Is(err, pipeline.ErrDepartmentNotFound) {
		fmt.Fprintln(os.Stderr, pipeline.DepartmentNotFoundMessage)
		logger.Debug("department not found", logger.Fields{"detail": err.Error()})
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}
