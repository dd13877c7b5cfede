package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"autonomous-task-extraction/internal/extraction"
	"autonomous-task-extraction/internal/extraction/usecase"
	"autonomous-task-extraction/internal/model"
	"autonomous-task-extraction/pkg/datemath"
	"autonomous-task-extraction/pkg/log"
)

type options struct {
	origin        string
	now           string
	timezone      string
	minConfidence float64
	explain       bool
	parallel      bool
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract task candidates from free-form text",
		Long: `extract finds actionable tasks in a voice transcript or chat message and
prints the ranked candidates as JSON. Nothing is stored.

Examples:
  # Extract from an argument
  extract "Can you pick up milk tomorrow? The report is due Friday 5 PM"

  # Extract a voice transcript from stdin
  cat transcript.txt | extract --origin voice -

  # Show how each candidate was scored, relative to a fixed date
  extract --explain --now 2024-05-01T15:30:00Z "call the plumber tonight"`,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.origin, "origin", string(model.OriginChat), "input origin: voice or chat")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference time (RFC3339, 2006-01-02T15:04 or 2006-01-02); defaults to the current time")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "IANA timezone for relative dates")
	cmd.Flags().Float64Var(&opts.minConfidence, "min-confidence", 0, "drop candidates below this confidence")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "print every scored candidate with its confidence adjustments")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "evaluate strategy matchers concurrently")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logs on stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()

	origin := model.Origin(opts.origin)
	if !origin.Valid() {
		return fmt.Errorf("invalid --origin %q: must be voice or chat", opts.origin)
	}
	if opts.minConfidence < 0 || opts.minConfidence > 1 {
		return fmt.Errorf("--min-confidence must be within [0, 1]")
	}

	dates, err := datemath.NewParser(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid --timezone: %w", err)
	}
	now, err := parseNow(opts.now, dates.Location())
	if err != nil {
		return err
	}

	text, err := readText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	logger := log.NewNop()
	if opts.verbose {
		logger = log.Init(log.ZapConfig{Level: "debug", Encoding: log.EncodingConsole, Stderr: true})
	}
	uc := usecase.New(logger, dates, usecase.Options{ParallelMatchers: opts.parallel})

	input := extraction.ExtractInput{
		Input: model.RawInput{Text: text, Origin: origin, ReceivedAt: now},
	}

	var out any
	if opts.explain {
		res, err := uc.Explain(ctx, input)
		if err != nil {
			return err
		}
		out = newExplainOutput(now, res)
	} else {
		res, err := uc.Extract(ctx, input)
		if err != nil {
			return err
		}
		out = newExtractOutput(now, res.Tasks, opts.minConfidence)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// readText joins the arguments, or reads stdin when there are none or the only one is "-".
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}

var nowLayouts = []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

func parseNow(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: use RFC3339, 2006-01-02T15:04 or 2006-01-02", s)
}
