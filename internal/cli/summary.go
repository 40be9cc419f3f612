package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dayline/dayline/internal/app"
	"github.com/dayline/dayline/pkg/history"
	"github.com/dayline/dayline/pkg/profile"
	"github.com/spf13/cobra"
)

func newSummaryCmd(opts *options) *cobra.Command {
	var asCsv bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the daily averages per summary group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			db, deps, err := app.Bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			var renderer history.Renderer
			if asCsv {
				renderer = deps.CsvRenderer
			}
			return printSummary(cmd.Context(), cmd.OutOrStdout(), deps.HistoryService, deps.ProfileService, renderer)
		},
	}
	cmd.Flags().BoolVar(&asCsv, "csv", false, "print CSV instead of a table")
	return cmd
}

// printSummary writes the summary through renderer, or as a plain table when renderer is nil.
func printSummary(ctx context.Context, out io.Writer, summaries history.Service, profiles profile.Service, renderer history.Renderer) error {
	summary, err := summaries.Summary(ctx)
	if errors.Is(err, history.ErrEmptyHistory) {
		_, err = fmt.Fprintln(out, history.NoDataMessage)
		return err
	}
	if err != nil {
		return err
	}

	if renderer != nil {
		csv, err := renderer.Render(summary)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, csv)
		return err
	}

	p, err := profiles.Get(ctx)
	if err != nil {
		return err
	}
	targets := map[string]int{"sleep": p.TargetSleep, "study": p.TargetStudy}

	fmt.Fprintf(out, "Days logged: %d\n", summary.DaysLogged)
	for _, g := range summary.Groups {
		line := fmt.Sprintf("%-12s %5.1f h/day", g.Name, g.Average)
		if target, ok := targets[g.Name]; ok {
			line += fmt.Sprintf("  (target %d h)", target)
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
