package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dayline/dayline/internal/app"
	"github.com/dayline/dayline/pkg/daylog"
	"github.com/dayline/dayline/pkg/timeline"
	"github.com/spf13/cobra"
)

func newTimelineCmd(opts *options) *cobra.Command {
	var date string
	var width int
	var week bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Draw a day as a 24-hour bar",
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

			renderer := timeline.NewBarRenderer(deps.Registry, width)
			if week {
				return printWeek(cmd.Context(), cmd.OutOrStdout(), deps.TimelineService, renderer)
			}
			if date == "" {
				date = deps.Clock.Now().Format(daylog.DateLayout)
			}
			return printTimeline(cmd.Context(), cmd.OutOrStdout(), deps.TimelineService, renderer, date)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "date to draw (YYYY-MM-DD, default today)")
	cmd.Flags().IntVarP(&width, "width", "w", timeline.DefaultBarWidth, "bar width in columns")
	cmd.Flags().BoolVar(&week, "week", false, "draw the last 7 days that have entries")
	return cmd
}

func printTimeline(ctx context.Context, out io.Writer, service timeline.Service, renderer *timeline.BarRenderer, date string) error {
	day, err := service.Day(ctx, date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, renderer.Render(day))
	return err
}

func printWeek(ctx context.Context, out io.Writer, service timeline.Service, renderer *timeline.BarRenderer) error {
	week, err := service.Week(ctx)
	if err != nil {
		return err
	}
	if len(week) == 0 {
		_, err = fmt.Fprintln(out, "No entries in the last 7 days.")
		return err
	}
	for _, day := range week {
		weekday := ""
		if t, err := time.Parse(daylog.DateLayout, day.Date); err == nil {
			weekday = t.Weekday().String()[:3] + " "
		}
		if _, err := fmt.Fprintf(out, "%s%s\n%s\n\n", weekday, day.Date, renderer.Bar(day.Segments)); err != nil {
			return err
		}
	}
	return nil
}
