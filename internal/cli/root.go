package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dayline/dayline/internal/config"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
}

func (o *options) load() (config.Application, error) {
	return config.Load(o.configPath)
}

// NewRootCmd builds the dayline command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dayline",
		Short: "Daily time log with a 24-hour timeline, summaries and advice",
		Long: `dayline records what you did during each day as category intervals, draws them as a
24-hour timeline and summarizes your averages over all logged days.

Examples:
  dayline serve                          # Start the HTTP API
  dayline migrate                        # Apply database migrations
  dayline timeline --date 2024-06-10     # Draw one day in the terminal
  dayline summary --csv                  # Export the averages as CSV`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to the YAML configuration file")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newTimelineCmd(opts),
		newSummaryCmd(opts),
	)
	return cmd
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}
