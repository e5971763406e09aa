package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/username/jp-holidays/internal/calendar"
	"github.com/username/jp-holidays/internal/server"
	"github.com/username/jp-holidays/internal/snapshot"
	"github.com/username/jp-holidays/pkg/dateutil"
	"go.uber.org/zap"
)

func buildCalendar(ctx context.Context) (*calendar.Calendar, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return calendar.NewBuilder(newSource(cfg), logger).Build(ctx)
}

func generateCmd() *cobra.Command {
	var outDir string
	var clean bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one JSON file per day, month and year plus list.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}

			cal, err := calendar.NewBuilder(newSource(cfg), logger).Build(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := snapshot.NewWriter(afero.NewOsFs(), outDir, logger).Write(cal, clean)
			if err != nil {
				return fmt.Errorf("snapshot generation failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s ~ %s (%d days, %d months, %d years) -> %s\n",
				summary.First, summary.Last, summary.Days, summary.Months, summary.Years, outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&clean, "clean", true, "Remove the output directory before writing")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [YYYY-MM-DD]",
		Short: "Show whether a date is a holiday or a day off (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := calendar.DateOf(dateutil.Today())
			if len(args) == 1 {
				var err error
				date, err = calendar.ParseISODate(args[0])
				if err != nil {
					return err
				}
			}

			cal, err := buildCalendar(cmd.Context())
			if err != nil {
				return err
			}

			printDay(cmd.OutOrStdout(), cal.Day(date))
			return nil
		},
	}
}

func printDay(w io.Writer, info calendar.DayInfo) {
	weekday := info.Date.Weekday()
	fmt.Fprintf(w, "%s (%s/%s)\n", info.Date, weekday, dateutil.JapaneseWeekday(weekday))
	if info.Holiday {
		fmt.Fprintf(w, "  Holiday: %s\n", info.Name)
	} else {
		fmt.Fprintln(w, "  Holiday: -")
	}
	fmt.Fprintf(w, "  Day off: %v\n", info.IsDayOff)
}

func listCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List holidays in [from, to)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := buildCalendar(cmd.Context())
			if err != nil {
				return err
			}

			holidays := cal.Entries()
			if from != "" || to != "" {
				start, end, err := listBounds(cal, from, to)
				if err != nil {
					return err
				}
				holidays = cal.Range(start, end)
			}

			out := cmd.OutOrStdout()
			for _, h := range holidays {
				fmt.Fprintf(out, "%s | %s\n", h.Date, h.Name)
			}
			logger.Debug("Holidays listed", zap.Int("count", len(holidays)))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last date, exclusive (YYYY-MM-DD)")

	return cmd
}

func listBounds(cal *calendar.Calendar, from, to string) (calendar.Date, calendar.Date, error) {
	first, ok := cal.First()
	if !ok {
		return calendar.Date{}, calendar.Date{}, nil
	}
	last, _ := cal.Last()

	start, end := first.Date, last.Date.AddDays(1)
	var err error
	if from != "" {
		if start, err = calendar.ParseISODate(from); err != nil {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("--from: %w", err)
		}
	}
	if to != "" {
		if end, err = calendar.ParseISODate(to); err != nil {
			return calendar.Date{}, calendar.Date{}, fmt.Errorf("--to: %w", err)
		}
	}
	return start, end, nil
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve holiday queries over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			lazy := calendar.NewLazy(calendar.NewBuilder(newSource(cfg), logger), logger)
			// Warm the cache; a failure here is retried on the first request
			if _, err := lazy.Get(ctx); err != nil {
				logger.Warn("Initial calendar build failed", zap.Error(err))
			}

			return server.New(lazy, logger).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
