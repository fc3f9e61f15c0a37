package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func wearablesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "wearables",
		Short: "Daily summaries, sleep sessions and activities",
	}
	c.AddCommand(wearablesDailyCmd(), wearablesSleepCmd(), wearablesActivitiesCmd())
	return c
}

func rangeFlags(c *cobra.Command, f *domain.RangeFilter, limit *int) {
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.Source, "source", "", "Limit to one source (e.g. oura)")
	c.Flags().IntVar(limit, "limit", 0, "Maximum records (0 = server default)")
}

func wearablesDailyCmd() *cobra.Command {
	var f domain.RangeFilter
	var limit int

	c := &cobra.Command{
		Use:   "daily",
		Short: "List daily summaries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			days, err := app.svcs.Wearables.ListDaily(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, days, func(w io.Writer) {
				if len(days) == 0 {
					fmt.Fprintln(w, "(no records)")
					return
				}
				for _, d := range days {
					fmt.Fprintf(w, "%s  steps %s  rhr %s  hrv %s  %s\n",
						d.Date, fmtPtrInt(d.Steps), fmtPtrInt(d.RestingHR),
						fmtPtrFloat(d.HRVms), ui.Faint.Render(d.Source))
				}
			})
		},
	}
	rangeFlags(c, &f, &limit)
	return c
}

func wearablesSleepCmd() *cobra.Command {
	var f domain.RangeFilter
	var limit int

	c := &cobra.Command{
		Use:   "sleep",
		Short: "List sleep sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			sessions, err := app.svcs.Wearables.ListSleep(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, sessions, func(w io.Writer) {
				if len(sessions) == 0 {
					fmt.Fprintln(w, "(no records)")
					return
				}
				for _, s := range sessions {
					fmt.Fprintf(w, "%s  %s min  score %s  %s\n",
						s.StartedAt.Format(time.DateOnly), fmtPtrInt(s.DurationMinutes),
						fmtPtrInt(s.SleepScore), ui.Faint.Render(s.Source))
				}
			})
		},
	}
	rangeFlags(c, &f, &limit)
	return c
}

func wearablesActivitiesCmd() *cobra.Command {
	var f domain.RangeFilter
	var limit int

	c := &cobra.Command{
		Use:   "activities",
		Short: "List recorded activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			acts, err := app.svcs.Wearables.ListActivities(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, acts, func(w io.Writer) {
				if len(acts) == 0 {
					fmt.Fprintln(w, "(no records)")
					return
				}
				for _, a := range acts {
					fmt.Fprintf(w, "%s  %s  %s min  %s kcal  %s\n",
						a.StartedAt.Format(time.DateOnly), a.ActivityType,
						fmtPtrInt(a.DurationMinutes), fmtPtrInt(a.Calories),
						ui.Faint.Render(a.Source))
				}
			})
		},
	}
	rangeFlags(c, &f, &limit)
	return c
}
