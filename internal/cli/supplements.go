package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func supplementsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "supplements",
		Short: "Supplement regimens and intake logs",
	}
	c.AddCommand(supplementsListCmd(), supplementsAddCmd(), supplementsUpdateCmd(), supplementsTakeCmd(), supplementsLogsCmd(), supplementsDeleteCmd())
	return c
}

func supplementsListCmd() *cobra.Command {
	var activeOnly bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List supplements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f := domain.SupplementFilter{}
			if activeOnly {
				v := true
				f.Active = &v
			}

			sups, err := app.svcs.Supplements.List(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, sups, func(w io.Writer) {
				if len(sups) == 0 {
					fmt.Fprintln(w, "(no supplements)")
					return
				}
				for _, s := range sups {
					state := ui.Good.Render("active")
					if !s.Active {
						state = ui.Faint.Render("paused")
					}
					fmt.Fprintf(w, "- %s  %.0f %s %s  %s  %s\n",
						ui.Title.Render(s.Name), s.Dosage, s.Unit, s.Frequency, state,
						ui.Faint.Render(s.ID))
				}
			})
		},
	}
	c.Flags().BoolVar(&activeOnly, "active", false, "Only active supplements")
	return c
}

func supplementsAddCmd() *cobra.Command {
	var name, unit, frequency string
	var dosage float64

	c := &cobra.Command{
		Use:   "add",
		Short: "Add a supplement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			s, err := app.svcs.Supplements.Create(cmd.Context(), domain.SupplementCreate{
				Name:      name,
				Dosage:    dosage,
				Unit:      unit,
				Frequency: frequency,
			})
			if err != nil {
				return err
			}

			return output(cmd, s, func(w io.Writer) {
				fmt.Fprintf(w, "Added %s (%s)\n", s.Name, s.ID)
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "Supplement name (required)")
	c.Flags().Float64Var(&dosage, "dosage", 0, "Dosage amount")
	c.Flags().StringVar(&unit, "unit", "", "Dosage unit (e.g. mg)")
	c.Flags().StringVar(&frequency, "frequency", "daily", "Frequency (e.g. daily)")
	_ = c.MarkFlagRequired("name")
	return c
}

func supplementsUpdateCmd() *cobra.Command {
	var name, unit, frequency string
	var dosage float64
	var active bool

	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a supplement (pause with --active=false)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.SupplementPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("dosage") {
				patch.Dosage = &dosage
			}
			if cmd.Flags().Changed("unit") {
				patch.Unit = &unit
			}
			if cmd.Flags().Changed("frequency") {
				patch.Frequency = &frequency
			}
			if cmd.Flags().Changed("active") {
				patch.Active = &active
			}

			s, err := app.svcs.Supplements.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			return output(cmd, s, func(w io.Writer) {
				fmt.Fprintf(w, "Updated %s\n", s.Name)
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "Supplement name")
	c.Flags().Float64Var(&dosage, "dosage", 0, "Dosage amount")
	c.Flags().StringVar(&unit, "unit", "", "Dosage unit")
	c.Flags().StringVar(&frequency, "frequency", "", "Frequency")
	c.Flags().BoolVar(&active, "active", true, "Active state")
	return c
}

func supplementsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a supplement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Supplements.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}

func supplementsTakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take <id>",
		Short: "Record an intake now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			log, err := app.svcs.Supplements.LogIntake(cmd.Context(), args[0], domain.SupplementLogCreate{
				TakenAt: time.Now().UTC(),
			})
			if err != nil {
				return err
			}

			return output(cmd, log, func(w io.Writer) {
				fmt.Fprintf(w, "Recorded at %s\n", log.TakenAt.Format(time.RFC3339))
			})
		},
	}
}

func supplementsLogsCmd() *cobra.Command {
	var f domain.LogFilter
	var limit int

	c := &cobra.Command{
		Use:   "logs <id>",
		Short: "List intake logs for a supplement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			logs, err := app.svcs.Supplements.ListLogs(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}

			return output(cmd, logs, func(w io.Writer) {
				if len(logs) == 0 {
					fmt.Fprintln(w, "(no logs)")
					return
				}
				for _, l := range logs {
					fmt.Fprintf(w, "%s  dosage %s\n",
						l.TakenAt.Format(time.RFC3339), fmtPtrFloat(l.Dosage))
				}
			})
		},
	}
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}
