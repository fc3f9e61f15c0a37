package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func measurementsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "measurements",
		Short: "Body measurements",
	}
	c.AddCommand(measurementsListCmd(), measurementsLogCmd(), measurementsDeleteCmd())
	return c
}

func measurementsListCmd() *cobra.Command {
	var f domain.MeasurementFilter
	var limit int

	c := &cobra.Command{
		Use:   "list",
		Short: "List measurements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			ms, err := app.svcs.Measurements.List(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, ms, func(w io.Writer) {
				if len(ms) == 0 {
					fmt.Fprintln(w, "(no measurements)")
					return
				}
				for _, m := range ms {
					fmt.Fprintf(w, "%s  %s %.1f %s  %s\n",
						m.MeasuredAt.Format(time.DateOnly), m.Type, m.Value, m.Unit,
						ui.Faint.Render(m.ID))
				}
			})
		},
	}
	c.Flags().StringVar(&f.Type, "type", "", "Measurement type (e.g. weight)")
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func measurementsLogCmd() *cobra.Command {
	var mtype, unit string
	var value float64

	c := &cobra.Command{
		Use:   "log",
		Short: "Log a measurement now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			m, err := app.svcs.Measurements.Log(cmd.Context(), domain.MeasurementCreate{
				Type:       mtype,
				Value:      value,
				Unit:       unit,
				MeasuredAt: time.Now().UTC(),
			})
			if err != nil {
				return err
			}

			return output(cmd, m, func(w io.Writer) {
				fmt.Fprintf(w, "Logged %s %.1f %s\n", m.Type, m.Value, m.Unit)
			})
		},
	}
	c.Flags().StringVar(&mtype, "type", "", "Measurement type (required)")
	c.Flags().Float64Var(&value, "value", 0, "Value")
	c.Flags().StringVar(&unit, "unit", "", "Unit (required)")
	_ = c.MarkFlagRequired("type")
	_ = c.MarkFlagRequired("unit")
	return c
}

func measurementsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a measurement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Measurements.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}
