package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func goalsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "goals",
		Short: "Metric targets and their alerts",
	}
	c.AddCommand(goalsListCmd(), goalsShowCmd(), goalsAddCmd(), goalsUpdateCmd(), goalsDeleteCmd(), goalsAlertsCmd(), goalsAckCmd())
	return c
}

func goalsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			g, err := app.svcs.Goals.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd, g, func(w io.Writer) {
				fmt.Fprintln(w, ui.Title.Render(g.Metric))
				fmt.Fprintf(w, "  direction: %s\n", g.Direction)
				fmt.Fprintf(w, "  target:    %.1f\n", g.TargetValue)
				if g.AlertThreshold != nil {
					fmt.Fprintf(w, "  alert at:  %.1f\n", *g.AlertThreshold)
				}
				fmt.Fprintf(w, "  active:    %v\n", g.Active)
			})
		},
	}
}

func goalsListCmd() *cobra.Command {
	var metric string
	var activeOnly bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f := domain.GoalFilter{Metric: metric}
			if activeOnly {
				v := true
				f.Active = &v
			}

			goals, err := app.svcs.Goals.List(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, goals, func(w io.Writer) {
				if len(goals) == 0 {
					fmt.Fprintln(w, "(no goals)")
					return
				}
				for _, g := range goals {
					fmt.Fprintf(w, "- %s %s %.1f  %s\n",
						ui.Title.Render(g.Metric), g.Direction, g.TargetValue,
						ui.Faint.Render(g.ID))
				}
			})
		},
	}
	c.Flags().StringVar(&metric, "metric", "", "Filter by metric name")
	c.Flags().BoolVar(&activeOnly, "active", false, "Only active goals")
	return c
}

func goalsAddCmd() *cobra.Command {
	var metric, direction string
	var target, threshold float64

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			create := domain.GoalCreate{
				Metric:      metric,
				Direction:   domain.GoalDirection(direction),
				TargetValue: target,
			}
			if cmd.Flags().Changed("alert-threshold") {
				create.AlertThreshold = &threshold
			}

			g, err := app.svcs.Goals.Create(cmd.Context(), create)
			if err != nil {
				return err
			}

			return output(cmd, g, func(w io.Writer) {
				fmt.Fprintf(w, "Created goal %s (%s)\n", g.Metric, g.ID)
			})
		},
	}
	c.Flags().StringVar(&metric, "metric", "", "Metric name (required)")
	c.Flags().StringVar(&direction, "direction", "target", "Direction: minimize|maximize|target")
	c.Flags().Float64Var(&target, "target", 0, "Target value")
	c.Flags().Float64Var(&threshold, "alert-threshold", 0, "Alert threshold")
	_ = c.MarkFlagRequired("metric")
	return c
}

func goalsUpdateCmd() *cobra.Command {
	var direction string
	var target, threshold float64
	var active bool

	c := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.GoalPatch{}
			if cmd.Flags().Changed("direction") {
				v := domain.GoalDirection(direction)
				patch.Direction = &v
			}
			if cmd.Flags().Changed("target") {
				patch.TargetValue = &target
			}
			if cmd.Flags().Changed("alert-threshold") {
				patch.AlertThreshold = &threshold
			}
			if cmd.Flags().Changed("active") {
				patch.Active = &active
			}

			g, err := app.svcs.Goals.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			return output(cmd, g, func(w io.Writer) {
				fmt.Fprintf(w, "Updated goal %s\n", g.Metric)
			})
		},
	}
	c.Flags().StringVar(&direction, "direction", "", "Direction: minimize|maximize|target")
	c.Flags().Float64Var(&target, "target", 0, "Target value")
	c.Flags().Float64Var(&threshold, "alert-threshold", 0, "Alert threshold")
	c.Flags().BoolVar(&active, "active", true, "Active state")
	return c
}

func goalsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Goals.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}

func goalsAlertsCmd() *cobra.Command {
	var unackedOnly bool

	c := &cobra.Command{
		Use:   "alerts <goal-id>",
		Short: "List alerts for a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f := domain.AlertFilter{}
			if unackedOnly {
				v := false
				f.Acknowledged = &v
			}

			alerts, err := app.svcs.Goals.ListAlerts(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}

			return output(cmd, alerts, func(w io.Writer) {
				if len(alerts) == 0 {
					fmt.Fprintln(w, "(no alerts)")
					return
				}
				for _, a := range alerts {
					state := ui.Warn.Render("unacknowledged")
					if a.AcknowledgedAt != nil {
						state = ui.Faint.Render("acknowledged " + a.AcknowledgedAt.Format(time.DateOnly))
					}
					fmt.Fprintf(w, "- %s  value %.1f  %s  %s\n",
						a.TriggeredAt.Format(time.RFC3339), a.Value, state, ui.Faint.Render(a.ID))
				}
			})
		},
	}
	c.Flags().BoolVar(&unackedOnly, "unacked", false, "Only unacknowledged alerts")
	return c
}

func goalsAckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ack <goal-id> <alert-id>",
		Short: "Acknowledge an alert",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			a, err := app.svcs.Goals.AcknowledgeAlert(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return output(cmd, a, func(w io.Writer) {
				fmt.Fprintf(w, "Acknowledged %s\n", a.ID)
			})
		},
	}
}
