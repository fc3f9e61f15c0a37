package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func metricsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "metrics",
		Short: "User-defined metrics and their entries",
	}
	c.AddCommand(metricsListCmd(), metricsAddCmd(), metricsRenameCmd(), metricsDeleteCmd(), metricsEntriesCmd(), metricsRecordCmd())
	return c
}

func metricsRenameCmd() *cobra.Command {
	var name, unit string

	c := &cobra.Command{
		Use:   "rename <id>",
		Short: "Rename a metric or change its unit label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.CustomMetricPatch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("unit") {
				patch.Unit = &unit
			}

			m, err := app.svcs.Metrics.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			return output(cmd, m, func(w io.Writer) {
				fmt.Fprintf(w, "Updated metric %s\n", m.Name)
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "New metric name")
	c.Flags().StringVar(&unit, "unit", "", "New unit label")
	return c
}

func metricsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			metrics, err := app.svcs.Metrics.List(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, metrics, func(w io.Writer) {
				if len(metrics) == 0 {
					fmt.Fprintln(w, "(no custom metrics)")
					return
				}
				for _, m := range metrics {
					unit := ""
					if m.Unit != nil {
						unit = " (" + *m.Unit + ")"
					}
					fmt.Fprintf(w, "- %s  %s%s  %s\n",
						ui.Title.Render(m.Name), m.DataType, unit, ui.Faint.Render(m.ID))
				}
			})
		},
	}
}

func metricsAddCmd() *cobra.Command {
	var name, dataType, unit string

	c := &cobra.Command{
		Use:   "add",
		Short: "Create a custom metric",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			create := domain.CustomMetricCreate{
				Name:     name,
				DataType: domain.MetricDataType(dataType),
			}
			if unit != "" {
				create.Unit = &unit
			}

			m, err := app.svcs.Metrics.Create(cmd.Context(), create)
			if err != nil {
				return err
			}

			return output(cmd, m, func(w io.Writer) {
				fmt.Fprintf(w, "Created metric %s (%s)\n", m.Name, m.ID)
			})
		},
	}
	c.Flags().StringVar(&name, "name", "", "Metric name (required)")
	c.Flags().StringVar(&dataType, "type", "numeric", "Data type: numeric|boolean|scale|text")
	c.Flags().StringVar(&unit, "unit", "", "Unit label, if any")
	_ = c.MarkFlagRequired("name")
	return c
}

func metricsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a metric and its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Metrics.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}

func metricsEntriesCmd() *cobra.Command {
	var f domain.EntryFilter
	var limit int

	c := &cobra.Command{
		Use:   "entries <metric-id>",
		Short: "List entries for a metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			entries, err := app.svcs.Metrics.ListEntries(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}

			return output(cmd, entries, func(w io.Writer) {
				if len(entries) == 0 {
					fmt.Fprintln(w, "(no entries)")
					return
				}
				for _, e := range entries {
					fmt.Fprintf(w, "%s  %s\n", e.RecordedAt.Format(time.RFC3339), entryValue(e))
				}
			})
		},
	}
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func metricsRecordCmd() *cobra.Command {
	var numeric float64
	var boolean bool
	var scale int
	var text string

	c := &cobra.Command{
		Use:   "record <metric-id>",
		Short: "Record one entry (set exactly one value flag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			create := domain.CustomMetricEntryCreate{RecordedAt: time.Now().UTC()}
			if cmd.Flags().Changed("numeric") {
				create.ValueNumeric = &numeric
			}
			if cmd.Flags().Changed("boolean") {
				create.ValueBoolean = &boolean
			}
			if cmd.Flags().Changed("scale") {
				create.ValueScale = &scale
			}
			if cmd.Flags().Changed("text") {
				create.ValueText = &text
			}

			e, err := app.svcs.Metrics.AddEntry(cmd.Context(), args[0], create)
			if err != nil {
				return err
			}

			return output(cmd, e, func(w io.Writer) {
				fmt.Fprintf(w, "Recorded %s at %s\n", entryValue(e), e.RecordedAt.Format(time.RFC3339))
			})
		},
	}
	c.Flags().Float64Var(&numeric, "numeric", 0, "Numeric value")
	c.Flags().BoolVar(&boolean, "boolean", false, "Boolean value")
	c.Flags().IntVar(&scale, "scale", 0, "Scale value 1-10")
	c.Flags().StringVar(&text, "text", "", "Text value")
	return c
}

func entryValue(e domain.CustomMetricEntry) string {
	switch {
	case e.ValueNumeric != nil:
		return strconv.FormatFloat(*e.ValueNumeric, 'f', -1, 64)
	case e.ValueBoolean != nil:
		return strconv.FormatBool(*e.ValueBoolean)
	case e.ValueScale != nil:
		return strconv.Itoa(*e.ValueScale)
	case e.ValueText != nil:
		return *e.ValueText
	default:
		return "-"
	}
}
