package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func bloodworkCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "bloodwork",
		Short: "Blood panels, markers and the biomarker dictionary",
	}
	c.AddCommand(
		panelsListCmd(),
		panelShowCmd(),
		panelCreateCmd(),
		panelUpdateCmd(),
		panelDeleteCmd(),
		markersListCmd(),
		markerAddCmd(),
		markerTrendCmd(),
		biomarkersCmd(),
	)
	return c
}

func panelsListCmd() *cobra.Command {
	var f domain.PanelFilter
	var limit int

	c := &cobra.Command{
		Use:   "panels",
		Short: "List blood panels",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			panels, err := app.svcs.Bloodwork.ListPanels(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, panels, func(w io.Writer) {
				if len(panels) == 0 {
					fmt.Fprintln(w, "(no panels)")
					return
				}
				for _, p := range panels {
					fmt.Fprintf(w, "- %s  %s  %s\n", p.TestDate, p.LabName, ui.Faint.Render(p.ID))
				}
			})
		},
	}
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func panelShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panel <id>",
		Short: "Show one panel with its markers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			panel, err := app.svcs.Bloodwork.GetPanel(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd, panel, func(w io.Writer) {
				fmt.Fprintln(w, ui.Title.Render(panel.TestDate+" — "+panel.LabName))
				for _, m := range panel.Markers {
					style := flagStyle(m.Flag)
					fmt.Fprintf(w, "  %s  %.2f %s  %s\n",
						m.BiomarkerID, m.Value, m.Unit, style.Render(string(m.Flag)))
				}
			})
		},
	}
}

func panelCreateCmd() *cobra.Command {
	var testDate, labName string

	c := &cobra.Command{
		Use:   "create-panel",
		Short: "Create a new panel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			panel, err := app.svcs.Bloodwork.CreatePanel(cmd.Context(), domain.BloodPanelCreate{
				TestDate: testDate,
				LabName:  labName,
			})
			if err != nil {
				return err
			}

			return output(cmd, panel, func(w io.Writer) {
				fmt.Fprintf(w, "Created panel %s (%s)\n", panel.TestDate, panel.ID)
			})
		},
	}
	c.Flags().StringVar(&testDate, "date", "", "Draw date (YYYY-MM-DD, required)")
	c.Flags().StringVar(&labName, "lab", "", "Lab name")
	_ = c.MarkFlagRequired("date")
	return c
}

func panelUpdateCmd() *cobra.Command {
	var testDate, labName, notes string

	c := &cobra.Command{
		Use:   "update-panel <id>",
		Short: "Update a panel's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.BloodPanelPatch{}
			if cmd.Flags().Changed("date") {
				patch.TestDate = &testDate
			}
			if cmd.Flags().Changed("lab") {
				patch.LabName = &labName
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			panel, err := app.svcs.Bloodwork.UpdatePanel(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			return output(cmd, panel, func(w io.Writer) {
				fmt.Fprintf(w, "Updated panel %s\n", panel.ID)
			})
		},
	}
	c.Flags().StringVar(&testDate, "date", "", "Draw date (YYYY-MM-DD)")
	c.Flags().StringVar(&labName, "lab", "", "Lab name")
	c.Flags().StringVar(&notes, "notes", "", "Notes")
	return c
}

func markersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markers <panel-id>",
		Short: "List the markers on a panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			markers, err := app.svcs.Bloodwork.ListMarkers(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd, markers, func(w io.Writer) {
				if len(markers) == 0 {
					fmt.Fprintln(w, "(no markers)")
					return
				}
				for _, m := range markers {
					fmt.Fprintf(w, "%s  %.2f %s  %s\n",
						m.BiomarkerID, m.Value, m.Unit, flagStyle(m.Flag).Render(string(m.Flag)))
				}
			})
		},
	}
}

func panelDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-panel <id>",
		Short: "Delete a panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Bloodwork.DeletePanel(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}

func markerAddCmd() *cobra.Command {
	var biomarkerID, unit string
	var value float64

	c := &cobra.Command{
		Use:   "add-marker <panel-id>",
		Short: "Append a measured marker to a panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			m, err := app.svcs.Bloodwork.AddMarker(cmd.Context(), args[0], domain.BloodMarkerCreate{
				BiomarkerID: biomarkerID,
				Value:       value,
				Unit:        unit,
			})
			if err != nil {
				return err
			}

			return output(cmd, m, func(w io.Writer) {
				fmt.Fprintf(w, "%s = %.2f %s  %s\n",
					m.BiomarkerID, m.Value, m.Unit, flagStyle(m.Flag).Render(string(m.Flag)))
			})
		},
	}
	c.Flags().StringVar(&biomarkerID, "biomarker", "", "Biomarker id (required)")
	c.Flags().Float64Var(&value, "value", 0, "Measured value")
	c.Flags().StringVar(&unit, "unit", "", "Unit as reported by the lab")
	_ = c.MarkFlagRequired("biomarker")
	return c
}

func markerTrendCmd() *cobra.Command {
	var f domain.TrendFilter
	var limit int

	c := &cobra.Command{
		Use:   "trend <biomarker-id>",
		Short: "Marker history for one biomarker across panels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.BiomarkerID = args[0]
			f.Limit = limitPtr(limit)
			markers, err := app.svcs.Bloodwork.MarkerTrend(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, markers, func(w io.Writer) {
				if len(markers) == 0 {
					fmt.Fprintln(w, "(no measurements)")
					return
				}
				for _, m := range markers {
					fmt.Fprintf(w, "%.2f %s  %s  %s\n",
						m.Value, m.Unit, flagStyle(m.Flag).Render(string(m.Flag)),
						ui.Faint.Render("panel "+m.PanelID))
				}
			})
		},
	}
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func biomarkersCmd() *cobra.Command {
	var category string

	c := &cobra.Command{
		Use:   "biomarkers",
		Short: "List the canonical biomarker dictionary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			dict, err := app.svcs.Bloodwork.ListBiomarkers(cmd.Context(), domain.BiomarkerFilter{
				Category: category,
			})
			if err != nil {
				return err
			}

			return output(cmd, dict, func(w io.Writer) {
				for _, b := range dict {
					fmt.Fprintf(w, "- %s (%s, %s)  %s\n", b.Name, b.Unit, b.Category, ui.Faint.Render(b.ID))
				}
			})
		},
	}
	c.Flags().StringVar(&category, "category", "", "Filter by category (e.g. iron, lipids)")
	return c
}
