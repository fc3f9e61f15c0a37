package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func journalCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "journal",
		Short: "Mood journal entries",
	}
	c.AddCommand(journalListCmd(), journalAddCmd(), journalEditCmd(), journalDeleteCmd())
	return c
}

func journalListCmd() *cobra.Command {
	var f domain.JournalFilter
	var limit int

	c := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			entries, err := app.svcs.Journal.List(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, entries, func(w io.Writer) {
				if len(entries) == 0 {
					fmt.Fprintln(w, "(no entries)")
					return
				}
				for _, e := range entries {
					note := ""
					if e.Notes != nil {
						note = "  " + ui.Faint.Render(*e.Notes)
					}
					fmt.Fprintf(w, "%s  mood %s  energy %s  stress %s%s\n",
						e.Date, fmtPtrInt(e.Mood), fmtPtrInt(e.Energy), fmtPtrInt(e.Stress), note)
				}
			})
		},
	}
	c.Flags().StringVar(&f.StartDate, "from", "", "Start date (YYYY-MM-DD)")
	c.Flags().StringVar(&f.EndDate, "to", "", "End date (YYYY-MM-DD)")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func journalAddCmd() *cobra.Command {
	var date, notes string
	var mood, energy, stress int

	c := &cobra.Command{
		Use:   "add",
		Short: "Add an entry for a day (defaults to today)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if date == "" {
				date = time.Now().UTC().Format(time.DateOnly)
			}

			create := domain.JournalEntryCreate{Date: date}
			if mood > 0 {
				create.Mood = &mood
			}
			if energy > 0 {
				create.Energy = &energy
			}
			if stress > 0 {
				create.Stress = &stress
			}
			if notes != "" {
				create.Notes = &notes
			}

			e, err := app.svcs.Journal.Create(cmd.Context(), create)
			if err != nil {
				return err
			}

			return output(cmd, e, func(w io.Writer) {
				fmt.Fprintf(w, "Saved entry for %s (%s)\n", e.Date, e.ID)
			})
		},
	}
	c.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	c.Flags().IntVar(&mood, "mood", 0, "Mood 1-5")
	c.Flags().IntVar(&energy, "energy", 0, "Energy 1-5")
	c.Flags().IntVar(&stress, "stress", 0, "Stress 1-5")
	c.Flags().StringVar(&notes, "notes", "", "Free-form note")
	return c
}

func journalEditCmd() *cobra.Command {
	var notes string
	var mood, energy, stress int

	c := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			patch := domain.JournalEntryPatch{}
			if cmd.Flags().Changed("mood") {
				patch.Mood = &mood
			}
			if cmd.Flags().Changed("energy") {
				patch.Energy = &energy
			}
			if cmd.Flags().Changed("stress") {
				patch.Stress = &stress
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			e, err := app.svcs.Journal.Update(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}

			return output(cmd, e, func(w io.Writer) {
				fmt.Fprintf(w, "Updated entry for %s\n", e.Date)
			})
		},
	}
	c.Flags().IntVar(&mood, "mood", 0, "Mood 1-5")
	c.Flags().IntVar(&energy, "energy", 0, "Energy 1-5")
	c.Flags().IntVar(&stress, "stress", 0, "Stress 1-5")
	c.Flags().StringVar(&notes, "notes", "", "Free-form note")
	return c
}

func journalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Journal.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}
