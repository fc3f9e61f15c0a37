package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func insightsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "insights",
		Short: "Server-generated insights",
	}
	c.AddCommand(insightsListCmd(), insightsReadCmd())
	return c
}

func insightsListCmd() *cobra.Command {
	var category string
	var unreadOnly bool
	var limit int

	c := &cobra.Command{
		Use:   "list",
		Short: "List insights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f := domain.InsightFilter{Category: category, Limit: limitPtr(limit)}
			if unreadOnly {
				v := true
				f.Unread = &v
			}

			insights, err := app.svcs.Insights.List(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, insights, func(w io.Writer) {
				if len(insights) == 0 {
					fmt.Fprintln(w, "(no insights)")
					return
				}
				for _, in := range insights {
					marker := ui.Warn.Render("●")
					if in.ReadAt != nil {
						marker = ui.Faint.Render("○")
					}
					fmt.Fprintf(w, "%s %s [%s]  %s\n", marker, ui.Title.Render(in.Title), in.Category,
						ui.Faint.Render(in.ID))
					fmt.Fprintf(w, "  %s\n", in.Body)
				}
			})
		},
	}
	c.Flags().StringVar(&category, "category", "", "Filter by category")
	c.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread insights")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func insightsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark an insight as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			in, err := app.svcs.Insights.MarkRead(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd, in, func(w io.Writer) {
				fmt.Fprintf(w, "Marked %q as read\n", in.Title)
			})
		},
	}
}
