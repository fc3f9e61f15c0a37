package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
	"github.com/everettroeth/vitalis-sub000/internal/tui"
)

func documentsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "documents",
		Short: "Uploaded documents and parse state",
	}
	c.AddCommand(documentsListCmd(), documentsShowCmd(), documentsUploadCmd(), documentsDeleteCmd(), documentsWatchCmd())
	return c
}

func documentsListCmd() *cobra.Command {
	var f domain.DocumentFilter
	var limit int

	c := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			f.Limit = limitPtr(limit)
			docs, err := app.svcs.Documents.List(cmd.Context(), f)
			if err != nil {
				return err
			}

			return output(cmd, docs, func(w io.Writer) {
				if len(docs) == 0 {
					fmt.Fprintln(w, "(no documents)")
					return
				}
				for _, d := range docs {
					fmt.Fprintf(w, "- %s  [%s]  %s  %s\n",
						ui.Title.Render(d.Filename), d.DocumentType,
						parseStatusStyle(d.ParseStatus).Render(string(d.ParseStatus)),
						ui.Faint.Render(d.ID))
				}
			})
		},
	}
	c.Flags().StringVar(&f.DocumentType, "type", "", "Filter by document type")
	c.Flags().StringVar(&f.ParseStatus, "status", "", "Filter by parse status")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum records (0 = server default)")
	return c
}

func documentsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			d, err := app.svcs.Documents.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd, d, func(w io.Writer) {
				fmt.Fprintln(w, ui.Title.Render(d.Filename))
				fmt.Fprintf(w, "  type:     %s\n", d.DocumentType)
				fmt.Fprintf(w, "  status:   %s\n", parseStatusStyle(d.ParseStatus).Render(string(d.ParseStatus)))
				fmt.Fprintf(w, "  uploaded: %s\n", d.UploadedAt.Format(time.RFC3339))
				if d.ProviderName != nil {
					fmt.Fprintf(w, "  provider: %s\n", *d.ProviderName)
				}
				if d.ParseError != nil {
					fmt.Fprintf(w, "  error:    %s\n", ui.Bad.Render(*d.ParseError))
				}
			})
		},
	}
}

func documentsUploadCmd() *cobra.Command {
	var docType, provider string
	var watch bool

	c := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a file for server-side parsing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			d, err := app.svcs.Documents.Upload(cmd.Context(), domain.DocumentUpload{
				File:         fh,
				Filename:     filepath.Base(args[0]),
				DocumentType: docType,
				ProviderName: provider,
			})
			if err != nil {
				return err
			}

			if watch {
				return tui.Watch(tui.WatchDeps{Documents: app.svcs.Documents}, d.ID)
			}

			return output(cmd, d, func(w io.Writer) {
				fmt.Fprintf(w, "Uploaded %s (%s), parse status %s\n", d.Filename, d.ID, d.ParseStatus)
			})
		},
	}
	c.Flags().StringVar(&docType, "type", "", "Document type, e.g. lab_report (required)")
	c.Flags().StringVar(&provider, "provider", "", "Provider name, if any")
	c.Flags().BoolVar(&watch, "watch", false, "Watch parse progress after upload")
	_ = c.MarkFlagRequired("type")
	return c
}

func documentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Documents.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Deleted.")
			return nil
		},
	}
}

func documentsWatchCmd() *cobra.Command {
	var interval time.Duration

	c := &cobra.Command{
		Use:   "watch <id>",
		Short: "Poll a document's parse status until it finishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			return tui.Watch(tui.WatchDeps{
				Documents: app.svcs.Documents,
				Interval:  interval,
			}, args[0])
		},
	}
	c.Flags().DurationVar(&interval, "interval", 3*time.Second, "Poll interval")
	return c
}

func parseStatusStyle(s domain.ParseStatus) lipgloss.Style {
	switch s {
	case domain.ParseCompleted:
		return ui.Good
	case domain.ParseFailed:
		return ui.Bad
	case domain.ParseAwaitingConfirmation:
		return ui.Warn
	default:
		return ui.Faint
	}
}
