package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			h, err := app.svcs.System.Health(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, h, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s (server %s)\n", ui.Good.Render("●"), h.Status, h.Version)
			})
		},
	}
}
