package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

func devicesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "devices",
		Short: "Connected wearable data sources",
	}
	c.AddCommand(devicesListCmd(), devicesConnectCmd(), devicesDisconnectCmd(), devicesSyncCmd())
	return c
}

func devicesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List connected devices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			devices, err := app.svcs.Devices.List(cmd.Context())
			if err != nil {
				return err
			}

			return output(cmd, devices, func(w io.Writer) {
				if len(devices) == 0 {
					fmt.Fprintln(w, "(no connected devices)")
					return
				}
				for _, d := range devices {
					last := "never"
					if d.LastSyncedAt != nil {
						last = d.LastSyncedAt.Format(time.RFC3339)
					}
					fmt.Fprintf(w, "- %s  %s  last sync %s  %s\n",
						ui.Title.Render(d.Source), d.SyncStatus, last, ui.Faint.Render(d.ID))
				}
			})
		},
	}
}

func devicesConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect <source>",
		Short: "Connect a new data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			d, err := app.svcs.Devices.Connect(cmd.Context(), domain.DeviceConnect{Source: args[0]})
			if err != nil {
				return err
			}

			return output(cmd, d, func(w io.Writer) {
				fmt.Fprintf(w, "Connected %s (%s)\n", d.Source, d.ID)
			})
		},
	}
}

func devicesDisconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <id>",
		Short: "Disconnect a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.svcs.Devices.Disconnect(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println("Disconnected.")
			return nil
		},
	}
}

func devicesSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync <id>",
		Short: "Trigger a sync from the source now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.close()

			d, err := app.svcs.Devices.Sync(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return output(cmd, d, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %s\n", d.Source, d.SyncStatus)
			})
		},
	}
}
