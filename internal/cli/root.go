package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/buildinfo"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vitalis",
		Short:        "Vitalis — CLI for the Vitalis health-tracking API",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file (default ~/.vitalis/vitalis.yaml)")
	cmd.PersistentFlags().Bool("debug", false, "enable verbose logging to ~/.vitalis/logs/vitalis.log")
	cmd.PersistentFlags().String("format", "pretty", "Output format: pretty|json")
	cmd.PersistentFlags().String("query", "", "JSONPath applied to the JSON output (implies --format json)")

	cmd.AddCommand(
		versionCmd(),
		healthCmd(),
		usersCmd(),
		devicesCmd(),
		wearablesCmd(),
		bloodworkCmd(),
		measurementsCmd(),
		supplementsCmd(),
		journalCmd(),
		goalsCmd(),
		metricsCmd(),
		insightsCmd(),
		documentsCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(buildinfo.String())
		},
	}
}
