package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/everettroeth/vitalis-sub000/internal/buildinfo"
	"github.com/everettroeth/vitalis-sub000/internal/infra/api"
	"github.com/everettroeth/vitalis-sub000/internal/infra/config"
	"github.com/everettroeth/vitalis-sub000/internal/infra/httpclient"
	"github.com/everettroeth/vitalis-sub000/internal/infra/logger"
)

// appCtx bundles everything a subcommand needs: config, the pipeline
// client and the per-family services.
type appCtx struct {
	cfg     config.Config
	client  *httpclient.Client
	svcs    *api.Services
	cleanup func() error
}

// loadApp wires config -> logger -> client -> services for one invocation.
func loadApp(cmd *cobra.Command) (*appCtx, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Debug = true
	}

	logRoot, err := os.UserHomeDir()
	if err != nil {
		logRoot = "."
	}
	cleanup, _ := logger.Setup(logger.Config{Root: logRoot, Debug: cfg.Debug})

	tcfg := httpclient.DefaultTransportConfig()
	if cfg.Timeout > 0 {
		tcfg.Timeout = cfg.Timeout
	}

	ccfg := httpclient.Config{
		BaseURL:    cfg.BaseURL,
		UserAgent:  "vitalis-cli/" + buildinfo.Version,
		HTTPClient: httpclient.NewHTTPClient(tcfg),
	}
	if cfg.Token != "" {
		token := cfg.Token
		ccfg.TokenSource = func() string { return token }
	}

	client, err := httpclient.New(ccfg)
	if err != nil {
		if cleanup != nil {
			_ = cleanup()
		}
		return nil, err
	}

	logger.L().Debug("app.loaded", "base_url", cfg.BaseURL, "authenticated", cfg.Token != "")

	return &appCtx{
		cfg:     cfg,
		client:  client,
		svcs:    api.New(client),
		cleanup: cleanup,
	}, nil
}

func (a *appCtx) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}
