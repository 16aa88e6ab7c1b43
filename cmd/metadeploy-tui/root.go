package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sfdo-tooling/metadeploy-tui/internal/api"
	"github.com/sfdo-tooling/metadeploy-tui/internal/config"
	"github.com/sfdo-tooling/metadeploy-tui/internal/logging"
	"github.com/sfdo-tooling/metadeploy-tui/internal/store"
	"github.com/sfdo-tooling/metadeploy-tui/internal/tui"
	"github.com/sfdo-tooling/metadeploy-tui/internal/watch"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "metadeploy-tui --plan <id> [--job <id> | --job-file <path>]",
		Short: "Follow MetaDeploy installation plans and jobs in the terminal",
		Long: `metadeploy-tui shows the steps of a MetaDeploy plan, lets you run a
preflight and start an installation, and follows a running job with
per-step log panels that open and close as the job advances.

With --job-file the job is read from a local JSON or YAML file and
re-read whenever it changes, without talking to a server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return readConfig(v)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.SetVersionTemplate("metadeploy-tui {{.Version}}\n")

	d := config.Default()
	f := cmd.Flags()
	f.StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.File()))
	f.StringP("plan", "p", "", "plan ID to show (required)")
	f.StringP("job", "j", "", "job ID to follow")
	f.String("job-file", "", "follow a job from a local JSON/YAML file instead of the server")
	f.String("base-url", d.BaseURL, "MetaDeploy server URL")
	f.String("token", "", "API token")
	f.Duration("poll-interval", d.PollInterval, "how often to refresh a running job")
	f.String("log-level", d.Log.Level, "log level (DEBUG, INFO, WARN, ERROR)")
	f.String("log-file", d.Log.File, "debug log file (empty disables logging)")

	for key, flag := range map[string]string{
		"config":        "config",
		"plan":          "plan",
		"job":           "job",
		"job_file":      "job-file",
		"base_url":      "base-url",
		"token":         "token",
		"poll_interval": "poll-interval",
		"log.level":     "log-level",
		"log.file":      "log-file",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

func readConfig(v *viper.Viper) error {
	config.SetDefaults(v)

	if cfgFile := v.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(config.Dir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func run(cfg config.Config) error {
	logger, err := logging.NewLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Close()
	logger.Info("starting", "version", version, "plan", cfg.PlanID, "offline", cfg.Offline())

	var client *api.Client
	if !cfg.Offline() {
		client = api.NewClient(cfg.BaseURL, api.WithToken(cfg.Token))
	}

	var feed *watch.JobFile
	if cfg.JobFile != "" {
		feed, err = watch.NewJobFile(cfg.JobFile, logger.With("component", "watch"))
		if err != nil {
			return err
		}
		defer feed.Close()
	}

	st := store.New()
	stateLog := logger.With("component", "store")
	st.Subscribe(func(s store.State) {
		stateLog.Debug("state changed", "jobs", len(s.Jobs), "socket", s.Socket, "errors", len(s.Errors))
	})

	app := tui.NewApp(cfg, client, feed, st, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	return nil
}
