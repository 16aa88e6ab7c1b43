package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sfdo-tooling/metadeploy-tui/internal/logging"
)

// EnvPrefix prefixes environment overrides, e.g. METADEPLOY_TUI_BASE_URL.
const EnvPrefix = "METADEPLOY_TUI"

type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	Token        string        `mapstructure:"token"`
	PlanID       string        `mapstructure:"plan"`
	JobID        string        `mapstructure:"job"`
	JobFile      string        `mapstructure:"job_file"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Log          LogConfig     `mapstructure:"log"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func Default() Config {
	return Config{
		BaseURL:      "http://localhost:8080",
		PollInterval: 3 * time.Second,
		Log: LogConfig{
			Level: logging.LevelInfo,
			File:  filepath.Join(Dir(), "debug.log"),
		},
	}
}

// SetDefaults registers defaults with v and wires environment overrides.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("base_url", d.BaseURL)
	v.SetDefault("token", d.Token)
	v.SetDefault("plan", d.PlanID)
	v.SetDefault("job", d.JobID)
	v.SetDefault("job_file", d.JobFile)
	v.SetDefault("poll_interval", d.PollInterval)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.PlanID == "" {
		errs = append(errs, errors.New("plan is required (use --plan)"))
	}
	if c.JobID != "" && c.JobFile != "" {
		errs = append(errs, errors.New("--job and --job-file are mutually exclusive"))
	}
	if c.JobFile == "" {
		if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL))
		}
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval))
	}
	if !logging.IsValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q is not one of DEBUG, INFO, WARN, ERROR", c.Log.Level))
	}
	return errors.Join(errs...)
}

// Offline reports whether job data comes from a local file instead of the
// server.
func (c Config) Offline() bool {
	return c.JobFile != ""
}

// Dir returns the user's config directory for metadeploy-tui.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "metadeploy-tui")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".metadeploy-tui"
	}
	return filepath.Join(home, ".config", "metadeploy-tui")
}

// File returns the default config file path.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}
