// Package config loads the emailsyntax command configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/optimode/emailsyntax/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. EMAILSYNTAX_FORMAT.
const EnvPrefix = "EMAILSYNTAX"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidConfig is wrapped by every validation failure from Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the command settings.
type Config struct {
	Format   string `mapstructure:"format"`
	Workers  int    `mapstructure:"workers"`
	Suggest  bool   `mapstructure:"suggest"`
	All      bool   `mapstructure:"all"`
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …
	Env      string `mapstructure:"env"`       // "dev" | "prod"

	// Addresses are the positional arguments.
	Addresses []string `mapstructure:"-"`
}

// Load merges defaults → env vars → explicit flags into one Config.
// Final precedence (highest wins): flags(explicit) > env > defaults.
// Usage text and flag errors go to out. A -h/--help request returns
// pflag.ErrHelp.
func Load(binName string, args []string, out io.Writer) (*Config, error) {
	// 1) Define flags (only *explicitly set* flags will override)
	fs := pflag.NewFlagSet(binName, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.String("format", FormatText, `Output format "text"|"json"|"yaml"`)
	fs.Int("workers", 5, "Number of addresses validated concurrently")
	fs.Bool("suggest", false, "Suggest corrections for likely domain typos")
	fs.Bool("all", false, "Run every check instead of stopping at the first failure")
	fs.String("log-level", "warn", "Log level")
	fs.String("env", "dev", `Runtime environment "dev"|"prod"`)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(out, "Usage: %s [flags] [address...]\n\n", binName)
		_, _ = fmt.Fprintln(out, "Reads addresses from stdin, one per line, when none are given.")
		_, _ = fmt.Fprintf(out, "Every flag can be set through %s_<FLAG> (e.g. %s_LOG_LEVEL).\n\n", EnvPrefix, EnvPrefix)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// 2) Viper + env
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	// 3) Defaults (lowest precedence)
	setDefaults(v)

	// 4) Apply *explicit* flags (highest precedence)
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed && bindErr == nil {
			bindErr = v.BindPFlag(keyFor(f.Name), f)
		}
	})
	if bindErr != nil {
		return nil, fmt.Errorf("bind flags: %w", bindErr)
	}

	// 5) Build struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Addresses = fs.Args()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want text, json or yaml)", ErrInvalidConfig, c.Format)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	if !logging.IsValidLogLevel(c.LogLevel) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Env != "dev" && c.Env != "prod" {
		return fmt.Errorf("%w: env %q (want dev or prod)", ErrInvalidConfig, c.Env)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatText)
	v.SetDefault("workers", 5)
	v.SetDefault("suggest", false)
	v.SetDefault("all", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("env", "dev")
}

func allKeys() []string {
	return []string{"format", "workers", "suggest", "all", "log_level", "env"}
}

// keyFor maps a flag name to its config key.
func keyFor(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}
