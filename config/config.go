package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MEANMAX_LOGLEVEL.
const EnvPrefix = "MEANMAX"

// Config holds process settings. None of them affect decisions except
// Side and TuningFile. Side selects both the owner id treated as ours and
// the score and rage header slot; the referee numbers the controlling
// player 0.
type Config struct {
	LogLevel   string `mapstructure:"logLevel"`
	LogFormat  string `mapstructure:"logFormat"`
	Side       int    `mapstructure:"side"`
	TuningFile string `mapstructure:"tuningFile"`
}

// Flags registers the command-line overrides on fs.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml or json)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "text", "text or json")
	fs.Int("side", 0, "owner id of the controlling side")
	fs.String("tuning", "", "YAML tuning profile")
}

// Load resolves settings from defaults, an optional config file, the
// environment and flags, in increasing order of precedence. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "text")
	v.SetDefault("side", 0)
	v.SetDefault("tuningFile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := ""
	if fs != nil {
		for key, flag := range map[string]string{
			"logLevel":   "log-level",
			"logFormat":  "log-format",
			"side":       "side",
			"tuningFile": "tuning",
		} {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
		path, _ = fs.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Side < 0 || c.Side > 2 {
		return fmt.Errorf("side %d out of range 0-2", c.Side)
	}
	return nil
}
