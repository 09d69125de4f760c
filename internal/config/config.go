package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/sandeepkv93/habitd/internal/calendar"
	"github.com/sandeepkv93/habitd/internal/model"
	"github.com/sandeepkv93/habitd/internal/storage"
)

const (
	EnvPrefix     = "HABITD"
	ConfigName    = ".habitd"
	ConfigPathEnv = "HABITD_CONFIG_PATH"

	defaultSQLitePath = "~/.habitd.db"
	defaultDiskPath   = "~/.habitd"
)

type RuntimeConfig struct {
	Backend       storage.Backend
	Path          string
	CalendarWeeks int
	CalendarFocus bool
	DefaultColor  string
	LogFile       string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:       storage.BackendSQLite,
		Path:          defaultSQLitePath,
		CalendarWeeks: calendar.DefaultWeeks,
		CalendarFocus: true,
		DefaultColor:  model.DefaultColor,
	}
}

// Load resolves configuration from flags, HABITD_* environment variables and an optional
// .habitd config file, in that order of precedence.
func Load(flags *pflag.FlagSet) (RuntimeConfig, error) {
	def := DefaultRuntimeConfig()
	v := viper.New()
	v.SetDefault("backend", string(def.Backend))
	v.SetDefault("path", "")
	v.SetDefault("calendar_weeks", def.CalendarWeeks)
	v.SetDefault("calendar_focus", def.CalendarFocus)
	v.SetDefault("default_color", def.DefaultColor)
	v.SetDefault("log_file", "")

	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, name := range []string{"backend", "path"} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return RuntimeConfig{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}
	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return RuntimeConfig{}, fmt.Errorf("config: read config file: %w", err)
		}
	}

	cfg := RuntimeConfig{
		Backend:       storage.Backend(strings.ToLower(strings.TrimSpace(v.GetString("backend")))),
		Path:          strings.TrimSpace(v.GetString("path")),
		CalendarWeeks: v.GetInt("calendar_weeks"),
		CalendarFocus: v.GetBool("calendar_focus"),
		DefaultColor:  strings.TrimSpace(v.GetString("default_color")),
		LogFile:       strings.TrimSpace(v.GetString("log_file")),
	}
	return cfg.normalize()
}

func (c RuntimeConfig) normalize() (RuntimeConfig, error) {
	if !c.Backend.IsValid() {
		return RuntimeConfig{}, fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Path == "" {
		switch c.Backend {
		case storage.BackendDisk:
			c.Path = defaultDiskPath
		case storage.BackendSQLite:
			c.Path = defaultSQLitePath
		}
	}
	if c.Path != "" {
		expanded, err := homedir.Expand(c.Path)
		if err != nil {
			return RuntimeConfig{}, fmt.Errorf("config: expand path: %w", err)
		}
		c.Path = expanded
	}
	if c.LogFile != "" {
		expanded, err := homedir.Expand(c.LogFile)
		if err != nil {
			return RuntimeConfig{}, fmt.Errorf("config: expand log file: %w", err)
		}
		c.LogFile = expanded
	}
	if c.CalendarWeeks <= 0 {
		c.CalendarWeeks = calendar.DefaultWeeks
	}
	color, err := model.NormalizeColor(c.DefaultColor)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("config: default_color: %w", err)
	}
	c.DefaultColor = color
	return c, nil
}
