package update

import (
	"time"

	"github.com/sandeepkv93/habitd/internal/config"
)

// OptionsFromConfig maps resolved runtime configuration onto TUI options.
func OptionsFromConfig(cfg config.RuntimeConfig) Options {
	return Options{
		CalendarWeeks: cfg.CalendarWeeks,
		CalendarFocus: cfg.CalendarFocus,
		DefaultColor:  cfg.DefaultColor,
		Now:           time.Now,
	}
}
