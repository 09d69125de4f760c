// Package cli wires the habitd cobra commands to the habit store and the terminal UI.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/habitd/internal/config"
	"github.com/sandeepkv93/habitd/internal/habits"
	"github.com/sandeepkv93/habitd/internal/storage"
	"github.com/sandeepkv93/habitd/internal/update"
)

type rootOptions struct {
	Backend    string
	Path       string
	ConfigFile string
}

func New() *cobra.Command {
	ro := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "habitd",
		Short: "Track daily habits from the terminal.",
		Long: `habitd keeps a list of habits and the days each one was completed.

Run without a subcommand to open the interactive tracker. When stdout is not a
terminal the habit list is printed instead.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if !stdoutIsTerminal() {
				return runList(cmd, &outputOptions{})
			}
			return runUI(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&ro.Backend, "backend", "", "Storage backend. One of 'sqlite', 'disk' or 'memory'.")
	cmd.PersistentFlags().StringVar(&ro.Path, "path", "", "Database file (sqlite) or directory (disk).")
	cmd.PersistentFlags().StringVar(&ro.ConfigFile, "config", "", "Config file, overriding the .habitd lookup.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addToggle(topLevel)
	addList(topLevel)
	addCalendar(topLevel)
	addVersion(topLevel)
}

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive tracker.",
		Example: `
habitd ui
habitd ui --backend disk --path ~/habits
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runUI(cmd)
		},
	}
	topLevel.AddCommand(cmd)
}

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// session is an opened store together with the configuration it was opened with.
type session struct {
	cfg   config.RuntimeConfig
	store *habits.Store
}

func (s *session) Close() error {
	return s.store.Close()
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(cfg.Backend, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	store, err := habits.Load(commandContext(cmd), kv, habits.WithDefaultColor(cfg.DefaultColor))
	if err != nil {
		_ = kv.Close()
		return nil, err
	}
	return &session{cfg: cfg, store: store}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runUI(cmd *cobra.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	// Stray log output would corrupt the alternate screen.
	if s.cfg.LogFile != "" {
		f, err := tea.LogToFile(s.cfg.LogFile, "habitd")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	program := tea.NewProgram(
		update.NewModel(s.store, update.OptionsFromConfig(s.cfg)),
		tea.WithAltScreen(),
		tea.WithContext(commandContext(cmd)),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
