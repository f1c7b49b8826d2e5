package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/todo/internal/logger"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/update"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath   string
	theme        string
	autoContrast bool
	idStrategy   string
	journalDSN   string
	logFile      string
	logLevel     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "A themed to-do list for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(cmd, cfg)
		},
	}

	bindFlags(cmd, flags)

	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindFlags(cmd *cobra.Command, flags *rootFlags) {
	defaults := update.DefaultRuntimeConfig()
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a TOML config file (default ./"+update.DefaultConfigFile+")")
	cmd.Flags().StringVar(&flags.theme, "theme", defaults.Theme, "Initial theme name")
	cmd.Flags().BoolVar(&flags.autoContrast, "auto-contrast", defaults.AutoContrast, "Derive text color from the background")
	cmd.Flags().StringVar(&flags.idStrategy, "id-strategy", defaults.IDStrategy, "Todo id strategy: counter or uuid")
	cmd.Flags().StringVar(&flags.journalDSN, "journal-dsn", defaults.JournalDSN, "SQLite DSN for the session journal (empty disables it)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", defaults.LogFile, "Write logs to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn or error")
}

// loadConfig applies explicitly set flags over the file and environment layers.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (update.RuntimeConfig, error) {
	cfg, err := update.LoadRuntimeConfig(flags.configPath)
	if err != nil {
		return update.RuntimeConfig{}, err
	}

	set := cmd.Flags().Changed
	if set("theme") {
		cfg.Theme = flags.theme
	}
	if set("auto-contrast") {
		cfg.AutoContrast = flags.autoContrast
	}
	if set("id-strategy") {
		cfg.IDStrategy = flags.idStrategy
	}
	if set("journal-dsn") {
		cfg.JournalDSN = flags.journalDSN
	}
	if set("log-file") {
		cfg.LogFile = flags.logFile
	}
	if set("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return update.RuntimeConfig{}, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, cfg update.RuntimeConfig) error {
	log, logCloser, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	var journal update.Journal = update.NoopJournal{}
	if cfg.JournalDSN != "" {
		sqlJournal, err := storage.OpenSQLiteJournal(cfg.JournalDSN)
		if err != nil {
			return err
		}
		defer sqlJournal.Close()
		journal = sqlJournal
	}

	m, err := update.NewModelWithConfig(cfg, journal, log)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"theme": cfg.Theme, "id_strategy": cfg.IDStrategy}).Info("starting todo")
	program := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := program.Run(); err != nil {
		log.Error(err, "program exited with error")
		return err
	}
	log.Info("todo stopped")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openLogger(cfg update.RuntimeConfig) (*logger.Logger, io.Closer, error) {
	opts := logger.Options{Level: cfg.LogLevel}
	if cfg.LogFile == "" {
		log, err := logger.New(opts)
		if err != nil {
			return nil, nil, err
		}
		return log, nopCloser{}, nil
	}
	return logger.NewFile(cfg.LogFile, opts)
}
