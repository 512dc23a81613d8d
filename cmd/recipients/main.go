package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/app"
	"github.com/nhle/recipients/internal/directory"
	"github.com/nhle/recipients/internal/logging"
	"github.com/nhle/recipients/internal/model"
)

var (
	configPath string
	outPath    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "recipients",
	Short: "Pick email recipients from a local directory",
	Long: `recipients is a terminal recipient picker.

Type to search the directory, press tab or enter to add a recipient, click a
suggestion to add it and click the control on a recipient to remove it.
Addresses that do not look like email addresses are flagged but kept.
ctrl+s writes a draft header addressed to the picked recipients.`,
	SilenceUsage: true,
	RunE:         runPicker,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the draft header to this file instead of stdout")

	rootCmd.AddCommand(importCmd, contactsCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config and builds the logger shared by all commands.
func setup() (*model.AppConfig, *zap.Logger, error) {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Log, debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runPicker(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dir, err := directory.Load(openContext(cmd), cfg.Directory, logger)
	if err != nil {
		logger.Error("loading directory, using built-in list", zap.Error(err))
		dir = directory.Default()
	}
	logger.Info("starting picker",
		zap.String("directory", cfg.Directory.Source),
		zap.Int("entries", dir.Len()),
	)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Display.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(app.New(dir, cfg, logger), opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(app.Model)
	if !ok || m.Sent() == nil {
		return nil
	}
	return writeDraft(cmd.OutOrStdout(), m)
}

func writeDraft(stdout io.Writer, m app.Model) error {
	if outPath == "" {
		return m.Sent().WriteTo(stdout)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := m.Sent().WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func openContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
