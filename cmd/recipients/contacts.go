package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/directory"
	"github.com/nhle/recipients/internal/draft"
	"github.com/nhle/recipients/internal/model"
	"github.com/nhle/recipients/internal/recipient"
	"github.com/nhle/recipients/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import addresses into the contacts database",
	Long: `Reads one address per line ("ada@example.com" or "Ada <ada@example.com>")
and appends new ones to the contacts database named by directory.db_path.
Set directory.source to "sqlite" to search it.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Print the directory the picker would search",
	Args:  cobra.NoArgs,
	RunE:  runContacts,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	contacts, err := draft.ParseContacts(f)
	if err != nil {
		return err
	}

	s, err := store.NewSQLiteStore(cfg.Directory.DBPath)
	if err != nil {
		return fmt.Errorf("opening contacts %s: %w", cfg.Directory.DBPath, err)
	}
	defer s.Close()

	n, err := s.ImportContacts(openContext(cmd), contacts)
	if err != nil {
		return err
	}

	logger.Info("contacts imported",
		zap.String("file", args[0]),
		zap.Int("read", len(contacts)),
		zap.Int("imported", n),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d contacts into %s\n",
		n, len(contacts), cfg.Directory.DBPath)
	if cfg.Directory.Source != model.SourceSQLite {
		fmt.Fprintf(cmd.ErrOrStderr(),
			"note: directory.source is %q; set it to %q to search these contacts\n",
			cfg.Directory.Source, model.SourceSQLite)
	}
	return nil
}

func runContacts(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dir, err := directory.Load(openContext(cmd), cfg.Directory, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range dir.Entries() {
		mark := " "
		if !recipient.IsValid(e) {
			mark = "!"
		}
		fmt.Fprintf(out, "%s %s\n", mark, e)
	}
	return nil
}
