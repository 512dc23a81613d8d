package directory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/model"
	"github.com/nhle/recipients/internal/store"
)

// FromContacts builds a Directory from stored contacts, in their order.
func FromContacts(contacts []model.Contact) *Directory {
	entries := make([]string, len(contacts))
	for i, c := range contacts {
		entries[i] = c.Address
	}
	return New(entries)
}

// Load resolves the configured directory source. The result is read once;
// later changes to the source are not observed. An empty config or
// database falls back to the built-in list.
func Load(
	ctx context.Context,
	cfg model.DirectoryConfig,
	logger *zap.Logger,
) (*Directory, error) {
	switch cfg.Source {
	case model.SourceBuiltin, "":
		return Default(), nil

	case model.SourceConfig:
		d := New(cfg.Entries)
		if d.Len() == 0 {
			logger.Warn("config directory is empty, using built-in list")
			return Default(), nil
		}
		return d, nil

	case model.SourceSQLite:
		s, err := store.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening contacts %s: %w", cfg.DBPath, err)
		}
		defer s.Close()
		return loadFromStore(ctx, s, logger)

	default:
		return nil, fmt.Errorf("unknown directory source %q", cfg.Source)
	}
}

func loadFromStore(
	ctx context.Context,
	s store.ContactStore,
	logger *zap.Logger,
) (*Directory, error) {
	contacts, err := s.GetContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading contacts: %w", err)
	}
	if len(contacts) == 0 {
		logger.Warn("contacts database is empty, using built-in list")
		return Default(), nil
	}
	logger.Debug("loaded contacts directory", zap.Int("entries", len(contacts)))
	return FromContacts(contacts), nil
}
