package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nhle/recipients/internal/model"
)

// ImportContacts appends contacts after the current last position.
// Addresses already present are skipped; the number of new rows is
// returned.
func (s *SQLiteStore) ImportContacts(
	ctx context.Context,
	contacts []model.Contact,
) (int, error) {
	if len(contacts) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	if err := tx.GetContext(ctx, &next,
		"SELECT COALESCE(MAX(position), -1) + 1 FROM contacts"); err != nil {
		return 0, fmt.Errorf("reading last contact position: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT OR IGNORE INTO contacts (address, name, position, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing import statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	imported := 0
	for _, c := range contacts {
		addr := strings.TrimSpace(c.Address)
		if addr == "" {
			continue
		}
		res, err := stmt.ExecContext(ctx, addr, c.Name, next, now)
		if err != nil {
			return 0, fmt.Errorf("importing contact %s: %w", addr, err)
		}
		rows, _ := res.RowsAffected()
		if rows > 0 {
			imported++
			next++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}
	return imported, nil
}

// GetContacts retrieves all contacts in directory order.
func (s *SQLiteStore) GetContacts(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	err := s.db.SelectContext(ctx, &contacts, `
		SELECT id, address, name, position, created_at
		FROM contacts
		ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	return contacts, nil
}

// CountContacts returns the number of stored contacts.
func (s *SQLiteStore) CountContacts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM contacts"); err != nil {
		return 0, fmt.Errorf("counting contacts: %w", err)
	}
	return n, nil
}

// DeleteContact removes a contact by address.
func (s *SQLiteStore) DeleteContact(ctx context.Context, address string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM contacts WHERE address = ?", address)
	if err != nil {
		return fmt.Errorf("deleting contact %s: %w", address, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("contact %s not found", address)
	}
	return nil
}
