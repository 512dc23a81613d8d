package store

import (
	"context"

	"github.com/nhle/recipients/internal/model"
)

// ContactStore defines the persistence interface for the local contacts
// directory.
type ContactStore interface {
	ImportContacts(ctx context.Context, contacts []model.Contact) (int, error)
	GetContacts(ctx context.Context) ([]model.Contact, error)
	CountContacts(ctx context.Context) (int, error)
	DeleteContact(ctx context.Context, address string) error
	Close() error
}
