// Package store persists visitor registrations. Two implementations
// exist: an in-memory store for unit tests and development, and a
// Postgres store for production. Both are synchronous; callers see a
// completed write or an error, never a pending one.
package store

import (
	"context"
	"strings"

	"adev-backend/internal/registration/models"
)

// Store is the visitor persistence contract.
type Store interface {
	// Insert stores a new visitor. The store assigns ID and CreatedAt and
	// writes them back into v.
	Insert(ctx context.Context, v *models.Visitor) error
	// FindByNormalizedPhone looks up a visitor whose stored whatsapp —
	// with only "(", ")", "-", and space removed — equals digits. Returns
	// sentinel.ErrNotFound when no row matches.
	//
	// Note the comparison is narrower than full digit normalization: a
	// stored number containing, say, dots will never match. This mirrors
	// the duplicate guard the frontend has always relied on and must not
	// be widened without migrating existing rows.
	FindByNormalizedPhone(ctx context.Context, digits string) (*models.Visitor, error)
}

// formatting holds exactly the characters stripped from stored numbers
// during duplicate lookup. Keep in sync with the SQL REPLACE chain in
// the Postgres store.
var formatting = strings.NewReplacer("(", "", ")", "", "-", "", " ", "")

// stripFormatting removes the lookup strip set from a stored number.
func stripFormatting(phone string) string {
	return formatting.Replace(phone)
}
