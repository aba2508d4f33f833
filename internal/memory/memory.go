// Package memory owns the vendor-memory key normalization and merge
// semantics. Persistence belongs to the storage collaborator; the engine
// only requires Get and Put over normalized keys.
package memory

import (
	"context"
	"strings"

	"github.com/mwhitmore/ledgerlens/internal/model"
)

// Store is the minimal contract the engine needs from vendor memory.
// Get returns common.ErrNotFound (or any error the caller treats as a miss)
// when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (*model.Vendor, error)
	Put(ctx context.Context, vendor *model.Vendor) error
}

// Normalize collapses raw vendor strings onto their memory key: lowercase,
// trimmed, punctuation stripped except internal hyphens and spaces. Case and
// punctuation variants of one merchant map to one entry.
func Normalize(vendor string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(strings.TrimSpace(vendor)) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == ' ', c == '-':
			b.WriteRune(c)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Remember records an approved categorization for a vendor: a single
// read-then-merge-then-write sequence with last-write-wins semantics.
// Concurrent approvals for the same key must be serialized by the caller.
func Remember(ctx context.Context, store Store, vendor, category, accountCode string) error {
	key := Normalize(vendor)
	if key == "" {
		return nil
	}
	if category == "" {
		category = model.CategoryOther
	}

	entry, err := store.Get(ctx, key)
	if err != nil || entry == nil {
		entry = &model.Vendor{Name: key}
	}
	entry.Merge(category, accountCode)
	return store.Put(ctx, entry)
}
