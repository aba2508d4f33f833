package storage

import (
	"context"
	"fmt"

	"github.com/mwhitmore/ledgerlens/internal/model"
)

// Categories retrieves the active category taxonomy in account-code order.
func (s *SQLiteStore) Categories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, account_code
		FROM categories
		WHERE is_active = 1
		ORDER BY account_code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.Name, &c.AccountCode); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
