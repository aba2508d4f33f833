package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mwhitmore/ledgerlens/internal/common"
	"github.com/mwhitmore/ledgerlens/internal/model"
)

// Get retrieves a vendor memory entry by its normalized key. It satisfies
// memory.Store; a missing key is common.ErrNotFound, which the classifier
// treats as a memory miss.
func (s *SQLiteStore) Get(ctx context.Context, key string) (*model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(key, "key"); err != nil {
		return nil, err
	}

	var vendor model.Vendor
	err := s.db.QueryRowContext(ctx, `
		SELECT name, category, account_code, use_count, last_updated
		FROM vendors
		WHERE name = ?
	`, key).Scan(
		&vendor.Name,
		&vendor.Category,
		&vendor.AccountCode,
		&vendor.UseCount,
		&vendor.LastUpdated,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return &vendor, nil
}

// Put saves or replaces a vendor memory entry. Last write wins.
func (s *SQLiteStore) Put(ctx context.Context, vendor *model.Vendor) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateVendor(vendor); err != nil {
		return err
	}
	if vendor.LastUpdated.IsZero() {
		vendor.LastUpdated = time.Now()
	}

	var categoryExists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM categories WHERE name = ? AND is_active = 1)
	`, vendor.Category).Scan(&categoryExists)
	if err != nil {
		return fmt.Errorf("failed to check category existence: %w", err)
	}
	if !categoryExists {
		return fmt.Errorf("%w: %s", common.ErrInvalidCategory, vendor.Category)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO vendors (name, category, account_code, use_count, last_updated)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			category = excluded.category,
			account_code = excluded.account_code,
			use_count = excluded.use_count,
			last_updated = excluded.last_updated
	`, vendor.Name, vendor.Category, vendor.AccountCode, vendor.UseCount, vendor.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", err)
	}
	return nil
}

// ListVendors retrieves every learned vendor, ordered by name.
func (s *SQLiteStore) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return s.queryVendors(ctx, `
		SELECT name, category, account_code, use_count, last_updated
		FROM vendors
		ORDER BY name
	`)
}

// SearchVendors retrieves vendors whose normalized name contains the query.
func (s *SQLiteStore) SearchVendors(ctx context.Context, query string) ([]model.Vendor, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(query, "query"); err != nil {
		return nil, err
	}
	return s.queryVendors(ctx, `
		SELECT name, category, account_code, use_count, last_updated
		FROM vendors
		WHERE name LIKE '%' || ? || '%'
		ORDER BY name
	`, query)
}

// DeleteVendor removes a learned vendor entry.
func (s *SQLiteStore) DeleteVendor(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM vendors WHERE name = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete vendor: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) queryVendors(ctx context.Context, query string, args ...any) ([]model.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vendors []model.Vendor
	for rows.Next() {
		var vendor model.Vendor
		if err := rows.Scan(
			&vendor.Name,
			&vendor.Category,
			&vendor.AccountCode,
			&vendor.UseCount,
			&vendor.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, vendor)
	}
	return vendors, rows.Err()
}
