package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/wedplan/internal/models"
)

const vendorColumns = `id, name, category, contact_name, email, phone, website, status, notes,
	created_at, updated_at`

func scanVendor(row scanner) (*models.Vendor, error) {
	v := &models.Vendor{}
	var createdAt, updatedAt int64

	if err := row.Scan(&v.ID, &v.Name, &v.Category, &v.ContactName, &v.Email, &v.Phone, &v.Website, &v.Status, &v.Notes,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	v.CreatedAt = fromMillis(createdAt)
	v.UpdatedAt = fromMillis(updatedAt)
	return v, nil
}

// ListVendors returns every vendor, newest first.
func (s *Store) ListVendors(ctx context.Context) ([]*models.Vendor, error) {
	vendors, err := queryAll(ctx, s.db, "SELECT "+vendorColumns+" FROM vendors ORDER BY created_at DESC, id", scanVendor)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (s *Store) GetVendor(ctx context.Context, id string) (*models.Vendor, error) {
	v, err := scanVendor(s.db.QueryRowContext(ctx, s.q("SELECT "+vendorColumns+" FROM vendors WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return v, nil
}

func (s *Store) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.New().String()
	}
	now := s.timestamp()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO vendors (`+vendorColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		vendor.ID, vendor.Name, vendor.Category, vendor.ContactName, vendor.Email, vendor.Phone, vendor.Website,
		vendor.Status, vendor.Notes, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert vendor: %w", err)
	}
	return nil
}

func (s *Store) UpdateVendor(ctx context.Context, id string, patch models.VendorPatch) error {
	u := newUpdate("vendors")
	if patch.Name != nil {
		u.set("name", *patch.Name)
	}
	if patch.Category != nil {
		u.set("category", *patch.Category)
	}
	if patch.ContactName != nil {
		u.set("contact_name", *patch.ContactName)
	}
	if patch.Email != nil {
		u.set("email", *patch.Email)
	}
	if patch.Phone != nil {
		u.set("phone", *patch.Phone)
	}
	if patch.Website != nil {
		u.set("website", *patch.Website)
	}
	if patch.Status != nil {
		u.set("status", *patch.Status)
	}
	if patch.Notes != nil {
		u.set("notes", *patch.Notes)
	}

	return s.exec(ctx, s.db, u, id)
}

func (s *Store) DeleteVendor(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "vendors", id)
}
