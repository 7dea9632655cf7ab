package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/wedplan/internal/models"
)

const guestColumns = `id, first_name, last_name, email, phone, side, rsvp, has_companion,
	dietary_restrictions, notes, created_at, updated_at`

func scanGuest(row scanner) (*models.Guest, error) {
	g := &models.Guest{}
	var createdAt, updatedAt int64

	if err := row.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.Side, &g.RSVP, &g.HasCompanion,
		&g.DietaryRestrictions, &g.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	g.CreatedAt = fromMillis(createdAt)
	g.UpdatedAt = fromMillis(updatedAt)
	return g, nil
}

// ListGuests returns every guest ordered by first name.
func (s *Store) ListGuests(ctx context.Context) ([]*models.Guest, error) {
	guests, err := queryAll(ctx, s.db, "SELECT "+guestColumns+" FROM guests ORDER BY first_name ASC, last_name ASC, id", scanGuest)
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// GetGuest retrieves a guest by ID, or nil if it does not exist.
func (s *Store) GetGuest(ctx context.Context, id string) (*models.Guest, error) {
	g, err := scanGuest(s.db.QueryRowContext(ctx, s.q("SELECT "+guestColumns+" FROM guests WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guest: %w", err)
	}
	return g, nil
}

// CreateGuest persists a new guest.
func (s *Store) CreateGuest(ctx context.Context, guest *models.Guest) error {
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}
	now := s.timestamp()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO guests (`+guestColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		guest.ID, guest.FirstName, guest.LastName, guest.Email, guest.Phone, guest.Side, guest.RSVP, guest.HasCompanion,
		guest.DietaryRestrictions, guest.Notes, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert guest: %w", err)
	}
	return nil
}

// UpdateGuest applies the non-nil fields of patch.
func (s *Store) UpdateGuest(ctx context.Context, id string, patch models.GuestPatch) error {
	u := newUpdate("guests")
	if patch.FirstName != nil {
		u.set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		u.set("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		u.set("email", *patch.Email)
	}
	if patch.Phone != nil {
		u.set("phone", *patch.Phone)
	}
	if patch.Side != nil {
		u.set("side", *patch.Side)
	}
	if patch.RSVP != nil {
		u.set("rsvp", *patch.RSVP)
	}
	if patch.HasCompanion != nil {
		u.set("has_companion", *patch.HasCompanion)
	}
	if patch.DietaryRestrictions != nil {
		u.set("dietary_restrictions", *patch.DietaryRestrictions)
	}
	if patch.Notes != nil {
		u.set("notes", *patch.Notes)
	}

	return s.exec(ctx, s.db, u, id)
}

// DeleteGuest removes a guest.
func (s *Store) DeleteGuest(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "guests", id)
}
