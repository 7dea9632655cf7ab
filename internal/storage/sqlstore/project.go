package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/wedplan/internal/models"
)

// EnsureProject creates the project with defaults on first access and
// refreshes its updated_at on every later access.
func (s *Store) EnsureProject(ctx context.Context) (*models.Project, error) {
	now := toMillis(s.timestamp())

	res, err := s.db.ExecContext(ctx, s.q("UPDATE projects SET updated_at = ? WHERE id = ?"), now, models.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to touch project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to touch project: %w", err)
	}
	if n == 0 {
		if err := s.insertDefaultProject(ctx, s.db); err != nil {
			return nil, err
		}
	}

	project, err := s.GetProject(ctx)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, fmt.Errorf("project missing after ensure")
	}
	return project, nil
}

// insertDefaultProject creates the project row unless it already exists.
func (s *Store) insertDefaultProject(ctx context.Context, db queryer) error {
	now := toMillis(s.timestamp())
	_, err := db.ExecContext(ctx, s.q(`
		INSERT INTO projects (id, name, wedding_date, owners_note, currency, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`),
		models.ProjectID, s.defaults.Name, nullMillis(s.defaults.WeddingDate),
		s.defaults.OwnersNote, s.defaults.Currency, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetProject returns the project, or nil if it does not exist yet.
func (s *Store) GetProject(ctx context.Context) (*models.Project, error) {
	p := &models.Project{}
	var weddingDate sql.NullInt64
	var createdAt, updatedAt int64

	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, name, wedding_date, owners_note, currency, created_at, updated_at
		FROM projects WHERE id = ?`), models.ProjectID,
	).Scan(&p.ID, &p.Name, &weddingDate, &p.OwnersNote, &p.Currency, &createdAt, &updatedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	p.WeddingDate = timePtr(weddingDate)
	p.CreatedAt = fromMillis(createdAt)
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}

// UpdateProject merges the patch into the project.
func (s *Store) UpdateProject(ctx context.Context, patch models.ProjectPatch) error {
	u := newUpdate("projects")
	if patch.Name != nil {
		u.set("name", *patch.Name)
	}
	if patch.ClearWeddingDate {
		u.set("wedding_date", nil)
	} else if patch.WeddingDate != nil {
		u.set("wedding_date", toMillis(*patch.WeddingDate))
	}
	if patch.OwnersNote != nil {
		u.set("owners_note", *patch.OwnersNote)
	}
	if patch.Currency != nil {
		u.set("currency", *patch.Currency)
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.insertDefaultProject(ctx, tx); err != nil {
			return err
		}
		return s.exec(ctx, tx, u, models.ProjectID)
	})
}
