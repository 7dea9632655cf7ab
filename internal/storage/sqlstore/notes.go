package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/wedplan/internal/models"
)

const noteColumns = `id, title, content, tags, created_at, updated_at`

func scanNote(row scanner) (*models.Note, error) {
	n := &models.Note{}
	var tags string
	var createdAt, updatedAt int64

	if err := row.Scan(&n.ID, &n.Title, &n.Content, &tags, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags of note %s: %w", n.ID, err)
	}

	n.CreatedAt = fromMillis(createdAt)
	n.UpdatedAt = fromMillis(updatedAt)
	return n, nil
}

// encodeTags stores a nil tag list as an empty JSON array.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

// ListNotes returns every note, newest first.
func (s *Store) ListNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := queryAll(ctx, s.db, "SELECT "+noteColumns+" FROM notes ORDER BY created_at DESC, id", scanNote)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote retrieves a note by ID, or nil if it does not exist.
func (s *Store) GetNote(ctx context.Context, id string) (*models.Note, error) {
	n, err := scanNote(s.db.QueryRowContext(ctx, s.q("SELECT "+noteColumns+" FROM notes WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return n, nil
}

// CreateNote persists a new note.
func (s *Store) CreateNote(ctx context.Context, note *models.Note) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := s.timestamp()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`),
		note.ID, note.Title, note.Content, tags, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// UpdateNote applies the non-nil fields of patch. A non-nil Tags replaces the
// whole list.
func (s *Store) UpdateNote(ctx context.Context, id string, patch models.NotePatch) error {
	u := newUpdate("notes")
	if patch.Title != nil {
		u.set("title", *patch.Title)
	}
	if patch.Content != nil {
		u.set("content", *patch.Content)
	}
	if patch.Tags != nil {
		tags, err := encodeTags(*patch.Tags)
		if err != nil {
			return err
		}
		u.set("tags", tags)
	}

	return s.exec(ctx, s.db, u, id)
}

// DeleteNote removes a note.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "notes", id)
}
