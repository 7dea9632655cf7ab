package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/wedplan/internal/models"
)

const timelineColumns = `id, title, description, event_date, start_time, end_time, location,
	created_at, updated_at`

func scanTimelineEvent(row scanner) (*models.TimelineEvent, error) {
	e := &models.TimelineEvent{}
	var eventDate, createdAt, updatedAt int64

	if err := row.Scan(&e.ID, &e.Title, &e.Description, &eventDate, &e.StartTime, &e.EndTime, &e.Location,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	e.EventDate = fromMillis(eventDate)
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return e, nil
}

// ListTimelineEvents returns every event in chronological order.
func (s *Store) ListTimelineEvents(ctx context.Context) ([]*models.TimelineEvent, error) {
	events, err := queryAll(ctx, s.db,
		"SELECT "+timelineColumns+" FROM timeline_events ORDER BY event_date ASC, start_time ASC, id", scanTimelineEvent)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	return events, nil
}

// GetTimelineEvent retrieves an event by ID, or nil if it does not exist.
func (s *Store) GetTimelineEvent(ctx context.Context, id string) (*models.TimelineEvent, error) {
	e, err := scanTimelineEvent(s.db.QueryRowContext(ctx, s.q("SELECT "+timelineColumns+" FROM timeline_events WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline event: %w", err)
	}
	return e, nil
}

// CreateTimelineEvent persists a new event.
func (s *Store) CreateTimelineEvent(ctx context.Context, event *models.TimelineEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	now := s.timestamp()
	event.CreatedAt = now
	event.UpdatedAt = now
	event.EventDate = event.EventDate.UTC().Truncate(time.Millisecond)

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO timeline_events (`+timelineColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		event.ID, event.Title, event.Description, toMillis(event.EventDate), event.StartTime, event.EndTime,
		event.Location, toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert timeline event: %w", err)
	}
	return nil
}

// UpdateTimelineEvent applies the non-nil fields of patch.
func (s *Store) UpdateTimelineEvent(ctx context.Context, id string, patch models.TimelineEventPatch) error {
	u := newUpdate("timeline_events")
	if patch.Title != nil {
		u.set("title", *patch.Title)
	}
	if patch.Description != nil {
		u.set("description", *patch.Description)
	}
	if patch.EventDate != nil {
		u.set("event_date", toMillis(*patch.EventDate))
	}
	if patch.StartTime != nil {
		u.set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		u.set("end_time", *patch.EndTime)
	}
	if patch.Location != nil {
		u.set("location", *patch.Location)
	}

	return s.exec(ctx, s.db, u, id)
}

// DeleteTimelineEvent removes an event.
func (s *Store) DeleteTimelineEvent(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "timeline_events", id)
}
