package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/wedplan/internal/models"
)

const taskColumns = `id, title, description, status, priority, assigned_to, category,
	due_date, completed_at, created_at, updated_at`

func scanTask(row scanner) (*models.Task, error) {
	t := &models.Task{}
	var dueDate, completedAt sql.NullInt64
	var createdAt, updatedAt int64

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.AssignedTo, &t.Category,
		&dueDate, &completedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	t.DueDate = timePtr(dueDate)
	t.CompletedAt = timePtr(completedAt)
	t.CreatedAt = fromMillis(createdAt)
	t.UpdatedAt = fromMillis(updatedAt)
	return t, nil
}

// ListTasks returns every task, newest first.
func (s *Store) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := queryAll(ctx, s.db, "SELECT "+taskColumns+" FROM tasks ORDER BY created_at DESC, id", scanTask)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask retrieves a task by ID, or nil if it does not exist.
func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	t, err := scanTask(s.db.QueryRowContext(ctx, s.q("SELECT "+taskColumns+" FROM tasks WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// CreateTask persists a new task, populating ID and timestamps.
func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := s.timestamp()
	task.CreatedAt = now
	task.UpdatedAt = now
	if task.Status == models.TaskDone && task.CompletedAt == nil {
		task.CompletedAt = &now
	}

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		task.ID, task.Title, task.Description, task.Status, task.Priority, task.AssignedTo, task.Category,
		nullMillis(task.DueDate), nullMillis(task.CompletedAt), toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

// UpdateTask applies the non-nil fields of patch.
// Moving a task to done stamps completed_at; moving it away clears it.
func (s *Store) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error {
	u := newUpdate("tasks")
	if patch.Title != nil {
		u.set("title", *patch.Title)
	}
	if patch.Description != nil {
		u.set("description", *patch.Description)
	}
	if patch.Status != nil {
		u.set("status", *patch.Status)
		if *patch.Status == models.TaskDone {
			u.setExpr("completed_at = COALESCE(completed_at, ?)", toMillis(s.timestamp()))
		} else {
			u.set("completed_at", nil)
		}
	}
	if patch.Priority != nil {
		u.set("priority", *patch.Priority)
	}
	if patch.AssignedTo != nil {
		u.set("assigned_to", *patch.AssignedTo)
	}
	if patch.Category != nil {
		u.set("category", *patch.Category)
	}
	if patch.ClearDueDate {
		u.set("due_date", nil)
	} else if patch.DueDate != nil {
		u.set("due_date", toMillis(*patch.DueDate))
	}

	return s.exec(ctx, s.db, u, id)
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "tasks", id)
}
