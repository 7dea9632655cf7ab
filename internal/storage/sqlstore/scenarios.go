package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/wedplan/internal/models"
	"github.com/mmynk/wedplan/internal/storage"
)

const scenarioColumns = `id, name, description, is_active, created_at, updated_at`

func scanScenario(row scanner) (*models.BudgetScenario, error) {
	sc := &models.BudgetScenario{}
	var createdAt, updatedAt int64

	if err := row.Scan(&sc.ID, &sc.Name, &sc.Description, &sc.IsActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	sc.CreatedAt = fromMillis(createdAt)
	sc.UpdatedAt = fromMillis(updatedAt)
	return sc, nil
}

// ListScenarios returns every scenario, newest first.
func (s *Store) ListScenarios(ctx context.Context) ([]*models.BudgetScenario, error) {
	scenarios, err := queryAll(ctx, s.db,
		"SELECT "+scenarioColumns+" FROM budget_scenarios ORDER BY created_at DESC, id", scanScenario)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, nil
}

// GetScenario retrieves a scenario by ID, or nil if it does not exist.
func (s *Store) GetScenario(ctx context.Context, id string) (*models.BudgetScenario, error) {
	return s.getScenario(ctx, s.db, id)
}

func (s *Store) getScenario(ctx context.Context, db queryer, id string) (*models.BudgetScenario, error) {
	sc, err := scanScenario(db.QueryRowContext(ctx, s.q("SELECT "+scenarioColumns+" FROM budget_scenarios WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}
	return sc, nil
}

// GetActiveScenario returns the active scenario, or nil if none is.
func (s *Store) GetActiveScenario(ctx context.Context) (*models.BudgetScenario, error) {
	sc, err := scanScenario(s.db.QueryRowContext(ctx, `
		SELECT `+scenarioColumns+` FROM budget_scenarios
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1`))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active scenario: %w", err)
	}
	return sc, nil
}

// deactivateOthers clears is_active on every scenario except keep.
func (s *Store) deactivateOthers(ctx context.Context, tx *sql.Tx, keep string) error {
	_, err := tx.ExecContext(ctx, s.q("UPDATE budget_scenarios SET is_active = ?, updated_at = ? WHERE is_active AND id <> ?"),
		false, toMillis(s.timestamp()), keep)
	if err != nil {
		return fmt.Errorf("failed to deactivate scenarios: %w", err)
	}
	return nil
}

// CreateScenario persists a new scenario.
func (s *Store) CreateScenario(ctx context.Context, scenario *models.BudgetScenario) error {
	if scenario.ID == "" {
		scenario.ID = uuid.New().String()
	}
	now := s.timestamp()
	scenario.CreatedAt = now
	scenario.UpdatedAt = now

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if scenario.IsActive {
			if err := s.deactivateOthers(ctx, tx, scenario.ID); err != nil {
				return err
			}
		}
		return s.insertScenario(ctx, tx, scenario)
	})
}

func (s *Store) insertScenario(ctx context.Context, db queryer, scenario *models.BudgetScenario) error {
	_, err := db.ExecContext(ctx, s.q(`
		INSERT INTO budget_scenarios (`+scenarioColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`),
		scenario.ID, scenario.Name, scenario.Description, scenario.IsActive,
		toMillis(scenario.CreatedAt), toMillis(scenario.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert scenario: %w", err)
	}
	return nil
}

// UpdateScenario applies the non-nil fields of patch.
func (s *Store) UpdateScenario(ctx context.Context, id string, patch models.ScenarioPatch) error {
	u := newUpdate("budget_scenarios")
	if patch.Name != nil {
		u.set("name", *patch.Name)
	}
	if patch.Description != nil {
		u.set("description", *patch.Description)
	}
	if patch.IsActive != nil {
		u.set("is_active", *patch.IsActive)
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if patch.IsActive != nil && *patch.IsActive {
			if err := s.deactivateOthers(ctx, tx, id); err != nil {
				return err
			}
		}
		return s.exec(ctx, tx, u, id)
	})
}

// ActivateScenario makes id the only active scenario.
func (s *Store) ActivateScenario(ctx context.Context, id string) error {
	active := true
	return s.UpdateScenario(ctx, id, models.ScenarioPatch{IsActive: &active})
}

// CloneScenario copies the source scenario and its expenses into a new
// inactive scenario.
func (s *Store) CloneScenario(ctx context.Context, sourceID, newName string) (*models.BudgetScenario, error) {
	var clone *models.BudgetScenario

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		source, err := s.getScenario(ctx, tx, sourceID)
		if err != nil {
			return err
		}
		if source == nil {
			return fmt.Errorf("scenario %s: %w", sourceID, storage.ErrNotFound)
		}

		now := s.timestamp()
		clone = &models.BudgetScenario{
			ID:          uuid.New().String(),
			Name:        newName,
			Description: source.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.insertScenario(ctx, tx, clone); err != nil {
			return err
		}

		expenses, err := queryAll(ctx, tx, s.q("SELECT "+expenseColumns+" FROM expenses WHERE scenario_id = ? ORDER BY created_at, id"),
			scanExpense, sourceID)
		if err != nil {
			return fmt.Errorf("failed to read expenses of %s: %w", sourceID, err)
		}
		for _, e := range expenses {
			e.ID = ""
			e.ScenarioID = clone.ID
			if err := s.insertExpense(ctx, tx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clone, nil
}

// DeleteScenario removes the scenario. Its expenses are deleted with it, or
// moved to opts.ReassignTo when set.
func (s *Store) DeleteScenario(ctx context.Context, id string, opts storage.DeleteScenarioOptions) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if opts.ReassignTo != "" {
			if opts.ReassignTo == id {
				return fmt.Errorf("cannot reassign expenses of %s to itself", id)
			}
			target, err := s.getScenario(ctx, tx, opts.ReassignTo)
			if err != nil {
				return err
			}
			if target == nil {
				return fmt.Errorf("scenario %s: %w", opts.ReassignTo, storage.ErrNotFound)
			}
			if _, err := tx.ExecContext(ctx, s.q("UPDATE expenses SET scenario_id = ?, updated_at = ? WHERE scenario_id = ?"),
				opts.ReassignTo, toMillis(s.timestamp()), id); err != nil {
				return fmt.Errorf("failed to reassign expenses: %w", err)
			}
		} else {
			if _, err := tx.ExecContext(ctx, s.q("DELETE FROM expenses WHERE scenario_id = ?"), id); err != nil {
				return fmt.Errorf("failed to delete expenses: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, s.q("DELETE FROM budget_scenarios WHERE id = ?"), id); err != nil {
			return fmt.Errorf("failed to delete scenario: %w", err)
		}
		return nil
	})
}
