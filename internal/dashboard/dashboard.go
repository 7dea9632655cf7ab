// Package dashboard loads every collection of the planner and derives the
// overview statistics shown on the home screen.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/wedplan/internal/models"
)

// DefaultTimeout bounds the whole dashboard load.
const DefaultTimeout = 15 * time.Second

// ErrTimeout is returned by Load when the reads do not finish in time.
var ErrTimeout = errors.New("dashboard load timed out")

// Source is the subset of the store the dashboard reads from.
type Source interface {
	EnsureProject(ctx context.Context) (*models.Project, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	ListGuests(ctx context.Context) ([]*models.Guest, error)
	ListExpenses(ctx context.Context, scenarioID string) ([]*models.Expense, error)
	ListVendors(ctx context.Context) ([]*models.Vendor, error)
	ListTimelineEvents(ctx context.Context) ([]*models.TimelineEvent, error)
	ListNotes(ctx context.Context) ([]*models.Note, error)
}

// Snapshot holds the raw collections a dashboard is computed from.
type Snapshot struct {
	Project  *models.Project
	Tasks    []*models.Task
	Guests   []*models.Guest
	Expenses []*models.Expense
	Vendors  []*models.Vendor
	Events   []*models.TimelineEvent
	Notes    []*models.Note
}

// Load reads all collections concurrently. An empty scenarioID loads the
// expenses of every scenario. If the reads take longer than timeout the
// outstanding ones are cancelled and ErrTimeout is returned.
func Load(ctx context.Context, src Source, timeout time.Duration, scenarioID string) (*Snapshot, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Project, err = src.EnsureProject(gctx)
		return wrap("project", err)
	})
	g.Go(func() (err error) {
		snap.Tasks, err = src.ListTasks(gctx)
		return wrap("tasks", err)
	})
	g.Go(func() (err error) {
		snap.Guests, err = src.ListGuests(gctx)
		return wrap("guests", err)
	})
	g.Go(func() (err error) {
		snap.Expenses, err = src.ListExpenses(gctx, scenarioID)
		return wrap("expenses", err)
	})
	g.Go(func() (err error) {
		snap.Vendors, err = src.ListVendors(gctx)
		return wrap("vendors", err)
	})
	g.Go(func() (err error) {
		snap.Events, err = src.ListTimelineEvents(gctx)
		return wrap("timeline events", err)
	})
	g.Go(func() (err error) {
		snap.Notes, err = src.ListNotes(gctx)
		return wrap("notes", err)
	})

	// Wait in the background so a read that ignores cancellation cannot hold
	// the caller past the deadline.
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil {
				return nil, ErrTimeout
			}
			return nil, err
		}
		return &snap, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ctx.Err()
	}
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}
