package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/dashboard"
	"github.com/mmynk/wedplan/internal/rpc"
)

// TimeoutObserver is told when a dashboard load runs out of time.
type TimeoutObserver interface {
	DashboardTimedOut()
}

// DashboardService implements the Connect DashboardService.
type DashboardService struct {
	source   dashboard.Source
	timeout  time.Duration
	observer TimeoutObserver
	now      func() time.Time
}

// NewDashboardService creates a DashboardService. A zero timeout uses
// dashboard.DefaultTimeout; observer may be nil.
func NewDashboardService(source dashboard.Source, timeout time.Duration, observer TimeoutObserver) *DashboardService {
	if timeout <= 0 {
		timeout = dashboard.DefaultTimeout
	}
	return &DashboardService{source: source, timeout: timeout, observer: observer, now: time.Now}
}

// GetDashboard loads every collection and computes the overview.
func (s *DashboardService) GetDashboard(ctx context.Context, req *connect.Request[rpc.GetDashboardRequest]) (*connect.Response[rpc.GetDashboardResponse], error) {
	slog.Info("GetDashboard request received", "scenario_id", req.Msg.ScenarioID)

	snap, err := dashboard.Load(ctx, s.source, s.timeout, req.Msg.ScenarioID)
	if err != nil {
		if errors.Is(err, dashboard.ErrTimeout) {
			slog.Warn("GetDashboard timed out", "timeout", s.timeout)
			if s.observer != nil {
				s.observer.DashboardTimedOut()
			}
			return nil, connect.NewError(connect.CodeDeadlineExceeded, err)
		}
		return nil, storeError("GetDashboard", err)
	}

	return connect.NewResponse(&rpc.GetDashboardResponse{Stats: dashboard.Compute(snap, s.now())}), nil
}
