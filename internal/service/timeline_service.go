package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/search"
	"github.com/mmynk/wedplan/internal/storage"
)

// TimelineService implements the Connect TimelineService.
type TimelineService struct {
	store storage.TimelineStore
	now   func() time.Time
}

func NewTimelineService(store storage.TimelineStore) *TimelineService {
	return &TimelineService{store: store, now: time.Now}
}

// ListTimelineEvents returns matching events in chronological order.
func (s *TimelineService) ListTimelineEvents(ctx context.Context, req *connect.Request[rpc.ListTimelineEventsRequest]) (*connect.Response[rpc.ListTimelineEventsResponse], error) {
	slog.Info("ListTimelineEvents request received", "query", req.Msg.Query, "when", req.Msg.When)

	when := search.When(req.Msg.When)
	if !when.Valid() {
		return nil, invalidArgument("when must be %q or %q, got %q", search.WhenUpcoming, search.WhenPast, req.Msg.When)
	}

	events, err := s.store.ListTimelineEvents(ctx)
	if err != nil {
		return nil, storeError("ListTimelineEvents", err)
	}

	events = search.TimelineEvents(events, search.TimelineFilter{
		Query: req.Msg.Query,
		When:  when,
		Now:   s.now(),
	})

	return connect.NewResponse(&rpc.ListTimelineEventsResponse{Events: events}), nil
}

func (s *TimelineService) GetTimelineEvent(ctx context.Context, req *connect.Request[rpc.GetTimelineEventRequest]) (*connect.Response[rpc.GetTimelineEventResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	event, err := s.store.GetTimelineEvent(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetTimelineEvent", err)
	}
	if event == nil {
		return nil, notFound("timeline event", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.GetTimelineEventResponse{Event: event}), nil
}

func (s *TimelineService) CreateTimelineEvent(ctx context.Context, req *connect.Request[rpc.CreateTimelineEventRequest]) (*connect.Response[rpc.CreateTimelineEventResponse], error) {
	event := req.Msg.Event
	event.ID = ""
	slog.Info("CreateTimelineEvent request received", "title", event.Title, "event_date", event.EventDate)

	if err := validateNewTimelineEvent(&event); err != nil {
		return nil, err
	}

	if err := s.store.CreateTimelineEvent(ctx, &event); err != nil {
		return nil, storeError("CreateTimelineEvent", err)
	}

	slog.Info("Timeline event created", "event_id", event.ID)
	return connect.NewResponse(&rpc.CreateTimelineEventResponse{Event: &event}), nil
}

func (s *TimelineService) UpdateTimelineEvent(ctx context.Context, req *connect.Request[rpc.UpdateTimelineEventRequest]) (*connect.Response[rpc.UpdateTimelineEventResponse], error) {
	slog.Info("UpdateTimelineEvent request received", "event_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validateTimelineEventPatch(&req.Msg.Patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateTimelineEvent(ctx, req.Msg.ID, req.Msg.Patch); err != nil {
		return nil, storeError("UpdateTimelineEvent", err)
	}

	event, err := s.store.GetTimelineEvent(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateTimelineEvent", err)
	}
	if event == nil {
		return nil, notFound("timeline event", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.UpdateTimelineEventResponse{Event: event}), nil
}

func (s *TimelineService) DeleteTimelineEvent(ctx context.Context, req *connect.Request[rpc.DeleteTimelineEventRequest]) (*connect.Response[rpc.DeleteTimelineEventResponse], error) {
	slog.Info("DeleteTimelineEvent request received", "event_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteTimelineEvent(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteTimelineEvent", err)
	}

	return connect.NewResponse(&rpc.DeleteTimelineEventResponse{}), nil
}
