package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/search"
	"github.com/mmynk/wedplan/internal/storage"
)

// GuestService implements the Connect GuestService.
type GuestService struct {
	store storage.GuestStore
}

func NewGuestService(store storage.GuestStore) *GuestService {
	return &GuestService{store: store}
}

// ListGuests returns the matching guests ordered by first name.
func (s *GuestService) ListGuests(ctx context.Context, req *connect.Request[rpc.ListGuestsRequest]) (*connect.Response[rpc.ListGuestsResponse], error) {
	slog.Info("ListGuests request received", "query", req.Msg.Query, "side", req.Msg.Side, "rsvp", req.Msg.RSVP)

	guests, err := s.store.ListGuests(ctx)
	if err != nil {
		return nil, storeError("ListGuests", err)
	}

	guests = search.Guests(guests, search.GuestFilter{
		Query: req.Msg.Query,
		Side:  req.Msg.Side,
		RSVP:  req.Msg.RSVP,
	})

	return connect.NewResponse(&rpc.ListGuestsResponse{Guests: guests}), nil
}

func (s *GuestService) GetGuest(ctx context.Context, req *connect.Request[rpc.GetGuestRequest]) (*connect.Response[rpc.GetGuestResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	guest, err := s.store.GetGuest(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetGuest", err)
	}
	if guest == nil {
		return nil, notFound("guest", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.GetGuestResponse{Guest: guest}), nil
}

func (s *GuestService) CreateGuest(ctx context.Context, req *connect.Request[rpc.CreateGuestRequest]) (*connect.Response[rpc.CreateGuestResponse], error) {
	guest := req.Msg.Guest
	guest.ID = ""
	slog.Info("CreateGuest request received", "side", guest.Side, "has_companion", guest.HasCompanion)

	if err := validateNewGuest(&guest); err != nil {
		return nil, err
	}

	if err := s.store.CreateGuest(ctx, &guest); err != nil {
		return nil, storeError("CreateGuest", err)
	}

	slog.Info("Guest created", "guest_id", guest.ID)
	return connect.NewResponse(&rpc.CreateGuestResponse{Guest: &guest}), nil
}

func (s *GuestService) UpdateGuest(ctx context.Context, req *connect.Request[rpc.UpdateGuestRequest]) (*connect.Response[rpc.UpdateGuestResponse], error) {
	slog.Info("UpdateGuest request received", "guest_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validateGuestPatch(&req.Msg.Patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateGuest(ctx, req.Msg.ID, req.Msg.Patch); err != nil {
		return nil, storeError("UpdateGuest", err)
	}

	guest, err := s.store.GetGuest(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateGuest", err)
	}
	if guest == nil {
		return nil, notFound("guest", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.UpdateGuestResponse{Guest: guest}), nil
}

func (s *GuestService) DeleteGuest(ctx context.Context, req *connect.Request[rpc.DeleteGuestRequest]) (*connect.Response[rpc.DeleteGuestResponse], error) {
	slog.Info("DeleteGuest request received", "guest_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteGuest(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteGuest", err)
	}

	return connect.NewResponse(&rpc.DeleteGuestResponse{}), nil
}
