package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/search"
	"github.com/mmynk/wedplan/internal/storage"
)

// VendorService implements the Connect VendorService.
type VendorService struct {
	store storage.VendorStore
}

func NewVendorService(store storage.VendorStore) *VendorService {
	return &VendorService{store: store}
}

// ListVendors returns the matching vendors, newest first, and the categories
// of all vendors for the filter picker.
func (s *VendorService) ListVendors(ctx context.Context, req *connect.Request[rpc.ListVendorsRequest]) (*connect.Response[rpc.ListVendorsResponse], error) {
	slog.Info("ListVendors request received", "query", req.Msg.Query, "status", req.Msg.Status, "category", req.Msg.Category)

	all, err := s.store.ListVendors(ctx)
	if err != nil {
		return nil, storeError("ListVendors", err)
	}

	vendors := search.Vendors(all, search.VendorFilter{
		Query:    req.Msg.Query,
		Status:   req.Msg.Status,
		Category: req.Msg.Category,
	})

	return connect.NewResponse(&rpc.ListVendorsResponse{
		Vendors:    vendors,
		Categories: search.VendorCategories(all),
	}), nil
}

func (s *VendorService) GetVendor(ctx context.Context, req *connect.Request[rpc.GetVendorRequest]) (*connect.Response[rpc.GetVendorResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	vendor, err := s.store.GetVendor(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetVendor", err)
	}
	if vendor == nil {
		return nil, notFound("vendor", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.GetVendorResponse{Vendor: vendor}), nil
}

func (s *VendorService) CreateVendor(ctx context.Context, req *connect.Request[rpc.CreateVendorRequest]) (*connect.Response[rpc.CreateVendorResponse], error) {
	vendor := req.Msg.Vendor
	vendor.ID = ""
	slog.Info("CreateVendor request received", "name", vendor.Name, "category", vendor.Category)

	if err := validateNewVendor(&vendor); err != nil {
		return nil, err
	}

	if err := s.store.CreateVendor(ctx, &vendor); err != nil {
		return nil, storeError("CreateVendor", err)
	}

	slog.Info("Vendor created", "vendor_id", vendor.ID)
	return connect.NewResponse(&rpc.CreateVendorResponse{Vendor: &vendor}), nil
}

func (s *VendorService) UpdateVendor(ctx context.Context, req *connect.Request[rpc.UpdateVendorRequest]) (*connect.Response[rpc.UpdateVendorResponse], error) {
	slog.Info("UpdateVendor request received", "vendor_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validateVendorPatch(&req.Msg.Patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateVendor(ctx, req.Msg.ID, req.Msg.Patch); err != nil {
		return nil, storeError("UpdateVendor", err)
	}

	vendor, err := s.store.GetVendor(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateVendor", err)
	}
	if vendor == nil {
		return nil, notFound("vendor", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.UpdateVendorResponse{Vendor: vendor}), nil
}

func (s *VendorService) DeleteVendor(ctx context.Context, req *connect.Request[rpc.DeleteVendorRequest]) (*connect.Response[rpc.DeleteVendorResponse], error) {
	slog.Info("DeleteVendor request received", "vendor_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteVendor(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteVendor", err)
	}

	return connect.NewResponse(&rpc.DeleteVendorResponse{}), nil
}
