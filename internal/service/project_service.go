package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/storage"
)

// ProjectService implements the Connect ProjectService.
type ProjectService struct {
	store storage.ProjectStore
}

func NewProjectService(store storage.ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// EnsureProject creates the project on first use and returns it.
func (s *ProjectService) EnsureProject(ctx context.Context, req *connect.Request[rpc.EnsureProjectRequest]) (*connect.Response[rpc.EnsureProjectResponse], error) {
	project, err := s.store.EnsureProject(ctx)
	if err != nil {
		return nil, storeError("EnsureProject", err)
	}
	return connect.NewResponse(&rpc.EnsureProjectResponse{Project: project}), nil
}

// GetProject returns the project. The project is nil until it has been
// ensured.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[rpc.GetProjectRequest]) (*connect.Response[rpc.GetProjectResponse], error) {
	project, err := s.store.GetProject(ctx)
	if err != nil {
		return nil, storeError("GetProject", err)
	}
	return connect.NewResponse(&rpc.GetProjectResponse{Project: project}), nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, req *connect.Request[rpc.UpdateProjectRequest]) (*connect.Response[rpc.UpdateProjectResponse], error) {
	patch := req.Msg.Patch
	slog.Info("UpdateProject request received")

	if err := validateProjectPatch(&patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateProject(ctx, patch); err != nil {
		return nil, storeError("UpdateProject", err)
	}

	project, err := s.store.GetProject(ctx)
	if err != nil {
		return nil, storeError("UpdateProject", err)
	}
	return connect.NewResponse(&rpc.UpdateProjectResponse{Project: project}), nil
}
