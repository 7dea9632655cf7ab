package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/search"
	"github.com/mmynk/wedplan/internal/storage"
)

// TaskService implements the Connect TaskService.
type TaskService struct {
	store storage.TaskStore
}

// NewTaskService creates a new TaskService with the given storage backend.
func NewTaskService(store storage.TaskStore) *TaskService {
	return &TaskService{store: store}
}

// ListTasks returns the tasks matching the request filters, newest first.
func (s *TaskService) ListTasks(ctx context.Context, req *connect.Request[rpc.ListTasksRequest]) (*connect.Response[rpc.ListTasksResponse], error) {
	slog.Info("ListTasks request received", "query", req.Msg.Query, "status", req.Msg.Status)

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, storeError("ListTasks", err)
	}

	tasks = search.Tasks(tasks, search.TaskFilter{
		Query:      req.Msg.Query,
		Status:     req.Msg.Status,
		Priority:   req.Msg.Priority,
		AssignedTo: req.Msg.AssignedTo,
	})

	return connect.NewResponse(&rpc.ListTasksResponse{Tasks: tasks}), nil
}

// GetTask retrieves a task by ID.
func (s *TaskService) GetTask(ctx context.Context, req *connect.Request[rpc.GetTaskRequest]) (*connect.Response[rpc.GetTaskResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	task, err := s.store.GetTask(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetTask", err)
	}
	if task == nil {
		return nil, notFound("task", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.GetTaskResponse{Task: task}), nil
}

// CreateTask creates a new task.
func (s *TaskService) CreateTask(ctx context.Context, req *connect.Request[rpc.CreateTaskRequest]) (*connect.Response[rpc.CreateTaskResponse], error) {
	task := req.Msg.Task
	task.ID = ""
	task.CompletedAt = nil
	slog.Info("CreateTask request received", "title", task.Title, "status", task.Status)

	if err := validateNewTask(&task); err != nil {
		return nil, err
	}

	if err := s.store.CreateTask(ctx, &task); err != nil {
		return nil, storeError("CreateTask", err)
	}

	slog.Info("Task created", "task_id", task.ID)
	return connect.NewResponse(&rpc.CreateTaskResponse{Task: &task}), nil
}

// UpdateTask merges the patch into a task and returns the result.
func (s *TaskService) UpdateTask(ctx context.Context, req *connect.Request[rpc.UpdateTaskRequest]) (*connect.Response[rpc.UpdateTaskResponse], error) {
	slog.Info("UpdateTask request received", "task_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validateTaskPatch(&req.Msg.Patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateTask(ctx, req.Msg.ID, req.Msg.Patch); err != nil {
		return nil, storeError("UpdateTask", err)
	}

	task, err := s.store.GetTask(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateTask", err)
	}
	if task == nil {
		return nil, notFound("task", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.UpdateTaskResponse{Task: task}), nil
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (s *TaskService) DeleteTask(ctx context.Context, req *connect.Request[rpc.DeleteTaskRequest]) (*connect.Response[rpc.DeleteTaskResponse], error) {
	slog.Info("DeleteTask request received", "task_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteTask(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteTask", err)
	}

	return connect.NewResponse(&rpc.DeleteTaskResponse{}), nil
}
