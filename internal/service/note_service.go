package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/search"
	"github.com/mmynk/wedplan/internal/storage"
)

// NoteService implements the Connect NoteService.
type NoteService struct {
	store storage.NoteStore
}

func NewNoteService(store storage.NoteStore) *NoteService {
	return &NoteService{store: store}
}

// ListNotes returns matching notes, newest first, along with every tag in use.
func (s *NoteService) ListNotes(ctx context.Context, req *connect.Request[rpc.ListNotesRequest]) (*connect.Response[rpc.ListNotesResponse], error) {
	slog.Info("ListNotes request received", "query", req.Msg.Query, "tag", req.Msg.Tag)

	all, err := s.store.ListNotes(ctx)
	if err != nil {
		return nil, storeError("ListNotes", err)
	}

	notes := search.Notes(all, search.NoteFilter{Query: req.Msg.Query, Tag: req.Msg.Tag})

	return connect.NewResponse(&rpc.ListNotesResponse{
		Notes: notes,
		Tags:  search.Tags(all),
	}), nil
}

func (s *NoteService) GetNote(ctx context.Context, req *connect.Request[rpc.GetNoteRequest]) (*connect.Response[rpc.GetNoteResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	note, err := s.store.GetNote(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetNote", err)
	}
	if note == nil {
		return nil, notFound("note", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.GetNoteResponse{Note: note}), nil
}

func (s *NoteService) CreateNote(ctx context.Context, req *connect.Request[rpc.CreateNoteRequest]) (*connect.Response[rpc.CreateNoteResponse], error) {
	note := req.Msg.Note
	note.ID = ""
	slog.Info("CreateNote request received", "title", note.Title, "tags", len(note.Tags))

	if err := validateNewNote(&note); err != nil {
		return nil, err
	}

	if err := s.store.CreateNote(ctx, &note); err != nil {
		return nil, storeError("CreateNote", err)
	}

	slog.Info("Note created", "note_id", note.ID)
	return connect.NewResponse(&rpc.CreateNoteResponse{Note: &note}), nil
}

func (s *NoteService) UpdateNote(ctx context.Context, req *connect.Request[rpc.UpdateNoteRequest]) (*connect.Response[rpc.UpdateNoteResponse], error) {
	slog.Info("UpdateNote request received", "note_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validateNotePatch(&req.Msg.Patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateNote(ctx, req.Msg.ID, req.Msg.Patch); err != nil {
		return nil, storeError("UpdateNote", err)
	}

	note, err := s.store.GetNote(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateNote", err)
	}
	if note == nil {
		return nil, notFound("note", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.UpdateNoteResponse{Note: note}), nil
}

func (s *NoteService) DeleteNote(ctx context.Context, req *connect.Request[rpc.DeleteNoteRequest]) (*connect.Response[rpc.DeleteNoteResponse], error) {
	slog.Info("DeleteNote request received", "note_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteNote(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteNote", err)
	}

	return connect.NewResponse(&rpc.DeleteNoteResponse{}), nil
}
