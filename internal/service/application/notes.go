package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// AddNote appends a note to an application's trail.
func (s *Service) AddNote(ctx context.Context, applicationID int64, text string) (*domain.ApplicationNote, error) {
	text, err := s.validateNoteText(text)
	if err != nil {
		return nil, err
	}

	if _, err := s.apps.GetByID(ctx, applicationID); err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	note, err := s.notes.CreateNote(ctx, applicationID, text)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note added",
		slog.Int64("application_id", applicationID),
		slog.Int64("note_id", note.ID),
	)

	return note, nil
}

// UpdateNote replaces the text of a note.
func (s *Service) UpdateNote(ctx context.Context, noteID int64, text string) (*domain.ApplicationNote, error) {
	text, err := s.validateNoteText(text)
	if err != nil {
		return nil, err
	}

	note, err := s.notes.UpdateNote(ctx, noteID, text)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

// DeleteNote removes a note. An unknown note fails with domain.ErrNotFound.
func (s *Service) DeleteNote(ctx context.Context, noteID int64) error {
	if err := s.notes.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted", slog.Int64("note_id", noteID))
	return nil
}
