package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// UpdateStatus moves an application to the given status. Any status may
// follow any other. A non-empty comment is stored as a note, and the seeker
// is notified inside the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, applicationID int64, status, comment string) (*domain.ApplicationView, error) {
	st, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, err
	}

	var view *domain.ApplicationView
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		view, err = s.changeStatus(ctx, applicationID, st, comment)
		if err != nil {
			return err
		}
		if _, err := s.notifier.Send(ctx, view.SeekerUserID, statusUpdatedMessage(view.JobTitle, st.String())); err != nil {
			return fmt.Errorf("notify seeker: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application status updated",
		slog.Int64("application_id", applicationID),
		slog.String("status", st.String()),
	)

	return view, nil
}

// changeStatus writes the status and, for a non-empty comment, a note holding
// the comment as entered. It must run inside a transaction.
func (s *Service) changeStatus(ctx context.Context, id int64, status domain.ApplicationStatus, comment string) (*domain.ApplicationView, error) {
	if err := s.checkNoteLength("comment", comment); err != nil {
		return nil, err
	}

	if _, err := s.apps.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
	}
	if comment != "" {
		if _, err := s.notes.CreateNote(ctx, id, comment); err != nil {
			return nil, fmt.Errorf("create status note: %w", err)
		}
	}

	view, err := s.apps.GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load application: %w", err)
	}
	return view, nil
}

// Withdraw marks an application as withdrawn by the seeker. A non-empty
// reason is stored on the application exactly as given and copied into a
// note. The employer is notified every time, including on repeated
// withdrawals.
func (s *Service) Withdraw(ctx context.Context, applicationID int64, reason string) (*domain.ApplicationView, error) {
	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}

	var view *domain.ApplicationView
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.apps.Withdraw(ctx, applicationID, reasonPtr); err != nil {
			return fmt.Errorf("withdraw application: %w", err)
		}
		if reasonPtr != nil {
			if _, err := s.notes.CreateNote(ctx, applicationID, withdrawalNote(reason)); err != nil {
				return fmt.Errorf("create withdrawal note: %w", err)
			}
		}

		var err error
		view, err = s.apps.GetView(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("load application: %w", err)
		}

		if _, err := s.notifier.Send(ctx, view.EmployerUserID, withdrawnMessage(view.SeekerName, view.JobTitle, reason)); err != nil {
			return fmt.Errorf("notify employer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application withdrawn",
		slog.Int64("application_id", applicationID),
		slog.Bool("with_reason", reasonPtr != nil),
	)

	return view, nil
}
