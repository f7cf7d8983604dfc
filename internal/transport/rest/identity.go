package rest

import (
	"context"
	"fmt"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
	"github.com/heartmarshall/jobportal-backend/internal/service/profile"
	"github.com/heartmarshall/jobportal-backend/pkg/ctxutil"
)

// seekerResolver maps the authenticated user to their seeker profile.
type seekerResolver interface {
	SeekerByUserID(ctx context.Context, userID int64) (*domain.JobSeeker, error)
}

// employerResolver maps the authenticated user to their employer profile.
type employerResolver interface {
	EmployerByUserID(ctx context.Context, userID int64) (*profile.EmployerProfile, error)
}

func callerSeeker(ctx context.Context, seekers seekerResolver) (*domain.JobSeeker, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	seeker, err := seekers.SeekerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve caller seeker: %w", err)
	}
	return seeker, nil
}

func callerEmployer(ctx context.Context, employers employerResolver) (*domain.Employer, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	p, err := employers.EmployerByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve caller employer: %w", err)
	}
	return &p.Employer, nil
}

// requireSeeker reports domain.ErrForbidden unless the caller owns seekerID.
func requireSeeker(ctx context.Context, seekers seekerResolver, seekerID int64) error {
	seeker, err := callerSeeker(ctx, seekers)
	if err != nil {
		return err
	}
	if seeker.ID != seekerID {
		return domain.ErrForbidden
	}
	return nil
}
