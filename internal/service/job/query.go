package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// ListActive returns all open postings with applicant counts.
func (s *Service) ListActive(ctx context.Context) ([]domain.JobView, error) {
	jobs, err := s.jobs.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}
	return jobs, nil
}

// ListByEmployer returns every posting of an employer regardless of status.
func (s *Service) ListByEmployer(ctx context.Context, employerID int64) ([]domain.JobView, error) {
	if _, err := s.employers.GetEmployer(ctx, employerID); err != nil {
		return nil, fmt.Errorf("get employer: %w", err)
	}

	jobs, err := s.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("list employer jobs: %w", err)
	}
	return jobs, nil
}

// Search returns open postings matching every given filter, newest first.
func (s *Service) Search(ctx context.Context, input SearchInput) ([]domain.JobView, error) {
	f, err := input.filter()
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobs.Search(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return jobs, nil
}

// Recommend searches open postings by the first skill on the seeker's
// resume. Without a resume or skills it falls back to all active postings.
func (s *Service) Recommend(ctx context.Context, seekerID int64) ([]domain.JobView, error) {
	if _, err := s.seekers.GetSeeker(ctx, seekerID); err != nil {
		return nil, fmt.Errorf("get seeker: %w", err)
	}

	resume, err := s.resumes.GetBySeeker(ctx, seekerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.ListActive(ctx)
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}

	skills := resume.SkillList()
	if len(skills) == 0 {
		return s.ListActive(ctx)
	}

	return s.Search(ctx, SearchInput{Keyword: &skills[0]})
}
