package job

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gosimple/slug"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// CreateJob publishes a new open posting for an employer. The company is the
// employer's own unless CompanyID names another existing company.
//
// Seekers whose resume skills match the posting are notified after the
// posting is committed. Match notifications are best effort.
func (s *Service) CreateJob(ctx context.Context, input JobInput) (*domain.JobView, error) {
	now := s.now()

	job, err := input.toJob(now)
	if err != nil {
		return nil, err
	}

	var view *domain.JobView
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		employer, err := s.employers.GetEmployer(ctx, input.EmployerID)
		if err != nil {
			return fmt.Errorf("get employer: %w", err)
		}

		companyID := employer.CompanyID
		if input.CompanyID > 0 {
			companyID = input.CompanyID
		}
		company, err := s.employers.GetCompany(ctx, companyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		job.EmployerID = employer.ID
		job.CompanyID = company.ID
		job.Slug = slug.Make(job.Title + " " + company.Name)
		job.Status = domain.JobStatusOpen
		job.PostedDate = dateOf(now)

		created, err := s.jobs.Create(ctx, job)
		if err != nil {
			return fmt.Errorf("create job: %w", err)
		}

		view, err = s.jobs.GetView(ctx, created.ID)
		if err != nil {
			return fmt.Errorf("load job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job created",
		slog.Int64("job_id", view.ID),
		slog.Int64("employer_id", view.EmployerID),
		slog.String("slug", view.Slug),
	)

	s.notifyMatches(ctx, view)

	return view, nil
}

// UpdateJob overwrites the editable fields of a posting. Owner, company,
// status and posted date are kept.
func (s *Service) UpdateJob(ctx context.Context, id int64, input JobInput) (*domain.JobView, error) {
	job, err := input.toJob(s.now())
	if err != nil {
		return nil, err
	}

	var view *domain.JobView
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.jobs.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get job: %w", err)
		}
		company, err := s.employers.GetCompany(ctx, existing.CompanyID)
		if err != nil {
			return fmt.Errorf("get company: %w", err)
		}

		job.ID = existing.ID
		job.Slug = slug.Make(job.Title + " " + company.Name)

		if _, err := s.jobs.Update(ctx, job); err != nil {
			return fmt.Errorf("update job: %w", err)
		}

		view, err = s.jobs.GetView(ctx, id)
		if err != nil {
			return fmt.Errorf("load job: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "job updated", slog.Int64("job_id", id))

	return view, nil
}

// DeleteJob removes a posting with its applications, their notes and
// bookmarks.
func (s *Service) DeleteJob(ctx context.Context, id int64) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}

	s.log.InfoContext(ctx, "job deleted", slog.Int64("job_id", id))
	return nil
}

// GetJob returns a posting with its company name and applicant count.
func (s *Service) GetJob(ctx context.Context, id int64) (*domain.JobView, error) {
	view, err := s.jobs.GetView(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	return view, nil
}
