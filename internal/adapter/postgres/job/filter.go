package job

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

func nonBlank(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// applyFilter adds the filter predicates to b. The open-status predicate is
// always present.
func applyFilter(b sq.SelectBuilder, f domain.JobFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"j.status": string(domain.JobStatusOpen)})

	if nonBlank(f.Keyword) {
		p := postgres.ContainsPattern(*f.Keyword)
		b = b.Where(sq.Or{
			sq.ILike{"j.title": p},
			sq.ILike{"j.skills_required": p},
			sq.ILike{"c.name": p},
		})
	}
	if nonBlank(f.Location) {
		b = b.Where(sq.ILike{"j.location": postgres.ContainsPattern(*f.Location)})
	}
	if f.JobType != nil {
		b = b.Where(sq.Eq{"j.job_type": string(*f.JobType)})
	}
	if f.MinExperience != nil {
		b = b.Where(sq.GtOrEq{"j.experience_required": *f.MinExperience})
	}
	if f.MinSalary != nil {
		b = b.Where(sq.GtOrEq{"j.salary": *f.MinSalary})
	}
	if f.PostedAfter != nil {
		b = b.Where(sq.GtOrEq{"j.posted_date": *f.PostedAfter})
	}
	return b
}
