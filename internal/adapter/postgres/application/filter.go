package application

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

func applyFilter(b sq.SelectBuilder, f domain.ApplicationFilter) sq.SelectBuilder {
	if f.Status != nil {
		b = b.Where(sq.Eq{"a.status": string(*f.Status)})
	}
	if f.Keyword != nil && strings.TrimSpace(*f.Keyword) != "" {
		p := postgres.ContainsPattern(*f.Keyword)
		b = b.Where(sq.Or{
			sq.ILike{"s.name": p},
			sq.ILike{"r.skills": p},
			sq.ILike{"r.education": p},
			sq.ILike{"r.experience": p},
		})
	}
	if f.StartDate != nil {
		d := *f.StartDate
		b = b.Where(sq.GtOrEq{"a.applied_at": time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())})
	}
	if f.MinExperience != nil {
		b = b.Where(sq.GtOrEq{"s.experience_years": *f.MinExperience})
	}
	return b
}
