package user

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/jobportal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

var (
	companyColumns  = []string{"id", "name", "industry", "size", "description", "website", "location"}
	employerColumns = []string{"id", "user_id", "company_id", "contact_person", "designation"}
)

// ---------------------------------------------------------------------------
// Companies
// ---------------------------------------------------------------------------

// CreateCompany inserts a company.
func (r *Repo) CreateCompany(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("companies").
			Columns("name", "industry", "size", "description", "website", "location").
			Values(c.Name, c.Industry, c.Size, c.Description, c.Website, c.Location).
			Suffix("RETURNING "+joinColumns(companyColumns)))

	created, err := scanCompany(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", c.Name)
	}
	return created, nil
}

// GetCompany returns a company by id.
func (r *Repo) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(companyColumns...).From("companies").Where(sq.Eq{"id": id}))

	c, err := scanCompany(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", id)
	}
	return c, nil
}

// ---------------------------------------------------------------------------
// Employers
// ---------------------------------------------------------------------------

// CreateEmployer inserts an employer profile. The company must exist.
func (r *Repo) CreateEmployer(ctx context.Context, e *domain.Employer) (*domain.Employer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Insert("employers").
			Columns("user_id", "company_id", "contact_person", "designation").
			Values(e.UserID, e.CompanyID, e.ContactPerson, e.Designation).
			Suffix("RETURNING "+joinColumns(employerColumns)))

	created, err := scanEmployer(row)
	if err != nil {
		return nil, postgres.MapError(err, "employer", fmt.Sprintf("user %d", e.UserID))
	}
	return created, nil
}

// GetEmployer returns an employer by id.
func (r *Repo) GetEmployer(ctx context.Context, id int64) (*domain.Employer, error) {
	return r.getEmployer(ctx, sq.Eq{"id": id}, id)
}

// GetEmployerByUserID returns the employer profile of a user.
func (r *Repo) GetEmployerByUserID(ctx context.Context, userID int64) (*domain.Employer, error) {
	return r.getEmployer(ctx, sq.Eq{"user_id": userID}, fmt.Sprintf("user %d", userID))
}

func (r *Repo) getEmployer(ctx context.Context, where sq.Eq, id any) (*domain.Employer, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRowBuilt(ctx, q,
		postgres.Builder.Select(employerColumns...).From("employers").Where(where))

	e, err := scanEmployer(row)
	if err != nil {
		return nil, postgres.MapError(err, "employer", id)
	}
	return e, nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Size, &c.Description, &c.Website, &c.Location); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanEmployer(row pgx.Row) (*domain.Employer, error) {
	var e domain.Employer
	if err := row.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.ContactPerson, &e.Designation); err != nil {
		return nil, err
	}
	return &e, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
