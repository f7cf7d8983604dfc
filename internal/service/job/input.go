package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 20000
	maxSkillsLength      = 1000
	maxLocationLength    = 200
)

// JobInput holds the editable fields of a posting.
type JobInput struct {
	// EmployerID is the owner. It is ignored on update.
	EmployerID int64
	// CompanyID defaults to the employer's company when zero. Ignored on update.
	CompanyID int64

	Title              string
	Description        string
	SkillsRequired     string
	ExperienceRequired int
	EducationRequired  *string
	Location           string
	Salary             int64
	JobType            string
	Deadline           *time.Time
	Openings           int
}

// toJob validates the input and returns a sanitized job carrying the
// editable fields. The deadline must fall after today.
func (i JobInput) toJob(now time.Time) (*domain.Job, error) {
	var errs []domain.FieldError

	title := domain.PlainText(i.Title)
	skills := domain.PlainText(i.SkillsRequired)
	location := domain.PlainText(i.Location)
	description := domain.PlainText(i.Description)

	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
	}
	if skills == "" {
		errs = append(errs, domain.FieldError{Field: "skills_required", Message: "required"})
	} else if len(skills) > maxSkillsLength {
		errs = append(errs, domain.FieldError{Field: "skills_required", Message: fmt.Sprintf("max %d characters", maxSkillsLength)})
	}
	if location == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	} else if len(location) > maxLocationLength {
		errs = append(errs, domain.FieldError{Field: "location", Message: fmt.Sprintf("max %d characters", maxLocationLength)})
	}
	if len(description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLength)})
	}
	if i.ExperienceRequired < 0 {
		errs = append(errs, domain.FieldError{Field: "experience_required", Message: "must be non-negative"})
	}
	if i.Salary < 0 {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "must be non-negative"})
	}
	if i.Openings < 1 {
		errs = append(errs, domain.FieldError{Field: "openings", Message: "must be at least 1"})
	}

	jobType, err := domain.ParseJobType(i.JobType)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "job_type", Message: "unknown job type"})
	}

	var deadline *time.Time
	switch {
	case i.Deadline == nil:
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "required"})
	case !dateOf(*i.Deadline).After(dateOf(now)):
		errs = append(errs, domain.FieldError{Field: "deadline", Message: "must be in the future"})
	default:
		d := dateOf(*i.Deadline)
		deadline = &d
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	var education *string
	if i.EducationRequired != nil {
		if e := domain.PlainText(*i.EducationRequired); e != "" {
			education = &e
		}
	}

	return &domain.Job{
		Title:              title,
		Description:        description,
		SkillsRequired:     skills,
		ExperienceRequired: i.ExperienceRequired,
		EducationRequired:  education,
		Location:           location,
		Salary:             i.Salary,
		JobType:            jobType,
		Deadline:           deadline,
		Openings:           i.Openings,
	}, nil
}

// SearchInput holds the optional filters of a job search. Blank strings
// count as absent.
type SearchInput struct {
	Keyword       *string
	Location      *string
	JobType       *string
	MinExperience *int
	MinSalary     *int64
	PostedAfter   *time.Time
}

func (i SearchInput) filter() (domain.JobFilter, error) {
	var f domain.JobFilter

	f.Keyword = trimmed(i.Keyword)
	f.Location = trimmed(i.Location)

	if jt := trimmed(i.JobType); jt != nil {
		t, err := domain.ParseJobType(*jt)
		if err != nil {
			return domain.JobFilter{}, err
		}
		f.JobType = &t
	}
	if i.MinExperience != nil {
		if *i.MinExperience < 0 {
			return domain.JobFilter{}, domain.NewValidationError("min_experience", "must be non-negative")
		}
		f.MinExperience = i.MinExperience
	}
	if i.MinSalary != nil {
		if *i.MinSalary < 0 {
			return domain.JobFilter{}, domain.NewValidationError("min_salary", "must be non-negative")
		}
		f.MinSalary = i.MinSalary
	}
	if i.PostedAfter != nil {
		d := dateOf(*i.PostedAfter)
		f.PostedAfter = &d
	}
	return f, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// dateOf truncates t to midnight UTC of its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
