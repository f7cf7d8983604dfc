package profile

import (
	"fmt"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

const (
	maxNameLength    = 200
	maxSectionLength = 10000
	maxSkillsLength  = 1000
)

// SeekerInput holds the editable seeker profile fields.
type SeekerInput struct {
	Name             string
	Phone            string
	Location         string
	EmploymentStatus string
	ExperienceYears  int
}

// Validate checks all fields and collects all errors.
func (i SeekerInput) Validate() error {
	var errs []domain.FieldError

	name := domain.PlainText(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}
	if i.ExperienceYears < 0 {
		errs = append(errs, domain.FieldError{Field: "experience_years", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResumeInput holds the text sections of a resume. Skills is a
// comma-separated list.
type ResumeInput struct {
	Objective      string
	Education      string
	Experience     string
	Skills         string
	Projects       string
	Certifications string
}

// Validate checks section lengths.
func (i ResumeInput) Validate() error {
	var errs []domain.FieldError

	sections := []struct {
		field, value string
	}{
		{"objective", i.Objective},
		{"education", i.Education},
		{"experience", i.Experience},
		{"projects", i.Projects},
		{"certifications", i.Certifications},
	}
	for _, s := range sections {
		if len(s.value) > maxSectionLength {
			errs = append(errs, domain.FieldError{Field: s.field, Message: fmt.Sprintf("max %d characters", maxSectionLength)})
		}
	}
	if len(i.Skills) > maxSkillsLength {
		errs = append(errs, domain.FieldError{Field: "skills", Message: fmt.Sprintf("max %d characters", maxSkillsLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func optional(v string) *string {
	if v = domain.PlainText(v); v != "" {
		return &v
	}
	return nil
}
