package application

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// ApplyInput holds the parameters for submitting an application.
type ApplyInput struct {
	SeekerID    int64
	JobID       int64
	ResumeID    int64
	CoverLetter string
}

// Validate checks all fields and collects all errors.
func (i ApplyInput) Validate(maxCoverLetter int) error {
	var errs []domain.FieldError

	if i.SeekerID <= 0 {
		errs = append(errs, domain.FieldError{Field: "seeker_id", Message: "required"})
	}
	if i.JobID <= 0 {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}
	if i.ResumeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "resume_id", Message: "required"})
	}
	if utf8.RuneCountInString(i.CoverLetter) > maxCoverLetter {
		errs = append(errs, domain.FieldError{Field: "cover_letter", Message: fmt.Sprintf("max %d characters", maxCoverLetter)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BulkStatusInput holds the parameters for a bulk status update.
type BulkStatusInput struct {
	IDs     []int64
	Status  string
	Comment string
}

// Validate checks the id list. The status is parsed separately so that an
// unknown status reports domain.ErrInvalidStatus.
func (i BulkStatusInput) Validate(maxIDs int) error {
	var errs []domain.FieldError

	if len(i.IDs) > maxIDs {
		errs = append(errs, domain.FieldError{Field: "ids", Message: fmt.Sprintf("max %d items", maxIDs)})
	}
	for _, id := range i.IDs {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: "ids", Message: "must be positive"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds the optional filters of an applicant search.
type SearchInput struct {
	JobID         int64
	Status        *string
	Keyword       *string
	StartDate     *time.Time
	MinExperience *int
}

func (i SearchInput) filter() (domain.ApplicationFilter, error) {
	if i.JobID <= 0 {
		return domain.ApplicationFilter{}, domain.NewValidationError("job_id", "required")
	}
	if i.MinExperience != nil && *i.MinExperience < 0 {
		return domain.ApplicationFilter{}, domain.NewValidationError("min_experience", "must be non-negative")
	}

	f := domain.ApplicationFilter{
		StartDate:     i.StartDate,
		MinExperience: i.MinExperience,
	}
	if i.Status != nil && strings.TrimSpace(*i.Status) != "" {
		status, err := domain.ParseApplicationStatus(*i.Status)
		if err != nil {
			return domain.ApplicationFilter{}, err
		}
		f.Status = &status
	}
	if i.Keyword != nil {
		if kw := strings.TrimSpace(*i.Keyword); kw != "" {
			f.Keyword = &kw
		}
	}
	return f, nil
}

func (s *Service) validateNoteText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewValidationError("text", "required")
	}
	if err := s.checkNoteLength("text", text); err != nil {
		return "", err
	}
	return text, nil
}

func (s *Service) checkNoteLength(field, text string) error {
	if utf8.RuneCountInString(text) > s.cfg.MaxNoteLength {
		return domain.NewValidationError(field, fmt.Sprintf("max %d characters", s.cfg.MaxNoteLength))
	}
	return nil
}
