package auth

import (
	"net/mail"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores input beyond 72 bytes.
	maxPasswordLength = 72
	maxEmailLength    = 254
)

// RegisterInput holds parameters for account registration. Seeker fields
// apply to JOB_SEEKER, company fields to EMPLOYER.
type RegisterInput struct {
	Email    string
	Password string
	Role     string

	Name             string
	Phone            string
	Location         string
	EmploymentStatus string

	CompanyName        string
	Industry           string
	CompanySize        string
	CompanyDescription string
	Website            string
	Designation        string
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !domain.Role(i.Role).IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "must be JOB_SEEKER or EMPLOYER"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	switch {
	case email == "":
		return []domain.FieldError{{Field: "email", Message: "required"}}
	case len(email) > maxEmailLength:
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid format"}}
	}
	return nil
}
