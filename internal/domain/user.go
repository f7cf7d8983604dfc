package domain

import "time"

// User is an account that can log in. Exactly one role profile
// (JobSeeker or Employer) hangs off it.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// JobSeeker is the candidate profile of a JOB_SEEKER user.
type JobSeeker struct {
	ID                int64
	UserID            int64
	Name              string
	Phone             *string
	Location          *string
	EmploymentStatus  *string
	ExperienceYears   int
	ProfileCompletion int
}

// Company is an organisation that posts jobs through its employers.
type Company struct {
	ID          int64
	Name        string
	Industry    string
	Size        *string
	Description *string
	Website     *string
	Location    *string
}

// Employer is the recruiter profile of an EMPLOYER user.
type Employer struct {
	ID            int64
	UserID        int64
	CompanyID     int64
	ContactPerson *string
	Designation   *string
}

// Resume is the single resume a seeker keeps. Uploaded files are tracked
// by name and path only.
type Resume struct {
	ID             int64
	JobSeekerID    int64
	Objective      *string
	Education      *string
	Experience     *string
	Skills         string
	Projects       *string
	Certifications *string
	FileName       *string
	FilePath       *string
	UpdatedAt      time.Time
}

// SkillList returns the resume skills as lower-cased, trimmed, non-empty tokens.
func (r *Resume) SkillList() []string {
	return SplitSkills(r.Skills)
}

// Defaults applied when a role profile is created during registration.
const (
	DefaultSeekerName      = "New Seeker"
	DefaultCompanyName     = "New Company"
	DefaultCompanyIndustry = "General"
)

// SeekerSkills pairs a seeker's notification target with their resume
// skill list. It feeds job-match fan-out.
type SeekerSkills struct {
	SeekerID int64
	UserID   int64
	Skills   string
}
