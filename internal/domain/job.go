package domain

import "time"

// Job is a posting owned by an employer on behalf of a company.
type Job struct {
	ID                 int64
	EmployerID         int64
	CompanyID          int64
	Title              string
	Slug               string
	Description        string
	SkillsRequired     string
	ExperienceRequired int
	EducationRequired  *string
	Location           string
	Salary             int64
	JobType            JobType
	Deadline           *time.Time
	Openings           int
	Status             JobStatus
	PostedDate         time.Time
}

// IsClosed reports whether the posting no longer accepts interest.
func (j *Job) IsClosed() bool {
	return j.Status != JobStatusOpen
}

// JobView is a Job with display fields resolved from its company,
// employer and applications.
type JobView struct {
	Job
	CompanyName    string
	EmployerUserID int64
	ApplicantCount int
}
