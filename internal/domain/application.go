package domain

import "time"

// Application links a seeker, a job and the resume submitted for it.
// At most one application exists per (seeker, job) pair.
type Application struct {
	ID             int64
	JobID          int64
	JobSeekerID    int64
	ResumeID       int64
	CoverLetter    *string
	Status         ApplicationStatus
	AppliedAt      time.Time
	WithdrawReason *string
}

// ApplicationNote is a free-text entry in an application's audit trail.
type ApplicationNote struct {
	ID            int64
	ApplicationID int64
	Text          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ApplicationView is an Application with the display fields and the
// notification targets of both parties resolved.
type ApplicationView struct {
	Application
	JobTitle       string
	CompanyName    string
	SeekerName     string
	SeekerUserID   int64
	EmployerUserID int64
	Notes          []ApplicationNote
}
