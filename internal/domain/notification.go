package domain

import "time"

// Notification is a message addressed to a user.
type Notification struct {
	ID        int64
	UserID    int64
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// SavedJob is a seeker's bookmark of a job.
type SavedJob struct {
	ID          int64
	JobSeekerID int64
	JobID       int64
	SavedAt     time.Time
}

// SavedJobView is a SavedJob with the job's display fields resolved.
type SavedJobView struct {
	SavedJob
	JobTitle    string
	CompanyName string
	Location    string
	JobStatus   JobStatus
}
