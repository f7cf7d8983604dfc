package domain

import "time"

// JobFilter narrows a search over open jobs. Every field is optional; set
// fields are AND-combined.
type JobFilter struct {
	// Keyword matches title, required skills or company name (case-insensitive substring).
	Keyword *string

	// Location matches the job location (case-insensitive substring).
	Location *string

	JobType *JobType

	// MinExperience keeps jobs whose required experience is at least this many years.
	MinExperience *int

	MinSalary *int64

	// PostedAfter keeps jobs posted on or after this instant.
	PostedAfter *time.Time
}

// ApplicationFilter narrows the applications of one job. Nil fields are ignored.
type ApplicationFilter struct {
	Status *ApplicationStatus

	// Keyword matches the seeker's name or the skills, education or
	// experience text of the submitted resume (case-insensitive substring).
	Keyword *string

	// StartDate keeps applications submitted on or after the start of this day.
	StartDate *time.Time

	// MinExperience keeps seekers with at least this many years of experience.
	MinExperience *int
}
