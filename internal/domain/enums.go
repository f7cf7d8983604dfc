package domain

import (
	"fmt"
	"strings"
)

// Role is the portal role a user registered with.
type Role string

const (
	RoleJobSeeker Role = "JOB_SEEKER"
	RoleEmployer  Role = "EMPLOYER"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer:
		return true
	}
	return false
}

// ApplicationStatus is the lifecycle state of an application.
// Any status may follow any other; there is no transition table.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "APPLIED"
	ApplicationStatusUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn   ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusUnderReview, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// ParseApplicationStatus parses s case-insensitively, ignoring surrounding
// whitespace. Unknown values yield ErrInvalidStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("%q: %w", s, ErrInvalidStatus)
	}
	return status, nil
}

// JobStatus is the single lifecycle flag of a job posting.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "OPEN"
	JobStatusClosed JobStatus = "CLOSED"
	JobStatusFilled JobStatus = "FILLED"
)

func (s JobStatus) String() string { return string(s) }

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusFilled:
		return true
	}
	return false
}

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
	JobTypeRemote     JobType = "REMOTE"
)

func (t JobType) String() string { return string(t) }

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

// ParseJobType parses s case-insensitively. Hyphens and spaces are read as
// underscores, so "full-time" yields JobTypeFullTime.
func ParseJobType(s string) (JobType, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToUpper(strings.TrimSpace(s)))
	t := JobType(norm)
	if !t.IsValid() {
		return "", NewValidationError("job_type", fmt.Sprintf("unknown job type %q", s))
	}
	return t, nil
}
