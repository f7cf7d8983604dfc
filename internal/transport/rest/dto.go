package rest

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

type jobResponse struct {
	ID                 int64      `json:"id"`
	EmployerID         int64      `json:"employerId"`
	CompanyID          int64      `json:"companyId"`
	CompanyName        string     `json:"companyName"`
	Title              string     `json:"title"`
	Slug               string     `json:"slug"`
	Description        string     `json:"description"`
	SkillsRequired     string     `json:"skillsRequired"`
	ExperienceRequired int        `json:"experienceRequired"`
	EducationRequired  *string    `json:"educationRequired,omitempty"`
	Location           string     `json:"location"`
	Salary             int64      `json:"salary"`
	SalaryDisplay      string     `json:"salaryDisplay"`
	JobType            string     `json:"jobType"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	Openings           int        `json:"openings"`
	Status             string     `json:"status"`
	IsClosed           bool       `json:"isClosed"`
	PostedDate         time.Time  `json:"postedDate"`
	ApplicantCount     int        `json:"applicantCount"`
}

func toJobResponse(v *domain.JobView) jobResponse {
	resp := toJobOnlyResponse(&v.Job)
	resp.CompanyName = v.CompanyName
	resp.ApplicantCount = v.ApplicantCount
	return resp
}

func toJobOnlyResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:                 j.ID,
		EmployerID:         j.EmployerID,
		CompanyID:          j.CompanyID,
		Title:              j.Title,
		Slug:               j.Slug,
		Description:        j.Description,
		SkillsRequired:     j.SkillsRequired,
		ExperienceRequired: j.ExperienceRequired,
		EducationRequired:  j.EducationRequired,
		Location:           j.Location,
		Salary:             j.Salary,
		SalaryDisplay:      humanize.Comma(j.Salary),
		JobType:            j.JobType.String(),
		Deadline:           j.Deadline,
		Openings:           j.Openings,
		Status:             j.Status.String(),
		IsClosed:           j.IsClosed(),
		PostedDate:         j.PostedDate,
	}
}

func toJobResponses(views []domain.JobView) []jobResponse {
	out := make([]jobResponse, 0, len(views))
	for i := range views {
		out = append(out, toJobResponse(&views[i]))
	}
	return out
}

type applicationResponse struct {
	ID             int64          `json:"id"`
	JobID          int64          `json:"jobId"`
	JobTitle       string         `json:"jobTitle"`
	CompanyName    string         `json:"companyName"`
	JobSeekerID    int64          `json:"jobSeekerId"`
	SeekerName     string         `json:"seekerName"`
	ResumeID       int64          `json:"resumeId"`
	CoverLetter    *string        `json:"coverLetter,omitempty"`
	Status         string         `json:"status"`
	AppliedAt      time.Time      `json:"appliedAt"`
	WithdrawReason *string        `json:"withdrawReason,omitempty"`
	Notes          []noteResponse `json:"notes,omitempty"`
}

func toApplicationResponse(v *domain.ApplicationView) applicationResponse {
	resp := applicationResponse{
		ID:             v.ID,
		JobID:          v.JobID,
		JobTitle:       v.JobTitle,
		CompanyName:    v.CompanyName,
		JobSeekerID:    v.JobSeekerID,
		SeekerName:     v.SeekerName,
		ResumeID:       v.ResumeID,
		CoverLetter:    v.CoverLetter,
		Status:         v.Status.String(),
		AppliedAt:      v.AppliedAt,
		WithdrawReason: v.WithdrawReason,
	}
	for i := range v.Notes {
		resp.Notes = append(resp.Notes, toNoteResponse(&v.Notes[i]))
	}
	return resp
}

func toApplicationResponses(views []domain.ApplicationView) []applicationResponse {
	out := make([]applicationResponse, 0, len(views))
	for i := range views {
		out = append(out, toApplicationResponse(&views[i]))
	}
	return out
}

type noteResponse struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"applicationId"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toNoteResponse(n *domain.ApplicationNote) noteResponse {
	return noteResponse{
		ID:            n.ID,
		ApplicationID: n.ApplicationID,
		Text:          n.Text,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

type notificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	// Age is a relative rendering of CreatedAt, e.g. "3 hours ago".
	Age string `json:"age"`
}

func toNotificationResponse(n *domain.Notification, now time.Time) notificationResponse {
	return notificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
		Age:       humanize.RelTime(n.CreatedAt, now, "ago", "from now"),
	}
}

type savedJobResponse struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"jobId"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	Location    string    `json:"location"`
	JobStatus   string    `json:"jobStatus"`
	SavedAt     time.Time `json:"savedAt"`
}

func toSavedJobResponses(views []domain.SavedJobView) []savedJobResponse {
	out := make([]savedJobResponse, 0, len(views))
	for _, v := range views {
		out = append(out, savedJobResponse{
			ID:          v.ID,
			JobID:       v.JobID,
			JobTitle:    v.JobTitle,
			CompanyName: v.CompanyName,
			Location:    v.Location,
			JobStatus:   v.JobStatus.String(),
			SavedAt:     v.SavedAt,
		})
	}
	return out
}

type resumeResponse struct {
	ID             int64     `json:"id"`
	JobSeekerID    int64     `json:"jobSeekerId"`
	Objective      *string   `json:"objective,omitempty"`
	Education      *string   `json:"education,omitempty"`
	Experience     *string   `json:"experience,omitempty"`
	Skills         string    `json:"skills"`
	Projects       *string   `json:"projects,omitempty"`
	Certifications *string   `json:"certifications,omitempty"`
	FileName       *string   `json:"fileName,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toResumeResponse(r *domain.Resume) resumeResponse {
	return resumeResponse{
		ID:             r.ID,
		JobSeekerID:    r.JobSeekerID,
		Objective:      r.Objective,
		Education:      r.Education,
		Experience:     r.Experience,
		Skills:         r.Skills,
		Projects:       r.Projects,
		Certifications: r.Certifications,
		FileName:       r.FileName,
		UpdatedAt:      r.UpdatedAt,
	}
}

type seekerResponse struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"userId"`
	Name              string  `json:"name"`
	Phone             *string `json:"phone,omitempty"`
	Location          *string `json:"location,omitempty"`
	EmploymentStatus  *string `json:"employmentStatus,omitempty"`
	ExperienceYears   int     `json:"experienceYears"`
	ProfileCompletion int     `json:"profileCompletion"`
}

func toSeekerResponse(s *domain.JobSeeker) seekerResponse {
	return seekerResponse{
		ID:                s.ID,
		UserID:            s.UserID,
		Name:              s.Name,
		Phone:             s.Phone,
		Location:          s.Location,
		EmploymentStatus:  s.EmploymentStatus,
		ExperienceYears:   s.ExperienceYears,
		ProfileCompletion: s.ProfileCompletion,
	}
}

type employerResponse struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	ContactPerson *string         `json:"contactPerson,omitempty"`
	Designation   *string         `json:"designation,omitempty"`
	Company       companyResponse `json:"company"`
}

type companyResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Industry    string  `json:"industry"`
	Size        *string `json:"size,omitempty"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func toEmployerResponse(e *domain.Employer, c *domain.Company) employerResponse {
	return employerResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		ContactPerson: e.ContactPerson,
		Designation:   e.Designation,
		Company: companyResponse{
			ID:          c.ID,
			Name:        c.Name,
			Industry:    c.Industry,
			Size:        c.Size,
			Description: c.Description,
			Website:     c.Website,
			Location:    c.Location,
		},
	}
}
