package models

import "time"

// Job statuses as shown in the UI dropdown.
const (
	StatusSaved     = "Saved"
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
)

// Where a job came from: entered by hand or discovered by the tracker.
const (
	SourceManual  = "manual"
	SourceTracker = "tracker"
)

// ContactNotFound is the in-band marker for an unresolved contact field.
// The UI renders it literally, so it must be this exact string rather
// than an empty value or null.
const ContactNotFound = "Not Found"

// Tracker run outcomes.
const (
	RunStatusSuccess = "success"
	RunStatusError   = "error"
)

// Job is one job-application lead.
type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Company         string `gorm:"not null" json:"company"`
	JobTitle        string `gorm:"not null" json:"job_title"`
	JobURL          string `json:"job_url"`
	KeyRequirements string `gorm:"type:text" json:"key_requirements"`

	RecruiterName         string `json:"recruiter_name"`
	RecruiterLinkedin     string `json:"recruiter_linkedin"`
	HiringManagerName     string `json:"hiring_manager_name"`
	HiringManagerLinkedin string `json:"hiring_manager_linkedin"`

	TailoredResume string `gorm:"type:text" json:"tailored_resume"`

	Status string `gorm:"default:'Saved'" json:"status"`
	Source string `gorm:"default:'manual'" json:"source"`

	// DiscoveredAt is set once at creation and never touched again.
	DiscoveredAt time.Time `json:"discovered_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TrackerRun is the audit record of one tracker execution. Written once,
// never mutated.
type TrackerRun struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RunAt        time.Time `json:"run_at"`
	JobsFound    int       `json:"jobs_found"`
	NewJobsAdded int       `json:"new_jobs_added"`
	Status       string    `json:"status"`
	Log          string    `gorm:"type:text" json:"log"`
}

// JobStats mirrors the stats bar on the dashboard.
type JobStats struct {
	Total        int `json:"total"`
	Saved        int `json:"saved"`
	Applied      int `json:"applied"`
	Interviews   int `json:"interviews"`
	Offers       int `json:"offers"`
	Rejected     int `json:"rejected"`
	TrackerFinds int `json:"trackerFinds"`
}
