package dtos

// JobCreationRequest is the body of POST /api/jobs. Everything except the
// company and title is optional; the service fills sentinel defaults.
type JobCreationRequest struct {
	Company         string `json:"company" binding:"required"`
	JobTitle        string `json:"job_title" binding:"required"`
	JobURL          string `json:"job_url"`
	KeyRequirements string `json:"key_requirements"`

	RecruiterName         string `json:"recruiter_name"`
	RecruiterLinkedin     string `json:"recruiter_linkedin"`
	HiringManagerName     string `json:"hiring_manager_name"`
	HiringManagerLinkedin string `json:"hiring_manager_linkedin"`

	TailoredResume string `json:"tailored_resume"`

	Status string `json:"status" binding:"omitempty,oneof=Saved Applied Interview Offer Rejected"`
	Source string `json:"source" binding:"omitempty,oneof=manual tracker"`
}

// JobUpdateRequest is the body of PUT /api/jobs/:id. Pointer fields so we
// can tell "not sent" apart from "sent as empty" and merge only what the
// client actually changed.
type JobUpdateRequest struct {
	Company         *string `json:"company"`
	JobTitle        *string `json:"job_title"`
	JobURL          *string `json:"job_url"`
	KeyRequirements *string `json:"key_requirements"`

	RecruiterName         *string `json:"recruiter_name"`
	RecruiterLinkedin     *string `json:"recruiter_linkedin"`
	HiringManagerName     *string `json:"hiring_manager_name"`
	HiringManagerLinkedin *string `json:"hiring_manager_linkedin"`

	TailoredResume *string `json:"tailored_resume"`

	Status *string `json:"status" binding:"omitempty,oneof=Saved Applied Interview Offer Rejected"`
	Source *string `json:"source" binding:"omitempty,oneof=manual tracker"`
}

// Fields flattens the request into a column→value map for the store,
// skipping everything the client didn't send.
func (r *JobUpdateRequest) Fields() map[string]any {
	fields := map[string]any{}
	put := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	put("company", r.Company)
	put("job_title", r.JobTitle)
	put("job_url", r.JobURL)
	put("key_requirements", r.KeyRequirements)
	put("recruiter_name", r.RecruiterName)
	put("recruiter_linkedin", r.RecruiterLinkedin)
	put("hiring_manager_name", r.HiringManagerName)
	put("hiring_manager_linkedin", r.HiringManagerLinkedin)
	put("tailored_resume", r.TailoredResume)
	put("status", r.Status)
	put("source", r.Source)
	return fields
}
