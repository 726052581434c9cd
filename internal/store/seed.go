package store

import (
	"time"

	"jobtracker/internal/models"
)

// SeedJobs returns the demo data loaded into the memory store so the UI has
// something to show before a database or any API keys are configured.
func SeedJobs() []models.Job {
	now := time.Now().UTC()
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo) }

	job := func(id uint, daysAgo int, j models.Job) models.Job {
		j.ID = id
		j.DiscoveredAt = at(daysAgo)
		j.CreatedAt = at(daysAgo)
		j.UpdatedAt = at(daysAgo)
		if j.RecruiterName == "" {
			j.RecruiterName = models.ContactNotFound
		}
		if j.RecruiterLinkedin == "" {
			j.RecruiterLinkedin = models.ContactNotFound
		}
		if j.HiringManagerName == "" {
			j.HiringManagerName = models.ContactNotFound
		}
		if j.HiringManagerLinkedin == "" {
			j.HiringManagerLinkedin = models.ContactNotFound
		}
		return j
	}

	return []models.Job{
		job(1, 1, models.Job{
			Company:         "Grab",
			JobTitle:        "Lead Product Manager, Payments",
			JobURL:          "https://grab.careers/job/lead-pm-payments",
			KeyRequirements: "8+ years PM experience, payments, marketplace scale, SEA market knowledge",
			Status:          models.StatusSaved,
			Source:          models.SourceTracker,
		}),
		job(2, 3, models.Job{
			Company:           "Aspire",
			JobTitle:          "Head of Product",
			JobURL:            "https://aspireapp.com/careers/head-of-product",
			KeyRequirements:   "B2B fintech, 0-to-1 builds, credit products, regional expansion",
			RecruiterName:     "Melissa Tan",
			RecruiterLinkedin: "https://linkedin.com/in/melissa-tan-sg",
			Status:            models.StatusApplied,
			Source:            models.SourceManual,
		}),
		job(3, 6, models.Job{
			Company:         "Shopee",
			JobTitle:        "Senior Product Manager, Marketplace",
			JobURL:          "https://careers.shopee.sg/job/senior-pm-marketplace",
			KeyRequirements: "Ecommerce marketplace, growth funnels, data-driven experimentation",
			Status:          models.StatusInterview,
			Source:          models.SourceManual,
		}),
		job(4, 10, models.Job{
			Company:           "Atome",
			JobTitle:          "VP Product, BNPL",
			JobURL:            "https://atome.sg/careers/vp-product",
			KeyRequirements:   "BNPL/consumer lending, risk products, 10+ years experience",
			HiringManagerName: "Daniel Koh",
			Status:            models.StatusSaved,
			Source:            models.SourceManual,
		}),
		job(5, 14, models.Job{
			Company:         "Wise",
			JobTitle:        "Senior Product Manager, Cards",
			JobURL:          "https://wise.jobs/senior-pm-cards-sg",
			KeyRequirements: "Cross-border payments, regulatory awareness, B2C at scale",
			Status:          models.StatusRejected,
			Source:          models.SourceManual,
		}),
	}
}
