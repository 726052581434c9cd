package config

// DefaultSearchQueries is the stock query list the tracker runs when
// SEARCH_QUERIES is not set. Tailored to the default candidate profile below.
var DefaultSearchQueries = []string{
	"Senior Product Manager Singapore fintech",
	"Lead Product Manager Singapore",
	"Head of Product Singapore",
	"VP Product Singapore payments",
	"Product Manager Singapore marketplace",
}

// DefaultCandidateProfile is the relevance filter handed to the LLM during
// extraction. Override with CANDIDATE_PROFILE to track a different person.
const DefaultCandidateProfile = `**Ayoub Kassour — Head of Product / VP Product**
- 12+ years of product management experience across fintech, ecommerce, insurance, and FMCG
- Current: Head of Product (Consultant) at Livesport/Flashscore — GTM strategy for MENA expansion
- Previous: VP of Product at Sinbad (B2B FMCG Marketplace, Indonesia) — scaled GMV from $500K to $11M/month
- Previous: Head of Product at Home Credit (Philippines) — built Philippines' first BNPL Marketplace, scaled to 600K MAU
- Previous: Transformation Head at HMD Global (Nokia) — D2C channel, consumer lending, distribution management for 1,200+ stores
- Previous: Senior PM at Société Générale Insurance (Paris) — banking, insurance, wealth management digital products
- Core domains: Marketplace/ecommerce, BNPL/consumer lending, fintech/payments, insurance, distribution, digital transformation
- Strengths: 0-to-1 product builds, B2B and B2C, API-first architecture, growth (acquisition funnels, CRO), market expansion
- Regions: Global experience — Singapore, Indonesia, Philippines, France, MENA. Fluent in English, French, Arabic
- Target roles: Head of Product, VP Product, Senior/Lead PM at startups or growth-stage companies in Singapore
- Target industries: Fintech, payments, marketplace, ecommerce, distribution, insurtech, BNPL, digital banking, SaaS/B2B

Prioritize roles that match his seniority (Head/VP/Lead/Senior PM), domain expertise, and startup/growth-stage company preference. Exclude junior PM roles or roles requiring deep engineering/data science backgrounds.`
