package assessment

import "lead-assessment-service/internal/domain"

var profiles = map[domain.Tier]domain.TierProfile{
	domain.TierBeginner: {
		Tier:  domain.TierBeginner,
		Title: "Getting Started",
		Badge: "Foundation Builder",
		Recommendations: []string{
			"Claim and complete your Google Business Profile with photos, hours, and service areas",
			"Launch a mobile-friendly website with a clear call to action on every page",
			"Ask your five most recent happy customers for an online review",
			"Pick one social channel and post at least once a week",
		},
	},
	domain.TierIntermediate: {
		Tier:  domain.TierIntermediate,
		Title: "Building Momentum",
		Badge: "Growth Accelerator",
		Recommendations: []string{
			"Create a landing page for each city you serve",
			"Set up call tracking so you know which channels bring in jobs",
			"Automate review requests after every completed job",
			"Publish a monthly guide that answers your customers' most common questions",
		},
	},
	domain.TierAdvanced: {
		Tier:  domain.TierAdvanced,
		Title: "Market Leader",
		Badge: "Local Authority",
		Recommendations: []string{
			"Expand into neighboring service areas with dedicated campaigns",
			"Test paid search against your organic leads and shift budget to the winner",
			"Build a referral program that rewards repeat customers",
			"Review conversion rates quarterly and refresh underperforming pages",
		},
	},
}

// Profile returns the display metadata for a tier. Unknown tiers fall back to beginner.
func Profile(tier domain.Tier) domain.TierProfile {
	p, ok := profiles[tier]
	if !ok {
		p = profiles[domain.TierBeginner]
	}
	p.Recommendations = append([]string(nil), p.Recommendations...)
	return p
}
