// Package application covers the join form and its confirmation summary.
package application

// Tier is one membership option offered on the join page.
type Tier struct {
	Code     string
	Label    string
	Summary  string
	Benefits []string
}

// Tiers lists the membership options in display order.
var Tiers = []Tier{
	{
		Code:     "np",
		Label:    "NP Membership",
		Summary:  "NP Membership (Non-Profit) - Free",
		Benefits: []string{"Directory listing", "Community event calendar"},
	},
	{
		Code:     "bronze",
		Label:    "Bronze Membership",
		Summary:  "Bronze Membership - $200/year",
		Benefits: []string{"Directory listing", "Networking mixers", "Training discounts"},
	},
	{
		Code:     "silver",
		Label:    "Silver Membership",
		Summary:  "Silver Membership - $400/year",
		Benefits: []string{"Everything in Bronze", "Home page spotlight rotation", "Event discounts"},
	},
	{
		Code:     "gold",
		Label:    "Gold Membership",
		Summary:  "Gold Membership - $600/year",
		Benefits: []string{"Everything in Silver", "Priority spotlight placement", "Free event booth"},
	},
}

// LevelSummary returns the name-and-price line for a tier code.
func LevelSummary(code string) string {
	for _, t := range Tiers {
		if t.Code == code {
			return t.Summary
		}
	}
	return "Not specified"
}
