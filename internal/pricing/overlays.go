package pricing

import (
	"strings"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

// OverlayRule suppresses the adjustment categories it names whenever its
// predicate evaluates false for a scenario. Rules compose by AND: any one
// failing rule suppresses the category.
type OverlayRule struct {
	Name       string
	Categories []program.Category
	Applies    func(s scenario.LoanScenario) bool
}

// DefaultOverlays returns the stock overlay registry.
func DefaultOverlays() []OverlayRule {
	return []OverlayRule{
		{
			Name: "prepay-investment-only",
			Categories: []program.Category{
				program.CategoryPrepayPeriod,
				program.CategoryPrepayFee,
			},
			Applies: func(s scenario.LoanScenario) bool {
				return strings.Contains(strings.ToLower(string(s.Occupancy)), "investment")
			},
		},
		{
			Name: "adverse-credit-detail",
			Categories: []program.Category{
				program.CategoryCreditEvent,
				program.CategoryMortgageHistory,
			},
			Applies: func(s scenario.LoanScenario) bool {
				return s.AdverseCredit
			},
		},
	}
}

// adjustmentApplicable reports whether any overlay rule suppresses the
// category for this scenario.
func adjustmentApplicable(rules []OverlayRule, cat program.Category, s scenario.LoanScenario) bool {
	for _, rule := range rules {
		for _, governed := range rule.Categories {
			if governed == cat && !rule.Applies(s) {
				return false
			}
		}
	}
	return true
}
