package pricing

import (
	"github.com/shopspring/decimal"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

// AppliedAdjustment is one line of the pricing breakdown: the category, the
// option key the scenario resolved to, and the signed value contributed.
type AppliedAdjustment struct {
	Category program.Category `json:"category"`
	Key      string           `json:"key"`
	Value    decimal.Decimal  `json:"value"`
}

// AggregateResult is the summed LLPA total and its per-category breakdown in
// category-walk order.
type AggregateResult struct {
	Total       decimal.Decimal
	Adjustments []AppliedAdjustment
}

// aggregate walks the program class's category list, resolves each option
// key, applies overlay suppression, and sums the looked-up adjustments.
//
// A missing cell counts as zero; only an explicit ineligible marker on a
// fail-policy category aborts, returning the entries recorded strictly
// before the failing category alongside an IneligibleCombinationError.
func aggregate(s scenario.LoanScenario, p program.Program, ltvBucket string, overlays []OverlayRule) (AggregateResult, error) {
	result := AggregateResult{Total: decimal.Zero}

	for _, spec := range categoriesForClass(p.Class) {
		if !adjustmentApplicable(overlays, spec.cat, s) {
			continue
		}

		key := spec.key(s)
		adj, present := p.Lookup(spec.cat, key, ltvBucket)

		switch spec.policy {
		case failOnIneligible:
			if present && adj.IsIneligible() {
				return result, &IneligibleCombinationError{Category: spec.cat}
			}
			value := decimal.Zero
			if present {
				value = adj.Amount()
			}
			result.Adjustments = append(result.Adjustments, AppliedAdjustment{
				Category: spec.cat,
				Key:      key,
				Value:    value,
			})
			result.Total = result.Total.Add(value)

		case skipOnIneligible:
			if !present || adj.IsIneligible() {
				continue
			}
			value := adj.Amount()
			result.Adjustments = append(result.Adjustments, AppliedAdjustment{
				Category: spec.cat,
				Key:      key,
				Value:    value,
			})
			result.Total = result.Total.Add(value)
		}
	}

	return result, nil
}
