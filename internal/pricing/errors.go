package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"quickprice/internal/program"
)

// NoActiveProgramError means no program of the required class is active.
// Terminal: there is nothing to retry.
type NoActiveProgramError struct {
	Class program.Class
}

func (e *NoActiveProgramError) Error() string {
	return fmt.Sprintf("no active program for loan class %s", e.Class)
}

// LTVOutOfBoundsError means the computed LTV exceeds every configured bucket
// ceiling for the selected program, or could not be computed at all.
type LTVOutOfBoundsError struct {
	LTV    decimal.Decimal
	Bucket string
}

func (e *LTVOutOfBoundsError) Error() string {
	if e.Bucket == BucketNotApplicable {
		return "LTV not applicable: property value is zero"
	}
	return fmt.Sprintf("LTV %s%% exceeds program maximum", e.LTV.StringFixed(2))
}

// IneligibleCombinationError means an explicit ineligible cell was hit while
// aggregating adjustments. It names the offending category so the user knows
// which input to change.
type IneligibleCombinationError struct {
	Category program.Category
}

func (e *IneligibleCombinationError) Error() string {
	return fmt.Sprintf("ineligible: %s combination not available at this LTV", e.Category.Display())
}
