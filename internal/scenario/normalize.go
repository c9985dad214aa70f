package scenario

import (
	"github.com/shopspring/decimal"
)

// Rule identifiers carried by ValidationError so the caller can key UI
// messaging off the specific hard stop.
const (
	RuleIncompatibleSelection = "incompatible_selection"
	RuleFTHBInvestorDSCRFloor = "fthb_investor_dscr_floor"
)

// fthbInvestorDSCRFloor is the minimum qualifying ratio for a first-time
// buyer financing an investment property on DSCR documentation.
var fthbInvestorDSCRFloor = decimal.RequireFromString("1.150")

// ValidationError is a hard stop raised by the trigger cascade: the scenario
// as entered is self-contradictory and must be corrected by the caller.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Normalize applies the borrower trigger cascade in fixed order until no rule
// changes the scenario, returning the normalized copy. The input is never
// mutated. Normalize is idempotent: running it on an already-normalized
// scenario is a no-op.
//
// Cascade order:
//  1. Foreign National forces Investment occupancy and DSCR documentation.
//  2. DSCR documentation forces Investment occupancy.
//  3. First-time buyers cannot select Second Home, and a first-time-buyer
//     investor on DSCR documentation needs a ratio of at least 1.150 when a
//     nonzero ratio was supplied.
func Normalize(s LoanScenario) (LoanScenario, error) {
	out := s
	// Structural rules can re-trigger each other; the field set they touch is
	// finite, so a handful of passes always reaches the fixed point.
	for pass := 0; pass < 4; pass++ {
		next, changed, err := applyTriggers(out)
		if err != nil {
			return LoanScenario{}, err
		}
		out = next
		if !changed {
			break
		}
	}
	return out, nil
}

func applyTriggers(s LoanScenario) (LoanScenario, bool, error) {
	out := s
	changed := false

	if out.Citizenship == CitizenshipForeignNational {
		if out.Occupancy != OccupancyInvestment {
			out.Occupancy = OccupancyInvestment
			changed = true
		}
		if out.DocType != DocDSCR {
			out.DocType = DocDSCR
			changed = true
		}
	}

	if out.DocType == DocDSCR && out.Occupancy != OccupancyInvestment {
		out.Occupancy = OccupancyInvestment
		changed = true
	}

	if out.FirstTimeBuyer {
		if out.Occupancy == OccupancySecondHome {
			return LoanScenario{}, false, &ValidationError{
				Rule:    RuleIncompatibleSelection,
				Message: "first-time home buyer cannot select Second Home",
			}
		}
		if out.Occupancy == OccupancyInvestment && out.DocType == DocDSCR {
			ratio := out.DSCRRatio
			if ratio.IsPositive() && ratio.LessThan(fthbInvestorDSCRFloor) {
				return LoanScenario{}, false, &ValidationError{
					Rule:    RuleFTHBInvestorDSCRFloor,
					Message: "FTHB investor DSCR must be ≥ 1.150",
				}
			}
		}
	}

	return out, changed, nil
}
