package pricing

import (
	"github.com/shopspring/decimal"
)

// Result is the full outcome of pricing one scenario. When Err is set the
// rate lists are empty and Err is one of the typed failures
// (*scenario.ValidationError, *NoActiveProgramError, *LTVOutOfBoundsError,
// *IneligibleCombinationError). An empty Rates list with a nil Err means the
// scenario priced cleanly but every tier fell outside the band.
type Result struct {
	ProgramID   string
	ProgramName string

	// LTV is the computed loan-to-value percentage, two decimal places.
	LTV       decimal.Decimal
	LTVBucket string

	// LLPATotal excludes the margin holdback; final prices include it.
	LLPATotal   decimal.Decimal
	Adjustments []AppliedAdjustment

	Rates    []RateQuote
	AllRates []RateQuote
	Par      *RateQuote

	Err error
}

// Failed reports whether pricing stopped on a typed failure.
func (r Result) Failed() bool { return r.Err != nil }

// Reason returns the user-facing failure reason, empty on success.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
