package pricing

import (
	"github.com/shopspring/decimal"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

// SelectorConfig holds the loan-amount cutoffs that route a scenario to the
// premium tier of its class.
type SelectorConfig struct {
	DSCRTierCutoff     decimal.Decimal
	StandardTierCutoff decimal.Decimal
}

// DefaultSelectorConfig returns the stock tier cutoffs: 250,000 for DSCR and
// 1,000,000 for standard programs.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		DSCRTierCutoff:     decimal.NewFromInt(250_000),
		StandardTierCutoff: decimal.NewFromInt(1_000_000),
	}
}

// SelectProgram routes a normalized scenario to one eligible program. DSCR
// documentation selects the DSCR class, everything else the standard class;
// within a class the loan amount picks the tier. An inactive nominal tier
// falls back to any active program of the class; with none active the class
// is unavailable.
func SelectProgram(s scenario.LoanScenario, programs []program.Program, cfg SelectorConfig) (program.Program, error) {
	class := program.ClassStandard
	cutoff := cfg.StandardTierCutoff
	if s.DocType == scenario.DocDSCR {
		class = program.ClassDSCR
		cutoff = cfg.DSCRTierCutoff
	}

	tier := program.TierStandard
	if s.LoanAmount.GreaterThanOrEqual(cutoff) {
		tier = program.TierPremium
	}

	var fallback *program.Program
	for i := range programs {
		p := programs[i]
		if p.Class != class || !p.Active {
			continue
		}
		if p.Tier == tier {
			return p, nil
		}
		if fallback == nil {
			fallback = &programs[i]
		}
	}
	if fallback != nil {
		return *fallback, nil
	}
	return program.Program{}, &NoActiveProgramError{Class: class}
}
