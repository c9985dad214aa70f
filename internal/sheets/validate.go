package sheets

import (
	"fmt"

	"quickprice/internal/program"
)

// Validate checks a program sheet for structural problems that would make
// pricing results meaningless: missing identity, unknown class or tier, a
// non-ascending LTV ladder or base rate stack, or grids keyed by categories
// the engine does not know.
func Validate(p program.Program) error {
	if p.ID == "" {
		return fmt.Errorf("missing id")
	}
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}

	switch p.Class {
	case program.ClassStandard, program.ClassDSCR:
	default:
		return fmt.Errorf("unknown class %q", p.Class)
	}
	switch p.Tier {
	case program.TierStandard, program.TierPremium:
	default:
		return fmt.Errorf("unknown tier %q", p.Tier)
	}

	if len(p.LTVBreaks) == 0 {
		return fmt.Errorf("missing ltv breaks")
	}
	for i, brk := range p.LTVBreaks {
		if !brk.IsPositive() {
			return fmt.Errorf("ltv break %d must be positive", i)
		}
		if i > 0 && !brk.GreaterThan(p.LTVBreaks[i-1]) {
			return fmt.Errorf("ltv breaks must be strictly ascending at index %d", i)
		}
	}

	if len(p.BaseRates) == 0 {
		return fmt.Errorf("missing base rates")
	}
	for i, tier := range p.BaseRates {
		if !tier.Rate.IsPositive() {
			return fmt.Errorf("base rate %d must be positive", i)
		}
		if i > 0 && !tier.Rate.GreaterThan(p.BaseRates[i-1].Rate) {
			return fmt.Errorf("base rates must be strictly ascending at index %d", i)
		}
	}

	if len(p.Table) == 0 {
		return fmt.Errorf("missing adjustment table")
	}
	if err := validateTable(p.Table); err != nil {
		return err
	}
	if err := validateTable(p.Overrides); err != nil {
		return fmt.Errorf("overrides: %w", err)
	}

	return nil
}

func validateTable(table program.AdjustmentTable) error {
	for cat, options := range table {
		if !cat.Known() {
			return fmt.Errorf("unknown adjustment category %q", cat)
		}
		if len(options) == 0 {
			return fmt.Errorf("category %q has no options", cat)
		}
		for option, grid := range options {
			if option == "" {
				return fmt.Errorf("category %q has an empty option key", cat)
			}
			if len(grid) == 0 {
				return fmt.Errorf("category %q option %q has no buckets", cat, option)
			}
		}
	}
	return nil
}
