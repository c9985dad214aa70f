package program

import (
	"github.com/shopspring/decimal"
)

// DefaultPrograms returns the four stock rate sheets. Callers receive fresh
// copies on every call so a handed-out snapshot is never shared.
func DefaultPrograms() []Program {
	margin := decimal.NewFromFloat(DefaultMarginHoldback)
	return []Program{
		{
			ID:             "nonqm-c",
			Name:           "NonQM-C",
			Class:          ClassStandard,
			Tier:           TierStandard,
			Description:    "Non-QM standard program",
			Active:         true,
			MarginHoldback: margin,
			LTVBreaks:      DefaultLTVBreaks(),
			BaseRates: rateTiers([][2]float64{
				{5.999, 99.323}, {6.125, 99.686}, {6.250, 100.038}, {6.375, 100.538},
				{6.499, 101.038}, {6.625, 101.538}, {6.750, 101.913}, {6.875, 102.288},
				{6.999, 102.663}, {7.125, 103.038}, {7.250, 103.413}, {7.375, 103.663},
				{7.499, 103.913}, {7.620, 104.163}, {7.750, 104.413}, {7.875, 104.663},
				{7.999, 104.913}, {8.125, 105.163}, {8.250, 105.413}, {8.375, 105.538},
				{8.499, 105.663}, {8.625, 105.788}, {8.750, 105.913}, {8.875, 106.038},
				{8.990, 106.163},
			}),
			Table: DefaultTable(),
			Settings: Settings{
				MinFICO:       680,
				MaxLTV:        decimal.NewFromInt(80),
				MinLoanAmount: decimal.NewFromInt(100_000),
				MaxLoanAmount: decimal.NewFromInt(3_000_000),
				AllowedStates: []string{"CA", "GA", "FL", "TX", "CO", "AL", "TN"},
				AllowedDocTypes: []string{
					"2yr Full Doc", "1yr Full Doc", "12m Bank Stmts", "24m Bank Stmts",
					"Asset Depletion", "1yr 1099 Only", "1yr WVOE Only",
				},
				AllowedPropertyTypes: []string{"SFR", "PUD/Town Home", "Condo", "2 Unit", "2-4 Unit"},
			},
		},
		{
			ID:             "nonqm-a",
			Name:           "NonQM-A",
			Class:          ClassStandard,
			Tier:           TierPremium,
			Description:    "Non-QM high balance program",
			Active:         true,
			MarginHoldback: margin,
			LTVBreaks:      DefaultLTVBreaks(),
			BaseRates: rateTiers([][2]float64{
				{6.375, 100.315}, {6.500, 101.090}, {6.625, 101.690}, {6.750, 102.240},
				{6.875, 102.690}, {6.990, 103.140}, {7.125, 103.515}, {7.250, 103.915},
				{7.375, 104.290}, {7.500, 104.615}, {7.625, 104.865}, {7.750, 105.140},
				{7.875, 105.390}, {7.990, 105.640}, {8.125, 105.890}, {8.250, 106.140},
				{8.375, 106.390}, {8.500, 106.640}, {8.625, 106.890}, {8.750, 107.140},
			}),
			Table: DefaultTable(),
			Settings: Settings{
				MinFICO:       660,
				MaxLTV:        decimal.NewFromInt(90),
				MinLoanAmount: decimal.NewFromInt(100_000),
				MaxLoanAmount: decimal.NewFromInt(5_000_000),
				AllowedStates: []string{"CA", "CO", "GA", "FL", "TX", "AL", "TN"},
				AllowedDocTypes: []string{
					"12m Bank Stmts", "Asset Depletion", "1yr P&L w/2m Bank Stmts", "1yr P&L Only",
				},
				AllowedPropertyTypes: []string{
					"SFR", "PUD/Town Home", "Condo", "Condo (Non-Warrantable)",
					"2 Unit", "2-4 Unit", "3-4 Unit",
				},
			},
		},
		{
			ID:             "dscr-c",
			Name:           "DSCR-C",
			Class:          ClassDSCR,
			Tier:           TierStandard,
			Description:    "DSCR investment program",
			Active:         true,
			MarginHoldback: margin,
			LTVBreaks:      DefaultLTVBreaks(),
			BaseRates: rateTiers([][2]float64{
				{5.990, 98.073}, {6.125, 98.436}, {6.250, 98.788}, {6.375, 99.128},
				{6.499, 99.456}, {6.625, 99.772}, {6.750, 100.076}, {6.875, 100.378},
				{6.990, 100.678}, {7.125, 100.951}, {7.250, 101.238}, {7.375, 101.532},
				{7.499, 101.844}, {7.625, 102.091}, {7.750, 102.352}, {7.875, 102.627},
				{7.999, 102.876}, {8.125, 103.119}, {8.250, 103.355}, {8.375, 103.586},
				{8.499, 103.810}, {8.625, 104.029}, {8.750, 104.241}, {8.875, 104.448},
				{8.999, 104.648},
			}),
			Table: DefaultTable(),
			Settings: Settings{
				MinFICO:       720,
				MaxLTV:        decimal.NewFromInt(80),
				MinLoanAmount: decimal.NewFromInt(150_000),
				MaxLoanAmount: decimal.NewFromInt(2_000_000),
				RequiresDSCR:  true,
				AllowedStates: []string{
					"AL", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "IN", "IA",
					"KY", "LA", "ME", "MA", "MO", "MT", "NE", "NH", "NJ", "NY", "OH", "OK",
					"PA", "SC", "TN", "TX", "VA", "WA", "WV", "WY",
				},
				AllowedDocTypes: []string{"DSCR"},
				AllowedPropertyTypes: []string{
					"SFR", "PUD/Town Home", "Condo", "2 Unit", "3-4 Unit", "2-8 Unit Mixed Use",
				},
			},
		},
		{
			ID:             "dscr-a",
			Name:           "DSCR-A",
			Class:          ClassDSCR,
			Tier:           TierPremium,
			Description:    "DSCR premium program",
			Active:         true,
			MarginHoldback: margin,
			LTVBreaks:      DefaultLTVBreaks(),
			BaseRates: rateTiers([][2]float64{
				{6.250, 100.340}, {6.375, 101.340}, {6.500, 102.015}, {6.625, 102.515},
				{6.750, 103.015}, {6.875, 103.490}, {6.990, 103.940}, {7.125, 104.390},
				{7.250, 104.840}, {7.375, 105.215}, {7.500, 105.590}, {7.625, 105.965},
				{7.750, 106.340}, {7.875, 106.715}, {7.990, 107.090}, {8.125, 107.465},
				{8.250, 107.805}, {8.375, 108.105}, {8.500, 108.405},
			}),
			Table: DefaultTable(),
			Settings: Settings{
				MinFICO:       640,
				MaxLTV:        decimal.NewFromInt(80),
				MinLoanAmount: decimal.NewFromInt(150_000),
				MaxLoanAmount: decimal.NewFromInt(3_500_000),
				RequiresDSCR:  true,
				AllowedStates: []string{
					"AL", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI", "IN", "IA",
					"KS", "KY", "LA", "ME", "MD", "MA", "MS", "MO", "MT", "NE", "NH", "NJ",
					"NM", "NY", "OH", "OK", "PA", "RI", "SC", "TN", "TX", "VA", "WA", "WV",
					"WI", "WY",
				},
				AllowedDocTypes: []string{"DSCR"},
				AllowedPropertyTypes: []string{
					"SFR", "PUD/Town Home", "Condo", "Condo (Non-Warrantable)",
					"2 Unit", "3-4 Unit", "5-9 Unit Residential",
				},
			},
		},
	}
}

func rateTiers(pairs [][2]float64) []BaseRate {
	tiers := make([]BaseRate, len(pairs))
	for i, pair := range pairs {
		tiers[i] = BaseRate{
			Rate:  decimal.NewFromFloat(pair[0]),
			Price: decimal.NewFromFloat(pair[1]),
		}
	}
	return tiers
}
