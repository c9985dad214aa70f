package program

import (
	"github.com/shopspring/decimal"
)

// DefaultMarginHoldback is the stock hidden margin applied to new sheets.
const DefaultMarginHoldback = -1.625

// Option keys for the bucketed categories of the master key. Categories fed
// directly by a scenario enum use the enum's string value as its key.
const (
	CreditBand780Plus   = "≥780"
	CreditBand760to779  = "760-779"
	CreditBand740to759  = "740-759"
	CreditBand720to739  = "720-739"
	CreditBand700to719  = "700-719"
	CreditBand680to699  = "680-699"
	CreditBand660to679  = "660-679"
	CreditBand640to659  = "640-659"
	CreditBand620to639  = "620-639"
	CreditBandBelow620  = "<620"
	CreditBandFNNoScore = "FN-NoScore"
)

const (
	LoanBandBelow50K   = "<$50K"
	LoanBand50Kto100K  = "$50K-$100K"
	LoanBand100Kto150K = "$100K-$150K"
	LoanBand150Kto200K = "$150K-$200K"
	LoanBand200Kto250K = "$200K-$250K"
	LoanBand250Kto500K = "$250K-$500K"
	LoanBand500Kto1M   = "$500K-$1M"
	LoanBand1Mto1_5M   = "$1M-$1.5M"
	LoanBand1_5Mto2M   = "$1.5M-$2M"
	LoanBand2Mto2_5M   = "$2M-$2.5M"
	LoanBand2_5Mto3M   = "$2.5M-$3M"
	LoanBand3Mto4M     = "$3M-$4M"
	LoanBand4Mto5M     = "$4M-$5M"
	LoanBandAbove5M    = ">$5M"
)

const (
	DSCRBand1250Plus   = "≥1.250"
	DSCRBand1150to1249 = "1.150-1.249"
	DSCRBand1000to1149 = "1.000-1.149"
	DSCRBand0750to0999 = "0.750-0.999"
	DSCRBand0500to0749 = "0.500-0.749"
	DSCRBandNoRatio    = "≤0.499"
)

// Cash-out pricing splits by credit score on standard programs.
const (
	PurposeKeyCashOutHighFICO = "Cash-Out ≥720"
	PurposeKeyCashOutLowFICO  = "Cash-Out ≤719"
)

const (
	KeyYes = "Yes"
	KeyNo  = "No"
)

// DefaultTable builds the master-key adjustment grids over the default
// nine-bucket ladder: zero everywhere a combination is supported, explicit
// ineligible markers where the lender will not lend. Administrators override
// individual cells per program.
func DefaultTable() AdjustmentTable {
	labels := LabelsForBreaks(DefaultLTVBreaks())

	zero := func() OptionGrid { return bandedGrid(labels, 0, 0, decimal.Zero) }
	capped := func(top int) OptionGrid { return bandedGrid(labels, 0, top, decimal.Zero) }
	banded := func(bottom, top int) OptionGrid { return bandedGrid(labels, bottom, top, decimal.Zero) }
	blocked := func() OptionGrid { return bandedGrid(labels, len(labels), 0, decimal.Zero) }
	flat := func(v float64) OptionGrid { return bandedGrid(labels, 0, 0, decimal.NewFromFloat(v)) }

	return AdjustmentTable{
		CategoryCreditScore: {
			CreditBand780Plus:   zero(),
			CreditBand760to779:  zero(),
			CreditBand740to759:  zero(),
			CreditBand720to739:  zero(),
			CreditBand700to719:  zero(),
			CreditBand680to699:  zero(),
			CreditBand660to679:  capped(1),
			CreditBand640to659:  capped(1),
			CreditBand620to639:  capped(2),
			CreditBandBelow620:  blocked(),
			CreditBandFNNoScore: capped(3),
		},
		CategoryLoanAmount: {
			LoanBandBelow50K:   blocked(),
			LoanBand50Kto100K:  zero(),
			LoanBand100Kto150K: zero(),
			LoanBand150Kto200K: zero(),
			LoanBand200Kto250K: zero(),
			LoanBand250Kto500K: zero(),
			LoanBand500Kto1M:   zero(),
			LoanBand1Mto1_5M:   zero(),
			LoanBand1_5Mto2M:   zero(),
			LoanBand2Mto2_5M:   zero(),
			LoanBand2_5Mto3M:   zero(),
			LoanBand3Mto4M:     capped(2),
			LoanBand4Mto5M:     capped(3),
			LoanBandAbove5M:    blocked(),
		},
		CategoryLoanPurpose: {
			"Purchase":                zero(),
			"Rate/Term":               zero(),
			"Cash-Out":                capped(1),
			PurposeKeyCashOutHighFICO: capped(1),
			PurposeKeyCashOutLowFICO:  capped(1),
		},
		CategoryLoanProduct: {
			"30yr Fixed":           zero(),
			"40yr Fixed":           zero(),
			"15yr Fixed":           zero(),
			"Interest-Only (30yr)": capped(1),
			"Interest-Only (40yr)": capped(1),
			"5/6 ARM":              zero(),
			"7/6 ARM":              zero(),
			"10/6 ARM":             zero(),
		},
		CategoryOccupancy: {
			"Primary":     zero(),
			"Second Home": zero(),
			"Investment":  capped(1),
		},
		CategoryPropertyType: {
			"SFR":                      zero(),
			"PUD/Town Home":            zero(),
			"Condo":                    zero(),
			"Condo (Non-Warrantable)":  capped(2),
			"Condotel":                 capped(2),
			"2 Unit":                   zero(),
			"2-4 Unit":                 zero(),
			"3-4 Unit":                 zero(),
			"2-8 Unit Mixed Use":       capped(3),
			"9-10 Unit Mixed Use":      capped(3),
			"5-9 Unit Residential":     capped(3),
			"Blanket/Cross Collateral": capped(3),
			"Small Balance Commercial": blocked(),
		},
		CategoryCitizenship: {
			"US Citizen":        zero(),
			"Perm-Resident":     zero(),
			"Non-Perm Resident": zero(),
			"Foreign National":  capped(2),
			"ITIN":              capped(2),
		},
		CategoryDocType: {
			"2yr Full Doc":            zero(),
			"1yr Full Doc":            zero(),
			"DSCR":                    capped(1),
			"12m Bank Stmts":          zero(),
			"24m Bank Stmts":          zero(),
			"Asset Depletion":         zero(),
			"1yr P&L Only":            zero(),
			"1yr P&L w/2m Bank Stmts": zero(),
			"1yr 1099 Only":           zero(),
			"1yr WVOE Only":           zero(),
		},
		CategoryDTI: {
			"≤43%":      zero(),
			"43.01-50%": zero(),
			"50.01-55%": capped(1),
		},
		CategoryDSCRRatio: {
			DSCRBand1250Plus:   capped(1),
			DSCRBand1150to1249: capped(1),
			DSCRBand1000to1149: capped(1),
			DSCRBand0750to0999: banded(1, 1),
			DSCRBand0500to0749: banded(2, 3),
			DSCRBandNoRatio:    banded(3, 3),
		},
		CategoryShortTermRental: {
			KeyNo:  capped(1),
			KeyYes: capped(2),
		},
		CategoryTitleVesting: {
			"Individual":     capped(1),
			"LLC/Corp/Other": capped(1),
		},
		CategoryPrepayPeriod: {
			"0-No Prepay": capped(1),
			"1yr":         capped(1),
			"2yr":         capped(1),
			"3yr":         capped(1),
			"4yr":         capped(1),
			"5yr":         capped(1),
		},
		CategoryPrepayFee: {
			"5% Standard":   capped(1),
			"6 Mo Interest": capped(1),
			"Declining":     capped(1),
		},
		CategoryEscrowWaiver: {
			KeyNo:  zero(),
			KeyYes: flat(-0.250),
		},
		CategoryLockTerm: {
			"15 Day": zero(),
			"30 Day": zero(),
			"45 Day": flat(-0.250),
		},
		CategoryState: {
			"FL": zero(),
			"GA": zero(),
			"OH": zero(),
			"TX": zero(),
		},
		CategoryCreditEvent: {
			"≥48m/None": zero(),
			"36m-47m":   zero(),
			"24m-35m":   capped(1),
			"12m-23m":   capped(3),
			"≤11m":      blocked(),
		},
		CategoryMortgageHistory: {
			"0x30x24":  zero(),
			"1x30x12":  zero(),
			"2x30x12":  capped(2),
			"3x30x12":  zero(),
			"1x60x12":  capped(4),
			"≥2x60x12": blocked(),
			"≥1x90x24": blocked(),
		},
	}
}

// bandedGrid fills a grid with value, marking the bottom and top n buckets
// ineligible. bottom=len(labels) blocks the whole row.
func bandedGrid(labels []string, bottom, top int, value decimal.Decimal) OptionGrid {
	grid := make(OptionGrid, len(labels))
	for i, label := range labels {
		if i < bottom || i >= len(labels)-top {
			grid[label] = Ineligible()
			continue
		}
		grid[label] = Value(value)
	}
	return grid
}
