package pricing

import (
	"github.com/shopspring/decimal"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

// Sentinel bucket labels. Neither appears in any adjustment grid.
const (
	// BucketNotApplicable is returned when LTV cannot be computed (zero
	// property value).
	BucketNotApplicable = "N/A"
	// BucketOutOfBounds is returned when LTV exceeds the top ladder ceiling.
	BucketOutOfBounds = "Out of Bounds"
)

var hundred = decimal.NewFromInt(100)

// LTV computes loanAmount/propertyValue as a percentage rounded to two
// decimal places. ok is false when the property value is not positive; the
// function never divides by zero.
func LTV(loanAmount, propertyValue decimal.Decimal) (ltv decimal.Decimal, ok bool) {
	if !propertyValue.IsPositive() {
		return decimal.Zero, false
	}
	return loanAmount.Div(propertyValue).Mul(hundred).Round(2), true
}

// LTVBucket maps an LTV percentage onto the ladder: the bucket whose ceiling
// is the smallest one at or above the value. Buckets partition (0, top] with
// the first bucket reaching down to zero; values above the top ceiling map
// to BucketOutOfBounds.
func LTVBucket(ltv decimal.Decimal, breaks []decimal.Decimal) string {
	labels := program.LabelsForBreaks(breaks)
	for i, ceiling := range sortedCeilings(breaks) {
		if ltv.LessThanOrEqual(ceiling) {
			return labels[i]
		}
	}
	return BucketOutOfBounds
}

func sortedCeilings(breaks []decimal.Decimal) []decimal.Decimal {
	sorted := make([]decimal.Decimal, len(breaks))
	copy(sorted, breaks)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].LessThan(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

// CreditScoreKey maps a numeric score to its adjustment band. A missing
// score resolves to the foreign-national no-score band when applicable and
// to the lowest band otherwise, so the function stays total.
func CreditScoreKey(score int, citizenship scenario.Citizenship) string {
	if score <= 0 {
		if citizenship == scenario.CitizenshipForeignNational {
			return program.CreditBandFNNoScore
		}
		return program.CreditBandBelow620
	}
	switch {
	case score >= 780:
		return program.CreditBand780Plus
	case score >= 760:
		return program.CreditBand760to779
	case score >= 740:
		return program.CreditBand740to759
	case score >= 720:
		return program.CreditBand720to739
	case score >= 700:
		return program.CreditBand700to719
	case score >= 680:
		return program.CreditBand680to699
	case score >= 660:
		return program.CreditBand660to679
	case score >= 640:
		return program.CreditBand640to659
	case score >= 620:
		return program.CreditBand620to639
	default:
		return program.CreditBandBelow620
	}
}

var loanBands = []struct {
	ceiling int64
	key     string
}{
	{50_000, program.LoanBandBelow50K},
	{100_000, program.LoanBand50Kto100K},
	{150_000, program.LoanBand100Kto150K},
	{200_000, program.LoanBand150Kto200K},
	{250_000, program.LoanBand200Kto250K},
	{500_000, program.LoanBand250Kto500K},
	{1_000_000, program.LoanBand500Kto1M},
	{1_500_000, program.LoanBand1Mto1_5M},
	{2_000_000, program.LoanBand1_5Mto2M},
	{2_500_000, program.LoanBand2Mto2_5M},
	{3_000_000, program.LoanBand2_5Mto3M},
	{4_000_000, program.LoanBand3Mto4M},
	{5_000_000, program.LoanBand4Mto5M},
}

// LoanAmountKey maps a loan amount to its adjustment band. The ladder is
// fixed; amounts above the top band map to the over-five-million key. The
// bottom band is exclusive at its ceiling: exactly 50,000 belongs to the
// $50K-$100K band.
func LoanAmountKey(amount decimal.Decimal) string {
	if amount.LessThan(decimal.NewFromInt(loanBands[0].ceiling)) {
		return loanBands[0].key
	}
	for _, band := range loanBands[1:] {
		if amount.LessThanOrEqual(decimal.NewFromInt(band.ceiling)) {
			return band.key
		}
	}
	return program.LoanBandAbove5M
}

var (
	dscr1250 = decimal.RequireFromString("1.250")
	dscr1150 = decimal.RequireFromString("1.150")
	dscr1000 = decimal.RequireFromString("1.000")
	dscr0750 = decimal.RequireFromString("0.750")
	dscr0500 = decimal.RequireFromString("0.500")
)

// DSCRRatioKey maps a debt-service coverage ratio to its adjustment band.
func DSCRRatioKey(ratio decimal.Decimal) string {
	switch {
	case ratio.GreaterThanOrEqual(dscr1250):
		return program.DSCRBand1250Plus
	case ratio.GreaterThanOrEqual(dscr1150):
		return program.DSCRBand1150to1249
	case ratio.GreaterThanOrEqual(dscr1000):
		return program.DSCRBand1000to1149
	case ratio.GreaterThanOrEqual(dscr0750):
		return program.DSCRBand0750to0999
	case ratio.GreaterThanOrEqual(dscr0500):
		return program.DSCRBand0500to0749
	default:
		return program.DSCRBandNoRatio
	}
}

// PurposeKey resolves the purpose option key. Standard programs price
// cash-out differently above and below a 720 score; DSCR programs use a
// single cash-out row.
func PurposeKey(purpose scenario.LoanPurpose, creditScore int, class program.Class) string {
	if purpose != scenario.PurposeCashOut || class == program.ClassDSCR {
		return string(purpose)
	}
	if creditScore >= 720 {
		return program.PurposeKeyCashOutHighFICO
	}
	return program.PurposeKeyCashOutLowFICO
}

func yesNo(v bool) string {
	if v {
		return program.KeyYes
	}
	return program.KeyNo
}
