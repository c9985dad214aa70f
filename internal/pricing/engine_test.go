package pricing

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

func testEngine() *Engine {
	return New(Options{}, zerolog.Nop())
}

func cleanScenario() scenario.LoanScenario {
	return scenario.LoanScenario{
		Citizenship:   scenario.CitizenshipUSCitizen,
		Occupancy:     scenario.OccupancyPrimary,
		DocType:       scenario.DocFullDoc2yr,
		CreditScore:   740,
		PurchasePrice: d("800000"),
		LoanAmount:    d("560000"),
		LoanPurpose:   scenario.PurposePurchase,
		LoanProduct:   scenario.ProductFixed30,
		PropertyType:  scenario.PropertySFR,
		DTI:           scenario.DTIUpTo43,
		LockTerm:      scenario.Lock30Day,
		State:         "TX",
	}
}

func TestCalculateStandardScenario(t *testing.T) {
	result := testEngine().Calculate(cleanScenario(), program.DefaultPrograms())
	require.False(t, result.Failed(), result.Reason())

	require.Equal(t, "nonqm-c", result.ProgramID)
	require.True(t, result.LTV.Equal(d("70.00")), result.LTV.String())
	require.Equal(t, "65.01-70.00%", result.LTVBucket)
	require.True(t, result.LLPATotal.IsZero(), result.LLPATotal.String())

	// margin -1.625 puts base prices 100.625 through 102.625 in the band
	require.Len(t, result.Rates, 4)
	require.NotNil(t, result.Par)
	require.True(t, result.Par.Rate.Equal(d("6.625")), result.Par.Rate.String())
	require.True(t, result.Par.FinalPrice.Equal(d("99.913")), result.Par.FinalPrice.String())
}

func TestCalculateMinimumLoanAmount(t *testing.T) {
	s := cleanScenario()
	s.LoanAmount = d("50000")
	s.PurchasePrice = d("100000")

	result := testEngine().Calculate(s, program.DefaultPrograms())
	require.False(t, result.Failed(), result.Reason())
	require.Equal(t, "≤50.00%", result.LTVBucket)
	require.NotEmpty(t, result.Rates)
}

func TestCalculateRoutesDSCR(t *testing.T) {
	s := cleanScenario()
	s.DocType = scenario.DocDSCR
	s.DSCRRatio = d("1.300")
	s.LoanAmount = d("300000")
	s.PurchasePrice = d("500000")

	result := testEngine().Calculate(s, program.DefaultPrograms())
	require.False(t, result.Failed(), result.Reason())
	require.Equal(t, "dscr-a", result.ProgramID)
	require.NotEmpty(t, result.Rates)
}

func TestCalculateValidationFailure(t *testing.T) {
	s := cleanScenario()
	s.Occupancy = scenario.OccupancySecondHome
	s.FirstTimeBuyer = true

	result := testEngine().Calculate(s, program.DefaultPrograms())
	require.True(t, result.Failed())

	var vErr *scenario.ValidationError
	require.True(t, errors.As(result.Err, &vErr))
	require.Empty(t, result.Rates)
}

func TestCalculateLTVOutOfBounds(t *testing.T) {
	s := cleanScenario()
	s.LoanAmount = d("950000")
	s.PurchasePrice = d("1000000")

	result := testEngine().Calculate(s, program.DefaultPrograms())
	require.True(t, result.Failed())

	var oob *LTVOutOfBoundsError
	require.True(t, errors.As(result.Err, &oob))
	require.True(t, oob.LTV.Equal(d("95.00")))
}

func TestCalculateZeroPropertyValue(t *testing.T) {
	s := cleanScenario()
	s.PurchasePrice = d("0")

	result := testEngine().Calculate(s, program.DefaultPrograms())
	require.True(t, result.Failed())

	var oob *LTVOutOfBoundsError
	require.True(t, errors.As(result.Err, &oob))
	require.Equal(t, BucketNotApplicable, oob.Bucket)
	require.Contains(t, result.Reason(), "property value is zero")
}

func TestCalculateIneligibleCombination(t *testing.T) {
	s := cleanScenario()
	s.CreditScore = 600 // blocked on every sheet

	result := testEngine().Calculate(s, program.DefaultPrograms())
	require.True(t, result.Failed())

	var ineligible *IneligibleCombinationError
	require.True(t, errors.As(result.Err, &ineligible))
	require.Equal(t, program.CategoryCreditScore, ineligible.Category)
	require.Empty(t, result.Rates)
}

func TestCalculateNoActiveProgram(t *testing.T) {
	programs := program.DefaultPrograms()
	for i := range programs {
		if programs[i].Class == program.ClassStandard {
			programs[i].Active = false
		}
	}

	result := testEngine().Calculate(cleanScenario(), program.DefaultPrograms()[:0])
	require.True(t, result.Failed())

	result = testEngine().Calculate(cleanScenario(), programs)
	require.True(t, result.Failed())

	var napErr *NoActiveProgramError
	require.True(t, errors.As(result.Err, &napErr))
	require.Equal(t, program.ClassStandard, napErr.Class)
}

func TestCalculateEmptyBandIsNotFailure(t *testing.T) {
	programs := []program.Program{{
		ID:     "thin",
		Name:   "Thin",
		Class:  program.ClassStandard,
		Tier:   program.TierStandard,
		Active: true,
		// margin drags the single tier far below the band
		MarginHoldback: d("-10"),
		LTVBreaks:      program.DefaultLTVBreaks(),
		BaseRates:      []program.BaseRate{{Rate: d("6.000"), Price: d("100.000")}},
		Table:          program.DefaultTable(),
	}}

	result := testEngine().Calculate(cleanScenario(), programs)
	require.False(t, result.Failed(), result.Reason())
	require.Empty(t, result.Rates)
	require.Nil(t, result.Par)
	require.Len(t, result.AllRates, 1)
}
