package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

const testBucket = "65.01-70.00%"

func aggregateScenario() scenario.LoanScenario {
	return scenario.LoanScenario{
		Citizenship:  scenario.CitizenshipUSCitizen,
		Occupancy:    scenario.OccupancyPrimary,
		DocType:      scenario.DocFullDoc2yr,
		CreditScore:  780,
		LoanAmount:   d("300000"),
		LoanPurpose:  scenario.PurposePurchase,
		LoanProduct:  scenario.ProductFixed30,
		PropertyType: scenario.PropertySFR,
		State:        "TX",
	}
}

func aggregateProgram(table program.AdjustmentTable) program.Program {
	return program.Program{
		ID:    "test",
		Class: program.ClassStandard,
		Table: table,
	}
}

func TestAggregateSumsPresentCells(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryCreditScore, program.CreditBand780Plus, testBucket, program.ValueFloat(-0.5))
	table.Set(program.CategoryLoanAmount, program.LoanBand250Kto500K, testBucket, program.ValueFloat(0.25))
	table.Set(program.CategoryState, "TX", testBucket, program.ValueFloat(0.125))

	result, err := aggregate(aggregateScenario(), aggregateProgram(table), testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.Equal(d("-0.125")), result.Total.String())

	// hard-stop categories with no cell still show up as zero lines; the
	// state line only appears because its cell exists
	byCategory := map[program.Category]decimal.Decimal{}
	for _, adj := range result.Adjustments {
		byCategory[adj.Category] = adj.Value
	}
	require.True(t, byCategory[program.CategoryCreditScore].Equal(d("-0.5")))
	require.True(t, byCategory[program.CategoryLoanAmount].Equal(d("0.25")))
	require.True(t, byCategory[program.CategoryState].Equal(d("0.125")))
	require.True(t, byCategory[program.CategoryLoanPurpose].IsZero())
	require.Contains(t, byCategory, program.CategoryOccupancy)
}

func TestAggregateAbsentSkipCategoryDropped(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryCreditScore, program.CreditBand780Plus, testBucket, program.ValueFloat(0))

	result, err := aggregate(aggregateScenario(), aggregateProgram(table), testBucket, DefaultOverlays())
	require.NoError(t, err)

	for _, adj := range result.Adjustments {
		require.NotEqual(t, program.CategoryState, adj.Category)
		require.NotEqual(t, program.CategoryCitizenship, adj.Category)
	}
}

func TestAggregateIneligibleHardStop(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryCreditScore, program.CreditBand780Plus, testBucket, program.ValueFloat(-0.5))
	table.Set(program.CategoryLoanAmount, program.LoanBand250Kto500K, testBucket, program.ValueFloat(0.25))
	table.Set(program.CategoryPropertyType, string(scenario.PropertySFR), testBucket, program.Ineligible())

	result, err := aggregate(aggregateScenario(), aggregateProgram(table), testBucket, DefaultOverlays())
	require.Error(t, err)

	var ineligible *IneligibleCombinationError
	require.True(t, errors.As(err, &ineligible))
	require.Equal(t, program.CategoryPropertyType, ineligible.Category)

	// only the entries recorded before the failing category survive
	require.True(t, result.Total.Equal(d("-0.25")), result.Total.String())
	for _, adj := range result.Adjustments {
		require.NotEqual(t, program.CategoryPropertyType, adj.Category)
	}
}

func TestAggregateIneligibleSkipCategorySilentlyDropped(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryDTI, string(scenario.DTIUpTo43), testBucket, program.Ineligible())

	s := aggregateScenario()
	s.DTI = scenario.DTIUpTo43

	result, err := aggregate(s, aggregateProgram(table), testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.IsZero())
	for _, adj := range result.Adjustments {
		require.NotEqual(t, program.CategoryDTI, adj.Category)
	}
}

func TestAggregateTitleVesting(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryTitleVesting, string(scenario.VestingEntity), testBucket, program.ValueFloat(-0.25))

	s := aggregateScenario()
	s.DocType = scenario.DocDSCR
	s.TitleVesting = scenario.VestingEntity

	p := aggregateProgram(table)
	p.Class = program.ClassDSCR

	result, err := aggregate(s, p, testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.Equal(d("-0.25")), result.Total.String())

	// vesting rows hard-stop on an ineligible cell
	table.Set(program.CategoryTitleVesting, string(scenario.VestingEntity), testBucket, program.Ineligible())
	_, err = aggregate(s, p, testBucket, DefaultOverlays())

	var ineligible *IneligibleCombinationError
	require.True(t, errors.As(err, &ineligible))
	require.Equal(t, program.CategoryTitleVesting, ineligible.Category)
}

func TestAggregateOverlaySuppression(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryPrepayPeriod, string(scenario.Prepay3yr), testBucket, program.ValueFloat(-1.0))
	table.Set(program.CategoryCreditEvent, string(scenario.EventNone48), testBucket, program.ValueFloat(-2.0))

	s := aggregateScenario()
	s.PrepayPeriod = scenario.Prepay3yr
	s.CreditEvent = scenario.EventNone48

	// primary occupancy and no adverse credit: both categories suppressed
	result, err := aggregate(s, aggregateProgram(table), testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.IsZero(), result.Total.String())

	// investment occupancy re-enables prepay
	s.Occupancy = scenario.OccupancyInvestment
	result, err = aggregate(s, aggregateProgram(table), testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.Equal(d("-1.0")), result.Total.String())

	// adverse credit re-enables the credit detail rows
	s.AdverseCredit = true
	result, err = aggregate(s, aggregateProgram(table), testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.Equal(d("-3.0")), result.Total.String())
}

func TestAggregateOverrideReplacesBaseCell(t *testing.T) {
	table := program.AdjustmentTable{}
	table.Set(program.CategoryCreditScore, program.CreditBand780Plus, testBucket, program.ValueFloat(-0.5))

	overrides := program.AdjustmentTable{}
	overrides.Set(program.CategoryCreditScore, program.CreditBand780Plus, testBucket, program.ValueFloat(0.75))

	p := aggregateProgram(table)
	p.Overrides = overrides

	result, err := aggregate(aggregateScenario(), p, testBucket, DefaultOverlays())
	require.NoError(t, err)
	require.True(t, result.Total.Equal(d("0.75")), result.Total.String())
}
