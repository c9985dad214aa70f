package program

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAdjustmentJSONRoundTrip(t *testing.T) {
	grid := OptionGrid{
		"≤50.00%":      ValueFloat(-0.25),
		"50.01-55.00%": Ineligible(),
		"55.01-60.00%": Value(decimal.Zero),
	}

	data, err := json.Marshal(grid)
	require.NoError(t, err)

	var decoded OptionGrid
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 3)

	require.False(t, decoded["≤50.00%"].IsIneligible())
	require.True(t, decoded["≤50.00%"].Amount().Equal(decimal.RequireFromString("-0.25")))

	require.True(t, decoded["50.01-55.00%"].IsIneligible())
	require.True(t, decoded["50.01-55.00%"].Amount().IsZero())

	require.False(t, decoded["55.01-60.00%"].IsIneligible())
	require.True(t, decoded["55.01-60.00%"].Amount().IsZero())

	// a bucket that was never written stays absent
	_, present := decoded["60.01-65.00%"]
	require.False(t, present)
}

func TestAdjustmentIneligibleMarshalsAsNull(t *testing.T) {
	data, err := json.Marshal(Ineligible())
	require.NoError(t, err)
	require.Equal(t, "null", string(data))

	var adj Adjustment
	require.NoError(t, json.Unmarshal([]byte("null"), &adj))
	require.True(t, adj.IsIneligible())

	require.NoError(t, json.Unmarshal([]byte(`"-1.5"`), &adj))
	require.False(t, adj.IsIneligible())
	require.True(t, adj.Amount().Equal(decimal.RequireFromString("-1.5")))
}

func TestTableLookupAndSet(t *testing.T) {
	table := AdjustmentTable{}
	table.Set(CategoryCreditScore, CreditBand780Plus, "≤50.00%", ValueFloat(-0.125))

	adj, ok := table.Lookup(CategoryCreditScore, CreditBand780Plus, "≤50.00%")
	require.True(t, ok)
	require.True(t, adj.Amount().Equal(decimal.RequireFromString("-0.125")))

	_, ok = table.Lookup(CategoryCreditScore, CreditBand780Plus, "50.01-55.00%")
	require.False(t, ok)
	_, ok = table.Lookup(CategoryLoanAmount, LoanBandBelow50K, "≤50.00%")
	require.False(t, ok)
}

func TestProgramOverrideFullyReplacesCell(t *testing.T) {
	p := Program{Table: AdjustmentTable{}, Overrides: AdjustmentTable{}}
	p.Table.Set(CategoryOccupancy, "Investment", "≤50.00%", ValueFloat(0.5))
	p.Table.Set(CategoryOccupancy, "Investment", "50.01-55.00%", ValueFloat(0.5))
	p.Overrides.Set(CategoryOccupancy, "Investment", "≤50.00%", Ineligible())

	adj, ok := p.Lookup(CategoryOccupancy, "Investment", "≤50.00%")
	require.True(t, ok)
	require.True(t, adj.IsIneligible())

	// coordinates without an override fall through to the base table
	adj, ok = p.Lookup(CategoryOccupancy, "Investment", "50.01-55.00%")
	require.True(t, ok)
	require.False(t, adj.IsIneligible())
	require.True(t, adj.Amount().Equal(decimal.RequireFromString("0.5")))
}

func TestProgramAllowsState(t *testing.T) {
	p := Program{Settings: Settings{AllowedStates: []string{"TX", "FL"}}}
	require.True(t, p.AllowsState("TX"))
	require.False(t, p.AllowsState("NY"))

	open := Program{}
	require.True(t, open.AllowsState("NY"))
}
