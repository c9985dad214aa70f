package program

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLabelsForDefaultBreaks(t *testing.T) {
	labels := LabelsForBreaks(DefaultLTVBreaks())
	require.Equal(t, []string{
		"≤50.00%",
		"50.01-55.00%",
		"55.01-60.00%",
		"60.01-65.00%",
		"65.01-70.00%",
		"70.01-75.00%",
		"75.01-80.00%",
		"80.01-85.00%",
		"85.01-90.00%",
	}, labels)
}

func TestLabelsForCustomBreaks(t *testing.T) {
	breaks := []decimal.Decimal{
		decimal.NewFromInt(60),
		decimal.NewFromInt(70),
		decimal.NewFromInt(80),
	}
	require.Equal(t, []string{"≤60.00%", "60.01-70.00%", "70.01-80.00%"}, LabelsForBreaks(breaks))
}

func TestLabelsSortUnorderedBreaks(t *testing.T) {
	breaks := []decimal.Decimal{
		decimal.NewFromInt(80),
		decimal.NewFromInt(60),
		decimal.NewFromInt(70),
	}
	require.Equal(t, []string{"≤60.00%", "60.01-70.00%", "70.01-80.00%"}, LabelsForBreaks(breaks))
}

func TestDefaultTableCoversAllBuckets(t *testing.T) {
	labels := LabelsForBreaks(DefaultLTVBreaks())
	table := DefaultTable()

	for cat, options := range table {
		for option, grid := range options {
			require.Len(t, grid, len(labels), "%s/%s", cat, option)
		}
	}
}

func TestDefaultProgramsWellFormed(t *testing.T) {
	programs := DefaultPrograms()
	require.Len(t, programs, 4)

	seen := map[string]bool{}
	for _, p := range programs {
		require.NotEmpty(t, p.ID)
		require.True(t, p.Active)
		require.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true

		require.True(t, p.MarginHoldback.Equal(decimal.NewFromFloat(DefaultMarginHoldback)))
		for i := 1; i < len(p.BaseRates); i++ {
			require.True(t, p.BaseRates[i].Rate.GreaterThan(p.BaseRates[i-1].Rate), p.ID)
		}
	}

	// fresh copies per call
	again := DefaultPrograms()
	again[0].Active = false
	require.True(t, DefaultPrograms()[0].Active)
}
