package scenario

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNormalizeForeignNationalCascade(t *testing.T) {
	s := LoanScenario{
		Citizenship: CitizenshipForeignNational,
		Occupancy:   OccupancyPrimary,
		DocType:     DocFullDoc2yr,
	}

	out, err := Normalize(s)
	require.NoError(t, err)
	require.Equal(t, OccupancyInvestment, out.Occupancy)
	require.Equal(t, DocDSCR, out.DocType)

	// input untouched
	require.Equal(t, OccupancyPrimary, s.Occupancy)
	require.Equal(t, DocFullDoc2yr, s.DocType)
}

func TestNormalizeDSCRForcesInvestment(t *testing.T) {
	out, err := Normalize(LoanScenario{
		Citizenship: CitizenshipUSCitizen,
		Occupancy:   OccupancyPrimary,
		DocType:     DocDSCR,
	})
	require.NoError(t, err)
	require.Equal(t, OccupancyInvestment, out.Occupancy)
}

func TestNormalizeIdempotent(t *testing.T) {
	first, err := Normalize(LoanScenario{
		Citizenship: CitizenshipForeignNational,
		Occupancy:   OccupancySecondHome,
		DocType:     DocBankStmts12m,
	})
	require.NoError(t, err)

	second, err := Normalize(first)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestNormalizeFTHBSecondHomeRejected(t *testing.T) {
	_, err := Normalize(LoanScenario{
		Citizenship:    CitizenshipUSCitizen,
		Occupancy:      OccupancySecondHome,
		DocType:        DocFullDoc2yr,
		FirstTimeBuyer: true,
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, RuleIncompatibleSelection, vErr.Rule)
}

func TestNormalizeFTHBInvestorDSCRFloor(t *testing.T) {
	base := LoanScenario{
		Citizenship:    CitizenshipUSCitizen,
		Occupancy:      OccupancyInvestment,
		DocType:        DocDSCR,
		FirstTimeBuyer: true,
	}

	t.Run("below floor rejected", func(t *testing.T) {
		s := base
		s.DSCRRatio = decimal.RequireFromString("0.900")
		_, err := Normalize(s)
		require.Error(t, err)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		require.Equal(t, RuleFTHBInvestorDSCRFloor, vErr.Rule)
	})

	t.Run("at floor allowed", func(t *testing.T) {
		s := base
		s.DSCRRatio = decimal.RequireFromString("1.150")
		_, err := Normalize(s)
		require.NoError(t, err)
	})

	t.Run("missing ratio allowed", func(t *testing.T) {
		// A zero ratio means not yet entered; the floor only applies once a
		// ratio exists.
		_, err := Normalize(base)
		require.NoError(t, err)
	})
}

func TestNormalizeCascadeTriggersFloorCheck(t *testing.T) {
	// Foreign National flips the scenario to Investment+DSCR, which must then
	// hit the first-time-buyer floor on a later pass.
	_, err := Normalize(LoanScenario{
		Citizenship:    CitizenshipForeignNational,
		Occupancy:      OccupancyPrimary,
		DocType:        DocFullDoc2yr,
		FirstTimeBuyer: true,
		DSCRRatio:      decimal.RequireFromString("1.000"),
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, RuleFTHBInvestorDSCRFloor, vErr.Rule)
}
