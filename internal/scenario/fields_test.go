package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCitizenship(t *testing.T) {
	cases := map[string]Citizenship{
		"US Citizen":        CitizenshipUSCitizen,
		"us":                CitizenshipUSCitizen,
		"Foreign National":  CitizenshipForeignNational,
		"fn":                CitizenshipForeignNational,
		"Perm-Resident":     CitizenshipPermResident,
		"Non-Perm Resident": CitizenshipNonPermResident,
		"ITIN":              CitizenshipITIN,
	}
	for in, want := range cases {
		got, err := ParseCitizenship(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseCitizenship("martian")
	require.Error(t, err)
}

func TestParseOccupancy(t *testing.T) {
	cases := map[string]Occupancy{
		"Primary":        OccupancyPrimary,
		"owner occupied": OccupancyPrimary,
		"2nd home":       OccupancySecondHome,
		"Investment":     OccupancyInvestment,
		"investor":       OccupancyInvestment,
	}
	for in, want := range cases {
		got, err := ParseOccupancy(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseDocType(t *testing.T) {
	cases := map[string]DocType{
		"DSCR":                    DocDSCR,
		"2yr Full Doc":            DocFullDoc2yr,
		"1yr Full Doc":            DocFullDoc1yr,
		"12m Bank Stmts":          DocBankStmts12m,
		"24m Bank Stmts":          DocBankStmts24m,
		"Asset Depletion":         DocAssetDepletion,
		"1yr 1099 Only":           Doc1099Only1yr,
		"1yr WVOE Only":           DocWVOEOnly1yr,
		"1yr P&L Only":            DocPLOnly1yr,
		"1yr P&L w/2m Bank Stmts": DocPLBankStmts1yr,
	}
	for in, want := range cases {
		got, err := ParseDocType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseLoanProduct(t *testing.T) {
	cases := map[string]LoanProduct{
		"30yr Fixed":           ProductFixed30,
		"40yr Fixed":           ProductFixed40,
		"15yr Fixed":           ProductFixed15,
		"Interest-Only (30yr)": ProductIO30,
		"Interest-Only (40yr)": ProductIO40,
		"5/6 ARM":              ProductARM56,
		"7/6 ARM":              ProductARM76,
	}
	for in, want := range cases {
		got, err := ParseLoanProduct(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParsePropertyType(t *testing.T) {
	cases := map[string]PropertyType{
		"SFR":                     PropertySFR,
		"single family":           PropertySFR,
		"Condo":                   PropertyCondo,
		"Condo (Non-Warrantable)": PropertyCondoNonWarrant,
		"Condotel":                PropertyCondotel,
		"2-4 Unit":                PropertyTwoToFourUnit,
		"2-8 Unit Mixed Use":      PropertyMixedUse2to8,
	}
	for in, want := range cases {
		got, err := ParsePropertyType(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseTitleVesting(t *testing.T) {
	cases := map[string]TitleVesting{
		"Individual":     VestingIndividual,
		"personal":       VestingIndividual,
		"LLC/Corp/Other": VestingEntity,
		"llc":            VestingEntity,
		"corporation":    VestingEntity,
	}
	for in, want := range cases {
		got, err := ParseTitleVesting(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseTitleVesting("joint")
	require.Error(t, err)
}

func TestParseCreditScore(t *testing.T) {
	score, err := ParseCreditScore("742")
	require.NoError(t, err)
	require.Equal(t, 742, score)

	score, err = ParseCreditScore("760-779")
	require.NoError(t, err)
	require.Equal(t, 760, score)

	_, err = ParseCreditScore("none")
	require.Error(t, err)
}
