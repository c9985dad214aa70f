package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// Citizenship classifies the borrower's residency status.
type Citizenship string

const (
	CitizenshipUSCitizen       Citizenship = "US Citizen"
	CitizenshipPermResident    Citizenship = "Perm-Resident"
	CitizenshipNonPermResident Citizenship = "Non-Perm Resident"
	CitizenshipForeignNational Citizenship = "Foreign National"
	CitizenshipITIN            Citizenship = "ITIN"
)

// Occupancy is the intended use of the subject property.
type Occupancy string

const (
	OccupancyPrimary    Occupancy = "Primary"
	OccupancySecondHome Occupancy = "Second Home"
	OccupancyInvestment Occupancy = "Investment"
)

// DocType is the income documentation path.
type DocType string

const (
	DocFullDoc2yr     DocType = "2yr Full Doc"
	DocFullDoc1yr     DocType = "1yr Full Doc"
	DocDSCR           DocType = "DSCR"
	DocBankStmts12m   DocType = "12m Bank Stmts"
	DocBankStmts24m   DocType = "24m Bank Stmts"
	DocAssetDepletion DocType = "Asset Depletion"
	DocPLOnly1yr      DocType = "1yr P&L Only"
	DocPLBankStmts1yr DocType = "1yr P&L w/2m Bank Stmts"
	Doc1099Only1yr    DocType = "1yr 1099 Only"
	DocWVOEOnly1yr    DocType = "1yr WVOE Only"
)

// LienType distinguishes first and second lien positions.
type LienType string

const (
	LienFirst  LienType = "First"
	LienSecond LienType = "Second"
)

// LoanPurpose is the transaction purpose.
type LoanPurpose string

const (
	PurposePurchase LoanPurpose = "Purchase"
	PurposeRateTerm LoanPurpose = "Rate/Term"
	PurposeCashOut  LoanPurpose = "Cash-Out"
)

// LoanProduct is the amortization product.
type LoanProduct string

const (
	ProductFixed30 LoanProduct = "30yr Fixed"
	ProductFixed40 LoanProduct = "40yr Fixed"
	ProductFixed15 LoanProduct = "15yr Fixed"
	ProductIO30    LoanProduct = "Interest-Only (30yr)"
	ProductIO40    LoanProduct = "Interest-Only (40yr)"
	ProductARM56   LoanProduct = "5/6 ARM"
	ProductARM76   LoanProduct = "7/6 ARM"
	ProductARM106  LoanProduct = "10/6 ARM"
)

// PropertyType is the collateral property classification.
type PropertyType string

const (
	PropertySFR                PropertyType = "SFR"
	PropertyPUD                PropertyType = "PUD/Town Home"
	PropertyCondo              PropertyType = "Condo"
	PropertyCondoNonWarrant    PropertyType = "Condo (Non-Warrantable)"
	PropertyCondotel           PropertyType = "Condotel"
	PropertyTwoUnit            PropertyType = "2 Unit"
	PropertyTwoToFourUnit      PropertyType = "2-4 Unit"
	PropertyThreeToFourUnit    PropertyType = "3-4 Unit"
	PropertyMixedUse2to8       PropertyType = "2-8 Unit Mixed Use"
	PropertyMixedUse9to10      PropertyType = "9-10 Unit Mixed Use"
	PropertyResidential5to9    PropertyType = "5-9 Unit Residential"
	PropertyBlanket            PropertyType = "Blanket/Cross Collateral"
	PropertySmallBalCommercial PropertyType = "Small Balance Commercial"
)

// DTIBand is the debt-to-income band selected at entry.
type DTIBand string

const (
	DTIUpTo43 DTIBand = "≤43%"
	DTI43to50 DTIBand = "43.01-50%"
	DTI50to55 DTIBand = "50.01-55%"
)

// PrepayPeriod is the prepayment penalty period (investment loans).
type PrepayPeriod string

const (
	PrepayNone PrepayPeriod = "0-No Prepay"
	Prepay1yr  PrepayPeriod = "1yr"
	Prepay2yr  PrepayPeriod = "2yr"
	Prepay3yr  PrepayPeriod = "3yr"
	Prepay4yr  PrepayPeriod = "4yr"
	Prepay5yr  PrepayPeriod = "5yr"
)

// PrepayFee is the prepayment penalty structure.
type PrepayFee string

const (
	FeeStandard5   PrepayFee = "5% Standard"
	Fee6MoInterest PrepayFee = "6 Mo Interest"
	FeeDeclining   PrepayFee = "Declining"
)

// LockTerm is the rate lock duration.
type LockTerm string

const (
	Lock15Day LockTerm = "15 Day"
	Lock30Day LockTerm = "30 Day"
	Lock45Day LockTerm = "45 Day"
)

// TitleVesting is how title is held on DSCR loans.
type TitleVesting string

const (
	VestingIndividual TitleVesting = "Individual"
	VestingEntity     TitleVesting = "LLC/Corp/Other"
)

// CreditEvent is the seasoning of the most recent foreclosure, bankruptcy,
// short sale, or deed-in-lieu.
type CreditEvent string

const (
	EventNone48   CreditEvent = "≥48m/None"
	Event36to47   CreditEvent = "36m-47m"
	Event24to35   CreditEvent = "24m-35m"
	Event12to23   CreditEvent = "12m-23m"
	EventUnder12m CreditEvent = "≤11m"
)

// MortgageHistory is the recent mortgage payment history pattern.
type MortgageHistory string

const (
	Mtg0x30x24 MortgageHistory = "0x30x24"
	Mtg1x30x12 MortgageHistory = "1x30x12"
	Mtg2x30x12 MortgageHistory = "2x30x12"
	Mtg3x30x12 MortgageHistory = "3x30x12"
	Mtg1x60x12 MortgageHistory = "1x60x12"
	Mtg2x60x12 MortgageHistory = "≥2x60x12"
	Mtg1x90x24 MortgageHistory = "≥1x90x24"
)

// ParseCitizenship resolves free-form citizenship text to the closed set.
func ParseCitizenship(v string) (Citizenship, error) {
	switch normalized := normalize(v); {
	case strings.Contains(normalized, "foreign"), normalized == "fn":
		return CitizenshipForeignNational, nil
	case strings.Contains(normalized, "non-perm"), strings.Contains(normalized, "non perm"):
		return CitizenshipNonPermResident, nil
	case strings.Contains(normalized, "perm"):
		return CitizenshipPermResident, nil
	case strings.Contains(normalized, "itin"):
		return CitizenshipITIN, nil
	case strings.Contains(normalized, "citizen"), normalized == "us":
		return CitizenshipUSCitizen, nil
	}
	return "", fmt.Errorf("unknown citizenship %q", v)
}

// ParseOccupancy resolves occupancy text to the closed set.
func ParseOccupancy(v string) (Occupancy, error) {
	switch normalized := normalize(v); {
	case strings.Contains(normalized, "invest"):
		return OccupancyInvestment, nil
	case strings.Contains(normalized, "second"), strings.Contains(normalized, "2nd"):
		return OccupancySecondHome, nil
	case strings.Contains(normalized, "primary"), strings.Contains(normalized, "owner"):
		return OccupancyPrimary, nil
	}
	return "", fmt.Errorf("unknown occupancy %q", v)
}

// ParseDocType resolves documentation text to the closed set.
func ParseDocType(v string) (DocType, error) {
	normalized := normalize(v)
	switch {
	case strings.Contains(normalized, "dscr"):
		return DocDSCR, nil
	case strings.Contains(normalized, "1099"):
		return Doc1099Only1yr, nil
	case strings.Contains(normalized, "wvoe"):
		return DocWVOEOnly1yr, nil
	case strings.Contains(normalized, "asset"):
		return DocAssetDepletion, nil
	case strings.Contains(normalized, "24m") && strings.Contains(normalized, "bank"):
		return DocBankStmts24m, nil
	case strings.Contains(normalized, "bank") && strings.Contains(normalized, "p&l"):
		return DocPLBankStmts1yr, nil
	case strings.Contains(normalized, "bank"):
		return DocBankStmts12m, nil
	case strings.Contains(normalized, "p&l"):
		return DocPLOnly1yr, nil
	case strings.Contains(normalized, "2yr"), strings.Contains(normalized, "2 yr"):
		return DocFullDoc2yr, nil
	case strings.Contains(normalized, "full"):
		return DocFullDoc1yr, nil
	}
	return "", fmt.Errorf("unknown doc type %q", v)
}

// ParseLoanProduct resolves product text to the closed set.
func ParseLoanProduct(v string) (LoanProduct, error) {
	normalized := normalize(v)
	switch {
	case strings.Contains(normalized, "interest") && strings.Contains(normalized, "40"):
		return ProductIO40, nil
	case strings.Contains(normalized, "interest"):
		return ProductIO30, nil
	case strings.Contains(normalized, "5/6"):
		return ProductARM56, nil
	case strings.Contains(normalized, "7/6"):
		return ProductARM76, nil
	case strings.Contains(normalized, "10/6"):
		return ProductARM106, nil
	case strings.Contains(normalized, "15"):
		return ProductFixed15, nil
	case strings.Contains(normalized, "40"):
		return ProductFixed40, nil
	case strings.Contains(normalized, "30"):
		return ProductFixed30, nil
	}
	return "", fmt.Errorf("unknown loan product %q", v)
}

// ParsePropertyType resolves property text to the closed set.
func ParsePropertyType(v string) (PropertyType, error) {
	normalized := normalize(v)
	switch {
	case strings.Contains(normalized, "sfr"), strings.Contains(normalized, "single"):
		return PropertySFR, nil
	case strings.Contains(normalized, "pud"), strings.Contains(normalized, "town"):
		return PropertyPUD, nil
	case strings.Contains(normalized, "condotel"):
		return PropertyCondotel, nil
	case strings.Contains(normalized, "non-warrant"), strings.Contains(normalized, "non warrant"):
		return PropertyCondoNonWarrant, nil
	case strings.Contains(normalized, "condo"):
		return PropertyCondo, nil
	case strings.Contains(normalized, "2-8"):
		return PropertyMixedUse2to8, nil
	case strings.Contains(normalized, "9-10"):
		return PropertyMixedUse9to10, nil
	case strings.Contains(normalized, "5-9"):
		return PropertyResidential5to9, nil
	case strings.Contains(normalized, "blanket"), strings.Contains(normalized, "cross"):
		return PropertyBlanket, nil
	case strings.Contains(normalized, "commercial"):
		return PropertySmallBalCommercial, nil
	case strings.Contains(normalized, "3-4"):
		return PropertyThreeToFourUnit, nil
	case strings.Contains(normalized, "2-4"):
		return PropertyTwoToFourUnit, nil
	case strings.Contains(normalized, "2 unit"), strings.Contains(normalized, "2unit"):
		return PropertyTwoUnit, nil
	}
	return "", fmt.Errorf("unknown property type %q", v)
}

// ParsePrepayPeriod resolves prepay period text to the closed set.
func ParsePrepayPeriod(v string) (PrepayPeriod, error) {
	normalized := normalize(v)
	switch {
	case strings.Contains(normalized, "no"), strings.Contains(normalized, "0"):
		return PrepayNone, nil
	case strings.Contains(normalized, "1"):
		return Prepay1yr, nil
	case strings.Contains(normalized, "2"):
		return Prepay2yr, nil
	case strings.Contains(normalized, "3"):
		return Prepay3yr, nil
	case strings.Contains(normalized, "4"):
		return Prepay4yr, nil
	case strings.Contains(normalized, "5"):
		return Prepay5yr, nil
	}
	return "", fmt.Errorf("unknown prepay period %q", v)
}

// ParsePrepayFee resolves prepay fee text to the closed set.
func ParsePrepayFee(v string) (PrepayFee, error) {
	normalized := normalize(v)
	switch {
	case strings.Contains(normalized, "5%"), strings.Contains(normalized, "standard"):
		return FeeStandard5, nil
	case strings.Contains(normalized, "6 mo"), strings.Contains(normalized, "interest"):
		return Fee6MoInterest, nil
	case strings.Contains(normalized, "declin"):
		return FeeDeclining, nil
	}
	return "", fmt.Errorf("unknown prepay fee %q", v)
}

// ParseTitleVesting resolves title vesting text to the closed set.
func ParseTitleVesting(v string) (TitleVesting, error) {
	normalized := normalize(v)
	switch {
	case strings.Contains(normalized, "llc"), strings.Contains(normalized, "corp"),
		strings.Contains(normalized, "entity"), strings.Contains(normalized, "trust"):
		return VestingEntity, nil
	case strings.Contains(normalized, "individ"), strings.Contains(normalized, "personal"):
		return VestingIndividual, nil
	}
	return "", fmt.Errorf("unknown title vesting %q", v)
}

// ParseCreditScore accepts either a numeric score or a band label such as
// "760-779" and resolves it to a representative numeric score.
func ParseCreditScore(v string) (int, error) {
	trimmed := strings.TrimSpace(v)
	if score, err := strconv.Atoi(trimmed); err == nil {
		return score, nil
	}
	digits := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(digits) == 0 {
		return 0, fmt.Errorf("unparseable credit score %q", v)
	}
	score, err := strconv.Atoi(digits[0])
	if err != nil {
		return 0, fmt.Errorf("unparseable credit score %q", v)
	}
	return score, nil
}

func normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
