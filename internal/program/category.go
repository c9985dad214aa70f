package program

// Category identifies one dimension of the adjustment table.
type Category string

const (
	CategoryCreditScore     Category = "credit_score"
	CategoryLoanAmount      Category = "loan_amount"
	CategoryLoanPurpose     Category = "loan_purpose"
	CategoryLoanProduct     Category = "loan_product"
	CategoryOccupancy       Category = "occupancy"
	CategoryPropertyType    Category = "property_type"
	CategoryCitizenship     Category = "citizenship"
	CategoryDocType         Category = "doc_type"
	CategoryDTI             Category = "dti"
	CategoryDSCRRatio       Category = "dscr_ratio"
	CategoryShortTermRental Category = "short_term_rental"
	CategoryTitleVesting    Category = "title_vesting"
	CategoryPrepayPeriod    Category = "prepay_period"
	CategoryPrepayFee       Category = "prepay_fee"
	CategoryEscrowWaiver    Category = "escrow_waiver"
	CategoryLockTerm        Category = "lock_term"
	CategoryState           Category = "state"
	CategoryCreditEvent     Category = "credit_event"
	CategoryMortgageHistory Category = "mortgage_history"
)

var categoryDisplay = map[Category]string{
	CategoryCreditScore:     "Credit Score",
	CategoryLoanAmount:      "Loan Amount",
	CategoryLoanPurpose:     "Purpose",
	CategoryLoanProduct:     "Product",
	CategoryOccupancy:       "Occupancy",
	CategoryPropertyType:    "Property Type",
	CategoryCitizenship:     "Citizenship",
	CategoryDocType:         "Doc Type",
	CategoryDTI:             "DTI",
	CategoryDSCRRatio:       "DSCR Ratio",
	CategoryShortTermRental: "Short Term Rental",
	CategoryTitleVesting:    "Title Vesting",
	CategoryPrepayPeriod:    "Prepay Period",
	CategoryPrepayFee:       "Prepay Fee",
	CategoryEscrowWaiver:    "Escrow Waiver",
	CategoryLockTerm:        "Lock Term",
	CategoryState:           "State",
	CategoryCreditEvent:     "Credit Event",
	CategoryMortgageHistory: "Mortgage History",
}

// Display returns the human-readable category name used in rate breakdowns.
func (c Category) Display() string {
	if name, ok := categoryDisplay[c]; ok {
		return name
	}
	return string(c)
}

// Known reports whether the category is part of the master key.
func (c Category) Known() bool {
	_, ok := categoryDisplay[c]
	return ok
}
