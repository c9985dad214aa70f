package pricing

import (
	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

// ineligiblePolicy decides what an explicit ineligible cell means for a
// category: a hard stop for the whole aggregation, or a silent drop. Which
// categories hard-stop is part of the rate sheet contract, so the assignment
// lives here rather than in data.
type ineligiblePolicy int

const (
	// failOnIneligible categories abort pricing when their cell carries the
	// ineligible marker; a missing cell still counts as zero.
	failOnIneligible ineligiblePolicy = iota
	// skipOnIneligible categories contribute only when an eligible cell is
	// present; ineligible or missing cells drop the category from the
	// breakdown without failing.
	skipOnIneligible
)

type categorySpec struct {
	cat    program.Category
	policy ineligiblePolicy
	key    func(s scenario.LoanScenario) string
}

// standardCategories is the category walk for standard (non-DSCR) programs,
// in breakdown order.
func standardCategories() []categorySpec {
	return []categorySpec{
		{program.CategoryCreditScore, failOnIneligible, func(s scenario.LoanScenario) string {
			return CreditScoreKey(s.CreditScore, s.Citizenship)
		}},
		{program.CategoryLoanAmount, failOnIneligible, func(s scenario.LoanScenario) string {
			return LoanAmountKey(s.LoanAmount)
		}},
		{program.CategoryLoanPurpose, failOnIneligible, func(s scenario.LoanScenario) string {
			return PurposeKey(s.LoanPurpose, s.CreditScore, program.ClassStandard)
		}},
		{program.CategoryLoanProduct, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.LoanProduct)
		}},
		{program.CategoryOccupancy, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.Occupancy)
		}},
		{program.CategoryPropertyType, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.PropertyType)
		}},
		{program.CategoryCitizenship, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.Citizenship)
		}},
		{program.CategoryDocType, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.DocType)
		}},
		{program.CategoryDTI, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.DTI)
		}},
		{program.CategoryPrepayPeriod, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.PrepayPeriod)
		}},
		{program.CategoryPrepayFee, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.PrepayFee)
		}},
		{program.CategoryEscrowWaiver, skipOnIneligible, func(s scenario.LoanScenario) string {
			return yesNo(s.EscrowWaiver)
		}},
		{program.CategoryLockTerm, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.LockTerm)
		}},
		{program.CategoryState, skipOnIneligible, func(s scenario.LoanScenario) string {
			return s.State
		}},
		{program.CategoryCreditEvent, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.CreditEvent)
		}},
		{program.CategoryMortgageHistory, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.MortgageHistory)
		}},
	}
}

// dscrCategories is the category walk for DSCR programs.
func dscrCategories() []categorySpec {
	return []categorySpec{
		{program.CategoryCreditScore, failOnIneligible, func(s scenario.LoanScenario) string {
			return CreditScoreKey(s.CreditScore, s.Citizenship)
		}},
		{program.CategoryDSCRRatio, skipOnIneligible, func(s scenario.LoanScenario) string {
			return DSCRRatioKey(s.DSCRRatio)
		}},
		{program.CategoryShortTermRental, failOnIneligible, func(s scenario.LoanScenario) string {
			return yesNo(s.ShortTermRental)
		}},
		{program.CategoryTitleVesting, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.TitleVesting)
		}},
		{program.CategoryLoanProduct, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.LoanProduct)
		}},
		{program.CategoryLoanAmount, skipOnIneligible, func(s scenario.LoanScenario) string {
			return LoanAmountKey(s.LoanAmount)
		}},
		{program.CategoryLoanPurpose, failOnIneligible, func(s scenario.LoanScenario) string {
			return PurposeKey(s.LoanPurpose, s.CreditScore, program.ClassDSCR)
		}},
		{program.CategoryPropertyType, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.PropertyType)
		}},
		{program.CategoryPrepayPeriod, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.PrepayPeriod)
		}},
		{program.CategoryPrepayFee, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.PrepayFee)
		}},
		{program.CategoryEscrowWaiver, skipOnIneligible, func(s scenario.LoanScenario) string {
			return yesNo(s.EscrowWaiver)
		}},
		{program.CategoryLockTerm, skipOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.LockTerm)
		}},
		{program.CategoryState, skipOnIneligible, func(s scenario.LoanScenario) string {
			return s.State
		}},
		{program.CategoryCreditEvent, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.CreditEvent)
		}},
		{program.CategoryMortgageHistory, failOnIneligible, func(s scenario.LoanScenario) string {
			return string(s.MortgageHistory)
		}},
	}
}

func categoriesForClass(class program.Class) []categorySpec {
	if class == program.ClassDSCR {
		return dscrCategories()
	}
	return standardCategories()
}
