// Package scenario models a loan scenario as entered by a loan officer and
// applies the cascading borrower-trigger rules that normalize it before
// pricing. Free-text inputs are resolved to closed enumerations at this
// boundary so downstream mapping stays exhaustive.
package scenario

import (
	"github.com/shopspring/decimal"
)

// LoanScenario carries every borrower and loan attribute the pricing engine
// consumes. Values are treated as immutable once normalized.
type LoanScenario struct {
	Citizenship    Citizenship `json:"citizenship"`
	Occupancy      Occupancy   `json:"occupancy"`
	DocType        DocType     `json:"doc_type"`
	LienType       LienType    `json:"lien_type"`
	FirstTimeBuyer bool        `json:"first_time_buyer"`

	CreditScore     int             `json:"credit_score"`
	AdverseCredit   bool            `json:"adverse_credit"`
	CreditEvent     CreditEvent     `json:"credit_event,omitempty"`
	MortgageHistory MortgageHistory `json:"mortgage_history,omitempty"`

	PurchasePrice decimal.Decimal `json:"purchase_price"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	LoanPurpose   LoanPurpose     `json:"loan_purpose"`
	LoanProduct   LoanProduct     `json:"loan_product"`
	PropertyType  PropertyType    `json:"property_type"`
	DTI           DTIBand         `json:"dti"`
	EscrowWaiver  bool            `json:"escrow_waiver"`
	State         string          `json:"state"`
	LockTerm      LockTerm        `json:"lock_term"`

	PrepayPeriod    PrepayPeriod    `json:"prepay_period,omitempty"`
	PrepayFee       PrepayFee       `json:"prepay_fee,omitempty"`
	DSCRRatio       decimal.Decimal `json:"dscr_ratio"`
	ShortTermRental bool            `json:"short_term_rental"`
	TitleVesting    TitleVesting    `json:"title_vesting,omitempty"`
}

// UnmarshalText resolves loose citizenship text during JSON decoding.
func (c *Citizenship) UnmarshalText(b []byte) error {
	v, err := ParseCitizenship(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalText resolves loose occupancy text during JSON decoding.
func (o *Occupancy) UnmarshalText(b []byte) error {
	v, err := ParseOccupancy(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// UnmarshalText resolves loose doc type text during JSON decoding.
func (d *DocType) UnmarshalText(b []byte) error {
	v, err := ParseDocType(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalText resolves loose product text during JSON decoding.
func (p *LoanProduct) UnmarshalText(b []byte) error {
	v, err := ParseLoanProduct(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText resolves loose property type text during JSON decoding.
func (p *PropertyType) UnmarshalText(b []byte) error {
	v, err := ParsePropertyType(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText resolves loose prepay period text during JSON decoding.
func (p *PrepayPeriod) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = ""
		return nil
	}
	v, err := ParsePrepayPeriod(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UnmarshalText resolves loose title vesting text during JSON decoding.
func (t *TitleVesting) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = ""
		return nil
	}
	v, err := ParseTitleVesting(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// UnmarshalText resolves loose prepay fee text during JSON decoding.
func (p *PrepayFee) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = ""
		return nil
	}
	v, err := ParsePrepayFee(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
