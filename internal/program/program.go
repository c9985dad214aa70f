// Package program models a lending program (rate sheet): base rate tiers,
// LTV bucket ladder, the LLPA adjustment grids with per-program cell
// overrides, eligibility settings, and the hidden margin holdback. Programs
// are administered elsewhere; the pricing engine only ever reads an immutable
// snapshot.
package program

import (
	"time"

	"github.com/shopspring/decimal"
)

// Class groups programs by documentation family.
type Class string

const (
	ClassStandard Class = "NonQM"
	ClassDSCR     Class = "DSCR"
)

// Tier distinguishes the two price tiers within a class. The premium tier is
// reserved for loan amounts above the class cutoff.
type Tier string

const (
	TierStandard Tier = "C"
	TierPremium  Tier = "A"
)

// BaseRate is one rate/price tier of the base sheet. Tiers are kept sorted
// ascending by rate.
type BaseRate struct {
	Rate  decimal.Decimal `json:"rate"`
	Price decimal.Decimal `json:"price"`
}

// Settings holds per-program eligibility configuration. The engine itself
// only routes on class and amount; settings are enforced at sheet
// administration and surfaced to the input layer.
type Settings struct {
	MinFICO              int             `json:"min_fico"`
	MaxLTV               decimal.Decimal `json:"max_ltv"`
	MinLoanAmount        decimal.Decimal `json:"min_loan_amount"`
	MaxLoanAmount        decimal.Decimal `json:"max_loan_amount"`
	RequiresDSCR         bool            `json:"requires_dscr"`
	AllowedStates        []string        `json:"allowed_states"`
	AllowedDocTypes      []string        `json:"allowed_doc_types"`
	AllowedPropertyTypes []string        `json:"allowed_property_types"`
}

// Program is a complete pricing configuration for one lending program.
type Program struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Class       Class  `json:"class"`
	Tier        Tier   `json:"tier"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`

	// MarginHoldback is a signed constant folded into every final price and
	// never disclosed alongside the adjustment breakdown.
	MarginHoldback decimal.Decimal `json:"margin_holdback"`

	LTVBreaks []decimal.Decimal `json:"ltv_breaks"`
	BaseRates []BaseRate        `json:"base_rates"`

	// Table holds the base adjustment grids; Overrides replaces individual
	// cells (never merges) on top of them.
	Table     AdjustmentTable `json:"table"`
	Overrides AdjustmentTable `json:"overrides,omitempty"`

	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Lookup resolves a cell, consulting the override table first. An override
// cell fully replaces the base cell at the same coordinates.
func (p Program) Lookup(cat Category, option, bucket string) (Adjustment, bool) {
	if adj, ok := p.Overrides.Lookup(cat, option, bucket); ok {
		return adj, true
	}
	return p.Table.Lookup(cat, option, bucket)
}

// BucketLabels returns the bucket labels derived from the program's LTV
// break ladder.
func (p Program) BucketLabels() []string {
	return LabelsForBreaks(p.LTVBreaks)
}

// AllowsState reports whether the program is licensed in a state. An empty
// allow-list means no restriction.
func (p Program) AllowsState(state string) bool {
	if len(p.Settings.AllowedStates) == 0 {
		return true
	}
	for _, s := range p.Settings.AllowedStates {
		if s == state {
			return true
		}
	}
	return false
}
