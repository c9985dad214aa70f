package program

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Adjustment is one cell of an adjustment grid: either a signed price value
// or an explicit ineligible marker. The marker is not the same as zero. An
// ineligible cell means the lender does not support the risk combination at
// that LTV, while a missing or zero cell contributes nothing to the price.
type Adjustment struct {
	value      decimal.Decimal
	ineligible bool
}

// Value builds an eligible adjustment cell.
func Value(d decimal.Decimal) Adjustment {
	return Adjustment{value: d}
}

// ValueFloat builds an eligible adjustment cell from a literal.
func ValueFloat(f float64) Adjustment {
	return Adjustment{value: decimal.NewFromFloat(f)}
}

// Ineligible builds the explicit ineligible marker.
func Ineligible() Adjustment {
	return Adjustment{ineligible: true}
}

// IsIneligible reports whether the cell carries the ineligible marker.
func (a Adjustment) IsIneligible() bool { return a.ineligible }

// Amount returns the signed price adjustment; zero for ineligible cells.
func (a Adjustment) Amount() decimal.Decimal {
	if a.ineligible {
		return decimal.Zero
	}
	return a.value
}

var jsonNull = []byte("null")

// MarshalJSON encodes an eligible cell as its decimal value and an ineligible
// cell as an explicit null, so "entry absent" and "entry ineligible" survive
// a round trip.
func (a Adjustment) MarshalJSON() ([]byte, error) {
	if a.ineligible {
		return jsonNull, nil
	}
	return a.value.MarshalJSON()
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (a *Adjustment) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		*a = Adjustment{ineligible: true}
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Adjustment{value: d}
	return nil
}

// OptionGrid maps an LTV bucket label to the adjustment at that bucket.
type OptionGrid map[string]Adjustment

// CategoryOptions maps an option key (for example a credit band label) to its
// grid of per-bucket adjustments.
type CategoryOptions map[string]OptionGrid

// AdjustmentTable maps adjustment categories to their option grids. Tables
// are snapshots: the engine never writes to one.
type AdjustmentTable map[Category]CategoryOptions

// Lookup returns the cell at (category, option, bucket) and whether the table
// holds an entry there at all.
func (t AdjustmentTable) Lookup(cat Category, option, bucket string) (Adjustment, bool) {
	options, ok := t[cat]
	if !ok {
		return Adjustment{}, false
	}
	grid, ok := options[option]
	if !ok {
		return Adjustment{}, false
	}
	adj, ok := grid[bucket]
	return adj, ok
}

// Set writes a cell, allocating intermediate maps as needed. Used by sheet
// construction and override application, never by the pricing path.
func (t AdjustmentTable) Set(cat Category, option, bucket string, adj Adjustment) {
	options, ok := t[cat]
	if !ok {
		options = CategoryOptions{}
		t[cat] = options
	}
	grid, ok := options[option]
	if !ok {
		grid = OptionGrid{}
		options[option] = grid
	}
	grid[bucket] = adj
}
