package storage

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ProgramRecord is the persisted form of a pricing program. The routing
// columns (class, tier, active flag) are broken out for querying; the full
// sheet, including the adjustment table and base rate tiers, lives in the
// JSONB payload.
type ProgramRecord struct {
	ID             string
	Name           string
	ProgramType    string
	Tier           string
	Active         bool
	MarginHoldback decimal.Decimal
	Payload        json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// QuoteRecord is one priced scenario, success or failure, kept as an audit
// trail. ParRate is nil when the band came back empty or pricing failed.
type QuoteRecord struct {
	ID          int64
	ProgramID   string
	ProgramName string
	LTV         decimal.Decimal
	LTVBucket   string
	LLPATotal   decimal.Decimal
	ParRate     *decimal.Decimal
	RateCount   int
	Outcome     string
	Reason      string
	Scenario    json.RawMessage
	CreatedAt   time.Time
}

// Quote outcome values.
const (
	OutcomePriced = "priced"
	OutcomeFailed = "failed"
)
