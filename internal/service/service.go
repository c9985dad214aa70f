// Package service orchestrates a pricing run: snapshot the program set,
// hand it to the engine, and record the outcome in the quote audit trail.
package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"quickprice/internal/pricing"
	"quickprice/internal/scenario"
	"quickprice/internal/sheets"
	"quickprice/internal/storage"
)

// Pricer prices scenarios against the configured program source.
type Pricer struct {
	source sheets.ProgramSource
	quotes storage.QuoteStore
	engine *pricing.Engine
	logger zerolog.Logger
}

// NewPricer wires a pricing service. The quote store may be nil; auditing is
// then skipped.
func NewPricer(source sheets.ProgramSource, quotes storage.QuoteStore, engine *pricing.Engine, logger zerolog.Logger) *Pricer {
	return &Pricer{
		source: source,
		quotes: quotes,
		engine: engine,
		logger: logger.With().Str("component", "service").Logger(),
	}
}

// Price runs one scenario. The program snapshot is taken once up front, so a
// concurrent sheet update never affects a run in flight. Domain failures come
// back inside the result; only infrastructure problems (source unavailable)
// surface as an error.
func (p *Pricer) Price(ctx context.Context, s scenario.LoanScenario) (pricing.Result, error) {
	programs, err := p.source.LoadPrograms(ctx)
	if err != nil {
		return pricing.Result{}, err
	}

	result := p.engine.Calculate(s, programs)
	p.recordQuote(ctx, s, result)

	event := p.logger.Info().
		Str("program", result.ProgramID).
		Str("ltv_bucket", result.LTVBucket).
		Int("rates_in_band", len(result.Rates))
	if result.Failed() {
		event.Str("reason", result.Reason())
	}
	event.Msg("scenario priced")

	return result, nil
}

// recordQuote appends the outcome to the audit trail. Auditing is best
// effort: a storage failure is logged, never propagated into the quote.
func (p *Pricer) recordQuote(ctx context.Context, s scenario.LoanScenario, result pricing.Result) {
	if p.quotes == nil {
		return
	}

	payload, err := json.Marshal(s)
	if err != nil {
		p.logger.Error().Err(err).Msg("encode scenario for audit")
		return
	}

	rec := storage.QuoteRecord{
		ProgramID:   result.ProgramID,
		ProgramName: result.ProgramName,
		LTV:         result.LTV,
		LTVBucket:   result.LTVBucket,
		LLPATotal:   result.LLPATotal,
		RateCount:   len(result.Rates),
		Outcome:     storage.OutcomePriced,
		Scenario:    payload,
	}
	if result.Failed() {
		rec.Outcome = storage.OutcomeFailed
		rec.Reason = result.Reason()
	}
	if result.Par != nil {
		rate := result.Par.Rate
		rec.ParRate = &rate
	}

	if _, err := p.quotes.InsertQuote(ctx, rec); err != nil {
		p.logger.Error().Err(err).Msg("record quote")
	}
}
