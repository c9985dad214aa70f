// Package pricing implements the rate-sheet pricing engine: LTV bucketing,
// LLPA aggregation with overlay suppression, program routing, and rate band
// selection. The engine is a pure synchronous computation over the scenario
// and the program snapshot it is handed; it performs no I/O and no mutation,
// so any number of scenarios may be priced concurrently against one
// snapshot.
package pricing

import (
	"errors"

	"github.com/rs/zerolog"

	"quickprice/internal/program"
	"quickprice/internal/scenario"
)

// Options configures an Engine. Zero values fall back to the stock band,
// cutoffs, and overlay registry.
type Options struct {
	Selector SelectorConfig
	Band     Band
	Overlays []OverlayRule
}

// Engine prices loan scenarios against program snapshots.
type Engine struct {
	selector SelectorConfig
	band     Band
	overlays []OverlayRule
	logger   zerolog.Logger
}

// New constructs an engine.
func New(opts Options, logger zerolog.Logger) *Engine {
	if opts.Selector.DSCRTierCutoff.IsZero() || opts.Selector.StandardTierCutoff.IsZero() {
		opts.Selector = DefaultSelectorConfig()
	}
	if opts.Band.Upper.IsZero() {
		opts.Band = DefaultBand()
	}
	if opts.Overlays == nil {
		opts.Overlays = DefaultOverlays()
	}
	return &Engine{
		selector: opts.Selector,
		band:     opts.Band,
		overlays: opts.Overlays,
		logger:   logger.With().Str("component", "pricing").Logger(),
	}
}

// Calculate normalizes the scenario and prices it against the supplied
// program snapshot. It is total: every failure lands in Result.Err as a
// typed error, never as a panic or a silent zero.
func (e *Engine) Calculate(s scenario.LoanScenario, programs []program.Program) Result {
	normalized, err := scenario.Normalize(s)
	if err != nil {
		var vErr *scenario.ValidationError
		if errors.As(err, &vErr) {
			e.logger.Debug().Str("rule", vErr.Rule).Msg("scenario rejected by trigger cascade")
		}
		return Result{Err: err}
	}

	selected, err := SelectProgram(normalized, programs, e.selector)
	if err != nil {
		return Result{Err: err}
	}

	result := Result{
		ProgramID:   selected.ID,
		ProgramName: selected.Name,
	}

	ltv, ok := LTV(normalized.LoanAmount, normalized.PurchasePrice)
	if !ok {
		result.Err = &LTVOutOfBoundsError{Bucket: BucketNotApplicable}
		return result
	}
	result.LTV = ltv

	bucket := LTVBucket(ltv, selected.LTVBreaks)
	if bucket == BucketOutOfBounds {
		result.Err = &LTVOutOfBoundsError{LTV: ltv, Bucket: bucket}
		return result
	}
	result.LTVBucket = bucket

	agg, err := aggregate(normalized, selected, bucket, e.overlays)
	result.Adjustments = agg.Adjustments
	if err != nil {
		result.Err = err
		return result
	}
	result.LLPATotal = agg.Total

	selection := SelectRates(selected, agg.Total, e.band)
	result.Rates = selection.Rates
	result.AllRates = selection.All
	result.Par = selection.Par

	e.logger.Debug().
		Str("program", selected.ID).
		Str("ltv_bucket", bucket).
		Str("llpa_total", agg.Total.String()).
		Int("rates_in_band", len(selection.Rates)).
		Msg("scenario priced")

	return result
}
