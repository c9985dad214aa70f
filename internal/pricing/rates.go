package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"quickprice/internal/program"
)

// RateQuote is one priced tier. FinalPrice bakes in both the LLPA total and
// the program's hidden margin holdback; BasePrice is the raw sheet price.
type RateQuote struct {
	Rate       decimal.Decimal `json:"rate"`
	BasePrice  decimal.Decimal `json:"base_price"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// RateSelection is the banded rate list, the full adjusted stack, and the
// designated par quote (nil when the band is empty).
type RateSelection struct {
	Rates []RateQuote
	All   []RateQuote
	Par   *RateQuote
}

// Band bounds the prices shown to the caller and sets the par target.
type Band struct {
	Lower     decimal.Decimal
	Upper     decimal.Decimal
	ParTarget decimal.Decimal
}

// DefaultBand returns the stock 99.000-101.000 band around par 100.000.
func DefaultBand() Band {
	return Band{
		Lower:     decimal.NewFromInt(99),
		Upper:     decimal.NewFromInt(101),
		ParTarget: decimal.NewFromInt(100),
	}
}

// SelectRates prices every base tier and filters to the band. Tiers are
// walked in ascending rate order; once a final price reaches the band's
// upper bound that tier is the last one taken, since price is assumed
// monotone in rate. The par quote minimizes distance to the par target, ties
// resolving to the lower rate.
func SelectRates(p program.Program, llpaTotal decimal.Decimal, band Band) RateSelection {
	tiers := make([]program.BaseRate, len(p.BaseRates))
	copy(tiers, p.BaseRates)
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].Rate.LessThan(tiers[j].Rate)
	})

	shift := llpaTotal.Add(p.MarginHoldback)
	selection := RateSelection{All: make([]RateQuote, len(tiers))}
	for i, tier := range tiers {
		selection.All[i] = RateQuote{
			Rate:       tier.Rate,
			BasePrice:  tier.Price,
			FinalPrice: tier.Price.Add(shift).Round(3),
		}
	}

	for i := range selection.All {
		quote := selection.All[i]
		if quote.FinalPrice.GreaterThan(band.Upper) {
			break
		}
		if quote.FinalPrice.LessThan(band.Lower) {
			continue
		}
		selection.Rates = append(selection.Rates, quote)
		if quote.FinalPrice.Equal(band.Upper) {
			break
		}
	}

	var bestDistance decimal.Decimal
	for i := range selection.Rates {
		distance := selection.Rates[i].FinalPrice.Sub(band.ParTarget).Abs()
		if selection.Par == nil || distance.LessThan(bestDistance) {
			selection.Par = &selection.Rates[i]
			bestDistance = distance
		}
	}

	return selection
}
