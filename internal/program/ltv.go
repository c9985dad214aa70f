package program

import (
	"sort"

	"github.com/shopspring/decimal"
)

// labelStep is the gap between one bucket's ceiling and the next bucket's
// floor in the printed label ("50.01-55.00%").
var labelStep = decimal.RequireFromString("0.01")

// DefaultLTVBreaks is the nine-bucket ladder used by the stock sheets:
// ceilings at 50 through 90 in five-point steps.
func DefaultLTVBreaks() []decimal.Decimal {
	breaks := make([]decimal.Decimal, 0, 9)
	for ceiling := 50; ceiling <= 90; ceiling += 5 {
		breaks = append(breaks, decimal.NewFromInt(int64(ceiling)))
	}
	return breaks
}

// LabelsForBreaks derives the canonical bucket labels from a break ladder.
// The first bucket covers everything from zero ("≤50.00%"); each subsequent
// label spans (previous ceiling, ceiling] ("50.01-55.00%"). Breaks are
// sorted ascending before labeling so the labels are deterministic.
func LabelsForBreaks(breaks []decimal.Decimal) []string {
	sorted := sortedBreaks(breaks)
	labels := make([]string, len(sorted))
	for i, ceiling := range sorted {
		if i == 0 {
			labels[i] = "≤" + ceiling.StringFixed(2) + "%"
			continue
		}
		floor := sorted[i-1].Add(labelStep)
		labels[i] = floor.StringFixed(2) + "-" + ceiling.StringFixed(2) + "%"
	}
	return labels
}

func sortedBreaks(breaks []decimal.Decimal) []decimal.Decimal {
	sorted := make([]decimal.Decimal, len(breaks))
	copy(sorted, breaks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LessThan(sorted[j])
	})
	return sorted
}
