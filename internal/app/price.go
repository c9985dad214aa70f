package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"quickprice/internal/pricing"
	"quickprice/internal/scenario"
	"quickprice/internal/service"
	"quickprice/internal/storage"
)

// Price prices a single scenario read from a JSON file (or stdin when the
// path is "-") and prints the adjustment breakdown and the banded rate stack.
func (a *App) Price(ctx context.Context, opts PriceOptions) error {
	s, err := loadScenario(opts.ScenarioPath)
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	source := a.programSource(store, opts.SheetPath)
	var quoteStore storage.QuoteStore
	if store != nil {
		quoteStore = store
	}
	pricer := service.NewPricer(source, quoteStore, a.newEngine(), a.Logger)

	result, err := pricer.Price(ctx, s)
	if err != nil {
		return err
	}

	if opts.JSONOutput {
		return writeResultJSON(os.Stdout, result)
	}
	return writeResultTable(os.Stdout, result, opts.ShowAllRates)
}

func loadScenario(path string) (scenario.LoanScenario, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return scenario.LoanScenario{}, fmt.Errorf("read scenario: %w", err)
	}

	var s scenario.LoanScenario
	if err := json.Unmarshal(data, &s); err != nil {
		return scenario.LoanScenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	return s, nil
}

// resultView is the JSON shape of a pricing outcome.
type resultView struct {
	ProgramID   string                      `json:"program_id,omitempty"`
	ProgramName string                      `json:"program_name,omitempty"`
	LTV         string                      `json:"ltv,omitempty"`
	LTVBucket   string                      `json:"ltv_bucket,omitempty"`
	LLPATotal   string                      `json:"llpa_total"`
	Adjustments []pricing.AppliedAdjustment `json:"adjustments,omitempty"`
	Rates       []pricing.RateQuote         `json:"rates"`
	Par         *pricing.RateQuote          `json:"par,omitempty"`
	Error       string                      `json:"error,omitempty"`
}

func writeResultJSON(w io.Writer, result pricing.Result) error {
	view := resultView{
		ProgramID:   result.ProgramID,
		ProgramName: result.ProgramName,
		LLPATotal:   result.LLPATotal.StringFixed(4),
		Adjustments: result.Adjustments,
		Rates:       result.Rates,
		Par:         result.Par,
		Error:       result.Reason(),
	}
	if !result.LTV.IsZero() {
		view.LTV = result.LTV.StringFixed(2)
	}
	view.LTVBucket = result.LTVBucket
	if view.Rates == nil {
		view.Rates = []pricing.RateQuote{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

func writeResultTable(w io.Writer, result pricing.Result, showAll bool) error {
	if result.ProgramName != "" {
		fmt.Fprintf(w, "Program: %s (%s)\n", result.ProgramName, result.ProgramID)
	}
	if result.LTVBucket != "" {
		fmt.Fprintf(w, "LTV: %s%%  Bucket: %s\n", formatDecimal(result.LTV, 2), result.LTVBucket)
	}

	if len(result.Adjustments) > 0 {
		fmt.Fprintln(w)
		writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "Adjustment\tSelection\tValue")
		for _, adj := range result.Adjustments {
			fmt.Fprintf(writer, "%s\t%s\t%s\n", adj.Category.Display(), adj.Key, formatSigned(adj.Value))
		}
		fmt.Fprintf(writer, "Total\t\t%s\n", formatSigned(result.LLPATotal))
		writer.Flush()
	}

	if result.Failed() {
		fmt.Fprintf(w, "\nNot priced: %s\n", result.Reason())
		return nil
	}

	rates := result.Rates
	if showAll {
		rates = result.AllRates
	}
	if len(rates) == 0 {
		fmt.Fprintln(w, "\nNo rates inside the price band.")
		return nil
	}

	fmt.Fprintln(w)
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Rate\tBase Price\tFinal Price\t")
	for _, quote := range rates {
		marker := ""
		if result.Par != nil && quote.Rate.Equal(result.Par.Rate) {
			marker = "PAR"
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\n",
			formatDecimal(quote.Rate, 3),
			formatDecimal(quote.BasePrice, 3),
			formatDecimal(quote.FinalPrice, 3),
			marker,
		)
	}
	writer.Flush()
	return nil
}

func formatSigned(d decimal.Decimal) string {
	s := d.StringFixed(4)
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
