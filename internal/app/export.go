package app

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	chart "github.com/wcharczuk/go-chart/v2"

	"quickprice/internal/pricing"
)

// Export writes the current program set as a JSON sheet and/or renders the
// adjusted rate stack for a scenario as CSV or PNG.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.OutPath == "" && opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --out, --csv or --png must be provided")
	}
	if (opts.CSVPath != "" || opts.PNGPath != "") && opts.ScenarioPath == "" {
		return errors.New("--scenario is required for CSV or PNG export")
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	source := a.programSource(store, opts.SheetPath)
	programs, err := source.LoadPrograms(ctx)
	if err != nil {
		return err
	}

	if opts.OutPath != "" {
		if err := writeSheetJSON(opts.OutPath, programs); err != nil {
			return err
		}
		a.Logger.Info().Int("programs", len(programs)).Str("path", opts.OutPath).Msg("sheet exported")
	}

	if opts.CSVPath == "" && opts.PNGPath == "" {
		return nil
	}

	s, err := loadScenario(opts.ScenarioPath)
	if err != nil {
		return err
	}

	result := a.newEngine().Calculate(s, programs)
	if result.Failed() {
		return fmt.Errorf("scenario did not price: %s", result.Reason())
	}
	if len(result.AllRates) == 0 {
		a.Logger.Info().Msg("no rate tiers to export")
		return nil
	}

	if opts.CSVPath != "" {
		if err := writeRatesCSV(opts.CSVPath, result); err != nil {
			return err
		}
	}
	if opts.PNGPath != "" {
		if err := a.writeRatesPNG(opts.PNGPath, result); err != nil {
			return err
		}
	}
	return nil
}

func writeSheetJSON(path string, programs interface{}) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(map[string]interface{}{"programs": programs})
}

func writeRatesCSV(path string, result pricing.Result) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"rate", "base_price", "final_price", "in_band", "par"}
	if err := writer.Write(header); err != nil {
		return err
	}

	inBand := make(map[string]bool, len(result.Rates))
	for _, quote := range result.Rates {
		inBand[quote.Rate.String()] = true
	}

	for _, quote := range result.AllRates {
		par := result.Par != nil && quote.Rate.Equal(result.Par.Rate)
		record := []string{
			quote.Rate.StringFixed(3),
			quote.BasePrice.StringFixed(3),
			quote.FinalPrice.StringFixed(3),
			fmt.Sprintf("%t", inBand[quote.Rate.String()]),
			fmt.Sprintf("%t", par),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func (a *App) writeRatesPNG(path string, result pricing.Result) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	rates := make([]float64, len(result.AllRates))
	base := make([]float64, len(result.AllRates))
	final := make([]float64, len(result.AllRates))
	for i, quote := range result.AllRates {
		rates[i] = quote.Rate.InexactFloat64()
		base[i] = quote.BasePrice.InexactFloat64()
		final[i] = quote.FinalPrice.InexactFloat64()
	}

	band := a.Config.Pricing
	edgeX := []float64{rates[0], rates[len(rates)-1]}
	edgeStyle := chart.Style{
		StrokeColor:     chart.ColorAlternateGray,
		StrokeDashArray: []float64{4.0, 4.0},
	}

	priceFormatter := func(v interface{}) string {
		return chart.FloatValueFormatterWithFormat(v, "%.3f")
	}
	graph := chart.Chart{
		Width:  a.Config.Export.ChartWidth,
		Height: a.Config.Export.ChartHeight,
		Title:  result.ProgramName,
		XAxis: chart.XAxis{
			Name:           "Rate (%)",
			ValueFormatter: priceFormatter,
		},
		YAxis: chart.YAxis{
			Name:           "Price",
			ValueFormatter: priceFormatter,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Base",
				XValues: rates,
				YValues: base,
			},
			chart.ContinuousSeries{
				Name:    "Final",
				XValues: rates,
				YValues: final,
			},
			chart.ContinuousSeries{
				Name:    "Band Lower",
				Style:   edgeStyle,
				XValues: edgeX,
				YValues: []float64{band.BandLower, band.BandLower},
			},
			chart.ContinuousSeries{
				Name:    "Band Upper",
				Style:   edgeStyle,
				XValues: edgeX,
				YValues: []float64{band.BandUpper, band.BandUpper},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
