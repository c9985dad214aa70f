package app

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"quickprice/internal/config"
	"quickprice/internal/pricing"
	"quickprice/internal/program"
	"quickprice/internal/sheets"
	"quickprice/internal/storage"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

func (a *App) openStore(ctx context.Context) (*storage.Store, func(), error) {
	if a.Config.Database.DSN == "" {
		return nil, nil, nil
	}

	pool, err := storage.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, nil, err
	}

	store := storage.NewStore(pool)
	closer := func() {
		store.Close()
	}
	return store, closer, nil
}

// programSource resolves where programs come from: an explicit sheet file
// wins, then the database, then the built-in default sheets.
func (a *App) programSource(store *storage.Store, sheetPath string) sheets.ProgramSource {
	if sheetPath != "" {
		return sheets.NewFileSource(sheetPath)
	}
	if store != nil {
		return sheets.NewStoreSource(store)
	}
	a.Logger.Warn().Msg("no sheet file or database configured; using built-in programs")
	return sheets.NewStaticSource(program.DefaultPrograms())
}

func (a *App) newEngine() *pricing.Engine {
	p := a.Config.Pricing
	return pricing.New(pricing.Options{
		Selector: pricing.SelectorConfig{
			DSCRTierCutoff:     decimal.NewFromFloat(p.DSCRTierCutoff),
			StandardTierCutoff: decimal.NewFromFloat(p.StandardTierCutoff),
		},
		Band: pricing.Band{
			Lower:     decimal.NewFromFloat(p.BandLower),
			Upper:     decimal.NewFromFloat(p.BandUpper),
			ParTarget: decimal.NewFromFloat(p.ParTarget),
		},
	}, a.Logger)
}

func formatDecimal(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

// PriceOptions configure the price command.
type PriceOptions struct {
	ScenarioPath string
	SheetPath    string
	JSONOutput   bool
	ShowAllRates bool
}

// ProgramsOptions configure the programs command. Enable and Disable name a
// stored program to flip; both empty means list.
type ProgramsOptions struct {
	SheetPath string
	Enable    string
	Disable   string
}

// ImportOptions configure the import command.
type ImportOptions struct {
	SheetPath string
	Activate  bool
}

// ExportOptions configure the export command.
type ExportOptions struct {
	SheetPath    string
	OutPath      string
	CSVPath      string
	PNGPath      string
	ScenarioPath string
}

// ShowOptions configure the show command.
type ShowOptions struct {
	Limit int
}
