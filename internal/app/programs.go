package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"quickprice/internal/storage"
)

// Programs lists the programs visible to the pricing engine, or flips the
// active flag on a stored program.
func (a *App) Programs(ctx context.Context, opts ProgramsOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if closeStore != nil {
		defer closeStore()
	}

	if opts.Enable != "" || opts.Disable != "" {
		return a.setProgramActive(ctx, store, opts)
	}

	source := a.programSource(store, opts.SheetPath)
	programs, err := source.LoadPrograms(ctx)
	if err != nil {
		return err
	}
	if len(programs) == 0 {
		fmt.Fprintln(os.Stdout, "no programs found")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tName\tClass\tTier\tActive\tTiers\tMax LTV")
	for _, p := range programs {
		maxLTV := ""
		if len(p.LTVBreaks) > 0 {
			maxLTV = formatDecimal(p.LTVBreaks[len(p.LTVBreaks)-1], 2) + "%"
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%t\t%d\t%s\n",
			p.ID,
			p.Name,
			p.Class,
			p.Tier,
			p.Active,
			len(p.BaseRates),
			maxLTV,
		)
	}
	writer.Flush()
	return nil
}

func (a *App) setProgramActive(ctx context.Context, store *storage.Store, opts ProgramsOptions) error {
	if store == nil {
		return errors.New("database not configured; cannot change program state")
	}
	if opts.Enable != "" && opts.Disable != "" {
		return errors.New("--enable and --disable are mutually exclusive")
	}

	id := opts.Enable
	active := true
	if opts.Disable != "" {
		id = opts.Disable
		active = false
	}

	if err := store.SetProgramActive(ctx, id, active); err != nil {
		return fmt.Errorf("program %q: %w", id, err)
	}
	a.Logger.Info().Str("program", id).Bool("active", active).Msg("program state changed")
	fmt.Fprintf(os.Stdout, "program %s active=%t\n", id, active)
	return nil
}
