package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"

	"quickprice/internal/sheets"
)

// Import validates a JSON sheet file and upserts its programs into the
// database.
func (a *App) Import(ctx context.Context, opts ImportOptions) error {
	data, err := os.ReadFile(opts.SheetPath)
	if err != nil {
		return fmt.Errorf("read sheet file: %w", err)
	}

	programs, err := sheets.ParseSheet(data)
	if err != nil {
		return err
	}

	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot import")
	}
	if closeStore != nil {
		defer closeStore()
	}

	for _, p := range programs {
		if opts.Activate {
			p.Active = true
		}
		rec, encodeErr := sheets.EncodeRecord(p)
		if encodeErr != nil {
			return encodeErr
		}

		action := "imported"
		if _, getErr := store.GetProgram(ctx, p.ID); getErr == nil {
			action = "replaced"
		} else if !errors.Is(getErr, pgx.ErrNoRows) {
			return getErr
		}

		if upsertErr := store.UpsertProgram(ctx, rec); upsertErr != nil {
			return upsertErr
		}
		a.Logger.Info().Str("program", p.ID).Bool("active", p.Active).Msg("program " + action)
	}

	fmt.Fprintf(os.Stdout, "imported %d programs\n", len(programs))
	return nil
}
