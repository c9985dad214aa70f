package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// Show prints recent quotes from the audit trail.
func (a *App) Show(ctx context.Context, opts ShowOptions) error {
	store, closeStore, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	if store == nil {
		return errors.New("database not configured; cannot show quotes")
	}
	if closeStore != nil {
		defer closeStore()
	}

	quotes, err := store.ListRecentQuotes(ctx, opts.Limit)
	if err != nil {
		return err
	}
	if len(quotes) == 0 {
		fmt.Fprintln(os.Stdout, "no quotes found")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Time (UTC)\tProgram\tLTV\tBucket\tLLPA\tPar\tRates\tOutcome\tReason")

	for _, quote := range quotes {
		par := ""
		if quote.ParRate != nil {
			par = formatDecimal(*quote.ParRate, 3)
		}
		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			quote.CreatedAt.UTC().Format(time.RFC3339),
			quote.ProgramID,
			formatDecimal(quote.LTV, 2),
			quote.LTVBucket,
			formatDecimal(quote.LLPATotal, 4),
			par,
			quote.RateCount,
			quote.Outcome,
			sanitizeInline(quote.Reason),
		)
	}

	writer.Flush()
	return nil
}

func sanitizeInline(v string) string {
	cleaned := strings.ReplaceAll(v, "\n", " ")
	cleaned = strings.ReplaceAll(cleaned, "\r", " ")
	return cleaned
}
