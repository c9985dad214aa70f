package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotConfigured indicates the storage pool was not initialised.
	ErrNotConfigured = errors.New("storage: pool not configured")
)

const (
	upsertProgramSQL = `INSERT INTO programs (
        id,
        name,
        program_type,
        tier,
        is_active,
        margin_holdback,
        payload
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7
    )
    ON CONFLICT (id) DO UPDATE
    SET
        name            = EXCLUDED.name,
        program_type    = EXCLUDED.program_type,
        tier            = EXCLUDED.tier,
        is_active       = EXCLUDED.is_active,
        margin_holdback = EXCLUDED.margin_holdback,
        payload         = EXCLUDED.payload,
        updated_at      = now();`

	getProgramSQL = `SELECT
        id,
        name,
        program_type,
        tier,
        is_active,
        margin_holdback,
        payload,
        created_at,
        updated_at
    FROM programs
    WHERE id = $1;`

	listProgramsSQL = `SELECT
        id,
        name,
        program_type,
        tier,
        is_active,
        margin_holdback,
        payload,
        created_at,
        updated_at
    FROM programs
    ORDER BY program_type, tier, id;`

	setProgramActiveSQL = `UPDATE programs
    SET is_active = $2, updated_at = now()
    WHERE id = $1;`

	insertQuoteSQL = `INSERT INTO quotes (
        program_id,
        program_name,
        ltv,
        ltv_bucket,
        llpa_total,
        par_rate,
        rate_count,
        outcome,
        reason,
        scenario
    ) VALUES (
        $1,$2,$3,$4,$5,$6,$7,$8,$9,$10
    )
    RETURNING id, created_at;`

	listRecentQuotesSQL = `SELECT
        id,
        program_id,
        program_name,
        ltv,
        ltv_bucket,
        llpa_total,
        par_rate,
        rate_count,
        outcome,
        reason,
        scenario,
        created_at
    FROM quotes
    ORDER BY created_at DESC
    LIMIT $1;`

	countQuotesSQL = `SELECT COUNT(*) FROM quotes;`
)

// ProgramStore defines operations for rate sheet persistence.
type ProgramStore interface {
	UpsertProgram(ctx context.Context, rec ProgramRecord) error
	GetProgram(ctx context.Context, id string) (ProgramRecord, error)
	ListPrograms(ctx context.Context) ([]ProgramRecord, error)
	SetProgramActive(ctx context.Context, id string, active bool) error
}

// QuoteStore defines operations for the quote audit trail.
type QuoteStore interface {
	InsertQuote(ctx context.Context, rec QuoteRecord) (QuoteRecord, error)
	ListRecentQuotes(ctx context.Context, limit int) ([]QuoteRecord, error)
	CountQuotes(ctx context.Context) (int64, error)
}

// Store aggregates access to programs and quotes.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wires a pgx pool into a Store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying pool resources.
func (s *Store) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

func (s *Store) getPool() (*pgxpool.Pool, error) {
	if s == nil || s.pool == nil {
		return nil, ErrNotConfigured
	}
	return s.pool, nil
}

// UpsertProgram persists or replaces a program sheet.
func (s *Store) UpsertProgram(ctx context.Context, rec ProgramRecord) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}

	_, execErr := pool.Exec(ctx, upsertProgramSQL,
		rec.ID,
		rec.Name,
		rec.ProgramType,
		rec.Tier,
		rec.Active,
		rec.MarginHoldback.String(),
		[]byte(rec.Payload),
	)
	if execErr != nil {
		return fmt.Errorf("upsert program: %w", execErr)
	}
	return nil
}

// GetProgram fetches one program by id.
func (s *Store) GetProgram(ctx context.Context, id string) (ProgramRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return ProgramRecord{}, err
	}

	rec, scanErr := scanProgram(pool.QueryRow(ctx, getProgramSQL, id))
	if scanErr != nil {
		if errors.Is(scanErr, pgx.ErrNoRows) {
			return ProgramRecord{}, scanErr
		}
		return ProgramRecord{}, fmt.Errorf("get program: %w", scanErr)
	}
	return rec, nil
}

// ListPrograms lists every stored program ordered by class and tier.
func (s *Store) ListPrograms(ctx context.Context) ([]ProgramRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listProgramsSQL)
	if queryErr != nil {
		return nil, fmt.Errorf("list programs: %w", queryErr)
	}
	defer rows.Close()

	records := make([]ProgramRecord, 0)
	for rows.Next() {
		rec, scanErr := scanProgram(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return records, nil
}

// SetProgramActive flips the active flag on a program.
func (s *Store) SetProgramActive(ctx context.Context, id string, active bool) error {
	pool, err := s.getPool()
	if err != nil {
		return err
	}
	cmdTag, execErr := pool.Exec(ctx, setProgramActiveSQL, id, active)
	if execErr != nil {
		return fmt.Errorf("set program active: %w", execErr)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// InsertQuote persists one pricing outcome.
func (s *Store) InsertQuote(ctx context.Context, rec QuoteRecord) (QuoteRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return QuoteRecord{}, err
	}

	var parRate interface{}
	if rec.ParRate != nil {
		parRate = rec.ParRate.String()
	}

	row := pool.QueryRow(ctx, insertQuoteSQL,
		nullableString(rec.ProgramID),
		nullableString(rec.ProgramName),
		rec.LTV.String(),
		nullableString(rec.LTVBucket),
		rec.LLPATotal.String(),
		parRate,
		rec.RateCount,
		rec.Outcome,
		nullableString(rec.Reason),
		[]byte(rec.Scenario),
	)
	if scanErr := row.Scan(&rec.ID, &rec.CreatedAt); scanErr != nil {
		return QuoteRecord{}, fmt.Errorf("insert quote: %w", scanErr)
	}
	return rec, nil
}

// ListRecentQuotes lists the most recent quotes.
func (s *Store) ListRecentQuotes(ctx context.Context, limit int) ([]QuoteRecord, error) {
	pool, err := s.getPool()
	if err != nil {
		return nil, err
	}

	rows, queryErr := pool.Query(ctx, listRecentQuotesSQL, limit)
	if queryErr != nil {
		return nil, fmt.Errorf("list recent quotes: %w", queryErr)
	}
	defer rows.Close()

	quotes := make([]QuoteRecord, 0, limit)
	for rows.Next() {
		rec, scanErr := scanQuote(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		quotes = append(quotes, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return quotes, nil
}

// CountQuotes counts stored quotes.
func (s *Store) CountQuotes(ctx context.Context) (int64, error) {
	pool, err := s.getPool()
	if err != nil {
		return 0, err
	}
	var count int64
	if scanErr := pool.QueryRow(ctx, countQuotesSQL).Scan(&count); scanErr != nil {
		return 0, fmt.Errorf("count quotes: %w", scanErr)
	}
	return count, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func scanProgram(row pgx.Row) (ProgramRecord, error) {
	var (
		rec       ProgramRecord
		marginStr string
		payload   json.RawMessage
	)

	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.ProgramType,
		&rec.Tier,
		&rec.Active,
		&marginStr,
		&payload,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return ProgramRecord{}, err
	}

	margin, err := decimal.NewFromString(marginStr)
	if err != nil {
		return ProgramRecord{}, fmt.Errorf("parse margin holdback: %w", err)
	}
	rec.MarginHoldback = margin
	rec.Payload = payload
	return rec, nil
}

func scanQuote(rows pgx.Rows) (QuoteRecord, error) {
	var (
		rec         QuoteRecord
		programID   sql.NullString
		programName sql.NullString
		ltvStr      string
		bucket      sql.NullString
		llpaStr     string
		parStr      sql.NullString
		reason      sql.NullString
		scenario    json.RawMessage
		createdAt   time.Time
	)

	if err := rows.Scan(
		&rec.ID,
		&programID,
		&programName,
		&ltvStr,
		&bucket,
		&llpaStr,
		&parStr,
		&rec.RateCount,
		&rec.Outcome,
		&reason,
		&scenario,
		&createdAt,
	); err != nil {
		return QuoteRecord{}, err
	}

	ltv, err := decimal.NewFromString(ltvStr)
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("parse ltv: %w", err)
	}
	llpa, err := decimal.NewFromString(llpaStr)
	if err != nil {
		return QuoteRecord{}, fmt.Errorf("parse llpa total: %w", err)
	}

	rec.ProgramID = programID.String
	rec.ProgramName = programName.String
	rec.LTV = ltv
	rec.LTVBucket = bucket.String
	rec.LLPATotal = llpa
	rec.Reason = reason.String
	rec.Scenario = scenario
	rec.CreatedAt = createdAt

	if parStr.Valid {
		par, convErr := decimal.NewFromString(parStr.String)
		if convErr != nil {
			return QuoteRecord{}, fmt.Errorf("parse par rate: %w", convErr)
		}
		rec.ParRate = &par
	}

	return rec, nil
}
