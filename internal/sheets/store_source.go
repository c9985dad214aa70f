package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"quickprice/internal/program"
	"quickprice/internal/storage"
)

// StoreSource loads programs from the database. Each load produces a fresh
// snapshot decoded from the stored JSONB payloads.
type StoreSource struct {
	store storage.ProgramStore
}

// NewStoreSource wraps a program store.
func NewStoreSource(store storage.ProgramStore) *StoreSource {
	return &StoreSource{store: store}
}

// LoadPrograms decodes every stored program. Rows whose routing columns
// disagree with the payload defer to the columns, since those are what the
// admin operations update.
func (s *StoreSource) LoadPrograms(ctx context.Context) ([]program.Program, error) {
	records, err := s.store.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}

	programs := make([]program.Program, 0, len(records))
	for _, rec := range records {
		p, decodeErr := DecodeRecord(rec)
		if decodeErr != nil {
			return nil, decodeErr
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// DecodeRecord rebuilds a program from its stored form.
func DecodeRecord(rec storage.ProgramRecord) (program.Program, error) {
	var p program.Program
	if err := json.Unmarshal(rec.Payload, &p); err != nil {
		return program.Program{}, fmt.Errorf("decode program %q payload: %w", rec.ID, err)
	}

	p.ID = rec.ID
	p.Name = rec.Name
	p.Class = program.Class(rec.ProgramType)
	p.Tier = program.Tier(rec.Tier)
	p.Active = rec.Active
	p.MarginHoldback = rec.MarginHoldback
	p.CreatedAt = rec.CreatedAt
	p.UpdatedAt = rec.UpdatedAt
	return p, nil
}

// EncodeRecord flattens a program into its stored form.
func EncodeRecord(p program.Program) (storage.ProgramRecord, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return storage.ProgramRecord{}, fmt.Errorf("encode program %q payload: %w", p.ID, err)
	}
	return storage.ProgramRecord{
		ID:             p.ID,
		Name:           p.Name,
		ProgramType:    string(p.Class),
		Tier:           string(p.Tier),
		Active:         p.Active,
		MarginHoldback: p.MarginHoldback,
		Payload:        payload,
	}, nil
}
