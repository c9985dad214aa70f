// Package sheets loads program rate sheets from files, the database, or the
// built-in defaults, and validates them before they reach the engine.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"quickprice/internal/program"
)

// ProgramSource yields the program snapshot a pricing run executes against.
// Implementations must return an independent slice on every call so a run is
// never affected by later sheet updates.
type ProgramSource interface {
	LoadPrograms(ctx context.Context) ([]program.Program, error)
}

// StaticSource serves a fixed, pre-validated program set.
type StaticSource struct {
	programs []program.Program
}

// NewStaticSource wraps a program slice. The slice is copied.
func NewStaticSource(programs []program.Program) *StaticSource {
	cloned := make([]program.Program, len(programs))
	copy(cloned, programs)
	return &StaticSource{programs: cloned}
}

// LoadPrograms returns a copy of the static set.
func (s *StaticSource) LoadPrograms(_ context.Context) ([]program.Program, error) {
	out := make([]program.Program, len(s.programs))
	copy(out, s.programs)
	return out, nil
}

// FileSource reads programs from a JSON sheet file on every load, so edits
// to the file are picked up by the next pricing run.
type FileSource struct {
	path string
}

// NewFileSource points a source at a sheet file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// sheetFile accepts either a bare program array or a wrapped document.
type sheetFile struct {
	Programs []program.Program `json:"programs"`
}

// LoadPrograms parses and validates the sheet file.
func (f *FileSource) LoadPrograms(_ context.Context) ([]program.Program, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read sheet file: %w", err)
	}
	programs, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("sheet file %s: %w", f.path, err)
	}
	return programs, nil
}

// ParseSheet decodes a JSON rate sheet. Both a top-level array and a
// {"programs": [...]} document are accepted. Every program is validated.
func ParseSheet(data []byte) ([]program.Program, error) {
	var programs []program.Program
	if err := json.Unmarshal(data, &programs); err != nil {
		var doc sheetFile
		if docErr := json.Unmarshal(data, &doc); docErr != nil {
			return nil, fmt.Errorf("decode sheet: %w", err)
		}
		programs = doc.Programs
	}

	if len(programs) == 0 {
		return nil, fmt.Errorf("sheet contains no programs")
	}
	for i := range programs {
		if err := Validate(programs[i]); err != nil {
			return nil, fmt.Errorf("program %q: %w", programs[i].ID, err)
		}
	}
	return programs, nil
}
