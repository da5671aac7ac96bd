package statement

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// envelope is the record file shape: the record sits under a top-level
// "data" key.
type envelope struct {
	Data *Record `json:"data"`
}

// LoadRecord reads a JSON record file from the given path.
func LoadRecord(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open record file %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadRecordFromReader(f)
}

// LoadRecordFromReader parses a JSON record, accepting either the
// {"data": {...}} envelope or a bare record object.
func LoadRecordFromReader(r io.Reader) (*Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		return env.Data, nil
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("error reading record data, %w", err)
	}
	return &rec, nil
}
