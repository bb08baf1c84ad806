package journal

import (
	"encoding/json"
	"fmt"
)

// MarshalRecord serializes a Record to JSON bytes.
func MarshalRecord(record *Record) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("cannot marshal nil Record")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Record to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalRecord deserializes a Record from JSON bytes.
func UnmarshalRecord(data []byte) (*Record, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to Record: %w", err)
	}

	return &record, nil
}
