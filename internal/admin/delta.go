package admin

import (
	"encoding/json"
	"fmt"
)

// applyDelta merges delta into v the way the REST server merges a PATCH body.
func applyDelta[T any](v T, delta map[string]any) (T, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return v, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return v, err
	}
	for k, val := range delta {
		fields[k] = val
	}
	b, err = json.Marshal(fields)
	if err != nil {
		return v, err
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return v, fmt.Errorf("apply delta: %w", err)
	}
	return out, nil
}
