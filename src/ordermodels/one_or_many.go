package ordermodels

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OneOrMany decodes a json value that is either a single object or an array of
// objects. The order api collapses one element lists into a bare object.
type OneOrMany[T any] []T

func (s *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	if trimmed[0] == '[' {
		var many []T
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return fmt.Errorf("OneOrMany: failed to unmarshal array: %w", err)
		}

		*s = many
		return nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return fmt.Errorf("OneOrMany: failed to unmarshal object: %w", err)
	}

	*s = []T{one}
	return nil
}
