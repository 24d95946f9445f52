package commands

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// parseKeyValues turns repeated "key=value" flags into an argument map.
// Values that parse as JSON scalars keep their type (numbers, booleans);
// everything else stays a string.
func parseKeyValues(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}

		var parsed any
		if err := sonic.UnmarshalString(value, &parsed); err == nil {
			switch parsed.(type) {
			case float64, bool, nil:
				out[key] = parsed
				continue
			}
		}
		out[key] = value
	}
	return out, nil
}
