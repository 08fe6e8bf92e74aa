package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/clampvec/internal/vector"
)

// ParseVector parses a comma-separated list such as "1, -2,3".
// Blank input yields an empty vector; an empty element inside a list
// ("1,,2" or a trailing comma) is an error. Values are range-checked.
func ParseVector(s string) (*vector.Vector, error) {
	if strings.TrimSpace(s) == "" {
		return vector.FromValues()
	}

	fields := strings.Split(s, ",")
	values := make([]int, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			return nil, fmt.Errorf("element %d is empty", i)
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("element %d: %q is not an integer", i, field)
		}
		values[i] = n
	}
	return vector.FromValues(values...)
}

// VectorResult is the JSON payload for commands that produce a vector.
type VectorResult struct {
	Length int   `json:"length"`
	Values []int `json:"values"`
}

func vectorResult(v *vector.Vector) VectorResult {
	return VectorResult{Length: v.Len(), Values: v.Values()}
}
