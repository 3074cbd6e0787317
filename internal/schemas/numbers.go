package schemas

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxExactInteger is the largest magnitude a float64 holds without losing integer precision.
const maxExactInteger = 1 << 53

// NormalizeIntegers rewrites integral numbers written in decimal or exponent
// form ("36.0", "3.6e1") as plain integers, so a document that passes the
// schema's "integer" checks also decodes into int fields. Other values are
// left as they are.
func NormalizeIntegers(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse request JSON: %w", err)
	}

	out, err := json.Marshal(normalizeNumbers(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode request JSON: %w", err)
	}
	return out, nil
}

func normalizeNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for key, item := range val {
			val[key] = normalizeNumbers(item)
		}
	case []any:
		for i, item := range val {
			val[i] = normalizeNumbers(item)
		}
	case json.Number:
		if !strings.ContainsAny(val.String(), ".eE") {
			return val
		}
		f, err := val.Float64()
		if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInteger {
			return val
		}
		return json.Number(strconv.FormatInt(int64(f), 10))
	}
	return v
}
