package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric result field as the model happens to emit it: a JSON
// number (2 or 2.0), a numeric string ("7.2") or null. Anything else decodes
// to zero instead of failing the whole result.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = Number(f)
			return nil
		}
	}

	*n = 0
	return nil
}

// Int rounds to the nearest integer, for count fields such as hbd/hba.
func (n Number) Int() int {
	return int(math.Round(float64(n)))
}
