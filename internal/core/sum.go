package core

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Total is the JSON payload of the sum command. Sum marshals as a JSON number
// regardless of magnitude.
type Total struct {
	Sum   *big.Int `json:"sum"`
	Count int      `json:"count"`
}

var integerPattern = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ParseIntegers converts command-line tokens into base-10 integers. Tokens
// accept an optional sign and underscore digit separators ("1_000").
func ParseIntegers(tokens []string) ([]*big.Int, error) {
	values := make([]*big.Int, 0, len(tokens))
	for _, raw := range tokens {
		token := strings.TrimSpace(raw)
		if !integerPattern.MatchString(token) {
			return nil, UsageErrorf("invalid integer %q", raw)
		}
		v, ok := new(big.Int).SetString(strings.ReplaceAll(token, "_", ""), 10)
		if !ok {
			return nil, UsageErrorf("invalid integer %q", raw)
		}
		values = append(values, v)
	}
	return values, nil
}

// Sum adds values with arbitrary precision. An empty sequence is a usage error.
func Sum(values []*big.Int) Result {
	if len(values) == 0 {
		return Failed(UsageErrorf("at least one integer is required"))
	}
	total := new(big.Int)
	for _, v := range values {
		if v == nil {
			continue
		}
		total.Add(total, v)
	}
	return Succeeded(
		fmt.Sprintf("Sum: %s (count: %d)", total.String(), len(values)),
		Total{Sum: total, Count: len(values)},
	)
}
