package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	// decimalPrefix matches the longest leading decimal literal, including
	// the Infinity keyword.
	decimalPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

	// decimalExact matches a complete plain decimal literal.
	decimalExact = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
)

// ParseDecimal reads the longest decimal prefix of raw, ignoring leading
// whitespace and any trailing text ("12.5abc" is 12.5). It returns NaN when
// no prefix parses. Numeric raw values are returned unchanged.
func ParseDecimal(raw any) float64 {
	if f, ok := numeric(raw); ok {
		return f
	}
	s, ok := text(raw)
	if !ok {
		return math.NaN()
	}

	s = strings.TrimLeftFunc(s, isSpace)
	m := decimalPrefix.FindString(s)
	if m == "" {
		return math.NaN()
	}
	return parseLiteral(m)
}

// ParseDecimalStrict requires the whole of raw, after trimming surrounding
// whitespace, to be a plain decimal literal. Anything else is NaN.
func ParseDecimalStrict(raw any) float64 {
	if f, ok := numeric(raw); ok {
		return f
	}
	s, ok := text(raw)
	if !ok {
		return math.NaN()
	}

	s = strings.TrimFunc(s, isSpace)
	if !decimalExact.MatchString(s) {
		return math.NaN()
	}
	return parseLiteral(s)
}

func parseLiteral(lit string) float64 {
	switch strings.TrimPrefix(lit, "+") {
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	// ErrRange still yields ±Inf or 0, which is what we want.
	return f
}

// numeric returns raw as a float64 when it already holds a number.
func numeric(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	}
	return 0, false
}

// text returns the textual form of raw. It reports false for nil and for
// shapes that have no sensible text (booleans, maps, slices).
func text(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case json.Number:
		return string(v), true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		return v.String(), true
	}
	if f, ok := numeric(raw); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), true
	}
	return "", false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// isEmpty reports whether raw is missing or an empty string.
func isEmpty(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case *string:
		return v == nil || *v == ""
	case *float64:
		return v == nil
	}
	return false
}
