package profiler

import (
	"strconv"
	"strings"
	"time"

	"dq-check/internal/model"
)

// temporalLayouts are tried in order when classifying date/time values.
var temporalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// classify applies the type-priority ladder: integer, then float, then
// boolean, then temporal, falling back to string. A column with no non-null
// values is unknown.
func classify(values []string) model.DataType {
	if len(values) == 0 {
		return model.TypeUnknown
	}
	allInt, allFloat, allBool, allTime := true, true, true, true
	for _, v := range values {
		if allInt {
			_, err := strconv.ParseInt(v, 10, 64)
			allInt = err == nil
		}
		if allFloat {
			_, err := strconv.ParseFloat(v, 64)
			allFloat = err == nil
		}
		if allBool {
			allBool = isBoolToken(v)
		}
		if allTime {
			_, ok := parseTemporal(v)
			allTime = ok
		}
		if !allInt && !allFloat && !allBool && !allTime {
			return model.TypeString
		}
	}
	switch {
	case allInt:
		return model.TypeInteger
	case allFloat:
		return model.TypeFloat
	case allBool:
		return model.TypeBoolean
	case allTime:
		return model.TypeTemporal
	default:
		return model.TypeString
	}
}

func isBoolToken(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

func parseTemporal(s string) (time.Time, bool) {
	for _, layout := range temporalLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

// canonical maps a raw value to the form used for distinct counting, so that
// lexically different spellings of the same value ("1.50" vs "1.5") count
// once.
func canonical(raw string, typ model.DataType) string {
	switch typ {
	case model.TypeInteger:
		if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return strconv.FormatInt(v, 10)
		}
	case model.TypeFloat:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
	case model.TypeBoolean:
		return strings.ToLower(raw)
	case model.TypeTemporal:
		if ts, ok := parseTemporal(raw); ok {
			return ts.UTC().Format(time.RFC3339)
		}
	}
	return raw
}
