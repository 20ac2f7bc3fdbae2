package utils

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ParseSpeed normalizes the maxspeed shapes map data shows up with: plain
// numbers, tagged strings like "50 km/h", or arrays of either.
func ParseSpeed(speed interface{}, fallback float64) float64 {
	switch v := speed.(type) {
	case float64:
		return v
	case string:
		if match := numberPattern.FindString(v); match != "" {
			if parsed, err := strconv.ParseFloat(match, 64); err == nil {
				return parsed
			}
		}
		return fallback
	case []interface{}:
		if len(v) > 0 {
			return ParseSpeed(v[0], fallback)
		}
		return fallback
	default:
		return fallback
	}
}

// ParseName accepts a string or an array of strings and returns the first
// usable value.
func ParseName(name interface{}, fallback string) string {
	switch v := name.(type) {
	case string:
		if v != "" {
			return v
		}
		return fallback
	case []interface{}:
		if len(v) > 0 {
			return ParseName(v[0], fallback)
		}
		return fallback
	default:
		return fallback
	}
}

// ParseOneWay accepts a bool, the OSM-style string tags, or an array of
// either. Anything unrecognized means two-way.
func ParseOneWay(oneWay interface{}) bool {
	switch v := oneWay.(type) {
	case bool:
		return v
	case string:
		return v == "yes" || v == "true" || v == "1" || v == "-1"
	case []interface{}:
		if len(v) > 0 {
			return ParseOneWay(v[0])
		}
		return false
	default:
		return false
	}
}
