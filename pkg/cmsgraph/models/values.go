package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var truthyValues = map[string]bool{
	"1": true, "true": true, "t": true, "yes": true, "y": true, "on": true,
	"tak": true, "prawda": true,
}

// Truthy interprets a publish/enabled cell.
// Numbers are true when non-zero; text is matched against a fixed set of yes-words.
func Truthy(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return false
	}
	if truthyValues[s] {
		return true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f != 0
	}
	return false
}

// ParseInt parses an integer cell, accepting decimal notation ("3.0").
// Returns def when the cell is empty or not a finite number; values outside
// the int range are clamped.
func ParseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if i, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(i)
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case err != nil && !isRange(err):
		return def
	case err == nil && (math.IsNaN(f) || math.IsInf(f, 0)):
		return def
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}

func isRange(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}
