package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{" TAK ", true},
		{"yes", true},
		{"2.0", true},
		{"0", false},
		{"0.0", false},
		{"nie", false},
		{"", false},
		{"nan", false},
		{"NaN", false},
		{"inf", false},
		{"-Infinity", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truthy(tt.in), "%q", tt.in)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{" 3.0 ", 3},
		{"-2", -2},
		{"", DefaultOrder},
		{"x", DefaultOrder},
		{"nan", DefaultOrder},
		{"inf", DefaultOrder},
		{"99999999999999999999", math.MaxInt},
		{"1e300", math.MaxInt},
		{"-1e300", math.MinInt},
		{"1e999", math.MaxInt},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseInt(tt.in, DefaultOrder), "%q", tt.in)
	}
}
