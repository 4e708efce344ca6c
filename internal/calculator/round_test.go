package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"plain truncation", 1.234, 1.23},
		{"round up", 1.236, 1.24},
		// Half-boundary cases follow the float64 representation of
		// in*100, documented on Round2 itself.
		{"2.345 lands above the half", 2.345, 2.35},
		{"1.005 lands below the half", 1.005, 1.00},
		{"exact half rounds away", 2.675, 2.68},
		{"exact half rounds away (2.355)", 2.355, 2.36},
		{"negative half away from zero", -2.345, -2.35},
		{"negative below the half", -1.005, -1.00},
		{"zero", 0, 0},
		{"already two decimals", 42.42, 42.42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round2(tt.in))
		})
	}
}
