package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationHours(t *testing.T) {
	tests := []struct {
		iso      string
		expected float64
	}{
		{"PT8H", 8},
		{"PT30M", 0.5},
		{"PT1H30M", 1.5},
		{"P1D", 24},
		{"P1DT12H", 36},
		{"", 0},
		{"8 hours", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, durationHours(tt.iso), "iso=%q", tt.iso)
	}
}
