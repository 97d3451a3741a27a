package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericToGPA(t *testing.T) {
	tests := []struct {
		grade float64
		want  float64
	}{
		{100, 4.0},
		{90, 4.0},
		{89.99, 3.0},
		{80, 3.0},
		{79.5, 2.0},
		{70, 2.0},
		{60, 1.0},
		{59.9, 0.0},
		{0, 0.0},
		{-5, 0.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NumericToGPA(tt.grade), "grade %v", tt.grade)
	}
}
