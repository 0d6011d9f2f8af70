package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func yearsPtr(v float64) *float64 { return &v }

func TestCompareYears(t *testing.T) {
	tests := []struct {
		name      string
		required  *float64
		candidate *float64
		expected  float64
	}{
		{
			name:      "Candidate Meets Requirement",
			required:  yearsPtr(5),
			candidate: yearsPtr(5),
			expected:  ExperienceMet,
		},
		{
			name:      "Candidate Exceeds Requirement",
			required:  yearsPtr(3),
			candidate: yearsPtr(10),
			expected:  ExperienceMet,
		},
		{
			name:      "Candidate Falls Short",
			required:  yearsPtr(5),
			candidate: yearsPtr(3),
			expected:  ExperienceShort,
		},
		{
			name:      "No Requirement",
			required:  nil,
			candidate: yearsPtr(1),
			expected:  ExperienceMet,
		},
		{
			name:      "No Requirement No Candidate",
			required:  nil,
			candidate: nil,
			expected:  ExperienceMet,
		},
		{
			name:      "Missing Candidate Data",
			required:  yearsPtr(8),
			candidate: nil,
			expected:  ExperienceMet,
		},
		{
			name:      "Negative Requirement Treated As Unknown",
			required:  yearsPtr(-2),
			candidate: yearsPtr(0),
			expected:  ExperienceMet,
		},
		{
			name:      "Negative Candidate Treated As Unknown",
			required:  yearsPtr(4),
			candidate: yearsPtr(-1),
			expected:  ExperienceMet,
		},
		{
			name:      "NaN Requirement Treated As Unknown",
			required:  yearsPtr(math.NaN()),
			candidate: yearsPtr(2),
			expected:  ExperienceMet,
		},
		{
			name:      "Zero Requirement Zero Candidate",
			required:  yearsPtr(0),
			candidate: yearsPtr(0),
			expected:  ExperienceMet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompareYears(tt.required, tt.candidate))
		})
	}
}

func TestCompareYears_Total(t *testing.T) {
	// Every combination of odd inputs must produce exactly one of the two
	// documented scores, never anything else.
	values := []*float64{
		nil,
		yearsPtr(0), yearsPtr(3), yearsPtr(100),
		yearsPtr(-5),
		yearsPtr(math.NaN()),
		yearsPtr(math.Inf(1)), yearsPtr(math.Inf(-1)),
	}

	for _, required := range values {
		for _, candidate := range values {
			got := CompareYears(required, candidate)
			assert.Contains(t, []float64{ExperienceShort, ExperienceMet}, got)
		}
	}
}
