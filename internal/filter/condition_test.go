package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"masalog-backend/internal/filter"
)

func TestCondition_Matches(t *testing.T) {
	tests := []struct {
		name     string
		cond     filter.Condition
		actual   string
		expected bool
	}{
		{
			name:     "Exact Include Match",
			cond:     filter.Condition{Key: "a", Value: "1", Include: true},
			actual:   "1",
			expected: true,
		},
		{
			name:     "Exact Include Mismatch",
			cond:     filter.Condition{Key: "a", Value: "1", Include: true},
			actual:   "10",
			expected: false,
		},
		{
			name:     "Fuzzy Include Substring",
			cond:     filter.Condition{Key: "a", Value: "1", Include: true, Fuzzy: true},
			actual:   "10",
			expected: true,
		},
		{
			name:     "Exclude Negates",
			cond:     filter.Condition{Key: "a", Value: "1", Include: false},
			actual:   "1",
			expected: false,
		},
		{
			name:     "Exclude Of Mismatch Keeps",
			cond:     filter.Condition{Key: "a", Value: "1", Include: false},
			actual:   "2",
			expected: true,
		},
		{
			name:     "No Case Normalization",
			cond:     filter.Condition{Key: "a", Value: "ABC", Include: true},
			actual:   "abc",
			expected: false,
		},
		{
			name:     "No Whitespace Normalization",
			cond:     filter.Condition{Key: "a", Value: "x", Include: true},
			actual:   " x ",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cond.Matches(tt.actual))
		})
	}
}

func TestCondition_ExcludeIsNegation(t *testing.T) {
	values := []string{"", "1", "10", "abc", "some longer value"}
	conds := []filter.Condition{
		{Key: "k", Value: "1", Fuzzy: false},
		{Key: "k", Value: "1", Fuzzy: true},
		{Key: "k", Value: "abc", Fuzzy: true},
	}

	for _, cond := range conds {
		include := cond
		include.Include = true
		exclude := cond
		exclude.Include = false
		for _, v := range values {
			assert.Equal(t, include.Matches(v), !exclude.Matches(v),
				"value %q, condition %+v", v, cond)
		}
	}
}

func TestCondition_Inert(t *testing.T) {
	assert.True(t, filter.Condition{Key: "", Value: "1"}.Inert())
	assert.True(t, filter.Condition{Key: "a", Value: ""}.Inert())
	assert.True(t, filter.Condition{Key: "  ", Value: "1"}.Inert())
	assert.False(t, filter.Condition{Key: "a", Value: "1"}.Inert())
}
