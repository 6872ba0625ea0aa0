package filter

import "strings"

// Condition is one user-entered filter row.
type Condition struct {
	ID      int    `json:"id"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Include bool   `json:"include"`
	Fuzzy   bool   `json:"fuzzy"`
}

// Inert reports whether the condition is ignored during evaluation.
// Rows with a blank key or value are kept around for editing but never
// influence a match.
func (c Condition) Inert() bool {
	return strings.TrimSpace(c.Key) == "" || strings.TrimSpace(c.Value) == ""
}

// Matches evaluates the condition against one field value. Comparison is
// exact bytes, no case or whitespace normalization. Fuzzy means substring
// containment; exclude mode negates the result.
func (c Condition) Matches(actual string) bool {
	result := c.rawMatch(actual)
	if c.Include {
		return result
	}
	return !result
}

// rawMatch is the comparison before include/exclude is applied.
func (c Condition) rawMatch(actual string) bool {
	if c.Fuzzy {
		return strings.Contains(actual, c.Value)
	}
	return c.Value == actual
}
