package filter

import (
	"errors"
	"strings"
)

var ErrConditionNotFound = errors.New("filter condition not found")

// ConditionSet holds the session's filter rows: a pending list the user
// edits freely and an active list frozen by Apply. IDs come from a counter
// that never repeats within the set's lifetime; Clear destroys the set and
// restarts the counter.
//
// The set itself is not goroutine safe; the owning store serializes access.
type ConditionSet struct {
	pending []Condition
	active  []Condition
	nextID  int
}

func NewConditionSet() *ConditionSet {
	return &ConditionSet{}
}

// Add creates a pending condition and returns its ID. Key and value are
// stored trimmed, so a row is inert exactly when it can never match.
func (s *ConditionSet) Add(key, value string, include, fuzzy bool) Condition {
	c := Condition{
		ID:      s.nextID,
		Key:     strings.TrimSpace(key),
		Value:   strings.TrimSpace(value),
		Include: include,
		Fuzzy:   fuzzy,
	}
	s.nextID++
	s.pending = append(s.pending, c)
	return c
}

// Update edits a pending condition in place, keeping its ID.
func (s *ConditionSet) Update(id int, key, value string, include, fuzzy bool) (Condition, error) {
	for i, c := range s.pending {
		if c.ID == id {
			s.pending[i].Key = strings.TrimSpace(key)
			s.pending[i].Value = strings.TrimSpace(value)
			s.pending[i].Include = include
			s.pending[i].Fuzzy = fuzzy
			return s.pending[i], nil
		}
	}
	return Condition{}, ErrConditionNotFound
}

// Remove deletes the condition from both lists.
func (s *ConditionSet) Remove(id int) error {
	found := false
	s.pending = deleteByID(s.pending, id, &found)
	s.active = deleteByID(s.active, id, &found)
	if !found {
		return ErrConditionNotFound
	}
	return nil
}

func deleteByID(conditions []Condition, id int, found *bool) []Condition {
	kept := conditions[:0]
	for _, c := range conditions {
		if c.ID == id {
			*found = true
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

// Apply freezes the pending rows into the active set, dropping inert ones.
func (s *ConditionSet) Apply() []Condition {
	active := make([]Condition, 0, len(s.pending))
	for _, c := range s.pending {
		if c.Inert() {
			continue
		}
		active = append(active, c)
	}
	s.active = active
	return s.Active()
}

// Clear drops everything and resets the ID counter.
func (s *ConditionSet) Clear() {
	s.pending = nil
	s.active = nil
	s.nextID = 0
}

// Pending returns a copy of the editable rows.
func (s *ConditionSet) Pending() []Condition {
	return append([]Condition(nil), s.pending...)
}

// Active returns a copy of the applied rows.
func (s *ConditionSet) Active() []Condition {
	return append([]Condition(nil), s.active...)
}
