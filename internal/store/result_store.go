package store

import (
	"sync"

	"masalog-backend/internal/filter"
	"masalog-backend/internal/model"
	"masalog-backend/internal/query"
)

// ResultStore holds the single session's state: the records of the latest
// fetch, the filter rows, and the current view (sort order, time filter,
// page). A fetch fully replaces the records; nothing is merged.
type ResultStore struct {
	mu         sync.RWMutex
	records    []model.LogRecord
	conditions *filter.ConditionSet
	sortOrder  query.SortOrder
	timeFilter filter.TimeFilter
	page       int
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		conditions: filter.NewConditionSet(),
		sortOrder:  query.NewestFirst,
		timeFilter: filter.TimeFilter{Mode: filter.TimeFilterAll},
		page:       1,
	}
}

// ReplaceRecords swaps in a fresh result set and rewinds to page 1.
func (s *ResultStore) ReplaceRecords(records []model.LogRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.page = 1
}

// Snapshot returns a copy of the current result set.
func (s *ResultStore) Snapshot() []model.LogRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.LogRecord(nil), s.records...)
}

func (s *ResultStore) AddCondition(key, value string, include, fuzzy bool) filter.Condition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conditions.Add(key, value, include, fuzzy)
}

func (s *ResultStore) UpdateCondition(id int, key, value string, include, fuzzy bool) (filter.Condition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conditions.Update(id, key, value, include, fuzzy)
}

// RemoveCondition drops the row and re-applies, like removing a filter row
// in place. Resets to page 1.
func (s *ResultStore) RemoveCondition(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conditions.Remove(id); err != nil {
		return err
	}
	s.conditions.Apply()
	s.page = 1
	return nil
}

// ApplyConditions freezes the pending rows into the active set and resets
// to page 1.
func (s *ResultStore) ApplyConditions() []filter.Condition {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = 1
	return s.conditions.Apply()
}

func (s *ResultStore) ClearConditions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conditions.Clear()
	s.page = 1
}

func (s *ResultStore) PendingConditions() []filter.Condition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conditions.Pending()
}

func (s *ResultStore) ActiveConditions() []filter.Condition {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conditions.Active()
}

// SetSortOrder changes the ordering and resets to page 1.
func (s *ResultStore) SetSortOrder(order query.SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortOrder = order
	s.page = 1
}

func (s *ResultStore) SortOrder() query.SortOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOrder
}

// SetTimeFilter changes the time bound and resets to page 1.
func (s *ResultStore) SetTimeFilter(tf filter.TimeFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeFilter = tf
	s.page = 1
}

func (s *ResultStore) TimeFilter() filter.TimeFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeFilter
}

func (s *ResultStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

func (s *ResultStore) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}
