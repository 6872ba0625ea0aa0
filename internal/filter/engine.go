package filter

import "masalog-backend/internal/model"

// Apply filters records against the condition set. Conditions are grouped by
// key; a record survives when every key group has at least one matching
// condition (AND across keys, OR within a key). A key missing from the
// record compares as the empty string. Inert conditions are dropped first;
// an empty set passes every record through untouched.
//
// Pure function: the input slice is never mutated.
func Apply(records []model.LogRecord, conditions []Condition) []model.LogRecord {
	grouped := groupByKey(conditions)
	if len(grouped) == 0 {
		return records
	}

	filtered := make([]model.LogRecord, 0, len(records))
	for _, rec := range records {
		if recordMatches(rec, grouped) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func groupByKey(conditions []Condition) map[string][]Condition {
	grouped := make(map[string][]Condition)
	for _, c := range conditions {
		if c.Inert() {
			continue
		}
		grouped[c.Key] = append(grouped[c.Key], c)
	}
	return grouped
}

func recordMatches(rec model.LogRecord, grouped map[string][]Condition) bool {
	for key, group := range grouped {
		value, _ := rec.Fields.Get(key)
		anyMatch := false
		for _, c := range group {
			if c.Matches(value) {
				anyMatch = true
				break
			}
		}
		if !anyMatch {
			return false
		}
	}
	return true
}

// MatchingCondition reports which condition, if any, positively matches the
// displayed value of one field. Used for highlight rendering only: the
// include/exclude flag of the returned condition is not applied here, it is
// surfaced to the caller. First match wins, in condition order.
func MatchingCondition(conditions []Condition, key, displayValue string) (Condition, bool) {
	for _, c := range conditions {
		if c.Inert() || c.Key != key {
			continue
		}
		if c.rawMatch(displayValue) {
			return c, true
		}
	}
	return Condition{}, false
}
