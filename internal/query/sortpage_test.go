package query_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masalog-backend/internal/model"
	"masalog-backend/internal/query"
)

func record(ts, marker string) model.LogRecord {
	return model.LogRecord{
		Timestamp: ts,
		Fields:    model.Fields{{Key: "marker", Value: marker}},
	}
}

func TestSort(t *testing.T) {
	records := []model.LogRecord{
		record("2024-01-01 11:00:00", "b"),
		record("2024-01-01 09:00:00", "a"),
		record("2024-01-01 13:00:00", "c"),
	}

	oldest := query.Sort(records, query.OldestFirst)
	assert.Equal(t, "2024-01-01 09:00:00", oldest[0].Timestamp)
	assert.Equal(t, "2024-01-01 13:00:00", oldest[2].Timestamp)

	newest := query.Sort(records, query.NewestFirst)
	assert.Equal(t, "2024-01-01 13:00:00", newest[0].Timestamp)
	assert.Equal(t, "2024-01-01 09:00:00", newest[2].Timestamp)

	// Input order untouched.
	assert.Equal(t, "2024-01-01 11:00:00", records[0].Timestamp)
}

func TestSort_Stable(t *testing.T) {
	records := []model.LogRecord{
		record("2024-01-01 10:00:00", "first"),
		record("2024-01-01 10:00:00", "second"),
		record("2024-01-01 09:00:00", "x"),
		record("2024-01-01 10:00:00", "third"),
	}

	for _, order := range []query.SortOrder{query.NewestFirst, query.OldestFirst} {
		sorted := query.Sort(records, order)
		var markers []string
		for _, rec := range sorted {
			if rec.Timestamp == "2024-01-01 10:00:00" {
				markers = append(markers, rec.FieldValue("marker"))
			}
		}
		assert.Equal(t, []string{"first", "second", "third"}, markers, "order %s", order)
	}
}

func TestSort_ReverseProperty(t *testing.T) {
	records := []model.LogRecord{
		record("2024-01-01 11:00:00", "b"),
		record("2024-01-01 09:00:00", "a"),
		record("2024-01-01 13:00:00", "c"),
		record("2024-01-01 08:00:00", "d"),
	}

	newest := query.Sort(records, query.NewestFirst)
	oldest := query.Sort(newest, query.OldestFirst)
	for i := range oldest {
		assert.Equal(t, newest[len(newest)-1-i].Timestamp, oldest[i].Timestamp)
	}
}

func TestSort_InvalidTimestampSortsLexicographically(t *testing.T) {
	records := []model.LogRecord{
		record(model.InvalidTimestamp, "bad"),
		record("2024-01-01 09:00:00", "a"),
	}

	// The sentinel starts with a letter, so it compares greater than any
	// canonical timestamp.
	oldest := query.Sort(records, query.OldestFirst)
	assert.Equal(t, model.InvalidTimestamp, oldest[1].Timestamp)

	newest := query.Sort(records, query.NewestFirst)
	assert.Equal(t, model.InvalidTimestamp, newest[0].Timestamp)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, query.TotalPages(0, 10))
	assert.Equal(t, 1, query.TotalPages(10, 10))
	assert.Equal(t, 2, query.TotalPages(11, 10))
	assert.Equal(t, 3, query.TotalPages(25, 10))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, query.ClampPage(0, 25, 10))
	assert.Equal(t, 1, query.ClampPage(-5, 25, 10))
	assert.Equal(t, 2, query.ClampPage(2, 25, 10))
	assert.Equal(t, 3, query.ClampPage(99, 25, 10))
	assert.Equal(t, 1, query.ClampPage(5, 0, 10))
}

func TestPaginate(t *testing.T) {
	var records []model.LogRecord
	for i := 0; i < 25; i++ {
		records = append(records, record("2024-01-01 10:00:00", fmt.Sprintf("%d", i)))
	}

	first := query.Paginate(records, 10, 1)
	require.Len(t, first, 10)
	assert.Equal(t, "0", first[0].FieldValue("marker"))

	last := query.Paginate(records, 10, 3)
	require.Len(t, last, 5)
	assert.Equal(t, "24", last[4].FieldValue("marker"))

	clamped := query.Paginate(records, 10, 99)
	assert.Equal(t, last, clamped)

	assert.Empty(t, query.Paginate(nil, 10, 1))
}

func TestPaginate_PagesCoverWithoutOverlap(t *testing.T) {
	var records []model.LogRecord
	for i := 0; i < 23; i++ {
		records = append(records, record(fmt.Sprintf("2024-01-01 %02d:00:00", i), fmt.Sprintf("%d", i)))
	}
	sorted := query.Sort(records, query.OldestFirst)

	pageSize := 7
	var rebuilt []model.LogRecord
	for page := 1; page <= query.TotalPages(len(sorted), pageSize); page++ {
		rebuilt = append(rebuilt, query.Paginate(sorted, pageSize, page)...)
	}
	assert.Equal(t, sorted, rebuilt)
}
