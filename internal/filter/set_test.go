package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masalog-backend/internal/filter"
)

func TestConditionSet_IDsNeverReused(t *testing.T) {
	set := filter.NewConditionSet()

	first := set.Add("a", "1", true, false)
	second := set.Add("b", "2", true, false)
	assert.NotEqual(t, first.ID, second.ID)

	require.NoError(t, set.Remove(first.ID))
	third := set.Add("c", "3", true, false)
	assert.NotEqual(t, first.ID, third.ID)
	assert.NotEqual(t, second.ID, third.ID)
}

func TestConditionSet_ApplyDropsInert(t *testing.T) {
	set := filter.NewConditionSet()
	set.Add("a", "1", true, false)
	set.Add("", "1", true, false)
	set.Add("b", "", true, false)

	active := set.Apply()
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].Key)

	// Inert rows stay pending for editing.
	assert.Len(t, set.Pending(), 3)
}

func TestConditionSet_TrimsKeyAndValue(t *testing.T) {
	set := filter.NewConditionSet()
	added := set.Add(" a ", " 1 ", true, false)
	assert.Equal(t, "a", added.Key)
	assert.Equal(t, "1", added.Value)

	// A padded condition matches the same records as its trimmed form.
	active := set.Apply()
	require.Len(t, active, 1)
	assert.True(t, active[0].Matches("1"))

	updated, err := set.Update(added.ID, "\tb\t", " 2 ", true, false)
	require.NoError(t, err)
	assert.Equal(t, "b", updated.Key)
	assert.Equal(t, "2", updated.Value)
}

func TestConditionSet_ApplyFreezes(t *testing.T) {
	set := filter.NewConditionSet()
	added := set.Add("a", "1", true, false)
	set.Apply()

	// Edits after apply do not touch the active set until the next apply.
	_, err := set.Update(added.ID, "a", "changed", true, false)
	require.NoError(t, err)

	active := set.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "1", active[0].Value)

	set.Apply()
	active = set.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "changed", active[0].Value)
}

func TestConditionSet_UpdateUnknownID(t *testing.T) {
	set := filter.NewConditionSet()
	_, err := set.Update(99, "a", "1", true, false)
	assert.ErrorIs(t, err, filter.ErrConditionNotFound)
}

func TestConditionSet_RemoveFromBothLists(t *testing.T) {
	set := filter.NewConditionSet()
	cond := set.Add("a", "1", true, false)
	set.Apply()

	require.NoError(t, set.Remove(cond.ID))
	assert.Empty(t, set.Pending())
	assert.Empty(t, set.Active())

	assert.ErrorIs(t, set.Remove(cond.ID), filter.ErrConditionNotFound)
}

func TestConditionSet_ClearResetsCounter(t *testing.T) {
	set := filter.NewConditionSet()
	set.Add("a", "1", true, false)
	set.Add("b", "2", true, false)
	set.Apply()

	set.Clear()
	assert.Empty(t, set.Pending())
	assert.Empty(t, set.Active())

	fresh := set.Add("c", "3", true, false)
	assert.Equal(t, 0, fresh.ID)
}
