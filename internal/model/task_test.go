package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFilter(t *testing.T) {
	for _, v := range []string{"", "ALL"} {
		f, err := StatusFilter(v)
		require.NoError(t, err)
		require.Nil(t, f, "value %q must mean no constraint", v)
	}

	f, err := StatusFilter("IN_PROGRESS")
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, *f)

	_, err = StatusFilter("BOGUS")
	require.Error(t, err)
}

func TestPriorityFilter(t *testing.T) {
	f, err := PriorityFilter("ALL")
	require.NoError(t, err)
	require.Nil(t, f)

	f, err = PriorityFilter("HIGH")
	require.NoError(t, err)
	require.Equal(t, PriorityHigh, *f)

	_, err = PriorityFilter("URGENT")
	require.Error(t, err)
}

func TestTypeFilter(t *testing.T) {
	f, err := TypeFilter("ALL")
	require.NoError(t, err)
	require.Nil(t, f)

	f, err = TypeFilter("BUG")
	require.NoError(t, err)
	require.Equal(t, TypeBug, *f)

	_, err = TypeFilter("CHORE")
	require.Error(t, err)
}

func TestEnumsRejectSentinel(t *testing.T) {
	// ALL is a filter convention, never a persistable value.
	require.False(t, TaskStatus("ALL").Valid())
	require.False(t, TaskPriority("ALL").Valid())
	require.False(t, TaskType("ALL").Valid())
}
