package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUniqueTaskKeys(t *testing.T) {
	tasks := []*Task{
		{Bucket: "Y", Labels: []string{"p2", "p1"}, AssignedTo: []string{"bob"}},
		{Bucket: "X", Labels: []string{"p1"}, AssignedTo: []string{"alice", "bob"}},
		{Bucket: "X"},
	}

	keys := NewUniqueTaskKeys(tasks)

	assert.Equal(t, []string{"X", "Y"}, keys.Buckets)
	assert.Equal(t, []string{"p1", "p2"}, keys.Labels)
	assert.Equal(t, []string{"alice", "bob"}, keys.People)
}

func TestUniqueTaskKeysValues(t *testing.T) {
	keys := UniqueTaskKeys{Buckets: []string{"X"}, Labels: []string{"l"}, People: []string{"p"}}

	assert.Equal(t, []string{"X"}, keys.Values(ColumnBucket))
	assert.Equal(t, []string{"l"}, keys.Values(ColumnLabels))
	assert.Equal(t, []string{"p"}, keys.Values(ColumnAssignedTo))
	assert.Equal(t, []string{"Urgent", "Important", "Mid", "Low"}, keys.Values(ColumnPriority))
	assert.Equal(t, []string{"NotStarted", "Ongoing", "Done"}, keys.Values(ColumnProgress))
	assert.Nil(t, keys.Values(ColumnName))
	assert.Nil(t, keys.Values(ColumnDeadline))
}

func TestNewUniqueTaskKeys_Empty(t *testing.T) {
	keys := NewUniqueTaskKeys(nil)
	assert.Empty(t, keys.Buckets)
	assert.Empty(t, keys.Labels)
	assert.Empty(t, keys.People)
}
