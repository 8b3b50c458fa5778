package db_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSetDropsRevisitsKeepsFirstOccurrenceOrder(t *testing.T) {
	route := Route{PointSequence: []string{"p2", "p1", "p2", "p3", "p1"}}

	assert.Equal(t, []string{"p2", "p1", "p3"}, route.PointSet())
}

func TestPointSetEmptySequence(t *testing.T) {
	route := Route{}

	assert.Empty(t, route.PointSet())
}

func TestWalkStatusValid(t *testing.T) {
	assert.True(t, WalkGoing.Valid())
	assert.True(t, WalkDone.Valid())
	assert.True(t, WalkCancelled.Valid())
	assert.False(t, WalkStatus("paused").Valid())
	assert.False(t, WalkStatus("").Valid())
}
