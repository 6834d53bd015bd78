package ecs_test

import (
	"testing"

	"github.com/plus3/slingshot/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQueryPanicsBeforeExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Values() })
}

func TestQueryExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)
	query.Execute()
	assert.Equal(t, 1, query.Len())

	// new archetypes are picked up on the next Execute
	storage.Spawn(Position{X: 3}, Velocity{DX: 1}, Name{})
	assert.Equal(t, 1, query.Len())
	query.Execute()
	assert.Equal(t, 2, query.Len())

	for item := range query.Values() {
		item.Position.X += item.Velocity.DX
	}

	xs := []float64{}
	for _, item := range query.Iter() {
		xs = append(xs, item.Position.X)
	}
	assert.Equal(t, []float64{2, 4}, xs)
}

func TestQuerySeesDeletes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	a := storage.Spawn(Score(1))
	storage.Spawn(Score(2))

	query := ecs.NewQuery[struct{ *Score }](storage)
	query.Execute()
	assert.Equal(t, 2, query.Len())

	storage.Delete(a)
	query.Execute()
	assert.Equal(t, 1, query.Len())
}

func TestQueryPointersSurviveGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	for i := range 10 {
		storage.Spawn(Position{X: float64(i)}, Velocity{})
	}

	query := ecs.NewQuery[struct {
		ecs.EntityId
		*Position
		*Velocity
	}](storage)
	query.Execute()

	var held []struct {
		ecs.EntityId
		*Position
		*Velocity
	}
	for item := range query.Values() {
		held = append(held, item)
	}

	// spawning in the middle of a frame fills several more blocks
	for range 300 {
		storage.Spawn(Position{}, Velocity{})
	}

	for _, item := range held {
		item.Velocity.DX = 7
	}
	for _, item := range held {
		assert.Equal(t, 7.0, ecs.ReadComponent[Velocity](storage, item.EntityId).DX)
	}
}
