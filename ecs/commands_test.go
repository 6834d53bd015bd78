package ecs_test

import (
	"testing"

	"github.com/plus3/slingshot/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	victim := storage.Spawn(Score(1))

	commands := &ecs.Commands{}
	var log []string

	commands.Defer(func() {
		log = append(log, "defer")
		assert.False(t, storage.Alive(victim), "deletes run before defers")
		assert.NotNil(t, storage.GetArchetype(Position{}), "spawns run before defers")
	})
	commands.Spawn(Position{X: 1})
	commands.Delete(victim)
	assert.Equal(t, 3, commands.Pending())

	commands.Flush(storage)

	assert.Equal(t, []string{"defer"}, log)
	assert.Equal(t, 0, commands.Pending())
}

func TestCommandsDeferMayQueueMore(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := &ecs.Commands{}

	commands.Defer(func() {
		commands.Spawn(Score(7))
	})
	commands.Flush(storage)

	view := ecs.NewView[struct{ *Score }](storage)
	count := 0
	for item := range view.Values() {
		assert.Equal(t, Score(7), *item.Score)
		count++
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, commands.Pending())
}

type spawnSystem struct{}

func (s *spawnSystem) Execute(frame *ecs.UpdateFrame) {
	frame.Commands.Spawn(Position{X: 1, Y: 2})
}

func TestCommandsAppliedAfterFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	seen := -1
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&spawnSystem{})
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		seen = frame.Commands.Pending()
		assert.Nil(t, frame.Storage.GetArchetype(Position{}))
	}))

	scheduler.Once(0.016)

	assert.Equal(t, 1, seen)
	assert.NotNil(t, storage.GetArchetype(Position{}))
}
