package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/slingshot/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveSystem struct {
	Movers ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *moveSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Movers.Values() {
		item.Position.X += item.Velocity.DX * frame.DeltaTime
		item.Position.Y += item.Velocity.DY * frame.DeltaTime
	}
}

type tickSystem struct {
	Counter ecs.Singleton[Counter]
	order   *[]string
}

func (s *tickSystem) Execute(frame *ecs.UpdateFrame) {
	s.Counter.Get().Ticks++
	if s.order != nil {
		*s.order = append(*s.order, "tick")
	}
}

func TestSchedulerInitializesFields(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(&Counter{})
	id := storage.Spawn(Position{}, Velocity{DX: 2, DY: -1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&moveSystem{})
	scheduler.Register(&tickSystem{})

	scheduler.Once(0.5)
	scheduler.Once(0.5)

	pos := ecs.ReadComponent[Position](storage, id)
	assert.Equal(t, Position{X: 2, Y: -1}, *pos)

	var counter *Counter
	require.True(t, storage.ReadSingleton(&counter))
	assert.Equal(t, 2, counter.Ticks)
}

func TestSchedulerRefreshesQueryPerSystem(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{}, Velocity{DX: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Storage.Spawn(Position{X: 10}, Velocity{DX: 1})
	}))
	mover := &moveSystem{}
	scheduler.Register(mover)

	scheduler.Once(1)

	assert.Equal(t, 2, mover.Movers.Len(), "query sees entities spawned by earlier systems")
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(&Counter{})

	var order []string
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "first") }))
	scheduler.Register(&tickSystem{order: &order})
	scheduler.Register(ecs.SystemFunc(func(*ecs.UpdateFrame) { order = append(order, "last") }))

	scheduler.Once(0.016)

	assert.Equal(t, []string{"first", "tick", "last"}, order)
}

func TestSchedulerStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(&Counter{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&moveSystem{})
	scheduler.Register(&tickSystem{})

	stats := scheduler.GetStats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, time.Duration(0), stats.Systems[0].MinDuration)

	for range 3 {
		scheduler.Once(0.016)
	}

	stats = scheduler.GetStats()
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, "moveSystem", stats.Systems[0].Name)
	assert.Equal(t, "tickSystem", stats.Systems[1].Name)
	for _, system := range stats.Systems {
		assert.Equal(t, int64(3), system.ExecutionCount)
		assert.LessOrEqual(t, system.MinDuration, system.MaxDuration)
		assert.GreaterOrEqual(t, system.TotalDuration, system.MaxDuration)
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(&Counter{})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&tickSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	scheduler.Run(ctx, time.Millisecond)

	var counter *Counter
	require.True(t, storage.ReadSingleton(&counter))
	assert.Greater(t, counter.Ticks, 0)
}
