package ecs_test

import (
	"fmt"

	"github.com/plus3/slingshot/ecs"
)

type Body struct {
	X, Y float64
}

type Motion struct {
	DX, DY float64
}

type Gravity struct {
	G float64
}

type fallingBody struct {
	*Body
	*Motion
}

type FallSystem struct {
	Bodies  ecs.Query[fallingBody]
	Gravity ecs.Singleton[Gravity]
}

func (s *FallSystem) Execute(frame *ecs.UpdateFrame) {
	g := s.Gravity.Get().G
	for item := range s.Bodies.Values() {
		item.Motion.DY += g * frame.DeltaTime
		item.Body.X += item.Motion.DX * frame.DeltaTime
		item.Body.Y += item.Motion.DY * frame.DeltaTime
	}
}

// ExampleScheduler shows a system with a Query and a Singleton field. The
// scheduler fills both during Register and refreshes the query every step.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[Motion](registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton(storage, Gravity{G: 10})
	storage.Spawn(Body{}, Motion{DX: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&FallSystem{})

	scheduler.Once(1)
	scheduler.Once(1)

	for item := range ecs.NewView[struct{ *Body }](storage).Values() {
		fmt.Printf("(%.0f, %.0f)\n", item.Body.X, item.Body.Y)
	}

	// Output:
	// (2, 30)
}

// ExampleCommands shows structural changes queued during a frame.
func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Body](registry)
	storage := ecs.NewStorage(registry)

	old := storage.Spawn(Body{X: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Delete(old)
		frame.Commands.Spawn(Body{X: 2})
		frame.Commands.Defer(func() {
			fmt.Println("bodies after flush:", frame.Storage.GetArchetype(Body{}).Len())
		})
	}))
	scheduler.Once(0.016)

	for item := range ecs.NewView[struct{ *Body }](storage).Values() {
		fmt.Println("body at", item.Body.X)
	}

	// Output:
	// bodies after flush: 1
	// body at 2
}
