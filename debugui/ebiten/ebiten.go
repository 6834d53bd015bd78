// Package ebiten hosts the debugui windows inside an ebiten game through the
// cimgui-go ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/slingshot/debugui"
	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/game"
)

// ImguiBackend wraps the ebiten Dear ImGui backend so it can be stored as a
// singleton.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay draws the debug windows of one game. It owns a separate storage and
// scheduler; the game's own scheduler is never stepped from here.
type Overlay struct {
	backend   *ecs.Singleton[ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]
	scheduler *ecs.Scheduler

	visible bool
}

// NewOverlay creates the ebiten window through the ImGui backend, so hosts
// using an overlay must not size the window themselves.
func NewOverlay(title string, width, height int, g *game.Game) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	o := &Overlay{
		backend:   ecs.NewSingleton(storage, ImguiBackend{EbitenBackend: backend}),
		input:     ecs.NewSingleton(storage, debugui.ImguiInputState{}),
		scheduler: ecs.NewScheduler(storage),
	}
	o.scheduler.Register(&debugui.ImguiSystem{})
	debugui.SpawnWindows(storage, g)
	return o
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool {
	return o.visible
}

// WantsMouse reports whether a visible window is under the cursor or being
// dragged. Hosts drop aim input while it is true.
func (o *Overlay) WantsMouse() bool {
	return o.visible && o.input.Get().WantCaptureMouse
}

// Update builds one ImGui frame. Window render functions run as deferred
// commands when the overlay scheduler flushes.
func (o *Overlay) Update(dt float64) {
	if !o.visible {
		return
	}
	backend := o.backend.Get()
	backend.BeginFrame()
	o.scheduler.Once(dt)
	backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.visible {
		o.backend.Get().Draw(screen)
	}
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Get().Layout(width, height)
}
