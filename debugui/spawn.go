package debugui

import (
	"github.com/plus3/slingshot/ecs"
	"github.com/plus3/slingshot/game"
)

// SpawnWindows adds the performance, entity and round windows for g to the
// overlay storage.
func SpawnWindows(storage *ecs.Storage, g *game.Game) {
	storage.Spawn(ImguiItem{Render: NewPerformanceWindow(g.Scheduler(), 120).Render})
	storage.Spawn(ImguiItem{Render: NewEntityWindow(g.Storage()).Render})
	storage.Spawn(ImguiItem{Render: NewRoundInspector(g).Render})
}
