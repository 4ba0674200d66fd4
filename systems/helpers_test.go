package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// newTestArena builds a headless arena without a spawn timer.
func newTestArena(t *testing.T, width, height float64) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, width, height, rand.New(rand.NewSource(1)), nil)
	return e
}

// press replaces the held actions for the next update, keeping the cursor.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	var pressed [cfg.ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	var x, y float64
	if cursor := getCursor(e); cursor != nil {
		x, y = cursor.X, cursor.Y
	}
	applyInput(e, pressed, x, y)
}

func setCursor(e *ecs.ECS, x, y float64) {
	cursor := getCursor(e)
	cursor.X, cursor.Y = x, y
}

func count(e *ecs.ECS, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(e.World)
}

func position(entry *donburi.Entry) (float64, float64) {
	pos := components.Position.Get(entry)
	return pos.X, pos.Y
}
