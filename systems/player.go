package systems

import (
	"math"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	arena := getArena(ecs)
	if arena == nil {
		return
	}
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, arena, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, arena *components.ArenaData, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	pos := components.Position.Get(playerEntry)

	// Velocity is rebuilt every tick; only the dash vector carries over
	physics.SpeedX, physics.SpeedY = 0, 0
	handleMovementInput(ecs, player, physics)

	if GetAction(ecs, cfg.ActionDash).Pressed && !player.IsDashing {
		if cursor := getCursor(ecs); cursor != nil {
			startDash(player, pos.X, pos.Y, cursor.X, cursor.Y)
		}
	}

	if player.IsDashing {
		physics.SpeedX = player.DashX
		physics.SpeedY = player.DashY
		player.DashTime += cfg.C.FrameStep
		if player.DashTime >= player.DashDuration {
			player.IsDashing = false
			player.DashTime = 0
		}
	}

	pos.X += physics.SpeedX
	pos.Y += physics.SpeedY

	updateTrail(components.Trail.Get(playerEntry), arena.Rand, pos.X, pos.Y, math.Atan2(physics.SpeedY, physics.SpeedX))

	pos.X, pos.Y = clampToArena(pos.X, pos.Y, player.Radius, arena)
}

// handleMovementInput checks every direction independently so diagonals
// compose. The last direction checked wins the label.
func handleMovementInput(ecs *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData) {
	if GetAction(ecs, cfg.ActionMoveUp).Pressed {
		physics.SpeedY = -player.Speed
		player.LastDirection = components.DirectionUp
	}
	if GetAction(ecs, cfg.ActionMoveDown).Pressed {
		physics.SpeedY = player.Speed
		player.LastDirection = components.DirectionDown
	}
	if GetAction(ecs, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX = -player.Speed
		player.LastDirection = components.DirectionLeft
	}
	if GetAction(ecs, cfg.ActionMoveRight).Pressed {
		physics.SpeedX = player.Speed
		player.LastDirection = components.DirectionRight
	}
}

// startDash locks in a dash toward the target point.
func startDash(player *components.PlayerData, x, y, targetX, targetY float64) {
	angle := math.Atan2(targetY-y, targetX-x)
	player.IsDashing = true
	player.DashTime = 0
	player.DashX = math.Cos(angle) * player.DashSpeed
	player.DashY = math.Sin(angle) * player.DashSpeed
}

// clampToArena keeps a circle of the given radius inside the viewport.
func clampToArena(x, y, radius float64, arena *components.ArenaData) (float64, float64) {
	x = math.Max(radius, math.Min(arena.Width-radius, x))
	y = math.Max(radius, math.Min(arena.Height-radius, y))
	return x, y
}
