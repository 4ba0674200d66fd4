package systems

import (
	"math"
	"testing"

	"github.com/automoto/neon-arena/components"
	cfg "github.com/automoto/neon-arena/config"
	"github.com/automoto/neon-arena/systems/factory"
)

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name          string
		startX        float64
		startY        float64
		actions       []cfg.ActionID
		wantX         float64
		wantY         float64
		wantDirection components.Direction
	}{
		{
			name:          "idle",
			startX:        400,
			startY:        300,
			wantX:         400,
			wantY:         300,
			wantDirection: components.DirectionNone,
		},
		{
			name:          "diagonal composes",
			startX:        400,
			startY:        300,
			actions:       []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight},
			wantX:         405,
			wantY:         295,
			wantDirection: components.DirectionRight,
		},
		{
			name:          "opposite keys last wins",
			startX:        400,
			startY:        300,
			actions:       []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight},
			wantX:         405,
			wantY:         300,
			wantDirection: components.DirectionRight,
		},
		{
			name:          "clamped at top left",
			startX:        27,
			startY:        26,
			actions:       []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveLeft},
			wantX:         25,
			wantY:         25,
			wantDirection: components.DirectionLeft,
		},
		{
			name:          "clamped at bottom right",
			startX:        773,
			startY:        574,
			actions:       []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveRight},
			wantX:         775,
			wantY:         575,
			wantDirection: components.DirectionRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestArena(t, 800, 600)
			player := factory.CreatePlayer(e, tt.startX, tt.startY)

			press(e, tt.actions...)
			UpdatePlayer(e)

			x, y := position(player)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, x, y)
			}
			if got := components.Player.Get(player).LastDirection; got != tt.wantDirection {
				t.Errorf("expected direction %q, got %q", tt.wantDirection, got)
			}
		})
	}
}

func TestPlayerStaysInsideViewport(t *testing.T) {
	e := newTestArena(t, 800, 600)
	player := factory.CreatePlayer(e, 400, 300)
	setCursor(e, 0, 0)

	moves := [][]cfg.ActionID{
		{cfg.ActionMoveUp, cfg.ActionMoveLeft},
		{cfg.ActionMoveDown, cfg.ActionMoveRight, cfg.ActionDash},
		{cfg.ActionMoveUp, cfg.ActionDash},
		{cfg.ActionMoveLeft},
	}
	for i := 0; i < 400; i++ {
		press(e, moves[(i/50)%len(moves)]...)
		UpdatePlayer(e)

		x, y := position(player)
		if x < 25 || x > 775 || y < 25 || y > 575 {
			t.Fatalf("tick %d: player escaped to (%v, %v)", i, x, y)
		}
	}
}

func TestDashDuration(t *testing.T) {
	e := newTestArena(t, 2000, 600)
	player := factory.CreatePlayer(e, 400, 300)
	setCursor(e, 1000, 300)

	wantTicks := int(math.Ceil(cfg.Player.DashDuration / cfg.C.FrameStep))

	press(e, cfg.ActionDash)
	UpdatePlayer(e)
	data := components.Player.Get(player)
	if !data.IsDashing {
		t.Fatal("expected dash to start")
	}
	dashX, dashY := data.DashX, data.DashY
	if dashX != cfg.Player.DashSpeed || dashY != 0 {
		t.Fatalf("expected dash vector (%v, 0), got (%v, %v)", cfg.Player.DashSpeed, dashX, dashY)
	}

	// Moving the cursor and pressing keys must not bend the dash
	press(e, cfg.ActionMoveDown)
	setCursor(e, 0, 0)

	ticks := 1
	for data.IsDashing {
		UpdatePlayer(e)
		ticks++
		if data.DashX != dashX || data.DashY != dashY {
			t.Fatalf("dash vector changed on tick %d", ticks)
		}
		if ticks > 100 {
			t.Fatal("dash never ended")
		}
	}
	if ticks != wantTicks {
		t.Errorf("expected dash to last %d ticks, got %d", wantTicks, ticks)
	}

	x, y := position(player)
	wantX := 400 + float64(wantTicks)*cfg.Player.DashSpeed
	if x != wantX || y != 300 {
		t.Errorf("expected (%v, 300) after dash, got (%v, %v)", wantX, x, y)
	}

	// Regular movement resumes
	UpdatePlayer(e)
	if nx, ny := position(player); nx != x || ny != y+cfg.Player.Speed {
		t.Errorf("expected key movement after dash, got (%v, %v)", nx, ny)
	}
}

func TestPlayerTrailCap(t *testing.T) {
	e := newTestArena(t, 800, 600)
	player := factory.CreatePlayer(e, 400, 300)
	trail := components.Trail.Get(player)

	for i := 0; i < 500; i++ {
		press(e, cfg.ActionMoveRight)
		if i%100 > 50 {
			press(e, cfg.ActionMoveLeft)
		}
		UpdatePlayer(e)
		if len(trail.Samples) > cfg.Player.Trail.MaxSamples {
			t.Fatalf("tick %d: trail has %d samples", i, len(trail.Samples))
		}
	}
	if len(trail.Samples) == 0 {
		t.Error("expected some trail samples after 500 ticks")
	}
}
