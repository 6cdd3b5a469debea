// Package game wires the raycasting core to the render boundary: it owns
// the per-tick input handling and the per-frame look/project/draw pass.
package game

import (
	"fmt"

	"chosenoffset.com/raywalk/internal/config"
	"chosenoffset.com/raywalk/internal/core/emitter"
	"chosenoffset.com/raywalk/internal/core/geom"
	"chosenoffset.com/raywalk/internal/core/projector"
	"chosenoffset.com/raywalk/internal/render"
	"chosenoffset.com/raywalk/internal/world/maze"
)

// Game holds the raycaster state. Pose mutation happens only in Update and
// the look/project pass only in Draw; ebiten never overlaps the two, which
// gives each frame a consistent view of the emitter.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	// The window is split into the top-down map pane on the left and the
	// projected scene pane on the right, separated by a thin divider.
	PaneWidth int

	Walls     []geom.Segment
	Emitter   *emitter.Emitter
	Projector *projector.Projector

	Renderer render.Renderer
	InputMgr render.InputManager

	Config config.Config
	Stats  *FrameStats
	Debug  bool
}

// New builds a game from a validated config and maze layout.
func New(cfg config.Config, layout *maze.Layout, renderer render.Renderer, input render.InputManager, stats *FrameStats) (*Game, error) {
	paneW := cfg.ScreenWidth / 2
	paneH := cfg.ScreenHeight

	walls := layout.Build(float64(paneW), float64(paneH))
	spawn := layout.SpawnPosition(float64(paneW), float64(paneH))

	em, err := emitter.New(spawn, layout.Spawn.Heading, cfg.FOV(), cfg.NumRays)
	if err != nil {
		return nil, fmt.Errorf("failed to create emitter: %w", err)
	}
	if cfg.Fisheye {
		em.ToggleFisheye()
	}

	proj, err := projector.New(paneW, paneH, cfg.FOV(), cfg.NumRays)
	if err != nil {
		return nil, fmt.Errorf("failed to create projector: %w", err)
	}

	return &Game{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
		PaneWidth:    paneW,
		Walls:        walls,
		Emitter:      em,
		Projector:    proj,
		Renderer:     renderer,
		InputMgr:     input,
		Config:       cfg,
		Stats:        stats,
		Debug:        false,
	}, nil
}

// Update applies one tick of input to the emitter pose.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	if g.InputMgr.IsKeyPressed(render.KeyLeft) || g.InputMgr.IsKeyPressed(render.KeyA) {
		g.Emitter.Rotate(-g.Config.TurnSpeed())
	}
	if g.InputMgr.IsKeyPressed(render.KeyRight) || g.InputMgr.IsKeyPressed(render.KeyD) {
		g.Emitter.Rotate(g.Config.TurnSpeed())
	}
	if g.InputMgr.IsKeyPressed(render.KeyUp) || g.InputMgr.IsKeyPressed(render.KeyW) {
		g.Emitter.Move(g.Config.MoveSpeed)
	}
	if g.InputMgr.IsKeyPressed(render.KeyDown) || g.InputMgr.IsKeyPressed(render.KeyS) {
		g.Emitter.Move(-g.Config.MoveSpeed)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF) {
		g.Emitter.ToggleFisheye()
	}

	return nil
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
