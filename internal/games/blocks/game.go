package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "blocks"

// Package-level configuration, set by the CLI before the game is created.
var (
	gameConfig    = config.DefaultBlocksConfig()
	gameConfigSet bool
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.BlocksConfig) {
	gameConfig = cfg
	gameConfigSet = true
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.BlocksConfig {
	if !gameConfigSet {
		return config.DefaultBlocksConfig()
	}
	return gameConfig
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game adapts State to the game registry. It translates input frames into
// commands, advances the clock by one tick per Step and draws the board.
type Game struct {
	cfg   config.BlocksConfig
	rng   *rand.Rand
	state *State
	tick  uint64
	dt    time.Duration

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a game using the current package configuration.
func New() *Game {
	return NewWithConfig(CurrentConfig())
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.BlocksConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset discards the current game and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = g.cfg.Timing.TickRate
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)

	state, err := NewState(g.cfg.Board.Rows, g.cfg.Board.Cols, WithRand(g.rng))
	if err != nil {
		// The config is validated when loaded, so only a hand-built
		// config can get here. Fall back to the classic board.
		def := config.DefaultBlocksConfig()
		g.cfg.Board = def.Board
		state, _ = NewState(def.Board.Rows, def.Board.Cols, WithRand(g.rng))
	}
	g.state = state
}

// Step applies the frame's actions in order and then advances the clock by
// one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if in.Has(core.ActionRestart) && g.state.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(time.Second / g.dt),
		})
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		g.apply(a)
	}

	cleared := g.state.Update(g.dt)
	return core.StepResult{State: g.State(), Cleared: cleared}
}

func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionPause:
		g.state.TogglePause()
	case core.ActionLeft:
		g.state.MovePiece(Left)
	case core.ActionRight:
		g.state.MovePiece(Right)
	case core.ActionDown:
		g.state.MovePiece(Down)
	case core.ActionRotateCW:
		g.state.RotatePiece(false)
	case core.ActionRotateCCW:
		g.state.RotatePiece(true)
	case core.ActionDrop:
		g.state.DropPiece()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		Level:    g.state.Level(),
		Lines:    g.state.Lines(),
		GameOver: g.state.GameOver(),
		Paused:   g.state.Paused(),
	}
}
