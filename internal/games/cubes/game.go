// Package cubes implements a falling-block puzzle game, a Go port of the
// RustyCubes prototype. Pieces descend on a fixed gravity cadence, shift
// laterally on input, and lock into the board when they can no longer fall.
// Pieces never rotate; that is a deliberate property of the original.
package cubes

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dsocolobsky/cubes/internal/config"
	"github.com/dsocolobsky/cubes/internal/core"
	"github.com/dsocolobsky/cubes/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeStandard clears completed rows and scores them.
	ModeStandard Mode = "standard"
	// ModeClassic reproduces the original prototype: rows never clear and
	// the board fills up until a spawn is blocked.
	ModeClassic Mode = "classic"
)

// Game implements the falling-cubes simulation.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	gameCfg config.CubesConfig
	board   *Board
	piece   *Piece
	clock   *GravityClock

	score        int
	lines        int
	piecesLocked int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool

	// Screen layout
	screenW   int
	screenH   int
	hudHeight int
	boardX    int
	boardY    int

	tickRate int
}

// Package-level variables for config/difficulty, set by the CLI before the
// game instance is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new standard mode game.
func New() *Game {
	return &Game{
		mode: ModeStandard,
	}
}

// NewClassic creates a new classic mode game.
func NewClassic() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

func init() {
	registry.Register("cubes", func() registry.Game {
		return New()
	})
	registry.Register("cubes_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "cubes_classic"
	}
	return "cubes"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Falling Cubes (Classic)"
	}
	return "Falling Cubes"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadCubes(configPath)
	if err != nil {
		gameCfg = config.DefaultCubesConfig()
	}
	config.ApplyCubesPreset(&gameCfg, config.DifficultyPreset(difficultyPreset))
	g.gameCfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed)) //#nosec G404 -- gameplay RNG, not crypto
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.piecesLocked = 0
	g.gameOver = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}

	g.board = NewBoard(gameCfg.Board.Columns, gameCfg.Board.Rows)
	g.clock = NewGravityClock(gameCfg.Gravity.UpdatesPerSecond)

	// Board is drawn two runes per cell inside a box, below the HUD
	boxW := g.board.Columns()*2 + 2
	boxH := g.board.Rows() + 2
	if g.screenW < boxW || g.screenH < boxH+g.hudHeight {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.boardX = (g.screenW - boxW) / 2
	g.boardY = g.hudHeight

	g.spawnPiece()
}

// spawnAnchor returns the configured spawn position.
func (g *Game) spawnAnchor() GridPosition {
	return GridPosition{X: g.gameCfg.Spawn.Column, Y: g.gameCfg.Spawn.Row}
}

// spawnPiece creates the next falling piece with a random kind. A spawn
// that overlaps landed blocks ends the game.
func (g *Game) spawnPiece() {
	kind := AllKinds[g.rng.Intn(len(AllKinds))]
	g.piece = SpawnPiece(kind, g.spawnAnchor())

	if Overlaps(g.piece, g.board) {
		g.gameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
		if !g.paused {
			g.clock.Reset()
		}
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Lateral movement applies immediately on receipt, independent of the
	// gravity cadence, through the same collision checker.
	g.processInput(input)

	// Visual refresh: block positions are current every poll
	g.piece.RecomputePositions()

	// Gravity obeys its own clock
	steps := g.clock.Advance(time.Second / time.Duration(g.tickRate))
	for i := 0; i < steps && !g.gameOver; i++ {
		g.gravityTick()
	}

	return core.StepResult{State: g.State()}
}

// processInput shifts the falling piece laterally when legal.
func (g *Game) processInput(input core.InputFrame) {
	if g.piece == nil || g.piece.Locked() {
		return
	}
	if input.Has(core.ActionLeft) && CanMove(g.piece, g.board, MoveLeft) {
		g.piece.Translate(-1, 0)
	}
	if input.Has(core.ActionRight) && CanMove(g.piece, g.board, MoveRight) {
		g.piece.Translate(1, 0)
	}
}

// gravityTick advances the falling rule by one step: descend if possible,
// otherwise lock the piece into the board and spawn its replacement.
func (g *Game) gravityTick() {
	if g.piece == nil || g.piece.Locked() {
		return
	}

	if CanFall(g.piece, g.board) {
		g.piece.Translate(0, 1)
		return
	}

	g.lockPiece()
	if g.mode == ModeStandard {
		g.clearFullRows()
	}
	g.spawnPiece()
}

// lockPiece merges the piece's active blocks into the board. The piece
// itself never mutates the board; the decision (CanFall) and the mutation
// live here. Place can only fail on an out-of-range position: the fall
// check rules that out vertically, and config normalization guarantees
// the spawn frame fits laterally, so a failure is an invariant violation.
func (g *Game) lockPiece() {
	for _, blk := range g.piece.ActiveBlocks() {
		if err := g.board.Place(blk); err != nil {
			panic(fmt.Sprintf("cubes: lock invariant violated: %v", err))
		}
	}
	g.piece.Lock()
	g.piecesLocked++
	g.score += g.gameCfg.Scoring.PerPiece
}

// clearFullRows removes completed rows and scores them.
func (g *Game) clearFullRows() {
	full := g.board.FullRows()
	if len(full) == 0 {
		return
	}

	g.board.ClearRows(full)
	g.lines += len(full)

	bonus := g.gameCfg.Scoring.LineClear
	idx := core.Min(len(full), len(bonus)) - 1
	if idx >= 0 {
		g.score += bonus[idx]
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board exposes the landed geometry for tests.
func (g *Game) Board() *Board {
	return g.board
}

// Piece exposes the falling piece for tests.
func (g *Game) Piece() *Piece {
	return g.piece
}
