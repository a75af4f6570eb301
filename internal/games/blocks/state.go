package blocks

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Progression constants.
const (
	MaxLevel     = 9
	LevelScore   = 1000 // level up whenever the score is a multiple of this
	BaseInterval = 1000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond

	// MinRows and MinCols keep a whole 4x4 shape box on the board.
	MinRows = 4
	MinCols = 4
)

// linePoints is the base award for clearing n rows at once, before the
// (level+1) multiplier.
var linePoints = [...]int{0, 40, 100, 300, 1200}

// ErrInvalidDimensions is returned by NewState for boards that cannot hold a piece.
var ErrInvalidDimensions = errors.New("blocks: invalid board dimensions")

// Status is the state machine position of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Option configures a State.
type Option func(*State)

// WithRand sets the random source used to shuffle the bag.
func WithRand(rng *rand.Rand) Option {
	return func(s *State) {
		s.rng = rng
	}
}

// WithSeed seeds a private random source for the bag.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// State is one game in progress: a board, the falling piece, the bag, and the
// scoring, leveling and pause/game-over state.
//
// State is not safe for concurrent use. It is meant to be owned by a single
// driver loop that issues commands, calls Update once per frame and then
// reads the queries.
type State struct {
	board    *Board
	piece    Piece
	bag      *Bag
	rng      *rand.Rand
	elapsed  time.Duration
	interval time.Duration
	level    int
	score    int
	lines    int
	status   Status
}

// NewState creates a game on a rows x cols board with the first piece spawned.
func NewState(rows, cols int, opts ...Option) (*State, error) {
	if rows < MinRows || cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (need at least %dx%d)",
			ErrInvalidDimensions, rows, cols, MinRows, MinCols)
	}
	s := &State{
		board: NewBoard(rows, cols),
		level: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(0))
	}
	s.bag = NewBag(s.rng)
	s.nextLevel()
	s.nextPiece()
	return s, nil
}

func (s *State) nextLevel() {
	s.level++
	s.interval = BaseInterval - time.Duration(s.level)*IntervalStep
}

// spawnCol returns the spawn column for k. I and O start centered; the column
// is pulled left on narrow boards so the shape box stays on the grid.
func (s *State) spawnCol(k Kind) int {
	if k != KindI && k != KindO {
		return 0
	}
	return min(s.board.Cols()/2, s.board.Cols()-4)
}

func (s *State) nextPiece() {
	k := s.bag.Next()
	s.piece = NewPiece(k, 0, s.spawnCol(k))
}

func (s *State) addScore(lines int) {
	if lines < len(linePoints) {
		s.score += linePoints[lines] * (s.level + 1)
	}
}

func (s *State) tryMove(d Direction) bool {
	if !s.board.CanMove(s.piece, d) {
		return false
	}
	s.piece.Move(d)
	return true
}

// MovePiece shifts the active piece one step if the board allows it.
// It is a no-op while paused or after game over.
func (s *State) MovePiece(d Direction) {
	if s.status != StatusRunning {
		return
	}
	s.tryMove(d)
}

// RotatePiece rotates the active piece once if the board allows it.
func (s *State) RotatePiece(ccw bool) {
	if s.status != StatusRunning {
		return
	}
	if s.board.CanRotate(s.piece, ccw) {
		s.piece.Rotate(ccw)
	}
}

// DropPiece moves the active piece down until it has landed. The piece is
// merged by the next Update.
func (s *State) DropPiece() {
	if s.status != StatusRunning {
		return
	}
	for !s.board.HasLanded(s.piece) {
		if !s.tryMove(Down) {
			// Only reachable from a spawn that already overlaps the stack.
			return
		}
	}
}

// Pause stops the clock. Only a running game can be paused.
func (s *State) Pause() {
	if s.status == StatusRunning {
		s.status = StatusPaused
	}
}

// Resume restarts the clock of a paused game.
func (s *State) Resume() {
	if s.status == StatusPaused {
		s.status = StatusRunning
	}
}

// TogglePause pauses a running game or resumes a paused one.
func (s *State) TogglePause() {
	switch s.status {
	case StatusRunning:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusRunning
	}
}

// Update advances the game clock by dt and returns the number of rows cleared.
//
// Once the gravity interval has elapsed the piece falls one row. A piece that
// rests on the floor or the stack is merged into the board and replaced from
// the bag in the same call. Full rows are then cleared and scored, and the
// game ends if any landed block reaches the top row.
func (s *State) Update(dt time.Duration) int {
	if s.status != StatusRunning {
		return 0
	}

	s.elapsed += dt
	if s.elapsed >= s.interval && !s.board.HasLanded(s.piece) {
		s.tryMove(Down)
		s.elapsed = 0
	}

	if s.board.HasLanded(s.piece) {
		s.board.Land(s.piece)
		s.nextPiece()
	}

	lines := s.board.RemoveLines()
	if lines > 0 {
		s.lines += lines
		s.addScore(lines)
		if s.score%LevelScore == 0 && s.level < MaxLevel {
			s.nextLevel()
		}
	}

	if s.board.TopRowBlocked() {
		s.status = StatusGameOver
	}
	return lines
}

// Piece returns a copy of the active piece.
func (s *State) Piece() Piece { return s.piece }

// Ghost returns the active piece moved as far down as it can go.
func (s *State) Ghost() Piece {
	p := s.piece
	for s.board.CanMove(p, Down) {
		p.Move(Down)
	}
	return p
}

// GhostRow returns the row the active piece would rest at if dropped.
func (s *State) GhostRow() int { return s.Ghost().Row }

// NextKind returns the kind the bag will serve next, without consuming it.
func (s *State) NextKind() Kind { return s.bag.Peek() }

// Landed returns a copy of every landed block.
func (s *State) Landed() []Block { return s.board.Landed() }

// Rows returns the board height.
func (s *State) Rows() int { return s.board.Rows() }

// Cols returns the board width.
func (s *State) Cols() int { return s.board.Cols() }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Level returns the current level, starting at 0.
func (s *State) Level() int { return s.level }

// Lines returns the total number of rows cleared.
func (s *State) Lines() int { return s.lines }

// GravityInterval returns how long the piece waits before falling one row.
func (s *State) GravityInterval() time.Duration { return s.interval }

// Status returns the state machine position.
func (s *State) Status() Status { return s.status }

// Paused reports whether the game is paused.
func (s *State) Paused() bool { return s.status == StatusPaused }

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool { return s.status == StatusGameOver }
