package blocks

import "time"

// Snapshot is an immutable copy of everything a renderer needs.
// Two games with the same seed and inputs produce equal snapshots.
type Snapshot struct {
	Tick     uint64
	Rows     int
	Cols     int
	Landed   []Block
	Piece    Piece
	Ghost    Piece
	Next     Kind
	Score    int
	Level    int
	Lines    int
	Interval time.Duration
	Status   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	return Snapshot{
		Tick:     g.tick,
		Rows:     s.Rows(),
		Cols:     s.Cols(),
		Landed:   s.Landed(),
		Piece:    s.Piece(),
		Ghost:    s.Ghost(),
		Next:     s.NextKind(),
		Score:    s.Score(),
		Level:    s.Level(),
		Lines:    s.Lines(),
		Interval: s.GravityInterval(),
		Status:   s.Status(),
	}
}
