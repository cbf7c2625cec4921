// Package bot implements automated move selection.
package bot

import "github.com/hailam/chessmate/internal/board"

// Bot selects a move for one side. ok is false when the side has no
// legal move, which the caller should treat as checkmate or stalemate.
type Bot interface {
	ChooseMove(b *board.Board, side board.Color) (from, to board.Position, ok bool)
	Name() string
}
