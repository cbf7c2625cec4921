package bot

import (
	"math/rand"

	"github.com/hailam/chessmate/internal/board"
)

// GreedyBot is a one-ply heuristic opponent. Every legal move gets a
// uniformly random base score in [0,10), plus 100 when the destination
// holds an enemy piece and plus 5 when the mover is a pawn, and the
// highest-scoring move wins. Captures therefore dominate quiet moves
// while everything else stays unpredictable.
type GreedyBot struct {
	// roll supplies the random component, uniform over [0,1). Tests
	// pin it to a constant to make the ordering deterministic.
	roll func() float64
}

// NewGreedyBot returns a GreedyBot backed by math/rand.
func NewGreedyBot() *GreedyBot {
	return &GreedyBot{roll: rand.Float64}
}

// ChooseMove scans all of side's pieces and picks the best-scoring
// legal move. Ties keep the earliest candidate: a later move replaces
// the incumbent only on a strictly greater score.
func (gb *GreedyBot) ChooseMove(b *board.Board, side board.Color) (from, to board.Position, ok bool) {
	var bestScore float64

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			src := board.Position{Row: row, Col: col}
			pc := b.PieceAt(src)
			if pc == board.NoPiece || pc.Color() != side {
				continue
			}

			for _, dst := range board.Moves(b, src, board.Legal) {
				score := gb.roll() * 10
				if b.PieceAt(dst) != board.NoPiece {
					score += 100
				}
				if pc.Type() == board.Pawn {
					score += 5
				}

				if !ok || score > bestScore {
					from, to, ok = src, dst, true
					bestScore = score
				}
			}
		}
	}

	return from, to, ok
}

// Name returns the bot's display name.
func (gb *GreedyBot) Name() string {
	return "Greedy"
}
