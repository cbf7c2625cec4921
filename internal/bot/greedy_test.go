package bot

import (
	"testing"

	"github.com/hailam/chessmate/internal/board"
)

// fixedBot pins the random component so the scoring order is
// deterministic: captures beat pawn pushes beat everything else.
func fixedBot() *GreedyBot {
	return &GreedyBot{roll: func() float64 { return 0.5 }}
}

func parseFEN(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, _, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%s): %v", fen, err)
	}
	return b
}

func TestCapturePreferredOverQuietMoves(t *testing.T) {
	// The e4 pawn can push to e5 or take on d5; the king has quiet
	// moves too. With the roll pinned, the single capture must win.
	b := parseFEN(t, "k7/8/8/3p4/4P3/8/8/K7 w - - 0 1")

	from, to, ok := fixedBot().ChooseMove(b, board.White)
	if !ok {
		t.Fatal("white has moves")
	}
	if from.String() != "e4" || to.String() != "d5" {
		t.Errorf("chose %s%s, want the capture e4d5", from, to)
	}
}

func TestPawnMovesPreferredOverPieceMoves(t *testing.T) {
	// No captures anywhere: the pawn bonus must outscore the knight.
	b := parseFEN(t, "k7/8/8/8/8/8/4P3/N3K3 w - - 0 1")

	from, _, ok := fixedBot().ChooseMove(b, board.White)
	if !ok {
		t.Fatal("white has moves")
	}
	if got := b.PieceAt(from).Type(); got != board.Pawn {
		t.Errorf("chose a %v move, want a pawn move", got)
	}
}

func TestNoLegalMovesReturnsFalse(t *testing.T) {
	// Stalemated side to move.
	b := parseFEN(t, "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")

	if _, _, ok := fixedBot().ChooseMove(b, board.Black); ok {
		t.Error("stalemated side must yield no move")
	}
}

func TestChooseMoveIsLegal(t *testing.T) {
	// Whatever the default bot picks from the start must be one of the
	// mover's safety-filtered destinations.
	b := board.NewBoard()

	from, to, ok := NewGreedyBot().ChooseMove(b, board.White)
	if !ok {
		t.Fatal("white has 20 moves from the start")
	}
	for _, d := range board.Moves(b, from, board.Legal) {
		if d == to {
			return
		}
	}
	t.Errorf("chose illegal move %s%s", from, to)
}
