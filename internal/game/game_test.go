package game

import (
	"testing"

	"github.com/hailam/chessmate/internal/board"
	"github.com/hailam/chessmate/internal/testutil"
)

func pos(t *testing.T, name string) board.Position {
	t.Helper()
	p, err := board.ParsePosition(name)
	if err != nil {
		t.Fatalf("ParsePosition(%s): %v", name, err)
	}
	return p
}

func TestApplyAdvancesTurnAndHistory(t *testing.T) {
	g := New()

	testutil.AssertTrue(t, g.Apply(pos(t, "e2"), pos(t, "e4"), board.NoPieceType))

	testutil.AssertEqual(t, g.Turn(), board.Black, "turn after one move")
	testutil.AssertEqual(t, len(g.History()), 1, "history length")

	m, ok := g.LastMove()
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, m.String(), "e2e4")
	testutil.AssertEqual(t, m.Piece, board.WhitePawn)
	testutil.AssertFalse(t, m.IsCapture())
}

func TestApplyRejectsEmptySource(t *testing.T) {
	g := New()
	before := g.Board().Copy()

	testutil.AssertFalse(t, g.Apply(pos(t, "e4"), pos(t, "e5"), board.NoPieceType))

	testutil.AssertEqual(t, g.Board(), before, "board after rejected move")
	testutil.AssertEqual(t, g.Turn(), board.White, "turn after rejected move")
	testutil.AssertEqual(t, len(g.History()), 0, "history after rejected move")
}

func TestApplyUndoRoundTrip(t *testing.T) {
	g := New()
	before := g.Board().Copy()

	g.Apply(pos(t, "g1"), pos(t, "f3"), board.NoPieceType)
	g.Undo()

	testutil.AssertEqual(t, g.Board(), before, "board after undo")
	testutil.AssertEqual(t, g.Turn(), board.White, "turn after undo")
	testutil.AssertEqual(t, len(g.History()), 0, "history after undo")
}

func TestCaptureUndoRestoresCapturedPiece(t *testing.T) {
	g, err := NewFromFEN("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	before := g.Board().Copy()

	g.Apply(pos(t, "e4"), pos(t, "d5"), board.NoPieceType)

	m, _ := g.LastMove()
	testutil.AssertTrue(t, m.IsCapture())
	testutil.AssertEqual(t, m.Captured, board.BlackPawn)

	g.Undo()
	testutil.AssertEqual(t, g.Board(), before, "board after capture undo")
}

func TestPromotionRoundTrip(t *testing.T) {
	g, err := NewFromFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1")
	testutil.AssertNoError(t, err)
	before := g.Board().Copy()

	testutil.AssertTrue(t, g.Apply(pos(t, "e7"), pos(t, "e8"), board.Queen))
	testutil.AssertEqual(t, g.Board().PieceAt(pos(t, "e8")), board.WhiteQueen, "promoted piece")

	m, _ := g.LastMove()
	testutil.AssertEqual(t, m.String(), "e7e8q")
	testutil.AssertEqual(t, m.Piece, board.WhitePawn, "move record keeps the pawn")

	// Undoing the promotion brings the pawn back, not a queen.
	g.Undo()
	testutil.AssertEqual(t, g.Board(), before, "board after promotion undo")
	testutil.AssertEqual(t, g.Board().PieceAt(pos(t, "e7")), board.WhitePawn)
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	g := New()
	before := g.Board().Copy()

	g.Undo()

	testutil.AssertEqual(t, g.Board(), before)
	testutil.AssertEqual(t, g.Turn(), board.White)
}

func TestFoolsMate(t *testing.T) {
	g := New()

	line := [][2]string{
		{"f2", "f3"},
		{"e7", "e5"},
		{"g2", "g4"},
		{"d8", "h4"},
	}
	for _, mv := range line {
		testutil.AssertTrue(t, g.Apply(pos(t, mv[0]), pos(t, mv[1]), board.NoPieceType), "move %s%s", mv[0], mv[1])
	}

	testutil.AssertEqual(t, g.Status(board.White), Checkmate, "status for white")
	testutil.AssertTrue(t, g.InCheck(board.White))
	testutil.AssertTrue(t, g.GameOver())
	testutil.AssertEqual(t, g.Result(), "Black wins by checkmate!")

	// Taking the mate back reopens the game.
	g.Undo()
	testutil.AssertFalse(t, g.GameOver())
	testutil.AssertEqual(t, g.Result(), "")
}

func TestStalemate(t *testing.T) {
	g, err := NewFromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertFalse(t, g.InCheck(board.Black))
	testutil.AssertFalse(t, g.HasLegalMoves(board.Black))
	testutil.AssertEqual(t, g.Status(board.Black), Stalemate)
	testutil.AssertTrue(t, g.GameOver())
	testutil.AssertEqual(t, g.Result(), "Draw by stalemate")
}

func TestReset(t *testing.T) {
	g := New()
	g.Apply(pos(t, "e2"), pos(t, "e4"), board.NoPieceType)
	g.Apply(pos(t, "e7"), pos(t, "e5"), board.NoPieceType)

	g.Reset()

	testutil.AssertEqual(t, g.Board(), board.NewBoard(), "board after reset")
	testutil.AssertEqual(t, g.Turn(), board.White)
	testutil.AssertEqual(t, len(g.History()), 0)
	testutil.AssertFalse(t, g.GameOver())
	testutil.AssertEqual(t, g.Result(), "")
}

func TestSelectSquareFlow(t *testing.T) {
	g := New()

	// Clicking an opponent piece does nothing.
	r := g.SelectSquare(1, 0)
	testutil.AssertEqual(t, r.Action, ActionNone, "clicking black pawn as white")

	// Clicking our pawn selects it and lists both pushes.
	r = g.SelectSquare(6, 4)
	testutil.AssertEqual(t, r.Action, ActionSelected)
	testutil.AssertEqual(t, len(r.Destinations), 2, "e2 pawn destinations")

	// Clicking another of our pieces reselects.
	r = g.SelectSquare(7, 6)
	testutil.AssertEqual(t, r.Action, ActionSelected, "reselect knight")
	testutil.AssertEqual(t, len(r.Destinations), 2, "g1 knight destinations")

	// Clicking a non-destination clears the selection.
	r = g.SelectSquare(3, 3)
	testutil.AssertEqual(t, r.Action, ActionNone)
	_, selected := g.Selected()
	testutil.AssertFalse(t, selected, "selection after illegal click")

	// Select then click a legal destination: the move is played.
	g.SelectSquare(6, 4)
	r = g.SelectSquare(4, 4)
	testutil.AssertEqual(t, r.Action, ActionMoved)
	testutil.AssertEqual(t, r.Move.String(), "e2e4")
	testutil.AssertEqual(t, g.Turn(), board.Black)
}

func TestSelectSquareOutOfBounds(t *testing.T) {
	g := New()
	r := g.SelectSquare(-1, 9)
	testutil.AssertEqual(t, r.Action, ActionNone)
}

func TestSelectSquarePromotion(t *testing.T) {
	g, err := NewFromFEN("k7/4P3/8/8/8/8/8/K7 w - - 0 1")
	testutil.AssertNoError(t, err)

	r := g.SelectSquare(1, 4)
	testutil.AssertEqual(t, r.Action, ActionSelected)

	r = g.SelectSquare(0, 4)
	testutil.AssertEqual(t, r.Action, ActionPromotionNeeded)
	testutil.AssertEqual(t, r.From.String(), "e7")
	testutil.AssertEqual(t, r.To.String(), "e8")

	// The caller supplies the choice and applies the move itself.
	testutil.AssertTrue(t, g.Apply(r.From, r.To, board.Queen))
	testutil.AssertEqual(t, g.Board().PieceAt(pos(t, "e8")), board.WhiteQueen)
}

func TestSelectSquareIgnoredWhenGameOver(t *testing.T) {
	g, err := NewFromFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, g.GameOver())

	r := g.SelectSquare(0, 0)
	testutil.AssertEqual(t, r.Action, ActionNone)
}

func TestNeedsPromotion(t *testing.T) {
	g, err := NewFromFEN("k7/4P3/8/8/8/8/4p3/K7 w - - 0 1")
	testutil.AssertNoError(t, err)

	testutil.AssertTrue(t, g.NeedsPromotion(pos(t, "e7"), pos(t, "e8")))
	testutil.AssertTrue(t, g.NeedsPromotion(pos(t, "e2"), pos(t, "e1")))
	testutil.AssertFalse(t, g.NeedsPromotion(pos(t, "e7"), pos(t, "e7")))
	testutil.AssertFalse(t, g.NeedsPromotion(pos(t, "a1"), pos(t, "a8")))
}
