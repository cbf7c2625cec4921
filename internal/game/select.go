package game

import "github.com/hailam/chessmate/internal/board"

// SelectAction tells the caller what a SelectSquare click did.
type SelectAction int

const (
	// ActionNone means the click changed nothing: an empty or
	// out-of-bounds square, an opponent piece, or a cleared selection.
	ActionNone SelectAction = iota
	// ActionSelected means a piece of the side to move was selected
	// and Destinations holds its legal moves.
	ActionSelected
	// ActionMoved means the click completed a move and Move records it.
	ActionMoved
	// ActionPromotionNeeded means the click would move a pawn to the
	// far rank; the caller must ask for a promotion piece and then
	// call Apply(From, To, choice) itself.
	ActionPromotionNeeded
)

// SelectResult describes the outcome of one SelectSquare call.
type SelectResult struct {
	Action       SelectAction
	Destinations []board.Position // valid for ActionSelected
	Move         board.Move       // valid for ActionMoved
	From, To     board.Position   // valid for ActionPromotionNeeded
}

// Selected returns the currently selected square, if any.
func (g *Game) Selected() (board.Position, bool) {
	if g.selected == nil {
		return board.Position{}, false
	}
	return *g.selected, true
}

// SelectSquare implements the two-click move interface. The first
// click on a piece of the side to move selects it and returns its
// legal destinations. A second click on one of those destinations
// applies the move, or asks for a promotion choice when a pawn reaches
// the far rank. A second click anywhere else reselects (on another of
// the mover's pieces) or clears the selection. Clicks are ignored once
// the game is over.
func (g *Game) SelectSquare(row, col int) SelectResult {
	if g.gameOver {
		return SelectResult{Action: ActionNone}
	}

	pos := board.Position{Row: row, Col: col}
	if !pos.InBounds() {
		g.clearSelection()
		return SelectResult{Action: ActionNone}
	}

	pc := g.board.PieceAt(pos)

	// Clicking our own piece always (re)selects it.
	if pc != board.NoPiece && pc.Color() == g.turn {
		g.selected = &pos
		g.legalDests = board.Moves(g.board, pos, board.Legal)
		return SelectResult{Action: ActionSelected, Destinations: g.legalDests}
	}

	// Second click: is it one of the selected piece's destinations?
	if g.selected != nil {
		from := *g.selected
		for _, d := range g.legalDests {
			if d != pos {
				continue
			}
			mover := g.board.PieceAt(from)
			if mover.Type() == board.Pawn && pos.Row == promotionRow(mover.Color()) {
				g.clearSelection()
				return SelectResult{Action: ActionPromotionNeeded, From: from, To: pos}
			}
			g.Apply(from, pos, board.NoPieceType)
			m, _ := g.LastMove()
			return SelectResult{Action: ActionMoved, Move: m}
		}
	}

	g.clearSelection()
	return SelectResult{Action: ActionNone}
}

// NeedsPromotion reports whether moving the piece on from to to would
// require a promotion choice.
func (g *Game) NeedsPromotion(from, to board.Position) bool {
	pc := g.board.PieceAt(from)
	return pc.Type() == board.Pawn && to.Row == promotionRow(pc.Color())
}

// clearSelection drops the current selection.
func (g *Game) clearSelection() {
	g.selected = nil
	g.legalDests = nil
}

// promotionRow is the far rank for the given color: row 0 for white,
// row 7 for black.
func promotionRow(c board.Color) int {
	if c == board.White {
		return 0
	}
	return 7
}
