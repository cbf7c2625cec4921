// Package game owns the state of a single chess game: the board, the
// side to move, the move history stack and the terminal status.
package game

import (
	"github.com/hailam/chessmate/internal/board"
)

// Status is the terminal-state evaluation for a side to move.
type Status int

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Game aggregates all mutable state of one game. It is a plain handle
// with no package-level state, so multiple games can coexist and tests
// can run them in isolation.
type Game struct {
	board   *board.Board
	turn    board.Color
	history []board.Move

	selected   *board.Position
	legalDests []board.Position

	gameOver bool
	result   string
}

// New returns a game in the starting position with white to move.
func New() *Game {
	return &Game{
		board: board.NewBoard(),
		turn:  board.White,
	}
}

// NewFromFEN returns a game set up from a FEN string.
func NewFromFEN(fen string) (*Game, error) {
	b, stm, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{board: b, turn: stm}
	g.updateGameOver()
	return g, nil
}

// Board returns the live board. Callers must treat it as read-only;
// all mutation goes through Apply, Undo and Reset.
func (g *Game) Board() *board.Board {
	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() board.Color {
	return g.turn
}

// History returns the move records in play order, oldest first.
func (g *Game) History() []board.Move {
	return g.history
}

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (board.Move, bool) {
	if len(g.history) == 0 {
		return board.Move{}, false
	}
	return g.history[len(g.history)-1], true
}

// GameOver returns true once a terminal state has been reached.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Result returns the human-readable result string. It is empty until
// the game ends and persists until Reset.
func (g *Game) Result() string {
	return g.result
}

// Apply plays the move from->to for the piece standing on from.
// promotion names the substituted piece type for a pawn reaching the
// far rank, or board.NoPieceType for an ordinary move. It reports
// whether the move was applied; an empty or out-of-bounds source
// square rejects the move with no state change.
//
// On success the board is mutated in place, the turn advances, a move
// record is pushed onto the history stack and the terminal status of
// the new side to move is evaluated.
func (g *Game) Apply(from, to board.Position, promotion board.PieceType) bool {
	pc := g.board.PieceAt(from)
	if pc == board.NoPiece || !to.InBounds() {
		return false
	}

	m := board.Move{
		From:      from,
		To:        to,
		Piece:     pc,
		Captured:  g.board.PieceAt(to),
		Promotion: board.NoPieceType,
	}

	placed := pc
	if promotion != board.NoPieceType {
		m.Promotion = promotion
		placed = board.NewPiece(promotion, pc.Color())
	}

	g.board.SetPiece(to, placed)
	g.board.SetPiece(from, board.NoPiece)
	g.turn = g.turn.Other()
	g.history = append(g.history, m)

	g.clearSelection()
	g.updateGameOver()
	return true
}

// Undo reverses the most recent move: the pre-promotion piece snapshot
// returns to its source square, whatever was captured returns to the
// destination, and the turn reverts. Undo on an empty history is a
// silent no-op.
func (g *Game) Undo() {
	if len(g.history) == 0 {
		return
	}

	m := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	g.board.SetPiece(m.From, m.Piece)
	g.board.SetPiece(m.To, m.Captured)
	g.turn = g.turn.Other()

	g.clearSelection()
	g.gameOver = false
	g.result = ""
}

// Reset restores the starting position, clears the history stack and
// clears any game-over status.
func (g *Game) Reset() {
	g.board = board.NewBoard()
	g.turn = board.White
	g.history = nil
	g.clearSelection()
	g.gameOver = false
	g.result = ""
}

// InCheck reports whether c's king is attacked.
func (g *Game) InCheck(c board.Color) bool {
	return board.InCheck(g.board, c)
}

// HasLegalMoves reports whether c has at least one legal move.
func (g *Game) HasLegalMoves(c board.Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := board.Position{Row: row, Col: col}
			pc := g.board.PieceAt(from)
			if pc == board.NoPiece || pc.Color() != c {
				continue
			}
			if len(board.Moves(g.board, from, board.Legal)) > 0 {
				return true
			}
		}
	}
	return false
}

// Status evaluates the terminal state for c as the side to move:
// checkmate when c has no legal move and is in check, stalemate when
// it has no legal move and is not, otherwise ongoing.
func (g *Game) Status(c board.Color) Status {
	if g.HasLegalMoves(c) {
		return Ongoing
	}
	if g.InCheck(c) {
		return Checkmate
	}
	return Stalemate
}

// updateGameOver evaluates the side to move and latches the result
// string on a terminal state.
func (g *Game) updateGameOver() {
	switch g.Status(g.turn) {
	case Checkmate:
		g.gameOver = true
		if g.turn == board.White {
			g.result = "Black wins by checkmate!"
		} else {
			g.result = "White wins by checkmate!"
		}
	case Stalemate:
		g.gameOver = true
		g.result = "Draw by stalemate"
	}
}
