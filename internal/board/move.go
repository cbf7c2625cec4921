package board

// Move records one committed move with enough detail to reverse it
// exactly. Piece is the mover as it stood before the move, so undoing
// a promotion restores the pawn rather than the promoted piece.
type Move struct {
	From     Position
	To       Position
	Piece    Piece
	Captured Piece // NoPiece when the destination was empty

	// Promotion is the piece type substituted at the destination, or
	// NoPieceType for an ordinary move.
	Promotion PieceType

	// Castle and EnPassant leave room for those rules in the record
	// format. Nothing in the engine sets or reads them.
	Castle    bool
	EnPassant bool
}

// IsCapture returns true if the move captured a piece.
func (m Move) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsPromotion returns true if the move promoted a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// String returns the coordinate form of the move (e.g., "e2e4",
// "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		switch m.Promotion {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}
