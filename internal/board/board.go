package board

import "strings"

// Board is an 8x8 mailbox of pieces, indexed [row][col].
// At most one piece occupies a square; NoPiece marks an empty one.
type Board [8][8]Piece

// backRank is the piece order of each side's home rank, left to right.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns a board in the standard starting layout: black's
// back rank on row 0, black pawns on row 1, white pawns on row 6 and
// white's back rank on row 7.
func NewBoard() *Board {
	b := &Board{}
	for col := 0; col < 8; col++ {
		b[0][col] = NewPiece(backRank[col], Black)
		b[1][col] = NewPiece(Pawn, Black)
		b[6][col] = NewPiece(Pawn, White)
		b[7][col] = NewPiece(backRank[col], White)
	}
	return b
}

// Copy returns a deep, independently mutable duplicate of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// PieceAt returns the piece on the given square, or NoPiece if the
// square is empty or out of bounds.
func (b *Board) PieceAt(p Position) Piece {
	if !p.InBounds() {
		return NoPiece
	}
	return b[p.Row][p.Col]
}

// SetPiece places a piece on the given square. Out-of-bounds positions
// are ignored.
func (b *Board) SetPiece(p Position, pc Piece) {
	if !p.InBounds() {
		return
	}
	b[p.Row][p.Col] = pc
}

// FindKing scans the board in row-major order and returns the first
// king of the given color. ok is false if no such king is on the board.
func (b *Board) FindKing(c Color) (pos Position, ok bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc := b[row][col]
			if pc.Type() == King && pc.Color() == c {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// String returns an ASCII diagram of the board from white's
// perspective, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte('8' - byte(row))
		sb.WriteString(" ")
		for col := 0; col < 8; col++ {
			pc := b[row][col]
			if pc == NoPiece {
				sb.WriteString(" .")
			} else {
				sb.WriteString(" ")
				sb.WriteString(pc.String())
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
