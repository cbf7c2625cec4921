package board

// GenMode selects how Moves treats king safety.
type GenMode int

const (
	// Raw yields every geometrically reachable destination, ignoring
	// whether moving there exposes the mover's own king. This is the
	// mode attack detection runs in.
	Raw GenMode = iota
	// Legal additionally discards destinations that leave the mover's
	// king in check.
	Legal
)

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var (
	bishopDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs  = [8][2]int{
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	}
)

// Moves returns the destinations reachable by the piece on from. An
// empty or out-of-bounds source yields nil. In Legal mode each
// candidate is tested on a private copy of the board, so concurrent or
// nested generation never observes a partially moved position.
//
// Legal mode calls InCheck, which calls back into Moves in Raw mode
// only. Raw mode must never consult king safety: that asymmetry is
// what keeps generation and attack detection from recursing into each
// other forever.
func Moves(b *Board, from Position, mode GenMode) []Position {
	pc := b.PieceAt(from)
	if pc == NoPiece {
		return nil
	}

	var dests []Position
	switch pc.Type() {
	case Pawn:
		dests = pawnMoves(b, from, pc.Color())
	case Knight:
		dests = offsetMoves(b, from, pc.Color(), knightOffsets)
	case Bishop:
		dests = rayMoves(b, from, pc.Color(), bishopDirs[:])
	case Rook:
		dests = rayMoves(b, from, pc.Color(), rookDirs[:])
	case Queen:
		dests = rayMoves(b, from, pc.Color(), queenDirs[:])
	case King:
		dests = offsetMoves(b, from, pc.Color(), kingOffsets)
	}

	if mode == Raw {
		return dests
	}

	legal := make([]Position, 0, len(dests))
	for _, to := range dests {
		hb := b.Copy()
		hb.SetPiece(to, pc)
		hb.SetPiece(from, NoPiece)
		if !InCheck(hb, pc.Color()) {
			legal = append(legal, to)
		}
	}
	return legal
}

// pawnMoves generates pawn pushes and captures. White pawns advance
// toward row 0, black pawns toward row 7. No en passant.
func pawnMoves(b *Board, from Position, c Color) []Position {
	dir := -1
	startRow := 6
	if c == Black {
		dir = 1
		startRow = 1
	}

	var dests []Position

	one := Position{Row: from.Row + dir, Col: from.Col}
	if one.InBounds() && b.PieceAt(one) == NoPiece {
		dests = append(dests, one)

		two := Position{Row: from.Row + 2*dir, Col: from.Col}
		if from.Row == startRow && b.PieceAt(two) == NoPiece {
			dests = append(dests, two)
		}
	}

	// Diagonal captures only onto enemy pieces.
	for _, dc := range [2]int{-1, 1} {
		diag := Position{Row: from.Row + dir, Col: from.Col + dc}
		if !diag.InBounds() {
			continue
		}
		target := b.PieceAt(diag)
		if target != NoPiece && target.Color() == c.Other() {
			dests = append(dests, diag)
		}
	}

	return dests
}

// offsetMoves generates fixed-offset destinations for knights and
// kings, excluding off-board squares and friendly pieces.
func offsetMoves(b *Board, from Position, c Color, offsets [8][2]int) []Position {
	var dests []Position
	for _, off := range offsets {
		to := Position{Row: from.Row + off[0], Col: from.Col + off[1]}
		if !to.InBounds() {
			continue
		}
		target := b.PieceAt(to)
		if target != NoPiece && target.Color() == c {
			continue
		}
		dests = append(dests, to)
	}
	return dests
}

// rayMoves casts outward in each direction, collecting empty squares
// until a ray hits a piece: a friendly piece ends the ray before it,
// an enemy piece is included as a capture and then ends it.
func rayMoves(b *Board, from Position, c Color, dirs [][2]int) []Position {
	var dests []Position
	for _, dir := range dirs {
		to := Position{Row: from.Row + dir[0], Col: from.Col + dir[1]}
		for to.InBounds() {
			target := b.PieceAt(to)
			if target == NoPiece {
				dests = append(dests, to)
				to = Position{Row: to.Row + dir[0], Col: to.Col + dir[1]}
				continue
			}
			if target.Color() != c {
				dests = append(dests, to)
			}
			break
		}
	}
	return dests
}

// IsAttacked reports whether any piece of by can reach pos in Raw mode.
func IsAttacked(b *Board, pos Position, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			from := Position{Row: row, Col: col}
			pc := b.PieceAt(from)
			if pc == NoPiece || pc.Color() != by {
				continue
			}
			for _, to := range Moves(b, from, Raw) {
				if to == pos {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether c's king stands on a square attacked by the
// opponent. A board with no king of that color is defined as not in
// check.
func InCheck(b *Board, c Color) bool {
	king, ok := b.FindKing(c)
	if !ok {
		return false
	}
	return IsAttacked(b, king, c.Other())
}
