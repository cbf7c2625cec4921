package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string and returns the board and side to move.
// Only the piece placement and side-to-move fields are interpreted;
// the castling, en passant and clock fields are accepted and ignored,
// since the engine never executes those rules.
func ParseFEN(fen string) (*Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, NoColor, fmt.Errorf("invalid FEN: need at least 2 fields, got %d", len(parts))
	}

	b := &Board{}
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, NoColor, err
	}

	var stm Color
	switch parts[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, NoColor, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	return b, stm, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for row, rankStr := range ranks {
		col := 0
		for _, c := range rankStr {
			if col > 7 {
				return fmt.Errorf("too many squares in rank %d", 8-row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				b[row][col] = piece
				col++
			}
		}

		if col != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", 8-row, col)
		}
	}

	return nil
}

// ToFEN serializes the board and side to move as a FEN string. The
// castling and en passant fields are emitted as "-" and the clocks as
// "0 1", matching what the engine actually tracks.
func ToFEN(b *Board, stm Color) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			pc := b[row][col]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteString("/")
		}
	}

	if stm == Black {
		sb.WriteString(" b - - 0 1")
	} else {
		sb.WriteString(" w - - 0 1")
	}

	return sb.String()
}
