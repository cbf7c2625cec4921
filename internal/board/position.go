// Package board implements a mailbox chess board with per-piece move
// generation, attack detection and check testing.
package board

import "fmt"

// Position identifies a square by row and column, both 0-7.
// Row 0 is black's home rank (rank 8), row 7 is white's (rank 1).
type Position struct {
	Row int
	Col int
}

// InBounds returns true if the position lies on the board.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row <= 7 && p.Col >= 0 && p.Col <= 7
}

// String returns the algebraic notation for the square (e.g., "e4").
func (p Position) String() string {
	if !p.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.Col, '8'-p.Row)
}

// ParsePosition parses algebraic notation (e.g., "e4") into a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("invalid square: %s", s)
	}

	col := int(s[0] - 'a')
	row := int('8' - s[1])

	p := Position{Row: row, Col: col}
	if !p.InBounds() {
		return Position{}, fmt.Errorf("invalid square: %s", s)
	}

	return p, nil
}

// PositionsEqual compares two optional positions. It is true only when
// both are present and name the same square.
func PositionsEqual(a, b *Position) bool {
	return a != nil && b != nil && *a == *b
}
