package rules

import (
	"errors"
	"fmt"
)

// Square is a board position 0-63, rank*8 + file. a1 = 0, h8 = 63.
type Square int8

const NoSquare Square = -1

// ErrInvalidSquare is returned for malformed algebraic squares.
var ErrInvalidSquare = errors.New("invalid square")

// SquareAt combines a file and rank. Coordinates are not range checked.
func SquareAt(x, y int) Square { return Square(y*8 + x) }

// X returns the file of the square.
func (s Square) X() int { return int(s) & 7 }

// Y returns the rank of the square.
func (s Square) Y() int { return int(s) >> 3 }

// Valid reports whether the square is on the board.
func (s Square) Valid() bool { return s >= 0 && s < 64 }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.X()), '1' + byte(s.Y())})
}

// ParseSquare converts an algebraic square such as "e4".
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	file, rank := alg[0], alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, alg)
	}
	return SquareAt(int(file-'a'), int(rank-'1')), nil
}

func onBoard(x, y int) bool { return x >= 0 && x < 8 && y >= 0 && y < 8 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
