package rules

import (
	"errors"
	"fmt"
	"strings"
)

// Move packs a from/to pair and a promotion choice into one value.
type Move uint32

// Bitfield layout within Move (from LSB to MSB)
const (
	moveFromShift    = 0 // 6 bits
	moveToShift      = 6 // 6 bits
	movePromoteShift = 12
)

// ErrInvalidMove is returned by ParseMove for malformed coordinate strings.
var ErrInvalidMove = errors.New("invalid move")

// NewMove constructs a Move. promo is ignored by the board unless the move
// is a promotion.
func NewMove(from, to Square, promo Promotion) Move {
	return Move(uint32(from&0x3F)<<moveFromShift |
		uint32(to&0x3F)<<moveToShift |
		uint32(promo&0x3)<<movePromoteShift)
}

// From returns the source square.
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// Promotion returns the promotion choice carried by the move.
func (m Move) Promotion() Promotion { return Promotion((uint32(m) >> movePromoteShift) & 0x3) }

// Format renders the move in coordinate form, appending the promotion letter
// when the move promotes on b ("e7e8q").
func (m Move) Format(b *Board) string {
	s := m.From().String() + m.To().String()
	if b.IsPromotable(m.From(), m.To()) {
		s += string(promotionLetters[m.Promotion()])
	}
	return s
}

// String renders the move in coordinate form. Non-queen promotions carry
// their letter; use Format when the board is at hand.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != PromoteQueen {
		s += string(promotionLetters[p])
	}
	return s
}

var promotionLetters = [...]byte{PromoteQueen: 'q', PromoteRook: 'r', PromoteBishop: 'b', PromoteKnight: 'n'}

// ParseMove converts a coordinate string (e2e4, e7e8q) into a Move. A
// missing promotion letter means queen.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return 0, fmt.Errorf("%w: %q has wrong length", ErrInvalidMove, movestr)
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	promo := PromoteQueen
	if len(movestr) == 5 {
		switch movestr[4] {
		case 'q':
			promo = PromoteQueen
		case 'r':
			promo = PromoteRook
		case 'b':
			promo = PromoteBishop
		case 'n':
			promo = PromoteKnight
		default:
			return 0, fmt.Errorf("%w: promotion piece %q", ErrInvalidMove, movestr[4])
		}
	}
	return NewMove(from, to, promo), nil
}

// Apply plays m, which must be legal for the side that last ran TurnStart.
func (b *Board) Apply(m Move) { b.Move(m.From(), m.To(), m.Promotion()) }
