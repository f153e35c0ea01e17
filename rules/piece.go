package rules

import "golang.org/x/exp/slices"

// Kind is the movement variant of a piece. The set is closed; per-kind
// behaviour is looked up in tables indexed by Kind.
type Kind uint8

const (
	NoKind Kind = 0
	Pawn   Kind = 1
	Knight Kind = 2
	Bishop Kind = 3
	Rook   Kind = 4
	Queen  Kind = 5
	King   Kind = 6
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "invalid"
}

// glyphs are the ASCII letters used by text renderers, white upper-case.
var glyphs = [2][King + 1]rune{
	White: {' ', 'P', 'N', 'B', 'R', 'Q', 'K'},
	Black: {' ', 'p', 'n', 'b', 'r', 'q', 'k'},
}

// symbols are the Unicode figurines.
var symbols = [2][King + 1]rune{
	White: {' ', '♙', '♘', '♗', '♖', '♕', '♔'},
	Black: {' ', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Promotion is the piece a pawn turns into on its far rank. The order
// matches the promotion menu of the console game.
type Promotion uint8

const (
	PromoteQueen Promotion = iota
	PromoteRook
	PromoteBishop
	PromoteKnight
)

// Promotions lists every choice in menu order.
var Promotions = [...]Promotion{PromoteQueen, PromoteRook, PromoteBishop, PromoteKnight}

// Kind returns the piece kind the promotion produces.
func (p Promotion) Kind() Kind {
	switch p {
	case PromoteRook:
		return Rook
	case PromoteBishop:
		return Bishop
	case PromoteKnight:
		return Knight
	default:
		return Queen
	}
}

func (p Promotion) String() string { return p.Kind().String() }

// Piece is one entry of the board's piece arena.
type Piece struct {
	id    PieceID
	kind  Kind
	color Color
	moved bool
	alive bool

	// Positional cache; the cell's occupant link is authoritative.
	sq Square

	dirs    []Direction
	castles []Square // king only: synthetic two-file destinations
	pseudo  []Square
	legal   []Square
}

// ID returns the arena index of the piece.
func (p *Piece) ID() PieceID { return p.id }

// Kind returns the movement variant.
func (p *Piece) Kind() Kind { return p.kind }

// Color returns the owning side.
func (p *Piece) Color() Color { return p.color }

// Moved reports whether the piece has moved since it was placed.
func (p *Piece) Moved() bool { return p.moved }

// Alive reports whether the piece is still in the registry.
func (p *Piece) Alive() bool { return p.alive }

// Square returns the square the piece occupies.
func (p *Piece) Square() Square { return p.sq }

// Directions returns the rays computed at the last recalculation.
func (p *Piece) Directions() []Direction { return p.dirs }

// PseudoMoves returns the destinations reachable ignoring king safety, as of
// the last recalculation.
func (p *Piece) PseudoMoves() []Square { return p.pseudo }

// LegalMoves returns the legal destinations computed by the last TurnStart.
// Only pieces of the side passed to TurnStart have any.
func (p *Piece) LegalMoves() []Square { return p.legal }

// LegalMoveCount returns len(LegalMoves()).
func (p *Piece) LegalMoveCount() int { return len(p.legal) }

// CanMoveTo reports whether sq is among the legal destinations.
func (p *Piece) CanMoveTo(sq Square) bool { return slices.Contains(p.legal, sq) }

// Glyph returns the ASCII letter of the piece, upper-case for white.
func (p *Piece) Glyph() rune { return glyphs[p.color][p.kind] }

// Symbol returns the Unicode figurine of the piece.
func (p *Piece) Symbol() rune { return symbols[p.color][p.kind] }

// Mobility counts pseudo-legal destinations per direction, captures
// included. Castling hops are not counted.
func (p *Piece) Mobility(b *Board) int {
	n := 0
	for i := range p.dirs {
		d := &p.dirs[i]
		if d.hits && p.kind == Pawn {
			n += len(pawnCaptures(b, p, d, nil))
			continue
		}
		n += d.PossibleMovesCount(b, p.kind != Pawn)
	}
	return n
}

// IsBlockedIfMove reports whether every attacking ray of the piece still
// fails to reach blocked after a piece moves from -> to. Rays that do not
// attack, a pawn's forward push, are ignored.
func (p *Piece) IsBlockedIfMove(b *Board, from, to, blocked Square) bool {
	for i := range p.dirs {
		d := &p.dirs[i]
		if !d.hits {
			continue
		}
		if !d.IsBlockedIfMove(b, from, to, blocked) {
			return false
		}
	}
	return true
}

func (p *Piece) clone() Piece {
	c := *p
	c.dirs = make([]Direction, len(p.dirs))
	for i := range p.dirs {
		c.dirs[i] = p.dirs[i]
		c.dirs[i].cells = slices.Clone(p.dirs[i].cells)
	}
	c.castles = slices.Clone(p.castles)
	c.pseudo = slices.Clone(p.pseudo)
	c.legal = slices.Clone(p.legal)
	return c
}
