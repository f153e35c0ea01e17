package rules

import "golang.org/x/exp/slices"

// Color is the side owning a piece.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank delta of a pawn advance for the color.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

// homeRank is the rank the color's pieces start on.
func (c Color) homeRank() int {
	if c == White {
		return 0
	}
	return 7
}

// promotionRank is the far rank a pawn of the color promotes on.
func (c Color) promotionRank() int {
	if c == White {
		return 7
	}
	return 0
}

// PieceID indexes the board's piece arena.
type PieceID int16

// NoPieceID marks an empty cell.
const NoPieceID PieceID = -1

// maxPieces bounds the arena: 32 starting pieces plus at most 16 promotions.
// The arena is allocated with this capacity so *Piece values stay valid
// across promotions.
const maxPieces = 48

// Cell is one square of the grid. The occupant link is authoritative for
// placement; hitBy is the attack-graph entry, rebuilt on every turn.
type Cell struct {
	sq       Square
	occupant PieceID
	hitBy    []PieceID
}

// X returns the file, 0-7.
func (c *Cell) X() int { return c.sq.X() }

// Y returns the rank, 0-7.
func (c *Cell) Y() int { return c.sq.Y() }

// Square returns the cell's square index.
func (c *Cell) Square() Square { return c.sq }

// Occupant returns the id of the piece on the cell, or NoPieceID.
func (c *Cell) Occupant() PieceID { return c.occupant }

// IsEmpty reports whether no piece stands on the cell.
func (c *Cell) IsEmpty() bool { return c.occupant == NoPieceID }

// HitBy returns the pieces currently attacking the cell in registration
// order. The slice is owned by the board and is only valid until the next
// TurnStart or Move.
func (c *Cell) HitBy() []PieceID { return c.hitBy }

// IsHitBy reports whether the given piece attacks the cell.
func (c *Cell) IsHitBy(id PieceID) bool { return slices.Contains(c.hitBy, id) }

// Board owns the 8x8 grid and every piece on it. It is not safe for
// concurrent use.
type Board struct {
	cells [64]Cell

	// Piece arena; ids are indices. Captured and promoted-away pieces stay in
	// the arena with alive=false.
	pieces []Piece

	// Live pieces in a stable order. Recalculation walks this slice so attack
	// graph registration order is reproducible.
	registry []PieceID

	kings [2]PieceID

	// En passant target (the skipped square) and the cell of the pawn that
	// would be captured. Both NoSquare or both set.
	enPassant        Square
	enPassantCapture Square

	inCheck [2]bool
}

// New returns a board set up in the standard initial position.
func New() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// NewEmpty returns a board with no pieces. Callers must place both kings
// with Place before calling TurnStart.
func NewEmpty() *Board {
	b := &Board{}
	b.clear()
	return b
}

// clear reallocates the grid and empties the registry.
func (b *Board) clear() {
	for i := range b.cells {
		b.cells[i] = Cell{sq: Square(i), occupant: NoPieceID}
	}
	b.pieces = make([]Piece, 0, maxPieces)
	b.registry = b.registry[:0]
	b.kings = [2]PieceID{NoPieceID, NoPieceID}
	b.enPassant = NoSquare
	b.enPassantCapture = NoSquare
	b.inCheck = [2]bool{}
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Reset puts the board back to the initial position and builds the attack
// graph for it.
func (b *Board) Reset() {
	b.clear()
	for _, c := range []Color{White, Black} {
		home := c.homeRank()
		for x, k := range backRank {
			b.Place(SquareAt(x, home), k, c)
		}
		for x := 0; x < 8; x++ {
			b.Place(SquareAt(x, home+c.forward()), Pawn, c)
		}
	}
	b.rebuildAttacks()
}

// Place adds a new unmoved piece on an empty square and registers it. It is
// meant for setting up positions; placing a second king of a color replaces
// the king reference.
func (b *Board) Place(sq Square, k Kind, c Color) PieceID {
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{
		id:    id,
		kind:  k,
		color: c,
		alive: true,
		sq:    sq,
	})
	b.cells[sq].occupant = id
	b.registry = append(b.registry, id)
	if k == King {
		b.kings[c] = id
	}
	return id
}

// removePiece takes a captured piece out of the registry. The caller clears
// the cell.
func (b *Board) removePiece(id PieceID) {
	b.pieces[id].alive = false
	if i := slices.Index(b.registry, id); i >= 0 {
		b.registry = slices.Delete(b.registry, i, i+1)
	}
}

// CellAt returns the cell at (x, y), or nil when either coordinate is
// outside 0-7.
func (b *Board) CellAt(x, y int) *Cell {
	if !onBoard(x, y) {
		return nil
	}
	return &b.cells[SquareAt(x, y)]
}

// Cell returns the cell for a valid square.
func (b *Board) Cell(sq Square) *Cell { return &b.cells[sq] }

// Piece returns the piece with the given id. Pointers are invalidated by
// Reset.
func (b *Board) Piece(id PieceID) *Piece {
	if id < 0 || int(id) >= len(b.pieces) {
		return nil
	}
	return &b.pieces[id]
}

// PieceAt returns the piece standing on sq, or nil.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.Piece(b.cells[sq].occupant)
}

// Pieces returns the live pieces in registry order.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, 0, len(b.registry))
	for _, id := range b.registry {
		out = append(out, &b.pieces[id])
	}
	return out
}

// King returns the king of the given color.
func (b *Board) King(c Color) *Piece { return b.Piece(b.kings[c]) }

// EnPassant returns the current en passant target square or NoSquare.
func (b *Board) EnPassant() Square { return b.enPassant }

// EnPassantCapture returns the square of the pawn an en passant capture
// would remove, or NoSquare.
func (b *Board) EnPassantCapture() Square { return b.enPassantCapture }

// AttackersOf returns the live pieces of color c attacking sq.
func (b *Board) AttackersOf(sq Square, c Color) []*Piece {
	var out []*Piece
	for _, id := range b.cells[sq].hitBy {
		if p := &b.pieces[id]; p.color == c {
			out = append(out, p)
		}
	}
	return out
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	nb := &Board{
		pieces:           make([]Piece, len(b.pieces), maxPieces),
		registry:         slices.Clone(b.registry),
		kings:            b.kings,
		enPassant:        b.enPassant,
		enPassantCapture: b.enPassantCapture,
		inCheck:          b.inCheck,
	}
	for i := range b.cells {
		nb.cells[i] = Cell{
			sq:       b.cells[i].sq,
			occupant: b.cells[i].occupant,
			hitBy:    slices.Clone(b.cells[i].hitBy),
		}
	}
	for i := range b.pieces {
		nb.pieces[i] = b.pieces[i].clone()
	}
	return nb
}

// Validate checks grid/registry consistency: every live piece sits on
// exactly the cell that points back to it, no cell points at a dead piece,
// each color has exactly one live king, the attack graph only references
// live pieces and the en passant pair is either fully set or unset.
func (b *Board) Validate() bool {
	seen := make(map[Square]PieceID, len(b.registry))
	kings := [2]int{}
	for _, id := range b.registry {
		p := &b.pieces[id]
		if !p.alive || !p.sq.Valid() {
			return false
		}
		if _, dup := seen[p.sq]; dup {
			return false
		}
		seen[p.sq] = id
		if b.cells[p.sq].occupant != id {
			return false
		}
		if p.kind == King {
			kings[p.color]++
			if b.kings[p.color] != id {
				return false
			}
		}
	}
	if kings != [2]int{1, 1} {
		return false
	}
	for i := range b.cells {
		c := &b.cells[i]
		if c.occupant != NoPieceID {
			if _, ok := seen[c.sq]; !ok {
				return false
			}
		}
		for _, id := range c.hitBy {
			if !b.pieces[id].alive {
				return false
			}
		}
	}
	return (b.enPassant == NoSquare) == (b.enPassantCapture == NoSquare)
}
