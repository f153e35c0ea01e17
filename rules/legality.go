package rules

// TurnStart rebuilds the attack graph from scratch and fills the legal move
// lists of color's pieces; every other piece ends with an empty list. It
// reports whether color has at least one legal move.
func (b *Board) TurnStart(color Color) bool {
	b.rebuildAttacks()

	anyLegal := false
	for _, id := range b.registry {
		p := &b.pieces[id]
		p.legal = p.legal[:0]
		if p.color != color {
			continue
		}
		for _, dest := range p.pseudo {
			if b.isMoveLegal(p, dest) {
				p.legal = append(p.legal, dest)
				anyLegal = true
			}
		}
	}
	return anyLegal
}

// IsMoveLegal reports whether moving piece id to dest keeps its own king
// safe. dest is expected to be one of the piece's pseudo-legal moves and the
// attack graph must be current (TurnStart or Move since the last change).
func (b *Board) IsMoveLegal(id PieceID, dest Square) bool {
	p := b.Piece(id)
	if p == nil || !p.alive || !dest.Valid() {
		return false
	}
	return b.isMoveLegal(p, dest)
}

func (b *Board) isMoveLegal(p *Piece, dest Square) bool {
	if p.kind == King {
		return b.isKingMoveLegal(p, dest)
	}

	king := &b.pieces[b.kings[p.color]]
	enPassant := p.kind == Pawn && dest == b.enPassant && b.enPassantVictim(p.color) != nil
	captures := func(h *Piece) bool {
		return h.sq == dest || (enPassant && h.sq == b.enPassantCapture)
	}

	if b.inCheck[p.color] {
		// Every checker has to be captured or blocked; moving must not
		// unblock anything else either.
		for _, hid := range b.cells[king.sq].hitBy {
			h := &b.pieces[hid]
			if h.color == p.color || captures(h) {
				continue
			}
			if !h.IsBlockedIfMove(b, p.sq, dest, king.sq) {
				return false
			}
		}
	}

	// Pins: an enemy ray through our square must stay blocked.
	for _, hid := range b.cells[p.sq].hitBy {
		h := &b.pieces[hid]
		if h.color == p.color || captures(h) {
			continue
		}
		if !h.IsBlockedIfMove(b, p.sq, dest, king.sq) {
			return false
		}
	}

	if enPassant && b.enPassantExposesKing(p, dest, king.sq) {
		return false
	}
	return true
}

func (b *Board) isKingMoveLegal(k *Piece, dest Square) bool {
	for _, hid := range b.cells[dest].hitBy {
		h := &b.pieces[hid]
		if h.color != k.color && h.sq != dest {
			return false
		}
	}

	// A slider checking the king still covers the squares behind it.
	for _, hid := range b.cells[k.sq].hitBy {
		h := &b.pieces[hid]
		if h.color == k.color {
			continue
		}
		for i := range h.dirs {
			if d := &h.dirs[i]; d.hits && d.attacksThrough(b, k.sq, dest) {
				return false
			}
		}
	}

	if dx := dest.X() - k.sq.X(); dx == 2 || dx == -2 {
		if b.inCheck[k.color] {
			return false
		}
		transit := SquareAt(k.sq.X()+dx/2, k.sq.Y())
		for _, hid := range b.cells[transit].hitBy {
			if b.pieces[hid].color != k.color {
				return false
			}
		}
	}
	return true
}

// enPassantExposesKing scans outward from the king with the capturing pawn
// moved to dest and both pawns gone from their squares, looking for an enemy
// slider on the opened line.
func (b *Board) enPassantExposesKing(p *Piece, dest, kingSq Square) bool {
	vacated := func(sq Square) bool { return sq == p.sq || sq == b.enPassantCapture }
	for _, v := range allWays {
		straight := v[0] == 0 || v[1] == 0
		x, y := kingSq.X(), kingSq.Y()
		for {
			x, y = x+v[0], y+v[1]
			if !onBoard(x, y) {
				break
			}
			sq := SquareAt(x, y)
			if sq == dest {
				break
			}
			if vacated(sq) || b.cells[sq].IsEmpty() {
				continue
			}
			q := &b.pieces[b.cells[sq].occupant]
			if q.color != p.color {
				switch q.kind {
				case Queen:
					return true
				case Rook:
					if straight {
						return true
					}
				case Bishop:
					if !straight {
						return true
					}
				}
			}
			break
		}
	}
	return false
}

// IsInCheck reports whether color's king is attacked. With useCache the
// flag computed at the last attack graph rebuild is returned; otherwise the
// king's attack list is scanned directly.
func (b *Board) IsInCheck(color Color, useCache bool) bool {
	if useCache {
		return b.inCheck[color]
	}
	return b.kingAttacked(color)
}

func (b *Board) kingAttacked(color Color) bool {
	kid := b.kings[color]
	if kid == NoPieceID {
		return false
	}
	for _, hid := range b.cells[b.pieces[kid].sq].hitBy {
		if b.pieces[hid].color != color {
			return true
		}
	}
	return false
}

// LegalMoves lists every legal move of color as computed by the last
// TurnStart(color), one entry per promotion choice, in registry order.
func (b *Board) LegalMoves(color Color) []Move {
	var out []Move
	for _, id := range b.registry {
		p := &b.pieces[id]
		if p.color != color {
			continue
		}
		for _, dest := range p.legal {
			if b.IsPromotable(p.sq, dest) {
				for _, promo := range Promotions {
					out = append(out, NewMove(p.sq, dest, promo))
				}
				continue
			}
			out = append(out, NewMove(p.sq, dest, PromoteQueen))
		}
	}
	return out
}

// Outcome classifies the position for the side to move. It must be called
// after TurnStart(color).
func (b *Board) Outcome(color Color) Outcome {
	for _, id := range b.registry {
		if p := &b.pieces[id]; p.color == color && len(p.legal) > 0 {
			return Ongoing
		}
	}
	if b.inCheck[color] {
		return Checkmate
	}
	return Stalemate
}

// Outcome of a position for the side to move.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}
