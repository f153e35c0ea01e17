package rules

// Move plays the piece on from to to and rebuilds the attack graph. The move
// must be one of the mover's legal moves from the last TurnStart; passing
// anything else leaves the board in an unspecified state. promo picks the
// replacement piece when the move is a promotion and is ignored otherwise.
//
// Captures, en passant, the castling rook hop and promotion are all handled
// here.
func (b *Board) Move(from, to Square, promo Promotion) {
	assertLegal(b, from, to)
	b.move(from, to, promo)
	b.rebuildAttacks()
}

func (b *Board) move(from, to Square, promo Promotion) {
	id := b.cells[from].occupant
	p := &b.pieces[id]

	if victim := b.cells[to].occupant; victim != NoPieceID {
		b.removePiece(victim)
	}

	b.cells[to].occupant = id
	b.cells[from].occupant = NoPieceID

	if p.kind == Pawn && to == b.enPassant {
		if v := b.enPassantVictim(p.color); v != nil {
			b.cells[v.sq].occupant = NoPieceID
			b.removePiece(v.id)
		}
	}

	if p.kind == King {
		switch to.X() - from.X() {
		case 2:
			rook := SquareAt(7, from.Y())
			b.move(rook, SquareAt(to.X()-1, from.Y()), PromoteQueen)
		case -2:
			rook := SquareAt(0, from.Y())
			b.move(rook, SquareAt(to.X()+1, from.Y()), PromoteQueen)
		}
	}

	if p.kind == Pawn && to.Y() == p.color.promotionRank() {
		id = b.promote(id, to, promo)
		p = &b.pieces[id]
	}

	p.sq = to
	p.moved = true
	b.recalculate(p)

	// The rook hop recursion above already cleared the window; only the
	// outermost call decides the new one.
	b.enPassant, b.enPassantCapture = NoSquare, NoSquare
	if p.kind == Pawn && abs(to.Y()-from.Y()) == 2 {
		b.enPassant = SquareAt(from.X(), (from.Y()+to.Y())/2)
		b.enPassantCapture = to
	}
}

// promote retires the pawn id standing on sq and puts a new piece of the
// chosen kind in its registry slot, so registry order is unchanged.
func (b *Board) promote(id PieceID, sq Square, promo Promotion) PieceID {
	pawn := &b.pieces[id]
	nid := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, Piece{
		id:    nid,
		kind:  promo.Kind(),
		color: pawn.color,
		alive: true,
		sq:    sq,
	})
	pawn = &b.pieces[id]
	pawn.alive = false
	pawn.dirs, pawn.pseudo, pawn.legal = nil, nil, nil

	for i, rid := range b.registry {
		if rid == id {
			b.registry[i] = nid
			break
		}
	}
	b.cells[sq].occupant = nid
	return nid
}

// IsPromotable reports whether moving the piece on from to to would promote
// it: the piece is a pawn and to lies on its far rank.
func (b *Board) IsPromotable(from, to Square) bool {
	p := b.PieceAt(from)
	if p == nil || p.kind != Pawn || !to.Valid() {
		return false
	}
	return to.Y() == p.color.promotionRank()
}
