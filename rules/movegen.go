package rules

// Step vectors.
var (
	orthogonal = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonal   = [4][2]int{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	allWays    = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	knightHops = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

// directionBuilders rebuild a piece's rays and return its pseudo-legal
// destinations. Indexed by Kind.
var directionBuilders [King + 1]func(b *Board, p *Piece) []Square

func init() {
	directionBuilders = [King + 1]func(b *Board, p *Piece) []Square{
		Pawn:   pawnMoves,
		Knight: hopperMoves(knightHops[:]),
		Bishop: sliderMoves(diagonal[:]),
		Rook:   sliderMoves(orthogonal[:]),
		Queen:  sliderMoves(allWays[:]),
		King:   kingMoves,
	}
}

// recalculate rebuilds p's rays from its current square, registering attack
// graph entries as a side effect, and caches its pseudo-legal moves.
func (b *Board) recalculate(p *Piece) {
	p.dirs = p.dirs[:0]
	p.castles = p.castles[:0]
	p.pseudo = directionBuilders[p.kind](b, p)
}

// rebuildAttacks clears every attack list and recalculates each live piece
// in registry order, then refreshes the check cache for both colors.
func (b *Board) rebuildAttacks() {
	for i := range b.cells {
		b.cells[i].hitBy = b.cells[i].hitBy[:0]
	}
	for _, id := range b.registry {
		b.recalculate(&b.pieces[id])
	}
	b.inCheck[White] = b.kingAttacked(White)
	b.inCheck[Black] = b.kingAttacked(Black)
}

func sliderMoves(vectors [][2]int) func(b *Board, p *Piece) []Square {
	return func(b *Board, p *Piece) []Square {
		return rayMoves(b, p, vectors, 8)
	}
}

func hopperMoves(vectors [][2]int) func(b *Board, p *Piece) []Square {
	return func(b *Board, p *Piece) []Square {
		return rayMoves(b, p, vectors, 1)
	}
}

func rayMoves(b *Board, p *Piece, vectors [][2]int, steps int) []Square {
	var out []Square
	for _, v := range vectors {
		d := newDirection(b, p, v[0], v[1], steps, true)
		p.dirs = append(p.dirs, d)
		out = append(out, d.PossibleMoves(b, true)...)
	}
	return out
}

// pawnMoves: a non-attacking forward push (two steps while unmoved) and two
// capture-only diagonals that always register into the attack graph.
func pawnMoves(b *Board, p *Piece) []Square {
	steps := 1
	if !p.moved {
		steps = 2
	}
	fwd := p.color.forward()
	push := newDirection(b, p, 0, fwd, steps, false)
	p.dirs = append(p.dirs, push)
	out := push.PossibleMoves(b, false)

	for _, dx := range [2]int{-1, 1} {
		d := newDirection(b, p, dx, fwd, 1, true)
		p.dirs = append(p.dirs, d)
		out = pawnCaptures(b, p, &d, out)
	}
	return out
}

// pawnCaptures appends the diagonal destination when it holds an enemy piece
// or is the en passant target of an enemy pawn.
func pawnCaptures(b *Board, p *Piece, d *Direction, out []Square) []Square {
	for _, sq := range d.cells {
		if occ := b.cells[sq].occupant; occ != NoPieceID {
			if b.pieces[occ].color != p.color {
				out = append(out, sq)
			}
			continue
		}
		if sq == b.enPassant && b.enPassantVictim(p.color) != nil {
			out = append(out, sq)
		}
	}
	return out
}

// enPassantVictim returns the pawn a pawn of color c would capture en
// passant, or nil.
func (b *Board) enPassantVictim(c Color) *Piece {
	if b.enPassantCapture == NoSquare {
		return nil
	}
	v := b.PieceAt(b.enPassantCapture)
	if v == nil || v.kind != Pawn || v.color == c {
		return nil
	}
	return v
}

// kingMoves: one-step hops plus the castling hops whose rook and path allow
// it. Check and attacked-transit conditions are left to IsMoveLegal.
func kingMoves(b *Board, p *Piece) []Square {
	out := rayMoves(b, p, allWays[:], 1)
	if p.moved {
		return out
	}
	x, y := p.sq.X(), p.sq.Y()
	for _, side := range [2]struct{ rookX, dir int }{{7, 1}, {0, -1}} {
		if !b.castlingPathClear(p, side.rookX, side.dir) {
			continue
		}
		sq := SquareAt(x+2*side.dir, y)
		p.castles = append(p.castles, sq)
		out = append(out, sq)
	}
	return out
}

// castlingPathClear checks the corner rook on rookX is an unmoved friendly
// rook and every cell between it and the king is empty.
func (b *Board) castlingPathClear(king *Piece, rookX, dir int) bool {
	x, y := king.sq.X(), king.sq.Y()
	if x != 4 || y != king.color.homeRank() {
		return false
	}
	rook := b.PieceAt(SquareAt(rookX, y))
	if rook == nil || rook.kind != Rook || rook.color != king.color || rook.moved {
		return false
	}
	for cx := x + dir; cx != rookX; cx += dir {
		if !b.cells[SquareAt(cx, y)].IsEmpty() {
			return false
		}
	}
	return true
}
