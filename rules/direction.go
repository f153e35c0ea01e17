package rules

import "golang.org/x/exp/slices"

// Direction is a single ray (or fixed hop) walked from a piece's square.
// cells holds the reachable squares in walk order; if the walk was stopped by
// an occupant, that occupant's square is the last entry.
type Direction struct {
	piece    PieceID
	color    Color
	dx, dy   int
	maxSteps int
	hits     bool // registers into the attack graph
	cells    []Square
}

// newDirection walks (dx, dy) from p's square for at most maxSteps cells.
// With hits set, p is added to the attack list of every produced cell.
func newDirection(b *Board, p *Piece, dx, dy, maxSteps int, hits bool) Direction {
	d := Direction{
		piece:    p.id,
		color:    p.color,
		dx:       dx,
		dy:       dy,
		maxSteps: maxSteps,
		hits:     hits,
		cells:    b.lineOfSight(p.sq, dx, dy, maxSteps),
	}
	if hits {
		for _, sq := range d.cells {
			b.cells[sq].hitBy = append(b.cells[sq].hitBy, p.id)
		}
	}
	return d
}

// lineOfSight returns up to n consecutive squares from origin along (dx, dy),
// stopping after the first occupied square or at the board edge.
func (b *Board) lineOfSight(origin Square, dx, dy, n int) []Square {
	var out []Square
	x, y := origin.X(), origin.Y()
	for i := 1; i <= n; i++ {
		x, y = x+dx, y+dy
		if !onBoard(x, y) {
			break
		}
		sq := SquareAt(x, y)
		out = append(out, sq)
		if b.cells[sq].occupant != NoPieceID {
			break
		}
	}
	return out
}

// Cells returns the walked squares.
func (d *Direction) Cells() []Square { return d.cells }

// Vector returns the step of the ray.
func (d *Direction) Vector() (dx, dy int) { return d.dx, d.dy }

// MaxSteps returns the step limit the ray was walked with.
func (d *Direction) MaxSteps() int { return d.maxSteps }

// Attacks reports whether the ray registers into the attack graph.
func (d *Direction) Attacks() bool { return d.hits }

// lastTakeable reports whether the final cell may be moved onto.
func (d *Direction) lastTakeable(b *Board, enemyHittable bool) bool {
	last := d.cells[len(d.cells)-1]
	occ := b.cells[last].occupant
	if occ == NoPieceID {
		return true
	}
	return enemyHittable && b.pieces[occ].color != d.color
}

// PossibleMoves returns the destinations along the ray. All cells but the
// last are empty by construction; the last is included when empty, or when
// it holds an enemy piece and enemyHittable is set.
func (d *Direction) PossibleMoves(b *Board, enemyHittable bool) []Square {
	if len(d.cells) == 0 {
		return nil
	}
	out := make([]Square, 0, len(d.cells))
	out = append(out, d.cells[:len(d.cells)-1]...)
	if d.lastTakeable(b, enemyHittable) {
		out = append(out, d.cells[len(d.cells)-1])
	}
	return out
}

// PossibleMovesCount is len(PossibleMoves) without allocating.
func (d *Direction) PossibleMovesCount(b *Board, enemyHittable bool) int {
	if len(d.cells) == 0 {
		return 0
	}
	if d.lastTakeable(b, enemyHittable) {
		return len(d.cells)
	}
	return len(d.cells) - 1
}

// IsBlockedIfMove decides whether, after a piece relocates from -> to, this
// ray still fails to reach blocked (normally the defended king's square).
// true means the king stays shielded from this ray.
func (d *Direction) IsBlockedIfMove(b *Board, from, to, blocked Square) bool {
	toAt := slices.Index(d.cells, to)
	if toAt < 0 && slices.Contains(d.cells, blocked) {
		return false
	}
	if !slices.Contains(d.cells, from) {
		return true
	}
	if toAt >= 0 && toAt < len(d.cells)-1 {
		// Still interposed between the attacker and the old blocker square.
		return true
	}
	for _, sq := range b.lineOfSight(from, d.dx, d.dy, d.maxSteps-len(d.cells)) {
		if sq == to {
			return true
		}
		if sq == blocked {
			return false
		}
	}
	return true
}

// attacksThrough reports whether the ray, currently stopped on through,
// would reach target once through is vacated.
func (d *Direction) attacksThrough(b *Board, through, target Square) bool {
	n := len(d.cells)
	if n == 0 || d.cells[n-1] != through || d.maxSteps <= n {
		return false
	}
	return slices.Contains(b.lineOfSight(through, d.dx, d.dy, d.maxSteps-n), target)
}
