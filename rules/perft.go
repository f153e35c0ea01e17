package rules

// Perft counts the leaf nodes of the legal move tree of the given depth with
// side to move. Promotions count once per choice. b is not modified.
func Perft(b *Board, side Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	work := b.Clone()
	if !work.TurnStart(side) {
		return 0
	}
	moves := work.LegalMoves(side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := work.Clone()
		child.Apply(m)
		nodes += perftRec(child, side.Opposite(), depth-1)
	}
	return nodes
}

// perftRec owns b and may modify it.
func perftRec(b *Board, side Color, depth int) uint64 {
	if !b.TurnStart(side) {
		return 0
	}
	moves := b.LegalMoves(side)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := b.Clone()
		child.Apply(m)
		nodes += perftRec(child, side.Opposite(), depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move.
func PerftDivide(b *Board, side Color, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	work := b.Clone()
	if !work.TurnStart(side) {
		return result
	}
	for _, m := range work.LegalMoves(side) {
		child := work.Clone()
		child.Apply(m)
		if depth == 1 {
			result[m] = 1
			continue
		}
		result[m] = perftRec(child, side.Opposite(), depth-1)
	}
	return result
}
