//go:build chessdebug

package rules

import "fmt"

// assertLegal panics when from -> to is not a legal move of the piece on
// from. Only compiled with the chessdebug tag.
func assertLegal(b *Board, from, to Square) {
	p := b.PieceAt(from)
	if p == nil {
		panic(fmt.Sprintf("rules: move from empty square %v", from))
	}
	if !p.CanMoveTo(to) {
		panic(fmt.Sprintf("rules: %v %v on %v cannot move to %v", p.color, p.kind, from, to))
	}
}
