// Package render draws a rules.Board as text, SVG or onto a terminal screen.
// Renderers only read the board.
package render

import (
	"golang.org/x/exp/slices"

	"github.com/ilktb/ConsoleChess/rules"
)

// Overlay lists the squares a renderer highlights on top of the pieces.
type Overlay struct {
	Cursor   rules.Square
	Selected rules.Square
	Legal    []rules.Square // destinations of the selected piece
	Attacked []rules.Square // squares attacked by the debug piece
	Immobile []rules.Square // pieces of the side to move without legal moves
	Check    rules.Square   // king of the side to move when in check
}

// NoOverlay highlights nothing.
var NoOverlay = Overlay{Cursor: rules.NoSquare, Selected: rules.NoSquare, Check: rules.NoSquare}

// NewOverlay derives the highlight sets for side from a board on which
// TurnStart(side) has run. selected and debug may be NoSquare and NoPieceID.
func NewOverlay(b *rules.Board, side rules.Color, selected rules.Square, debug rules.PieceID) Overlay {
	ov := NoOverlay
	if p := b.PieceAt(selected); p != nil {
		ov.Selected = selected
		ov.Legal = slices.Clone(p.LegalMoves())
	}
	if debug != rules.NoPieceID {
		ov.Attacked = AttackedBy(b, debug)
	}
	for _, p := range b.Pieces() {
		if p.Color() == side && p.LegalMoveCount() == 0 {
			ov.Immobile = append(ov.Immobile, p.Square())
		}
	}
	if b.IsInCheck(side, true) {
		ov.Check = b.King(side).Square()
	}
	return ov
}

// AttackedBy returns every square whose attack list holds id.
func AttackedBy(b *rules.Board, id rules.PieceID) []rules.Square {
	var out []rules.Square
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if c := b.CellAt(x, y); c.IsHitBy(id) {
				out = append(out, c.Square())
			}
		}
	}
	return out
}

func (ov *Overlay) isLegal(sq rules.Square) bool    { return slices.Contains(ov.Legal, sq) }
func (ov *Overlay) isAttacked(sq rules.Square) bool { return slices.Contains(ov.Attacked, sq) }
func (ov *Overlay) isImmobile(sq rules.Square) bool { return slices.Contains(ov.Immobile, sq) }
