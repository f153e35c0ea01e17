package render

import (
	"strings"

	"github.com/ilktb/ConsoleChess/rules"
)

// Text returns an ASCII diagram of the board, white at the bottom. Empty light
// squares are '.', empty dark squares '+'.
func Text(b *rules.Board) string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for y := 7; y >= 0; y-- {
		rank := byte('1' + y)
		sb.WriteByte(rank)
		sb.WriteByte(' ')
		for x := 0; x < 8; x++ {
			c := b.CellAt(x, y)
			switch {
			case !c.IsEmpty():
				sb.WriteRune(b.Piece(c.Occupant()).Glyph())
			case (x+y)%2 == 1:
				sb.WriteByte('.')
			default:
				sb.WriteByte('+')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
