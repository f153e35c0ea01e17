package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ilktb/ConsoleChess/game"
	"github.com/ilktb/ConsoleChess/rules"
)

// Screen positions of the board's top-left cell and the promotion menu.
const (
	BoardX  = 10
	BoardY  = 5
	MenuX   = 22
	MenuY   = 7
	StatusY = BoardY + 10
)

// Background colors of dark squares; light squares use lighten.
var (
	colorBoard    = tcell.ColorDarkGray
	colorImmobile = tcell.ColorDarkRed
	colorAttacked = tcell.ColorDarkMagenta
	colorLegal    = tcell.ColorDarkGreen
	colorCursor   = tcell.ColorOlive
	colorCheck    = tcell.ColorMaroon
)

var lighter = map[tcell.Color]tcell.Color{
	tcell.ColorDarkGray:    tcell.ColorSilver,
	tcell.ColorDarkRed:     tcell.ColorRed,
	tcell.ColorDarkMagenta: tcell.ColorFuchsia,
	tcell.ColorDarkGreen:   tcell.ColorGreen,
	tcell.ColorOlive:       tcell.ColorYellow,
	tcell.ColorMaroon:      tcell.ColorRed,
}

func lighten(c tcell.Color) tcell.Color {
	if l, ok := lighter[c]; ok {
		return l
	}
	return c
}

var promotionLabels = [...]string{
	rules.PromoteQueen:  "Queen",
	rules.PromoteRook:   "Rook",
	rules.PromoteBishop: "Bishop",
	rules.PromoteKnight: "Knight",
}

// ScreenPos maps a board square to its terminal cell.
func ScreenPos(sq rules.Square) (x, y int) {
	return BoardX + sq.X(), BoardY + 7 - sq.Y()
}

// Terminal draws the game onto s. The caller calls s.Show.
func Terminal(s tcell.Screen, g *game.Game) {
	b := g.Board()
	held := rules.NoSquare
	if g.State() == game.Holding {
		held = g.Held()
	}
	ov := NewOverlay(b, g.Player(), held, g.DebugPiece())
	cx, cy := g.Cursor()
	ov.Cursor = rules.SquareAt(cx, cy)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := rules.SquareAt(x, y)
			bg := colorBoard
			switch {
			case sq == ov.Cursor:
				bg = colorCursor
			case ov.isLegal(sq):
				bg = colorLegal
			case ov.isAttacked(sq):
				bg = colorAttacked
			case sq == ov.Check:
				bg = colorCheck
			case ov.isImmobile(sq):
				bg = colorImmobile
			}
			if (x+y)%2 == 1 {
				bg = lighten(bg)
			}

			ch, fg := ' ', tcell.ColorWhite
			if p := b.PieceAt(sq); p != nil {
				ch = p.Glyph()
				if p.Color() == rules.Black {
					fg = tcell.ColorBlack
				}
			}
			px, py := ScreenPos(sq)
			s.SetContent(px, py, ch, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	for i := 0; i < 8; i++ {
		label := tcell.StyleDefault.Foreground(tcell.ColorGray)
		s.SetContent(BoardX+i, BoardY+8, rune('a'+i), nil, label)
		s.SetContent(BoardX-2, BoardY+7-i, rune('1'+i), nil, label)
	}

	drawMenu(s, g)
	drawText(s, BoardX, StatusY, tcell.StyleDefault, padRight(status(g), 40))
}

func drawMenu(s tcell.Screen, g *game.Game) {
	for i, label := range promotionLabels {
		y := MenuY + 2*i
		if g.State() != game.AwaitPromote {
			drawText(s, MenuX, y, tcell.StyleDefault, padRight("", 6))
			continue
		}
		fg := tcell.ColorWhite
		if rules.Promotion(i) == g.PromotionOption() {
			fg = tcell.ColorYellow
		}
		drawText(s, MenuX, y, tcell.StyleDefault.Foreground(fg), padRight(label, 6))
	}
}

func status(g *game.Game) string {
	if g.State() == game.GameOver {
		if g.Outcome() == rules.Checkmate {
			return fmt.Sprintf("checkmate, %v wins", g.Player().Opposite())
		}
		return "stalemate"
	}
	s := fmt.Sprintf("%v to move", g.Player())
	if g.Board().IsInCheck(g.Player(), true) {
		s += " (check)"
	}
	return s
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
