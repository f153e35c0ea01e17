package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ilktb/ConsoleChess/rules"
)

// SVG layout in user units.
const (
	svgSquare = 60
	svgMargin = 24
	svgSize   = 8*svgSquare + 2*svgMargin
)

var svgFill = struct {
	light, dark, legal, attacked, immobile, check, cursor string
}{
	light:    "fill:#f0d9b5",
	dark:     "fill:#b58863",
	legal:    "fill:#2e8b57;fill-opacity:0.55",
	attacked: "fill:#8b008b;fill-opacity:0.45",
	immobile: "fill:#8b0000;fill-opacity:0.35",
	check:    "fill:#ff0000;fill-opacity:0.6",
	cursor:   "fill:none;stroke:#daa520;stroke-width:4",
}

// SVG writes the board with the overlay to w, white at the bottom.
func SVG(w io.Writer, b *rules.Board, ov Overlay) {
	canvas := svg.New(w)
	canvas.Start(svgSize, svgSize)
	canvas.Title("chess board")
	canvas.Rect(0, 0, svgSize, svgSize, "fill:#312e2b")

	canvas.Gid("squares")
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sq := rules.SquareAt(x, y)
			px, py := svgOrigin(sq)
			style := svgFill.dark
			if (x+y)%2 == 1 {
				style = svgFill.light
			}
			canvas.Rect(px, py, svgSquare, svgSquare, style)
			switch {
			case sq == ov.Check:
				canvas.Rect(px, py, svgSquare, svgSquare, svgFill.check)
			case ov.isImmobile(sq):
				canvas.Rect(px, py, svgSquare, svgSquare, svgFill.immobile)
			}
			if ov.isAttacked(sq) {
				canvas.Rect(px, py, svgSquare, svgSquare, svgFill.attacked)
			}
			if ov.isLegal(sq) {
				canvas.Circle(px+svgSquare/2, py+svgSquare/2, svgSquare/6, svgFill.legal)
			}
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for _, p := range b.Pieces() {
		px, py := svgOrigin(p.Square())
		fill, stroke := "#ffffff", "#000000"
		if p.Color() == rules.Black {
			fill, stroke = "#000000", "#ffffff"
		}
		canvas.Text(px+svgSquare/2, py+svgSquare*3/4, string(p.Symbol()),
			fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s;stroke:%s;stroke-width:0.5", svgSquare*3/4, fill, stroke))
	}
	canvas.Gend()

	for _, sq := range []rules.Square{ov.Selected, ov.Cursor} {
		if sq.Valid() {
			px, py := svgOrigin(sq)
			canvas.Rect(px+2, py+2, svgSquare-4, svgSquare-4, svgFill.cursor)
		}
	}

	canvas.Gstyle("font-size:14px;fill:#d0d0d0;text-anchor:middle")
	for i := 0; i < 8; i++ {
		canvas.Text(svgMargin+i*svgSquare+svgSquare/2, svgSize-6, string(rune('a'+i)))
		canvas.Text(svgMargin/2, svgMargin+(7-i)*svgSquare+svgSquare/2+5, string(rune('1'+i)))
	}
	canvas.Gend()
	canvas.End()
}

func svgOrigin(sq rules.Square) (x, y int) {
	return svgMargin + sq.X()*svgSquare, svgMargin + (7-sq.Y())*svgSquare
}
