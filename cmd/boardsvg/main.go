// Command boardsvg writes an SVG picture of a FEN position, optionally with
// the legal moves and attacked squares of one piece highlighted.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/ilktb/ConsoleChess/render"
	"github.com/ilktb/ConsoleChess/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "Position to draw")
	out := flag.String("o", "", "Output file (default stdout)")
	sel := flag.String("select", "", "Square of a piece whose moves and attacks are highlighted, e.g. g1")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.WithError(err).Fatal("create output")
		}
		defer f.Close()
		w = f
	}
	if err := draw(w, *fen, *sel); err != nil {
		log.WithError(err).Fatal("draw")
	}
}

func draw(w io.Writer, fen, sel string) error {
	b, side, err := rules.ParseFEN(fen)
	if err != nil {
		return err
	}
	b.TurnStart(side)

	selected, debug := rules.NoSquare, rules.NoPieceID
	if sel != "" {
		sq, err := rules.ParseSquare(sel)
		if err != nil {
			return err
		}
		if p := b.PieceAt(sq); p != nil {
			selected, debug = sq, p.ID()
			if p.Color() != side {
				// Legal lists only exist for the side passed to TurnStart.
				side = p.Color()
				b.TurnStart(side)
			}
		}
	}
	render.SVG(w, b, render.NewOverlay(b, side, selected, debug))
	return nil
}
