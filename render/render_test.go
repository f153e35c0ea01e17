package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/slices"

	"github.com/ilktb/ConsoleChess/game"
	"github.com/ilktb/ConsoleChess/render"
	"github.com/ilktb/ConsoleChess/rules"
)

func square(t *testing.T, alg string) rules.Square {
	t.Helper()
	s, err := rules.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func TestText(t *testing.T) {
	out := render.Text(rules.New())
	for _, line := range []string{
		"8 r n b q k b n r 8",
		"4 . + . + . + . + 4",
		"1 R N B Q K B N R 1",
		"  a b c d e f g h",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("diagram missing %q:\n%s", line, out)
		}
	}
}

func TestOverlay(t *testing.T) {
	b := rules.New()
	b.TurnStart(rules.White)
	knight := b.PieceAt(square(t, "b1"))
	ov := render.NewOverlay(b, rules.White, square(t, "g1"), knight.ID())

	if len(ov.Legal) != 2 || !slices.Contains(ov.Legal, square(t, "f3")) || !slices.Contains(ov.Legal, square(t, "h3")) {
		t.Fatalf("legal: got %v", ov.Legal)
	}
	if len(ov.Attacked) != 3 {
		t.Fatalf("b1 knight attacks: got %v want a3 c3 d2", ov.Attacked)
	}
	if len(ov.Immobile) != 6 {
		t.Fatalf("immobile white pieces: got %d want 6", len(ov.Immobile))
	}
	if ov.Check != rules.NoSquare {
		t.Fatalf("no side is in check")
	}

	b, side, err := rules.ParseFEN("4k3/8/8/8/8/8/8/4K2r w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b.TurnStart(side)
	if ov := render.NewOverlay(b, side, rules.NoSquare, rules.NoPieceID); ov.Check != square(t, "e1") {
		t.Fatalf("check square: got %v want e1", ov.Check)
	}
}

func TestSVG(t *testing.T) {
	b := rules.New()
	b.TurnStart(rules.White)
	ov := render.NewOverlay(b, rules.White, square(t, "e2"), rules.NoPieceID)

	var buf bytes.Buffer
	render.SVG(&buf, b, ov)
	out := buf.String()
	if !strings.HasPrefix(strings.TrimSpace(out), "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an SVG document:\n%s", out)
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Fatalf("legal markers: got %d want 2", got)
	}
	if !strings.Contains(out, "♔") || !strings.Contains(out, "♛") {
		t.Fatalf("kings and queens missing")
	}
	if got := strings.Count(out, "♟"); got != 8 {
		t.Fatalf("black pawns: got %d want 8", got)
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(80, 25)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.Screen, sq rules.Square) (rune, tcell.Color, tcell.Color) {
	x, y := render.ScreenPos(sq)
	r, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestTerminalBoard(t *testing.T) {
	s := newScreen(t)
	g := game.New(nil)
	render.Terminal(s, g)
	s.Show()

	if r, fg, _ := cellAt(s, square(t, "e1")); r != 'K' || fg != tcell.ColorWhite {
		t.Fatalf("e1: got %q fg %v", r, fg)
	}
	if r, fg, _ := cellAt(s, square(t, "d8")); r != 'q' || fg != tcell.ColorBlack {
		t.Fatalf("d8: got %q fg %v", r, fg)
	}
	if _, _, bg := cellAt(s, square(t, "a1")); bg != tcell.ColorOlive {
		t.Fatalf("cursor square background: got %v", bg)
	}
	if _, _, bg := cellAt(s, square(t, "e5")); bg != tcell.ColorDarkGray {
		t.Fatalf("e5 background: got %v", bg)
	}

	// Pick up the g1 knight: f3 and h3 light up.
	for i := 0; i < 6; i++ {
		g.Handle(game.Right)
	}
	g.Handle(game.Interact)
	render.Terminal(s, g)
	for _, alg := range []string{"f3", "h3"} {
		if _, _, bg := cellAt(s, square(t, alg)); bg != tcell.ColorGreen {
			t.Fatalf("%s background: got %v want legal highlight", alg, bg)
		}
	}
}

func TestTerminalPromotionMenu(t *testing.T) {
	s := newScreen(t)
	g, err := game.NewFromFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1", nil)
	if err != nil {
		t.Fatalf("NewFromFEN: %v", err)
	}
	for i := 0; i < 6; i++ {
		g.Handle(game.Up)
	}
	g.Handle(game.Interact)
	g.Handle(game.Up)
	g.Handle(game.Interact)
	if g.State() != game.AwaitPromote {
		t.Fatalf("state: got %v want await-promote", g.State())
	}
	g.Handle(game.Down)
	render.Terminal(s, g)

	row := func(y int) (string, tcell.Color) {
		var sb strings.Builder
		var fg tcell.Color
		for x := render.MenuX; x < render.MenuX+6; x++ {
			r, _, style, _ := s.GetContent(x, y)
			sb.WriteRune(r)
			if x == render.MenuX {
				fg, _, _ = style.Decompose()
			}
		}
		return strings.TrimSpace(sb.String()), fg
	}
	if label, fg := row(render.MenuY); label != "Queen" || fg != tcell.ColorWhite {
		t.Fatalf("menu row 0: %q %v", label, fg)
	}
	if label, fg := row(render.MenuY + 2); label != "Rook" || fg != tcell.ColorYellow {
		t.Fatalf("menu row 1: %q %v", label, fg)
	}
}
