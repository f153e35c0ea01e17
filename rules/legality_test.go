package rules_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"

	"github.com/ilktb/ConsoleChess/rules"
)

func TestPinnedPieceCannotMove(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1")
	if !b.TurnStart(side) {
		t.Fatalf("expected legal moves")
	}
	if got := legalFrom(t, b, "e2"); len(got) != 0 {
		t.Fatalf("pinned bishop moves: got %v want none", got)
	}
	if got, want := legalFrom(t, b, "e1"), []string{"d1", "d2", "f1", "f2"}; !slices.Equal(got, want) {
		t.Fatalf("king moves: got %v want %v", got, want)
	}
}

func TestPinnedPieceMovesAlongPin(t *testing.T) {
	b, side := mustFEN(t, "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1")
	b.TurnStart(side)
	want := []string{"e3", "e4", "e5", "e6", "e7"}
	if got := legalFrom(t, b, "e2"); !slices.Equal(got, want) {
		t.Fatalf("pinned rook moves: got %v want %v", got, want)
	}
}

func TestCheckMustBeResolved(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/8/4r3/R7/8/4K3 w - - 0 1")
	b.TurnStart(side)
	if !b.IsInCheck(rules.White, true) || !b.IsInCheck(rules.White, false) {
		t.Fatalf("white should be in check")
	}
	if got := legalFrom(t, b, "a3"); !slices.Equal(got, []string{"e3"}) {
		t.Fatalf("rook must interpose on e3, got %v", got)
	}
	if got, want := legalFrom(t, b, "e1"), []string{"d1", "d2", "f1", "f2"}; !slices.Equal(got, want) {
		t.Fatalf("king moves: got %v want %v", got, want)
	}
}

func TestDoubleCheckOnlyKingMoves(t *testing.T) {
	// Rook on e8 and knight on d3 both check; only the king may move.
	b, side := mustFEN(t, "4r2k/8/8/8/8/3n4/8/R3K3 w - - 0 1")
	b.TurnStart(side)
	if got := legalFrom(t, b, "a1"); len(got) != 0 {
		t.Fatalf("rook moves in double check: got %v", got)
	}
	for _, m := range b.LegalMoves(side) {
		if m.From() != square(t, "e1") {
			t.Fatalf("non-king move %v allowed in double check", m)
		}
	}
}

func TestKingCannotRetreatAlongCheckingRay(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	b.TurnStart(side)
	if got, want := legalFrom(t, b, "e1"), []string{"d2", "e2", "f2"}; !slices.Equal(got, want) {
		t.Fatalf("king moves: got %v want %v", got, want)
	}
}

func TestKingMayCaptureUndefendedAttacker(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1")
	b.TurnStart(side)
	if got, want := legalFrom(t, b, "e1"), []string{"d2", "f1"}; !slices.Equal(got, want) {
		t.Fatalf("king moves: got %v want %v", got, want)
	}
	b, side = mustFEN(t, "4k3/8/8/8/8/8/3q4/3rK3 w - - 0 1")
	if b.TurnStart(side) {
		t.Fatalf("defended queen: expected no legal moves, got %v", b.LegalMoves(side))
	}
	if got := b.Outcome(side); got != rules.Checkmate {
		t.Fatalf("outcome: got %v want checkmate", got)
	}
}

func TestCastlingConditions(t *testing.T) {
	cases := []struct {
		name      string
		fen       string
		kingside  bool
		queenside bool
	}{
		{"both allowed", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"rook moved", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", false, true},
		{"king moved", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"path blocked", "r3k2r/8/8/8/8/8/8/R3K1NR w KQkq - 0 1", false, true},
		{"queenside path blocked", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"in check", "r3k2r/4r3/8/8/8/8/8/R3K2R w KQkq - 0 1", false, false},
		{"transit attacked", "r3k2r/5r2/8/8/8/8/8/R3K2R w KQkq - 0 1", false, true},
		{"destination attacked", "r3k2r/6r1/8/8/8/8/8/R3K2R w KQkq - 0 1", false, true},
		{"b-file attack is irrelevant", "r3k2r/1r6/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, side := mustFEN(t, tc.fen)
			b.TurnStart(side)
			got := legalFrom(t, b, "e1")
			if slices.Contains(got, "g1") != tc.kingside {
				t.Fatalf("kingside: got moves %v, want castling=%v", got, tc.kingside)
			}
			if slices.Contains(got, "c1") != tc.queenside {
				t.Fatalf("queenside: got moves %v, want castling=%v", got, tc.queenside)
			}
		})
	}
}

func TestFoolsMate(t *testing.T) {
	b := rules.New()
	side := rules.White
	for _, ms := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if !b.TurnStart(side) {
			t.Fatalf("%v has no moves before %s", side, ms)
		}
		m, err := rules.ParseMove(ms)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", ms, err)
		}
		if !slices.Contains(b.LegalMoves(side), m) {
			t.Fatalf("%s not legal; legal moves:\n%s", ms, spew.Sdump(b.LegalMoves(side)))
		}
		b.Apply(m)
		side = side.Opposite()
	}
	if b.TurnStart(rules.White) {
		t.Fatalf("white should be mated, legal moves: %v", b.LegalMoves(rules.White))
	}
	if !b.IsInCheck(rules.White, true) {
		t.Fatalf("white should be in check")
	}
	if got := b.Outcome(rules.White); got != rules.Checkmate {
		t.Fatalf("outcome: got %v want checkmate", got)
	}
}

func TestStalemate(t *testing.T) {
	b, side := mustFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if b.TurnStart(side) {
		t.Fatalf("black should have no legal moves")
	}
	if b.IsInCheck(rules.Black, false) {
		t.Fatalf("black should not be in check")
	}
	if got := b.Outcome(side); got != rules.Stalemate {
		t.Fatalf("outcome: got %v want stalemate", got)
	}
}

func TestEnPassantDiscoveredCheck(t *testing.T) {
	b, side := mustFEN(t, "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1")
	b.TurnStart(side)
	if got := legalFrom(t, b, "b5"); !slices.Equal(got, []string{"b6"}) {
		t.Fatalf("pawn moves: got %v want [b6]", got)
	}
}

func TestEnPassantCapturesChecker(t *testing.T) {
	// White's d-pawn just advanced two squares and checks the king on c5.
	b, side := mustFEN(t, "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1")
	b.TurnStart(side)
	if !b.IsInCheck(rules.Black, true) {
		t.Fatalf("black should be in check")
	}
	if got := legalFrom(t, b, "e4"); !slices.Contains(got, "d3") {
		t.Fatalf("en passant capture of the checker missing: %v", got)
	}
}

func TestIsMoveLegalQuery(t *testing.T) {
	b, side := mustFEN(t, "4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1")
	b.TurnStart(side)
	bishop := b.PieceAt(square(t, "e2"))
	if b.IsMoveLegal(bishop.ID(), square(t, "d3")) {
		t.Fatalf("pinned bishop to d3 reported legal")
	}
	king := b.King(rules.White)
	if !b.IsMoveLegal(king.ID(), square(t, "f1")) {
		t.Fatalf("king to f1 reported illegal")
	}
	if b.IsMoveLegal(rules.PieceID(99), square(t, "a1")) {
		t.Fatalf("unknown piece reported legal")
	}
}
