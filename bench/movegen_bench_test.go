package bench

import (
	"testing"

	"github.com/ilktb/ConsoleChess/rules"
)

const (
	kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos6     = "r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10"
)

func benchTurnStart(b *testing.B, fen string) {
	board, side, err := rules.ParseFEN(fen)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.TurnStart(side)
	}
}

func BenchmarkTurnStart_Initial(b *testing.B) {
	benchTurnStart(b, rules.FENStartPos)
}

func BenchmarkTurnStart_Kiwipete(b *testing.B) {
	benchTurnStart(b, kiwipete)
}

func BenchmarkTurnStart_Pos6(b *testing.B) {
	benchTurnStart(b, pos6)
}

func BenchmarkTurnStart_EP(b *testing.B) {
	benchTurnStart(b, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
}

func BenchmarkMove_AllMoves_Initial(b *testing.B) {
	board, side, err := rules.ParseFEN(rules.FENStartPos)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	board.TurnStart(side)
	moves := board.LegalMoves(side)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range moves {
			c := board.Clone()
			c.Apply(m)
		}
	}
}

func BenchmarkClone_Kiwipete(b *testing.B) {
	board, _, err := rules.ParseFEN(kiwipete)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Clone()
	}
}
