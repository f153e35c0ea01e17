package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	goosemg "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"

	"github.com/ilktb/ConsoleChess/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	verify := flag.Bool("verify", false, "Compare node counts against dragontoothmg and GooseEngineMG")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))

	if *depth <= 0 {
		log.Error("-depth must be > 0")
		os.Exit(2)
	}

	board, side, err := rules.ParseFEN(*fen)
	if err != nil {
		log.WithError(err).WithField("fen", *fen).Error("parse FEN")
		os.Exit(2)
	}

	if *divide {
		div := rules.PerftDivide(board, side, *depth)
		names := make(map[string]uint64, len(div))
		for m, n := range div {
			names[m.Format(board)] = n
		}
		keys := maps.Keys(names)
		sort.Strings(keys)
		var sum uint64
		for _, k := range keys {
			fmt.Printf("%s: %d\n", k, names[k])
			sum += names[k]
		}
		fmt.Printf("Total: %d\n", sum)
		if *verify && !verifyDivide(*fen, *depth, names) {
			os.Exit(1)
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.WithError(err).Error("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Error("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += rules.Perft(board, side, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		ok := true
		perRun := totalNodes / uint64(*repeat)
		ref, err := goosemg.ParseFEN(*fen)
		if err != nil {
			log.WithError(err).Warn("GooseEngineMG could not parse FEN")
		} else if want := goosemg.Perft(ref, *depth); want != perRun {
			log.WithFields(log.Fields{"got": perRun, "want": want}).Error("GooseEngineMG disagrees")
			ok = false
		}
		dt := dragontoothmg.ParseFen(*fen)
		if want := dragontoothPerft(&dt, *depth); want != perRun {
			log.WithFields(log.Fields{"got": perRun, "want": want}).Error("dragontoothmg disagrees")
			ok = false
		}
		if !ok {
			os.Exit(1)
		}
		log.Info("verified")
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.WithError(err).Error("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.WithError(err).Error("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var n uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		n += dragontoothPerft(b, depth-1)
		unapply()
	}
	return n
}

// verifyDivide logs every root move whose count differs from dragontoothmg.
func verifyDivide(fen string, depth int, got map[string]uint64) bool {
	b := dragontoothmg.ParseFen(fen)
	want := make(map[string]uint64)
	for _, m := range b.GenerateLegalMoves() {
		unapply := b.Apply(m)
		want[m.String()] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	ok := true
	keys := append(maps.Keys(want), maps.Keys(got)...)
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 && keys[i-1] == k {
			continue
		}
		if got[k] != want[k] {
			log.WithFields(log.Fields{"move": k, "got": got[k], "want": want[k]}).Error("divide mismatch")
			ok = false
		}
	}
	return ok
}
