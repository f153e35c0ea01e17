// Command chessconsole is a two-player chess game in the terminal.
//
// Arrow keys move the cursor, Enter picks up and drops a piece or confirms
// the promotion menu, Esc puts the piece back, D highlights the squares the
// piece under the cursor attacks and Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/gdamore/tcell/v2"

	"github.com/ilktb/ConsoleChess/game"
	"github.com/ilktb/ConsoleChess/render"
	"github.com/ilktb/ConsoleChess/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "Starting position")
	logFile := flag.String("log", "", "Write the game log to this file")
	level := flag.String("level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger, closeLog, err := newLogger(*logFile, *level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessconsole: %v\n", err)
		os.Exit(2)
	}
	defer closeLog()

	g, err := game.NewFromFEN(*fen, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessconsole: %v\n", err)
		os.Exit(2)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessconsole: %v\n", err)
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "chessconsole: %v\n", err)
		os.Exit(1)
	}
	defer s.Fini()

	run(s, g, logger)
}

func newLogger(path, level string) (log.Interface, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return &log.Logger{Handler: discard.New(), Level: lvl}, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return &log.Logger{Handler: text.New(f), Level: lvl}, func() { _ = f.Close() }, nil
}

func run(s tcell.Screen, g *game.Game, logger log.Interface) {
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	for g.Running() {
		render.Terminal(s, g)
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				logger.Info("quit")
				return
			}
			g.Handle(action(ev))
		case nil:
			return
		}
	}
}

func action(ev *tcell.EventKey) game.Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.Left
	case tcell.KeyRight:
		return game.Right
	case tcell.KeyUp:
		return game.Up
	case tcell.KeyDown:
		return game.Down
	case tcell.KeyEnter:
		return game.Interact
	case tcell.KeyEscape:
		return game.Cancel
	case tcell.KeyRune:
		if r := ev.Rune(); r == 'd' || r == 'D' {
			return game.DebugSelect
		}
	}
	return game.NoAction
}
