// Package game drives an interactive two-player game over a rules.Board: a
// board cursor, picking up and dropping pieces, the promotion menu and the
// end of the game.
package game

import (
	"github.com/apex/log"

	"github.com/ilktb/ConsoleChess/rules"
)

// State of the player interaction.
type State uint8

const (
	Idle State = iota
	Holding
	AwaitPromote
	GameOver
)

var stateNames = [...]string{"idle", "holding", "await-promote", "game-over"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// Action is one user input the game reacts to.
type Action uint8

const (
	NoAction Action = iota
	Left
	Right
	Up
	Down
	Interact // pick up, drop, confirm promotion, leave after game over
	Cancel
	DebugSelect
)

// Game is the interaction state machine. It is not safe for concurrent use.
type Game struct {
	board   *rules.Board
	player  rules.Color
	state   State
	promo   rules.Promotion
	cursorX int
	cursorY int

	held   rules.Square
	moveTo rules.Square
	debug  rules.PieceID

	outcome rules.Outcome
	running bool
	history []rules.Move

	log log.Interface
}

// New starts a game from the initial position with white to move. A nil
// logger discards log output.
func New(logger log.Interface) *Game {
	return start(rules.New(), rules.White, logger)
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string, logger log.Interface) (*Game, error) {
	b, side, err := rules.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return start(b, side, logger), nil
}

func start(b *rules.Board, side rules.Color, logger log.Interface) *Game {
	if logger == nil {
		logger = silent
	}
	g := &Game{
		board:   b,
		player:  side,
		held:    rules.NoSquare,
		moveTo:  rules.NoSquare,
		debug:   rules.NoPieceID,
		running: true,
		log:     logger,
	}
	g.log.WithField("fen", b.ToFEN(side)).Info("game started")
	g.turnStart()
	return g
}

// Board returns the board being played on. Callers must treat it as read-only.
func (g *Game) Board() *rules.Board { return g.board }

// Player returns the side to move.
func (g *Game) Player() rules.Color { return g.player }

// State returns the interaction state.
func (g *Game) State() State { return g.state }

// Cursor returns the board coordinates under the cursor.
func (g *Game) Cursor() (x, y int) { return g.cursorX, g.cursorY }

// Held returns the square of the picked up piece, or NoSquare.
func (g *Game) Held() rules.Square {
	if g.state != Holding && g.state != AwaitPromote {
		return rules.NoSquare
	}
	return g.held
}

// PromotionOption returns the highlighted entry of the promotion menu.
func (g *Game) PromotionOption() rules.Promotion { return g.promo }

// DebugPiece returns the piece whose attacked squares are highlighted, or
// NoPieceID.
func (g *Game) DebugPiece() rules.PieceID { return g.debug }

// Outcome returns how the game ended; Ongoing while it is in progress.
func (g *Game) Outcome() rules.Outcome { return g.outcome }

// Running is false once the player has left the finished game.
func (g *Game) Running() bool { return g.running }

// History returns the moves played so far.
func (g *Game) History() []rules.Move { return g.history }

// Handle applies one user action.
func (g *Game) Handle(a Action) {
	switch a {
	case Left:
		if g.state != AwaitPromote && g.cursorX > 0 {
			g.cursorX--
		}
	case Right:
		if g.state != AwaitPromote && g.cursorX < 7 {
			g.cursorX++
		}
	case Up:
		switch {
		case g.state != AwaitPromote && g.cursorY < 7:
			g.cursorY++
		case g.state == AwaitPromote && g.promo > rules.PromoteQueen:
			g.promo--
		}
	case Down:
		switch {
		case g.state != AwaitPromote && g.cursorY > 0:
			g.cursorY--
		case g.state == AwaitPromote && g.promo < rules.PromoteKnight:
			g.promo++
		}
	case Interact:
		g.interact()
	case Cancel:
		g.cancel()
	case DebugSelect:
		g.debugSelect()
	}
}

func (g *Game) cursorSquare() rules.Square { return rules.SquareAt(g.cursorX, g.cursorY) }

func (g *Game) interact() {
	switch g.state {
	case Idle:
		p := g.board.PieceAt(g.cursorSquare())
		if p == nil || p.Color() != g.player || p.LegalMoveCount() == 0 {
			return
		}
		g.held = p.Square()
		g.state = Holding
		g.log.WithFields(log.Fields{
			"square": g.held,
			"piece":  p.Kind(),
			"moves":  p.LegalMoveCount(),
		}).Debug("picked up")

	case Holding:
		to := g.cursorSquare()
		p := g.board.PieceAt(g.held)
		if !p.CanMoveTo(to) {
			return
		}
		g.moveTo = to
		g.promo = rules.PromoteQueen
		if g.board.IsPromotable(g.held, to) {
			g.state = AwaitPromote
			return
		}
		g.turnOver()

	case AwaitPromote:
		g.turnOver()

	case GameOver:
		g.running = false
	}
}

func (g *Game) cancel() {
	switch g.state {
	case Holding, AwaitPromote:
		g.state = Idle
		g.held = rules.NoSquare
		g.moveTo = rules.NoSquare
	}
}

func (g *Game) debugSelect() {
	if p := g.board.PieceAt(g.cursorSquare()); p != nil {
		g.debug = p.ID()
		return
	}
	g.debug = rules.NoPieceID
}

func (g *Game) turnOver() {
	m := rules.NewMove(g.held, g.moveTo, g.promo)
	g.log.WithFields(log.Fields{
		"player": g.player,
		"move":   m.Format(g.board),
		"ply":    len(g.history) + 1,
	}).Info("move")

	g.board.Apply(m)
	g.history = append(g.history, m)
	g.held = rules.NoSquare
	g.moveTo = rules.NoSquare
	g.state = Idle
	// The debug piece may have been captured or promoted.
	if p := g.board.Piece(g.debug); p == nil || !p.Alive() {
		g.debug = rules.NoPieceID
	}
	g.player = g.player.Opposite()
	g.turnStart()
}

func (g *Game) turnStart() {
	if g.board.TurnStart(g.player) {
		if g.board.IsInCheck(g.player, true) {
			g.log.WithField("player", g.player).Info("check")
		}
		return
	}
	g.outcome = g.board.Outcome(g.player)
	g.state = GameOver
	g.log.WithFields(log.Fields{
		"player":  g.player,
		"outcome": g.outcome,
		"plies":   len(g.history),
	}).Info("game over")
}
