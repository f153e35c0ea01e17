package rules

import (
	"errors"
	"fmt"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN wraps every ParseFEN failure.
var ErrInvalidFEN = errors.New("invalid FEN")

func fenErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// pieceFromChar converts a FEN character to a kind and color.
func pieceFromChar(ch rune) (Kind, Color, bool) {
	c := White
	if ch >= 'a' && ch <= 'z' {
		c = Black
		ch -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if glyphs[White][k] == ch {
			return k, c, true
		}
	}
	return NoKind, White, false
}

// ParseFEN builds a board from the first four FEN fields and returns it along
// with the side to move. The clocks are accepted but not kept.
//
// The board has no move history, so the moved flags are inferred: pawns off
// their starting rank have moved, and kings and rooks have moved unless a
// castling right says otherwise.
func ParseFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, White, fenErr("not enough fields")
	}

	b := NewEmpty()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, White, fenErr("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		y := 7 - i
		x := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			k, c, ok := pieceFromChar(ch)
			if !ok {
				return nil, White, fenErr("unrecognized piece character %q", ch)
			}
			if x >= 8 {
				return nil, White, fenErr("too many squares in rank %d", y+1)
			}
			if k == King && b.kings[c] != NoPieceID {
				return nil, White, fenErr("more than one %v king", c)
			}
			if len(b.pieces) == 32 {
				return nil, White, fenErr("more than 32 pieces")
			}
			if k == Pawn && (y == 0 || y == 7) {
				return nil, White, fenErr("pawn on rank %d", y+1)
			}
			id := b.Place(SquareAt(x, y), k, c)
			b.pieces[id].moved = k != Pawn || y != c.homeRank()+c.forward()
			x++
		}
		if x != 8 {
			return nil, White, fenErr("rank %d does not have 8 columns", y+1)
		}
	}
	for _, c := range []Color{White, Black} {
		if b.kings[c] == NoPieceID {
			return nil, White, fenErr("missing %v king", c)
		}
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, White, fenErr("side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			var c Color
			var rookX int
			switch ch {
			case 'K':
				c, rookX = White, 7
			case 'Q':
				c, rookX = White, 0
			case 'k':
				c, rookX = Black, 7
			case 'q':
				c, rookX = Black, 0
			default:
				return nil, White, fenErr("invalid castling rights character %q", ch)
			}
			king := &b.pieces[b.kings[c]]
			rook := b.PieceAt(SquareAt(rookX, c.homeRank()))
			if king.sq != SquareAt(4, c.homeRank()) || rook == nil || rook.kind != Rook || rook.color != c {
				// Unusable right; ignore it as most GUIs do.
				continue
			}
			king.moved = false
			rook.moved = false
		}
	}

	if fields[3] != "-" {
		ep, err := ParseSquare(fields[3])
		if err != nil {
			return nil, White, fenErr("en passant square: %v", err)
		}
		// The pawn that just double-stepped belongs to the side not to move.
		mover := side.Opposite()
		if ep.Y() != mover.homeRank()+2*mover.forward() {
			return nil, White, fenErr("en passant square %v on wrong rank", ep)
		}
		capture := SquareAt(ep.X(), ep.Y()+mover.forward())
		if v := b.PieceAt(capture); v != nil && v.kind == Pawn && v.color == mover {
			b.enPassant = ep
			b.enPassantCapture = capture
		}
	}

	b.rebuildAttacks()
	return b, side, nil
}

// MustParseFEN is ParseFEN for positions known to be valid. It panics on error.
func MustParseFEN(fen string) (*Board, Color) {
	b, side, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b, side
}

// ToFEN writes the position with side to move. Castling rights are derived
// from the moved flags; the clocks are always "0 1".
func (b *Board) ToFEN(side Color) string {
	var sb strings.Builder

	for y := 7; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < 8; x++ {
			p := b.PieceAt(SquareAt(x, y))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(p.Glyph())
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}

	if side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	for _, c := range []Color{White, Black} {
		king := b.King(c)
		if king == nil || king.moved || king.sq != SquareAt(4, c.homeRank()) {
			continue
		}
		for _, r := range []struct {
			x      int
			letter rune
		}{{7, 'K'}, {0, 'Q'}} {
			rook := b.PieceAt(SquareAt(r.x, c.homeRank()))
			if rook == nil || rook.kind != Rook || rook.color != c || rook.moved {
				continue
			}
			if c == Black {
				rights += strings.ToLower(string(r.letter))
			} else {
				rights += string(r.letter)
			}
		}
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
