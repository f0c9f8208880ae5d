//
// hivemind - UHP Hive game engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2023-2025 Crystal Spider
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package board

import (
	"regexp"
	"strconv"
	"strings"

	. "github.com/crystal-spider/hivemind/internal/types"
)

var turnStringRegex = regexp.MustCompile(`^(White|Black)\[(\d+)\]$`)

// parseTurnString parses "(White|Black)[n]" with n >= 1 into the zero
// based turn counter.
func parseTurnString(s string) (int, error) {
	match := turnStringRegex.FindStringSubmatch(s)
	if match == nil {
		return 0, parseErrorf(s, "is not a valid TurnString")
	}
	n, err := strconv.Atoi(match[2])
	if err != nil || n < 1 {
		return 0, parseErrorf(s, "must have a turn number greater than 0")
	}
	color, _ := ParseColor(match[1])
	return 2*(n-1) + int(color), nil
}

// parseGameString splits a GameString into its typed components. The
// empty string yields a fresh Base game at White[1]; a bare
// GameTypeString is accepted the same way.
func parseGameString(s string) (GameType, GameState, int, []string, error) {
	values := []string{"", "", "White[1]"}
	if s != "" {
		values = strings.Split(s, ";")
		if len(values) == 1 {
			values = append(values, "", "White[1]")
		} else if len(values) < 3 {
			return 0, 0, 0, nil, parseErrorf(s, "is not a valid GameString")
		}
	}
	gameType, ok := ParseGameType(values[0])
	if !ok {
		return 0, 0, 0, nil, parseErrorf(values[0], "is not a valid GameTypeString")
	}
	state, ok := ParseGameState(values[1])
	if !ok {
		return 0, 0, 0, nil, parseErrorf(values[1], "is not a valid GameStateString")
	}
	turn, err := parseTurnString(values[2])
	if err != nil {
		return 0, 0, 0, nil, err
	}
	return gameType, state, turn, values[3:], nil
}

// GameString returns the canonical wire representation of the board:
// GameTypeString;GameStateString;TurnString followed by every MoveString
// played so far.
func (b *Board) GameString() string {
	var sb strings.Builder
	sb.WriteString(b.gameType.String())
	sb.WriteString(";")
	sb.WriteString(b.state.String())
	sb.WriteString(";")
	sb.WriteString(b.CurrentPlayerColor().String())
	sb.WriteString("[")
	sb.WriteString(strconv.Itoa(b.CurrentPlayerTurn()))
	sb.WriteString("]")
	for _, entry := range b.log {
		sb.WriteString(";")
		sb.WriteString(entry.moveString)
	}
	return sb.String()
}

// ParseMove parses and validates a MoveString against the legal move set
// of the side to move. pass is true for the literal "pass", which is only
// legal when there is no other legal move.
func (b *Board) ParseMove(moveString string) (Move, bool, error) {
	if moveString == PassMove {
		if len(b.ValidMoves()) > 0 {
			return Move{}, false, &IllegalMoveError{MoveString: PassMove, Msg: "is not allowed when there are valid moves"}
		}
		return Move{}, true, nil
	}
	parts := strings.Fields(moveString)
	if len(parts) == 0 || len(parts) > 2 {
		return Move{}, false, parseErrorf(moveString, "is not a valid MoveString")
	}
	moved, ok := ParseBug(parts[0])
	if !ok {
		return Move{}, false, parseErrorf(moveString, "is not a valid MoveString")
	}
	destination := Origin
	if len(parts) == 2 {
		token := parts[1]
		var leftDir, rightDir Direction
		hasLeft, hasRight := false, false
		if d, ok := LeftDirection(token[:1]); ok {
			leftDir, hasLeft = d, true
			token = token[1:]
		}
		if len(token) > 0 {
			if d, ok := RightDirection(token[len(token)-1:]); ok {
				rightDir, hasRight = d, true
				token = token[:len(token)-1]
			}
		}
		if hasLeft && hasRight {
			return Move{}, false, parseErrorf(moveString, "may specify only one direction at a time")
		}
		relative, ok := ParseBug(token)
		if !ok {
			return Move{}, false, parseErrorf(moveString, "is not a valid MoveString")
		}
		relativePos, played := b.PositionOf(relative)
		if !played {
			return Move{}, false, parseErrorf(moveString, "references '%s' which has not been played yet", relative)
		}
		switch {
		case hasLeft:
			destination = relativePos.Neighbor(leftDir)
		case hasRight:
			destination = relativePos.Neighbor(rightDir)
		default:
			// no direction token: on top of the relative bug's tile
			destination = relativePos
		}
	}
	var move Move
	if origin, played := b.PositionOf(moved); played {
		move = NewMovement(moved, origin, destination)
	} else {
		move = NewPlacement(moved, destination)
	}
	if !b.isValidMove(move) {
		return Move{}, false, &IllegalMoveError{MoveString: moveString}
	}
	return move, false, nil
}

// StringifyMove returns the wire representation of a move for the
// current board state (i.e. before the move is played). An occupied
// destination is described by the top bug it lands on without a
// direction; otherwise the first occupied flat neighbor of the
// destination provides the relative bug and the direction token.
func (b *Board) StringifyMove(move Move) string {
	moved := move.Bug
	if stack := b.BugsAt(move.Destination); len(stack) > 0 {
		return moved.String() + " " + stack[len(stack)-1].String()
	}
	for d := Right; d < DirLength; d++ {
		stack := b.BugsAt(move.Destination.Neighbor(d))
		if len(stack) == 0 || stack[0] == moved {
			continue
		}
		relative := stack[0]
		dir := d.Opposite()
		if dir.IsLeft() {
			return moved.String() + " " + dir.Token() + relative.String()
		}
		return moved.String() + " " + relative.String() + dir.Token()
	}
	return moved.String()
}

// ValidMovesString returns the ";"-joined MoveStrings of the legal moves
// of the side to move, or "pass" when there are none.
func (b *Board) ValidMovesString() string {
	moves := b.ValidMoves()
	if len(moves) == 0 {
		return PassMove
	}
	strs := make([]string, len(moves))
	for i, move := range moves {
		strs[i] = b.StringifyMove(move)
	}
	return strings.Join(strs, ";")
}
