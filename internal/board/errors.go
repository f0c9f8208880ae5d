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
	"errors"
	"fmt"
)

// Sentinel errors of the board API.
var (
	// ErrGameOver is returned by state changing operations other than undo
	// once the game has reached a terminal state.
	ErrGameOver = errors.New("the game is over")

	// ErrNothingToUndo is returned by undo at turn 0 or when more moves
	// should be undone than have been played.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// ParseError reports a malformed GameString, TurnString, BugString or
// MoveString.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Input, e.Msg)
}

func parseErrorf(input string, format string, a ...interface{}) *ParseError {
	return &ParseError{Input: input, Msg: fmt.Sprintf(format, a...)}
}

// IllegalMoveError reports a syntactically valid move that is not in the
// legal move set of the side to move.
type IllegalMoveError struct {
	MoveString string
	Msg        string
}

func (e *IllegalMoveError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("'%s' %s", e.MoveString, e.Msg)
	}
	return fmt.Sprintf("'%s' is not a valid move for the current board state", e.MoveString)
}
