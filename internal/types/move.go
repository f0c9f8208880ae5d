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

package types

import "fmt"

// PassMove is the literal MoveString of the pass move. It is legal when
// and only when the side to move has no other legal move.
const PassMove = "pass"

// Move is a placement or a movement of a single bug. FromHand marks
// placements; Origin is only meaningful for movements and is kept zeroed
// for placements so that Move stays comparable and usable as a map key.
type Move struct {
	Bug         Bug
	Origin      Position
	FromHand    bool
	Destination Position
}

// NewPlacement creates a move placing a bug from hand.
func NewPlacement(bug Bug, destination Position) Move {
	return Move{Bug: bug, FromHand: true, Destination: destination}
}

// NewMovement creates a move of a bug already on the board.
func NewMovement(bug Bug, origin Position, destination Position) Move {
	return Move{Bug: bug, Origin: origin, Destination: destination}
}

// String returns a debug representation of the move. The wire format is
// produced by the board, which knows the neighboring pieces.
func (m Move) String() string {
	if m.FromHand {
		return fmt.Sprintf("<hand, %s, %s>", m.Bug, m.Destination)
	}
	return fmt.Sprintf("<%s, %s, %s>", m.Origin, m.Bug, m.Destination)
}
