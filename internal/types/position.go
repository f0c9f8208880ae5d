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

// Package types defines the elementary data types of the Hive engine:
// axial hex positions and directions, player colors, bug kinds and pieces,
// game types and states, moves and search values.
package types

import "fmt"

// Position is an axial hex coordinate on the unbounded playing grid.
// Tiles stacked on top of each other share the same Position and differ
// only by their index within the stack.
type Position struct {
	Q int
	R int
}

// Origin is the position of the first piece played.
var Origin = Position{0, 0}

// Add returns the componentwise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{p.Q + o.Q, p.R + o.R}
}

// Sub returns the componentwise difference of two positions.
func (p Position) Sub(o Position) Position {
	return Position{p.Q - o.Q, p.R - o.R}
}

// Clockwise rotates the position 60 degrees clockwise around the origin.
func (p Position) Clockwise() Position {
	return Position{-p.R, p.Q + p.R}
}

// Anticlockwise rotates the position 60 degrees anticlockwise around the origin.
func (p Position) Anticlockwise() Position {
	return Position{p.Q + p.R, -p.Q}
}

// Neighbor returns the adjacent position in the given flat direction.
func (p Position) Neighbor(d Direction) Position {
	return p.Add(neighborDeltas[d.DeltaIndex()])
}

// String returns a string representation of a position.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Q, p.R)
}
