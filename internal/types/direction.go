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

// Direction is one of the six flat directions of a point-up hex grid,
// cyclically ordered anticlockwise starting at Right.
type Direction uint8

// The six flat directions.
const (
	Right Direction = iota
	UpRight
	UpLeft
	Left
	DownLeft
	DownRight
	DirLength
)

// unit offsets per direction, indexed by DeltaIndex
var neighborDeltas = [DirLength]Position{
	{1, 0},  // Right
	{1, -1}, // UpRight
	{0, -1}, // UpLeft
	{-1, 0}, // Left
	{-1, 1}, // DownLeft
	{0, 1},  // DownRight
}

// precomputed lookup tables for the direction algebra
var (
	directionOpposites      [DirLength]Direction
	directionClockwises     [DirLength]Direction
	directionAnticlockwises [DirLength]Direction
)

func init() {
	for d := Right; d < DirLength; d++ {
		directionOpposites[d] = (d + 3) % DirLength
		directionClockwises[d] = (d + 5) % DirLength
		directionAnticlockwises[d] = (d + 1) % DirLength
	}
}

// Directions returns all flat directions in cyclic order. The returned
// array is a copy and safe to range over.
func Directions() [DirLength]Direction {
	return [DirLength]Direction{Right, UpRight, UpLeft, Left, DownLeft, DownRight}
}

// IsValid checks if d is a valid flat direction.
func (d Direction) IsValid() bool {
	return d < DirLength
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	return directionOpposites[d]
}

// Clockwise returns the neighboring direction to the right (clockwise).
func (d Direction) Clockwise() Direction {
	return directionClockwises[d]
}

// Anticlockwise returns the neighboring direction to the left (anticlockwise).
func (d Direction) Anticlockwise() Direction {
	return directionAnticlockwises[d]
}

// DeltaIndex returns the index into the unit offset table.
func (d Direction) DeltaIndex() int {
	return int(d)
}

// IsRight reports whether the direction token is written after the
// relative bug in a MoveString.
func (d Direction) IsRight() bool {
	return d == Right || d == UpRight || d == DownRight
}

// IsLeft reports whether the direction token is written before the
// relative bug in a MoveString.
func (d Direction) IsLeft() bool {
	return d == Left || d == UpLeft || d == DownLeft
}

// direction tokens as they appear in MoveStrings
var directionTokens = [DirLength]string{`-`, `/`, `\`, `-`, `/`, `\`}

// Token returns the MoveString token of the direction. The same token
// denotes different directions depending on whether it is written before
// or after the relative bug.
func (d Direction) Token() string {
	return directionTokens[d]
}

// LeftDirection returns the direction denoted by the given token written
// before the relative bug.
func LeftDirection(token string) (Direction, bool) {
	switch token {
	case `\`:
		return UpLeft, true
	case `-`:
		return Left, true
	case `/`:
		return DownLeft, true
	}
	return DirLength, false
}

// RightDirection returns the direction denoted by the given token written
// after the relative bug.
func RightDirection(token string) (Direction, bool) {
	switch token {
	case `-`:
		return Right, true
	case `/`:
		return UpRight, true
	case `\`:
		return DownRight, true
	}
	return DirLength, false
}

// array of string labels for directions
var directionToString = [DirLength]string{"Right", "UpRight", "UpLeft", "Left", "DownLeft", "DownRight"}

// String returns a string representation of a direction.
func (d Direction) String() string {
	if !d.IsValid() {
		return "NoDirection"
	}
	return directionToString[d]
}
