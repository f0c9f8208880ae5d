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

import "strconv"

// Value is the score of a position from the point of view of the side to
// move (negamax convention).
type Value int32

// Value constants. ValueWin stands in for the +infinity of a surrounded
// enemy queen; mate-like values are not distance-adjusted as Hive has no
// forced-mate ladder comparable to chess.
const (
	ValueWin  Value = 1_000_000
	ValueLoss Value = -ValueWin
	ValueDraw Value = 0
	ValueMin  Value = -2_000_000
	ValueMax  Value = 2_000_000
	ValueNA   Value = -ValueMax - 1
)

// IsValid checks if v is a usable value (not ValueNA).
func (v Value) IsValid() bool {
	return v != ValueNA
}

// String returns a string representation of a value.
func (v Value) String() string {
	switch v {
	case ValueWin:
		return "win"
	case ValueLoss:
		return "loss"
	case ValueNA:
		return "N/A"
	}
	return strconv.Itoa(int(v))
}
