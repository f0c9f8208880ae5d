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

// PlayerColor is a set of constants for the two players.
type PlayerColor uint8

// PlayerColor constants. White moves on even turns.
const (
	White PlayerColor = iota
	Black
	ColorLength
)

// IsValid checks if c is a valid player color.
func (c PlayerColor) IsValid() bool {
	return c < ColorLength
}

// Flip returns the opposite color.
func (c PlayerColor) Flip() PlayerColor {
	return c ^ 1
}

// array of string labels for player colors
var colorToString = [ColorLength]string{"White", "Black"}

// String returns the TurnString label of the color.
func (c PlayerColor) String() string {
	return colorToString[c]
}

// array of one char codes for player colors as used in BugStrings
var colorToCode = "wb"

// Code returns the single char BugString code of the color.
func (c PlayerColor) Code() string {
	return string(colorToCode[c])
}

// ParseColor returns the color for the given TurnString label.
func ParseColor(s string) (PlayerColor, bool) {
	switch s {
	case "White":
		return White, true
	case "Black":
		return Black, true
	}
	return ColorLength, false
}
