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

// BugType is a set of constants for the bug kinds of the Base game and
// the three official expansions.
type BugType uint8

// BugType constants.
const (
	Queen BugType = iota
	Spider
	Beetle
	Grasshopper
	Ant
	Mosquito
	Ladybug
	Pillbug
	BtLength
)

// IsValid checks if bt is a valid bug type.
func (bt BugType) IsValid() bool {
	return bt < BtLength
}

// number of copies of each bug type per color in a Base game
// (expansion bugs come in a single copy)
var bugTypeCopies = [BtLength]int{1, 2, 2, 3, 3, 1, 1, 1}

// Copies returns how many pieces of this type one color owns.
func (bt BugType) Copies() int {
	return bugTypeCopies[bt]
}

// array of one char codes for bug types as used in BugStrings
var bugTypeToChar = "QSBGAMLP"

// Char returns the single char BugString code of the bug type.
func (bt BugType) Char() string {
	return string(bugTypeToChar[bt])
}

// array of string labels for bug types
var bugTypeToString = [BtLength]string{
	"QueenBee", "Spider", "Beetle", "Grasshopper", "SoldierAnt", "Mosquito", "Ladybug", "Pillbug",
}

// String returns a string representation of a bug type.
func (bt BugType) String() string {
	if !bt.IsValid() {
		return "NoBug"
	}
	return bugTypeToString[bt]
}

// ParseBugType returns the bug type for the given BugString code char.
func ParseBugType(c byte) (BugType, bool) {
	for bt := Queen; bt < BtLength; bt++ {
		if bugTypeToChar[bt] == c {
			return bt, true
		}
	}
	return BtLength, false
}
