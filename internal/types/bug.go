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

// Bug identifies a single physical piece: its owner, its kind and, for
// kinds a color owns several copies of, a copy index starting at 1.
// Kinds with a single copy use ID 0 and omit the digit in BugStrings.
// Two Bug values are equal iff all three fields match.
type Bug struct {
	Color PlayerColor
	Type  BugType
	ID    uint8
}

// BugNone is the zero Bug. It equals White's Queen (White, Queen, ID 0),
// so it cannot mark a missing piece; use the ok flags of the lookup
// functions instead.
var BugNone = Bug{}

// String returns the BugString of the piece, e.g. "wS1" or "bQ".
func (b Bug) String() string {
	if b.ID == 0 {
		return b.Color.Code() + b.Type.Char()
	}
	return b.Color.Code() + b.Type.Char() + strconv.Itoa(int(b.ID))
}

// ParseBug parses a BugString of the form [wb][QSBGAMLP][1-3]?.
// The trailing digit must be absent for kinds with a single copy.
func ParseBug(s string) (Bug, bool) {
	if len(s) < 2 || len(s) > 3 {
		return BugNone, false
	}
	var color PlayerColor
	switch s[0] {
	case 'w':
		color = White
	case 'b':
		color = Black
	default:
		return BugNone, false
	}
	bt, ok := ParseBugType(s[1])
	if !ok {
		return BugNone, false
	}
	id := 0
	if len(s) == 3 {
		if s[2] < '1' || s[2] > '3' {
			return BugNone, false
		}
		id = int(s[2] - '0')
	}
	// single copy kinds carry no digit, multi copy kinds always do
	if (bt.Copies() == 1) != (id == 0) || id > bt.Copies() {
		return BugNone, false
	}
	return Bug{color, bt, uint8(id)}, true
}
