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

package transpositiontable

import (
	. "github.com/crystal-spider/hivemind/internal/types"
)

// EntryType classifies the bound a stored value represents.
type EntryType uint8

// EntryType constants.
const (
	Exact EntryType = iota
	LowerBound
	UpperBound
)

// array of string labels for entry types
var entryTypeToString = [...]string{"EXACT", "LOWER_BOUND", "UPPER_BOUND"}

// String returns a string representation of an entry type.
func (t EntryType) String() string {
	return entryTypeToString[t]
}

// TtEntry is one stored search result. Age is raised by one on every
// flush, reset to 0 when the entry is overwritten and lowered by one
// (not below 0) on every probe hit.
type TtEntry struct {
	Type    EntryType
	Value   Value
	Depth   int
	Move    Move
	HasMove bool
	age     int
}

// Age returns the age counter of the entry.
func (e *TtEntry) Age() int {
	return e.age
}
