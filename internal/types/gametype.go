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

import "strings"

// GameType is a flag set naming the enabled expansions. The Base flag is
// always present. It determines the pieces available to each player.
type GameType uint8

// GameType flags.
const (
	GtBase GameType = 1 << iota
	GtM
	GtL
	GtP
)

// HasExpansion reports whether the given expansion flag is enabled.
func (gt GameType) HasExpansion(flag GameType) bool {
	return gt&flag != 0
}

// String returns the canonical GameTypeString. Expansions are always
// printed in the order M, L, P regardless of how they were parsed.
func (gt GameType) String() string {
	var sb strings.Builder
	sb.WriteString("Base")
	if gt&(GtM|GtL|GtP) != 0 {
		sb.WriteString("+")
		if gt.HasExpansion(GtM) {
			sb.WriteString("M")
		}
		if gt.HasExpansion(GtL) {
			sb.WriteString("L")
		}
		if gt.HasExpansion(GtP) {
			sb.WriteString("P")
		}
	}
	return sb.String()
}

// ParseGameType parses a GameTypeString. The empty string denotes a plain
// Base game. Expansion letters are accepted in any order and must not
// repeat; the Base prefix is mandatory whenever expansions are given.
func ParseGameType(s string) (GameType, bool) {
	if s == "" {
		return GtBase, true
	}
	parts := strings.Split(s, "+")
	if parts[0] != "Base" || len(parts) > 2 {
		return 0, false
	}
	gt := GtBase
	if len(parts) == 2 {
		if parts[1] == "" {
			return 0, false
		}
		for i := 0; i < len(parts[1]); i++ {
			var flag GameType
			switch parts[1][i] {
			case 'M':
				flag = GtM
			case 'L':
				flag = GtL
			case 'P':
				flag = GtP
			default:
				return 0, false
			}
			if gt.HasExpansion(flag) {
				return 0, false
			}
			gt |= flag
		}
	}
	return gt, true
}
