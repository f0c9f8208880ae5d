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
	. "github.com/crystal-spider/hivemind/internal/types"
)

// updateArticulationPoints recomputes the articulation points of the
// occupation graph (occupied tiles, edges between flat neighbors) with
// Tarjan's algorithm. A piece standing on an articulation point cannot
// move without splitting the hive, unless it is stacked on another piece.
// Called by the move generator before each full generation.
func (b *Board) updateArticulationPoints() {
	for pos := range b.artPos {
		delete(b.artPos, pos)
	}
	if len(b.posToBugs) == 0 {
		return
	}
	discovery := map[Position]int{}
	lowLink := map[Position]int{}
	parents := map[Position]Position{}
	hasParent := map[Position]bool{}
	time := 0

	var dfs func(u Position)
	dfs = func(u Position) {
		discovery[u] = time
		lowLink[u] = time
		time++
		children := 0
		for d := Right; d < DirLength; d++ {
			v := u.Neighbor(d)
			if len(b.posToBugs[v]) == 0 {
				continue
			}
			if _, seen := discovery[v]; !seen {
				parents[v] = u
				hasParent[v] = true
				children++
				dfs(v)
				if lowLink[v] < lowLink[u] {
					lowLink[u] = lowLink[v]
				}
				if !hasParent[u] && children > 1 {
					b.artPos[u] = true
				}
				if hasParent[u] && lowLink[v] >= discovery[u] {
					b.artPos[u] = true
				}
			} else if !hasParent[u] || v != parents[u] {
				if discovery[v] < lowLink[u] {
					lowLink[u] = discovery[v]
				}
			}
		}
	}

	// the hive is connected, any occupied tile can seed the scan
	for pos := range b.posToBugs {
		dfs(pos)
		break
	}
}
