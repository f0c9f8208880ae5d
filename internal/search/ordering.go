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

package search

import (
	"github.com/crystal-spider/hivemind/internal/config"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// ordering holds the move ordering tables of one search: the principal
// variation move per position hash, the killer moves per remaining depth
// and the history heuristic counters. All tables are owned by the search
// instance and reset between games.
type ordering struct {
	pv      map[uint64]Move
	killers map[int][]Move
	history map[Move]uint64
}

func newOrdering() *ordering {
	return &ordering{
		pv:      map[uint64]Move{},
		killers: map[int][]Move{},
		history: map[Move]uint64{},
	}
}

// pvMove returns the stored principal variation move for the hash.
func (o *ordering) pvMove(hash uint64) (Move, bool) {
	move, found := o.pv[hash]
	return move, found
}

// storePV remembers the best move found for the hash.
func (o *ordering) storePV(hash uint64, move Move) {
	o.pv[hash] = move
}

// isKiller checks whether the move is among the killers of this depth.
func (o *ordering) isKiller(depth int, move Move) bool {
	for _, killer := range o.killers[depth] {
		if killer == move {
			return true
		}
	}
	return false
}

// storeKiller records a cutoff producing move for its depth. The per
// depth list is a FIFO of the last cutoff producers.
func (o *ordering) storeKiller(depth int, move Move) {
	killers := o.killers[depth]
	for _, killer := range killers {
		if killer == move {
			return
		}
	}
	if len(killers) >= config.Settings.Search.KillerCount {
		killers = killers[1:]
	}
	o.killers[depth] = append(killers, move)
}

// historyScore returns the accumulated history counter of the move.
func (o *ordering) historyScore(move Move) (uint64, bool) {
	score, found := o.history[move]
	return score, found
}

// bumpHistory accumulates 2^depth on a move that turned out best.
func (o *ordering) bumpHistory(move Move, depth int) {
	if depth > 62 {
		depth = 62
	}
	o.history[move] += uint64(1) << uint(depth)
}

// clear resets all tables.
func (o *ordering) clear() {
	o.pv = map[uint64]Move{}
	o.killers = map[int][]Move{}
	o.history = map[Move]uint64{}
}
