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
	"math/rand"
	"time"

	"github.com/crystal-spider/hivemind/internal/board"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// RandomBrain plays a uniformly random legal move. Mostly useful as a
// sparring partner and in tests.
type RandomBrain struct {
	rnd *rand.Rand
}

// NewRandomBrain creates a new RandomBrain instance.
func NewRandomBrain() *RandomBrain {
	return &RandomBrain{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// FindBestMove picks a uniformly random legal move, or pass.
func (r *RandomBrain) FindBestMove(b *board.Board, sl Limits) *Result {
	start := time.Now()
	result := &Result{BestMoveString: PassMove, BestValue: ValueDraw}
	moves := b.ValidMoves()
	if len(moves) > 0 {
		move := moves[r.rnd.Intn(len(moves))]
		result.BestMove = move
		result.HasMove = true
		result.BestMoveString = b.StringifyMove(move)
	}
	result.SearchTime = time.Since(start)
	result.Nodes = uint64(len(moves))
	return result
}

// NewGame resets nothing, a RandomBrain is stateless.
func (r *RandomBrain) NewGame() {}
