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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/crystal-spider/hivemind/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaf nodes of the legal move tree to a fixed depth.
// It is the bulk verification tool for the move generator: a single
// wrong rule shows up as a diverging node count.
type Perft struct {
	Nodes      uint64
	Placements uint64
	Movements  uint64
	Passes     uint64
	stopFlag   bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop
// the currently running test.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// StartPerftMulti iterates through the given start to end depths on the
// position described by the GameString.
func (perft *Perft) StartPerftMulti(gameString string, startDepth int, endDepth int) {
	perft.stopFlag = false
	for i := startDepth; i <= endDepth; i++ {
		if perft.stopFlag {
			out.Print("Perft multi depth stopped\n")
			return
		}
		perft.StartPerft(gameString, i)
	}
}

// StartPerft runs a perft to the given depth on the position described
// by the GameString, using play/undo on a single board.
func (perft *Perft) StartPerft(gameString string, depth int) {
	perft.stopFlag = false

	// set 1 as minimum
	if depth <= 0 {
		depth = 1
	}

	perft.resetCounter()
	b, err := New(gameString)
	if err != nil {
		out.Printf("Perft aborted, invalid GameString: %s\n", err)
		return
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("GameString: %s\n", b.GameString())
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := perft.countNodes(depth, b)
	elapsed := time.Since(start)

	if perft.stopFlag {
		out.Print("Perft stopped\n")
		return
	}

	perft.Nodes = result

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Placements: %d\n", perft.Placements)
	out.Printf("   Movements : %d\n", perft.Movements)
	out.Printf("   Passes    : %d\n", perft.Passes)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)
}

func (perft *Perft) countNodes(depth int, b *Board) uint64 {
	if b.GameOver() {
		return 1
	}
	moves := b.ValidMoves()
	if len(moves) == 0 {
		// the pass move is the single child
		if depth == 1 {
			perft.Passes++
			return 1
		}
		_ = b.Pass()
		nodes := perft.countNodes(depth-1, b)
		_ = b.Undo(1)
		return nodes
	}
	totalNodes := uint64(0)
	// the cached move slice is invalidated by PlayMove, copy it first
	searchMoves := make([]Move, len(moves))
	copy(searchMoves, moves)
	for _, move := range searchMoves {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			_ = b.PlayMove(move)
			totalNodes += perft.countNodes(depth-1, b)
			_ = b.Undo(1)
		} else {
			totalNodes++
			if move.FromHand {
				perft.Placements++
			} else {
				perft.Movements++
			}
		}
	}
	return totalNodes
}

func (perft *Perft) resetCounter() {
	perft.Nodes = 0
	perft.Placements = 0
	perft.Movements = 0
	perft.Passes = 0
}
