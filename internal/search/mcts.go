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
	"math"
	"math/rand"
	"time"

	"github.com/op/go-logging"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	myLogging "github.com/crystal-spider/hivemind/internal/logging"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// uctNode is one node of the UCT tree. Nodes live in a slice arena with
// integer parent links; the tree is strictly additive within one search
// and freed wholesale at the end.
type uctNode struct {
	parent   int
	move     Move
	pass     bool
	player   PlayerColor // side to move at this node
	expanded bool
	untried  []Move
	children []int
	visits   float64
	wins     float64
}

const noParent = -1

// Mcts is the classic UCT brain: random expansion, uniformly random
// rollouts, win/loss backpropagation.
type Mcts struct {
	log   *logging.Logger
	rnd   *rand.Rand
	nodes []uctNode
}

// NewMcts creates a new Mcts instance.
func NewMcts() *Mcts {
	return &Mcts{
		log: myLogging.GetSearchLog(),
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// FindBestMove runs UCT iterations on a snapshot of the board until the
// time budget is spent and reports the move of the most promising root
// child.
func (m *Mcts) FindBestMove(b *board.Board, sl Limits) *Result {
	start := time.Now()
	budget := sl.MoveTime
	if !sl.TimeControl || budget == 0 {
		budget = time.Second
	}
	snapshot, err := board.New(b.GameString())
	if err != nil {
		m.log.Panicf("Board snapshot failed: %s", err)
	}

	m.nodes = m.nodes[:0]
	m.nodes = append(m.nodes, uctNode{parent: noParent, player: snapshot.CurrentPlayerColor()})

	iterations := uint64(0)
	for time.Since(start) < budget {
		m.runIteration(snapshot, sl)
		iterations++
	}
	m.log.Debugf("Simulated games: %d", iterations)

	result := &Result{BestMoveString: PassMove, BestValue: ValueDraw, Nodes: iterations, Depth: 0}
	if best := m.bestChild(0, 0); best != noParent {
		node := &m.nodes[best]
		if !node.pass {
			result.BestMove = node.move
			result.HasMove = true
			result.BestMoveString = b.StringifyMove(node.move)
		}
	}
	result.SearchTime = time.Since(start)
	return result
}

// NewGame drops the tree.
func (m *Mcts) NewGame() {
	m.nodes = nil
}

// runIteration performs one select/expand/rollout/backpropagate cycle.
// The snapshot board is advanced along the selected path and restored
// ply by ply during backpropagation.
func (m *Mcts) runIteration(b *board.Board, sl Limits) {
	node := 0
	// selection
	for m.fullyExpanded(node) && len(m.nodes[node].children) > 0 {
		node = m.bestChild(node, float64(config.Settings.Search.UctExploration)/1000)
		m.playNode(b, node)
	}
	// expansion
	if !m.fullyExpanded(node) && !b.GameOver() {
		node = m.expand(b, node)
	}
	// simulation
	state := m.rollout(b, sl)
	// backpropagation walks back to the root undoing the path
	for node != noParent {
		n := &m.nodes[node]
		n.visits++
		if (state == WhiteWins && n.player == White) || (state == BlackWins && n.player == Black) {
			n.wins++
		}
		if n.parent != noParent {
			_ = b.Undo(1)
		}
		node = n.parent
	}
}

// fullyExpanded reports whether every legal child of the node has been
// created.
func (m *Mcts) fullyExpanded(node int) bool {
	n := &m.nodes[node]
	return n.expanded && len(n.untried) == 0
}

// expand creates one random untried child and advances the board into it.
func (m *Mcts) expand(b *board.Board, node int) int {
	n := &m.nodes[node]
	if !n.expanded {
		moves := b.ValidMoves()
		n.untried = make([]Move, len(moves))
		copy(n.untried, moves)
		n.expanded = true
		if len(n.untried) == 0 {
			// the pass move is the single child
			child := len(m.nodes)
			m.nodes = append(m.nodes, uctNode{parent: node, pass: true, player: b.CurrentPlayerColor().Flip()})
			m.nodes[node].children = append(m.nodes[node].children, child)
			_ = b.Pass()
			return child
		}
	}
	if len(n.untried) == 0 {
		return node
	}
	pick := m.rnd.Intn(len(n.untried))
	move := n.untried[pick]
	n.untried[pick] = n.untried[len(n.untried)-1]
	n.untried = n.untried[:len(n.untried)-1]
	child := len(m.nodes)
	m.nodes = append(m.nodes, uctNode{parent: node, move: move, player: b.CurrentPlayerColor().Flip()})
	m.nodes[node].children = append(m.nodes[node].children, child)
	_ = b.PlayMove(move)
	return child
}

// playNode advances the board into the given child node.
func (m *Mcts) playNode(b *board.Board, node int) {
	n := &m.nodes[node]
	if n.pass {
		_ = b.Pass()
	} else {
		_ = b.PlayMove(n.move)
	}
}

// rollout plays uniformly random moves until the game ends or the depth
// cap is reached, then restores the board and returns the final state.
func (m *Mcts) rollout(b *board.Board, sl Limits) GameState {
	depthCap := config.Settings.Search.RolloutDepth
	if sl.MaxDepth > 0 {
		depthCap = sl.MaxDepth
	}
	plies := 0
	for !b.GameOver() && plies < depthCap {
		moves := b.ValidMoves()
		if len(moves) == 0 {
			_ = b.Pass()
		} else {
			_ = b.PlayMove(moves[m.rnd.Intn(len(moves))])
		}
		plies++
	}
	state := b.State()
	if plies > 0 {
		_ = b.Undo(plies)
	}
	return state
}

// ucb is the selection score of a child as seen from its parent.
func (m *Mcts) ucb(parent int, child int, exploration float64) float64 {
	c := &m.nodes[child]
	if c.visits == 0 {
		return math.Inf(1)
	}
	q := 1 - ((c.wins/c.visits)+1)/2
	return q + exploration*math.Sqrt(math.Log(m.nodes[parent].visits)/c.visits)
}

// bestChild returns the child with the highest UCB score, or noParent
// when the node has no children.
func (m *Mcts) bestChild(node int, exploration float64) int {
	best := noParent
	bestScore := math.Inf(-1)
	for _, child := range m.nodes[node].children {
		if score := m.ucb(node, child, exploration); score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}
