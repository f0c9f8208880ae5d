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
	"time"

	"github.com/op/go-logging"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	myLogging "github.com/crystal-spider/hivemind/internal/logging"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// PolicyShape is the fixed shape of the policy head and the input tensor
// of the external evaluator: one channel per bug kind group, 14x14 tiles
// centered on the origin.
const (
	PolicyChannels = 7
	PolicyWidth    = 14
)

// Tensor is the input of the external network evaluator.
type Tensor [PolicyChannels][PolicyWidth][PolicyWidth]float32

// Policy is the policy head output of the external network evaluator.
type Policy [PolicyChannels][PolicyWidth][PolicyWidth]float32

// PolicyValue is the opaque external network evaluator. Forward must be
// reentrant-safe for inference; value is in [-1, 1] from White's point
// of view.
type PolicyValue interface {
	Forward(t Tensor) (Policy, float32)
}

// MoveToPolicyIndex projects a move onto the (channel, q, r) triple
// indexing the policy tensor. ok is false when the destination lies
// outside the policy window.
func MoveToPolicyIndex(move Move) (int, int, int, bool) {
	channel := int(move.Bug.Type) % PolicyChannels
	q := move.Destination.Q + PolicyWidth/2
	r := move.Destination.R + PolicyWidth/2
	if q < 0 || q >= PolicyWidth || r < 0 || r >= PolicyWidth {
		return 0, 0, 0, false
	}
	return channel, q, r, true
}

// BoardTensor encodes the board for the network: the top bug of every
// stack marks its kind channel with +1 for White and -1 for Black.
func BoardTensor(b *board.Board) Tensor {
	var t Tensor
	for _, bug := range b.Pieces() {
		pos, inPlay := b.PositionOf(bug)
		if !inPlay {
			continue
		}
		stack := b.BugsAt(pos)
		if stack[len(stack)-1] != bug {
			continue
		}
		q := pos.Q + PolicyWidth/2
		r := pos.R + PolicyWidth/2
		if q < 0 || q >= PolicyWidth || r < 0 || r >= PolicyWidth {
			continue
		}
		value := float32(1)
		if bug.Color == Black {
			value = -1
		}
		t[int(bug.Type)%PolicyChannels][q][r] = value
	}
	return t
}

// AlphaMcts is the neural guided UCT brain: expansion creates every
// child with a positive policy prior at once and backpropagates the
// value head instead of rollout results. Without a network it expands
// all children and backpropagates terminal results only, degrading to
// uniform priors.
type AlphaMcts struct {
	log   *logging.Logger
	model PolicyValue
	nodes []uctNode
}

// NewAlphaMcts creates a new AlphaMcts instance with the given network
// evaluator, which may be nil.
func NewAlphaMcts(model PolicyValue) *AlphaMcts {
	return &AlphaMcts{
		log:   myLogging.GetSearchLog(),
		model: model,
	}
}

// SetPolicyValue injects the network evaluator.
func (a *AlphaMcts) SetPolicyValue(model PolicyValue) {
	a.model = model
}

// FindBestMove runs guided UCT iterations on a snapshot of the board
// until the time budget is spent.
func (a *AlphaMcts) FindBestMove(b *board.Board, sl Limits) *Result {
	start := time.Now()
	budget := sl.MoveTime
	if !sl.TimeControl || budget == 0 {
		budget = time.Second
	}
	snapshot, err := board.New(b.GameString())
	if err != nil {
		a.log.Panicf("Board snapshot failed: %s", err)
	}

	a.nodes = a.nodes[:0]
	a.nodes = append(a.nodes, uctNode{parent: noParent, player: snapshot.CurrentPlayerColor()})

	iterations := uint64(0)
	for time.Since(start) < budget {
		a.runIteration(snapshot)
		iterations++
	}
	a.log.Debugf("Simulated nodes: %d", iterations)

	result := &Result{BestMoveString: PassMove, BestValue: ValueDraw, Nodes: iterations}
	if best := a.bestChild(0, 0); best != noParent {
		node := &a.nodes[best]
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
func (a *AlphaMcts) NewGame() {
	a.nodes = nil
}

// runIteration performs one select/expand/backpropagate cycle. The value
// to propagate comes from the network at expanded leaves and from the
// game state at terminal ones.
func (a *AlphaMcts) runIteration(b *board.Board) {
	node := 0
	for a.nodes[node].expanded && len(a.nodes[node].children) > 0 {
		node = a.bestChild(node, float64(config.Settings.Search.UctExploration)/1000)
		a.playNode(b, node)
	}

	var value float32
	if b.GameOver() {
		value = terminalValue(b.State())
	} else if !a.nodes[node].expanded {
		value = a.expand(b, node)
	}

	// backpropagation walks back to the root undoing the path
	for node != noParent {
		n := &a.nodes[node]
		n.visits++
		// the value is White sided, each node scores it for its own player
		if n.player == White {
			n.wins += float64(value)
		} else {
			n.wins -= float64(value)
		}
		if n.parent != noParent {
			_ = b.Undo(1)
		}
		node = n.parent
	}
}

// expand creates the children of a leaf, keeping only moves with a
// positive policy prior when a network is available, and returns the
// value estimate of the leaf. A failing network falls back to uniform
// expansion with a neutral value.
func (a *AlphaMcts) expand(b *board.Board, node int) float32 {
	policy, value := a.forward(b)
	moves := b.ValidMoves()
	var children []int
	for _, move := range moves {
		if policy != nil && b.State() != NotStarted {
			channel, q, r, ok := MoveToPolicyIndex(move)
			if !ok || policy[channel][q][r] <= 0 {
				continue
			}
		}
		children = append(children, len(a.nodes))
		a.nodes = append(a.nodes, uctNode{parent: node, move: move, player: b.CurrentPlayerColor().Flip()})
	}
	if len(children) == 0 {
		if len(moves) == 0 {
			children = append(children, len(a.nodes))
			a.nodes = append(a.nodes, uctNode{parent: node, pass: true, player: b.CurrentPlayerColor().Flip()})
		} else {
			// the policy zeroed every legal move, keep them all
			for _, move := range moves {
				children = append(children, len(a.nodes))
				a.nodes = append(a.nodes, uctNode{parent: node, move: move, player: b.CurrentPlayerColor().Flip()})
			}
		}
	}
	a.nodes[node].children = children
	a.nodes[node].expanded = true
	return value
}

// forward queries the network, shielding the search from a failing
// evaluator: a panic degrades to uniform expansion with a neutral value.
func (a *AlphaMcts) forward(b *board.Board) (policy *Policy, value float32) {
	if a.model == nil {
		return nil, 0
	}
	defer func() {
		if r := recover(); r != nil {
			a.log.Warningf("Network evaluator failed (%v), expanding uniformly", r)
			policy = nil
			value = 0
		}
	}()
	p, v := a.model.Forward(BoardTensor(b))
	return &p, v
}

// playNode advances the board into the given child node.
func (a *AlphaMcts) playNode(b *board.Board, node int) {
	n := &a.nodes[node]
	if n.pass {
		_ = b.Pass()
	} else {
		_ = b.PlayMove(n.move)
	}
}

// ucb is the selection score of a child as seen from its parent.
func (a *AlphaMcts) ucb(parent int, child int, exploration float64) float64 {
	c := &a.nodes[child]
	if c.visits == 0 {
		return math.Inf(1)
	}
	q := 1 - ((c.wins/c.visits)+1)/2
	return q + exploration*math.Sqrt(math.Log(a.nodes[parent].visits)/c.visits)
}

// bestChild returns the child with the highest UCB score, or noParent
// when the node has no children.
func (a *AlphaMcts) bestChild(node int, exploration float64) int {
	best := noParent
	bestScore := math.Inf(-1)
	for _, child := range a.nodes[node].children {
		if score := a.ucb(node, child, exploration); score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// terminalValue maps a terminal game state to the White sided value
// scale of the network.
func terminalValue(state GameState) float32 {
	switch state {
	case WhiteWins:
		return 1
	case BlackWins:
		return -1
	}
	return 0
}
