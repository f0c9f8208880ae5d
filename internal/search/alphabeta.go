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
	"sort"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	"github.com/crystal-spider/hivemind/internal/transpositiontable"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// ordering ranks: the pv move always comes first, killers next, all other
// moves share one band of history counters and static child evaluations
const (
	pvRank     = int64(1) << 62
	killerRank = int64(1) << 61
)

// iterativeDeepening runs full negamax searches of increasing depth
// until the depth or time limit is reached. The result of the last fully
// completed depth is returned; a timeout mid depth discards that depth.
func (s *Search) iterativeDeepening(b *board.Board, sl *Limits) *Result {
	result := &Result{BestMoveString: PassMove, BestValue: ValueDraw}

	if b.GameOver() {
		msg := "Search called on a game over position"
		s.sendInfoStringToUhp(msg)
		s.log.Warning(msg)
		return result
	}

	rootMoves := make([]Move, len(b.ValidMoves()))
	copy(rootMoves, b.ValidMoves())
	if len(rootMoves) == 0 {
		s.log.Info("No valid moves, passing")
		return result
	}

	// ###########################################
	// ### BEGIN Iterative Deepening
	for depth := 1; ; depth++ {
		s.statistics.CurrentIterationDepth = depth
		value, move, completed := s.rootSearch(b, rootMoves, depth)
		if completed {
			s.statistics.CurrentSearchDepth = depth
			result.BestMove = move
			result.HasMove = true
			result.BestMoveString = b.StringifyMove(move)
			result.BestValue = value
			result.Depth = depth
			// start the next iteration with the best move of this one
			moveToFront(rootMoves, move)
			s.slog.Debugf("Depth %d best %s value %s nodes %d",
				depth, result.BestMoveString, value, s.nodesVisited)
		}
		if s.stopConditions() ||
			(sl.MaxDepth > 0 && depth >= sl.MaxDepth) ||
			result.BestValue == ValueWin ||
			result.BestValue == ValueLoss {
			break
		}
	}
	// ### END Iterative Deepening
	// ###########################################

	return result
}

// rootSearch searches all root moves to the given depth. Root moves are
// treated separately from the recursion to keep the best move bookkeeping
// out of the hot path. completed is false when the clock ended the
// iteration early; depth 1 always completes so that a result exists.
func (s *Search) rootSearch(b *board.Board, rootMoves []Move, depth int) (Value, Move, bool) {
	alpha := ValueMin
	beta := ValueMax
	bestValue := ValueNA
	var bestMove Move
	for _, move := range rootMoves {
		_ = b.PlayMove(move)
		s.nodesVisited++
		value := -s.negamax(b, depth-1, 1, -beta, -alpha)
		_ = b.Undo(1)
		// we want at least one complete search with depth 1,
		// after that the iteration may be abandoned any time
		if s.stopConditions() && depth > 1 {
			return bestValue, bestMove, false
		}
		if value > bestValue {
			bestValue = value
			bestMove = move
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}
	s.ordering.storePV(b.Hash(), bestMove)
	s.ordering.bumpHistory(bestMove, depth)
	if config.Settings.Search.UseTT {
		s.tt.Put(b.Hash(), transpositiontable.Exact, bestValue, depth, bestMove, true)
	}
	return bestValue, bestMove, true
}

// negamax is the recursive alpha beta search with fail soft bounds.
// Values are always from the point of view of the side to move.
func (s *Search) negamax(b *board.Board, depth int, ply int, alpha Value, beta Value) Value {
	s.nodesVisited++

	// leaves always produce a real value, even when the clock has run
	// out, so that a depth 1 iteration never records a garbage score
	if depth == 0 || b.GameOver() {
		s.statistics.LeafEvals++
		return s.evaluate(b)
	}

	if s.stopConditions() {
		return ValueNA
	}

	// TT lookup: an exact value of sufficient depth ends this branch,
	// bound values narrow the window
	if config.Settings.Search.UseTT {
		if entry := s.tt.Probe(b.Hash()); entry != nil {
			s.statistics.TTHit++
			if entry.Depth >= depth {
				switch entry.Type {
				case transpositiontable.Exact:
					s.statistics.TTCuts++
					return entry.Value
				case transpositiontable.LowerBound:
					if entry.Value > alpha {
						alpha = entry.Value
					}
				case transpositiontable.UpperBound:
					if entry.Value < beta {
						beta = entry.Value
					}
				}
				if alpha >= beta {
					s.statistics.TTCuts++
					return entry.Value
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	moves := s.orderedMoves(b, depth)

	// a side without moves has the single pass child
	if len(moves) == 0 {
		s.statistics.PassNodes++
		_ = b.Pass()
		value := -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		_ = b.Undo(1)
		if s.stopFlag {
			return ValueNA
		}
		return value
	}

	alphaOrig := alpha
	bestValue := ValueNA
	var bestMove Move
	hasBest := false

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for _, move := range moves {
		_ = b.PlayMove(move)
		value := -s.negamax(b, depth-1, ply+1, -beta, -alpha)
		_ = b.Undo(1)
		if s.stopFlag {
			return ValueNA
		}
		if value > bestValue {
			bestValue = value
			bestMove = move
			hasBest = true
		}
		if bestValue > alpha {
			alpha = bestValue
		}
		if alpha >= beta {
			s.statistics.Cutoffs++
			if config.Settings.Search.UseKiller {
				s.statistics.KillerStores++
				s.ordering.storeKiller(depth, move)
			}
			break
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	if config.Settings.Search.UseTT {
		entryType := transpositiontable.Exact
		if bestValue <= alphaOrig {
			entryType = transpositiontable.UpperBound
		} else if bestValue >= beta {
			entryType = transpositiontable.LowerBound
		}
		s.tt.Put(b.Hash(), entryType, bestValue, depth, bestMove, hasBest)
	}
	if hasBest {
		s.ordering.storePV(b.Hash(), bestMove)
		s.ordering.bumpHistory(bestMove, depth)
	}
	return bestValue
}

// orderedMoves returns the legal moves of the side to move, ordered by
// the pv move, the killer moves of this depth, then history counters and
// static child evaluations, and truncated to the configured maximum
// branching factor.
func (s *Search) orderedMoves(b *board.Board, depth int) []Move {
	valid := b.ValidMoves()
	moves := make([]Move, len(valid))
	copy(moves, valid)

	type scored struct {
		move  Move
		score int64
	}
	pvMove, hasPV := s.ordering.pvMove(b.Hash())
	scoredMoves := make([]scored, len(moves))
	for i, move := range moves {
		var score int64
		switch {
		case config.Settings.Search.UsePV && hasPV && move == pvMove:
			score = pvRank
		case config.Settings.Search.UseKiller && s.ordering.isKiller(depth, move):
			score = killerRank
		default:
			if count, found := s.ordering.historyScore(move); found {
				score = int64(count)
			} else {
				// fallback: static evaluation of the child from the
				// mover's point of view
				_ = b.PlayMove(move)
				score = int64(-s.evaluate(b))
				_ = b.Undo(1)
			}
		}
		scoredMoves[i] = scored{move, score}
	}
	sort.SliceStable(scoredMoves, func(i, j int) bool {
		return scoredMoves[i].score > scoredMoves[j].score
	})
	max := config.Settings.Search.MaxBranchingFactor
	if max > 0 && len(scoredMoves) > max {
		s.statistics.BranchingCaps++
		scoredMoves = scoredMoves[:max]
	}
	ordered := make([]Move, len(scoredMoves))
	for i, sm := range scoredMoves {
		ordered[i] = sm.move
	}
	return ordered
}

// evaluate shields the search from a failing evaluator: a panicking
// evaluation scores the leaf as neutral.
func (s *Search) evaluate(b *board.Board) (value Value) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warningf("Evaluator failed (%v), scoring leaf as neutral", r)
			value = ValueDraw
		}
	}()
	return s.eval.Evaluate(b)
}

// moveToFront moves the given move to the front of the slice, keeping
// the relative order of the others.
func moveToFront(moves []Move, move Move) {
	for i, m := range moves {
		if m == move {
			copy(moves[1:i+1], moves[:i])
			moves[0] = move
			return
		}
	}
}
