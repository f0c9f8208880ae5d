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

// Package evaluator computes the static score of a Hive position. The
// score is built from the queen neighbor counts and the pieces in play,
// optionally refined with mobility terms, and cached in an aging table
// keyed by the board hash.
package evaluator

import (
	"github.com/op/go-logging"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	myLogging "github.com/crystal-spider/hivemind/internal/logging"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// Evaluator evaluates positions. Create with NewEvaluator. An Evaluator
// owns its score cache and is not safe for concurrent use.
type Evaluator struct {
	log   *logging.Logger
	cache *scoreCache
}

// NewEvaluator creates a new Evaluator instance with the configured
// score cache.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log:   myLogging.GetLog(),
		cache: newScoreCache(config.Settings.Eval.ScoreCacheEntries, config.Settings.Eval.ScoreCacheMaxAge),
	}
}

// Evaluate returns the value of the position from the point of view of
// the side to move. Terminal positions score win/loss, a draw and a not
// yet started game score zero; everything else is the cached feature
// score.
func (e *Evaluator) Evaluate(b *board.Board) Value {
	perspective := Value(1)
	if b.CurrentPlayerColor() == Black {
		perspective = -1
	}
	switch b.State() {
	case WhiteWins:
		return perspective * ValueWin
	case BlackWins:
		return perspective * ValueLoss
	case Draw, NotStarted:
		return ValueDraw
	}
	return perspective * e.whiteScore(b)
}

// whiteScore computes (or fetches) the feature score from White's point
// of view.
func (e *Evaluator) whiteScore(b *board.Board) Value {
	useCache := config.Settings.Eval.UseScoreCache
	if useCache {
		if score, found := e.cache.get(b.Hash()); found {
			return score
		}
	}
	cfg := &config.Settings.Eval
	score := Value(cfg.QueenNeighborWeight) * Value(b.CountQueenNeighbors(Black)-b.CountQueenNeighbors(White))
	score += Value(cfg.InPlayWeight) * Value(e.countInPlay(b, White)-e.countInPlay(b, Black))
	if cfg.UseMobility {
		score += Value(cfg.MobilityWeight) * Value(len(b.ValidMovesFor(White, true))-len(b.ValidMovesFor(Black, true))) / 2
	}
	if cfg.UseQueenCrowd {
		score += Value(cfg.QueenCrowdWeight) * Value(b.CountMovesNearQueen(White)-b.CountMovesNearQueen(Black))
	}
	if useCache {
		e.cache.put(b.Hash(), score)
	}
	return score
}

// countInPlay counts the pieces of one color on the board.
func (e *Evaluator) countInPlay(b *board.Board, color PlayerColor) int {
	count := 0
	for _, bug := range b.Pieces() {
		if bug.Color != color {
			continue
		}
		if _, inPlay := b.PositionOf(bug); inPlay {
			count++
		}
	}
	return count
}

// Flush ages the score cache. Called once per root search.
func (e *Evaluator) Flush() {
	e.cache.flush()
}

// Clear drops the score cache, e.g. on newgame.
func (e *Evaluator) Clear() {
	e.cache.clear()
}

// CacheLen returns the number of cached scores.
func (e *Evaluator) CacheLen() int {
	return e.cache.len()
}
