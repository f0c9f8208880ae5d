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

// Package search implements the move deciders of the engine: the
// iterative deepening negamax search with transposition table and move
// ordering heuristics, a uniformly random mover and the UCT based Monte
// Carlo searchers. All searchers decide on a snapshot of the game board
// and leave the real board untouched.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	"github.com/crystal-spider/hivemind/internal/evaluator"
	myLogging "github.com/crystal-spider/hivemind/internal/logging"
	"github.com/crystal-spider/hivemind/internal/transpositiontable"
	. "github.com/crystal-spider/hivemind/internal/types"
	"github.com/crystal-spider/hivemind/internal/uhpInterface"
	"github.com/crystal-spider/hivemind/internal/util"
)

var out = message.NewPrinter(language.German)

// Result is the outcome of one search.
type Result struct {
	BestMove       Move
	HasMove        bool // false means the pass move
	BestMoveString string
	BestValue      Value
	SearchTime     time.Duration
	Depth          int
	Nodes          uint64
}

// String returns a string representation of the result.
func (r *Result) String() string {
	return out.Sprintf("best move: %s value: %s depth: %d nodes: %d time: %s",
		r.BestMoveString, r.BestValue, r.Depth, r.Nodes, r.SearchTime)
}

// Brain decides on a move for a board under the given limits. FindBestMove
// blocks until the decision is made and never mutates the given board.
type Brain interface {
	FindBestMove(b *board.Board, sl Limits) *Result
	NewGame()
}

// Search is the iterative deepening negamax brain.
// Create an instance with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uhpHandlerPtr uhpInterface.UhpDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *transpositiontable.TtTable
	eval *evaluator.Evaluator

	// move ordering tables (pv, killer, history)
	ordering *ordering

	// previous search, replayed for free when the same question is asked
	lastSearchResult *Result
	lastHash         uint64
	lastLimits       Limits
	hasResult        bool

	// current search state
	stopFlag     bool
	startTime    time.Time
	timeLimit    time.Duration
	nodesVisited uint64
	statistics   Statistics
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance. Until a uhp handler is set
// with SetUhpHandler all diagnostics go to the logs only.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		tt:            transpositiontable.NewTtTable(config.Settings.Search.TTMaxEntries, config.Settings.Search.TTMaxAge),
		eval:          evaluator.NewEvaluator(),
		ordering:      newOrdering(),
	}
}

// FindBestMove runs a search on a snapshot of the given board and blocks
// until the result is available. A repeated question on the same position
// with the same limits is answered from the previous result.
func (s *Search) FindBestMove(b *board.Board, sl Limits) *Result {
	if s.hasResult && s.lastHash == b.Hash() && s.lastLimits == sl {
		s.log.Debug("Best move cache hit, replaying previous result")
		return s.lastSearchResult
	}
	s.StartSearch(b, sl)
	s.WaitWhileSearching()
	return s.lastSearchResult
}

// StartSearch starts the search on a snapshot of the given position with
// the given search limits in its own goroutine. Search can be stopped
// with StopSearch; status can be checked with IsSearching.
func (s *Search) StartSearch(b *board.Board, sl Limits) {
	// acquire init phase lock
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	// the snapshot goes through the wire format: same moves, same hash,
	// and play/undo during the search can never corrupt the game board
	snapshot, err := board.New(b.GameString())
	if err != nil {
		s.log.Panicf("Board snapshot failed: %s", err)
	}
	go s.run(snapshot, sl)
	// wait until search is running and initialization is done
	// before returning to caller
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The last
// fully completed depth's result is kept. This waits for the search to
// be stopped before returning.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching checks if search is running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has stopped.
func (s *Search) WaitWhileSearching() {
	// get and release semaphore. Will block if search is running
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUhpHandler sets the UHP handler for diagnostics. If not set output
// will be sent to the logs only.
func (s *Search) SetUhpHandler(handler uhpInterface.UhpDriver) {
	s.uhpHandlerPtr = handler
}

// NewGame stops any running search and resets all search state: the
// transposition table, the score cache, the ordering tables and the
// previous result.
func (s *Search) NewGame() {
	s.StopSearch()
	s.tt.Clear()
	s.eval.Clear()
	s.ordering.clear()
	s.hasResult = false
	s.lastSearchResult = nil
	// good point in time to let the garbage collector do its work
	s.log.Debug(util.GcWithStats())
}

// LastSearchResult returns the result of the last finished search.
func (s *Search) LastSearchResult() *Result {
	return s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// //////////////////////////////////////////////////////
// // Private
// //////////////////////////////////////////////////////

// run is called by StartSearch in a separate goroutine. It runs the
// actual search until a limit is reached or StopSearch is called.
func (s *Search) run(b *board.Board, sl Limits) {
	// check if there is already a search running
	// and if not grab the isRunning semaphore
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		s.initSemaphore.Release(1)
		return
	}
	// release the running semaphore after the search has ended
	defer func() {
		s.isRunning.Release(1)
	}()

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", b.GameString())

	// init new search run
	s.stopFlag = false
	s.nodesVisited = 0
	s.statistics = Statistics{}
	// the limits as asked, before defaults are filled in, key the
	// best move cache
	requested := sl
	s.setupLimits(&sl)

	// age the caches once per root search
	if config.Settings.Search.UseTT {
		s.tt.Flush()
		s.slog.Debugf("Transposition table: %s", s.tt.String())
	}
	s.eval.Flush()

	// release the init phase lock to signal the calling goroutine
	// waiting in StartSearch to return
	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(b, &sl)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited

	s.log.Info(out.Sprintf("Search finished after %s", result.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.nodesVisited, util.Nps(s.nodesVisited, result.SearchTime)))
	s.slog.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", result.String())

	s.lastSearchResult = result
	s.lastHash = b.Hash()
	s.lastLimits = requested
	s.hasResult = true
	s.stopFlag = true
}

// setupLimits fills in the effective time and depth bounds.
func (s *Search) setupLimits(sl *Limits) {
	if sl.TimeControl && sl.MoveTime > 0 {
		s.timeLimit = sl.MoveTime
	} else {
		s.timeLimit = 0
	}
	if !sl.TimeControl && sl.MaxDepth == 0 {
		sl.MaxDepth = config.Settings.Search.DefaultDepth
		s.log.Debugf("No effective limits given, using default depth %d", sl.MaxDepth)
	}
	s.slog.Debugf("Search limits: %s", sl.String())
}

// stopConditions checks the cooperative abort conditions: the stop flag
// and the wall clock. Polled at node entry.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.timeLimit > 0 && time.Since(s.startTime) > s.timeLimit {
		s.stopFlag = true
		return true
	}
	return false
}

func (s *Search) sendInfoStringToUhp(msg string) {
	if s.uhpHandlerPtr != nil {
		s.uhpHandlerPtr.SendInfoString(msg)
	} else {
		s.log.Debugf("uhp >> info %s", msg)
	}
}
