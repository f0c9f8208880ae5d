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
	"os"
	"testing"
	"time"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	"github.com/crystal-spider/hivemind/internal/logging"
	. "github.com/crystal-spider/hivemind/internal/types"
)

var logTest *logging2.Logger

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

// a position where surrounding the black queen wins on the next move
func mateInOneBoard(t *testing.T) *board.Board {
	b, err := board.New("")
	require.NoError(t, err)
	for _, ms := range []string{
		"wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-",
		`wA1 \wS1`, "bG1 bQ-",
		"wA1 bS1/", "bA1 bG1-",
		`wA2 \wQ`, "bA2 bA1-",
		"wA2 wA1-", "bA3 bA2-",
		"wA3 /wQ", "bG2 bA3-",
		"wA3 /bQ", "bG3 bG2-",
		`wG1 \wA1`, "bB1 bG3-",
	} {
		require.NoError(t, b.Play(ms), "move %q", ms)
	}
	return b
}

func TestNegamaxFindsWinInOne(t *testing.T) {
	b := mateInOneBoard(t)
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MaxDepth = 1
	result := s.FindBestMove(b, *sl)
	require.NotNil(t, result)
	assert.True(t, result.HasMove)
	assert.Equal(t, "wG1 /bG1", result.BestMoveString)
	assert.Equal(t, ValueWin, result.BestValue)
	// the searched snapshot never touches the caller's board
	assert.Equal(t, InProgress, b.State())
}

func TestNegamaxDeeperSearchStillWins(t *testing.T) {
	b := mateInOneBoard(t)
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MaxDepth = 3
	result := s.FindBestMove(b, *sl)
	assert.Equal(t, ValueWin, result.BestValue)
	assert.Equal(t, "wG1 /bG1", result.BestMoveString)
}

func TestSearchRespectsDepthLimit(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MaxDepth = 2
	result := s.FindBestMove(b, *sl)
	assert.Equal(t, 2, result.Depth)
	assert.True(t, result.HasMove)
}

func TestSearchRespectsTimeLimit(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	s := NewSearch()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 200 * time.Millisecond
	start := time.Now()
	result := s.FindBestMove(b, *sl)
	elapsed := time.Since(start)
	assert.True(t, result.HasMove)
	// generous upper bound, the clock is polled at node entry
	assert.True(t, elapsed < 5*time.Second, "search took %s", elapsed)
	assert.True(t, result.Depth >= 1)
}

func TestBestMoveCache(t *testing.T) {
	b := mateInOneBoard(t)
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MaxDepth = 1
	first := s.FindBestMove(b, *sl)
	second := s.FindBestMove(b, *sl)
	// the same question is answered from the previous result
	assert.Same(t, first, second)

	// a different limit triggers a fresh search
	sl.MaxDepth = 2
	third := s.FindBestMove(b, *sl)
	assert.NotSame(t, first, third)
}

func TestSearchResultIsLegal(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	require.NoError(t, b.Play("wS1"))
	s := NewSearch()
	sl := NewSearchLimits()
	sl.MaxDepth = 2
	result := s.FindBestMove(b, *sl)
	require.True(t, result.HasMove)
	assert.NoError(t, b.Play(result.BestMoveString))
}

func TestRandomBrainPlaysLegalMoves(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	brain := NewRandomBrain()
	for i := 0; i < 6; i++ {
		result := brain.FindBestMove(b, *NewSearchLimits())
		require.NoError(t, b.Play(result.BestMoveString))
	}
	assert.Equal(t, 6, b.Turn())
}

func TestMctsReturnsLegalMove(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	brain := NewMcts()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 100 * time.Millisecond
	result := brain.FindBestMove(b, *sl)
	require.True(t, result.HasMove)
	assert.NoError(t, b.Play(result.BestMoveString))
	// the caller's board is untouched by the simulations
	assert.Equal(t, 1, b.Turn())
}

func TestAlphaMctsWithoutNetwork(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	brain := NewAlphaMcts(nil)
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 100 * time.Millisecond
	result := brain.FindBestMove(b, *sl)
	require.True(t, result.HasMove)
	assert.NoError(t, b.Play(result.BestMoveString))
}

// uniformEvaluator is a trivial stand in for the external network.
type uniformEvaluator struct{}

func (uniformEvaluator) Forward(t Tensor) (Policy, float32) {
	var p Policy
	for c := range p {
		for q := range p[c] {
			for r := range p[c][q] {
				p[c][q][r] = 1
			}
		}
	}
	return p, 0
}

func TestAlphaMctsWithNetwork(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	require.NoError(t, b.Play("wS1"))
	brain := NewAlphaMcts(uniformEvaluator{})
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 100 * time.Millisecond
	result := brain.FindBestMove(b, *sl)
	require.True(t, result.HasMove)
	assert.NoError(t, b.Play(result.BestMoveString))
}

func TestMoveToPolicyIndex(t *testing.T) {
	move := NewPlacement(Bug{Color: White, Type: Spider, ID: 1}, Position{Q: 1, R: -1})
	channel, q, r, ok := MoveToPolicyIndex(move)
	assert.True(t, ok)
	assert.Equal(t, int(Spider)%PolicyChannels, channel)
	assert.Equal(t, 8, q)
	assert.Equal(t, 6, r)

	// outside the policy window
	_, _, _, ok = MoveToPolicyIndex(NewPlacement(Bug{Color: White, Type: Spider, ID: 1}, Position{Q: 20, R: 0}))
	assert.False(t, ok)
}

func TestStrategyRegistry(t *testing.T) {
	for _, strategy := range Strategies {
		parsed, ok := ParseStrategy(string(strategy))
		assert.True(t, ok)
		assert.Equal(t, strategy, parsed)
		assert.NotNil(t, NewBrain(strategy))
	}
	_, ok := ParseStrategy("Minimax")
	assert.False(t, ok)
}

func TestOrderingTables(t *testing.T) {
	o := newOrdering()
	move1 := NewPlacement(Bug{Color: White, Type: Spider, ID: 1}, Origin)
	move2 := NewPlacement(Bug{Color: White, Type: Beetle, ID: 1}, Origin)

	_, found := o.pvMove(7)
	assert.False(t, found)
	o.storePV(7, move1)
	pv, found := o.pvMove(7)
	assert.True(t, found)
	assert.Equal(t, move1, pv)

	// killers are a bounded FIFO per depth
	assert.False(t, o.isKiller(3, move1))
	o.storeKiller(3, move1)
	o.storeKiller(3, move1)
	assert.True(t, o.isKiller(3, move1))
	assert.Equal(t, 1, len(o.killers[3]))
	o.storeKiller(3, move2)
	for i := 0; i < config.Settings.Search.KillerCount; i++ {
		o.storeKiller(3, NewPlacement(Bug{Color: Black, Type: Ant, ID: uint8(i + 1)}, Origin))
	}
	assert.False(t, o.isKiller(3, move1), "oldest killer was not evicted")
	assert.True(t, len(o.killers[3]) <= config.Settings.Search.KillerCount)

	// history accumulates 2^depth
	o.bumpHistory(move1, 3)
	o.bumpHistory(move1, 4)
	score, found := o.historyScore(move1)
	assert.True(t, found)
	assert.EqualValues(t, 8+16, score)
}
