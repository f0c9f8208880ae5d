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

package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystal-spider/hivemind/internal/board"
	"github.com/crystal-spider/hivemind/internal/config"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func playAll(t *testing.T, b *board.Board, moveStrings ...string) {
	for _, ms := range moveStrings {
		require.NoError(t, b.Play(ms), "move %q", ms)
	}
}

func TestNotStartedIsNeutral(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	e := NewEvaluator()
	assert.Equal(t, ValueDraw, e.Evaluate(b))
}

func TestBalancedOpeningIsNeutral(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	playAll(t, b, "wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-")
	e := NewEvaluator()
	// both queens have one neighbor, both sides have two pieces in play
	assert.Equal(t, ValueDraw, e.Evaluate(b))
}

func TestInPlayAdvantage(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	playAll(t, b, "wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-", "wG1 -wQ")
	e := NewEvaluator()
	// white queen: wS1, wG1 = 2 neighbors; black queen: bS1 = 1
	// black to move: whiteScore = 10*(1-2) + 2*(3-2) = -8, flipped
	assert.Equal(t, Value(8), e.Evaluate(b))
}

func TestQueenNeighborAdvantage(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	playAll(t, b,
		"wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-",
		`wA1 \wS1`, "bG1 bQ-",
		"wA1 bS1/")
	e := NewEvaluator()
	// black queen: bS1, wA1, bG1 = 3 neighbors; white queen: wS1 = 1
	// black to move: whiteScore = 10*(3-1) + 2*(3-3) = 20, flipped
	assert.Equal(t, Value(-20), e.Evaluate(b))
}

func TestTerminalValues(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	playAll(t, b,
		"wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-",
		`wA1 \wS1`, "bG1 bQ-",
		"wA1 bS1/", "bA1 bG1-",
		`wA2 \wQ`, "bA2 bA1-",
		"wA2 wA1-", "bA3 bA2-",
		"wA3 /wQ", "bG2 bA3-",
		"wA3 /bQ", "bG3 bG2-",
		`wG1 \wA1`, "bB1 bG3-",
		"wG1 /bG1")
	require.Equal(t, WhiteWins, b.State())
	e := NewEvaluator()
	// Black is to move and has lost
	assert.Equal(t, ValueLoss, e.Evaluate(b))
	require.NoError(t, b.Undo(1))
	// reopened game evaluates normally again
	assert.NotEqual(t, ValueLoss, e.Evaluate(b))
}

func TestScoreCacheHits(t *testing.T) {
	b, err := board.New("")
	require.NoError(t, err)
	playAll(t, b, "wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-", "wG1 -wQ")
	e := NewEvaluator()
	first := e.Evaluate(b)
	assert.Equal(t, 1, e.CacheLen())
	assert.Equal(t, first, e.Evaluate(b))
	e.Clear()
	assert.Equal(t, 0, e.CacheLen())
	assert.Equal(t, first, e.Evaluate(b))
}
