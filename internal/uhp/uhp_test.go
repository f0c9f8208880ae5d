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

package uhp

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystal-spider/hivemind/internal/config"
)

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func lines(response string) []string {
	return strings.Split(strings.TrimSpace(response), "\n")
}

func TestInfoCommand(t *testing.T) {
	u := NewUhpHandler()
	response := lines(u.Command("info"))
	require.True(t, len(response) >= 3)
	assert.True(t, strings.HasPrefix(response[0], "id HiveMind"))
	assert.Equal(t, "Mosquito;Ladybug;Pillbug", response[1])
	assert.Equal(t, "ok", response[len(response)-1])
}

func TestNewGameEchoesGameString(t *testing.T) {
	u := NewUhpHandler()
	response := lines(u.Command("newgame"))
	assert.Equal(t, "Base;NotStarted;White[1]", response[0])
	assert.Equal(t, "ok", response[1])

	response = lines(u.Command("newgame Base+MLP"))
	assert.Equal(t, "Base+MLP;NotStarted;White[1]", response[0])

	response = lines(u.Command("newgame Base;InProgress;Black[1];wS1"))
	assert.Equal(t, "Base;InProgress;Black[1];wS1", response[0])
}

func TestNewGameRejectsGarbage(t *testing.T) {
	u := NewUhpHandler()
	response := lines(u.Command("newgame Nonsense"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
	assert.Equal(t, "ok", response[len(response)-1])
}

func TestPlayAndValidMoves(t *testing.T) {
	u := NewUhpHandler()
	u.Command("newgame")

	response := lines(u.Command("play wS1"))
	assert.Equal(t, "Base;InProgress;Black[1];wS1", response[0])
	assert.Equal(t, "ok", response[1])

	// six placements per placeable black bug
	response = lines(u.Command("validmoves"))
	moves := strings.Split(response[0], ";")
	assert.Equal(t, 24, len(moves))
	assert.Equal(t, "bS1 wS1-", moves[0])
	assert.Contains(t, moves, `bS1 \wS1`)
	assert.Contains(t, moves, "bS1 /wS1")
}

func TestPlayErrors(t *testing.T) {
	u := NewUhpHandler()
	u.Command("newgame")

	// illegal move: the queen may not open
	response := lines(u.Command("play wQ"))
	assert.True(t, strings.HasPrefix(response[0], "invalidmove "), "got %q", response[0])
	assert.Equal(t, "ok", response[len(response)-1])

	// malformed move string
	response = lines(u.Command("play wX9"))
	assert.True(t, strings.HasPrefix(response[0], "err "), "got %q", response[0])

	// pass with moves on the board
	response = lines(u.Command("pass"))
	assert.True(t, strings.HasPrefix(response[0], "invalidmove "), "got %q", response[0])
}

func TestUndoCommand(t *testing.T) {
	u := NewUhpHandler()
	u.Command("newgame")
	u.Command("play wS1")
	u.Command("play bS1 wS1-")

	response := lines(u.Command("undo"))
	assert.Equal(t, "Base;InProgress;Black[1];wS1", response[0])

	response = lines(u.Command("undo 1"))
	assert.Equal(t, "Base;NotStarted;White[1]", response[0])

	response = lines(u.Command("undo"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
}

func TestBestMoveDepth(t *testing.T) {
	u := NewUhpHandler()
	u.Command("newgame")
	response := lines(u.Command("bestmove depth 1"))
	require.Equal(t, 2, len(response))
	assert.Equal(t, "ok", response[1])
	// the engine's choice must be playable
	played := lines(u.Command("play " + response[0]))
	assert.True(t, strings.HasPrefix(played[0], "Base;InProgress;Black[1];"), "got %q", played[0])
}

func TestBestMoveMalformed(t *testing.T) {
	u := NewUhpHandler()
	u.Command("newgame")
	response := lines(u.Command("bestmove depth x"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
	response = lines(u.Command("bestmove movetime 5"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
}

func TestOptionsListAndSet(t *testing.T) {
	u := NewUhpHandler()

	response := lines(u.Command("options"))
	require.Equal(t, 5, len(response))
	assert.True(t, strings.HasPrefix(response[0], "StrategyWhite;enum;"))
	assert.True(t, strings.HasPrefix(response[1], "StrategyBlack;enum;"))
	assert.True(t, strings.HasPrefix(response[2], "MaxBranchingFactor;int;"))
	assert.True(t, strings.HasPrefix(response[3], "NumThreads;int;"))
	assert.Equal(t, "ok", response[4])

	response = lines(u.Command("options set MaxBranchingFactor 32"))
	assert.Equal(t, "MaxBranchingFactor;int;32;64;1;500", response[0])
	assert.Equal(t, 32, config.Settings.Search.MaxBranchingFactor)

	response = lines(u.Command("options get MaxBranchingFactor"))
	assert.Equal(t, "MaxBranchingFactor;int;32;64;1;500", response[0])

	// invalid values are rejected
	response = lines(u.Command("options set MaxBranchingFactor zero"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
	response = lines(u.Command("options set StrategyWhite Minimax"))
	assert.True(t, strings.HasPrefix(response[0], "err "))

	response = lines(u.Command("options set StrategyWhite Random"))
	assert.Equal(t, "StrategyWhite;enum;Random;Negamax;Random;Negamax;Mcts;AlphaMcts", response[0])

	// restore defaults for other tests
	u.Command("options set MaxBranchingFactor 64")
	u.Command("options set StrategyWhite Negamax")
}

func TestHelpCommand(t *testing.T) {
	u := NewUhpHandler()
	response := lines(u.Command("help"))
	assert.Equal(t, "Available commands:", response[0])
	assert.Equal(t, "ok", response[len(response)-1])

	response = lines(u.Command("help undo"))
	assert.True(t, strings.HasPrefix(response[0], "undo [amount]"))

	response = lines(u.Command("help bogus"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
}

func TestUnknownCommand(t *testing.T) {
	u := NewUhpHandler()
	response := lines(u.Command("frobnicate"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
	assert.Equal(t, "ok", response[len(response)-1])
}

func TestGameOverReporting(t *testing.T) {
	u := NewUhpHandler()
	u.Command("newgame")
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
		response := lines(u.Command("play " + ms))
		require.Equal(t, "ok", response[len(response)-1], "move %q: %q", ms, response[0])
		require.False(t, strings.HasPrefix(response[0], "err "), "move %q: %q", ms, response[0])
		require.False(t, strings.HasPrefix(response[0], "invalidmove "), "move %q: %q", ms, response[0])
	}
	response := lines(u.Command("play wG1 /bG1"))
	assert.True(t, strings.HasPrefix(response[0], "Base;WhiteWins;"), "got %q", response[0])

	response = lines(u.Command("play wA1 bS1-"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
	response = lines(u.Command("validmoves"))
	assert.True(t, strings.HasPrefix(response[0], "err "))
	response = lines(u.Command("bestmove depth 1"))
	assert.True(t, strings.HasPrefix(response[0], "err "))

	response = lines(u.Command("undo"))
	assert.True(t, strings.HasPrefix(response[0], "Base;InProgress;"))
}