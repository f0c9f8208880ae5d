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
	"os"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// the opening used by most tests
var opening = []string{"wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-"}

func playAll(t *testing.T, b *Board, moveStrings ...string) {
	for _, ms := range moveStrings {
		require.NoError(t, b.Play(ms), "move %q", ms)
	}
}

func TestNewEmptyBoard(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	assert.Equal(t, NotStarted, b.State())
	assert.Equal(t, 0, b.Turn())
	assert.Equal(t, White, b.CurrentPlayerColor())
	assert.Equal(t, 1, b.CurrentPlayerTurn())
	assert.EqualValues(t, 0, b.Hash())
	assert.Equal(t, "Base;NotStarted;White[1]", b.GameString())
	// a Base color owns 1 queen, 2 spiders, 2 beetles, 3 grasshoppers, 3 ants
	assert.Equal(t, 22, len(b.Pieces()))
}

func TestNewWithExpansions(t *testing.T) {
	b, err := New("Base+MLP;NotStarted;White[1]")
	require.NoError(t, err)
	assert.Equal(t, 28, len(b.Pieces()))
	assert.Equal(t, "Base+MLP;NotStarted;White[1]", b.GameString())

	// permuted expansions parse but print canonically
	b, err = New("Base+PLM;NotStarted;White[1]")
	require.NoError(t, err)
	assert.Equal(t, "Base+MLP;NotStarted;White[1]", b.GameString())
}

func TestNewReplaysMoves(t *testing.T) {
	b, err := New("Base;InProgress;Black[2];wS1;bS1 wS1-;wQ -wS1")
	require.NoError(t, err)
	assert.Equal(t, InProgress, b.State())
	assert.Equal(t, 3, b.Turn())
	assert.Equal(t, Black, b.CurrentPlayerColor())
	assert.Equal(t, 2, b.CurrentPlayerTurn())
	pos, ok := b.PositionOf(Bug{Color: White, Type: Queen, ID: 0})
	assert.True(t, ok)
	assert.Equal(t, Position{Q: -1, R: 0}, pos)
}

func TestNewRejectsWrongHeader(t *testing.T) {
	// turn does not match the move count
	_, err := New("Base;InProgress;Black[3];wS1;bS1 wS1-;wQ -wS1")
	assert.Error(t, err)
	// state does not match the replayed game
	_, err = New("Base;NotStarted;Black[2];wS1;bS1 wS1-;wQ -wS1")
	assert.Error(t, err)
	// malformed pieces
	_, err = New("Base;InProgress;Black[1];wX1")
	assert.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestGameStringRoundtrip(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	playAll(t, b, opening...)
	playAll(t, b, "wG1 -wQ")
	gs := b.GameString()
	replayed, err := New(gs)
	require.NoError(t, err)
	assert.Equal(t, gs, replayed.GameString())
	assert.Equal(t, b.Hash(), replayed.Hash())
	assert.Equal(t, b.Turn(), replayed.Turn())
	assert.Equal(t, b.State(), replayed.State())
}

// every ply changes the hash, undo walks
// the exact same values backwards, replaying reproduces them
func TestHashWalk(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	assert.EqualValues(t, 0, b.Hash())

	moves := []string{"wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-", "wG1 -wQ"}
	seen := []uint64{0}
	for _, ms := range moves {
		require.NoError(t, b.Play(ms))
		h := b.Hash()
		for _, prev := range seen {
			assert.NotEqual(t, prev, h)
		}
		seen = append(seen, h)
	}

	// undo one, replay, same value again
	require.NoError(t, b.Undo(1))
	assert.Equal(t, seen[4], b.Hash())
	require.NoError(t, b.Play("wG1 -wQ"))
	assert.Equal(t, seen[5], b.Hash())

	// walk all the way back
	for i := 5; i >= 1; i-- {
		require.NoError(t, b.Undo(1))
		assert.Equal(t, seen[i-1], b.Hash())
	}
	assert.EqualValues(t, 0, b.Hash())
	assert.Equal(t, NotStarted, b.State())
}

func TestUndoRestoresFullState(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	playAll(t, b, opening...)
	gs := b.GameString()
	hash := b.Hash()
	turn := b.Turn()

	playAll(t, b, "wG1 -wQ", "bG1 bQ-")
	require.NoError(t, b.Undo(2))

	assert.Equal(t, gs, b.GameString())
	assert.Equal(t, hash, b.Hash())
	assert.Equal(t, turn, b.Turn())
	_, inPlay := b.PositionOf(Bug{Color: White, Type: Grasshopper, ID: 1})
	assert.False(t, inPlay)
}

func TestUndoErrors(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	assert.Equal(t, ErrNothingToUndo, b.Undo(1))
	playAll(t, b, "wS1")
	assert.Equal(t, ErrNothingToUndo, b.Undo(2))
	require.NoError(t, b.Undo(1))
	assert.Equal(t, NotStarted, b.State())
}

func TestPlayErrors(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)

	// malformed move strings
	err = b.Play("wX9")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	err = b.Play("wS1 -bQ-")
	assert.ErrorAs(t, err, &parseErr)

	// reference to a bug not in play
	err = b.Play("wS1 bQ-")
	assert.ErrorAs(t, err, &parseErr)

	// syntactically fine but illegal: the queen may not open
	err = b.Play("wQ")
	var illegal *IllegalMoveError
	assert.ErrorAs(t, err, &illegal)

	// pass with legal moves on the board
	err = b.Play("pass")
	assert.ErrorAs(t, err, &illegal)
}

// a full game surrounding the black queen: White wins, the game locks
// and undo reopens it
func winningGame() []string {
	return []string{
		"wS1", "bS1 wS1-", "wQ -wS1", "bQ bS1-",
		"wA1 \\wS1", "bG1 bQ-",
		"wA1 bS1/", "bA1 bG1-",
		"wA2 \\wQ", "bA2 bA1-",
		"wA2 wA1-", "bA3 bA2-",
		"wA3 /wQ", "bG2 bA3-",
		"wA3 /bQ", "bG3 bG2-",
		"wG1 \\wA1", "bB1 bG3-",
		"wG1 /bG1",
	}
}

func TestQueenSurroundEndsGame(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	moves := winningGame()
	playAll(t, b, moves[:len(moves)-1]...)
	assert.Equal(t, InProgress, b.State())
	assert.Equal(t, 5, b.CountQueenNeighbors(Black))

	playAll(t, b, moves[len(moves)-1])
	assert.Equal(t, WhiteWins, b.State())
	assert.True(t, b.GameOver())
	assert.Equal(t, 6, b.CountQueenNeighbors(Black))

	// any state changing operation except undo fails now
	assert.Equal(t, ErrGameOver, b.Play("wA1 bS1-"))
	assert.Equal(t, ErrGameOver, b.Pass())

	// undo walks the state machine back to InProgress
	require.NoError(t, b.Undo(1))
	assert.Equal(t, InProgress, b.State())
	assert.False(t, b.GameOver())
}

func TestQueriesOnOpening(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	playAll(t, b, opening...)

	assert.True(t, b.QueenInPlay(White))
	assert.True(t, b.QueenInPlay(Black))
	assert.Equal(t, 1, b.CountQueenNeighbors(White))
	assert.Equal(t, 1, b.CountQueenNeighbors(Black))

	stack := b.BugsAt(Position{Q: 0, R: 0})
	require.Equal(t, 1, len(stack))
	assert.Equal(t, Bug{Color: White, Type: Spider, ID: 1}, stack[0])

	last, ok := b.LastMoved()
	assert.True(t, ok)
	assert.Equal(t, Bug{Color: Black, Type: Queen, ID: 0}, last)

	pos, ok := b.PositionOf(Bug{Color: Black, Type: Spider, ID: 1})
	assert.True(t, ok)
	assert.Equal(t, Position{Q: 1, R: 0}, pos)
	_, ok = b.PositionOf(Bug{Color: White, Type: Ant, ID: 1})
	assert.False(t, ok)
}

// the hive must be connected between any two moves
func TestHiveStaysConnected(t *testing.T) {
	b, err := New("")
	require.NoError(t, err)
	for _, ms := range winningGame() {
		require.NoError(t, b.Play(ms))
		assertConnected(t, b)
	}
}

func assertConnected(t *testing.T, b *Board) {
	occupied := map[Position]bool{}
	for _, bug := range b.Pieces() {
		if pos, ok := b.PositionOf(bug); ok {
			occupied[pos] = true
		}
	}
	if len(occupied) == 0 {
		return
	}
	var start Position
	for pos := range occupied {
		start = pos
		break
	}
	visited := map[Position]bool{start: true}
	frontier := []Position{start}
	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for d := Right; d < DirLength; d++ {
			n := current.Neighbor(d)
			if occupied[n] && !visited[n] {
				visited[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	assert.Equal(t, len(occupied), len(visited), "hive is disconnected")
}

func TestSeededHashReproducible(t *testing.T) {
	a, err := NewSeeded("", 99)
	require.NoError(t, err)
	b, err := NewSeeded("", 99)
	require.NoError(t, err)
	playAll(t, a, opening...)
	playAll(t, b, opening...)
	assert.Equal(t, a.Hash(), b.Hash())

	c, err := NewSeeded("", 100)
	require.NoError(t, err)
	playAll(t, c, opening...)
	assert.NotEqual(t, a.Hash(), c.Hash())
}
