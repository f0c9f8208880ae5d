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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerColor(t *testing.T) {
	assert.Equal(t, "w", White.Code())
	assert.Equal(t, "b", Black.Code())
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
	color, ok := ParseColor("White")
	assert.True(t, ok)
	assert.Equal(t, White, color)
	_, ok = ParseColor("white")
	assert.False(t, ok)
}

func TestPositionAlgebra(t *testing.T) {
	a := Position{2, -1}
	b := Position{-1, 3}
	assert.Equal(t, Position{1, 2}, a.Add(b))
	assert.Equal(t, Position{3, -4}, a.Sub(b))
	// rotating six times is the identity
	p := Position{3, -2}
	r := p
	for i := 0; i < 6; i++ {
		r = r.Clockwise()
	}
	assert.Equal(t, p, r)
	assert.Equal(t, p, p.Clockwise().Anticlockwise())
	assert.Equal(t, Position{2, 1}, Position{3, -2}.Clockwise())
	assert.Equal(t, Position{1, -3}, Position{3, -2}.Anticlockwise())
}

func TestDirectionAlgebra(t *testing.T) {
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, DownRight, UpLeft.Opposite())
	assert.Equal(t, DownRight, Right.Clockwise())
	assert.Equal(t, UpRight, Right.Anticlockwise())
	for d := Right; d < DirLength; d++ {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d, d.Clockwise().Anticlockwise())
		// opposite deltas cancel
		assert.Equal(t, Origin, Origin.Neighbor(d).Neighbor(d.Opposite()))
	}
}

func TestDirectionTokens(t *testing.T) {
	// left tokens appear before the relative bug, right tokens after
	assert.True(t, Left.IsLeft())
	assert.True(t, UpLeft.IsLeft())
	assert.True(t, DownLeft.IsLeft())
	assert.True(t, Right.IsRight())
	assert.True(t, UpRight.IsRight())
	assert.True(t, DownRight.IsRight())

	d, ok := LeftDirection(`\`)
	assert.True(t, ok)
	assert.Equal(t, UpLeft, d)
	d, ok = RightDirection(`\`)
	assert.True(t, ok)
	assert.Equal(t, DownRight, d)
	d, ok = LeftDirection(`-`)
	assert.True(t, ok)
	assert.Equal(t, Left, d)
	d, ok = RightDirection(`-`)
	assert.True(t, ok)
	assert.Equal(t, Right, d)
	_, ok = LeftDirection("x")
	assert.False(t, ok)
}

func TestNeighborDeltas(t *testing.T) {
	assert.Equal(t, Position{1, 0}, Origin.Neighbor(Right))
	assert.Equal(t, Position{1, -1}, Origin.Neighbor(UpRight))
	assert.Equal(t, Position{0, -1}, Origin.Neighbor(UpLeft))
	assert.Equal(t, Position{-1, 0}, Origin.Neighbor(Left))
	assert.Equal(t, Position{-1, 1}, Origin.Neighbor(DownLeft))
	assert.Equal(t, Position{0, 1}, Origin.Neighbor(DownRight))
}

func TestBugString(t *testing.T) {
	bug, ok := ParseBug("wS1")
	assert.True(t, ok)
	assert.Equal(t, Bug{White, Spider, 1}, bug)
	assert.Equal(t, "wS1", bug.String())

	bug, ok = ParseBug("bQ")
	assert.True(t, ok)
	assert.Equal(t, Bug{Black, Queen, 0}, bug)
	assert.Equal(t, "bQ", bug.String())

	bug, ok = ParseBug("wG3")
	assert.True(t, ok)
	assert.Equal(t, Bug{White, Grasshopper, 3}, bug)

	// single copy kinds must not carry a digit, multi copy kinds must
	_, ok = ParseBug("wQ1")
	assert.False(t, ok)
	_, ok = ParseBug("wS")
	assert.False(t, ok)
	_, ok = ParseBug("wS4")
	assert.False(t, ok)
	_, ok = ParseBug("xS1")
	assert.False(t, ok)
	_, ok = ParseBug("wX1")
	assert.False(t, ok)
	_, ok = ParseBug("")
	assert.False(t, ok)
}

func TestGameTypeParse(t *testing.T) {
	expected := map[string]GameType{
		"":         GtBase,
		"Base":     GtBase,
		"Base+M":   GtBase | GtM,
		"Base+L":   GtBase | GtL,
		"Base+P":   GtBase | GtP,
		"Base+ML":  GtBase | GtM | GtL,
		"Base+LM":  GtBase | GtM | GtL,
		"Base+MP":  GtBase | GtM | GtP,
		"Base+PM":  GtBase | GtM | GtP,
		"Base+LP":  GtBase | GtL | GtP,
		"Base+PL":  GtBase | GtL | GtP,
		"Base+MLP": GtBase | GtM | GtL | GtP,
		"Base+MPL": GtBase | GtM | GtL | GtP,
		"Base+LMP": GtBase | GtM | GtL | GtP,
		"Base+LPM": GtBase | GtM | GtL | GtP,
		"Base+PML": GtBase | GtM | GtL | GtP,
		"Base+PLM": GtBase | GtM | GtL | GtP,
	}
	for input, want := range expected {
		gt, ok := ParseGameType(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, gt, "input %q", input)
	}
	for _, invalid := range []string{"Invalid", "Base+Invalid", "M", "L", "P", "Base+", "Base+MM", "base"} {
		_, ok := ParseGameType(invalid)
		assert.False(t, ok, "input %q", invalid)
	}
}

func TestGameTypeString(t *testing.T) {
	// canonical output uses the order M, L, P
	assert.Equal(t, "Base", GtBase.String())
	assert.Equal(t, "Base+M", (GtBase | GtM).String())
	assert.Equal(t, "Base+ML", (GtBase | GtL | GtM).String())
	assert.Equal(t, "Base+LP", (GtBase | GtP | GtL).String())
	assert.Equal(t, "Base+MLP", (GtBase | GtP | GtL | GtM).String())
}

func TestGameStateParse(t *testing.T) {
	for _, label := range []string{"NotStarted", "InProgress", "Draw", "WhiteWins", "BlackWins"} {
		gs, ok := ParseGameState(label)
		assert.True(t, ok)
		assert.Equal(t, label, gs.String())
	}
	gs, ok := ParseGameState("")
	assert.True(t, ok)
	assert.Equal(t, NotStarted, gs)
	_, ok = ParseGameState("notstarted")
	assert.False(t, ok)

	assert.False(t, InProgress.IsFinished())
	assert.True(t, Draw.IsFinished())
	assert.True(t, WhiteWins.IsFinished())
	assert.True(t, BlackWins.IsFinished())
}

func TestMoveEquality(t *testing.T) {
	bug := Bug{White, Spider, 1}
	assert.Equal(t, NewPlacement(bug, Origin), NewPlacement(bug, Origin))
	assert.NotEqual(t, NewPlacement(bug, Origin), NewMovement(bug, Origin, Origin))
	assert.NotEqual(t,
		NewMovement(bug, Position{1, 0}, Position{0, 1}),
		NewMovement(bug, Position{0, 1}, Position{1, 0}))
}
