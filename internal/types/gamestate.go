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

// GameState is the lifecycle state of a game.
type GameState uint8

// GameState constants.
const (
	NotStarted GameState = iota
	InProgress
	Draw
	WhiteWins
	BlackWins
	GsLength
)

// IsValid checks if gs is a valid game state.
func (gs GameState) IsValid() bool {
	return gs < GsLength
}

// IsFinished reports whether the state is terminal.
func (gs GameState) IsFinished() bool {
	return gs == Draw || gs == WhiteWins || gs == BlackWins
}

// array of string labels for game states
var gameStateToString = [GsLength]string{"NotStarted", "InProgress", "Draw", "WhiteWins", "BlackWins"}

// String returns the GameStateString label.
func (gs GameState) String() string {
	if !gs.IsValid() {
		return "NoGameState"
	}
	return gameStateToString[gs]
}

// ParseGameState parses a GameStateString. The empty string denotes
// NotStarted.
func ParseGameState(s string) (GameState, bool) {
	if s == "" {
		return NotStarted, true
	}
	for gs := NotStarted; gs < GsLength; gs++ {
		if gameStateToString[gs] == s {
			return gs, true
		}
	}
	return GsLength, false
}
