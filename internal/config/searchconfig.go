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

package config

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Strategies per color (Random, Negamax, Mcts, AlphaMcts)
	StrategyWhite string
	StrategyBlack string

	// Maximum amount of child moves considered per node
	MaxBranchingFactor int

	// Advisory only, the search is single threaded
	NumThreads int

	// Move ordering
	UsePV     bool
	UseKiller bool
	// number of killer moves remembered per depth
	KillerCount int

	// Transposition Table
	UseTT        bool
	TTMaxEntries int
	TTMaxAge     int

	// default depth limit when neither depth nor time are given
	DefaultDepth int

	// UCT exploration constant scaled by 1000 (1410 = 1.41)
	UctExploration int
	// rollout depth cap for classic MCTS
	RolloutDepth int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Search.StrategyWhite = "Negamax"
	Settings.Search.StrategyBlack = "Negamax"

	Settings.Search.MaxBranchingFactor = 64
	Settings.Search.NumThreads = 1

	Settings.Search.UsePV = true
	Settings.Search.UseKiller = true
	Settings.Search.KillerCount = 3

	Settings.Search.UseTT = true
	Settings.Search.TTMaxEntries = 10_000_000
	Settings.Search.TTMaxAge = 5

	Settings.Search.DefaultDepth = 4

	Settings.Search.UctExploration = 1_410
	Settings.Search.RolloutDepth = 400
}
