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

type evalConfiguration struct {
	// weight of the queen neighbor difference
	QueenNeighborWeight int

	// weight of the pieces in play difference
	InPlayWeight int

	// mobility refinement: weights the difference in legal move counts
	// and in moves reaching the enemy queen; off by default
	UseMobility      bool
	MobilityWeight   int
	UseQueenCrowd    bool
	QueenCrowdWeight int

	// score cache
	UseScoreCache     bool
	ScoreCacheEntries int
	ScoreCacheMaxAge  int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.QueenNeighborWeight = 10
	Settings.Eval.InPlayWeight = 2

	Settings.Eval.UseMobility = false
	Settings.Eval.MobilityWeight = 1
	Settings.Eval.UseQueenCrowd = false
	Settings.Eval.QueenCrowdWeight = 20

	Settings.Eval.UseScoreCache = true
	Settings.Eval.ScoreCacheEntries = 2_000_000
	Settings.Eval.ScoreCacheMaxAge = 5
}
