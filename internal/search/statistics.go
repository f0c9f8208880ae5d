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

// Statistics are counters collected during one search run. They are
// owned by the search instance and reset between searches.
type Statistics struct {
	CurrentIterationDepth int
	CurrentSearchDepth    int

	Cutoffs       uint64
	TTHit         uint64
	TTMiss        uint64
	TTCuts        uint64
	KillerStores  uint64
	PassNodes     uint64
	BranchingCaps uint64
	LeafEvals     uint64
}

// String returns a string representation of the search statistics.
func (s *Statistics) String() string {
	return out.Sprintf("depth %d cutoffs %d tt hits %d misses %d cuts %d killers %d "+
		"pass nodes %d branching caps %d leaf evals %d",
		s.CurrentSearchDepth, s.Cutoffs, s.TTHit, s.TTMiss, s.TTCuts, s.KillerStores,
		s.PassNodes, s.BranchingCaps, s.LeafEvals)
}
