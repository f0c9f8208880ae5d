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

// Strategy names a move decider selectable per player color through the
// StrategyWhite / StrategyBlack engine options.
type Strategy string

// Available strategies.
const (
	StrategyRandom    Strategy = "Random"
	StrategyNegamax   Strategy = "Negamax"
	StrategyMcts      Strategy = "Mcts"
	StrategyAlphaMcts Strategy = "AlphaMcts"
)

// Strategies lists all selectable strategies in option output order.
var Strategies = []Strategy{StrategyRandom, StrategyNegamax, StrategyMcts, StrategyAlphaMcts}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, bool) {
	for _, strategy := range Strategies {
		if string(strategy) == name {
			return strategy, true
		}
	}
	return "", false
}

// NewBrain creates the brain implementing the given strategy. The
// AlphaMcts brain starts without a network and degrades to uniform
// priors until one is injected via SetPolicyValue.
func NewBrain(strategy Strategy) Brain {
	switch strategy {
	case StrategyRandom:
		return NewRandomBrain()
	case StrategyMcts:
		return NewMcts()
	case StrategyAlphaMcts:
		return NewAlphaMcts(nil)
	default:
		return NewSearch()
	}
}
