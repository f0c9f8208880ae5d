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
	"fmt"
	"time"
)

// Limits bound a single search. With TimeControl set the search stops
// after MoveTime; MaxDepth 0 means no depth bound (iterative deepening
// runs until the clock ends it).
type Limits struct {
	MaxDepth    int
	MoveTime    time.Duration
	TimeControl bool
}

// NewSearchLimits creates unbounded limits; callers fill in depth or
// time. A search started with fully unbounded limits falls back to the
// configured default depth.
func NewSearchLimits() *Limits {
	return &Limits{}
}

// String returns a string representation of the limits.
func (sl *Limits) String() string {
	if sl.TimeControl {
		return fmt.Sprintf("time %s max depth %d", sl.MoveTime, sl.MaxDepth)
	}
	return fmt.Sprintf("max depth %d", sl.MaxDepth)
}
