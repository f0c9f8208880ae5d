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
	. "github.com/crystal-spider/hivemind/internal/types"
)

// scoreEntry is one cached static score keyed by the board hash.
type scoreEntry struct {
	score Value
	age   int
}

// scoreCache is a bounded aging map for static scores: the second aging
// table of the search besides the transposition table. Not thread safe.
type scoreCache struct {
	data       map[uint64]*scoreEntry
	maxEntries int
	maxAge     int
	probes     uint64
	hits       uint64
}

func newScoreCache(maxEntries int, maxAge int) *scoreCache {
	return &scoreCache{
		data:       make(map[uint64]*scoreEntry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
}

// get returns the cached score for the key. A hit refreshes the entry.
func (sc *scoreCache) get(key uint64) (Value, bool) {
	sc.probes++
	if e, found := sc.data[key]; found {
		if e.age > 0 {
			e.age--
		}
		sc.hits++
		return e.score, true
	}
	return ValueNA, false
}

// put stores a score. New keys are dropped while the cache is full.
func (sc *scoreCache) put(key uint64, score Value) {
	if e, found := sc.data[key]; found {
		e.score = score
		e.age = 0
		return
	}
	if len(sc.data) >= sc.maxEntries {
		return
	}
	sc.data[key] = &scoreEntry{score: score}
}

// flush ages every entry and evicts the ones at or past the maximum age.
func (sc *scoreCache) flush() {
	for key, e := range sc.data {
		e.age++
		if e.age >= sc.maxAge {
			delete(sc.data, key)
		}
	}
}

func (sc *scoreCache) clear() {
	sc.data = make(map[uint64]*scoreEntry)
	sc.probes = 0
	sc.hits = 0
}

func (sc *scoreCache) len() int {
	return len(sc.data)
}
