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

// Package transpositiontable implements the transposition table of the
// search: a bounded associative map from Zobrist keys to search results
// with aging based eviction. The table is not thread safe; the search
// owns it and accesses it sequentially.
package transpositiontable

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/crystal-spider/hivemind/internal/logging"
	. "github.com/crystal-spider/hivemind/internal/types"
	"github.com/crystal-spider/hivemind/internal/util"
)

var out = message.NewPrinter(language.German)

// TtTable is the actual transposition table object holding data and
// state. Create with NewTtTable.
type TtTable struct {
	log        *logging.Logger
	data       map[uint64]*TtEntry
	maxEntries int
	maxAge     int
	Stats      TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfPuts      uint64
	numberOfUpdates   uint64
	numberOfDropped   uint64
	numberOfProbes    uint64
	numberOfHits      uint64
	numberOfMisses    uint64
	numberOfEvictions uint64
}

// NewTtTable creates a new TtTable holding at most maxEntries entries.
// An entry that is neither overwritten nor probed in between is evicted
// by the maxAge-th flush, so it survives maxAge-1 flushes.
func NewTtTable(maxEntries int, maxAge int) *TtTable {
	tt := &TtTable{
		log:        myLogging.GetLog(),
		data:       make(map[uint64]*TtEntry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
	}
	tt.log.Debug(out.Sprintf("TT created with max %d entries, max age %d", maxEntries, maxAge))
	tt.log.Debug(util.MemStat())
	return tt
}

// Probe returns the entry for the given key or nil. A hit refreshes the
// entry by decreasing its age.
func (tt *TtTable) Probe(key uint64) *TtEntry {
	tt.Stats.numberOfProbes++
	if e, found := tt.data[key]; found {
		if e.age > 0 {
			e.age--
		}
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result. An existing entry is overwritten iff the
// incoming depth is at least the stored depth; new keys are dropped once
// the table is full until the next flush makes room.
func (tt *TtTable) Put(key uint64, entryType EntryType, value Value, depth int, move Move, hasMove bool) {
	tt.Stats.numberOfPuts++
	if e, found := tt.data[key]; found {
		if depth >= e.Depth {
			tt.Stats.numberOfUpdates++
			e.Type = entryType
			e.Value = value
			e.Depth = depth
			e.Move = move
			e.HasMove = hasMove
			e.age = 0
		}
		return
	}
	if len(tt.data) >= tt.maxEntries {
		tt.Stats.numberOfDropped++
		return
	}
	tt.data[key] = &TtEntry{Type: entryType, Value: value, Depth: depth, Move: move, HasMove: hasMove}
}

// Flush ages every entry and evicts the ones whose age has reached the
// configured maximum. Called at the top of each root search.
func (tt *TtTable) Flush() {
	for key, e := range tt.data {
		e.age++
		if e.age >= tt.maxAge {
			delete(tt.data, key)
			tt.Stats.numberOfEvictions++
		}
	}
}

// Clear drops all entries and statistics.
func (tt *TtTable) Clear() {
	tt.data = make(map[uint64]*TtEntry)
	tt.Stats = TtStats{}
}

// Len returns the number of entries in the tt.
func (tt *TtTable) Len() int {
	return len(tt.data)
}

// Hashfull returns how full the transposition table is in permill.
func (tt *TtTable) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return (1000 * len(tt.data)) / tt.maxEntries
}

// String returns a string representation of this TtTable instance.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: entries %d of max %d (%d%%) puts %d updates %d dropped %d evictions %d "+
		"probes %d hits %d (%d%%) misses %d (%d%%)",
		len(tt.data), tt.maxEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfDropped, tt.Stats.numberOfEvictions,
		tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}
