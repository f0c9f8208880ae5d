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

// Package util provides some additional useful
// functions not available in GO
package util

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Nps calculates nodes per second from an uint64 and a duration
// allows zero duration by adding one nanosecond
func Nps(nodes uint64, duration time.Duration) uint64 {
	return uint64(int64(nodes) * time.Second.Nanoseconds() / (duration.Nanoseconds() + 1))
}

// MemStat returns a string with information about the applications memory usage and GC activity
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return out.Sprintf("Alloc: %d TotalAlloc: %d HeapAlloc: %d HeapObjects: %d NumGC: %d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats performs a forced garbage collection measuring
// duration and pre- and post-memory statistics.
func GcWithStats() string {
	os := strings.Builder{}
	os.WriteString(fmt.Sprintf("Mem stats: %s ", MemStat()))
	startGC := time.Now()
	runtime.GC()
	elapsed := time.Since(startGC)
	os.WriteString(fmt.Sprintf("GC took: %d ms ", elapsed.Milliseconds()))
	os.WriteString(fmt.Sprintf("Mem stats: %s", MemStat()))
	return os.String()
}
