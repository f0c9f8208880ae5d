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

package transpositiontable

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystal-spider/hivemind/internal/config"
	. "github.com/crystal-spider/hivemind/internal/types"
)

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	code := m.Run()
	os.Exit(code)
}

func testMove() Move {
	return NewPlacement(Bug{Color: White, Type: Spider, ID: 1}, Origin)
}

func TestPutAndProbe(t *testing.T) {
	tt := NewTtTable(100, 3)
	assert.Nil(t, tt.Probe(42))

	tt.Put(42, Exact, 17, 3, testMove(), true)
	entry := tt.Probe(42)
	require.NotNil(t, entry)
	assert.Equal(t, Exact, entry.Type)
	assert.EqualValues(t, 17, entry.Value)
	assert.Equal(t, 3, entry.Depth)
	assert.True(t, entry.HasMove)
	assert.Equal(t, testMove(), entry.Move)
	assert.Equal(t, 1, tt.Len())
}

func TestDepthPreferredReplacement(t *testing.T) {
	tt := NewTtTable(100, 3)
	tt.Put(42, Exact, 17, 5, testMove(), true)

	// shallower result does not overwrite
	tt.Put(42, LowerBound, 99, 3, testMove(), true)
	entry := tt.Probe(42)
	require.NotNil(t, entry)
	assert.EqualValues(t, 17, entry.Value)
	assert.Equal(t, 5, entry.Depth)

	// same depth overwrites
	tt.Put(42, UpperBound, 23, 5, testMove(), true)
	entry = tt.Probe(42)
	require.NotNil(t, entry)
	assert.EqualValues(t, 23, entry.Value)

	// deeper overwrites
	tt.Put(42, Exact, 55, 7, testMove(), true)
	entry = tt.Probe(42)
	require.NotNil(t, entry)
	assert.EqualValues(t, 55, entry.Value)
	assert.Equal(t, 7, entry.Depth)
}

func TestFlushAgesAndEvicts(t *testing.T) {
	tt := NewTtTable(100, 2)
	tt.Put(1, Exact, 1, 1, testMove(), true)
	tt.Put(2, Exact, 2, 1, testMove(), true)

	tt.Flush()
	assert.Equal(t, 2, tt.Len())

	// a probe refreshes entry 1, entry 2 ages out on the next flush
	require.NotNil(t, tt.Probe(1))
	tt.Flush()
	assert.NotNil(t, tt.Probe(1))
	assert.Nil(t, tt.Probe(2))
}

func TestBoundedSize(t *testing.T) {
	tt := NewTtTable(2, 3)
	tt.Put(1, Exact, 1, 1, testMove(), true)
	tt.Put(2, Exact, 2, 1, testMove(), true)
	// table full: new keys are dropped, existing keys still update
	tt.Put(3, Exact, 3, 1, testMove(), true)
	assert.Equal(t, 2, tt.Len())
	assert.Nil(t, tt.Probe(3))
	tt.Put(1, Exact, 11, 2, testMove(), true)
	entry := tt.Probe(1)
	require.NotNil(t, entry)
	assert.EqualValues(t, 11, entry.Value)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(100, 3)
	tt.Put(1, Exact, 1, 1, testMove(), true)
	tt.Clear()
	assert.Equal(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(1))
}
