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

// Package zobrist implements the incremental 64-bit hash of a Hive board.
// The hash is the XOR of random keys for the side to move, the piece that
// moved last, and every (piece, tile, stack level) occupation. The hive
// lives in a fixed square window centered on the origin, so two positions
// that differ only by a global translation hash differently.
package zobrist

import "errors"

const (
	// BoardSize is the side length of the square hash window. The window is
	// centered on the origin; with 28 pieces the hive can never span more
	// than 28 tiles in any axial coordinate, so half the window is enough
	// padding for any reachable game.
	BoardSize = 64

	// StackSize is the maximum height of a stack, i.e. the highest stack
	// index plus one: a base piece carrying all four beetles and both
	// mosquitoes.
	StackSize = 7
)

// ErrHashOutOfRange signals that the hive walked outside the hash window.
// It is delivered via panic: a reachable game cannot trigger it, so hitting
// it means an engine bug rather than a recoverable condition.
var ErrHashOutOfRange = errors.New("position outside the zobrist board window")

// Hash holds the key tables and the running hash value of one board.
// The empty board hashes to 0. Every toggle is an involution, so replaying
// the toggles of a move in any order undoes it exactly.
type Hash struct {
	value        uint64
	turnKey      uint64
	lastMovedKey []uint64
	posKey       []uint64
}

// New creates the key tables for numPieces pieces from the given seed.
// The seed is an explicit argument so that test scenarios replay with
// identical hash values.
func New(numPieces int, seed uint64) *Hash {
	rnd := newRandom(seed)
	z := &Hash{
		turnKey:      rnd.rand64(),
		lastMovedKey: make([]uint64, numPieces),
		posKey:       make([]uint64, numPieces*BoardSize*BoardSize*StackSize),
	}
	for i := range z.lastMovedKey {
		z.lastMovedKey[i] = rnd.rand64()
	}
	for i := range z.posKey {
		z.posKey[i] = rnd.rand64()
	}
	return z
}

// Value returns the current hash value.
func (z *Hash) Value() uint64 {
	return z.value
}

// ToggleTurn flips the side-to-move key. Called once per ply.
func (z *Hash) ToggleTurn() {
	z.value ^= z.turnKey
}

// ToggleLastMoved flips the key of the piece identified by its index in
// the board's piece list. Exactly one last-moved key is part of the hash
// after the first move; the caller toggles the previous one out first.
func (z *Hash) ToggleLastMoved(pieceIndex int) {
	z.value ^= z.lastMovedKey[pieceIndex]
}

// TogglePiece flips the occupation key of a piece on the tile (q, r) at
// the given stack level. Panics with ErrHashOutOfRange if the tile falls
// outside the hash window.
func (z *Hash) TogglePiece(pieceIndex int, q int, r int, stack int) {
	qs := q + BoardSize/2
	rs := r + BoardSize/2
	if qs < 0 || qs >= BoardSize || rs < 0 || rs >= BoardSize || stack < 0 || stack >= StackSize {
		panic(ErrHashOutOfRange)
	}
	z.value ^= z.posKey[((pieceIndex*BoardSize+qs)*BoardSize+rs)*StackSize+stack]
}
