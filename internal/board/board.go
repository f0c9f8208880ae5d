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

// Package board implements the Hive game board: the position/stack maps,
// the move log, the legal move generator for all bug kinds of the Base
// game and the M/L/P expansions, the incremental Zobrist hash and the
// UHP text formats (GameString, TurnString, MoveString).
//
// A Board is mutated only through Play, PlayMove, Pass and Undo. It is
// not safe for concurrent mutation.
package board

import (
	. "github.com/crystal-spider/hivemind/internal/types"
	"github.com/crystal-spider/hivemind/internal/zobrist"
)

// zobristSeed seeds the key tables. Fixed so that test scenarios replay
// with identical hash values; NewSeeded accepts a different one.
const zobristSeed uint64 = 0x26c9f5b1e03a74dd

// logEntry is one applied ply: the move itself or a pass, together with
// the MoveString it was played as.
type logEntry struct {
	move       Move
	pass       bool
	moveString string
}

// Board holds the full game state. Create with New.
type Board struct {
	gameType GameType
	state    GameState
	turn     int
	log      []logEntry

	// posToBugs maps occupied tiles to their stack, bottom to top.
	posToBugs map[Position][]Bug
	// bugPos and inPlay together locate every piece of the game;
	// a piece missing from inPlay is still in its owner's hand.
	bugPos map[Bug]Position
	inPlay map[Bug]bool
	// bugs lists all pieces in creation order; bugIndex inverts it.
	// The index doubles as the piece index of the Zobrist tables.
	bugs     []Bug
	bugIndex map[Bug]int

	// artPos holds the articulation points of the occupation graph,
	// refreshed by the move generator.
	artPos map[Position]bool

	hash *zobrist.Hash

	// legal move cache per color, cleared on every state change
	movesCache [ColorLength][]Move
	cacheOK    [ColorLength]bool
}

// New creates a board from a GameString. The empty string yields a fresh
// Base game at White[1]. The stated moves are replayed; New fails if the
// replayed game disagrees with the stated turn or state.
func New(gameString string) (*Board, error) {
	return NewSeeded(gameString, zobristSeed)
}

// NewSeeded is New with an explicit Zobrist seed.
func NewSeeded(gameString string, seed uint64) (*Board, error) {
	gameType, state, turn, moveStrings, err := parseGameString(gameString)
	if err != nil {
		return nil, err
	}
	b := &Board{
		gameType:  gameType,
		state:     NotStarted,
		posToBugs: map[Position][]Bug{},
		bugPos:    map[Bug]Position{},
		inPlay:    map[Bug]bool{},
		bugIndex:  map[Bug]int{},
		artPos:    map[Position]bool{},
	}
	b.createPieces()
	b.hash = zobrist.New(len(b.bugs), seed)
	if turn != len(moveStrings) {
		return nil, parseErrorf(gameString, "expects %d moves but got %d", turn, len(moveStrings))
	}
	for _, ms := range moveStrings {
		if err := b.Play(ms); err != nil {
			return nil, err
		}
	}
	if b.turn != turn {
		return nil, parseErrorf(gameString, "has a wrong TurnString, should be %s[%d]", b.CurrentPlayerColor(), b.CurrentPlayerTurn())
	}
	if b.state != state {
		return nil, parseErrorf(gameString, "has a wrong GameStateString, should be %s", b.state)
	}
	return b, nil
}

// createPieces fills the piece list for the enabled expansions. The
// creation order is fixed: it defines the piece indices of the Zobrist
// tables and the enumeration order of the move generator.
func (b *Board) createPieces() {
	add := func(bug Bug) {
		b.bugIndex[bug] = len(b.bugs)
		b.bugs = append(b.bugs, bug)
	}
	for color := White; color < ColorLength; color++ {
		add(Bug{Color: color, Type: Queen, ID: 0})
		for id := uint8(1); id <= 2; id++ {
			add(Bug{Color: color, Type: Spider, ID: id})
			add(Bug{Color: color, Type: Beetle, ID: id})
			add(Bug{Color: color, Type: Grasshopper, ID: id})
			add(Bug{Color: color, Type: Ant, ID: id})
		}
		add(Bug{Color: color, Type: Grasshopper, ID: 3})
		add(Bug{Color: color, Type: Ant, ID: 3})
		if b.gameType.HasExpansion(GtM) {
			add(Bug{Color: color, Type: Mosquito, ID: 0})
		}
		if b.gameType.HasExpansion(GtL) {
			add(Bug{Color: color, Type: Ladybug, ID: 0})
		}
		if b.gameType.HasExpansion(GtP) {
			add(Bug{Color: color, Type: Pillbug, ID: 0})
		}
	}
}

// ///////////////////////////////////////////////////////////
// Queries
// ///////////////////////////////////////////////////////////

// GameType returns the game type the board was created with.
func (b *Board) GameType() GameType {
	return b.gameType
}

// State returns the current game state.
func (b *Board) State() GameState {
	return b.state
}

// Turn returns the zero based turn counter (== number of plies played).
func (b *Board) Turn() int {
	return b.turn
}

// GameOver reports whether the game has reached a terminal state.
func (b *Board) GameOver() bool {
	return b.state.IsFinished()
}

// CurrentPlayerColor returns the color of the side to move.
func (b *Board) CurrentPlayerColor() PlayerColor {
	return PlayerColor(b.turn % 2)
}

// CurrentPlayerTurn returns the one based turn number of the side to move.
func (b *Board) CurrentPlayerTurn() int {
	return 1 + b.turn/2
}

// QueenInPlay reports whether the given color's queen has been placed.
func (b *Board) QueenInPlay(color PlayerColor) bool {
	return b.inPlay[Bug{Color: color, Type: Queen, ID: 0}]
}

// CountQueenNeighbors returns how many of the six flat neighbors of the
// given color's queen are occupied, or 0 while the queen is in hand.
func (b *Board) CountQueenNeighbors(color PlayerColor) int {
	queenPos, ok := b.PositionOf(Bug{Color: color, Type: Queen, ID: 0})
	if !ok {
		return 0
	}
	count := 0
	for d := Right; d < DirLength; d++ {
		if len(b.BugsAt(queenPos.Neighbor(d))) > 0 {
			count++
		}
	}
	return count
}

// BugsAt returns the stack at the given position, bottom to top. The
// returned slice is the board's own storage and must not be modified.
func (b *Board) BugsAt(pos Position) []Bug {
	return b.posToBugs[pos]
}

// PositionOf returns the position of the given bug if it is in play.
func (b *Board) PositionOf(bug Bug) (Position, bool) {
	if !b.inPlay[bug] {
		return Position{}, false
	}
	return b.bugPos[bug], true
}

// Hash returns the current Zobrist hash value.
func (b *Board) Hash() uint64 {
	return b.hash.Value()
}

// LastMoved returns the bug moved in the immediately preceding ply.
// ok is false at turn 0 or when the preceding ply was a pass.
func (b *Board) LastMoved() (Bug, bool) {
	if len(b.log) == 0 || b.log[len(b.log)-1].pass {
		return BugNone, false
	}
	return b.log[len(b.log)-1].move.Bug, true
}

// Pieces returns all pieces of the game in creation order. The returned
// slice is the board's own storage and must not be modified.
func (b *Board) Pieces() []Bug {
	return b.bugs
}

// PieceIndex returns the stable index of a piece as used by the Zobrist
// tables and the policy projection.
func (b *Board) PieceIndex(bug Bug) int {
	return b.bugIndex[bug]
}

// ///////////////////////////////////////////////////////////
// State changing operations
// ///////////////////////////////////////////////////////////

// Play parses and applies a MoveString (or "pass"). It fails with
// ErrGameOver on a finished game, a *ParseError on malformed input and an
// *IllegalMoveError when the move is not in the current legal move set.
func (b *Board) Play(moveString string) error {
	if b.GameOver() {
		return ErrGameOver
	}
	move, pass, err := b.ParseMove(moveString)
	if err != nil {
		return err
	}
	if pass {
		return b.playEntry(logEntry{pass: true, moveString: PassMove})
	}
	return b.playEntry(logEntry{move: move, moveString: moveString})
}

// PlayMove applies an already parsed move. The move must stem from
// ValidMoves; anything else fails with an *IllegalMoveError.
func (b *Board) PlayMove(move Move) error {
	if b.GameOver() {
		return ErrGameOver
	}
	if !b.isValidMove(move) {
		return &IllegalMoveError{MoveString: b.StringifyMove(move)}
	}
	return b.playEntry(logEntry{move: move, moveString: b.StringifyMove(move)})
}

// Pass applies the pass move. It is legal only when the side to move has
// no other legal move.
func (b *Board) Pass() error {
	if b.GameOver() {
		return ErrGameOver
	}
	if len(b.ValidMoves()) > 0 {
		return &IllegalMoveError{MoveString: PassMove, Msg: "is not allowed when there are valid moves"}
	}
	return b.playEntry(logEntry{pass: true, moveString: PassMove})
}

// playEntry applies a validated ply: move log, piece maps, terminal state
// detection and the incremental hash update.
func (b *Board) playEntry(entry logEntry) error {
	if b.state == NotStarted {
		b.state = InProgress
	}
	b.turn++
	b.log = append(b.log, entry)
	b.invalidateMoveCaches()
	if !entry.pass {
		move := entry.move
		if !move.FromHand {
			origin := move.Origin
			stack := b.posToBugs[origin]
			b.posToBugs[origin] = stack[:len(stack)-1]
			if len(b.posToBugs[origin]) == 0 {
				delete(b.posToBugs, origin)
			}
		}
		b.posToBugs[move.Destination] = append(b.posToBugs[move.Destination], move.Bug)
		b.bugPos[move.Bug] = move.Destination
		b.inPlay[move.Bug] = true
		blackSurrounded := b.CountQueenNeighbors(Black) == 6
		whiteSurrounded := b.CountQueenNeighbors(White) == 6
		switch {
		case blackSurrounded && whiteSurrounded:
			b.state = Draw
		case blackSurrounded:
			b.state = WhiteWins
		case whiteSurrounded:
			b.state = BlackWins
		}
	}
	b.updateHash()
	return nil
}

// Undo pops the last n plies, reversing all effects including the hash
// toggles. It walks the state machine back to InProgress and, at turn 0,
// to NotStarted. Fails with ErrNothingToUndo.
func (b *Board) Undo(n int) error {
	if b.state == NotStarted || n > len(b.log) || n < 1 {
		return ErrNothingToUndo
	}
	if b.state.IsFinished() {
		b.state = InProgress
	}
	for i := 0; i < n; i++ {
		b.turn--
		// the toggles are involutions: replaying them on the not yet
		// reverted maps undoes the hash of the popped ply exactly
		b.updateHash()
		b.invalidateMoveCaches()
		entry := b.log[len(b.log)-1]
		b.log = b.log[:len(b.log)-1]
		if !entry.pass {
			move := entry.move
			stack := b.posToBugs[move.Destination]
			b.posToBugs[move.Destination] = stack[:len(stack)-1]
			if len(b.posToBugs[move.Destination]) == 0 {
				delete(b.posToBugs, move.Destination)
			}
			if move.FromHand {
				delete(b.inPlay, move.Bug)
				delete(b.bugPos, move.Bug)
			} else {
				b.bugPos[move.Bug] = move.Origin
				b.posToBugs[move.Origin] = append(b.posToBugs[move.Origin], move.Bug)
			}
		}
	}
	if b.turn == 0 {
		b.state = NotStarted
	}
	return nil
}

// updateHash applies the hash toggles of the newest log entry. It is
// called right after the maps have been updated on play, and right before
// they are reverted on undo; the XOR toggles cancel pairwise.
func (b *Board) updateHash() {
	b.hash.ToggleTurn()
	if len(b.log) > 1 {
		if prev := b.log[len(b.log)-2]; !prev.pass {
			b.hash.ToggleLastMoved(b.bugIndex[prev.move.Bug])
		}
	}
	if len(b.log) > 0 {
		if last := b.log[len(b.log)-1]; !last.pass {
			move := last.move
			b.hash.ToggleLastMoved(b.bugIndex[move.Bug])
			if !move.FromHand {
				// index of the stack level the piece vacated
				b.hash.TogglePiece(b.bugIndex[move.Bug], move.Origin.Q, move.Origin.R, len(b.posToBugs[move.Origin]))
			}
			b.hash.TogglePiece(b.bugIndex[move.Bug], move.Destination.Q, move.Destination.R, len(b.posToBugs[move.Destination])-1)
		}
	}
}

func (b *Board) invalidateMoveCaches() {
	b.cacheOK[White] = false
	b.cacheOK[Black] = false
}
