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

package board

import (
	. "github.com/crystal-spider/hivemind/internal/types"
)

// moveAccumulator collects generated moves, deduplicated but in a stable
// first-seen order so that validmoves output is deterministic.
type moveAccumulator struct {
	seen  map[Move]bool
	moves []Move
}

func newMoveAccumulator() *moveAccumulator {
	return &moveAccumulator{seen: map[Move]bool{}}
}

func (acc *moveAccumulator) add(m Move) {
	if !acc.seen[m] {
		acc.seen[m] = true
		acc.moves = append(acc.moves, m)
	}
}

// ValidMoves returns the legal moves of the side to move, cached until
// the next state change. An empty result means the only legal move is
// the pass move.
func (b *Board) ValidMoves() []Move {
	return b.ValidMovesFor(b.CurrentPlayerColor(), false)
}

// ValidMovesFor computes the legal moves for the given color. Pass force
// to bypass the cache, e.g. when evaluating the color not on the move.
func (b *Board) ValidMovesFor(color PlayerColor, force bool) []Move {
	if b.cacheOK[color] && !force {
		return b.movesCache[color]
	}
	acc := newMoveAccumulator()
	if b.state == NotStarted || b.state == InProgress {
		b.updateArticulationPoints()
		for _, bug := range b.bugs {
			if bug.Color != color {
				continue
			}
			switch {
			case b.turn == 0:
				// White's first move: any non queen bug, origin only
				if b.canPlayOnFirstMove(bug) {
					acc.add(NewPlacement(bug, Origin))
				}
			case b.turn == 1:
				// Black's first move: any non queen bug, around the origin
				if b.canPlayOnFirstMove(bug) {
					for d := Right; d < DirLength; d++ {
						acc.add(NewPlacement(bug, Origin.Neighbor(d)))
					}
				}
			case !b.inPlay[bug]:
				if b.canBugBePlayed(bug) && b.checkQueenPlacement(color, bug) {
					for _, placement := range b.validPlacements(color) {
						acc.add(NewPlacement(bug, placement))
					}
				}
			default:
				b.generateMovements(bug, acc)
			}
		}
	}
	b.movesCache[color] = acc.moves
	b.cacheOK[color] = true
	return acc.moves
}

// isValidMove reports whether the move is in the legal set of the side
// to move.
func (b *Board) isValidMove(move Move) bool {
	for _, m := range b.ValidMoves() {
		if m == move {
			return true
		}
	}
	return false
}

// CountMovesNearQueen returns the number of legal moves of the given
// color whose destination touches the enemy queen. Used by the mobility
// refinement of the evaluator.
func (b *Board) CountMovesNearQueen(color PlayerColor) int {
	count := 0
	for _, move := range b.ValidMovesFor(color, true) {
		for d := Right; d < DirLength; d++ {
			for _, bug := range b.BugsAt(move.Destination.Neighbor(d)) {
				if bug.Color == color.Flip() && bug.Type == Queen {
					count++
				}
			}
		}
	}
	return count
}

// ///////////////////////////////////////////////////////////
// Placements
// ///////////////////////////////////////////////////////////

// canPlayOnFirstMove allows any non queen bug that is first of its kind.
func (b *Board) canPlayOnFirstMove(bug Bug) bool {
	return bug.Type != Queen && b.canBugBePlayed(bug)
}

// canBugBePlayed enforces hand discipline: among same color same kind
// bugs still in hand only the one with the smallest copy index may be
// placed.
func (b *Board) canBugBePlayed(bug Bug) bool {
	for _, other := range b.bugs {
		if other.Color == bug.Color && other.Type == bug.Type && !b.inPlay[other] && other.ID < bug.ID {
			return false
		}
	}
	return true
}

// checkQueenPlacement enforces the queen-by-turn-4 rule: on the player's
// fourth move with the queen still in hand, only the queen may be placed.
// Movements of already placed pieces are not constrained by this rule.
func (b *Board) checkQueenPlacement(color PlayerColor, bug Bug) bool {
	return b.CurrentPlayerTurn() != 4 || b.QueenInPlay(color) || bug.Type == Queen
}

// validPlacements returns all empty tiles adjacent to a friendly top of
// stack bug and not adjacent to any enemy top of stack bug.
func (b *Board) validPlacements(color PlayerColor) []Position {
	seen := map[Position]bool{}
	var placements []Position
	for _, bug := range b.bugs {
		if bug.Color != color || !b.isBugOnTop(bug) {
			continue
		}
		pos := b.bugPos[bug]
		for d := Right; d < DirLength; d++ {
			neighbor := pos.Neighbor(d)
			if len(b.BugsAt(neighbor)) > 0 || seen[neighbor] {
				continue
			}
			valid := true
			for dd := Right; dd < DirLength; dd++ {
				if dd == d.Opposite() {
					continue
				}
				stack := b.BugsAt(neighbor.Neighbor(dd))
				if len(stack) > 0 && stack[len(stack)-1].Color != color {
					valid = false
					break
				}
			}
			if valid {
				seen[neighbor] = true
				placements = append(placements, neighbor)
			}
		}
	}
	return placements
}

// isBugOnTop checks if the given bug has been played and is at the top
// of its stack.
func (b *Board) isBugOnTop(bug Bug) bool {
	pos, ok := b.PositionOf(bug)
	if !ok {
		return false
	}
	stack := b.posToBugs[pos]
	return stack[len(stack)-1] == bug
}

// ///////////////////////////////////////////////////////////
// Movements
// ///////////////////////////////////////////////////////////

// generateMovements adds all movements of one placed bug. A bug may move
// only if it is the top of its stack, was not the bug moved in the
// previous ply and its queen is in play. A bug whose removal would split
// the hive cannot move, except that a stacked bug never splits the hive;
// a pinned Pillbug (or a Mosquito next to one) may still lift neighbors.
func (b *Board) generateMovements(bug Bug, acc *moveAccumulator) {
	if !b.QueenInPlay(bug.Color) || !b.isBugOnTop(bug) || !b.wasNotLastMoved(bug) {
		return
	}
	pos := b.bugPos[bug]
	if len(b.posToBugs[pos]) > 1 || b.canMoveWithoutBreakingHive(pos) {
		switch bug.Type {
		case Queen:
			b.slidingMoves(bug, pos, 1, acc)
		case Spider:
			b.slidingMoves(bug, pos, 3, acc)
		case Beetle:
			b.beetleMoves(bug, pos, false, acc)
		case Grasshopper:
			b.grasshopperMoves(bug, pos, acc)
		case Ant:
			b.slidingMoves(bug, pos, 0, acc)
		case Mosquito:
			b.mosquitoMoves(bug, pos, false, acc)
		case Ladybug:
			b.ladybugMoves(bug, pos, acc)
		case Pillbug:
			b.slidingMoves(bug, pos, 1, acc)
			b.pillbugSpecialMoves(pos, acc)
		}
	} else {
		switch bug.Type {
		case Mosquito:
			b.mosquitoMoves(bug, pos, true, acc)
		case Pillbug:
			b.pillbugSpecialMoves(pos, acc)
		}
	}
}

// wasNotLastMoved checks whether the given bug was not moved in the
// previous ply. The Pillbug may not move the piece that just moved.
func (b *Board) wasNotLastMoved(bug Bug) bool {
	last, ok := b.LastMoved()
	return !ok || last != bug
}

// canMoveWithoutBreakingHive reports whether removing the piece on the
// given tile keeps the hive connected, i.e. the tile is no articulation
// point of the occupation graph.
func (b *Board) canMoveWithoutBreakingHive(pos Position) bool {
	return !b.artPos[pos]
}

// slidingMoves generates slides of exactly depth steps, or of any
// positive length when depth is 0. Every step obeys the freedom to move
// rule checked by slideAllowed.
func (b *Board) slidingMoves(bug Bug, origin Position, depth int, acc *moveAccumulator) {
	type node struct {
		pos   Position
		depth int
	}
	unlimited := depth == 0
	visited := map[Position]bool{}
	pushed := map[node]bool{{origin, 0}: true}
	stack := []node{{origin, 0}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited[current.pos] = true
		// every popped (tile, depth) pair of matching depth is a
		// destination, even when the tile was already reached on a
		// shorter path; only the expansion is pruned by visited
		if current.pos != origin && (unlimited || current.depth == depth) {
			acc.add(NewMovement(bug, origin, current.pos))
		}
		if unlimited || current.depth < depth {
			for d := Right; d < DirLength; d++ {
				next := node{current.pos.Neighbor(d), current.depth + 1}
				if !visited[next.pos] && !pushed[next] && len(b.BugsAt(next.pos)) == 0 && b.slideAllowed(origin, current.pos, d) {
					pushed[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
}

// slideAllowed checks the freedom to move rule for one sliding step from
// position in the given direction: exactly one of the two tiles shared
// with the destination may be occupied (no gate, no open corner), and
// neither shared tile may be the origin of the whole slide.
func (b *Board) slideAllowed(origin Position, position Position, d Direction) bool {
	right := position.Neighbor(d.Clockwise())
	left := position.Neighbor(d.Anticlockwise())
	rightOccupied := len(b.BugsAt(right)) > 0
	leftOccupied := len(b.BugsAt(left)) > 0
	return rightOccupied != leftOccupied && right != origin && left != origin
}

// beetleMoves generates the six one step moves of a beetle, subject to
// the climbing gate. With virtual set the bug is counted on top of the
// origin stack, modelling an intermediate step of a longer move.
func (b *Board) beetleMoves(bug Bug, origin Position, virtual bool, acc *moveAccumulator) {
	for d := Right; d < DirLength; d++ {
		if dest, ok := b.beetleStep(origin, d, virtual); ok {
			acc.add(NewMovement(bug, origin, dest))
		}
	}
}

// beetleStep checks a single beetle step from origin in direction d.
// Heights follow the gate rule: the step is forbidden when both tiles
// along the shared edge are taller than both origin and destination, and
// a ground level step into fully empty surroundings would lose contact
// with the hive.
func (b *Board) beetleStep(origin Position, d Direction, virtual bool) (Position, bool) {
	height := len(b.BugsAt(origin)) - 1
	if virtual {
		height++
	}
	dest := origin.Neighbor(d)
	destHeight := len(b.BugsAt(dest))
	leftHeight := len(b.BugsAt(origin.Neighbor(d.Anticlockwise())))
	rightHeight := len(b.BugsAt(origin.Neighbor(d.Clockwise())))
	if height == 0 && destHeight == 0 && leftHeight == 0 && rightHeight == 0 {
		return Position{}, false
	}
	if destHeight < leftHeight && destHeight < rightHeight && height < leftHeight && height < rightHeight {
		return Position{}, false
	}
	return dest, true
}

// grasshopperMoves generates jumps over at least one contiguous occupied
// tile onto the first empty tile in each direction. Each jump steps from
// the running tile, not from the origin.
func (b *Board) grasshopperMoves(bug Bug, origin Position, acc *moveAccumulator) {
	for d := Right; d < DirLength; d++ {
		dest := origin.Neighbor(d)
		distance := 0
		for len(b.BugsAt(dest)) > 0 {
			dest = dest.Neighbor(d)
			distance++
		}
		if distance > 0 {
			acc.add(NewMovement(bug, origin, dest))
		}
	}
}

// mosquitoMoves generates the moves of a mosquito. Stacked it moves as a
// beetle; on the ground it copies the kind of each neighboring top bug,
// once per kind, gaining nothing from a neighboring mosquito. With
// specialOnly only the copied Pillbug lifts are produced, for a mosquito
// that is itself pinned.
func (b *Board) mosquitoMoves(bug Bug, origin Position, specialOnly bool, acc *moveAccumulator) {
	if len(b.posToBugs[origin]) > 1 {
		b.beetleMoves(bug, origin, false, acc)
		return
	}
	var copied [BtLength]bool
	for d := Right; d < DirLength; d++ {
		stack := b.BugsAt(origin.Neighbor(d))
		if len(stack) == 0 {
			continue
		}
		neighbor := stack[len(stack)-1]
		if copied[neighbor.Type] {
			continue
		}
		copied[neighbor.Type] = true
		if specialOnly {
			if neighbor.Type == Pillbug {
				b.pillbugSpecialMoves(origin, acc)
			}
			continue
		}
		switch neighbor.Type {
		case Queen:
			b.slidingMoves(bug, origin, 1, acc)
		case Spider:
			b.slidingMoves(bug, origin, 3, acc)
		case Beetle:
			b.beetleMoves(bug, origin, false, acc)
		case Grasshopper:
			b.grasshopperMoves(bug, origin, acc)
		case Ant:
			b.slidingMoves(bug, origin, 0, acc)
		case Ladybug:
			b.ladybugMoves(bug, origin, acc)
		case Pillbug:
			b.slidingMoves(bug, origin, 1, acc)
			b.pillbugSpecialMoves(origin, acc)
		case Mosquito:
			// two adjacent mosquitoes give no moves through each other
		}
	}
}

// ladybugMoves generates the three step moves of a ladybug: two steps on
// top of the hive followed by a descent onto an empty tile other than
// the origin.
func (b *Board) ladybugMoves(bug Bug, origin Position, acc *moveAccumulator) {
	for d1 := Right; d1 < DirLength; d1++ {
		first, ok := b.beetleStep(origin, d1, true)
		if !ok || len(b.BugsAt(first)) == 0 {
			continue
		}
		for d2 := Right; d2 < DirLength; d2++ {
			second, ok := b.beetleStep(first, d2, true)
			if !ok || len(b.BugsAt(second)) == 0 || second == origin {
				continue
			}
			for d3 := Right; d3 < DirLength; d3++ {
				final, ok := b.beetleStep(second, d3, true)
				if !ok || len(b.BugsAt(final)) > 0 || final == origin {
					continue
				}
				acc.add(NewMovement(bug, origin, final))
			}
		}
	}
}

// pillbugSpecialMoves generates the lifts of the pillbug (or of a
// mosquito copying one) sitting at origin: a non stacked, non last moved
// neighbor that could move without breaking the hive and whose climb over
// the pillbug is not gated may be dropped onto any empty neighbor whose
// descent is not gated either. Lifted moves are attributed to the lifted
// bug, so the last moved rule protects it on the next ply.
func (b *Board) pillbugSpecialMoves(origin Position, acc *moveAccumulator) {
	var drops []Position
	for d := Right; d < DirLength; d++ {
		if dest, ok := b.beetleStep(origin, d, true); ok && len(b.BugsAt(dest)) == 0 {
			drops = append(drops, dest)
		}
	}
	if len(drops) == 0 {
		return
	}
	for d := Right; d < DirLength; d++ {
		pos := origin.Neighbor(d)
		stack := b.BugsAt(pos)
		if len(stack) != 1 {
			continue
		}
		neighbor := stack[0]
		if !b.wasNotLastMoved(neighbor) || !b.canMoveWithoutBreakingHive(pos) {
			continue
		}
		// the climb onto the pillbug itself must not be gated
		if dest, ok := b.beetleStep(pos, d.Opposite(), false); !ok || dest != origin {
			continue
		}
		for _, drop := range drops {
			acc.add(NewMovement(neighbor, pos, drop))
		}
	}
}
