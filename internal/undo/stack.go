// Package undo implements the bounded, branch-truncating history of
// per-layer tile-grid snapshots that Canvas uses for undo/redo.
//
// Grounded on the capped-slice snapshot stack idiom (push/pop over a
// maxStates-bounded slice with drop-oldest eviction) common to simple
// tile editors; generalized here to store one grid snapshot per layer
// per state, and to track a current index rather than always popping
// the tail, so redo can walk forward again after an undo.
package undo

import "github.com/Saking-tech/AI-Paint/internal/tilegrid"

// State is one entry of the history: a description, the moment it was
// recorded, and a deep copy of every layer's pixel grid at that moment,
// in layer order. A state carries no layer metadata (name, opacity,
// blend mode); undo restores pixel content only.
type State struct {
	Description string
	Timestamp   int64
	Snapshots   []*tilegrid.Grid
}

// Stack is the bounded undo/redo history. The zero value is not usable;
// use New.
type Stack struct {
	maxStates int
	states    []*State
	current   int
	now       func() int64
}

// New creates a Stack retaining at most maxStates entries. now supplies
// the timestamp recorded with each pushed state.
func New(maxStates int, now func() int64) *Stack {
	return &Stack{maxStates: maxStates, now: now}
}

// CanUndo reports whether Pop has a prior state to return to.
func (s *Stack) CanUndo() bool { return s.current > 0 }

// CanRedo reports whether Redo has a forward state to return to.
func (s *Stack) CanRedo() bool { return s.current < len(s.states) }

// StateCount returns the number of retained states.
func (s *Stack) StateCount() int { return len(s.states) }

// CurrentIndex returns the stack's current index into its retained
// states.
func (s *Stack) CurrentIndex() int { return s.current }

// Push records a new state from layers, a snapshot of each layer's
// current pixel grid in order, deep-copied via Grid.Clone. If the
// current index sits before the end of the history, the tail is
// truncated first, pruning any redo branch. Once the retained count
// exceeds maxStates, the oldest entries are evicted and current is
// decremented by the number evicted, saturating at 0.
func (s *Stack) Push(description string, layers []*tilegrid.Grid) {
	if s.current < len(s.states) {
		s.states = s.states[:s.current]
	}

	snapshots := make([]*tilegrid.Grid, len(layers))
	for i, g := range layers {
		snapshots[i] = g.Clone()
	}

	s.states = append(s.states, &State{
		Description: description,
		Timestamp:   s.now(),
		Snapshots:   snapshots,
	})
	s.current = len(s.states)

	if s.maxStates > 0 {
		if over := len(s.states) - s.maxStates; over > 0 {
			s.states = s.states[over:]
			s.current -= over
			if s.current < 0 {
				s.current = 0
			}
		}
	}
}

// Pop performs an undo: it requires CanUndo, decrements the current
// index, and returns the snapshots at the new current index. The
// history is not drained — repeated Pop calls walk further back.
// Calling Pop when !CanUndo is a no-op returning nil.
func (s *Stack) Pop() []*tilegrid.Grid {
	if !s.CanUndo() {
		return nil
	}
	s.current--
	return s.states[s.current].Snapshots
}

// Redo requires CanRedo; it returns the snapshots at the current index
// and then advances it. Calling Redo when !CanRedo is a no-op returning
// nil.
func (s *Stack) Redo() []*tilegrid.Grid {
	if !s.CanRedo() {
		return nil
	}
	snaps := s.states[s.current].Snapshots
	s.current++
	return snaps
}

// UndoDescription returns the description of the state Pop would
// return to, or "" if there is none.
func (s *Stack) UndoDescription() string {
	if !s.CanUndo() {
		return ""
	}
	return s.states[s.current-1].Description
}

// RedoDescription returns the description of the state Redo would
// return to, or "" if there is none.
func (s *Stack) RedoDescription() string {
	if !s.CanRedo() {
		return ""
	}
	return s.states[s.current].Description
}

// Clear empties the history and resets the current index to 0.
func (s *Stack) Clear() {
	s.states = nil
	s.current = 0
}

// SetMaxStates updates the retention ceiling. It does not immediately
// trim existing history; the new ceiling takes effect on the next Push.
func (s *Stack) SetMaxStates(n int) {
	s.maxStates = n
}
