package batterm

import (
	"slices"
)

const MaxUndo = 64

type UndoFunc = func()
type UndoableFunction = func() UndoFunc

// UndoList remembers how to revert the latest MaxUndo actions.
type UndoList struct {
	actions []UndoFunc
}

// Dispatch runs f and keeps the undo function it returns. A nil undo
// function means f changed nothing.
func (u *UndoList) Dispatch(f UndoableFunction) {
	undo := f()
	if undo == nil {
		return
	}
	u.actions = append(u.actions, undo)
	if len(u.actions) > MaxUndo {
		u.actions = slices.Delete(u.actions, 0, len(u.actions)-MaxUndo)
	}
}

// UndoLastAction reverts the latest action and reports whether there was one.
func (u *UndoList) UndoLastAction() bool {
	if len(u.actions) == 0 {
		return false
	}
	last := u.actions[len(u.actions)-1]
	u.actions = u.actions[:len(u.actions)-1]
	last()
	return true
}

func (u *UndoList) Len() int {
	return len(u.actions)
}

func (u *UndoList) Clear() {
	u.actions = nil
}
