// Package selection implements multi-select and drag-to-tag for the
// playsheet.
//
// The Engine is a three-state machine:
//
//	Idle ──EnterSelectionMode──▶ Selecting ──ExitSelectionMode──▶ Idle
//	  │                             │
//	  └──────BeginDrag──▶ Dragging ◀┘
//	                        │
//	                        ├─DropOn─▶ Idle | Selecting
//	                        └─CancelDrag─▶ prior state, prior marks
//
// Dragging an entry while others are marked folds it into the batch; the
// drop then unions the target's tag into every entry of the batch. Each
// entry is updated independently: a failure on one entry does not undo the
// entries already tagged.
//
// The gesture methods (GestureStart, GestureMove, GestureEnd,
// GestureCancel) express the same machine without reference to an input
// device: a pointer, touch or keyboard front end maps its own events onto
// them and names drop targets by id.
//
// An Engine is not safe for concurrent use.
package selection
