package selection

import "context"

// GestureStart begins a gesture on an entry and returns its token.
func (e *Engine) GestureStart(originID int64) (string, error) {
	d, err := e.BeginDrag(originID)
	if err != nil {
		return "", err
	}
	return d.Token, nil
}

// GestureMove reports the target currently under the gesture. An empty or
// unknown id clears the hover target.
func (e *Engine) GestureMove(targetID string) error {
	if err := e.require("gesture move", Dragging); err != nil {
		return err
	}
	if t, ok := e.targets(targetID); ok && targetID != "" {
		e.hover = &t
	} else {
		e.hover = nil
	}
	return nil
}

// Hover returns the target the gesture is currently over.
func (e *Engine) Hover() (Target, bool) {
	if e.hover == nil {
		return Target{}, false
	}
	return *e.hover, true
}

// GestureEnd finishes the gesture over targetID. Ending over no target
// (empty or unknown id) cancels the drag.
func (e *Engine) GestureEnd(ctx context.Context, targetID string) (DropResult, error) {
	if err := e.require("gesture end", Dragging); err != nil {
		return DropResult{}, err
	}

	t, ok := e.targets(targetID)
	if targetID == "" || !ok {
		token := e.drag.Token
		if err := e.CancelDrag(); err != nil {
			return DropResult{}, err
		}
		return DropResult{Token: token, Applied: []int64{}, Failed: []int64{}, Cancelled: true}, nil
	}
	return e.DropOn(ctx, t)
}

// GestureCancel abandons the gesture. Same as CancelDrag.
func (e *Engine) GestureCancel() error {
	return e.CancelDrag()
}
