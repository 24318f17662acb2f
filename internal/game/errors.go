package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIllegalAction is returned when a strategy plays outside the offered
// action set. Legality is a correctness invariant, not input validation:
// the hand aborts, there is no silent recovery.
var ErrIllegalAction = errors.New("illegal action")

// IllegalActionError carries the offending action and what was offered
type IllegalActionError struct {
	Player  string
	Action  Action
	Offered []ActionKind
}

func (e *IllegalActionError) Error() string {
	offered := make([]string, len(e.Offered))
	for i, k := range e.Offered {
		offered[i] = k.String()
	}
	return fmt.Sprintf("illegal action by %s: %s (offered: %s)", e.Player, e.Action.Kind, strings.Join(offered, ", "))
}

func (e *IllegalActionError) Unwrap() error {
	return ErrIllegalAction
}

// InvariantError signals a programming defect inside the engine (chip
// conservation broken, negative wager, folded contestant). It is raised as
// a panic with a full state dump; it must never surface during correct
// operation.
type InvariantError struct {
	Reason string
	Dump   string
}

func (e *InvariantError) Error() string {
	if e.Dump == "" {
		return fmt.Sprintf("invariant violated: %s", e.Reason)
	}
	return fmt.Sprintf("invariant violated: %s\n%s", e.Reason, e.Dump)
}

func newInvariantError(format string, args ...interface{}) *InvariantError {
	return &InvariantError{Reason: fmt.Sprintf(format, args...)}
}
