package project

import (
	"fmt"
	"strings"

	"github.com/paulamunoz06/gestionproyectos/pkg/apperrors"
)

// State is the lifecycle state of a project.
type State string

const (
	StateReceived    State = "RECEIVED"
	StateAccepted    State = "ACCEPTED"
	StateRejected    State = "REJECTED"
	StateInExecution State = "IN_EXECUTION"
	StateClosed      State = "CLOSED"
)

// Operation is a coordinator review action on a project.
type Operation string

const (
	OpAccept  Operation = "accept"
	OpReject  Operation = "reject"
	OpExecute Operation = "execute"
	OpClose   Operation = "close"
)

var transitions = map[State]map[Operation]State{
	StateReceived: {
		OpAccept: StateAccepted,
		OpReject: StateRejected,
	},
	StateAccepted: {
		OpExecute: StateInExecution,
	},
	StateInExecution: {
		OpClose: StateClosed,
	},
	// reject is idempotent once rejected
	StateRejected: {
		OpReject: StateRejected,
	},
}

// Transition returns the state reached by applying op to from.
func Transition(from State, op Operation) (State, error) {
	if to, ok := transitions[from][op]; ok {
		return to, nil
	}
	return from, ErrInvalidTransition(from, op)
}

// ErrInvalidTransition builds the error returned for an operation that is
// not legal in the given state.
func ErrInvalidTransition(from State, op Operation) error {
	return apperrors.New(apperrors.KindInvalidTransition,
		fmt.Sprintf("cannot %s a project in state %s", op, from))
}

// IsTerminal reports whether no operation can move the project out of s.
func (s State) IsTerminal() bool {
	return s == StateRejected || s == StateClosed
}

func (s State) Valid() bool {
	switch s {
	case StateReceived, StateAccepted, StateRejected, StateInExecution, StateClosed:
		return true
	}
	return false
}

// ParseState canonicalizes a state name as received over the wire or from a
// REST body. Matching is case-insensitive and accepts spaces or dashes.
func ParseState(value string) (State, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	s := State(normalized)
	return s, s.Valid()
}

// OperationFor maps a requested target state to the operation that reaches
// it. RECEIVED has no operation.
func OperationFor(target State) (Operation, bool) {
	switch target {
	case StateAccepted:
		return OpAccept, true
	case StateRejected:
		return OpReject, true
	case StateInExecution:
		return OpExecute, true
	case StateClosed:
		return OpClose, true
	}
	return "", false
}

func ParseOperation(value string) (Operation, bool) {
	op := Operation(strings.ToLower(strings.TrimSpace(value)))
	switch op {
	case OpAccept, OpReject, OpExecute, OpClose:
		return op, true
	}
	return "", false
}
