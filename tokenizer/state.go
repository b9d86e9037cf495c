package tokenizer

import "github.com/jcorbin/mdflow/charcode"

// kind discriminates the three State variants.
type kind int

const (
	kindOk kind = iota
	kindNok
	kindFn
)

// State is the result of running a state function for one step: either the
// construct has matched (Ok) and the parent should commit and continue,
// didn't match (Nok) and the parent should roll back or try an
// alternative, or needs another code fed to a continuation (Fn).
//
// This is a from-scratch, allocation-light rendering of the design notes'
// "tagged values of a closed enum, driven in a loop" — the source this
// spec distills from instead boxed a trait object continuation per step.
type State struct {
	kind kind
	fn   StateFn
}

// Ok reports construct success: the parent commits emitted events and
// continues from its own next state.
func Ok() State { return State{kind: kindOk} }

// Nok reports construct failure: the parent rolls back (under Attempt) or
// just reports failure (under Check).
func Nok() State { return State{kind: kindNok} }

// From wraps a continuation as a partial State.
func From(fn StateFn) State { return State{kind: kindFn, fn: fn} }

// IsOk reports whether the state is a terminal success.
func (s State) IsOk() bool { return s.kind == kindOk }

// IsNok reports whether the state is a terminal failure.
func (s State) IsNok() bool { return s.kind == kindNok }

// StateFn is one step of a construct's state machine. It receives the
// tokenizer and the next code, and returns the resulting State plus an
// optional "reconsume" code: when non-nil, the tokenizer feeds that exact
// code again to whatever state comes next, instead of advancing to a new
// one. This lets a construct that only discovers late that a character
// belongs to the *next* construct hand it back instead of consuming it.
type StateFn func(t *Tokenizer, code charcode.Code) (State, *charcode.Code)
