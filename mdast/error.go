package mdast

import (
	"fmt"

	"github.com/jcorbin/mdflow/token"
)

// Error reports a problem building an AST: an event log that doesn't
// match the shape the builder expects for its Type. The render functions
// return no error. It carries the offending
// construct so callers can report it without string-matching the message,
// mirroring cmd/soc/store.go's small sentinel-error style generalized to a
// struct with Unwrap.
type Error struct {
	Construct token.Type
	Message   string
	Err       error
}

func (e *Error) Error() string {
	if e.Construct == 0 {
		return fmt.Sprintf("mdast: %s", e.Message)
	}
	return fmt.Sprintf("mdast: %v: %s", e.Construct, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }
