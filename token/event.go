package token

import (
	"fmt"

	"github.com/jcorbin/mdflow/charcode"
)

// Kind discriminates whether an Event opens or closes a span.
type Kind int

// Kind constants.
const (
	Enter Kind = iota
	Exit
)

func (k Kind) String() string {
	if k == Enter {
		return "Enter"
	}
	return "Exit"
}

// Event is one boundary of a typed span in the tokenizer's output log. An
// Enter(T) is always later matched by an Exit(T) with the identical Type;
// between them the token stack of open spans is well formed, and the
// cursor strictly advances except where a construct explicitly allows a
// zero-length span (an empty ATX heading's HeadingAtxText).
//
// Previous and Next are populated only on ChunkContent events: a
// paragraph interrupted by intervening whitespace (but not a terminating
// construct) is split across several ChunkContent spans, linked into a
// single logical string by these indices into the owning Event slice.
type Event struct {
	Kind  Kind
	Type  Type
	Point charcode.Point
	Index int

	Previous *int
	Next     *int
}

func (e Event) String() string {
	return fmt.Sprintf("%v(%v)@%v", e.Kind, e.Type, e.Point)
}
