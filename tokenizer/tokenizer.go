// Package tokenizer implements the flow tokenizer's kernel: the event log,
// position cursor, construct-name stack, and the consume/enter/exit
// primitives, plus the attempt/check speculation protocol that drives all
// ambiguous construct selection (spec.md §4.2).
package tokenizer

import (
	"fmt"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
)

// Resolver is a post-pass that rewrites the event log after tokenization,
// for constructs that require look-behind to recognize (the setext heading
// resolver is the only core example; see the resolve package).
type Resolver func(t *Tokenizer) error

// InvariantError reports a violated tokenizer invariant: a stack
// underflow or type mismatch on Exit, or a snapshot that failed to
// restore cleanly. These indicate a bug in a construct's state machine,
// never a property of the input (spec.md §7: the tokenizer cannot fail on
// input).
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return "tokenizer: invariant violated: " + e.Message }

// Tokenizer owns the mutable state of one tokenization run: the decoded
// code array, the current cursor, the append-only event log, the
// construct-name stack, and the resolver list run once tokenization
// reaches EOF.
//
// It is not safe to use a Tokenizer from parallel goroutines; like
// scandown's BlockStack, its use case is a single synchronous drive loop
// (Feed).
type Tokenizer struct {
	Codes []charcode.Code

	point charcode.Point
	index int

	Events []token.Event

	tokenStack    []token.Type
	constructName []Name

	Resolvers []Resolver
}

// New returns a Tokenizer ready to scan codes from the start of input.
func New() *Tokenizer {
	return &Tokenizer{point: charcode.Start}
}

// Point returns the tokenizer's current position.
func (t *Tokenizer) Point() charcode.Point { return t.point }

// Index returns the tokenizer's current index into Codes.
func (t *Tokenizer) Index() int { return t.index }

// Depth returns how many Enter spans are currently open.
func (t *Tokenizer) Depth() int { return len(t.tokenStack) }

// ConstructStack returns the current construct-name stack, read-only. Its
// values are consulted by the safe package to decide what needs escaping.
func (t *Tokenizer) ConstructStack() []Name { return t.constructName }

// PushConstruct pushes name onto the construct-name stack. Constructs that
// need to be visible to safe() push their name on entry and must pop it
// (via PopConstruct) before returning Ok or Nok.
func (t *Tokenizer) PushConstruct(name Name) { t.constructName = append(t.constructName, name) }

// PopConstruct pops the most recently pushed construct name, which must
// equal name.
func (t *Tokenizer) PopConstruct(name Name) {
	n := len(t.constructName)
	if n == 0 || t.constructName[n-1] != name {
		panic(&InvariantError{Message: fmt.Sprintf("PopConstruct(%v): stack top is %v", name, t.top())})
	}
	t.constructName = t.constructName[:n-1]
}

func (t *Tokenizer) top() Name {
	if n := len(t.constructName); n > 0 {
		return t.constructName[n-1]
	}
	return noName
}

// Enter appends an Enter(typ) event at the current point and pushes typ
// onto the token stack.
func (t *Tokenizer) Enter(typ token.Type) {
	t.Events = append(t.Events, token.Event{Kind: token.Enter, Type: typ, Point: t.point, Index: t.index})
	t.tokenStack = append(t.tokenStack, typ)
}

// Exit appends an Exit(typ) event; typ must match the most recent
// unmatched Enter on the token stack.
func (t *Tokenizer) Exit(typ token.Type) {
	n := len(t.tokenStack)
	if n == 0 || t.tokenStack[n-1] != typ {
		var top token.Type
		if n > 0 {
			top = t.tokenStack[n-1]
		}
		panic(&InvariantError{Message: fmt.Sprintf("Exit(%v): token stack top is %v", typ, top)})
	}
	t.tokenStack = t.tokenStack[:n-1]
	t.Events = append(t.Events, token.Event{Kind: token.Exit, Type: typ, Point: t.point, Index: t.index})
}

// Consume advances the cursor past code, which must be the code at the
// tokenizer's current index. It must be preceded by an Enter and followed,
// eventually, by an Exit.
func (t *Tokenizer) Consume(code charcode.Code) {
	t.point = t.point.Advance(code)
	if !code.IsEOF() {
		t.index++
	}
}

// PeekCode returns the code at the tokenizer's current index, or EOF if
// the index is at or past the end of Codes.
func (t *Tokenizer) PeekCode() charcode.Code {
	if t.index < len(t.Codes) {
		return t.Codes[t.index]
	}
	return charcode.EOF
}

// Resolve runs every registered Resolver in order over the completed event
// log. Feed must have already reached a terminal Ok state; running
// resolvers mid-tokenization is not supported, since they assume the log
// they see is the whole of it.
func (t *Tokenizer) Resolve() error {
	for _, r := range t.Resolvers {
		if err := r(t); err != nil {
			return err
		}
	}
	return nil
}

// snapshot is the state Attempt/Check capture to enable rollback: event
// log length, position, code index, construct-name stack length, and
// token stack length.
type snapshot struct {
	eventsLen int
	point     charcode.Point
	index     int
	namesLen  int
	stackLen  int
}

func (t *Tokenizer) snapshot() snapshot {
	return snapshot{
		eventsLen: len(t.Events),
		point:     t.point,
		index:     t.index,
		namesLen:  len(t.constructName),
		stackLen:  len(t.tokenStack),
	}
}

// restore rolls the tokenizer back to a previously captured snapshot. It
// is an invariant (checked here, not just in debug builds, since this is
// cheap) that the event log, construct-name stack, and token stack only
// ever shrink back to where they were — never mutate in place, never grow
// past a rollback's removed suffix and leave stale entries. A construct
// that leaves an unmatched Enter open on Nok (growing the token stack
// without a matching Exit) is a bug in that construct, not in the kernel.
func (t *Tokenizer) restore(s snapshot) {
	if len(t.Events) < s.eventsLen || len(t.constructName) < s.namesLen || len(t.tokenStack) < s.stackLen {
		panic(&InvariantError{Message: "restore: snapshot is ahead of current state"})
	}
	t.Events = t.Events[:s.eventsLen]
	t.point = s.point
	t.index = s.index
	t.constructName = t.constructName[:s.namesLen]
	t.tokenStack = t.tokenStack[:s.stackLen]
}
