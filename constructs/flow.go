// Flow dispatcher: the top-level state machine that selects among the
// leaf constructs in this package and falls back to paragraph
// accumulation when none match. Ported from
// original_source/src/content/flow.rs's start/before/content/
// continuation_construct* states, collapsed onto this package's
// bulk-lookahead constructs instead of flow.rs's own per-line
// byte-slicing.
package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/resolve"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// Dispatcher holds the construct-enablement configuration the flow state
// machine reads on every decision point.
type Dispatcher struct {
	Enabled Enabled
}

// NewDispatcher returns a Dispatcher with the given construct set.
func NewDispatcher(enabled Enabled) *Dispatcher {
	return &Dispatcher{Enabled: enabled}
}

// Start is the flow state machine's entry point and its "between blocks"
// continuation: at EOF it resolves the tokenizer Ok; otherwise it tries
// every enabled leaf construct in turn, re-entering itself on a match and
// falling back to paragraph accumulation when none match.
func (d *Dispatcher) Start(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
	if t.PeekCode().IsEOF() {
		return tokenizer.Ok(), nil
	}
	return t.AttemptN(leafCandidates(d.Enabled), func(ok bool) tokenizer.StateFn {
		if ok {
			return d.Start
		}
		return d.paragraph
	})(t, code)
}

// paragraph opens a Content span and begins accumulating ChunkContent
// lines, stopping at a blank line, EOF, or a successful Check of one of
// the interrupting constructs (flow.rs's
// continuation_construct_after_prefix candidate list).
func (d *Dispatcher) paragraph(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
	t.PushConstruct(tokenizer.Phrasing)
	t.Enter(token.Content)

	prevChunkEnter := -1

	var chunk tokenizer.StateFn
	var end tokenizer.StateFn
	var interrupt func(t *tokenizer.Tokenizer, candidates []tokenizer.StateFn) tokenizer.StateFn

	chunk = func(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
		codes := t.Codes
		i := t.Index()
		lineEndIdx := lineEnd(codes, i)
		if lineEndIdx > i {
			enterIdx := len(t.Events)
			t.Enter(token.ChunkContent)
			consumeThrough(t, lineEndIdx)
			t.Exit(token.ChunkContent)
			if prevChunkEnter >= 0 {
				linkChunks(t, prevChunkEnter, enterIdx)
			}
			prevChunkEnter = enterIdx
		}

		if t.Index() >= len(codes) {
			return end(t, code)
		}
		consumeLineEnding(t)
		if t.Index() >= len(codes) {
			return end(t, code)
		}

		return t.Check(BlankLine, func(blank bool) tokenizer.StateFn {
			if blank {
				return end
			}
			return interrupt(t, interruptCandidates(d.Enabled))
		})(t, code)
	}

	// interrupt checks each candidate in order; the first match ends the
	// paragraph, and none matching continues it with another chunk.
	interrupt = func(t *tokenizer.Tokenizer, candidates []tokenizer.StateFn) tokenizer.StateFn {
		if len(candidates) == 0 {
			return chunk
		}
		return t.Check(candidates[0], func(ok bool) tokenizer.StateFn {
			if ok {
				return end
			}
			return interrupt(t, candidates[1:])
		})
	}

	end = func(t *tokenizer.Tokenizer, code charcode.Code) (tokenizer.State, *charcode.Code) {
		t.Exit(token.Content)
		t.PopConstruct(tokenizer.Phrasing)
		return d.Start(t, code)
	}

	return chunk(t, code)
}

// linkChunks splices two ChunkContent spans of the same paragraph
// together, recording each one's Enter event index in the other's
// Next/Previous field.
func linkChunks(t *tokenizer.Tokenizer, prevEnterIdx, enterIdx int) {
	pi, ei := prevEnterIdx, enterIdx
	t.Events[prevEnterIdx].Next = &ei
	t.Events[enterIdx].Previous = &pi
}

// Tokenize runs the flow dispatcher over data start-to-finish with every
// construct enabled and returns the resulting tokenizer, or an error if an
// internal invariant was violated.
func Tokenize(data []byte) (*tokenizer.Tokenizer, error) {
	return TokenizeWith(data, DefaultEnabled())
}

// TokenizeWith is Tokenize with an explicit construct set.
func TokenizeWith(data []byte, enabled Enabled) (*tokenizer.Tokenizer, error) {
	codes := charcode.Decode(data)
	t := tokenizer.New()
	t.Resolvers = append(t.Resolvers, resolve.SetextHeading)
	d := NewDispatcher(enabled)
	if _, err := t.Feed(codes, d.Start, true); err != nil {
		return nil, err
	}
	if err := t.Resolve(); err != nil {
		return nil, err
	}
	return t, nil
}
