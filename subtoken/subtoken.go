// Package subtoken implements the flow tokenizer's sub-tokenization pass:
// re-feeding ChunkContent ranges through a caller-supplied inner tokenizer
// and splicing the result back into the outer event log. The inline
// grammar itself (emphasis, links, code spans) is an external collaborator
// per spec.md §1 — this package only provides the generic machinery that
// any inner tokenizer plugs into, the way the flow core's ChunkContent
// spans are documented to be opaque to it.
package subtoken

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// InnerTokenizer tokenizes one chunk's worth of codes in isolation,
// returning events whose Index fields are local to codes (0-based).
type InnerTokenizer func(codes []charcode.Code) ([]token.Event, error)

// Run splices inner-tokenized content into every ChunkContent span in
// t.Events, between its Enter and Exit — never replacing or reordering
// that outer pair, per spec.md §5's ordering guarantee. It iterates to a
// fixed point: if a spliced pass introduces further ChunkContent spans (an
// inner tokenizer that itself defers some content), a following pass
// processes those too, stopping once a pass splices nothing.
//
// A run of chunks linked via Previous/Next (a paragraph's continuation
// lines, per constructs/flow.go's linkChunks) is not tokenized line by
// line: per spec.md §4.5 the linked chain's code ranges are concatenated
// into one contiguous buffer, run through inner once, and the resulting
// events are split back across the original chunks by remapping each
// one's Index into whichever original chunk's range it falls in.
func Run(t *tokenizer.Tokenizer, inner InnerTokenizer) error {
	for {
		n, err := pass(t, inner)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
	}
}

type splice struct {
	at     int // insert before this old index
	events []token.Event
}

func pass(t *tokenizer.Tokenizer, inner InnerTokenizer) (int, error) {
	events := t.Events
	var splices []splice

	for i := 0; i < len(events); i++ {
		e := events[i]
		if e.Kind != token.Enter || e.Type != token.ChunkContent {
			continue
		}
		if e.Previous != nil {
			continue // part of a chain spliced when its head is reached
		}

		if e.Next == nil {
			exitIdx := i + 1 // Enter/Exit(ChunkContent) are always adjacent
			if exitIdx >= len(events) || events[exitIdx].Kind != token.Exit || events[exitIdx].Type != token.ChunkContent {
				continue
			}
			s, err := spliceChunk(t, e, exitIdx, inner)
			if err != nil {
				return 0, err
			}
			if s != nil {
				splices = append(splices, *s)
			}
			continue
		}

		chainSplices, err := spliceChain(t, events, i, inner)
		if err != nil {
			return 0, err
		}
		splices = append(splices, chainSplices...)
	}

	if len(splices) == 0 {
		return 0, nil
	}
	t.Events = applySplices(events, splices)
	return len(splices), nil
}

// spliceChunk runs inner over a single unlinked ChunkContent span's codes
// and returns a splice inserting the result before its Exit, or nil if
// there is nothing to splice.
func spliceChunk(t *tokenizer.Tokenizer, enter token.Event, exitIdx int, inner InnerTokenizer) (*splice, error) {
	base := enter.Index
	local := t.Codes[enter.Index:t.Events[exitIdx].Index]
	if len(local) == 0 {
		return nil, nil
	}
	innerEvents, err := inner(local)
	if err != nil {
		return nil, err
	}
	if len(innerEvents) == 0 {
		return nil, nil
	}
	for j := range innerEvents {
		innerEvents[j].Index += base
		innerEvents[j].Point = enter.Point
	}
	return &splice{at: exitIdx, events: innerEvents}, nil
}

// chunkSpan is one link of a Previous/Next chain, described in t.Codes
// terms.
type chunkSpan struct {
	enterIdx, exitIdx int
	start, end        int
	point             charcode.Point
}

// spliceChain walks a chain of linked ChunkContent spans starting at the
// head (headIdx, with Previous == nil), concatenates their code ranges
// into one buffer, runs inner once over the concatenation, and splits the
// result back into one splice per original span by remapping each inner
// event's Index from the concatenated buffer back to its originating
// span's absolute position. It returns nil if the chain's shape is
// inconsistent (a broken Enter/Exit pairing) or inner has nothing to add.
func spliceChain(t *tokenizer.Tokenizer, events []token.Event, headIdx int, inner InnerTokenizer) ([]splice, error) {
	var spans []chunkSpan
	idx := headIdx
	for {
		e := events[idx]
		exitIdx := idx + 1
		if exitIdx >= len(events) || events[exitIdx].Kind != token.Exit || events[exitIdx].Type != token.ChunkContent {
			return nil, nil
		}
		spans = append(spans, chunkSpan{enterIdx: idx, exitIdx: exitIdx, start: e.Index, end: events[exitIdx].Index, point: e.Point})
		if e.Next == nil {
			break
		}
		idx = *e.Next
	}

	offsets := make([]int, len(spans))
	total := 0
	for i, s := range spans {
		offsets[i] = total
		total += s.end - s.start
	}
	if total == 0 {
		return nil, nil
	}

	concatenated := make([]charcode.Code, 0, total)
	for _, s := range spans {
		concatenated = append(concatenated, t.Codes[s.start:s.end]...)
	}

	innerEvents, err := inner(concatenated)
	if err != nil {
		return nil, err
	}
	if len(innerEvents) == 0 {
		return nil, nil
	}

	groups := make([][]token.Event, len(spans))
	for _, ie := range innerEvents {
		seg := segmentFor(offsets, ie.Index)
		s := spans[seg]
		ie.Index = s.start + (ie.Index - offsets[seg])
		ie.Point = s.point
		groups[seg] = append(groups[seg], ie)
	}

	var out []splice
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		out = append(out, splice{at: spans[i].exitIdx, events: g})
	}
	return out, nil
}

// segmentFor returns the index of the span that owns concatenated-buffer
// offset idx: the last span whose start offset is <= idx, so that a
// closing event landing exactly at the buffer's end is attributed to the
// final span rather than falling off the end.
func segmentFor(offsets []int, idx int) int {
	seg := 0
	for i, off := range offsets {
		if off <= idx {
			seg = i
		} else {
			break
		}
	}
	return seg
}

// applySplices inserts each splice's events before its target old index,
// in one pass over the original slice, and remaps every ChunkContent
// Previous/Next pointer (an old absolute index) to its new position.
func applySplices(events []token.Event, splices []splice) []token.Event {
	byPos := map[int][]token.Event{}
	total := 0
	for _, s := range splices {
		byPos[s.at] = append(byPos[s.at], s.events...)
		total += len(s.events)
	}

	out := make([]token.Event, 0, len(events)+total)
	oldToNew := make([]int, len(events))
	for i, e := range events {
		for _, ins := range byPos[i] {
			out = append(out, ins)
		}
		oldToNew[i] = len(out)
		out = append(out, e)
	}

	for i := range out {
		if out[i].Previous != nil {
			n := oldToNew[*out[i].Previous]
			out[i].Previous = &n
		}
		if out[i].Next != nil {
			n := oldToNew[*out[i].Next]
			out[i].Next = &n
		}
	}
	return out
}
