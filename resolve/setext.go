// Package resolve implements post-tokenization passes over a completed
// event log, for constructs that need look-behind to recognize. Setext
// heading promotion is the sole example here: a paragraph followed by a
// line of '=' or '-' only is, in hindsight, not a paragraph at all.
package resolve

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// SetextHeading is a tokenizer.Resolver that rewrites any Content span
// whose final ChunkContent line consists only of '=' or only of '-'
// characters (and which has at least one earlier ChunkContent line) into
// a HeadingSetext: the earlier lines become HeadingSetextText spans and
// the underline becomes a HeadingSetextUnderline wrapping a
// HeadingSetextUnderlineSequence.
//
// This is a deliberate design choice over the flow dispatcher trying to
// recognize setext headings as it goes: original_source/src/content/flow.rs
// never attempts one as a paragraph interruption either (its own
// continuation_construct_after_prefix candidate list is ATX heading and
// thematic break only), leaving setext recognition to require the
// completed paragraph, which a look-behind resolver is the natural place
// for.
func SetextHeading(t *tokenizer.Tokenizer) error {
	events := t.Events
	var inserts []insertion

	for ci := 0; ci < len(events); ci++ {
		if events[ci].Kind != token.Enter || events[ci].Type != token.Content {
			continue
		}
		xi := findContentExit(events, ci)
		if xi < 0 {
			continue
		}

		chunkEnters := collectChunkEnters(events, ci, xi)
		if len(chunkEnters) < 2 {
			continue
		}
		lastEnter := chunkEnters[len(chunkEnters)-1]
		lastExit := lastEnter + 1 // ChunkContent Enter/Exit are always adjacent

		mark, ok := underlineMark(t.Codes, events[lastEnter].Index, events[lastExit].Index)
		if !ok {
			continue
		}
		_ = mark

		events[ci].Type = token.HeadingSetext
		events[xi].Type = token.HeadingSetext
		for _, e := range chunkEnters[:len(chunkEnters)-1] {
			events[e].Type = token.HeadingSetextText
			events[e+1].Type = token.HeadingSetextText
		}
		events[lastEnter].Type = token.HeadingSetextUnderlineSequence
		events[lastExit].Type = token.HeadingSetextUnderlineSequence

		inserts = append(inserts,
			insertion{at: lastEnter, event: token.Event{Kind: token.Enter, Type: token.HeadingSetextUnderline, Point: events[lastEnter].Point, Index: events[lastEnter].Index}},
			insertion{at: lastExit + 1, event: token.Event{Kind: token.Exit, Type: token.HeadingSetextUnderline, Point: events[lastExit].Point, Index: events[lastExit].Index}},
		)
	}

	if len(inserts) == 0 {
		return nil
	}
	t.Events = applyInsertions(events, inserts)
	return nil
}

type insertion struct {
	at    int // insert before this old index
	event token.Event
}

// findContentExit returns the index of the Exit(Content) matching
// Enter(Content) at ci. Content spans never nest, so the first Exit(Content)
// after ci is always the match.
func findContentExit(events []token.Event, ci int) int {
	for i := ci + 1; i < len(events); i++ {
		if events[i].Kind == token.Exit && events[i].Type == token.Content {
			return i
		}
	}
	return -1
}

func collectChunkEnters(events []token.Event, ci, xi int) []int {
	var out []int
	for i := ci + 1; i < xi; i++ {
		if events[i].Kind == token.Enter && events[i].Type == token.ChunkContent {
			out = append(out, i)
		}
	}
	return out
}

// underlineMark reports whether codes[start:end) is a non-empty run of a
// single byte, '=' or '-', returning it.
func underlineMark(codes []charcode.Code, start, end int) (byte, bool) {
	if end <= start {
		return 0, false
	}
	first, ok := codes[start].Byte()
	if !ok || (first != '=' && first != '-') {
		return 0, false
	}
	for p := start + 1; p < end; p++ {
		b, ok := codes[p].Byte()
		if !ok || b != first {
			return 0, false
		}
	}
	return first, true
}

// applyInsertions builds a new event slice with each insertion spliced in
// before its target old index, and fixes up every ChunkContent
// Previous/Next pointer (which stores an old absolute index) to the
// corresponding new index.
func applyInsertions(events []token.Event, inserts []insertion) []token.Event {
	byPos := map[int][]token.Event{}
	for _, ins := range inserts {
		byPos[ins.at] = append(byPos[ins.at], ins.event)
	}

	out := make([]token.Event, 0, len(events)+len(inserts))
	oldToNew := make([]int, len(events))
	for i, e := range events {
		for _, ins := range byPos[i] {
			out = append(out, ins)
		}
		oldToNew[i] = len(out)
		out = append(out, e)
	}
	// a trailing insertion at len(events) (shouldn't occur here, since
	// lastExit+1 always points at an existing event, at the latest the
	// span's own Exit, but guard it for robustness)
	for _, ins := range byPos[len(events)] {
		out = append(out, ins)
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
