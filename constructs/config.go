package constructs

import "github.com/jcorbin/mdflow/tokenizer"

// Enabled selects which flow constructs the dispatcher tries, addressing
// spec.md §9's "should attempt_n take a dynamic candidate list?" open
// question: yes, and library callers pass it to TokenizeWith to disable
// individual constructs without forking the dispatcher. cmd/mdflow has no
// flags for it; its subcommands always tokenize with DefaultEnabled.
// The zero value disables every field; use DefaultEnabled to get a
// fully-on config.
type Enabled struct {
	HeadingAtx    bool
	ThematicBreak bool
	CodeIndented  bool
	CodeFenced    bool
	HtmlFlow      bool
	Definition    bool
}

// DefaultEnabled returns an Enabled with every construct turned on.
func DefaultEnabled() Enabled {
	return Enabled{
		HeadingAtx:    true,
		ThematicBreak: true,
		CodeIndented:  true,
		CodeFenced:    true,
		HtmlFlow:      true,
		Definition:    true,
	}
}

// leafCandidates returns the full set of leaf constructs the flow
// dispatcher tries at the start of a line that isn't already inside an
// open paragraph, in the order scandown's own "open" decision tree tries
// its block types (most specific/cheapest check first).
func leafCandidates(enabled Enabled) []tokenizer.StateFn {
	var out []tokenizer.StateFn
	out = append(out, BlankLine)
	if enabled.CodeIndented {
		out = append(out, CodeIndented)
	}
	if enabled.CodeFenced {
		out = append(out, CodeFenced)
	}
	if enabled.HtmlFlow {
		out = append(out, HtmlFlow)
	}
	if enabled.HeadingAtx {
		out = append(out, HeadingAtx)
	}
	if enabled.ThematicBreak {
		out = append(out, ThematicBreak)
	}
	if enabled.Definition {
		out = append(out, Definition)
	}
	return out
}

// interruptCandidates returns the subset of constructs that may interrupt
// an open paragraph, per original_source/src/content/flow.rs's
// continuation_construct_after_prefix/content_before states: ATX heading,
// thematic break, fenced code, and HTML flow. Indented code and link
// reference definitions never interrupt a paragraph.
func interruptCandidates(enabled Enabled) []tokenizer.StateFn {
	var out []tokenizer.StateFn
	if enabled.HeadingAtx {
		out = append(out, HeadingAtx)
	}
	if enabled.ThematicBreak {
		out = append(out, ThematicBreak)
	}
	if enabled.CodeFenced {
		out = append(out, CodeFenced)
	}
	if enabled.HtmlFlow {
		out = append(out, HtmlFlow)
	}
	return out
}
