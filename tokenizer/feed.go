package tokenizer

import "github.com/jcorbin/mdflow/charcode"

// Feed drives the tokenizer from start over codes. If eof is true, it
// continues past the end of codes with a single virtual charcode.EOF code
// and expects the machine to resolve to a terminal State by the time that
// code is handled; otherwise it returns once codes is exhausted without
// reaching a terminal state, so that a caller feeding the tokenizer
// incrementally can supply more codes later (each call replaces t.Codes
// with the full accumulated buffer so far — not just the newly available
// suffix).
//
// Unlike a classic one-code-per-call scanner, a state function here is
// free to consume many codes from t.Codes in a single call (most leaf
// constructs do: spec.md's requirement that Codes be indexable makes this
// a legitimate reading of "one step", not a violation of it). Feed
// therefore always offers the code sitting at the tokenizer's own
// position, t.Index(), rather than tracking a second cursor of its own;
// the two would drift apart the moment a construct consumed more than one
// code per call.
//
// Feed recovers *InvariantError panics raised by Enter/Exit/restore and
// returns them as a plain error: those indicate a bug in a construct's
// state machine, never a property of the input, but a tokenizer library
// should never panic out of its public API.
func (t *Tokenizer) Feed(codes []charcode.Code, start StateFn, eof bool) (state State, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InvariantError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	t.Codes = codes
	state = From(start)
	var pending *charcode.Code
	eofSent := false

	for {
		var code charcode.Code
		switch {
		case pending != nil:
			code = *pending
			pending = nil
		case t.index < len(t.Codes):
			code = t.Codes[t.index]
		case eof && !eofSent:
			code = charcode.EOF
			eofSent = true
		default:
			return state, nil
		}

		switch state.kind {
		case kindOk, kindNok:
			return state, nil
		default:
			next, reconsume := state.fn(t, code)
			state = next
			pending = reconsume
		}
	}
}
