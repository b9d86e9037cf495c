package tokenizer

import "github.com/jcorbin/mdflow/charcode"

// Attempt runs construct speculatively: on success it keeps every event
// the construct emitted and invokes next(true); on failure it rolls back
// all events and position changes, as if construct never ran, and invokes
// next(false). Either way the StateFn Attempt returns continues as
// next(ok)'s own result.
func (t *Tokenizer) Attempt(construct StateFn, next func(ok bool) StateFn) StateFn {
	snap := t.snapshot()
	return t.attemptStep(construct, snap, next)
}

func (t *Tokenizer) attemptStep(construct StateFn, snap snapshot, next func(bool) StateFn) StateFn {
	return func(tok *Tokenizer, code charcode.Code) (State, *charcode.Code) {
		state, reconsume := construct(tok, code)
		switch {
		case state.IsOk():
			return From(next(true)), reconsume
		case state.IsNok():
			tok.restore(snap)
			return From(next(false)), reconsume
		default:
			return From(tok.attemptStep(state.fn, snap, next)), reconsume
		}
	}
}

// Check runs construct as a pure look-ahead: regardless of outcome, all
// events and position changes it produced are discarded, and next is
// invoked only with the success bit.
func (t *Tokenizer) Check(construct StateFn, next func(ok bool) StateFn) StateFn {
	snap := t.snapshot()
	return t.checkStep(construct, snap, next)
}

func (t *Tokenizer) checkStep(construct StateFn, snap snapshot, next func(bool) StateFn) StateFn {
	return func(tok *Tokenizer, code charcode.Code) (State, *charcode.Code) {
		state, reconsume := construct(tok, code)
		switch {
		case state.IsOk():
			tok.restore(snap)
			return From(next(true)), reconsume
		case state.IsNok():
			tok.restore(snap)
			return From(next(false)), reconsume
		default:
			return From(tok.checkStep(state.fn, snap, next)), reconsume
		}
	}
}

// AttemptN tries each candidate construct in order until one succeeds;
// the first match wins and its events are committed. If none succeed, all
// of them have been tried and rolled back and next(false) is invoked. This
// generalizes the source's attempt_2/attempt_3/attempt_4 helpers into a
// single function over a dynamic candidate list, per spec.md §9's note
// that attempt_n should accept one so that constructs can be disabled at
// runtime (see constructs.Enabled).
func (t *Tokenizer) AttemptN(candidates []StateFn, next func(ok bool) StateFn) StateFn {
	return t.attemptNStep(candidates, 0, next)
}

func (t *Tokenizer) attemptNStep(candidates []StateFn, i int, next func(bool) StateFn) StateFn {
	if i >= len(candidates) {
		return next(false)
	}
	return t.Attempt(candidates[i], func(ok bool) StateFn {
		if ok {
			return next(true)
		}
		return t.attemptNStep(candidates, i+1, next)
	})
}
