package unitcheck

// Test names a single test case on a Session, enabling the call style
//
//	s.Test("one third").ExpectInRange(0.333, 0.334, func() any { return 1.0 / 3.0 })
//
// It holds no state of its own beyond the identifier and forwards every
// expectation to the originating session; it is meant to be consumed by
// one chained call, not retained.
type Test struct {
	s  *Session
	id string
}

// Test binds a test identifier, so the expectation can be stated in a
// chained call.
func (s *Session) Test(id string) Test {
	return Test{s: s, id: id}
}

// ExpectTrue forwards to Session.ExpectTrue under the bound identifier.
func (t Test) ExpectTrue(fn func() bool) bool {
	return t.s.ExpectTrue(t.id, fn)
}

// ExpectFalse forwards to Session.ExpectFalse under the bound identifier.
func (t Test) ExpectFalse(fn func() bool) bool {
	return t.s.ExpectFalse(t.id, fn)
}

// ExpectValue forwards to Session.ExpectValue under the bound identifier.
func (t Test) ExpectValue(want any, fn func() any) bool {
	return t.s.ExpectValue(t.id, want, fn)
}

// ExpectInRange forwards to Session.ExpectInRange under the bound
// identifier.
func (t Test) ExpectInRange(min, max any, fn func() any) bool {
	return t.s.ExpectInRange(t.id, min, max, fn)
}

// ExpectAnyPanic forwards to Session.ExpectAnyPanic under the bound
// identifier.
func (t Test) ExpectAnyPanic(fn func()) bool {
	return t.s.ExpectAnyPanic(t.id, fn)
}

// ExpectPanic forwards to Session.ExpectPanic under the bound identifier.
func (t Test) ExpectPanic(kind any, fn func()) bool {
	return t.s.ExpectPanic(t.id, kind, fn)
}
