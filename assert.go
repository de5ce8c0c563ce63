package unitcheck

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"
)

// ExpectTrue runs a test expected to return true. A PASS or FAIL line is
// written to the session's sink and the outcome is counted. A panic
// inside the unit under test is caught and recorded as a failure.
// Returns whether the test passed.
func (s *Session) ExpectTrue(id string, fn func() bool) bool {
	if s.skipped(id) {
		return false
	}
	defer s.setVerb("%t")()
	return s.ExpectValue(id, true, func() any { return fn() })
}

// ExpectFalse runs a test expected to return false. Behaves like
// ExpectTrue with the expectation inverted.
func (s *Session) ExpectFalse(id string, fn func() bool) bool {
	if s.skipped(id) {
		return false
	}
	defer s.setVerb("%t")()
	return s.ExpectValue(id, false, func() any { return fn() })
}

// ExpectValue runs a test expected to return want. Equality follows
// testify's ObjectsAreEqual rules (byte-slice comparison, then deep
// equality). A panic inside the unit under test is caught and recorded
// as a failure with the panic's message; it never propagates to the
// caller. Returns whether the test passed.
func (s *Session) ExpectValue(id string, want any, fn func() any) bool {
	if s.skipped(id) {
		return false
	}
	got, panicked, diag := capture(fn)
	if panicked {
		s.recordFail(id)
		fmt.Fprintf(s.out, "  expected value %s, got panic: %s\n", s.sprint(want), diag)
		return false
	}
	if assert.ObjectsAreEqual(want, got) {
		s.recordPass(id)
		return true
	}
	s.recordFail(id)
	fmt.Fprintf(s.out, "  expected value %s, found %s instead.\n", s.sprint(want), s.sprint(got))
	return false
}

// ExpectInRange runs a test expected to return a value between min and
// max, both bounds included. Integer, unsigned, float and string values
// are orderable; a result that cannot be ordered against the bounds is
// recorded as a failure. Panics are handled as in ExpectValue. Returns
// whether the test passed.
func (s *Session) ExpectInRange(id string, min, max any, fn func() any) bool {
	if s.skipped(id) {
		return false
	}
	got, panicked, diag := capture(fn)
	if panicked {
		s.recordFail(id)
		fmt.Fprintf(s.out, "  expected a value in [%s, %s], got panic: %s\n",
			s.sprint(min), s.sprint(max), diag)
		return false
	}
	lo, loOK := order(min, got)
	hi, hiOK := order(got, max)
	if !loOK || !hiOK {
		s.recordFail(id)
		fmt.Fprintf(s.out, "  value of type %T cannot be ordered against range [%s, %s]\n",
			got, s.sprint(min), s.sprint(max))
		return false
	}
	if lo <= 0 && hi <= 0 {
		s.recordPass(id)
		return true
	}
	s.recordFail(id)
	fmt.Fprintf(s.out, "  value %s is not in expected range [%s, %s]\n",
		s.sprint(got), s.sprint(min), s.sprint(max))
	return false
}

// ExpectAnyPanic runs a test expected to panic, with any value. The
// absence of a panic is the failure condition. Returns whether the test
// passed.
func (s *Session) ExpectAnyPanic(id string, fn func()) bool {
	if s.skipped(id) {
		return false
	}
	panicked, _ := didPanic(fn)
	if panicked {
		s.recordPass(id)
		return true
	}
	s.recordFail(id)
	fmt.Fprintln(s.out, "  expected panic did not occur.")
	return false
}

// ExpectPanic runs a test expected to panic with a value of the same
// kind as the kind prototype: the recovered value must be assignable to
// the prototype's dynamic type, or, when both are errors, match it via
// errors.As. The diagnostics distinguish a panic of the wrong kind from
// no panic at all. Returns whether the test passed.
func (s *Session) ExpectPanic(id string, kind any, fn func()) bool {
	if s.skipped(id) {
		return false
	}
	panicked, val := didPanic(fn)
	switch {
	case panicked && panicMatches(val, kind):
		s.recordPass(id)
		return true
	case panicked:
		s.recordFail(id)
		fmt.Fprintf(s.out, "  a panic occurred but not of the expected kind: got %T, want %T.\n", val, kind)
	default:
		s.recordFail(id)
		fmt.Fprintln(s.out, "  expected panic did not occur.")
	}
	return false
}

// capture runs the unit under test, converting a panic into a recorded
// diagnostic so it cannot escape the assertion call. A recovered error
// reports its message; any other panic value gets a generic description.
func capture(fn func() any) (got any, panicked bool, diag string) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			if err, ok := r.(error); ok {
				diag = err.Error()
			} else {
				diag = fmt.Sprintf("non-error panic: %v", r)
			}
		}
	}()
	got = fn()
	return got, false, ""
}

// didPanic runs the unit under test and reports whether it panicked,
// along with the recovered value.
func didPanic(fn func()) (panicked bool, value any) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			value = r
		}
	}()
	fn()
	return false, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// panicMatches reports whether a recovered panic value is of the kind
// described by the prototype value.
func panicMatches(got, kind any) bool {
	kt := reflect.TypeOf(kind)
	if kt == nil {
		return true
	}
	gt := reflect.TypeOf(got)
	if gt != nil && gt.AssignableTo(kt) {
		return true
	}
	if gotErr, ok := got.(error); ok && kt.Implements(errType) {
		return errors.As(gotErr, reflect.New(kt).Interface())
	}
	return false
}
