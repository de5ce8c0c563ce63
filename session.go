// Package unitcheck provides a small, immediate-mode unit-testing
// facility: a Session runs zero-argument units of code against declared
// expectations, prints one PASS or FAIL line per check, and accumulates
// pass/fail/skip counts for a final summary.
//
// Checks run the moment they are declared; there is no registration or
// discovery step. Tests can be written either directly on the session,
//
//	s.ExpectTrue("1+1 equals 2", func() bool { return 1+1 == 2 })
//
// or by naming the test once and chaining the expectation:
//
//	s.Test("1+1 equals 2").ExpectValue(2, func() any { return 1 + 1 })
package unitcheck

import (
	"fmt"
	"io"
	"os"
)

// FilterFunc decides whether the test with the given identifier runs.
type FilterFunc func(id string) bool

// Session accumulates test outcomes and writes PASS/FAIL lines to its
// output sink. It is not safe for concurrent use; callers wanting
// parallel runs should use one Session per goroutine and merge results.
type Session struct {
	out      io.Writer
	pass     uint64
	fail     uint64
	skip     uint64
	color    bool
	hidePass bool
	filter   FilterFunc
	verb     string
}

// New creates a Session writing to out. A nil out defaults to os.Stdout.
// Color output starts enabled, passing tests are shown, and no filter
// is set.
func New(out io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	return &Session{out: out, color: true, verb: "%v"}
}

// PassCount returns the number of tests passed so far.
func (s *Session) PassCount() uint64 { return s.pass }

// FailCount returns the number of tests failed so far.
func (s *Session) FailCount() uint64 { return s.fail }

// SkipCount returns the number of tests skipped by the filter so far.
func (s *Session) SkipCount() uint64 { return s.skip }

// ColorEnabled returns whether color output is enabled.
func (s *Session) ColorEnabled() bool { return s.color }

// ColorOutput enables or disables ANSI color output. Enabled by default.
func (s *Session) ColorOutput(on bool) *Session {
	s.color = on
	return s
}

// HidePass suppresses the per-test PASS lines. FAIL lines are always
// emitted.
func (s *Session) HidePass() *Session {
	s.hidePass = true
	return s
}

// ShowPass re-enables the per-test PASS lines.
func (s *Session) ShowPass() *Session {
	s.hidePass = false
	return s
}

// OnlyIf installs a filter: a test runs only if the filter returns true
// for its identifier. Filtered-out tests are counted as skipped, produce
// no output, and report as not passed. A call to OnlyIf replaces any
// previous filter.
func (s *Session) OnlyIf(filter FilterFunc) *Session {
	s.filter = filter
	return s
}

// Always removes any filter set by OnlyIf.
func (s *Session) Always() *Session {
	s.filter = nil
	return s
}

// Summary writes the skipped-test count if any tests were skipped, the
// passed-test count, and the failed-test count if any tests failed.
func (s *Session) Summary() {
	if s.skip > 0 {
		fmt.Fprintf(s.out, "%d tests skipped.\n", s.skip)
	}
	fmt.Fprintf(s.out, "%d tests passed.\n", s.pass)
	if s.fail > 0 {
		fmt.Fprintf(s.out, "%d tests %sFAILED !%s\n", s.fail, s.red(), s.reset())
	}
}

// recordPass counts a PASS and prints the pass line unless suppressed.
func (s *Session) recordPass(id string) {
	s.pass++
	if !s.hidePass {
		fmt.Fprintf(s.out, "%s☑  PASS  %s%s\n", s.green(), s.reset(), id)
	}
}

// recordFail counts a FAIL and prints the fail line.
func (s *Session) recordFail(id string) {
	s.fail++
	fmt.Fprintf(s.out, "%s☒  FAIL  %s%s\n", s.red(), s.reset(), id)
}

// skipped applies the active filter to id. When the filter rejects the
// test it counts a skip and reports true; the caller must then return
// without running the unit under test.
func (s *Session) skipped(id string) bool {
	if s.filter != nil && !s.filter(id) {
		s.skip++
		return true
	}
	return false
}
