package unitcheck

import "fmt"

// ANSI CSI sequences used for colored output.
const (
	ansiRed   = "\x1B[31m"
	ansiGreen = "\x1B[32m"
	ansiReset = "\x1B[0m"
)

func (s *Session) red() string {
	if s.color {
		return ansiRed
	}
	return ""
}

func (s *Session) green() string {
	if s.color {
		return ansiGreen
	}
	return ""
}

func (s *Session) reset() string {
	if s.color {
		return ansiReset
	}
	return ""
}

// sprint renders a value for a diagnostic line using the session's
// current formatting verb.
func (s *Session) sprint(v any) string {
	return fmt.Sprintf(s.verb, v)
}

// setVerb changes the diagnostic formatting verb and returns a function
// restoring the previous one. Callers defer the restore so the override
// stays scoped to a single assertion, whatever path it exits by.
func (s *Session) setVerb(verb string) func() {
	prev := s.verb
	s.verb = verb
	return func() { s.verb = prev }
}
