// Package main drives a unitcheck session from the command line. It is
// the external caller the library expects: it decides color handling,
// filtering and the process exit code, none of which the session does
// on its own.
//
// Environment:
//
//	NO_COLOR            disable color output (presence is enough)
//	UNITCHECK_HIDE_PASS suppress per-test PASS lines ("1", "true", ...)
//	UNITCHECK_RUN       glob pattern over test identifiers; tests whose
//	                    identifier does not match are skipped
package main

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/unitcheck/unitcheck"
	"github.com/unitcheck/unitcheck/internal/env"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	s := unitcheck.New(os.Stdout)
	if err := configure(s); err != nil {
		return err
	}

	runChecks(s)
	s.Summary()

	if n := s.FailCount(); n > 0 {
		return fmt.Errorf("%d tests failed", n)
	}
	return nil
}

// configure applies environment and terminal settings to the session.
func configure(s *unitcheck.Session) error {
	colored := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if env.IsSet("NO_COLOR") {
		colored = false
	}
	s.ColorOutput(colored)

	hidePass, err := env.AsBool("UNITCHECK_HIDE_PASS", false)
	if err != nil {
		return fmt.Errorf("invalid UNITCHECK_HIDE_PASS: %w", err)
	}
	if hidePass {
		s.HidePass()
	}

	if pattern := env.OrDefault("UNITCHECK_RUN", ""); pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid UNITCHECK_RUN pattern: %w", err)
		}
		s.OnlyIf(func(id string) bool {
			ok, _ := path.Match(pattern, id)
			return ok
		})
	}
	return nil
}

// runChecks exercises both calling conventions against a few sample
// units.
func runChecks(s *unitcheck.Session) {
	s.ExpectTrue("arithmetic: 1+1 equals 2", func() bool {
		return 1+1 == 2
	})

	s.ExpectFalse("arithmetic: 1+1 does not equal 3", func() bool {
		return 1+1 == 3
	})

	s.Test("strconv: parse decimal").ExpectValue(42, func() any {
		n, _ := strconv.Atoi("42")
		return n
	})

	s.Test("float: one third").ExpectInRange(0.333, 0.334, func() any {
		return 1.0 / 3.0
	})

	s.ExpectAnyPanic("slice: out-of-range access panics", func() {
		var empty []int
		_ = empty[1]
	})

	s.Test("strconv: range failure kind").ExpectPanic(&strconv.NumError{}, func() {
		if _, err := strconv.Atoi("99999999999999999999"); err != nil {
			panic(err)
		}
	})

	s.Test("errors: wrapped kinds unwrap").ExpectPanic(&strconv.NumError{}, func() {
		_, err := strconv.ParseInt("not a number", 10, 64)
		panic(fmt.Errorf("reading count: %w", err))
	})
}
