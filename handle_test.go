package unitcheck

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHandleMatchesDirectCalls runs the same checks through both calling
// conventions and requires identical output and counters.
func TestHandleMatchesDirectCalls(t *testing.T) {
	var directBuf, handleBuf bytes.Buffer
	direct := New(&directBuf).ColorOutput(false)
	handle := New(&handleBuf).ColorOutput(false)

	direct.ExpectTrue("truth", func() bool { return true })
	handle.Test("truth").ExpectTrue(func() bool { return true })

	direct.ExpectFalse("falsehood", func() bool { return true })
	handle.Test("falsehood").ExpectFalse(func() bool { return true })

	direct.ExpectValue("answer", 42, func() any { return 41 })
	handle.Test("answer").ExpectValue(42, func() any { return 41 })

	direct.ExpectInRange("third", 0.333, 0.334, func() any { return 1.0 / 3.0 })
	handle.Test("third").ExpectInRange(0.333, 0.334, func() any { return 1.0 / 3.0 })

	direct.ExpectAnyPanic("boom", func() { panic("x") })
	handle.Test("boom").ExpectAnyPanic(func() { panic("x") })

	direct.ExpectPanic("typed boom", "", func() { panic("x") })
	handle.Test("typed boom").ExpectPanic("", func() { panic("x") })

	assert.Equal(t, directBuf.String(), handleBuf.String())
	assert.Equal(t, direct.PassCount(), handle.PassCount())
	assert.Equal(t, direct.FailCount(), handle.FailCount())
	assert.Equal(t, direct.SkipCount(), handle.SkipCount())
}

func TestHandleReturnsOutcome(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf).ColorOutput(false)

	assert.True(t, s.Test("passes").ExpectValue(1, func() any { return 1 }))
	assert.False(t, s.Test("fails").ExpectValue(1, func() any { return 2 }))
}

func TestHandleHonorsFilter(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf).ColorOutput(false).OnlyIf(func(string) bool { return false })

	ok := s.Test("rejected").ExpectTrue(func() bool { return true })

	assert.False(t, ok)
	assert.Equal(t, uint64(1), s.SkipCount())
	assert.Empty(t, buf.String())
}
