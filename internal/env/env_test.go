package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrDefault(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("UNITCHECK_TEST_VAR", "set")

		assert.Equal(t, "set", OrDefault("UNITCHECK_TEST_VAR", "fallback"))
	})

	t.Run("returns default when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", OrDefault("UNITCHECK_TEST_MISSING", "fallback"))
	})
}

func TestAsBool(t *testing.T) {
	t.Run("parses true values", func(t *testing.T) {
		for _, v := range []string{"1", "true", "TRUE", "t"} {
			t.Setenv("UNITCHECK_TEST_BOOL", v)

			got, err := AsBool("UNITCHECK_TEST_BOOL", false)
			require.NoError(t, err)
			assert.True(t, got, "value %q", v)
		}
	})

	t.Run("returns default when unset", func(t *testing.T) {
		got, err := AsBool("UNITCHECK_TEST_BOOL_MISSING", true)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Setenv("UNITCHECK_TEST_BOOL", "maybe")

		_, err := AsBool("UNITCHECK_TEST_BOOL", false)
		assert.Error(t, err)
	})
}

func TestIsSet(t *testing.T) {
	t.Run("true even for empty values", func(t *testing.T) {
		t.Setenv("UNITCHECK_TEST_EMPTY", "")

		assert.True(t, IsSet("UNITCHECK_TEST_EMPTY"))
	})

	t.Run("false when absent", func(t *testing.T) {
		assert.False(t, IsSet("UNITCHECK_TEST_ABSENT"))
	})
}
