package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Run("success carries value and nil error", func(t *testing.T) {
		r := Success(int64(42))
		assert.True(t, r.IsSuccess())
		assert.Equal(t, int64(42), r.Value())
		assert.Empty(t, r.Message())
		assert.NoError(t, r.Err())
	})

	t.Run("failure carries message and error", func(t *testing.T) {
		r := Failure[int64]("out of range")
		assert.False(t, r.IsSuccess())
		assert.Zero(t, r.Value())
		assert.Equal(t, "out of range", r.Message())
		require.Error(t, r.Err())
		assert.Equal(t, "out of range", r.Err().Error())
	})

	t.Run("failuref formats", func(t *testing.T) {
		r := Failuref[string]("bad input %q", "x")
		assert.Equal(t, `bad input "x"`, r.Message())
	})

	t.Run("zero result is a failure", func(t *testing.T) {
		var r Result[string]
		assert.False(t, r.IsSuccess())
	})
}

func TestParseValue(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		v, err := ParseValue(KindInt, " -42 ")
		require.NoError(t, err)
		assert.Equal(t, int64(-42), v.Int)

		_, err = ParseValue(KindInt, "3.5")
		require.Error(t, err)
		assert.Equal(t, `"3.5" is not an integer`, err.Error())
	})

	t.Run("floats", func(t *testing.T) {
		v, err := ParseValue(KindFloat, "3.5")
		require.NoError(t, err)
		assert.Equal(t, 3.5, v.Float)

		_, err = ParseValue(KindFloat, "pi")
		require.Error(t, err)
		assert.Equal(t, `"pi" is not a number`, err.Error())
	})

	t.Run("characters", func(t *testing.T) {
		v, err := ParseValue(KindChar, "e")
		require.NoError(t, err)
		assert.Equal(t, 'e', v.Char)

		_, err = ParseValue(KindChar, "ab")
		require.Error(t, err)

		_, err = ParseValue(KindChar, "")
		require.Error(t, err)
		assert.Equal(t, "want a single character", err.Error())
	})

	t.Run("operators", func(t *testing.T) {
		for _, op := range []string{"+", "-", "*", "/"} {
			v, err := ParseValue(KindOperator, op)
			require.NoError(t, err)
			assert.Equal(t, op, v.Op)
		}

		_, err := ParseValue(KindOperator, "^")
		require.Error(t, err)
		assert.Equal(t, "operator must be one of + - * /", err.Error())
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "integer", KindInt.String())
	assert.Equal(t, "number", KindFloat.String())
	assert.Equal(t, "character", KindChar.String())
	assert.Equal(t, "operator", KindOperator.String())
}
