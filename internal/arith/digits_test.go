package arith

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseDigits(t *testing.T) {
	t.Run("examples", func(t *testing.T) {
		assert.Equal(t, int64(321), ReverseDigits(123).Value())
		assert.Equal(t, int64(-321), ReverseDigits(-123).Value())
		assert.Equal(t, int64(21), ReverseDigits(120).Value())
		assert.Equal(t, int64(0), ReverseDigits(0).Value())
		assert.Equal(t, int64(7), ReverseDigits(7).Value())
	})

	t.Run("round-trip without trailing zeros", func(t *testing.T) {
		for _, n := range []int64{1, 9, 12, 123, 9081, -456, 1000001} {
			once := ReverseDigits(n)
			require.True(t, once.IsSuccess())
			twice := ReverseDigits(once.Value())
			assert.Equal(t, n, twice.Value(), "n=%d", n)
		}
	})
}

// isDigitPalindrome is an independent reference: compare the decimal
// string of |n| against its reverse.
func isDigitPalindrome(n int64) bool {
	if n < 0 {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func TestCheckPalindrome(t *testing.T) {
	t.Run("agrees with string reference", func(t *testing.T) {
		for _, n := range []int64{0, 1, 11, 121, 123, 1221, 1231, -121, -123, 10, 1000021} {
			want := "Not a Palindrome"
			if isDigitPalindrome(n) {
				want = "Palindrome"
			}
			assert.Equal(t, want, CheckPalindrome(n).Value(), "n=%d", n)
		}
	})
}

func TestCountDigits(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 1},
		{7, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
		{-12345, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CountDigits(tc.n).Value(), "n=%d", tc.n)
	}
}

func TestSumDigits(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 0},
		{5, 5},
		{99, 18},
		{1234, 10},
		{-1234, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SumDigits(tc.n).Value(), "n=%d", tc.n)
	}
}

func TestCheckArmstrong(t *testing.T) {
	t.Run("armstrong numbers", func(t *testing.T) {
		for _, n := range []int64{0, 1, 5, 153, 370, 371, 407, 9474} {
			assert.Equal(t, "Armstrong", CheckArmstrong(n).Value(), "n=%d", n)
		}
	})

	t.Run("non-armstrong numbers", func(t *testing.T) {
		for _, n := range []int64{10, 154, 100, 9475} {
			assert.Equal(t, "Not Armstrong", CheckArmstrong(n).Value(), "n=%d", n)
		}
	})

	t.Run("negative input is rejected", func(t *testing.T) {
		r := CheckArmstrong(-153)
		require.False(t, r.IsSuccess())
		assert.Equal(t, "number must be non-negative", r.Message())
	})
}
