package arith

// reverseDecimal flips the decimal digits of a non-negative n.
func reverseDecimal(n int64) int64 {
	var rev int64
	for n > 0 {
		rev = rev*10 + n%10
		n /= 10
	}
	return rev
}

// decimalDigits counts the decimal digits of a non-negative n.
// Zero has one digit.
func decimalDigits(n int64) int64 {
	count := int64(1)
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// ReverseDigits returns n with its decimal digits reversed. The sign is
// preserved and trailing zeros drop numerically (120 becomes 21).
func ReverseDigits(n int64) Result[int64] {
	if n < 0 {
		return Success(-reverseDecimal(-n))
	}
	return Success(reverseDecimal(n))
}

// CheckPalindrome reports whether the decimal digits of |n| read the
// same forwards and backwards.
func CheckPalindrome(n int64) Result[string] {
	if n < 0 {
		n = -n
	}
	if n == reverseDecimal(n) {
		return Success("Palindrome")
	}
	return Success("Not a Palindrome")
}

// CountDigits returns the number of decimal digits in n, sign excluded.
func CountDigits(n int64) Result[int64] {
	if n < 0 {
		n = -n
	}
	return Success(decimalDigits(n))
}

// SumDigits returns the sum of the decimal digits of n, sign excluded.
func SumDigits(n int64) Result[int64] {
	if n < 0 {
		n = -n
	}
	var sum int64
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return Success(sum)
}

// CheckArmstrong reports whether n equals the sum of its digits each
// raised to the power of the digit count. Zero passes: it has one digit
// and 0^1 is 0.
func CheckArmstrong(n int64) Result[string] {
	if n < 0 {
		return Failure[string]("number must be non-negative")
	}
	digits := decimalDigits(n)
	var sum int64
	for m := n; m > 0; m /= 10 {
		d := m % 10
		p := int64(1)
		for i := int64(0); i < digits; i++ {
			p *= d
		}
		sum += p
	}
	if sum == n {
		return Success("Armstrong")
	}
	return Success("Not Armstrong")
}
