package arith

import (
	"strconv"
	"strings"
)

// CheckPrime reports whether n is prime, by trial division up to the
// square root. Zero and one are not prime.
func CheckPrime(n int64) Result[string] {
	if n < 0 {
		return Failure[string]("number must be non-negative")
	}
	if isPrime(n) {
		return Success("Prime")
	}
	return Success("Not Prime")
}

func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm. GCD(0, 0) falls out of the loop as 0.
func GCD(a, b int64) Result[int64] {
	if a < 0 || b < 0 {
		return Failure[int64]("arguments must be non-negative")
	}
	for b != 0 {
		a, b = b, a%b
	}
	return Success(a)
}

// CheckPerfect reports whether n equals the sum of its proper divisors.
// Divisors are paired below and above the square root; an exact root
// counts once. One is not perfect.
func CheckPerfect(n int64) Result[string] {
	if n < 1 {
		return Failure[string]("number must be positive")
	}
	if n == 1 {
		return Success("Not Perfect")
	}
	sum := int64(1)
	for d := int64(2); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		sum += d
		if pair := n / d; pair != d {
			sum += pair
		}
	}
	if sum == n {
		return Success("Perfect")
	}
	return Success("Not Perfect")
}

// Divisors lists every positive divisor of n in ascending order,
// space-joined, including 1 and n itself.
func Divisors(n int64) Result[string] {
	if n < 1 {
		return Failure[string]("number must be positive")
	}
	var b strings.Builder
	for d := int64(1); d <= n; d++ {
		if n%d != 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(d, 10))
	}
	return Success(b.String())
}
