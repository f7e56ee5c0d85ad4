package arith

import (
	"fmt"
	"strconv"
	"strings"
)

// SumOfNaturals returns the sum of the natural numbers 1 through n
// using the closed form n(n+1)/2. Zero sums to zero.
func SumOfNaturals(n int64) Result[int64] {
	if n < 0 {
		return Failure[int64]("n must be non-negative")
	}
	return Success(n * (n + 1) / 2)
}

// Factorial returns n!. Zero factorial is one.
func Factorial(n int64) Result[int64] {
	if n < 0 {
		return Failure[int64]("factorial is undefined for negative numbers")
	}
	var product int64 = 1
	for i := int64(2); i <= n; i++ {
		product *= i
	}
	return Success(product)
}

// MultiplicationTable renders the times table for n, one line per
// multiplier from 1 through 10, newline-joined.
func MultiplicationTable(n int64) Result[string] {
	lines := make([]string, 0, 10)
	for i := int64(1); i <= 10; i++ {
		lines = append(lines, fmt.Sprintf("%d x %d = %d", n, i, n*i))
	}
	return Success(strings.Join(lines, "\n"))
}

// FibonacciSeries returns the first n Fibonacci terms starting from 0
// and 1, space-joined. Zero terms is the empty string.
func FibonacciSeries(n int64) Result[string] {
	if n < 0 {
		return Failure[string]("term count must be non-negative")
	}
	var b strings.Builder
	prev, curr := int64(0), int64(1)
	for i := int64(0); i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(prev, 10))
		prev, curr = curr, prev+curr
	}
	return Success(b.String())
}
