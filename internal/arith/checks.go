package arith

import "unicode"

// CheckEvenOdd reports whether n is even or odd.
func CheckEvenOdd(n int64) Result[string] {
	if n%2 == 0 {
		return Success("Even")
	}
	return Success("Odd")
}

// CheckLeapYear reports whether year is a Gregorian leap year: divisible
// by 4 and not by 100, or divisible by 400. Negative years are rejected.
func CheckLeapYear(year int64) Result[string] {
	if year < 0 {
		return Failure[string]("year must be non-negative")
	}
	if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
		return Success("Leap Year")
	}
	return Success("Not a Leap Year")
}

// CheckVowel classifies a letter as a vowel or consonant,
// case-insensitively. Anything outside a-z is rejected.
func CheckVowel(c rune) Result[string] {
	lower := unicode.ToLower(c)
	if lower < 'a' || lower > 'z' {
		return Failure[string]("input must be a single alphabetic character")
	}
	switch lower {
	case 'a', 'e', 'i', 'o', 'u':
		return Success("Vowel")
	}
	return Success("Consonant")
}

// CheckSign classifies x as positive, negative, or zero.
func CheckSign(x float64) Result[string] {
	switch {
	case x > 0:
		return Success("Positive")
	case x < 0:
		return Success("Negative")
	}
	return Success("Zero")
}
