package arith

import (
	"strconv"
	"strings"
)

// Param describes one operation input for prompting purposes.
type Param struct {
	Name string
	Kind Kind
	Hint string
}

// Operation is one entry in the catalog: a named, documented wrapper
// around a typed arith function. Operations are invoked with raw text
// and handle their own parsing via ParseValue.
type Operation struct {
	ID      string
	Title   string
	Summary string
	Doc     string // short markdown body for describe/help
	Aliases []string
	Params  []Param

	invoke func(args []Value) Result[string]
}

// Invoke parses raw inputs against the operation's parameters and
// dispatches to the underlying function. Parse rejections and
// arity mismatches surface as failures, same as domain violations.
func (op Operation) Invoke(raw []string) Result[string] {
	if len(raw) != len(op.Params) {
		return Failuref[string]("%s takes %d input(s), got %d", op.ID, len(op.Params), len(raw))
	}
	args := make([]Value, len(raw))
	for i, p := range op.Params {
		v, err := ParseValue(p.Kind, raw[i])
		if err != nil {
			return Failuref[string]("%s: %s", p.Name, err)
		}
		args[i] = v
	}
	return op.invoke(args)
}

// formatFloat renders floats the way results are displayed everywhere:
// shortest round-trip form, so 7 not 7.000000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func intText(r Result[int64]) Result[string] {
	if !r.IsSuccess() {
		return Failure[string](r.Message())
	}
	return Success(strconv.FormatInt(r.Value(), 10))
}

func floatText(r Result[float64]) Result[string] {
	if !r.IsSuccess() {
		return Failure[string](r.Message())
	}
	return Success(formatFloat(r.Value()))
}

func intParam(name, hint string) Param   { return Param{Name: name, Kind: KindInt, Hint: hint} }
func floatParam(name, hint string) Param { return Param{Name: name, Kind: KindFloat, Hint: hint} }

var catalog = []Operation{
	{
		ID: "even-odd", Title: "Even or odd", Aliases: []string{"even", "odd", "parity"},
		Summary: "Report whether an integer is even or odd.",
		Doc:     "Checks the parity of an integer.\n\nPrints `Even` or `Odd`.",
		Params:  []Param{intParam("number", "any integer")},
		invoke:  func(a []Value) Result[string] { return CheckEvenOdd(a[0].Int) },
	},
	{
		ID: "max", Title: "Maximum of two", Aliases: []string{"max-of-two", "larger"},
		Summary: "Return the larger of two numbers.",
		Doc:     "Compares two numbers and prints the larger one.\nEqual inputs print that shared value.",
		Params:  []Param{floatParam("first", "any number"), floatParam("second", "any number")},
		invoke:  func(a []Value) Result[string] { return floatText(MaxOfTwo(a[0].Float, a[1].Float)) },
	},
	{
		ID: "leap-year", Title: "Leap year", Aliases: []string{"leap"},
		Summary: "Report whether a year is a Gregorian leap year.",
		Doc:     "A year is a leap year when it is divisible by 4 and not by 100,\nor divisible by 400. So 2000 and 2024 are leap years; 1900 is not.",
		Params:  []Param{intParam("year", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return CheckLeapYear(a[0].Int) },
	},
	{
		ID: "sum-naturals", Title: "Sum of naturals", Aliases: []string{"sum", "natural-sum"},
		Summary: "Sum the natural numbers 1 through n.",
		Doc:     "Computes 1 + 2 + ... + n with the closed form n(n+1)/2.",
		Params:  []Param{intParam("n", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return intText(SumOfNaturals(a[0].Int)) },
	},
	{
		ID: "factorial", Title: "Factorial", Aliases: []string{"fact"},
		Summary: "Compute n! for a non-negative integer.",
		Doc:     "Multiplies 1 x 2 x ... x n. By convention 0! is 1.",
		Params:  []Param{intParam("n", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return intText(Factorial(a[0].Int)) },
	},
	{
		ID: "times-table", Title: "Multiplication table", Aliases: []string{"table", "multiplication-table"},
		Summary: "Print the times table for a number, 1 through 10.",
		Doc:     "Prints ten lines of the form `n x i = product` for i from 1 to 10.",
		Params:  []Param{intParam("number", "any integer")},
		invoke:  func(a []Value) Result[string] { return MultiplicationTable(a[0].Int) },
	},
	{
		ID: "reverse", Title: "Reverse digits", Aliases: []string{"reverse-digits"},
		Summary: "Reverse the decimal digits of an integer.",
		Doc:     "Reverses the digits, keeping the sign. Trailing zeros drop\nnaturally: 120 reverses to 21.",
		Params:  []Param{intParam("number", "any integer")},
		invoke:  func(a []Value) Result[string] { return intText(ReverseDigits(a[0].Int)) },
	},
	{
		ID: "palindrome", Title: "Palindrome", Aliases: []string{"pal"},
		Summary: "Report whether an integer reads the same backwards.",
		Doc:     "Compares the absolute value against its digit reversal.",
		Params:  []Param{intParam("number", "any integer")},
		invoke:  func(a []Value) Result[string] { return CheckPalindrome(a[0].Int) },
	},
	{
		ID: "prime", Title: "Prime", Aliases: []string{"is-prime"},
		Summary: "Report whether a number is prime.",
		Doc:     "Trial division up to the square root. 0 and 1 are not prime.",
		Params:  []Param{intParam("number", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return CheckPrime(a[0].Int) },
	},
	{
		ID: "digit-count", Title: "Digit count", Aliases: []string{"digits", "count-digits"},
		Summary: "Count the decimal digits of an integer.",
		Doc:     "Counts digits, sign excluded. Zero has one digit.",
		Params:  []Param{intParam("number", "any integer")},
		invoke:  func(a []Value) Result[string] { return intText(CountDigits(a[0].Int)) },
	},
	{
		ID: "digit-sum", Title: "Digit sum", Aliases: []string{"sum-digits"},
		Summary: "Sum the decimal digits of an integer.",
		Doc:     "Adds the digits together, sign excluded.",
		Params:  []Param{intParam("number", "any integer")},
		invoke:  func(a []Value) Result[string] { return intText(SumDigits(a[0].Int)) },
	},
	{
		ID: "armstrong", Title: "Armstrong number", Aliases: []string{"narcissistic"},
		Summary: "Report whether a number equals the sum of its digits raised to the digit count.",
		Doc:     "153 has three digits and 1^3 + 5^3 + 3^3 = 153, so it is an\nArmstrong number.",
		Params:  []Param{intParam("number", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return CheckArmstrong(a[0].Int) },
	},
	{
		ID: "fibonacci", Title: "Fibonacci series", Aliases: []string{"fib"},
		Summary: "Print the first n Fibonacci terms.",
		Doc:     "Starts from 0 and 1, space-joined. Asking for 5 terms prints\n`0 1 1 2 3`; asking for 0 prints nothing.",
		Params:  []Param{intParam("terms", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return FibonacciSeries(a[0].Int) },
	},
	{
		ID: "vowel", Title: "Vowel or consonant", Aliases: []string{"vowel-consonant"},
		Summary: "Classify a letter as vowel or consonant.",
		Doc:     "Case-insensitive; a, e, i, o and u are vowels. Anything that is\nnot a single letter is rejected.",
		Params:  []Param{{Name: "letter", Kind: KindChar, Hint: "a single letter"}},
		invoke:  func(a []Value) Result[string] { return CheckVowel(a[0].Char) },
	},
	{
		ID: "calc", Title: "Simple calculator", Aliases: []string{"calculator", "calculate"},
		Summary: "Apply +, -, * or / to two numbers.",
		Doc:     "Basic four-operator arithmetic. Dividing by zero is an error,\nnot infinity.",
		Params: []Param{
			floatParam("first", "any number"),
			{Name: "operator", Kind: KindOperator, Hint: "one of + - * /"},
			floatParam("second", "any number"),
		},
		invoke: func(a []Value) Result[string] { return floatText(Calculate(a[0].Float, a[1].Op, a[2].Float)) },
	},
	{
		ID: "gcd", Title: "Greatest common divisor", Aliases: []string{"hcf"},
		Summary: "Compute the GCD of two non-negative integers.",
		Doc:     "Euclidean algorithm by repeated remainder. GCD(a, 0) is a and\nGCD(0, 0) is 0.",
		Params:  []Param{intParam("first", "non-negative integer"), intParam("second", "non-negative integer")},
		invoke:  func(a []Value) Result[string] { return intText(GCD(a[0].Int, a[1].Int)) },
	},
	{
		ID: "perfect", Title: "Perfect number", Aliases: []string{"perfect-number"},
		Summary: "Report whether a number equals the sum of its proper divisors.",
		Doc:     "28 = 1 + 2 + 4 + 7 + 14, so 28 is perfect. 1 is not.",
		Params:  []Param{intParam("number", "positive integer")},
		invoke:  func(a []Value) Result[string] { return CheckPerfect(a[0].Int) },
	},
	{
		ID: "divisors", Title: "All divisors", Aliases: []string{"divs"},
		Summary: "List every divisor of a positive integer.",
		Doc:     "Ascending, space-joined, including 1 and the number itself.",
		Params:  []Param{intParam("number", "positive integer")},
		invoke:  func(a []Value) Result[string] { return Divisors(a[0].Int) },
	},
	{
		ID: "sign", Title: "Sign", Aliases: []string{"signum"},
		Summary: "Classify a number as positive, negative, or zero.",
		Doc:     "Prints `Positive`, `Negative`, or `Zero`.",
		Params:  []Param{floatParam("number", "any number")},
		invoke:  func(a []Value) Result[string] { return CheckSign(a[0].Float) },
	},
	{
		ID: "power", Title: "Power", Aliases: []string{"pow", "exponent"},
		Summary: "Raise a base to an integer exponent.",
		Doc:     "Standard floating-point exponentiation. Negative exponents give\nfractions; 0 to a negative power gives +Inf.",
		Params:  []Param{floatParam("base", "any number"), intParam("exponent", "any integer")},
		invoke:  func(a []Value) Result[string] { return floatText(Power(a[0].Float, a[1].Int)) },
	},
}

// lookup maps IDs, aliases, and decimal menu numbers to catalog indices.
var lookup = buildLookup()

func buildLookup() map[string]int {
	m := make(map[string]int, len(catalog)*3)
	add := func(key string, i int) {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			panic("arith: empty operation name")
		}
		if prev, ok := m[key]; ok && prev != i {
			panic("arith: duplicate operation name " + key)
		}
		m[key] = i
	}
	for i, op := range catalog {
		add(op.ID, i)
		add(strconv.Itoa(i+1), i)
		for _, alias := range op.Aliases {
			add(alias, i)
		}
	}
	return m
}

// Catalog returns the twenty operations in fixed menu order.
func Catalog() []Operation {
	out := make([]Operation, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves an operation by ID, alias, or decimal menu number
// ("7" resolves to the seventh menu entry).
func Lookup(name string) (Operation, bool) {
	i, ok := lookup[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Operation{}, false
	}
	return catalog[i], true
}
