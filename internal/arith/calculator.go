package arith

import "math"

// Calculate applies one of the four basic operators to two operands.
// Division by zero is a computed failure, never Inf or NaN.
func Calculate(a float64, op string, b float64) Result[float64] {
	switch op {
	case "+":
		return Success(a + b)
	case "-":
		return Success(a - b)
	case "*":
		return Success(a * b)
	case "/":
		if b == 0 {
			return Failure[float64]("division by zero")
		}
		return Success(a / b)
	}
	return Failuref[float64]("unknown operator %q", op)
}

// Power raises base to an integer exponent with standard floating-point
// semantics. Poles like 0^-1 produce infinities, not failures.
func Power(base float64, exp int64) Result[float64] {
	return Success(math.Pow(base, float64(exp)))
}
