package arith

// MaxOfTwo returns the larger of a and b. Equal inputs return a.
func MaxOfTwo(a, b float64) Result[float64] {
	if b > a {
		return Success(b)
	}
	return Success(a)
}
