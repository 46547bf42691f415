package predicate

import "math"

// IsPrime reports whether n is prime. False for n < 2.
//
// Trial division on the 6k±1 wheel: after ruling out multiples of 2 and 3,
// every remaining prime candidate divisor has the form 6k±1, so the loop
// advances in steps of 2 and 4. O(√n) time, O(1) memory.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true // 2 and 3
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// w alternates 2, 4, 2, 4, … walking d over 5, 7, 11, 13, 17, 19, …
	var w int64 = 2
	for d := int64(5); d*d <= n; d += w {
		if n%d == 0 {
			return false
		}
		w = 6 - w
	}

	return true
}

// IsOddPrime reports whether n is an odd prime (OEIS A065091).
// Equivalent to And(IsOdd, IsPrime); kept as a named classifier because
// it is the registry's most common selection.
func IsOddPrime(n int64) bool {
	return n != 2 && IsPrime(n)
}

// aliquotSum returns the sum of proper divisors of n (divisors < n).
// Zero for n < 1. Pairs divisors d and n/d around √n, so O(√n).
func aliquotSum(n int64) int64 {
	if n < 2 {
		return 0
	}
	var sum int64 = 1 // 1 divides everything ≥ 2
	for d := int64(2); d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		sum += d
		if q := n / d; q != d {
			sum += q
		}
	}

	return sum
}

// IsPerfect reports whether n equals the sum of its proper divisors
// (OEIS A000396: 6, 28, 496, 8128, …). False for n < 1.
func IsPerfect(n int64) bool {
	return n >= 2 && aliquotSum(n) == n
}

// IsAbundant reports whether the sum of proper divisors of n exceeds n
// (OEIS A005101: 12, 18, 20, …). False for n < 1.
func IsAbundant(n int64) bool {
	return n >= 1 && aliquotSum(n) > n
}

// IsDeficient reports whether the sum of proper divisors of n is less
// than n (OEIS A005100). True for 1 and every prime; false for n < 1.
func IsDeficient(n int64) bool {
	return n >= 1 && aliquotSum(n) < n
}

// IsSquare reports whether n is a perfect square. False for n < 0.
// Uses the integer square root to avoid float rounding near 2^53.
func IsSquare(n int64) bool {
	if n < 0 {
		return false
	}
	r := isqrt(n)

	return r*r == n
}

// IsTriangular reports whether n = k(k+1)/2 for some k ≥ 0
// (OEIS A000217). False for n < 0.
func IsTriangular(n int64) bool {
	if n < 0 {
		return false
	}
	// n triangular ⇔ 8n+1 is an odd perfect square.
	return IsSquare(8*n + 1)
}

// IsOdd reports whether n is odd (negative n included; two's complement
// makes the mask sign-agnostic).
func IsOdd(n int64) bool { return n&1 == 1 }

// IsEven reports whether n is even.
func IsEven(n int64) bool { return n%2 == 0 }

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting the float estimate so the
// result is exact for every representable n.
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}

	return r
}
