package clsvg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// rootTolerance is the default imaginary-part cutoff used when deciding that
// a companion-matrix eigenvalue is effectively a real root.
const rootTolerance = 1e-7

// PolynomialRoots returns the real roots of the polynomial described by
// coeffs, given highest degree first (the same order Polynomial.Coefficients
// uses throughout this package). Degree 0-3 are solved with the closed-form
// equations already defined on Constant/Linear/Quadratic/Cubic; degree 4 and
// higher (the case curve-curve intersection's Bezout resultant produces) are
// solved as the eigenvalues of the polynomial's companion matrix, with
// eigenvalues that agree within rootTolerance collapsed to one root.
func PolynomialRoots(coeffs []float64) []float64 {
	c := trimLeadingZeros(coeffs)
	switch len(c) {
	case 0, 1:
		return nil
	case 2:
		return LinearAb(c[0], c[1]).Roots()
	case 3:
		return QuadraticAbc(c[0], c[1], c[2]).Roots()
	case 4:
		return CubicAbcd(c[0], c[1], c[2], c[3]).Roots()
	}

	n := len(c) - 1
	companion := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		companion.Set(0, j, -c[j+1]/c[0])
	}
	for i := 1; i < n; i++ {
		companion.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if !eig.Factorize(companion, mat.EigenRight) {
		return nil
	}

	values := eig.Values(nil)
	roots := make([]float64, 0, len(values))
	for _, v := range values {
		if math.Abs(imag(v)) > rootTolerance {
			continue
		}
		r, dup := real(v), false
		for _, x := range roots {
			if math.Abs(x-r) <= rootTolerance {
				dup = true
				break
			}
		}
		if !dup {
			roots = append(roots, r)
		}
	}
	return roots
}

// trimLeadingZeros drops leading zero coefficients so the companion matrix
// construction always sees a non-zero leading term.
func trimLeadingZeros(coeffs []float64) []float64 {
	h := 0
	for h < len(coeffs) && IsZero(coeffs[h]) {
		h++
	}
	return coeffs[h:]
}
