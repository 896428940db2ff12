// Package propagate implements closed-form first-order error propagation for
// measurements carrying an absolute uncertainty.
//
// For a derived quantity Z = f(x) the uncertainty is |f'(x)| * err(x). When
// several independent measurements contribute, their terms are combined in
// quadrature (square root of the sum of squares).
//
// Supported operations:
//
//   - Summation: sum of a series, subtraction by negating the value
//   - Power, Square: x^p for any real p
//   - Logarithm: natural logarithm
//   - Sine, Cosine, Tangent: trigonometric functions in radians
//   - Product, ProductAbsolute: product of a series
//   - Division: k * x^m / y^n
//
// # Usage
//
//	area, err := propagate.Product(propagate.Series{{Value: 2, Err: .1}, {Value: 3, Err: .2}})
//	ratio, err := propagate.Division(x, y, propagate.WithPowers(3, 4), propagate.WithCoefficient(5))
//
// Inputs that would divide by zero, take the logarithm of a non-positive
// value or carry a negative uncertainty return ErrDomain instead of NaN.
package propagate
