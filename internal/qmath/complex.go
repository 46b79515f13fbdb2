package qmath

import "math"

// Complex is a real/imaginary pair. It exists so amplitude states can carry
// yaml/json tags and plain-struct literals; Complex128 bridges to the
// stdlib complex type where matrix math needs it.
type Complex struct {
	Re float64 `yaml:"re" json:"re"`
	Im float64 `yaml:"im" json:"im"`
}

// Abs returns the magnitude |c|.
func (c Complex) Abs() float64 { return math.Hypot(c.Re, c.Im) }

// Arg returns the phase angle in (-π, π].
func (c Complex) Arg() float64 { return math.Atan2(c.Im, c.Re) }

// Complex128 converts to the built-in complex type.
func (c Complex) Complex128() complex128 { return complex(c.Re, c.Im) }

// FromComplex128 converts from the built-in complex type.
func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }
