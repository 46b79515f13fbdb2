package qmath

import "math"

// Amplitudes is a qubit state |ψ⟩ = α|0⟩ + β|1⟩. The pair need not be
// normalized; conversions normalize internally.
type Amplitudes struct {
	Alpha Complex `yaml:"alpha" json:"alpha"`
	Beta  Complex `yaml:"beta" json:"beta"`
}

// Spherical is a point on the Bloch sphere: Theta ∈ [0, π] from +Z,
// Phi ∈ [0, 2π) from +X.
type Spherical struct {
	Theta float64 `yaml:"theta" json:"theta"`
	Phi   float64 `yaml:"phi" json:"phi"`
}

// Cartesian is a point in 3-space; conversions from valid spherical pairs
// produce unit vectors.
type Cartesian struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Norm returns the vector length.
func (c Cartesian) Norm() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// Dot returns the scalar product with o.
func (c Cartesian) Dot(o Cartesian) float64 {
	return c.X*o.X + c.Y*o.Y + c.Z*o.Z
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizePhi wraps an azimuthal angle into [0, 2π).
func normalizePhi(phi float64) float64 {
	for phi < 0 {
		phi += 2 * math.Pi
	}
	for phi >= 2*math.Pi {
		phi -= 2 * math.Pi
	}
	return phi
}

// AmplitudesToSpherical maps an amplitude pair to Bloch-sphere angles.
// The zero state (both amplitudes zero) maps to the north pole. The clamp
// guards acos against floating-point drift past 1.
func AmplitudesToSpherical(a Amplitudes) Spherical {
	ma, mb := a.Alpha.Abs(), a.Beta.Abs()
	norm := math.Sqrt(ma*ma + mb*mb)
	if norm == 0 {
		return Spherical{}
	}
	theta := 2 * math.Acos(clamp(ma/norm, 0, 1))
	phi := normalizePhi(a.Beta.Arg() - a.Alpha.Arg())
	return Spherical{Theta: theta, Phi: phi}
}

// SphericalToAmplitudes returns the representative amplitude pair with alpha
// real-valued. Global phase is unobservable, so this pins one convention.
func SphericalToAmplitudes(s Spherical) Amplitudes {
	half := s.Theta / 2
	return Amplitudes{
		Alpha: Complex{Re: math.Cos(half)},
		Beta: Complex{
			Re: math.Sin(half) * math.Cos(s.Phi),
			Im: math.Sin(half) * math.Sin(s.Phi),
		},
	}
}

// SphericalToCartesian maps Bloch angles to the unit vector they name.
func SphericalToCartesian(s Spherical) Cartesian {
	st := math.Sin(s.Theta)
	return Cartesian{
		X: st * math.Cos(s.Phi),
		Y: st * math.Sin(s.Phi),
		Z: math.Cos(s.Theta),
	}
}

// CartesianToSpherical maps a vector back to Bloch angles, normalizing away
// its length. The zero vector maps to the north pole. Phi at the poles is
// mathematically undefined; whatever atan2 yields there is returned.
func CartesianToSpherical(c Cartesian) Spherical {
	r := c.Norm()
	if r == 0 {
		return Spherical{}
	}
	theta := math.Acos(clamp(c.Z/r, -1, 1))
	phi := math.Atan2(c.Y, c.X)
	// atan2 is within ±π, one correction suffices
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return Spherical{Theta: theta, Phi: phi}
}
