// Package qmath provides the state-representation math for a single qubit
// on the Bloch sphere.
//
// The package defines three equivalent representations and the pure
// functions that map between them:
//
//   - [Amplitudes]: complex coefficients α|0⟩ + β|1⟩
//   - [Spherical]: polar/azimuthal angle pair (theta, phi)
//   - [Cartesian]: unit vector on the sphere surface
//
// Spherical form is the canonical one: every conversion and the great-circle
// interpolator [Slerp] route through it. All functions are total — degenerate
// inputs (zero vectors, poles) map to defined defaults instead of returning
// errors.
//
// # Conventions
//
// theta ∈ [0, π] is measured from +Z, phi ∈ [0, 2π) from +X in the XY
// plane. [SphericalToAmplitudes] fixes the physically unobservable global
// phase by making alpha real-valued.
package qmath
