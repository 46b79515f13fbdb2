package qmath

import (
	"math"
	"testing"
)

func TestAmplitudesToSphericalBasisStates(t *testing.T) {
	// |0⟩ → north pole
	s := AmplitudesToSpherical(Amplitudes{Alpha: Complex{Re: 1}})
	if math.Abs(s.Theta) > 1e-9 {
		t.Errorf("|0> should map to theta=0, got %.9f", s.Theta)
	}

	// |1⟩ → south pole
	s = AmplitudesToSpherical(Amplitudes{Beta: Complex{Re: 1}})
	if math.Abs(s.Theta-math.Pi) > 1e-9 {
		t.Errorf("|1> should map to theta=pi, got %.9f", s.Theta)
	}
}

func TestAmplitudesToSphericalPlus(t *testing.T) {
	s := AmplitudesToSpherical(Amplitudes{
		Alpha: Complex{Re: 0.7071},
		Beta:  Complex{Re: 0.7071},
	})
	if math.Abs(s.Theta-math.Pi/2) > 1e-4 {
		t.Errorf("|+> theta: got %.6f, expected %.6f", s.Theta, math.Pi/2)
	}
	if math.Abs(s.Phi) > 1e-9 {
		t.Errorf("|+> phi: got %.6f, expected 0", s.Phi)
	}
}

func TestAmplitudesToSphericalUnnormalized(t *testing.T) {
	// scaling both amplitudes must not move the point
	a := Amplitudes{Alpha: Complex{Re: 3}, Beta: Complex{Re: 3, Im: 4}}
	b := Amplitudes{Alpha: Complex{Re: 0.3}, Beta: Complex{Re: 0.3, Im: 0.4}}

	sa, sb := AmplitudesToSpherical(a), AmplitudesToSpherical(b)
	if math.Abs(sa.Theta-sb.Theta) > 1e-9 || math.Abs(sa.Phi-sb.Phi) > 1e-9 {
		t.Errorf("normalization leaked into angles: %+v vs %+v", sa, sb)
	}
}

func TestAmplitudesToSphericalDegenerate(t *testing.T) {
	s := AmplitudesToSpherical(Amplitudes{})
	if s.Theta != 0 || s.Phi != 0 {
		t.Errorf("zero amplitudes should map to north pole, got %+v", s)
	}
}

func TestSphericalToCartesianYAxis(t *testing.T) {
	// |+i⟩ points along +Y
	c := SphericalToCartesian(Spherical{Theta: math.Pi / 2, Phi: math.Pi / 2})
	if math.Abs(c.X) > 1e-9 || math.Abs(c.Y-1) > 1e-9 || math.Abs(c.Z) > 1e-9 {
		t.Errorf("expected (0,1,0), got (%.9f, %.9f, %.9f)", c.X, c.Y, c.Z)
	}
}

func TestSphericalToCartesianUnitNorm(t *testing.T) {
	for i := 0; i <= 20; i++ {
		for j := 0; j < 20; j++ {
			s := Spherical{
				Theta: float64(i) / 20 * math.Pi,
				Phi:   float64(j) / 20 * 2 * math.Pi,
			}
			if n := SphericalToCartesian(s).Norm(); math.Abs(n-1) > 1e-9 {
				t.Fatalf("norm %.12f at theta=%.3f phi=%.3f", n, s.Theta, s.Phi)
			}
		}
	}
}

func TestCartesianRoundTrip(t *testing.T) {
	// poles excluded: phi is undefined there
	for i := 1; i < 20; i++ {
		for j := 0; j < 20; j++ {
			s := Spherical{
				Theta: float64(i) / 20 * math.Pi,
				Phi:   float64(j) / 20 * 2 * math.Pi,
			}
			back := CartesianToSpherical(SphericalToCartesian(s))
			if math.Abs(back.Theta-s.Theta) > 1e-6 {
				t.Fatalf("theta round trip: got %.9f, expected %.9f", back.Theta, s.Theta)
			}
			if math.Abs(back.Phi-s.Phi) > 1e-6 {
				t.Fatalf("phi round trip: got %.9f, expected %.9f", back.Phi, s.Phi)
			}
		}
	}
}

func TestAmplitudeRoundTrip(t *testing.T) {
	for i := 1; i < 12; i++ {
		for j := 0; j < 12; j++ {
			s := Spherical{
				Theta: float64(i) / 12 * math.Pi,
				Phi:   float64(j) / 12 * 2 * math.Pi,
			}
			back := AmplitudesToSpherical(SphericalToAmplitudes(s))
			if math.Abs(back.Theta-s.Theta) > 1e-6 {
				t.Fatalf("theta round trip: got %.9f, expected %.9f", back.Theta, s.Theta)
			}
			// phi is meaningless when sin(theta/2) vanishes
			if s.Theta > 1e-6 && math.Abs(back.Phi-s.Phi) > 1e-6 && math.Abs(back.Phi-s.Phi-2*math.Pi) > 1e-6 {
				t.Fatalf("phi round trip: got %.9f, expected %.9f", back.Phi, s.Phi)
			}
		}
	}
}

func TestCartesianToSphericalDegenerate(t *testing.T) {
	s := CartesianToSpherical(Cartesian{})
	if s.Theta != 0 || s.Phi != 0 {
		t.Errorf("zero vector should map to north pole, got %+v", s)
	}
}

func TestCartesianToSphericalScaled(t *testing.T) {
	// non-unit input: length must be normalized away
	s := CartesianToSpherical(Cartesian{X: 0, Y: 0, Z: -5})
	if math.Abs(s.Theta-math.Pi) > 1e-9 {
		t.Errorf("expected theta=pi for -Z, got %.9f", s.Theta)
	}
}

func TestPhiNormalization(t *testing.T) {
	// alpha with phase pi, beta real: phi = 0 - pi, wrapped into [0, 2pi)
	a := Amplitudes{
		Alpha: Complex{Re: -0.5},
		Beta:  Complex{Re: 0.5},
	}
	s := AmplitudesToSpherical(a)
	if s.Phi < 0 || s.Phi >= 2*math.Pi {
		t.Errorf("phi out of [0, 2pi): %.9f", s.Phi)
	}
	if math.Abs(s.Phi-math.Pi) > 1e-9 {
		t.Errorf("expected phi=pi, got %.9f", s.Phi)
	}
}

func TestComplexOps(t *testing.T) {
	c := Complex{Re: 3, Im: 4}
	if math.Abs(c.Abs()-5) > 1e-12 {
		t.Errorf("abs: got %.12f, expected 5", c.Abs())
	}
	if math.Abs(Complex{Re: 0, Im: 1}.Arg()-math.Pi/2) > 1e-12 {
		t.Error("arg of i should be pi/2")
	}
	if FromComplex128(c.Complex128()) != c {
		t.Error("complex128 round trip failed")
	}
}
