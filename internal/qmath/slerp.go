package qmath

import "math"

// slerpEpsilon is the angle below which sin(omega) is too small to divide
// by and the interpolation degrades to a component-wise lerp.
const slerpEpsilon = 1e-4

// Slerp interpolates along the minor great-circle arc between two
// Bloch-sphere points at constant angular speed. t=0 returns start, t=1
// returns end, and every intermediate point lies on the unit sphere.
//
// Near-coincident endpoints (omega below slerpEpsilon) fall back to lerping
// theta and phi directly. Exact antipodes have no unique great circle; they
// take the sin-ratio path, which traces the arc through the phi plane of
// the endpoints.
func Slerp(start, end Spherical, t float64) Spherical {
	v0 := SphericalToCartesian(start)
	v1 := SphericalToCartesian(end)

	dot := clamp(v0.Dot(v1), -1, 1)
	omega := math.Acos(dot)

	if omega < slerpEpsilon {
		return Spherical{
			Theta: start.Theta + (end.Theta-start.Theta)*t,
			Phi:   start.Phi + (end.Phi-start.Phi)*t,
		}
	}

	sinOmega := math.Sin(omega)
	a := math.Sin((1-t)*omega) / sinOmega
	b := math.Sin(t*omega) / sinOmega

	return CartesianToSpherical(Cartesian{
		X: a*v0.X + b*v1.X,
		Y: a*v0.Y + b*v1.Y,
		Z: a*v0.Z + b*v1.Z,
	})
}
