// Package gates provides the standard single-qubit gates as producers of
// animation targets: applying a gate to the displayed state yields the next
// state to fly to.
package gates

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/blochview/internal/qmath"
)

// Gate is a 2x2 unitary acting on amplitude pairs.
type Gate struct {
	Name string
	M    *mat.CDense
}

func newGate(name string, a, b, c, d complex128) Gate {
	return Gate{Name: name, M: mat.NewCDense(2, 2, []complex128{a, b, c, d})}
}

func Identity() Gate { return newGate("I", 1, 0, 0, 1) }
func PauliX() Gate   { return newGate("X", 0, 1, 1, 0) }
func PauliY() Gate   { return newGate("Y", 0, -1i, 1i, 0) }
func PauliZ() Gate   { return newGate("Z", 1, 0, 0, -1) }

func Hadamard() Gate {
	h := complex(1/math.Sqrt2, 0)
	return newGate("H", h, h, h, -h)
}

func SGate() Gate { return newGate("S", 1, 0, 0, 1i) }
func TGate() Gate { return newGate("T", 1, 0, 0, cmplx.Exp(1i*math.Pi/4)) }

// Rx is a rotation by theta around the X axis.
func Rx(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return newGate(fmt.Sprintf("Rx(%.3f)", theta), c, s, s, c)
}

// Ry is a rotation by theta around the Y axis.
func Ry(theta float64) Gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return newGate(fmt.Sprintf("Ry(%.3f)", theta), c, -s, s, c)
}

// Rz is a rotation by theta around the Z axis.
func Rz(theta float64) Gate {
	return newGate(fmt.Sprintf("Rz(%.3f)", theta),
		cmplx.Exp(complex(0, -theta/2)), 0,
		0, cmplx.Exp(complex(0, theta/2)))
}

// Apply multiplies the gate matrix into an amplitude pair.
func Apply(g Gate, a qmath.Amplitudes) qmath.Amplitudes {
	in := mat.NewCDense(2, 1, []complex128{
		a.Alpha.Complex128(),
		a.Beta.Complex128(),
	})
	out := mat.NewCDense(2, 1, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, g.M.RawCMatrix(), in.RawCMatrix(), 0, out.RawCMatrix())
	return qmath.Amplitudes{
		Alpha: qmath.FromComplex128(out.At(0, 0)),
		Beta:  qmath.FromComplex128(out.At(1, 0)),
	}
}

// ApplyToSpherical applies a gate to a state in spherical form, routing
// through the amplitude representation.
func ApplyToSpherical(g Gate, s qmath.Spherical) qmath.Spherical {
	return qmath.AmplitudesToSpherical(Apply(g, qmath.SphericalToAmplitudes(s)))
}

// Registry maps gate names to constructors for menus and the CLI.
type Registry struct {
	gates map[string]func() Gate
}

func NewRegistry() *Registry {
	r := &Registry{gates: make(map[string]func() Gate)}
	r.gates["I"] = Identity
	r.gates["X"] = PauliX
	r.gates["Y"] = PauliY
	r.gates["Z"] = PauliZ
	r.gates["H"] = Hadamard
	r.gates["S"] = SGate
	r.gates["T"] = TGate
	return r
}

func (r *Registry) Get(name string) (Gate, error) {
	fn, ok := r.gates[name]
	if !ok {
		return Gate{}, fmt.Errorf("unknown gate: %s", name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.gates))
	for name := range r.gates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
