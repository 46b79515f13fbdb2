package anim_test

import (
	"math"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/blochview/internal/anim"
	"github.com/san-kum/blochview/internal/qmath"
)

type recorder struct {
	starts  int
	ends    int
	changes []qmath.Spherical
}

func (r *recorder) callbacks() anim.Callbacks {
	return anim.Callbacks{
		OnStart:  func() { r.starts++ },
		OnEnd:    func() { r.ends++ },
		OnChange: func(s qmath.Spherical, _ qmath.Cartesian) { r.changes = append(r.changes, s) },
	}
}

var _ = Describe("Driver", func() {
	var (
		rec *recorder
		d   *anim.Driver
		t0  time.Time
	)

	newDriver := func(cfg anim.Config) {
		rec = &recorder{}
		d = anim.New(cfg, rec.callbacks())
	}

	linearCfg := anim.Config{
		Enabled:  true,
		Duration: 100 * time.Millisecond,
		Easing:   qmath.EaseLinear,
	}

	north := qmath.Spherical{}
	equatorX := qmath.Spherical{Theta: math.Pi / 2, Phi: 0}
	south := qmath.Spherical{Theta: math.Pi, Phi: 0}

	BeforeEach(func() {
		t0 = time.Unix(100, 0)
	})

	Describe("first target", func() {
		BeforeEach(func() { newDriver(linearCfg) })

		It("snaps without animating", func() {
			d.SetTarget(equatorX, t0)
			Expect(d.Animating()).To(BeFalse())
			Expect(d.Current()).To(Equal(equatorX))
		})

		It("fires no start or end events", func() {
			d.SetTarget(equatorX, t0)
			Expect(rec.starts).To(BeZero())
			Expect(rec.ends).To(BeZero())
		})

		It("notifies the initial state once", func() {
			d.SetTarget(equatorX, t0)
			Expect(rec.changes).To(HaveLen(1))
			Expect(rec.changes[0]).To(Equal(equatorX))
		})
	})

	Describe("animating toward a new target", func() {
		BeforeEach(func() {
			newDriver(linearCfg)
			d.SetTarget(north, t0)
			d.SetTarget(equatorX, t0)
		})

		It("fires exactly one start event", func() {
			Expect(rec.starts).To(Equal(1))
			Expect(d.Animating()).To(BeTrue())
		})

		It("interpolates along the great circle", func() {
			d.Step(t0.Add(50 * time.Millisecond))
			Expect(d.Current().Theta).To(BeNumerically("~", math.Pi/4, 1e-6))
			Expect(d.Current().Phi).To(BeNumerically("~", 0, 1e-6))
		})

		It("completes at the exact target and fires one end event", func() {
			d.Step(t0.Add(50 * time.Millisecond))
			stillRunning := d.Step(t0.Add(150 * time.Millisecond))
			Expect(stillRunning).To(BeFalse())
			Expect(d.Current()).To(Equal(equatorX))
			Expect(rec.ends).To(Equal(1))
		})

		It("stops requesting ticks after completion", func() {
			d.Step(t0.Add(200 * time.Millisecond))
			Expect(d.Step(t0.Add(300 * time.Millisecond))).To(BeFalse())
			Expect(rec.ends).To(Equal(1))
		})

		It("never re-notifies an unchanged state", func() {
			d.Step(t0.Add(50 * time.Millisecond))
			seen := len(rec.changes)
			d.Step(t0.Add(50 * time.Millisecond))
			Expect(rec.changes).To(HaveLen(seen))
		})

		It("delivers changes in order", func() {
			for ms := 10; ms <= 100; ms += 10 {
				d.Step(t0.Add(time.Duration(ms) * time.Millisecond))
			}
			for i := 1; i < len(rec.changes); i++ {
				Expect(rec.changes[i].Theta).To(BeNumerically(">", rec.changes[i-1].Theta))
			}
		})
	})

	Describe("re-targeting", func() {
		BeforeEach(func() {
			newDriver(linearCfg)
			d.SetTarget(north, t0)
		})

		It("ignores a target identical to the tracked one", func() {
			d.SetTarget(equatorX, t0)
			d.SetTarget(equatorX, t0.Add(20*time.Millisecond))
			Expect(rec.starts).To(Equal(1))
		})

		It("supersedes an in-flight animation", func() {
			d.SetTarget(equatorX, t0)
			d.Step(t0.Add(50 * time.Millisecond))
			midFlight := d.Current()

			t1 := t0.Add(60 * time.Millisecond)
			d.SetTarget(south, t1)

			// one start for A, one for B, A's end never fires
			Expect(rec.starts).To(Equal(2))
			Expect(rec.ends).To(BeZero())

			// B starts from the mid-flight point, not from A's origin
			d.Step(t1)
			Expect(d.Current().Theta).To(BeNumerically("~", midFlight.Theta, 1e-9))
			Expect(d.Current().Phi).To(BeNumerically("~", midFlight.Phi, 1e-9))

			d.Step(t1.Add(200 * time.Millisecond))
			Expect(d.Current()).To(Equal(south))
			Expect(rec.ends).To(Equal(1))
		})
	})

	Describe("disabled animation", func() {
		BeforeEach(func() {
			newDriver(anim.Config{Enabled: false, Duration: 100 * time.Millisecond, Easing: qmath.EaseLinear})
			d.SetTarget(north, t0)
		})

		It("snaps with no intermediate frames or events", func() {
			d.SetTarget(south, t0)
			Expect(d.Animating()).To(BeFalse())
			Expect(d.Current()).To(Equal(south))
			Expect(rec.starts).To(BeZero())
			Expect(rec.ends).To(BeZero())
		})

		It("still notifies the state change", func() {
			d.SetTarget(south, t0)
			Expect(rec.changes).To(HaveLen(2))
			Expect(rec.changes[1]).To(Equal(south))
		})
	})

	Describe("configuration defaults", func() {
		It("resolves zero duration and empty easing at construction", func() {
			newDriver(anim.Config{Enabled: true})
			d.SetTarget(north, t0)
			d.SetTarget(equatorX, t0)
			// default 300ms, ease-in-out: half time maps to half progress
			d.Step(t0.Add(150 * time.Millisecond))
			Expect(d.Current().Theta).To(BeNumerically("~", math.Pi/4, 1e-6))
		})
	})

	Describe("amplitude targets", func() {
		It("routes through the spherical form", func() {
			newDriver(linearCfg)
			d.SetAmplitudes(qmath.Amplitudes{Beta: qmath.Complex{Re: 1}}, t0)
			Expect(d.Current().Theta).To(BeNumerically("~", math.Pi, 1e-9))
		})
	})

	Describe("eased progress", func() {
		It("applies the curve before interpolating", func() {
			newDriver(anim.Config{Enabled: true, Duration: 100 * time.Millisecond, Easing: qmath.EaseIn})
			d.SetTarget(north, t0)
			d.SetTarget(equatorX, t0)
			// ease-in: f(0.5)=0.25 → a quarter of the way along the arc
			d.Step(t0.Add(50 * time.Millisecond))
			Expect(d.Current().Theta).To(BeNumerically("~", math.Pi/8, 1e-6))
		})
	})
})
