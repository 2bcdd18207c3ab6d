package crank_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mechcalc/internal/crank"
	"github.com/san-kum/mechcalc/internal/mech"
)

var _ = Describe("Model", func() {
	var m *crank.Model

	BeforeEach(func() {
		var err error
		m, err = crank.New(0.05, 0.2, 50)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		DescribeTable("rejects unrealizable geometry",
			func(r, l, omega float64) {
				_, err := crank.New(r, l, omega)
				Expect(err).To(MatchError(mech.ErrInvalidArgument))
			},
			Entry("zero crank radius", 0.0, 0.2, 50.0),
			Entry("negative crank radius", -0.05, 0.2, 50.0),
			Entry("rod equal to crank", 0.05, 0.05, 50.0),
			Entry("rod shorter than crank", 0.05, 0.04, 50.0),
			Entry("NaN rod", 0.05, math.NaN(), 50.0),
			Entry("infinite omega", 0.05, 0.2, math.Inf(1)),
		)

		It("accepts zero and negative angular velocity", func() {
			_, err := crank.New(0.05, 0.2, 0)
			Expect(err).NotTo(HaveOccurred())
			_, err = crank.New(0.05, 0.2, -50)
			Expect(err).NotTo(HaveOccurred())
		})

		It("exposes its parameters", func() {
			Expect(m.CrankRadius()).To(Equal(0.05))
			Expect(m.RodLength()).To(Equal(0.2))
			Expect(m.AngularVelocity()).To(Equal(50.0))
			Expect(m.Stroke()).To(BeNumerically("~", 0.1, 1e-15))
		})
	})

	Describe("position", func() {
		It("sits at r+L at outer dead centre", func() {
			Expect(m.Position(0)).To(BeNumerically("~", 0.25, 1e-15))
		})

		It("sits at L-r at inner dead centre", func() {
			Expect(m.Position(math.Pi)).To(BeNumerically("~", 0.15, 1e-12))
		})

		It("reduces to the rod projection at quarter turn", func() {
			Expect(m.Position(math.Pi / 2)).To(BeNumerically("~", math.Sqrt(0.2*0.2-0.05*0.05), 1e-12))
			Expect(m.Position(math.Pi / 2)).To(BeNumerically("~", 0.19365, 1e-5))
		})

		It("is periodic over a revolution", func() {
			for _, theta := range mech.Span(37, -2*math.Pi, 2*math.Pi) {
				Expect(m.Position(theta + 2*math.Pi)).To(BeNumerically("~", m.Position(theta), 1e-12))
			}
		})

		It("stays within the stroke", func() {
			for _, theta := range mech.Span(200, 0, 2*math.Pi) {
				Expect(m.Position(theta)).To(BeNumerically(">=", 0.15-1e-12))
				Expect(m.Position(theta)).To(BeNumerically("<=", 0.25+1e-12))
			}
		})
	})

	Describe("velocity", func() {
		It("vanishes at both dead centres", func() {
			Expect(m.Velocity(0)).To(BeNumerically("~", 0, 1e-12))
			Expect(m.Velocity(math.Pi)).To(BeNumerically("~", 0, 1e-12))
		})

		It("vanishes everywhere when the crank is still", func() {
			still, err := m.WithAngularVelocity(0)
			Expect(err).NotTo(HaveOccurred())
			for _, theta := range mech.Span(16, 0, 2*math.Pi) {
				Expect(still.Velocity(theta)).To(BeNumerically("~", 0, 1e-15))
				Expect(still.Acceleration(theta)).To(BeNumerically("~", 0, 1e-15))
			}
		})

		It("flips sign with rotation direction", func() {
			reverse, err := m.WithAngularVelocity(-50)
			Expect(err).NotTo(HaveOccurred())
			Expect(reverse.Velocity(1.0)).To(BeNumerically("~", -m.Velocity(1.0), 1e-12))
		})
	})

	Describe("acceleration", func() {
		It("matches the closed form at dead centres", func() {
			rw2 := 0.05 * 50.0 * 50.0
			lambda := 0.05 / 0.2
			Expect(m.Acceleration(0)).To(BeNumerically("~", -rw2*(1+lambda), 1e-9))
			Expect(m.Acceleration(math.Pi)).To(BeNumerically("~", rw2*(1-lambda), 1e-9))
		})
	})

	DescribeTable("analytic derivatives agree with finite differences",
		func(r, l, omega float64) {
			model, err := crank.New(r, l, omega)
			Expect(err).NotTo(HaveOccurred())

			const h = 1e-4
			for _, theta := range mech.Span(41, 0, 2*math.Pi) {
				p0 := model.Position(theta)
				pm := model.Position(theta - h)
				pp := model.Position(theta + h)

				first := (pp - pm) / (2 * h)
				second := (pp - 2*p0 + pm) / (h * h)

				Expect(first).To(BeNumerically("~", model.Velocity(theta)/omega, 1e-7),
					"velocity at theta=%f", theta)
				Expect(second).To(BeNumerically("~", model.Acceleration(theta)/(omega*omega), 1e-6),
					"acceleration at theta=%f", theta)
			}
		},
		Entry("engine geometry, unit speed", 0.05, 0.2, 1.0),
		Entry("engine geometry, 50 rad/s", 0.05, 0.2, 50.0),
		Entry("short rod", 0.1, 0.15, 1.0),
		Entry("reverse rotation", 0.03, 0.12, -20.0),
	)

	Describe("cycle sampling", func() {
		It("yields exactly n samples spanning two revolutions", func() {
			samples, err := m.Samples(1000, crank.DefaultCycles)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen(1000))
			Expect(samples[0].Theta).To(Equal(0.0))
			Expect(samples[999].Theta).To(BeNumerically("~", 4*math.Pi, 1e-12))

			for i := 1; i < len(samples); i++ {
				Expect(samples[i].Theta).To(BeNumerically(">=", samples[i-1].Theta))
			}
		})

		It("pairs each angle with the model's quantities", func() {
			samples, err := m.Samples(7, 1)
			Expect(err).NotTo(HaveOccurred())
			for _, s := range samples {
				Expect(s).To(Equal(m.At(s.Theta)))
			}
		})

		It("is restartable", func() {
			seq, err := m.Cycle(25, 1.5)
			Expect(err).NotTo(HaveOccurred())

			var first, second []crank.Sample
			for s := range seq {
				first = append(first, s)
			}
			for s := range seq {
				second = append(second, s)
			}
			Expect(second).To(Equal(first))
		})

		It("stops when the consumer breaks", func() {
			seq, err := m.Cycle(100, 2)
			Expect(err).NotTo(HaveOccurred())

			count := 0
			for range seq {
				count++
				if count == 10 {
					break
				}
			}
			Expect(count).To(Equal(10))
		})

		It("places a single sample at zero", func() {
			samples, err := m.Samples(1, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(samples).To(HaveLen(1))
			Expect(samples[0].Theta).To(Equal(0.0))
		})

		DescribeTable("rejects bad sweep arguments",
			func(n int, cycles float64) {
				_, err := m.Cycle(n, cycles)
				Expect(err).To(MatchError(mech.ErrInvalidArgument))
			},
			Entry("zero samples", 0, 2.0),
			Entry("negative samples", -5, 2.0),
			Entry("zero cycles", 10, 0.0),
			Entry("NaN cycles", 10, math.NaN()),
		)
	})

	Describe("presentation data", func() {
		It("splits samples into three curves", func() {
			samples, err := m.Samples(50, 1)
			Expect(err).NotTo(HaveOccurred())

			series := crank.Series(samples)
			Expect(series).To(HaveLen(3))
			for _, s := range series {
				Expect(s.X).To(HaveLen(50))
				Expect(s.Y).To(HaveLen(50))
				Expect(s.XLabel).To(Equal("Angle (rad)"))
			}
			Expect(series[0].Y[0]).To(Equal(samples[0].Position))
			Expect(series[2].Y[49]).To(Equal(samples[49].Acceleration))
		})

		It("reports peaks over a sweep", func() {
			samples, err := m.Samples(2001, 1)
			Expect(err).NotTo(HaveOccurred())

			peaks := crank.Peaks(samples)
			Expect(peaks.MaxPos).To(BeNumerically("~", 0.25, 1e-12))
			Expect(peaks.MinPos).To(BeNumerically("~", 0.15, 1e-9))
			Expect(peaks.MaxAccel).To(BeNumerically("~", 0.05*2500*1.25, 1e-6))
			Expect(peaks.MaxSpeed).To(BeNumerically(">", 0.05*50))
		})
	})
})
