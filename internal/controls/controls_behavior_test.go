package controls_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/motorwave/internal/controls"
	"github.com/san-kum/motorwave/internal/wave"
)

var _ = Describe("Parameter controls", func() {
	var p *wave.Params

	BeforeEach(func() {
		p = wave.DefaultParams()
	})

	Describe("the wave factor entry", func() {
		var field *controls.Field

		BeforeEach(func() {
			field = controls.WaveFactorField(p)
		})

		It("commits values inside [0, 1]", func() {
			Expect(field.Apply("0.4")).To(Succeed())
			Expect(p.WaveFactor).To(Equal(0.4))
		})

		It("resets out-of-range input to 0.0 instead of clamping", func() {
			p.WaveFactor = 0.8
			Expect(field.Apply("1.5")).To(MatchError(wave.ErrOutOfRange))
			Expect(p.WaveFactor).To(Equal(0.0))
		})

		It("saturates at 1.0 when incremented from 0.9", func() {
			p.WaveFactor = 0.9
			for i := 0; i < 9; i++ {
				field.Increment()
				Expect(p.WaveFactor).To(BeNumerically("<=", 1.0))
			}
			Expect(p.WaveFactor).To(Equal(1.0))
		})
	})

	Describe("the stroke length entry", func() {
		DescribeTable("resets invalid input to the variant fallback",
			func(fallback int, input string, want int) {
				field := controls.StrokeLengthField(p, fallback)
				Expect(field.Apply(input)).NotTo(Succeed())
				Expect(p.StrokeLength).To(Equal(want))
			},
			Entry("tk variant, zero", 10, "0", 10),
			Entry("tk variant, junk", 10, "ten", 10),
			Entry("qt variant, zero", 1, "0", 1),
			Entry("qt variant, too large", 1, "12", 1),
		)

		It("never leaves the parameter out of range", func() {
			field := controls.StrokeLengthField(p, 10)
			for _, in := range []string{"-4", "0", "3", "99", "", "2e3"} {
				_ = field.Apply(in)
				Expect(p.Validate()).To(Succeed())
			}
		})
	})

	Describe("a panel shared with a reader", func() {
		It("is visible through the same params pointer", func() {
			panel, err := controls.Build(controls.LayoutFields, p, 10)
			Expect(err).NotTo(HaveOccurred())

			reader := p
			c, ok := panel.Find("wave factor")
			Expect(ok).To(BeTrue())
			Expect(c.Apply("0.25")).To(Succeed())
			Expect(reader.WaveFactor).To(Equal(0.25))
		})
	})
})
