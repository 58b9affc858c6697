package sim

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/turtlesim/internal/raster"
	"github.com/san-kum/turtlesim/internal/turtle"
)

var _ = Describe("Population", func() {
	var (
		canvas *raster.Image
		rng    *rand.Rand
	)

	BeforeEach(func() {
		canvas = raster.New(200, 200, raster.White)
		rng = rand.New(rand.NewSource(1))
	})

	Context("when every move is blocked", func() {
		It("removes the turtle in the first tick", func() {
			blocked := raster.New(40, 40, raster.Black)
			t := turtle.New(blocked, 20, 20, 0, turtle.WithStrokeWidth(4))
			pop := NewPopulation(&fixedPolicy{step: 4, candidates: []float64{0, 90, -90}}, rng, t)

			stats := pop.Tick()

			Expect(pop.Empty()).To(BeTrue())
			Expect(stats.Removals).To(Equal(1))
			Expect(stats.Moves).To(BeZero())
			Expect(stats.Live).To(BeZero())
		})

		It("restores the heading after each refused candidate", func() {
			c := raster.New(100, 100, raster.White)
			// wall right in front, open to the left
			c.DrawSegment(raster.Point{X: 60, Y: 0}, raster.Point{X: 60, Y: 100}, raster.Black, 4)
			t := turtle.New(c, 52, 50, 0, turtle.WithStrokeWidth(4))
			pop := NewPopulation(&fixedPolicy{step: 4, candidates: []float64{0, -90}}, rng, t)

			stats := pop.Tick()

			Expect(stats.Moves).To(Equal(1))
			Expect(t.Heading()).To(BeNumerically("~", 90, 1e-9))
			Expect(t.Position().Y).To(BeNumerically("~", 46, 1e-9))
		})
	})

	Context("when a turtle branches", func() {
		var (
			parent *turtle.Turtle
			pop    *Population
			policy *fixedPolicy
		)

		BeforeEach(func() {
			parent = turtle.New(canvas, 100, 150, 90, turtle.WithStrokeWidth(4))
			policy = &fixedPolicy{step: 4, candidates: []float64{0}, branchTurn: []float64{90}, spawnsLeft: 1}
			pop = NewPopulation(policy, rng, parent)
		})

		It("adds the clone after the pass", func() {
			stats := pop.Tick()

			Expect(stats.Spawns).To(Equal(1))
			Expect(pop.Len()).To(Equal(2))
			Expect(policy.advanced).To(Equal(1))

			clone := pop.Turtles()[1]
			Expect(clone).NotTo(BeIdenticalTo(parent))
			Expect(clone.Heading()).To(BeNumerically("~", 0, 1e-9))
			Expect(clone.Position().X).To(BeNumerically("~", 104, 1e-9))
			Expect(clone.Color()).To(Equal(parent.Color()))
			Expect(clone.StrokeWidth()).To(Equal(parent.StrokeWidth()))
		})

		It("keeps the clone moving after the parent is removed", func() {
			pop.Tick()
			clone := pop.Turtles()[1]

			// wall above the parent only
			canvas.DrawSegment(raster.Point{X: 80, Y: 138}, raster.Point{X: 100, Y: 138}, raster.Black, 2)

			stats := pop.Tick()
			Expect(stats.Removals).To(Equal(1))
			Expect(pop.Len()).To(Equal(1))
			Expect(pop.Turtles()[0]).To(BeIdenticalTo(clone))

			for i := 0; i < 5; i++ {
				x := clone.Position().X
				pop.Tick()
				Expect(clone.Position().X).To(BeNumerically("~", x+4, 1e-9))
				Expect(clone.Heading()).To(BeNumerically("~", 0, 1e-9))
			}
		})

		It("discards a clone that cannot step off", func() {
			policy.branchTurn = []float64{90, -90}
			canvas.DrawSegment(raster.Point{X: 94, Y: 140}, raster.Point{X: 94, Y: 150}, raster.Black, 2)
			canvas.DrawSegment(raster.Point{X: 106, Y: 140}, raster.Point{X: 106, Y: 150}, raster.Black, 2)

			stats := pop.Tick()

			Expect(stats.Spawns).To(BeZero())
			Expect(pop.Len()).To(Equal(1))
		})
	})

	Context("with the snake policy", func() {
		It("always reaches the empty state", func() {
			cfg := DefaultConfig("snake")
			cfg.Width, cfg.Height = 160, 160
			cfg.Seeds = 5
			cfg.Seed = 99
			cfg.SpawnProb = 0.2

			s, err := New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 100000 && !s.Population().Empty(); i++ {
				s.Population().Tick()
			}
			Expect(s.Population().Empty()).To(BeTrue())
		})
	})
})
