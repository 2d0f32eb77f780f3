package kitaev

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCircuit(t *testing.T) {
	Convey("Given an empty circuit", t, func() {
		c := NewCircuit(3, "prep")
		So(c.GateCount(), ShouldEqual, 0)
		So(c.Measured(), ShouldBeFalse)

		Convey("Appending gates grows the instruction list in order", func() {
			c.H(0)
			c.X(1)
			c.RX(math.Pi/2, 2)
			So(c.GateCount(), ShouldEqual, 3)
			So(c.Gates[0].Name, ShouldEqual, GateH)
			So(c.Gates[1].Name, ShouldEqual, GateX)
			So(c.Gates[2].Name, ShouldEqual, GateRX)
			So(c.Gates[2].Params[0], ShouldAlmostEqual, math.Pi/2, 1e-15)
		})

		Convey("MeasureAll appends one measurement per qubit", func() {
			c.MeasureAll()
			So(c.GateCount(), ShouldEqual, 3)
			So(c.Measured(), ShouldBeTrue)
			for q, g := range c.Gates {
				So(g.Name, ShouldEqual, GateMeasure)
				So(g.Qubits[0], ShouldEqual, q)
			}
		})

		Convey("Copy is deep", func() {
			c.H(0)
			c.SetStateVector([]complex128{1, 0, 0, 0, 0, 0, 0, 0})
			clone := c.Copy()
			clone.X(1)
			clone.Gates[0].Qubits[0] = 2
			clone.Gates[1].Amplitudes[0] = 0

			So(c.GateCount(), ShouldEqual, 2)
			So(c.Gates[0].Qubits[0], ShouldEqual, 0)
			So(c.Gates[1].Amplitudes[0], ShouldEqual, complex(1, 0))
		})
	})
}

func TestMeasurementAdapters(t *testing.T) {
	Convey("Given a state-preparation circuit", t, func() {
		prep := NewCircuit(3, "gaussian")
		amps := make([]complex128, 8)
		amps[0] = 1
		prep.SetStateVector(amps)
		before := prep.GateCount()

		Convey("MeasureZ appends only measurements", func() {
			out := MeasureZ(prep)
			So(out.Name, ShouldEqual, "gaussian_measure_z")
			So(out.GateCount(), ShouldEqual, before+3)
			So(out.Measured(), ShouldBeTrue)
			So(prep.GateCount(), ShouldEqual, before)
			So(prep.Measured(), ShouldBeFalse)
		})

		Convey("MeasureX prefixes every measurement with a Hadamard", func() {
			out := MeasureX(prep)
			So(out.Name, ShouldEqual, "gaussian_measure_x")
			So(out.GateCount(), ShouldEqual, before+6)
			hadamards := 0
			for _, g := range out.Gates {
				if g.Name == GateH {
					hadamards++
				}
			}
			So(hadamards, ShouldEqual, 3)
			So(prep.GateCount(), ShouldEqual, before)
		})

		Convey("MeasureEdgeCorrelation rotates only the edge qubits", func() {
			out := MeasureEdgeCorrelation(prep)
			So(out.Name, ShouldEqual, "gaussian_measure_edge_correlation")
			So(out.GateCount(), ShouldEqual, before+5)

			var rotations []Gate
			for _, g := range out.Gates {
				if g.Name == GateRX {
					rotations = append(rotations, g)
				}
			}
			So(len(rotations), ShouldEqual, 2)
			So(rotations[0].Qubits[0], ShouldEqual, 0)
			So(rotations[1].Qubits[0], ShouldEqual, 2)
			So(rotations[0].Params[0], ShouldAlmostEqual, math.Pi/2, 1e-15)
			So(rotations[1].Params[0], ShouldAlmostEqual, math.Pi/2, 1e-15)
			So(prep.GateCount(), ShouldEqual, before)
		})
	})
}
