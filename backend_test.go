package kitaev

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func runOne(backend Backend, circuit *Circuit, shots int) (Counts, error) {
	job, err := backend.Run([]*Circuit{circuit}, shots)
	if err != nil {
		return nil, err
	}
	results, err := job.Result(context.Background())
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

func TestTranspile(t *testing.T) {
	Convey("Given a statevector backend", t, func() {
		backend := NewStatevectorBackend("sim", 3, nil)

		Convey("A supported circuit passes through as a copy", func() {
			c := NewCircuit(2, "ok")
			c.H(0)
			c.MeasureAll()
			out, err := Transpile(c, backend)
			So(err, ShouldBeNil)
			So(out.GateCount(), ShouldEqual, c.GateCount())

			out.X(1)
			So(c.GateCount(), ShouldEqual, 3)
		})

		Convey("An unknown instruction is rejected", func() {
			c := NewCircuit(1, "bad")
			c.Gates = append(c.Gates, Gate{Name: "cswap", Qubits: []int{0}})
			_, err := Transpile(c, backend)
			So(errors.Is(err, ErrUnsupportedGate), ShouldBeTrue)
		})

		Convey("A circuit wider than the register is rejected", func() {
			c := NewCircuit(4, "wide")
			c.MeasureAll()
			_, err := Transpile(c, backend)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStatevectorBackendRun(t *testing.T) {
	Convey("Given a statevector backend", t, func() {
		backend := NewStatevectorBackend("sim", 3, nil)
		So(backend.Name(), ShouldEqual, "sim")
		So(backend.NumQubits(), ShouldEqual, 3)
		So(backend.BasisGates(), ShouldContain, GateMeasure)

		Convey("An X gate flips the sampled bit deterministically", func() {
			c := NewCircuit(1, "flip")
			c.X(0)
			c.MeasureAll()
			counts, err := runOne(backend, c, 100)
			So(err, ShouldBeNil)
			So(counts, ShouldResemble, Counts{"1": 100})
		})

		Convey("Bitstring character i reports qubit i", func() {
			c := NewCircuit(2, "endian")
			c.X(0)
			c.MeasureAll()
			counts, err := runOne(backend, c, 50)
			So(err, ShouldBeNil)
			So(counts, ShouldResemble, Counts{"10": 50})
		})

		Convey("An RX(pi) rotation acts as a flip", func() {
			c := NewCircuit(1, "rotate")
			c.RX(math.Pi, 0)
			c.MeasureAll()
			counts, err := runOne(backend, c, 64)
			So(err, ShouldBeNil)
			So(counts, ShouldResemble, Counts{"1": 64})
		})

		Convey("A Hadamard splits the shots over both outcomes", func() {
			c := NewCircuit(1, "split")
			c.H(0)
			c.MeasureAll()
			counts, err := runOne(backend, c, 1000)
			So(err, ShouldBeNil)
			So(counts.Shots(), ShouldEqual, 1000)
			So(counts["0"], ShouldBeGreaterThan, 300)
			So(counts["1"], ShouldBeGreaterThan, 300)
		})

		Convey("A state-preparation instruction is sampled directly", func() {
			c := NewCircuit(2, "prep")
			c.SetStateVector([]complex128{0, 0, 0, 1})
			c.MeasureAll()
			counts, err := runOne(backend, c, 200)
			So(err, ShouldBeNil)
			So(counts, ShouldResemble, Counts{"11": 200})
		})

		Convey("Equal seeds reproduce the histogram exactly", func() {
			cfg := NewConfig()
			cfg.Seed = 7
			a := NewStatevectorBackend("a", 1, cfg)
			b := NewStatevectorBackend("b", 1, cfg)

			c := NewCircuit(1, "coin")
			c.H(0)
			c.MeasureAll()

			first, err := runOne(a, c, 500)
			So(err, ShouldBeNil)
			second, err := runOne(b, c, 500)
			So(err, ShouldBeNil)
			So(first, ShouldResemble, second)
		})

		Convey("Submission validation", func() {
			c := NewCircuit(1, "ok")
			c.MeasureAll()

			Convey("Empty batches are rejected", func() {
				_, err := backend.Run(nil, 10)
				So(err, ShouldNotBeNil)
			})

			Convey("Non-positive shot counts are rejected", func() {
				_, err := backend.Run([]*Circuit{c}, 0)
				So(err, ShouldNotBeNil)
			})

			Convey("Unmeasured circuits are rejected", func() {
				bare := NewCircuit(1, "bare")
				bare.H(0)
				_, err := backend.Run([]*Circuit{bare}, 10)
				So(err, ShouldNotBeNil)
			})

			Convey("Circuits wider than the register are rejected", func() {
				wide := NewCircuit(4, "wide")
				wide.MeasureAll()
				_, err := backend.Run([]*Circuit{wide}, 10)
				So(err, ShouldNotBeNil)
			})
		})

		Convey("An execution failure resolves the job with an error", func() {
			c := NewCircuit(2, "broken")
			c.SetStateVector([]complex128{1, 0}) // wrong register size
			c.MeasureAll()
			job, err := backend.Run([]*Circuit{c}, 10)
			So(err, ShouldBeNil)
			_, err = job.Result(context.Background())
			So(err, ShouldNotBeNil)
		})

		Convey("Metrics count jobs, circuits and shots", func() {
			fresh := NewStatevectorBackend("metered", 1, nil)
			c := NewCircuit(1, "ok")
			c.MeasureAll()
			_, err := runOne(fresh, c, 25)
			So(err, ShouldBeNil)

			snap := fresh.Metrics()
			So(snap.JobsSubmitted, ShouldEqual, 1)
			So(snap.CircuitsExecuted, ShouldEqual, 1)
			So(snap.ShotsSampled, ShouldEqual, 25)
			So(snap.LastSubmission.IsZero(), ShouldBeFalse)
		})
	})
}

func TestJob(t *testing.T) {
	Convey("Given a running job handle", t, func() {
		backend := NewStatevectorBackend("sim", 1, nil)
		c := NewCircuit(1, "ok")
		c.MeasureAll()
		job, err := backend.Run([]*Circuit{c}, 5)
		So(err, ShouldBeNil)
		So(job.ID(), ShouldNotBeEmpty)
		So(job.Backend(), ShouldEqual, "sim")
		So(job.CreatedAt().IsZero(), ShouldBeFalse)

		Convey("Done closes once results are in", func() {
			<-job.Done()
			results, err := job.Result(context.Background())
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 1)
		})
	})

	Convey("Given a job that never completes", t, func() {
		job := newJob("stuck", "nowhere")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, err := job.Result(ctx)
		So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
	})
}
