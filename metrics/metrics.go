package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "qtlattice"

// Result labels for readout_parses_total.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder groups the counters written by circuit, lattice and logical.
type Recorder struct {
	instructions *prometheus.CounterVec
	registers    *prometheus.CounterVec
	parses       *prometheus.CounterVec
	hits         *prometheus.CounterVec
}

// NewRecorder builds a Recorder and registers its collectors on reg.
// Collectors already present on reg (e.g. a second Recorder on the same
// registry) are reused instead of failing.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		instructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "circuit",
				Name:      "instructions_total",
				Help:      "Instructions appended to a circuit, by operation.",
			},
			[]string{"op"},
		),
		registers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "circuit",
				Name:      "registers_total",
				Help:      "Registers allocated on a circuit, by kind.",
			},
			[]string{"kind"},
		),
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "readout",
				Name:      "parses_total",
				Help:      "Readout strings decoded, by result.",
			},
			[]string{"result"},
		),
		hits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "readout",
				Name:      "syndrome_hits_total",
				Help:      "Syndrome events produced by readout decoding, by syndrome type.",
			},
			[]string{"type"},
		),
	}

	var err error
	if r.instructions, err = register(reg, r.instructions); err != nil {
		return nil, err
	}
	if r.registers, err = register(reg, r.registers); err != nil {
		return nil, err
	}
	if r.parses, err = register(reg, r.parses); err != nil {
		return nil, err
	}
	if r.hits, err = register(reg, r.hits); err != nil {
		return nil, err
	}

	return r, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("metrics: register collector: %w", err)
	}

	return c, nil
}

// Instruction counts one appended instruction.
func (r *Recorder) Instruction(op string) {
	if r == nil {
		return
	}
	r.instructions.WithLabelValues(op).Inc()
}

// Register counts one allocated register of the given kind ("quantum"/"classical").
func (r *Recorder) Register(kind string) {
	if r == nil {
		return
	}
	r.registers.WithLabelValues(kind).Inc()
}

// Parse counts one readout decode attempt.
func (r *Recorder) Parse(err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.parses.WithLabelValues(ResultError).Inc()
		return
	}
	r.parses.WithLabelValues(ResultOK).Inc()
}

// Hits adds n syndrome events for the given syndrome type.
func (r *Recorder) Hits(syndrome string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.hits.WithLabelValues(syndrome).Add(float64(n))
}
