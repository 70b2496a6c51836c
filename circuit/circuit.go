// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/qtlattice/metrics"
)

// Option customizes a Circuit at construction.
type Option func(*Circuit)

// WithLogger attaches a logger; register allocation is logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Circuit) {
		c.log = l.With().Str("component", "circuit").Logger()
	}
}

// WithRecorder attaches a metrics recorder. A nil recorder disables metrics.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *Circuit) {
		c.rec = r
	}
}

// Circuit is the shared, append-only circuit-building resource.
// Registers appear in allocation order; instructions in emission order.
type Circuit struct {
	mu     sync.RWMutex
	qregs  []*QuantumRegister
	cregs  []*ClassicalRegister
	names  map[string]struct{}
	qowned map[*QuantumRegister]struct{}
	cowned map[*ClassicalRegister]struct{}
	instrs []Instruction

	log zerolog.Logger
	rec *metrics.Recorder
}

// New returns an empty circuit.
func New(opts ...Option) *Circuit {
	c := &Circuit{
		names:  make(map[string]struct{}),
		qowned: make(map[*QuantumRegister]struct{}),
		cowned: make(map[*ClassicalRegister]struct{}),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// AddQuantumRegister allocates a quantum register of the given size.
// Names are unique across quantum and classical registers of one circuit.
func (c *Circuit) AddQuantumRegister(name string, size int) (*QuantumRegister, error) {
	if err := validateRegister(name, size); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.claimName(name); err != nil {
		return nil, err
	}
	r := &QuantumRegister{name: name, size: size}
	c.qregs = append(c.qregs, r)
	c.qowned[r] = struct{}{}
	c.rec.Register("quantum")
	c.log.Debug().Str("register", name).Int("size", size).Msg("quantum register added")

	return r, nil
}

// AddClassicalRegister allocates a classical register of the given size.
func (c *Circuit) AddClassicalRegister(name string, size int) (*ClassicalRegister, error) {
	if err := validateRegister(name, size); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.claimName(name); err != nil {
		return nil, err
	}
	r := &ClassicalRegister{name: name, size: size}
	c.cregs = append(c.cregs, r)
	c.cowned[r] = struct{}{}
	c.rec.Register("classical")
	c.log.Debug().Str("register", name).Int("size", size).Msg("classical register added")

	return r, nil
}

func validateRegister(name string, size int) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrBadRegisterSize)
	}
	if size < 1 {
		return fmt.Errorf("%w: %q size must be ≥ 1, got %d", ErrBadRegisterSize, name, size)
	}

	return nil
}

// claimName must be called with c.mu held.
func (c *Circuit) claimName(name string) error {
	if _, ok := c.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegister, name)
	}
	c.names[name] = struct{}{}

	return nil
}

// QuantumRegisters returns the quantum registers in allocation order.
func (c *Circuit) QuantumRegisters() []*QuantumRegister {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]*QuantumRegister(nil), c.qregs...)
}

// ClassicalRegisters returns the classical registers in allocation order.
// A result string lists these registers in reverse order.
func (c *Circuit) ClassicalRegisters() []*ClassicalRegister {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]*ClassicalRegister(nil), c.cregs...)
}

// NumQubits returns the total number of allocated qubits.
func (c *Circuit) NumQubits() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, r := range c.qregs {
		n += r.size
	}

	return n
}

// Owns reports whether q is a valid qubit of a register allocated on c.
func (c *Circuit) Owns(q Qubit) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.ownsQubit(q)
}

func (c *Circuit) ownsQubit(q Qubit) bool {
	if !q.Valid() {
		return false
	}
	_, ok := c.qowned[q.Register]

	return ok
}

func (c *Circuit) ownsClbit(b Clbit) bool {
	if !b.Valid() {
		return false
	}
	_, ok := c.cowned[b.Register]

	return ok
}

// Instructions returns a deep copy of the instruction list.
func (c *Circuit) Instructions() []Instruction {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Instruction, len(c.instrs))
	for i, in := range c.instrs {
		out[i] = in.clone()
	}

	return out
}

// Len returns the number of appended instructions.
func (c *Circuit) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.instrs)
}

// String renders the register declarations followed by one instruction per line.
func (c *Circuit) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var sb strings.Builder
	for _, r := range c.qregs {
		fmt.Fprintf(&sb, "qreg %s[%d]\n", r.name, r.size)
	}
	for _, r := range c.cregs {
		fmt.Fprintf(&sb, "creg %s[%d]\n", r.name, r.size)
	}
	for _, in := range c.instrs {
		sb.WriteString(in.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
