// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strings"
)

// syndromeInfo is the immutable per-type view used for decoding.
type syndromeInfo struct {
	name    string
	basis   Basis
	size    int
	coords  []Coordinate // by syndrome index
	support [][]int      // data indices checked by each syndrome
}

// decoder holds everything ParseReadout needs. Built once in New and never
// mutated, so concurrent parses are safe.
type decoder struct {
	numData int
	types   []syndromeInfo // group declaration order
	logical map[Basis][]int
}

func newDecoder(geom Geometry, g *Groups, bp Blueprint) *decoder {
	data := g.Data()
	d := &decoder{
		numData: data.Size,
		logical: map[Basis][]int{
			BasisX: append([]int(nil), geom.LogicalSupport(BasisX)...),
			BasisZ: append([]int(nil), geom.LogicalSupport(BasisZ)...),
		},
	}
	for _, grp := range g.Syndromes() {
		info := syndromeInfo{
			name:    grp.Syndrome,
			basis:   grp.Basis,
			size:    grp.Size,
			coords:  make([]Coordinate, grp.Size),
			support: make([][]int, grp.Size),
		}
		for _, p := range bp {
			if p.Syndrome != grp.Syndrome {
				continue
			}
			info.coords[p.Index] = p.At
			for _, q := range p.Qubits[1:] {
				if q.Register == data.Quantum {
					info.support[p.Index] = append(info.support[p.Index], q.Index)
				}
			}
		}
		d.types = append(d.types, info)
	}

	return d
}

// ParseReadout decodes a result string into the logical value and the
// syndrome events per stabilizer type. It is pure and safe for concurrent use.
//
// Every syndrome type of the lattice has an entry in Readout.Syndromes; a
// type with fewer than two rounds maps to an empty list.
//
// Returns ErrReadoutParse for an empty string, a non-binary character, a
// first token that disagrees with t, a syndrome token count that is not a
// multiple of the syndrome types, or a token of the wrong length.
//
// Complexity: O(R·S) for R rounds over S syndrome qubits, plus O(N) for a
// full data readout over N data qubits.
func (l *Lattice) ParseReadout(s string, t ReadoutType) (Readout, error) {
	r, err := l.dec.parse(s, t)
	l.rec.Parse(err)
	if err != nil {
		l.log.Debug().Err(err).Msg("readout rejected")
		return Readout{}, err
	}
	total := 0
	for name, evs := range r.Syndromes {
		l.rec.Hits(name, len(evs))
		total += len(evs)
	}
	l.log.Debug().Int("logical", r.Logical).Int("events", total).Msg("readout parsed")

	return r, nil
}

func (d *decoder) parse(s string, t ReadoutType) (Readout, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return Readout{}, fmt.Errorf("%w: empty readout string", ErrReadoutParse)
	}
	for i, tok := range tokens {
		if err := checkBits(tok); err != nil {
			return Readout{}, fmt.Errorf("%w: token %d: %v", ErrReadoutParse, i, err)
		}
	}

	first := tokens[0]
	full, basis, err := d.classify(first, t)
	if err != nil {
		return Readout{}, err
	}
	logical := int(first[0] - '0')
	if full {
		logical = parity(first, d.logical[basis])
	}

	rounds, err := d.split(tokens[1:])
	if err != nil {
		return Readout{}, err
	}

	out := Readout{Logical: logical, Syndromes: make(map[string][]Event, len(d.types))}
	for j, info := range d.types {
		seq := rounds[j]
		if full && info.basis == basis {
			seq = append([]string{d.synthetic(first, info)}, seq...)
		}
		events := make([]Event, 0)
		for r := 0; r+1 < len(seq); r++ {
			newer, older := seq[r], seq[r+1]
			for i := 0; i < info.size; i++ {
				pos := info.size - 1 - i
				if newer[pos] != older[pos] {
					at := info.coords[i]
					events = append(events, Event{Time: r, Row: at.Row, Col: at.Col})
				}
			}
		}
		out.Syndromes[info.name] = events
	}

	return out, nil
}

// classify reports whether the first token is a full data readout and in
// which basis it was taken.
func (d *decoder) classify(first string, t ReadoutType) (bool, Basis, error) {
	n := len(first)
	switch t {
	case ReadoutAuto:
		switch n {
		case 1:
			return false, BasisZ, nil
		case d.numData:
			return true, BasisZ, nil
		}
		return false, BasisZ, fmt.Errorf("%w: first token length %d is neither a logical bit (1) nor a lattice readout (%d)",
			ErrReadoutParse, n, d.numData)
	case ReadoutLogical:
		if n != 1 {
			return false, BasisZ, fmt.Errorf("%w: readout type %q mismatch with token length %d", ErrReadoutParse, t, n)
		}
		return false, BasisZ, nil
	case ReadoutLatticeX, ReadoutLatticeZ:
		if n != d.numData {
			return false, BasisZ, fmt.Errorf("%w: readout type %q mismatch with token length %d (want %d)",
				ErrReadoutParse, t, n, d.numData)
		}
		if t == ReadoutLatticeX {
			return true, BasisX, nil
		}
		return true, BasisZ, nil
	}

	return false, BasisZ, fmt.Errorf("%w: unknown readout type %q", ErrReadoutParse, t)
}

// split groups syndrome tokens by type, newest round first.
func (d *decoder) split(tokens []string) ([][]string, error) {
	k := len(d.types)
	rounds := make([][]string, k)
	if k == 0 {
		if len(tokens) > 0 {
			return nil, fmt.Errorf("%w: %d syndrome tokens for a lattice without syndrome groups", ErrReadoutParse, len(tokens))
		}
		return rounds, nil
	}
	if len(tokens)%k != 0 {
		return nil, fmt.Errorf("%w: %d syndrome tokens is not a multiple of %d syndrome types", ErrReadoutParse, len(tokens), k)
	}
	for i, tok := range tokens {
		j := k - 1 - i%k
		info := d.types[j]
		if len(tok) != info.size {
			return nil, fmt.Errorf("%w: %s syndrome token %q has length %d, want %d",
				ErrReadoutParse, info.name, tok, len(tok), info.size)
		}
		rounds[j] = append(rounds[j], tok)
	}

	return rounds, nil
}

// synthetic recomputes one round of info's checks from a full data readout.
func (d *decoder) synthetic(data string, info syndromeInfo) string {
	b := make([]byte, info.size)
	for i := 0; i < info.size; i++ {
		b[info.size-1-i] = byte('0' + parity(data, info.support[i]))
	}

	return string(b)
}

// parity XORs the little-endian bits of bits at the given indices.
func parity(bits string, idx []int) int {
	p := 0
	for _, i := range idx {
		if bits[len(bits)-1-i] == '1' {
			p ^= 1
		}
	}

	return p
}

func checkBits(tok string) error {
	for i := 0; i < len(tok); i++ {
		if tok[i] != '0' && tok[i] != '1' {
			return fmt.Errorf("non-binary character %q in %q", tok[i], tok)
		}
	}

	return nil
}
