// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package plonkverifier

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/fxamacker/cbor/v2"

	"github.com/plonkforge/turboplonk/field"
)

// NumEvaluations is the number of field evaluations carried by a Proof.
// The specification's §6 byte count (11*48+15*32=1008) undercounts by one
// field: r_poly_eval is used as an input to the verifier's t_eval formula
// (§4.8 step 5) before it is ever appended to the transcript (step 7), so
// it cannot be a value the verifier derives — it must be prover-supplied
// and therefore present on the wire. This module transmits all 16
// Evaluations fields; see DESIGN.md for the open-question resolution.
const NumEvaluations = 16

// WireSize is the canonical on-the-wire byte length of a Proof: 11
// compressed G1 points (48 bytes each) followed by NumEvaluations
// canonical little-endian field elements (32 bytes each) (§6).
const WireSize = 11*48 + NumEvaluations*32

func (p *Proof) commitments() [11]bls12381.G1Affine {
	return [11]bls12381.G1Affine{
		p.AComm, p.BComm, p.CComm, p.DComm,
		p.ZComm,
		p.TLowComm, p.TMidComm, p.THighComm, p.T4Comm,
		p.WZComm, p.WZWComm,
	}
}

func (p *Proof) evaluationsSlice() [NumEvaluations]field.Element {
	e := p.Evaluations
	return [NumEvaluations]field.Element{
		e.AEval, e.BEval, e.CEval, e.DEval,
		e.ANext, e.BNext, e.DNext,
		e.SSigma1, e.SSigma2, e.SSigma3,
		e.QArith, e.QC, e.QL, e.QR,
		e.PermEval, e.RPolyEval,
	}
}

// Bytes encodes p in the canonical fixed-width wire format.
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, WireSize)
	for _, c := range p.commitments() {
		b := c.Bytes() // compressed, 48 bytes
		out = append(out, b[:]...)
	}
	for _, e := range p.evaluationsSlice() {
		le := field.BytesLE(e)
		out = append(out, le[:]...)
	}
	return out
}

// ProofFromBytes decodes and validates a Proof from its canonical wire
// encoding, checking subgroup membership of every commitment (§6).
func ProofFromBytes(b []byte) (*Proof, error) {
	if len(b) != WireSize {
		return nil, fmt.Errorf("plonkverifier: wire proof must be %d bytes, got %d", WireSize, len(b))
	}
	var p Proof
	var comms [11]bls12381.G1Affine
	off := 0
	for i := range comms {
		var cb [48]byte
		copy(cb[:], b[off:off+48])
		if err := comms[i].Unmarshal(cb[:]); err != nil {
			return nil, fmt.Errorf("plonkverifier: decoding commitment %d: %w", i, err)
		}
		if !comms[i].IsInSubGroup() {
			return nil, fmt.Errorf("plonkverifier: commitment %d not in subgroup", i)
		}
		off += 48
	}
	p.AComm, p.BComm, p.CComm, p.DComm = comms[0], comms[1], comms[2], comms[3]
	p.ZComm = comms[4]
	p.TLowComm, p.TMidComm, p.THighComm, p.T4Comm = comms[5], comms[6], comms[7], comms[8]
	p.WZComm, p.WZWComm = comms[9], comms[10]

	var evals [NumEvaluations]field.Element
	for i := range evals {
		e, err := field.FromBytesLE(b[off : off+32])
		if err != nil {
			return nil, fmt.Errorf("plonkverifier: decoding evaluation %d: %w", i, err)
		}
		evals[i] = e
		off += 32
	}
	p.Evaluations = evaluationsFromSlice(evals)
	return &p, nil
}

func evaluationsFromSlice(evals [NumEvaluations]field.Element) Evaluations {
	return Evaluations{
		AEval: evals[0], BEval: evals[1], CEval: evals[2], DEval: evals[3],
		ANext: evals[4], BNext: evals[5], DNext: evals[6],
		SSigma1: evals[7], SSigma2: evals[8], SSigma3: evals[9],
		QArith: evals[10], QC: evals[11], QL: evals[12], QR: evals[13],
		PermEval: evals[14], RPolyEval: evals[15],
	}
}

// cborProof is the CBOR-friendly mirror of Proof, used only for inspection
// and debugging tooling (SPEC_FULL.md §C) — the canonical wire format
// consumed by batch_check is always Bytes()/ProofFromBytes().
type cborProof struct {
	A, B, C, D            []byte
	Z                     []byte
	TLow, TMid, THigh, T4 []byte
	WZ, WZW               []byte
	Evaluations           [NumEvaluations][]byte
}

// MarshalCBOR encodes p as an inspectable CBOR map, layering
// github.com/fxamacker/cbor/v2 over the same field values as Bytes().
func (p *Proof) MarshalCBOR() ([]byte, error) {
	comms := p.commitments()
	raw := func(c bls12381.G1Affine) []byte {
		b := c.Bytes()
		return b[:]
	}
	evalBytes := p.evaluationsSlice()

	cp := cborProof{
		A: raw(comms[0]), B: raw(comms[1]), C: raw(comms[2]), D: raw(comms[3]),
		Z: raw(comms[4]),
		TLow: raw(comms[5]), TMid: raw(comms[6]), THigh: raw(comms[7]), T4: raw(comms[8]),
		WZ: raw(comms[9]), WZW: raw(comms[10]),
	}
	for i, e := range evalBytes {
		le := field.BytesLE(e)
		cp.Evaluations[i] = le[:]
	}
	return cbor.Marshal(cp)
}

// UnmarshalCBOR decodes a Proof previously produced by MarshalCBOR.
func (p *Proof) UnmarshalCBOR(data []byte) error {
	var cp cborProof
	if err := cbor.Unmarshal(data, &cp); err != nil {
		return fmt.Errorf("plonkverifier: cbor decode: %w", err)
	}
	unpack := func(b []byte) (bls12381.G1Affine, error) {
		var c bls12381.G1Affine
		var arr [48]byte
		copy(arr[:], b)
		err := c.Unmarshal(arr[:])
		return c, err
	}
	var err error
	if p.AComm, err = unpack(cp.A); err != nil {
		return err
	}
	if p.BComm, err = unpack(cp.B); err != nil {
		return err
	}
	if p.CComm, err = unpack(cp.C); err != nil {
		return err
	}
	if p.DComm, err = unpack(cp.D); err != nil {
		return err
	}
	if p.ZComm, err = unpack(cp.Z); err != nil {
		return err
	}
	if p.TLowComm, err = unpack(cp.TLow); err != nil {
		return err
	}
	if p.TMidComm, err = unpack(cp.TMid); err != nil {
		return err
	}
	if p.THighComm, err = unpack(cp.THigh); err != nil {
		return err
	}
	if p.T4Comm, err = unpack(cp.T4); err != nil {
		return err
	}
	if p.WZComm, err = unpack(cp.WZ); err != nil {
		return err
	}
	if p.WZWComm, err = unpack(cp.WZW); err != nil {
		return err
	}
	var evals [NumEvaluations]field.Element
	for i, b := range cp.Evaluations {
		e, err := field.FromBytesLE(b)
		if err != nil {
			return fmt.Errorf("plonkverifier: cbor decode evaluation %d: %w", i, err)
		}
		evals[i] = e
	}
	p.Evaluations = evaluationsFromSlice(evals)
	return nil
}
