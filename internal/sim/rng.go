// Package sim implements the deterministic core of orbrun: a seeded
// level generator, fixed-timestep physics for the player and camera,
// sphere collision detection, and the score/telemetry projection.
//
// Everything here is a pure function of the level seed and the per-tick
// input sequence. Seeds are advertised as sharable, which makes the
// random number stream part of the public contract: the generator below
// reproduces, bit for bit, the ChaCha8Rng stream of the Rust rand_chacha
// crate (seed_from_u64 key expansion, rand 0.8 gen_range sampling).
// Reordering any draw or changing any rounding step breaks every shared
// seed, so treat this package as frozen wire format.
package sim

import (
	"math"
	"math/bits"
)

// Words per refill: four 16-word ChaCha blocks, matching the reference
// generator's output buffer.
const rngBufWords = 64

// ChaCha8: 4 double rounds.
const chachaRounds = 8

// "expand 32-byte k"
var chachaSigma = [4]uint32{0x61707865, 0x3320646e, 0x79622d32, 0x6b206574}

// Rng is a deterministic ChaCha8-based generator. Not safe for
// concurrent use; the simulation is single-threaded by design.
type Rng struct {
	key     [8]uint32
	counter uint64
	words   [rngBufWords]uint32
	index   int
}

// NewRng creates a generator for the given 64-bit seed.
func NewRng(seed uint64) *Rng {
	return &Rng{
		key:   expandSeed(seed),
		index: rngBufWords, // force a refill on first use
	}
}

// expandSeed stretches a 64-bit seed into a 256-bit ChaCha key using the
// PCG32 output sequence, exactly as rand_core's seed_from_u64 does.
func expandSeed(state uint64) [8]uint32 {
	const (
		mul = 6364136223846793005
		inc = 11634580027462260723
	)
	var key [8]uint32
	for i := range key {
		state = state*mul + inc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := int(state >> 59)
		key[i] = bits.RotateLeft32(xorshifted, -rot)
	}
	return key
}

func quarterRound(x *[16]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 16)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 12)
	x[a] += x[b]
	x[d] = bits.RotateLeft32(x[d]^x[a], 8)
	x[c] += x[d]
	x[b] = bits.RotateLeft32(x[b]^x[c], 7)
}

// refill generates the next four ChaCha blocks into the word buffer.
// Stream and nonce words stay zero; only the 64-bit block counter moves.
func (r *Rng) refill() {
	for block := 0; block < 4; block++ {
		ctr := r.counter + uint64(block)
		var s [16]uint32
		copy(s[0:4], chachaSigma[:])
		copy(s[4:12], r.key[:])
		s[12] = uint32(ctr)
		s[13] = uint32(ctr >> 32)

		x := s
		for round := 0; round < chachaRounds; round += 2 {
			quarterRound(&x, 0, 4, 8, 12)
			quarterRound(&x, 1, 5, 9, 13)
			quarterRound(&x, 2, 6, 10, 14)
			quarterRound(&x, 3, 7, 11, 15)
			quarterRound(&x, 0, 5, 10, 15)
			quarterRound(&x, 1, 6, 11, 12)
			quarterRound(&x, 2, 7, 8, 13)
			quarterRound(&x, 3, 4, 9, 14)
		}
		for i := range x {
			r.words[block*16+i] = x[i] + s[i]
		}
	}
	r.counter += 4
	r.index = 0
}

// NextU32 returns the next 32-bit word of the stream.
func (r *Rng) NextU32() uint32 {
	if r.index >= rngBufWords {
		r.refill()
	}
	v := r.words[r.index]
	r.index++
	return v
}

// NextU64 combines two consecutive 32-bit words, low word first. The
// three cases mirror the reference buffer logic: when a single word is
// left at the buffer edge it becomes the low half and the first word of
// the next refill becomes the high half.
func (r *Rng) NextU64() uint64 {
	i := r.index
	switch {
	case i < rngBufWords-1:
		r.index = i + 2
		return uint64(r.words[i]) | uint64(r.words[i+1])<<32
	case i >= rngBufWords:
		r.refill()
		r.index = 2
		return uint64(r.words[0]) | uint64(r.words[1])<<32
	default: // exactly one word left
		lo := uint64(r.words[rngBufWords-1])
		r.refill()
		r.index = 1
		return lo | uint64(r.words[0])<<32
	}
}

// RangeF32 returns a uniform float32 in [lo, hi).
func (r *Rng) RangeF32(lo, hi float32) float32 {
	scale := hi - lo
	for {
		// 23 random mantissa bits form a float in [1, 2); subtracting 1
		// yields [0, 1) exactly, with no rounding.
		value := math.Float32frombits(r.NextU32()>>9|0x3f800000) - 1
		// The explicit conversion keeps multiply and add as two
		// separately rounded operations; FMA contraction would change
		// the stream.
		res := float32(value*scale) + lo
		if res < hi {
			return res
		}
		// Rounding landed the sample on hi. Shrink the scale one ulp and
		// redraw.
		scale = math.Float32frombits(math.Float32bits(scale) - 1)
	}
}

// RangeU64 returns a uniform uint64 in [lo, hi) by widening-multiply
// rejection sampling.
func (r *Rng) RangeU64(lo, hi uint64) uint64 {
	n := hi - lo
	if n == 0 {
		return r.NextU64()
	}
	zone := (n << bits.LeadingZeros64(n)) - 1
	for {
		hiWord, loWord := bits.Mul64(r.NextU64(), n)
		if loWord <= zone {
			return lo + hiWord
		}
	}
}
