package simd

import (
	"encoding/binary"
	"math/bits"
)

// Unrolled multi-word kernels. The block law carries a serial
// dependence on the previous accumulator, so its kernels split each
// step into a data-parallel half (word loads and constant adds across
// the group) and a serial fold that consumes the group in stream
// order. The rolling law is linear in the accumulator, so its kernels
// evaluate a whole group with precomputed multiplier powers.
//
// Both shapes are bit-identical to the scalar mixers by construction.

// rollPow64[i] is RollMultiplier64^i.
var rollPow64 = func() (p [9]uint64) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * RollMultiplier64
	}
	return
}()

// rollPow32[i] is RollMultiplier32^i.
var rollPow32 = func() (p [9]uint32) {
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * RollMultiplier32
	}
	return
}()

// ============================================================================
// 64-bit width, 8 words per step (AVX-512 / SVE2 tier)
// ============================================================================

func blockWords64x8(acc uint64, p []byte) uint64 {
	for ; len(p) >= 64; p = p[64:] {
		w0 := binary.LittleEndian.Uint64(p)
		w1 := binary.LittleEndian.Uint64(p[8:])
		w2 := binary.LittleEndian.Uint64(p[16:])
		w3 := binary.LittleEndian.Uint64(p[24:])
		w4 := binary.LittleEndian.Uint64(p[32:])
		w5 := binary.LittleEndian.Uint64(p[40:])
		w6 := binary.LittleEndian.Uint64(p[48:])
		w7 := binary.LittleEndian.Uint64(p[56:])

		a0 := w0 + BlockConstant64
		a1 := w1 + BlockConstant64
		a2 := w2 + BlockConstant64
		a3 := w3 + BlockConstant64
		a4 := w4 + BlockConstant64
		a5 := w5 + BlockConstant64
		a6 := w6 + BlockConstant64
		a7 := w7 + BlockConstant64

		acc = bits.RotateLeft64(acc+a0, Rotate64) ^ w0
		acc = bits.RotateLeft64(acc+a1, Rotate64) ^ w1
		acc = bits.RotateLeft64(acc+a2, Rotate64) ^ w2
		acc = bits.RotateLeft64(acc+a3, Rotate64) ^ w3
		acc = bits.RotateLeft64(acc+a4, Rotate64) ^ w4
		acc = bits.RotateLeft64(acc+a5, Rotate64) ^ w5
		acc = bits.RotateLeft64(acc+a6, Rotate64) ^ w6
		acc = bits.RotateLeft64(acc+a7, Rotate64) ^ w7
	}
	return blockWords64Scalar(acc, p)
}

func rollWords64x8(acc uint64, p []byte) uint64 {
	for ; len(p) >= 64; p = p[64:] {
		a0 := binary.LittleEndian.Uint64(p) + BlockConstant64
		a1 := binary.LittleEndian.Uint64(p[8:]) + BlockConstant64
		a2 := binary.LittleEndian.Uint64(p[16:]) + BlockConstant64
		a3 := binary.LittleEndian.Uint64(p[24:]) + BlockConstant64
		a4 := binary.LittleEndian.Uint64(p[32:]) + BlockConstant64
		a5 := binary.LittleEndian.Uint64(p[40:]) + BlockConstant64
		a6 := binary.LittleEndian.Uint64(p[48:]) + BlockConstant64
		a7 := binary.LittleEndian.Uint64(p[56:]) + BlockConstant64

		acc = acc*rollPow64[8] +
			a0*rollPow64[7] + a1*rollPow64[6] +
			a2*rollPow64[5] + a3*rollPow64[4] +
			a4*rollPow64[3] + a5*rollPow64[2] +
			a6*rollPow64[1] + a7
	}
	return rollWords64Scalar(acc, p)
}

// ============================================================================
// 64-bit width, 4 words per step (AVX2 / NEON tier)
// ============================================================================

func blockWords64x4(acc uint64, p []byte) uint64 {
	for ; len(p) >= 32; p = p[32:] {
		w0 := binary.LittleEndian.Uint64(p)
		w1 := binary.LittleEndian.Uint64(p[8:])
		w2 := binary.LittleEndian.Uint64(p[16:])
		w3 := binary.LittleEndian.Uint64(p[24:])

		a0 := w0 + BlockConstant64
		a1 := w1 + BlockConstant64
		a2 := w2 + BlockConstant64
		a3 := w3 + BlockConstant64

		acc = bits.RotateLeft64(acc+a0, Rotate64) ^ w0
		acc = bits.RotateLeft64(acc+a1, Rotate64) ^ w1
		acc = bits.RotateLeft64(acc+a2, Rotate64) ^ w2
		acc = bits.RotateLeft64(acc+a3, Rotate64) ^ w3
	}
	return blockWords64Scalar(acc, p)
}

func rollWords64x4(acc uint64, p []byte) uint64 {
	for ; len(p) >= 32; p = p[32:] {
		a0 := binary.LittleEndian.Uint64(p) + BlockConstant64
		a1 := binary.LittleEndian.Uint64(p[8:]) + BlockConstant64
		a2 := binary.LittleEndian.Uint64(p[16:]) + BlockConstant64
		a3 := binary.LittleEndian.Uint64(p[24:]) + BlockConstant64

		acc = acc*rollPow64[4] +
			a0*rollPow64[3] + a1*rollPow64[2] + a2*rollPow64[1] + a3
	}
	return rollWords64Scalar(acc, p)
}

// ============================================================================
// 32-bit width, 8 words per step
// ============================================================================

func blockWords32x8(acc uint32, p []byte) uint32 {
	for ; len(p) >= 32; p = p[32:] {
		w0 := binary.LittleEndian.Uint32(p)
		w1 := binary.LittleEndian.Uint32(p[4:])
		w2 := binary.LittleEndian.Uint32(p[8:])
		w3 := binary.LittleEndian.Uint32(p[12:])
		w4 := binary.LittleEndian.Uint32(p[16:])
		w5 := binary.LittleEndian.Uint32(p[20:])
		w6 := binary.LittleEndian.Uint32(p[24:])
		w7 := binary.LittleEndian.Uint32(p[28:])

		a0 := w0 + BlockConstant32
		a1 := w1 + BlockConstant32
		a2 := w2 + BlockConstant32
		a3 := w3 + BlockConstant32
		a4 := w4 + BlockConstant32
		a5 := w5 + BlockConstant32
		a6 := w6 + BlockConstant32
		a7 := w7 + BlockConstant32

		acc = bits.RotateLeft32(acc+a0, Rotate32) ^ w0
		acc = bits.RotateLeft32(acc+a1, Rotate32) ^ w1
		acc = bits.RotateLeft32(acc+a2, Rotate32) ^ w2
		acc = bits.RotateLeft32(acc+a3, Rotate32) ^ w3
		acc = bits.RotateLeft32(acc+a4, Rotate32) ^ w4
		acc = bits.RotateLeft32(acc+a5, Rotate32) ^ w5
		acc = bits.RotateLeft32(acc+a6, Rotate32) ^ w6
		acc = bits.RotateLeft32(acc+a7, Rotate32) ^ w7
	}
	return blockWords32Scalar(acc, p)
}

func rollWords32x8(acc uint32, p []byte) uint32 {
	for ; len(p) >= 32; p = p[32:] {
		a0 := binary.LittleEndian.Uint32(p) + BlockConstant32
		a1 := binary.LittleEndian.Uint32(p[4:]) + BlockConstant32
		a2 := binary.LittleEndian.Uint32(p[8:]) + BlockConstant32
		a3 := binary.LittleEndian.Uint32(p[12:]) + BlockConstant32
		a4 := binary.LittleEndian.Uint32(p[16:]) + BlockConstant32
		a5 := binary.LittleEndian.Uint32(p[20:]) + BlockConstant32
		a6 := binary.LittleEndian.Uint32(p[24:]) + BlockConstant32
		a7 := binary.LittleEndian.Uint32(p[28:]) + BlockConstant32

		acc = acc*rollPow32[8] +
			a0*rollPow32[7] + a1*rollPow32[6] +
			a2*rollPow32[5] + a3*rollPow32[4] +
			a4*rollPow32[3] + a5*rollPow32[2] +
			a6*rollPow32[1] + a7
	}
	return rollWords32Scalar(acc, p)
}

// ============================================================================
// 32-bit width, 4 words per step
// ============================================================================

func blockWords32x4(acc uint32, p []byte) uint32 {
	for ; len(p) >= 16; p = p[16:] {
		w0 := binary.LittleEndian.Uint32(p)
		w1 := binary.LittleEndian.Uint32(p[4:])
		w2 := binary.LittleEndian.Uint32(p[8:])
		w3 := binary.LittleEndian.Uint32(p[12:])

		a0 := w0 + BlockConstant32
		a1 := w1 + BlockConstant32
		a2 := w2 + BlockConstant32
		a3 := w3 + BlockConstant32

		acc = bits.RotateLeft32(acc+a0, Rotate32) ^ w0
		acc = bits.RotateLeft32(acc+a1, Rotate32) ^ w1
		acc = bits.RotateLeft32(acc+a2, Rotate32) ^ w2
		acc = bits.RotateLeft32(acc+a3, Rotate32) ^ w3
	}
	return blockWords32Scalar(acc, p)
}

func rollWords32x4(acc uint32, p []byte) uint32 {
	for ; len(p) >= 16; p = p[16:] {
		a0 := binary.LittleEndian.Uint32(p) + BlockConstant32
		a1 := binary.LittleEndian.Uint32(p[4:]) + BlockConstant32
		a2 := binary.LittleEndian.Uint32(p[8:]) + BlockConstant32
		a3 := binary.LittleEndian.Uint32(p[12:]) + BlockConstant32

		acc = acc*rollPow32[4] +
			a0*rollPow32[3] + a1*rollPow32[2] + a2*rollPow32[1] + a3
	}
	return rollWords32Scalar(acc, p)
}
