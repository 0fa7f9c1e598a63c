package simd

import (
	"encoding/binary"
	"math/bits"
)

// Width-specific mixing parameters. The block constants and rotation
// amounts parameterize the reference mixing law
//
//	acc = rotl(acc + w + K, R) ^ w
//
// and the roll multipliers parameterize the rolling law
//
//	acc = acc*M + (w + K)
//
// Constants are odd so repeated addition touches every bit position;
// rotation amounts are deliberately not multiples of the width so
// repeated rotation cycles through all bit offsets.
const (
	BlockConstant64 = 0x1f3d5b79f3d5b779
	BlockConstant32 = 0x1f3d5b79
	BlockConstant16 = 0x5b79

	Rotate64 = 29
	Rotate32 = 14
	Rotate16 = 7

	RollMultiplier64 = 0x9e3779b97f4a7c15
	RollMultiplier32 = 0x9e3779b1
	RollMultiplier16 = 0x9e37
)

// Kernel function pointers - set once at init, zero runtime overhead.
// Scalar implementations are the default; dispatch.go overrides with
// the unrolled kernels when a vector tier is active. Each kernel
// consumes only whole words; callers strip the tail first.
var (
	blockWords64 = blockWords64Scalar
	blockWords32 = blockWords32Scalar
	rollWords64  = rollWords64Scalar
	rollWords32  = rollWords32Scalar
)

// Block64 folds p into acc using the 64-bit block mixing law and
// returns the new accumulator. Trailing bytes short of a full word are
// packed, tagged with their count and mixed as a final word, so Block64
// is only chainable across calls split at 8-byte boundaries.
func Block64(acc uint64, p []byte) uint64 {
	n := len(p) &^ 7
	if n > 0 {
		acc = blockWords64(acc, p[:n])
	}
	if tail := p[n:]; len(tail) > 0 {
		acc = blockTail64(acc, tail)
	}
	return acc
}

// Block32 is the 32-bit width form of Block64 (4-byte words).
func Block32(acc uint32, p []byte) uint32 {
	n := len(p) &^ 3
	if n > 0 {
		acc = blockWords32(acc, p[:n])
	}
	if tail := p[n:]; len(tail) > 0 {
		acc = blockTail32(acc, tail)
	}
	return acc
}

// Block16 is the 16-bit width form of Block64 (2-byte words). There is
// no vector tier at this width; it always runs the scalar mixer.
func Block16(acc uint16, p []byte) uint16 {
	n := len(p) &^ 1
	for i := 0; i < n; i += 2 {
		w := binary.LittleEndian.Uint16(p[i:])
		acc = bits.RotateLeft16(acc+w+BlockConstant16, Rotate16) ^ w
	}
	if n < len(p) {
		w := uint16(p[n]) ^ 1
		acc = bits.RotateLeft16(acc+w+BlockConstant16, Rotate16) ^ w
	}
	return acc
}

// Roll64 folds p into acc using the 64-bit rolling law. Same tail and
// chaining rules as Block64.
func Roll64(acc uint64, p []byte) uint64 {
	n := len(p) &^ 7
	if n > 0 {
		acc = rollWords64(acc, p[:n])
	}
	if tail := p[n:]; len(tail) > 0 {
		acc = rollTail64(acc, tail)
	}
	return acc
}

// Roll32 is the 32-bit width form of Roll64.
func Roll32(acc uint32, p []byte) uint32 {
	n := len(p) &^ 3
	if n > 0 {
		acc = rollWords32(acc, p[:n])
	}
	if tail := p[n:]; len(tail) > 0 {
		acc = rollTail32(acc, tail)
	}
	return acc
}

// Roll16 is the 16-bit width form of Roll64. Scalar only, like Block16.
func Roll16(acc uint16, p []byte) uint16 {
	n := len(p) &^ 1
	for i := 0; i < n; i += 2 {
		acc = acc*RollMultiplier16 + (binary.LittleEndian.Uint16(p[i:]) + BlockConstant16)
	}
	if n < len(p) {
		acc = acc*RollMultiplier16 + ((uint16(p[n]) ^ 1) + BlockConstant16)
	}
	return acc
}

// ============================================================================
// Scalar reference mixers
// ============================================================================

// blockWords64Scalar is the reference implementation of the block law.
// Every other 64-bit block kernel must reduce to a state bit-identical
// to this one. len(p) must be a multiple of 8.
func blockWords64Scalar(acc uint64, p []byte) uint64 {
	for ; len(p) >= 8; p = p[8:] {
		w := binary.LittleEndian.Uint64(p)
		acc = bits.RotateLeft64(acc+w+BlockConstant64, Rotate64) ^ w
	}
	return acc
}

func blockWords32Scalar(acc uint32, p []byte) uint32 {
	for ; len(p) >= 4; p = p[4:] {
		w := binary.LittleEndian.Uint32(p)
		acc = bits.RotateLeft32(acc+w+BlockConstant32, Rotate32) ^ w
	}
	return acc
}

func rollWords64Scalar(acc uint64, p []byte) uint64 {
	for ; len(p) >= 8; p = p[8:] {
		acc = acc*RollMultiplier64 + (binary.LittleEndian.Uint64(p) + BlockConstant64)
	}
	return acc
}

func rollWords32Scalar(acc uint32, p []byte) uint32 {
	for ; len(p) >= 4; p = p[4:] {
		acc = acc*RollMultiplier32 + (binary.LittleEndian.Uint32(p) + BlockConstant32)
	}
	return acc
}

// ============================================================================
// Tail handling
// ============================================================================

// tailWord64 packs 1-7 trailing bytes little-endian with zeroed high
// bytes and xors in the byte count, so inputs differing only in
// trailing zeros still hash apart.
func tailWord64(tail []byte) uint64 {
	var buf [8]byte
	copy(buf[:], tail)
	return binary.LittleEndian.Uint64(buf[:]) ^ uint64(len(tail))
}

func tailWord32(tail []byte) uint32 {
	var buf [4]byte
	copy(buf[:], tail)
	return binary.LittleEndian.Uint32(buf[:]) ^ uint32(len(tail))
}

func blockTail64(acc uint64, tail []byte) uint64 {
	w := tailWord64(tail)
	return bits.RotateLeft64(acc+w+BlockConstant64, Rotate64) ^ w
}

func blockTail32(acc uint32, tail []byte) uint32 {
	w := tailWord32(tail)
	return bits.RotateLeft32(acc+w+BlockConstant32, Rotate32) ^ w
}

func rollTail64(acc uint64, tail []byte) uint64 {
	return acc*RollMultiplier64 + (tailWord64(tail) + BlockConstant64)
}

func rollTail32(acc uint32, tail []byte) uint32 {
	return acc*RollMultiplier32 + (tailWord32(tail) + BlockConstant32)
}
