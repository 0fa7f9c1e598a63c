package jodyhash

import "github.com/jbruchon/go-jodyhash/internal/simd"

// The width policy. Each accumulator width fixes the word size the
// mixers consume per step, an odd mixing constant and a rotation
// amount that is not a multiple of the width. All three are build-time
// constants; nothing in the API switches width at runtime.
const (
	// WordSize64, WordSize32 and WordSize16 are the bytes consumed
	// per mixing step at each width. Chunks of a chained stream must
	// be split at multiples of the relevant size.
	WordSize64 = 8
	WordSize32 = 4
	WordSize16 = 2

	// Constant64, Constant32 and Constant16 are the block-law mixing
	// constants.
	Constant64 uint64 = simd.BlockConstant64
	Constant32 uint32 = simd.BlockConstant32
	Constant16 uint16 = simd.BlockConstant16

	// Rotation64, Rotation32 and Rotation16 are the block-law
	// rotation amounts.
	Rotation64 = simd.Rotate64
	Rotation32 = simd.Rotate32
	Rotation16 = simd.Rotate16

	// RollingMultiplier64, RollingMultiplier32 and RollingMultiplier16
	// are the rolling-law multipliers.
	RollingMultiplier64 uint64 = simd.RollMultiplier64
	RollingMultiplier32 uint32 = simd.RollMultiplier32
	RollingMultiplier16 uint16 = simd.RollMultiplier16
)
