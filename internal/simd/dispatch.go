package simd

// WordsPerStep maps a tier to the kernel unroll width in 64-bit words
// consumed per loop iteration. Exposed for diagnostics and tests.
func WordsPerStep(isa ISA) int {
	switch isa {
	case AVX512, SVE2:
		return 8
	case AVX2, NEON:
		return 4
	default:
		return 1
	}
}

// init assigns the kernel pointers for the active tier. It runs after
// the capability_* init functions have detected CPU features and
// selected the active ISA (file name ordering guarantees this, the
// same arrangement the capability files already rely on).
func init() {
	switch WordsPerStep(activeISA) {
	case 8:
		blockWords64 = blockWords64x8
		blockWords32 = blockWords32x8
		rollWords64 = rollWords64x8
		rollWords32 = rollWords32x8
	case 4:
		blockWords64 = blockWords64x4
		blockWords32 = blockWords32x4
		rollWords64 = rollWords64x4
		rollWords32 = rollWords32x4
	}
}
