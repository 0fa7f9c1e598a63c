// Package simd holds the jodyhash mixing kernels and the runtime CPU
// capability dispatch that selects between them.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Runtime CPU feature detection selects the kernel unroll width once at
// package init. Set JODYHASH_SIMD to force a specific tier (generic,
// neon, sve2, avx2, avx512).
//
// Every kernel reduces to a state bit-identical to the scalar reference
// mixer at every call boundary; the wide kernels change only how many
// words are consumed per loop iteration.
package simd
