package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(rng *rand.Rand, n int) []byte {
	p := make([]byte, n)
	rng.Read(p)
	return p
}

// Every kernel must reduce to a state bit-identical to the scalar
// reference mixer, for every length up to several times the widest
// unroll group and for misaligned start offsets.
func TestBlockKernels64MatchScalar(t *testing.T) {
	kernels := []struct {
		name string
		fn   func(uint64, []byte) uint64
	}{
		{"x4", blockWords64x4},
		{"x8", blockWords64x8},
	}
	rng := rand.New(rand.NewSource(1))
	raw := randomBytes(rng, 64*8+64)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for offset := 0; offset <= 8; offset++ {
				for words := 0; words <= 64; words++ {
					p := raw[offset : offset+words*8]
					want := blockWords64Scalar(0xdeadbeef, p)
					got := k.fn(0xdeadbeef, p)
					assert.Equal(t, want, got,
						"offset=%d words=%d", offset, words)
				}
			}
		})
	}
}

func TestBlockKernels32MatchScalar(t *testing.T) {
	kernels := []struct {
		name string
		fn   func(uint32, []byte) uint32
	}{
		{"x4", blockWords32x4},
		{"x8", blockWords32x8},
	}
	rng := rand.New(rand.NewSource(2))
	raw := randomBytes(rng, 64*4+64)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for offset := 0; offset <= 4; offset++ {
				for words := 0; words <= 64; words++ {
					p := raw[offset : offset+words*4]
					want := blockWords32Scalar(0xcafe, p)
					got := k.fn(0xcafe, p)
					assert.Equal(t, want, got,
						"offset=%d words=%d", offset, words)
				}
			}
		})
	}
}

func TestRollKernels64MatchScalar(t *testing.T) {
	kernels := []struct {
		name string
		fn   func(uint64, []byte) uint64
	}{
		{"x4", rollWords64x4},
		{"x8", rollWords64x8},
	}
	rng := rand.New(rand.NewSource(3))
	raw := randomBytes(rng, 64*8+64)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for offset := 0; offset <= 8; offset++ {
				for words := 0; words <= 64; words++ {
					p := raw[offset : offset+words*8]
					want := rollWords64Scalar(0x1234, p)
					got := k.fn(0x1234, p)
					assert.Equal(t, want, got,
						"offset=%d words=%d", offset, words)
				}
			}
		})
	}
}

func TestRollKernels32MatchScalar(t *testing.T) {
	kernels := []struct {
		name string
		fn   func(uint32, []byte) uint32
	}{
		{"x4", rollWords32x4},
		{"x8", rollWords32x8},
	}
	rng := rand.New(rand.NewSource(4))
	raw := randomBytes(rng, 64*4+64)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for offset := 0; offset <= 4; offset++ {
				for words := 0; words <= 64; words++ {
					p := raw[offset : offset+words*4]
					want := rollWords32Scalar(0x5678, p)
					got := k.fn(0x5678, p)
					assert.Equal(t, want, got,
						"offset=%d words=%d", offset, words)
				}
			}
		})
	}
}

// Differential property test: large randomized buffers with randomized
// lengths and accumulators must agree across every kernel.
func TestKernelsDifferentialRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 128; i++ {
		n := 1 + rng.Intn(1<<20)
		n &^= 7
		p := randomBytes(rng, n)
		acc := rng.Uint64()

		want := blockWords64Scalar(acc, p)
		assert.Equal(t, want, blockWords64x4(acc, p), "block x4 iter=%d n=%d", i, n)
		assert.Equal(t, want, blockWords64x8(acc, p), "block x8 iter=%d n=%d", i, n)

		rwant := rollWords64Scalar(acc, p)
		assert.Equal(t, rwant, rollWords64x4(acc, p), "roll x4 iter=%d n=%d", i, n)
		assert.Equal(t, rwant, rollWords64x8(acc, p), "roll x8 iter=%d n=%d", i, n)
	}
}

// The dispatched entry points must match an explicit scalar-only run,
// whatever tier is active on the test machine.
func TestDispatchedMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for _, n := range []int{0, 1, 7, 8, 9, 63, 64, 65, 4096, 32768, 32771} {
		p := randomBytes(rng, n)

		full := n &^ 7
		want := blockWords64Scalar(0, p[:full])
		if full < n {
			want = blockTail64(want, p[full:])
		}
		assert.Equal(t, want, Block64(0, p), "block n=%d", n)

		rwant := rollWords64Scalar(0, p[:full])
		if full < n {
			rwant = rollTail64(rwant, p[full:])
		}
		assert.Equal(t, rwant, Roll64(0, p), "roll n=%d", n)
	}
}

// Chaining at word boundaries must equal a single call over the
// concatenation, for both laws and all widths.
func TestChaining(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := randomBytes(rng, 4096)

	for _, split := range []int{0, 8, 64, 1024, 2048, 4096} {
		acc := Block64(0, p[:split])
		acc = Block64(acc, p[split:])
		assert.Equal(t, Block64(0, p), acc, "block64 split=%d", split)

		racc := Roll64(0, p[:split])
		racc = Roll64(racc, p[split:])
		assert.Equal(t, Roll64(0, p), racc, "roll64 split=%d", split)
	}
	for _, split := range []int{0, 4, 64, 2048} {
		acc := Block32(0, p[:split])
		acc = Block32(acc, p[split:])
		assert.Equal(t, Block32(0, p), acc, "block32 split=%d", split)
	}
	for _, split := range []int{0, 2, 64, 2048} {
		acc := Block16(0, p[:split])
		acc = Block16(acc, p[split:])
		assert.Equal(t, Block16(0, p), acc, "block16 split=%d", split)
	}
}

// The tail byte count is folded into the tail word, so a word-aligned
// run of zeros and the same run plus one more zero byte must differ.
func TestTailSensitivity(t *testing.T) {
	zeros := make([]byte, 64)
	for _, width := range []int{16, 32, 64} {
		t.Run(map[int]string{16: "w16", 32: "w32", 64: "w64"}[width], func(t *testing.T) {
			switch width {
			case 64:
				assert.NotEqual(t, Block64(0, zeros), Block64(0, append(zeros, 0)))
				assert.NotEqual(t, Roll64(0, zeros), Roll64(0, append(zeros, 0)))
			case 32:
				assert.NotEqual(t, Block32(0, zeros), Block32(0, append(zeros, 0)))
				assert.NotEqual(t, Roll32(0, zeros), Roll32(0, append(zeros, 0)))
			case 16:
				assert.NotEqual(t, Block16(0, zeros), Block16(0, append(zeros, 0)))
				assert.NotEqual(t, Roll16(0, zeros), Roll16(0, append(zeros, 0)))
			}
		})
	}
}

// Locks the documented zero-length constant: empty input is a no-op.
func TestEmptyInput(t *testing.T) {
	assert.Equal(t, uint64(0), Block64(0, nil))
	assert.Equal(t, uint32(0), Block32(0, nil))
	assert.Equal(t, uint16(0), Block16(0, nil))
	assert.Equal(t, uint64(0), Roll64(0, nil))
	assert.Equal(t, uint32(0), Roll32(0, nil))
	assert.Equal(t, uint16(0), Roll16(0, nil))

	// Chained accumulators pass through unchanged as well.
	assert.Equal(t, uint64(0xabcd), Block64(0xabcd, []byte{}))
	assert.Equal(t, uint64(0xabcd), Roll64(0xabcd, []byte{}))
}

// The rolling law is a distinct algorithm, not an alias of the block
// law. This is a deliberate, documented property; lock it.
func TestRollingDiffersFromBlock(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for _, n := range []int{1, 8, 9, 64, 4096} {
		p := randomBytes(rng, n)
		require.NotEqual(t, Block64(0, p), Roll64(0, p), "n=%d", n)
		require.NotEqual(t, Block32(0, p), Roll32(0, p), "n=%d", n)
	}
}

func TestWordsPerStep(t *testing.T) {
	tests := []struct {
		isa  ISA
		want int
	}{
		{Generic, 1},
		{NEON, 4},
		{AVX2, 4},
		{SVE2, 8},
		{AVX512, 8},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, WordsPerStep(tc.isa), tc.isa.String())
	}
}

func TestParseISA(t *testing.T) {
	tests := []struct {
		in   string
		want ISA
		ok   bool
	}{
		{"generic", Generic, true},
		{"NEON", NEON, true},
		{" avx2 ", AVX2, true},
		{"avx512", AVX512, true},
		{"sve2", SVE2, true},
		{"mmx", Generic, false},
		{"", Generic, false},
	}
	for _, tc := range tests {
		got, ok := ParseISA(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func BenchmarkBlock64(b *testing.B) {
	kernels := []struct {
		name string
		fn   func(uint64, []byte) uint64
	}{
		{"scalar", blockWords64Scalar},
		{"x4", blockWords64x4},
		{"x8", blockWords64x8},
	}
	rng := rand.New(rand.NewSource(9))
	p := randomBytes(rng, 1<<20)

	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			b.SetBytes(int64(len(p)))
			var acc uint64
			for i := 0; i < b.N; i++ {
				acc = k.fn(acc, p)
			}
			_ = acc
		})
	}
}

func BenchmarkRoll64(b *testing.B) {
	kernels := []struct {
		name string
		fn   func(uint64, []byte) uint64
	}{
		{"scalar", rollWords64Scalar},
		{"x4", rollWords64x4},
		{"x8", rollWords64x8},
	}
	rng := rand.New(rand.NewSource(10))
	p := randomBytes(rng, 1<<20)

	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			b.SetBytes(int64(len(p)))
			var acc uint64
			for i := 0; i < b.N; i++ {
				acc = k.fn(acc, p)
			}
			_ = acc
		})
	}
}
