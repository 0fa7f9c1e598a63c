package jodyhash

import (
	"encoding/binary"
	"hash"

	"github.com/jbruchon/go-jodyhash/internal/simd"
)

// Digest64 computes a 64-bit jodyhash incrementally. It buffers
// sub-word remainders between Writes, so callers may split the stream
// anywhere; the tail policy is applied once, when a sum is read.
// The zero value is not usable; call New64 or NewRolling64.
type Digest64 struct {
	acc uint64
	buf [WordSize64]byte
	n   int
	mix func(uint64, []byte) uint64
}

var _ hash.Hash64 = (*Digest64)(nil)

// New64 returns a Digest64 using the block mixing law.
func New64() *Digest64 {
	return &Digest64{mix: simd.Block64}
}

// NewRolling64 returns a Digest64 using the rolling mixing law.
func NewRolling64() *Digest64 {
	return &Digest64{mix: simd.Roll64}
}

// Write folds p into the digest. It never fails.
func (d *Digest64) Write(p []byte) (int, error) {
	written := len(p)
	if d.n > 0 {
		c := copy(d.buf[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n < len(d.buf) {
			return written, nil
		}
		d.acc = d.mix(d.acc, d.buf[:])
		d.n = 0
	}
	if full := len(p) &^ (WordSize64 - 1); full > 0 {
		d.acc = d.mix(d.acc, p[:full])
		p = p[full:]
	}
	d.n = copy(d.buf[:], p)
	return written, nil
}

// Sum64 returns the hash of all bytes written so far. The digest
// remains usable; further Writes continue the same stream.
func (d *Digest64) Sum64() uint64 {
	if d.n == 0 {
		return d.acc
	}
	return d.mix(d.acc, d.buf[:d.n])
}

// Sum appends the big-endian form of Sum64 to b.
func (d *Digest64) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

// Reset restores the digest to its initial state.
func (d *Digest64) Reset() {
	d.acc = 0
	d.n = 0
}

// Size returns the hash size in bytes.
func (d *Digest64) Size() int { return WordSize64 }

// BlockSize returns the mixing word size in bytes.
func (d *Digest64) BlockSize() int { return WordSize64 }

// Digest32 is Digest64 at 32-bit width.
type Digest32 struct {
	acc uint32
	buf [WordSize32]byte
	n   int
	mix func(uint32, []byte) uint32
}

var _ hash.Hash32 = (*Digest32)(nil)

// New32 returns a Digest32 using the block mixing law.
func New32() *Digest32 {
	return &Digest32{mix: simd.Block32}
}

// NewRolling32 returns a Digest32 using the rolling mixing law.
func NewRolling32() *Digest32 {
	return &Digest32{mix: simd.Roll32}
}

// Write folds p into the digest. It never fails.
func (d *Digest32) Write(p []byte) (int, error) {
	written := len(p)
	if d.n > 0 {
		c := copy(d.buf[d.n:], p)
		d.n += c
		p = p[c:]
		if d.n < len(d.buf) {
			return written, nil
		}
		d.acc = d.mix(d.acc, d.buf[:])
		d.n = 0
	}
	if full := len(p) &^ (WordSize32 - 1); full > 0 {
		d.acc = d.mix(d.acc, p[:full])
		p = p[full:]
	}
	d.n = copy(d.buf[:], p)
	return written, nil
}

// Sum32 returns the hash of all bytes written so far.
func (d *Digest32) Sum32() uint32 {
	if d.n == 0 {
		return d.acc
	}
	return d.mix(d.acc, d.buf[:d.n])
}

// Sum appends the big-endian form of Sum32 to b.
func (d *Digest32) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}

// Reset restores the digest to its initial state.
func (d *Digest32) Reset() {
	d.acc = 0
	d.n = 0
}

// Size returns the hash size in bytes.
func (d *Digest32) Size() int { return WordSize32 }

// BlockSize returns the mixing word size in bytes.
func (d *Digest32) BlockSize() int { return WordSize32 }

// Digest16 is Digest64 at 16-bit width. The standard library has no
// hash.Hash16, so it satisfies plain hash.Hash and adds Sum16.
type Digest16 struct {
	acc uint16
	odd byte
	has bool
	mix func(uint16, []byte) uint16
}

var _ hash.Hash = (*Digest16)(nil)

// New16 returns a Digest16 using the block mixing law.
func New16() *Digest16 {
	return &Digest16{mix: simd.Block16}
}

// NewRolling16 returns a Digest16 using the rolling mixing law.
func NewRolling16() *Digest16 {
	return &Digest16{mix: simd.Roll16}
}

// Write folds p into the digest. It never fails.
func (d *Digest16) Write(p []byte) (int, error) {
	written := len(p)
	if d.has && len(p) > 0 {
		d.acc = d.mix(d.acc, []byte{d.odd, p[0]})
		d.has = false
		p = p[1:]
	}
	if full := len(p) &^ 1; full > 0 {
		d.acc = d.mix(d.acc, p[:full])
		p = p[full:]
	}
	if len(p) > 0 {
		d.odd = p[0]
		d.has = true
	}
	return written, nil
}

// Sum16 returns the hash of all bytes written so far.
func (d *Digest16) Sum16() uint16 {
	if !d.has {
		return d.acc
	}
	return d.mix(d.acc, []byte{d.odd})
}

// Sum appends the big-endian form of Sum16 to b.
func (d *Digest16) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint16(b, d.Sum16())
}

// Reset restores the digest to its initial state.
func (d *Digest16) Reset() {
	d.acc = 0
	d.has = false
}

// Size returns the hash size in bytes.
func (d *Digest16) Size() int { return WordSize16 }

// BlockSize returns the mixing word size in bytes.
func (d *Digest16) BlockSize() int { return WordSize16 }
