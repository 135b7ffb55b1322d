// Package sha256 implements the SHA-256 hash algorithm defined in FIPS 180-4.
//
// The implementation is one-shot: Sum256 consumes the whole message and
// returns its digest. There is no streaming state to reuse or reset.
// Inputs longer than MaxSize are rejected with ErrDataTooLarge rather
// than silently truncated.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = 32

// BlockSize is the size of a SHA-256 message block in bytes.
const BlockSize = 64

// MaxSize is the largest input length in bytes accepted by Sum256.
const MaxSize uint64 = 1 << 58

// ErrDataTooLarge indicates the input length exceeds MaxSize.
var ErrDataTooLarge = errors.New("input data too large to hash")

// initState is the initial hash value, the first 32 bits of the
// fractional parts of the square roots of the first 8 primes.
var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Digest holds a computed SHA-256 digest as the eight 32-bit words of
// the final hash state.
type Digest [8]uint32

// Bytes converts the digest to its 32-byte big-endian representation.
func (d Digest) Bytes() []byte {
	bs := make([]byte, Size)
	for i, word := range d {
		binary.BigEndian.PutUint32(bs[i*4:], word)
	}
	return bs
}

// String converts the digest to a 64-character lowercase hex string.
func (d Digest) String() string {
	return hex.EncodeToString(d.Bytes())
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) (Digest, error) {
	blocks, err := padData(data)
	if err != nil {
		return Digest{}, err
	}
	state := initState
	for i := range blocks {
		compressBlock(&state, &blocks[i])
	}
	return Digest(state), nil
}
