// Package hashutil provides a fixed-size hash value type and
// convenience digests built on the sha256 package.
package hashutil

import (
	"encoding/hex"
	"errors"
	"fmt"

	"massnet.org/crypto/sha256"
)

// HashSize is the array size used to store hash values.
const HashSize = sha256.Size

// ErrInvalidHashLength indicates the length of a hash string is invalid.
var ErrInvalidHashLength = errors.New("invalid length for hash")

// Hash represents a 32-byte hash value.
type Hash [HashSize]byte

// Bytes converts Hash to a fresh byte slice.
func (h Hash) Bytes() []byte {
	var bs Hash
	copy(bs[:], h[:])
	return bs[:]
}

// String converts Hash to a hex string.
func (h Hash) String() string {
	return hex.EncodeToString(h.Bytes())
}

// SetBytes sets the bytes which represent the hash. An error is
// returned if the number of bytes passed in is not HashSize.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash), HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns true if target is the same as hash.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// Ptr returns a pointer to a copy of the hash.
func (h Hash) Ptr() *Hash {
	return &h
}

// NewHash returns a new Hash from a byte slice. An error is returned if
// the number of bytes passed in is not HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// DecodeStringToHash decodes a string value to Hash,
// the length of string value must be 64.
func DecodeStringToHash(str string) (Hash, error) {
	if len(str) != HashSize*2 {
		return Hash{}, ErrInvalidHashLength
	}
	hBytes, err := hex.DecodeString(str)
	if err != nil {
		return Hash{}, err
	}
	var h = Hash{}
	copy(h[:], hBytes)

	return h, nil
}
