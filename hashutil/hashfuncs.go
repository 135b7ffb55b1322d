package hashutil

import (
	"hash"

	"golang.org/x/crypto/ripemd160"

	"massnet.org/crypto/sha256"
)

// Calculate the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// SHA256 returns sha256(data) as a Hash.
func SHA256(data []byte) (Hash, error) {
	digest, err := sha256.Sum256(data)
	if err != nil {
		return Hash{}, err
	}
	var h Hash
	copy(h[:], digest.Bytes())
	return h, nil
}

// DoubleSHA256 returns sha256(sha256(data)).
func DoubleSHA256(data []byte) (Hash, error) {
	first, err := SHA256(data)
	if err != nil {
		return Hash{}, err
	}
	return SHA256(first[:])
}

// Ripemd160 returns ripemd160(data).
func Ripemd160(data []byte) []byte {
	return calcHash(data, ripemd160.New())
}

// Hash160 returns ripemd160(sha256(data)).
func Hash160(data []byte) ([]byte, error) {
	h, err := SHA256(data)
	if err != nil {
		return nil, err
	}
	return calcHash(h[:], ripemd160.New()), nil
}
