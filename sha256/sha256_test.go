package sha256_test

import (
	"bytes"
	"encoding/hex"
	"math/bits"
	"testing"

	"massnet.org/crypto/sha256"
	"massnet.org/crypto/testutil"
)

func TestSum256Vectors(t *testing.T) {
	vectors, err := testutil.LoadVectors("testdata/vectors.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if len(vectors) == 0 {
		t.Fatal("no vectors loaded")
	}

	for i, vector := range vectors {
		input, err := vector.Input()
		if err != nil {
			t.Fatalf("%d, %s, bad vector input, %v", i, vector.Name, err)
		}
		digest, err := sha256.Sum256(input)
		if err != nil {
			t.Fatalf("%d, %s, Sum256 error, %v", i, vector.Name, err)
		}
		if digest.String() != vector.Sum {
			t.Errorf("%d, %s, digest not equal, got = %v, want = %v", i, vector.Name, digest, vector.Sum)
		}
	}
}

func TestSum256Deterministic(t *testing.T) {
	data := make([]byte, 257)
	for i := range data {
		data[i] = byte(i)
	}

	seen := make(map[sha256.Digest]int)
	for length := 0; length <= len(data); length++ {
		d1, err := sha256.Sum256(data[:length])
		if err != nil {
			t.Fatal(err)
		}
		d2, err := sha256.Sum256(data[:length])
		if err != nil {
			t.Fatal(err)
		}
		if d1 != d2 {
			t.Errorf("digest not deterministic at length %d", length)
		}
		if prev, ok := seen[d1]; ok {
			t.Errorf("digest collision between lengths %d and %d", prev, length)
		}
		seen[d1] = length
	}
}

func TestSum256Avalanche(t *testing.T) {
	base := []byte("Hello, world!")
	baseDigest, err := sha256.Sum256(base)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < len(base)*8; i++ {
		flipped := make([]byte, len(base))
		copy(flipped, base)
		flipped[i/8] ^= 1 << uint(i%8)

		digest, err := sha256.Sum256(flipped)
		if err != nil {
			t.Fatal(err)
		}
		if digest == baseDigest {
			t.Fatalf("bit %d, flipped digest equals base digest", i)
		}
		diff := 0
		for j := range digest {
			diff += bits.OnesCount32(digest[j] ^ baseDigest[j])
		}
		if diff < 64 {
			t.Errorf("bit %d, only %d of 256 digest bits changed", i, diff)
		}
	}
}

func TestDigestString(t *testing.T) {
	digest, err := sha256.Sum256([]byte("TestDigestString"))
	if err != nil {
		t.Fatal(err)
	}
	var testRound = 10000

	for i := 0; i < testRound; i++ {
		digest, err = sha256.Sum256(digest.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		str := digest.String()
		if len(str) != sha256.Size*2 {
			t.Fatalf("digest string length not equal, got = %v, want = %v", len(str), sha256.Size*2)
		}
		decoded, err := hex.DecodeString(str)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(decoded, digest.Bytes()) {
			t.Error("digest String decode error")
		}
	}
}

// BenchmarkSum256-8   	 2000000	       703 ns/op	      64 B/op	       1 allocs/op
func BenchmarkSum256(b *testing.B) {
	data := []byte("bench sha256")

	for i := 0; i < b.N; i++ {
		if _, err := sha256.Sum256(data); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSum256_1K-8   	  200000	     11342 ns/op	    1152 B/op	       1 allocs/op
func BenchmarkSum256_1K(b *testing.B) {
	data := make([]byte, 1024)

	for i := 0; i < b.N; i++ {
		if _, err := sha256.Sum256(data); err != nil {
			b.Fatal(err)
		}
	}
}
