package sha256_test

import (
	"fmt"
	"log"

	"massnet.org/crypto/sha256"
)

func ExampleSum256() {
	digest, err := sha256.Sum256([]byte("hello world\n"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(digest)
	// Output: a948904f2f0f479b8f8197694b30184b0d2ed1c1cd2a1ec0fb85d299a192a447
}

func ExampleDigest_Bytes() {
	digest, err := sha256.Sum256([]byte("abc"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%x", digest.Bytes())
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
