package sha256

// A Block is a single 512-bit message block, sixteen 32-bit words with
// big-endian byte order.
type Block [16]uint32

// checkLength rejects input lengths beyond MaxSize. The bound keeps the
// padded bit length comfortably inside an unsigned 64-bit value.
func checkLength(n uint64) error {
	if n > MaxSize {
		return ErrDataTooLarge
	}
	return nil
}

// padData lays data out as 512-bit blocks with standard SHA-256 padding:
// a single 0x80 delimiter byte, zero fill, and the message bit length
// packed into the last two words of the final block.
//
// A message always gains at least one padding bit, so a message filling
// its last block exactly spills into a fresh block, as does one whose
// tail leaves fewer than 9 spare bytes for delimiter plus length.
func padData(data []byte) ([]Block, error) {
	if err := checkLength(uint64(len(data))); err != nil {
		return nil, err
	}

	n := len(data)/BlockSize + 1
	if len(data)%BlockSize >= BlockSize-8 {
		n++
	}
	blocks := make([]Block, n)

	for i, b := range data {
		blocks[i/BlockSize][(i%BlockSize)/4] |= uint32(b) << uint(24-8*(i%4))
	}
	delim := len(data)
	blocks[delim/BlockSize][(delim%BlockSize)/4] |= 0x80 << uint(24-8*(delim%4))

	bitLen := uint64(len(data)) * 8
	blocks[n-1][14] = uint32(bitLen >> 32)
	blocks[n-1][15] = uint32(bitLen)

	return blocks, nil
}
