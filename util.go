package huffman

import (
	mathbits "math/bits"

	"github.com/icza/bitio"
)

func log2uint64(x uint64) uint {
	if x == 0 {
		x = 1
	}
	return uint(64 - mathbits.LeadingZeros64(x))
}

// skipBits discards n bits from the reader.
func skipBits(r *bitio.Reader, n int) {
	for n > 0 {
		chunk := n
		if chunk > 32 {
			chunk = 32
		}
		r.TryReadBits(uint8(chunk))
		n -= chunk
	}
}
