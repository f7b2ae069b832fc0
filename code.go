package huffman

import (
	"fmt"
	"strconv"
)

// maxCodeBits bounds the length of a single prefix code.  With 32-bit
// occurrence counts the weight along a maximally skewed tree path grows at
// least as fast as the Fibonacci sequence, so a tree deeper than this would
// need more input than can be counted.
const maxCodeBits = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// sequence is the most significant of the low Size bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns this Code extended by one trailing bit.
func (hc Code) Append(bit byte) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// IsPrefixOf reports whether hc is a strict prefix of other.
func (hc Code) IsPrefixOf(other Code) bool {
	if hc.Size >= other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
