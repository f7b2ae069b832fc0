// Package huffman implements a self-describing static Huffman codec.  It
// derives a prefix code from the symbol frequencies of one complete in-memory
// input, bit-packs the input with that code, and embeds the code→symbol
// table in the output so that decoding needs no external schema.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://en.wikipedia.org/wiki/Prefix_code>
package huffman
