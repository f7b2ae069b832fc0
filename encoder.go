package huffman

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Field widths of the compressed frame.  The full layout is, in order:
//
//	pad_count      8 bits   trailing padding bits appended, 1..8
//	tree_length   16 bits   bit length of the embedded table
//	encoded_text  variable  concatenated prefix codes, in input order
//	table         tree_length bits
//	padding       pad_count zero bits
//
// Bits are packed MSB-first and the total length is always a multiple of 8.
const (
	padCountFieldBits    = 8
	tableLengthFieldBits = 16

	maxTableBits = 1<<tableLengthFieldBits - 1

	tableFormatVersion = 1
)

// Encode compresses a symbol sequence into a self-describing buffer.  The
// prefix code is derived from the sequence's own frequency distribution and
// the code→symbol table rides along inside the frame, so Decode needs
// nothing but the buffer.  Encoding the same sequence twice yields
// byte-identical buffers.
//
// An empty sequence fails with ErrEmptyInput.
func Encode(symbols []Symbol) ([]byte, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	table := assignCodes(buildTree(CountFrequencies(symbols)))

	textBits, err := countTextBits(symbols, table)
	if err != nil {
		return nil, err
	}
	entries, tableBits, err := tableWire(table)
	if err != nil {
		return nil, err
	}

	// Everything except the pad_count field itself participates in the
	// alignment computation.  An already-aligned frame still receives a
	// full byte of padding, so pad_count is never zero and the decoder
	// never has to guess.
	frameBits := tableLengthFieldBits + textBits + tableBits
	padBits := 8 - frameBits%8

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.TryWriteBits(uint64(padBits), padCountFieldBits)
	w.TryWriteBits(uint64(tableBits), tableLengthFieldBits)
	for _, s := range symbols {
		hc := table.CodeOf[s]
		w.TryWriteBits(hc.Bits, hc.Size)
	}
	writeTable(w, entries)
	w.TryWriteBits(0, uint8(padBits))
	if w.TryError == nil {
		w.TryError = w.Close()
	}
	if err := w.TryError; err != nil {
		return nil, err
	}

	assert.Assertf(buf.Len()*8 == padCountFieldBits+frameBits+padBits,
		"frame is %d bytes, expected %d bits", buf.Len(), padCountFieldBits+frameBits+padBits)
	return buf.Bytes(), nil
}

// EncodeString compresses text, treating each code point as one symbol.
func EncodeString(text string) ([]byte, error) {
	return Encode(SymbolsOf(text))
}

func countTextBits(symbols []Symbol, table CodeTable) (int, error) {
	total := 0
	for _, s := range symbols {
		hc, found := table.CodeOf[s]
		if !found {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s)
		}
		total += int(hc.Size)
	}
	return total, nil
}

// tableWire validates the table for serialization and measures its wire
// size.  The wire form is an 8-bit format version, a 16-bit entry count,
// then one entry per code in canonical (length, bits) order; each entry is
// an 8-bit code length, the code bits themselves, an 8-bit UTF-8 byte count
// and the symbol's UTF-8 bytes.
//
// A symbol that is not a valid code point cannot be serialized and fails
// with ErrMalformedTable; so does a table too large for the 16-bit
// tree_length field.
func tableWire(table CodeTable) ([]tableEntry, int, error) {
	entries := table.sortedEntries()
	bits := 8 + 16
	for _, entry := range entries {
		if !utf8.ValidRune(rune(entry.symbol)) {
			return nil, 0, fmt.Errorf("%w: symbol %d is not a valid code point", ErrMalformedTable, entry.symbol)
		}
		bits += 8 + int(entry.code.Size) + 8 + 8*utf8.RuneLen(rune(entry.symbol))
	}
	if bits > maxTableBits {
		return nil, 0, fmt.Errorf("%w: serialized table needs %d bits, limit is %d", ErrMalformedTable, bits, maxTableBits)
	}
	return entries, bits, nil
}

func writeTable(w *bitio.Writer, entries []tableEntry) {
	w.TryWriteBits(tableFormatVersion, 8)
	w.TryWriteBits(uint64(len(entries)), 16)
	var scratch [utf8.UTFMax]byte
	for _, entry := range entries {
		w.TryWriteBits(uint64(entry.code.Size), 8)
		w.TryWriteBits(entry.code.Bits, entry.code.Size)
		n := utf8.EncodeRune(scratch[:], rune(entry.symbol))
		w.TryWriteBits(uint64(n), 8)
		for _, b := range scratch[:n] {
			w.TryWriteByte(b)
		}
	}
}
