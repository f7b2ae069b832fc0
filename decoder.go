package huffman

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/icza/bitio"
)

// Decode reconstructs the symbol sequence from a buffer produced by Encode.
// It inverts the framing exactly: strip the declared padding, split off the
// embedded table, rebuild the code→symbol mapping, then greedily match
// prefix codes against the text bits.  The frequency table and the tree are
// never rebuilt; the embedded table is the only schema.
func Decode(buf []byte) ([]Symbol, error) {
	totalBits := 8 * len(buf)
	headerBits := padCountFieldBits + tableLengthFieldBits
	if totalBits < headerBits {
		return nil, fmt.Errorf("%w: %d bits cannot hold the frame header", ErrTruncatedBuffer, totalBits)
	}

	// The header is byte-aligned by construction: pad_count is the first
	// byte and tree_length the next two, big-endian.
	padBits := int(buf[0])
	if padBits < 1 || padBits > 8 {
		return nil, fmt.Errorf("%w: pad count %d outside [1,8]", ErrTruncatedBuffer, padBits)
	}
	tableBits := int(buf[1])<<8 | int(buf[2])
	textBits := totalBits - headerBits - tableBits - padBits
	if textBits < 0 {
		return nil, fmt.Errorf("%w: declared fields need %d bits, buffer has %d",
			ErrTruncatedBuffer, headerBits+tableBits+padBits, totalBits)
	}

	symbolOf, maxSize, err := parseTable(buf, textBits, tableBits)
	if err != nil {
		return nil, err
	}

	r := bitio.NewReader(bytes.NewReader(buf[headerBits/8:]))
	symbols := make([]Symbol, 0, textBits/int(maxSize)+1)
	var acc Code
	for i := 0; i < textBits; i++ {
		bit := byte(0)
		if r.TryReadBool() {
			bit = 1
		}
		acc = acc.Append(bit)
		if symbol, found := symbolOf[acc]; found {
			symbols = append(symbols, symbol)
			acc = Code{}
		} else if acc.Size >= maxSize {
			// Longer than every table entry, so no further bit can
			// ever complete it.
			return nil, fmt.Errorf("%w: %s matches no table entry", ErrUnmatchedCode, acc)
		}
	}
	if err := r.TryError; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedBuffer, err)
	}
	if acc.Size != 0 {
		return nil, fmt.Errorf("%w: text ends mid-code at %s", ErrUnmatchedCode, acc)
	}
	return symbols, nil
}

// DecodeToString decompresses a buffer produced by EncodeString.
func DecodeToString(buf []byte) (string, error) {
	symbols, err := Decode(buf)
	if err != nil {
		return "", err
	}
	return TextOf(symbols), nil
}

// parseTable extracts the embedded code→symbol mapping, which occupies the
// tableBits bits immediately after the text field.  It also reports the
// longest code length seen, which bounds the decode accumulator.
func parseTable(buf []byte, textBits, tableBits int) (map[Code]Symbol, byte, error) {
	if tableBits < 24 {
		return nil, 0, fmt.Errorf("%w: %d bits is too short for the table header", ErrMalformedTable, tableBits)
	}

	r := bitio.NewReader(bytes.NewReader(buf[3:]))
	skipBits(r, textBits)

	version := r.TryReadBits(8)
	if version != tableFormatVersion {
		return nil, 0, fmt.Errorf("%w: unsupported format version %d", ErrMalformedTable, version)
	}
	count := int(r.TryReadBits(16))
	if count == 0 {
		return nil, 0, fmt.Errorf("%w: table has no entries", ErrMalformedTable)
	}

	symbolOf := make(map[Code]Symbol, count)
	var maxSize byte
	remaining := tableBits - 24
	var raw, chk [utf8.UTFMax]byte
	for index := 0; index < count; index++ {
		remaining -= 8
		if remaining < 0 {
			return nil, 0, fmt.Errorf("%w: entry %d overruns the declared table length", ErrMalformedTable, index)
		}
		size := byte(r.TryReadBits(8))
		if size == 0 || size > maxCodeBits {
			return nil, 0, fmt.Errorf("%w: entry %d has code length %d", ErrMalformedTable, index, size)
		}

		remaining -= int(size) + 8
		if remaining < 0 {
			return nil, 0, fmt.Errorf("%w: entry %d overruns the declared table length", ErrMalformedTable, index)
		}
		bits := r.TryReadBits(size)
		n := int(r.TryReadBits(8))
		if n < 1 || n > utf8.UTFMax {
			return nil, 0, fmt.Errorf("%w: entry %d has symbol length %d", ErrMalformedTable, index, n)
		}

		remaining -= 8 * n
		if remaining < 0 {
			return nil, 0, fmt.Errorf("%w: entry %d overruns the declared table length", ErrMalformedTable, index)
		}
		for i := 0; i < n; i++ {
			raw[i] = r.TryReadByte()
		}
		symbol, width := utf8.DecodeRune(raw[:n])
		if width != n || utf8.EncodeRune(chk[:], symbol) != n || !bytes.Equal(chk[:n], raw[:n]) {
			return nil, 0, fmt.Errorf("%w: entry %d is not canonical UTF-8", ErrMalformedTable, index)
		}

		hc := MakeCode(size, bits)
		if _, dup := symbolOf[hc]; dup {
			return nil, 0, fmt.Errorf("%w: duplicate code %s", ErrMalformedTable, hc)
		}
		symbolOf[hc] = Symbol(symbol)
		if size > maxSize {
			maxSize = size
		}
	}
	if remaining != 0 {
		return nil, 0, fmt.Errorf("%w: %d unread bits after the last entry", ErrMalformedTable, remaining)
	}
	if err := r.TryError; err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	return symbolOf, maxSize, nil
}
