package huffman

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"
)

func TestDecode_RoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"aaaa",
		"ab",
		"abracadabra",
		"mississippi",
		"to be or not to be, that is the question",
		"héllo wörld ☺",
		strings.Repeat("the quick brown fox jumps over the lazy dog\n", 50),
	}
	for _, input := range inputs {
		buf, err := EncodeString(input)
		require.NoError(t, err, "input %q", input)

		output, err := DecodeToString(buf)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, input, output)
	}
}

func TestDecode_Abracadabra(t *testing.T) {
	buf, err := EncodeString("abracadabra")
	require.NoError(t, err)

	symbols, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, SymbolsOf("abracadabra"), symbols)
}

func TestDecode_HeaderTooShort(t *testing.T) {
	for _, buf := range [][]byte{nil, {0x04}, {0x04, 0x00}} {
		_, err := Decode(buf)
		require.ErrorIs(t, err, ErrTruncatedBuffer)
	}
}

func TestDecode_PadCountOutOfRange(t *testing.T) {
	buf, err := EncodeString("abracadabra")
	require.NoError(t, err)

	for _, pad := range []byte{0, 9, 200} {
		corrupt := append([]byte(nil), buf...)
		corrupt[0] = pad
		_, err := Decode(corrupt)
		require.ErrorIs(t, err, ErrTruncatedBuffer, "pad %d", pad)
	}
}

func TestDecode_DeclaredFieldsExceedBuffer(t *testing.T) {
	buf, err := EncodeString("abracadabra")
	require.NoError(t, err)

	_, err = Decode(buf[:3])
	require.ErrorIs(t, err, ErrTruncatedBuffer)
}

// Chopping the tail off a valid frame shifts every declared field, so decode
// must reject the buffer one way or another; it must never return data.
func TestDecode_TruncatedTail(t *testing.T) {
	buf, err := EncodeString("abracadabra")
	require.NoError(t, err)

	for cut := 1; cut < len(buf)-3; cut++ {
		_, err := Decode(buf[:len(buf)-cut])
		require.Error(t, err, "cut %d", cut)
		require.True(t,
			errors.Is(err, ErrTruncatedBuffer) ||
				errors.Is(err, ErrUnmatchedCode) ||
				errors.Is(err, ErrMalformedTable),
			"cut %d: unexpected error %v", cut, err)
	}
}

func TestDecode_EmptyTable(t *testing.T) {
	// pad_count=8, tree_length=24, no text, table is just version+count=0.
	buf := []byte{0x08, 0x00, 0x18, 0x01, 0x00, 0x00, 0x00}
	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestDecode_UnsupportedTableVersion(t *testing.T) {
	buf := []byte{0x08, 0x00, 0x18, 0x02, 0x00, 0x00, 0x00}
	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrMalformedTable)
}

// buildFrame assembles a frame bit by bit so tests can describe malformed
// ones that Encode would never produce.
func buildFrame(t *testing.T, padBits, tableBits int, text func(w *bitio.Writer), table func(w *bitio.Writer)) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	w.TryWriteBits(uint64(padBits), padCountFieldBits)
	w.TryWriteBits(uint64(tableBits), tableLengthFieldBits)
	text(w)
	table(w)
	w.TryWriteBits(0, uint8(padBits))
	require.NoError(t, w.TryError)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func writeTestEntry(w *bitio.Writer, hc Code, symbol byte) {
	w.TryWriteBits(uint64(hc.Size), 8)
	w.TryWriteBits(hc.Bits, hc.Size)
	w.TryWriteBits(1, 8)
	w.TryWriteByte(symbol)
}

func TestDecode_UnmatchedCode(t *testing.T) {
	// One entry, a="0", but the single text bit is "1": nothing in the
	// table can ever match.
	buf := buildFrame(t, 6, 49,
		func(w *bitio.Writer) { w.TryWriteBits(1, 1) },
		func(w *bitio.Writer) {
			w.TryWriteBits(tableFormatVersion, 8)
			w.TryWriteBits(1, 16)
			writeTestEntry(w, MakeCode(1, 0), 'a')
		})
	require.Len(t, buf, 10)

	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrUnmatchedCode)
}

func TestDecode_TextEndsMidCode(t *testing.T) {
	// Codes a="0", b="10", c="11"; the sole text bit "1" is a strict
	// prefix of both two-bit codes, so the text exhausts mid-code.
	buf := buildFrame(t, 2, 101,
		func(w *bitio.Writer) { w.TryWriteBits(1, 1) },
		func(w *bitio.Writer) {
			w.TryWriteBits(tableFormatVersion, 8)
			w.TryWriteBits(3, 16)
			writeTestEntry(w, MakeCode(1, 0b0), 'a')
			writeTestEntry(w, MakeCode(2, 0b10), 'b')
			writeTestEntry(w, MakeCode(2, 0b11), 'c')
		})
	require.Len(t, buf, 16)

	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrUnmatchedCode)
}

func TestDecode_DuplicateCode(t *testing.T) {
	buf := buildFrame(t, 5, 74,
		func(w *bitio.Writer) { w.TryWriteBits(1, 1) },
		func(w *bitio.Writer) {
			w.TryWriteBits(tableFormatVersion, 8)
			w.TryWriteBits(2, 16)
			writeTestEntry(w, MakeCode(1, 0), 'a')
			writeTestEntry(w, MakeCode(1, 0), 'b')
		})

	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestDecode_EntryOverrunsTable(t *testing.T) {
	// The declared tree_length covers only the table header, but the
	// count demands an entry.
	buf := buildFrame(t, 7, 24,
		func(w *bitio.Writer) { w.TryWriteBits(0b1, 1) },
		func(w *bitio.Writer) {
			w.TryWriteBits(tableFormatVersion, 8)
			w.TryWriteBits(1, 16)
		})

	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrMalformedTable)
}

func TestDecode_NonCanonicalSymbolBytes(t *testing.T) {
	// 0x80 is a bare UTF-8 continuation byte.
	buf := buildFrame(t, 6, 49,
		func(w *bitio.Writer) { w.TryWriteBits(0, 1) },
		func(w *bitio.Writer) {
			w.TryWriteBits(tableFormatVersion, 8)
			w.TryWriteBits(1, 16)
			writeTestEntry(w, MakeCode(1, 0), 0x80)
		})

	_, err := Decode(buf)
	require.ErrorIs(t, err, ErrMalformedTable)
}
