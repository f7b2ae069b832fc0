package huffman

import (
	"math"
	"strings"
)

// Symbol represents one unit of the input alphabet, typically a Unicode code
// point.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes also carry it, as only
// leaves hold real symbols.
const InvalidSymbol = Symbol(-1)

// SymbolsOf converts text into the sequence of its code points.
func SymbolsOf(text string) []Symbol {
	symbols := make([]Symbol, 0, len(text))
	for _, r := range text {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}

// TextOf is the inverse of SymbolsOf.
func TextOf(symbols []Symbol) string {
	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}
