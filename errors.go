package huffman

import (
	"errors"
)

// Error kinds reported by Encode and Decode.  All of them are final: the
// codec never retries or recovers internally, and a call that reports one of
// these produces no output at all.  Match with errors.Is; the returned errors
// wrap these sentinels with context.
var (
	// ErrEmptyInput is returned by Encode when there is nothing to
	// compress.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrUnknownSymbol is returned when the input contains a symbol with
	// no entry in the code table.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

	// ErrMalformedTable is returned when an embedded code table cannot be
	// serialized or parsed.
	ErrMalformedTable = errors.New("huffman: malformed code table")

	// ErrTruncatedBuffer is returned by Decode when the declared field
	// widths exceed the bits actually present in the buffer.
	ErrTruncatedBuffer = errors.New("huffman: truncated buffer")

	// ErrUnmatchedCode is returned by Decode when the encoded text ends in
	// the middle of a code, or carries bits that cannot form one.
	ErrUnmatchedCode = errors.New("huffman: unmatched code in encoded text")
)
