package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps between symbols and their prefix codes.  Both directions
// are built together from one tree, so SymbolOf is always the exact inverse
// of CodeOf.  Whenever the tree has two or more leaves, the set of codes is
// prefix-free; codes always have at least one bit.
type CodeTable struct {
	CodeOf   map[Symbol]Code
	SymbolOf map[Code]Symbol
}

// NumSymbols returns the number of symbols in the table's alphabet.
func (t CodeTable) NumSymbols() int {
	return len(t.CodeOf)
}

// assignCodes walks the tree and records the bit path to every leaf, "0" for
// a left edge and "1" for a right edge.  The walk uses an explicit stack, not
// recursion, so a large alphabet never translates into unbounded call depth.
//
// A root that is itself a leaf receives the fixed one-bit code "0": an empty
// code could never terminate greedy matching on decode, so it must never be
// produced.
func assignCodes(root *treeNode) CodeTable {
	table := CodeTable{
		CodeOf:   make(map[Symbol]Code),
		SymbolOf: make(map[Code]Symbol),
	}
	if root == nil {
		return table
	}
	if root.isLeaf() {
		hc := MakeCode(1, 0)
		table.CodeOf[root.symbol] = hc
		table.SymbolOf[hc] = root.symbol
		return table
	}

	type stackItem struct {
		node *treeNode
		code Code
	}

	// The stack never grows past the tree depth, which stays near
	// log2 of the total weight for typical inputs.
	stack := make([]stackItem, 0, log2uint64(root.weight)+1)
	stack = append(stack, stackItem{root, Code{}})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.isLeaf() {
			table.CodeOf[top.node.symbol] = top.code
			table.SymbolOf[top.code] = top.node.symbol
			continue
		}
		assert.Assertf(top.code.Size < maxCodeBits, "code deeper than %d bits", maxCodeBits)
		// Right is pushed first so that the left subtree is visited first.
		stack = append(stack, stackItem{top.node.right, top.code.Append(1)})
		stack = append(stack, stackItem{top.node.left, top.code.Append(0)})
	}
	return table
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// current state to the given writer.
func (t CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, entry := range t.sortedEntries() {
		fmt.Fprintf(&buf, "\tCodeOf(%q) = %s\n", entry.symbol, entry.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// sortedEntries lists the table in canonical order, ascending by code length
// and then by code bits.  Serialization relies on this order being total and
// deterministic.
func (t CodeTable) sortedEntries() []tableEntry {
	entries := make(byCode, 0, len(t.SymbolOf))
	for hc, symbol := range t.SymbolOf {
		entries = append(entries, tableEntry{hc, symbol})
	}
	entries.Sort()
	return entries
}

type tableEntry struct {
	code   Code
	symbol Symbol
}

// type byCode {{{

type byCode []tableEntry

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	return a.Bits < b.Bits
}

var _ sort.Interface = byCode(nil)

// }}}
