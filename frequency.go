package huffman

import (
	"sort"
)

// SymbolCount records how many times a Symbol occurs in the input.
type SymbolCount struct {
	Symbol Symbol
	Count  uint32
}

// CountFrequencies scans the input and returns one SymbolCount per distinct
// symbol, ordered by descending count.  Symbols with equal counts keep the
// order of their first occurrence in the input, which makes the table, and
// everything derived from it, deterministic for identical input.  An empty
// input yields an empty table.
func CountFrequencies(symbols []Symbol) []SymbolCount {
	counts := make(map[Symbol]uint32, 64)
	order := make([]Symbol, 0, 64)
	for _, s := range symbols {
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}

	entries := make(byCountDesc, 0, len(order))
	for index, s := range order {
		entries = append(entries, countAndOrder{SymbolCount{s, counts[s]}, index})
	}
	entries.Sort()

	table := make([]SymbolCount, len(entries))
	for index, entry := range entries {
		table[index] = entry.sc
	}
	return table
}

// type countAndOrder + type byCountDesc {{{

type countAndOrder struct {
	sc  SymbolCount
	ord int
}

type byCountDesc []countAndOrder

func (list byCountDesc) Sort() {
	sort.Sort(list)
}

func (list byCountDesc) Len() int {
	return len(list)
}

func (list byCountDesc) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCountDesc) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.sc.Count != b.sc.Count {
		return a.sc.Count > b.sc.Count
	}
	return a.ord < b.ord
}

var _ sort.Interface = byCountDesc(nil)

// }}}
