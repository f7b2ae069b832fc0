package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// treeNode is one node of the prefix-code tree.  A node is a leaf iff both
// children are nil; only leaves carry a symbol.  An internal node owns its
// two children exclusively and weighs exactly as much as both together.
type treeNode struct {
	symbol Symbol
	weight uint64
	seq    uint32
	left   *treeNode
	right  *treeNode
}

func (n *treeNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// buildTree merges the ordered frequency table into a single prefix-code
// tree: repeatedly remove the two lowest-weight nodes, merge them into an
// internal node (first removed on the left), and reinsert the result; the
// survivor is the root.  Equal weights are ordered by insertion sequence,
// leaves in table order first and merged nodes in creation order, so the
// tree is fully determined by the table.  An empty table yields no tree.
func buildTree(table []SymbolCount) *treeNode {
	if len(table) == 0 {
		return nil
	}

	h := nodeHeap{make([]*treeNode, 0, len(table))}
	nextSeq := uint32(0)
	for _, sc := range table {
		assert.Assertf(sc.Count != 0, "zero count for symbol %d", sc.Symbol)
		h.list = append(h.list, &treeNode{
			symbol: sc.Symbol,
			weight: uint64(sc.Count),
			seq:    nextSeq,
		})
		nextSeq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(*treeNode)
		b := heap.Pop(&h).(*treeNode)
		heap.Push(&h, &treeNode{
			symbol: InvalidSymbol,
			weight: a.weight + b.weight,
			seq:    nextSeq,
			left:   a,
			right:  b,
		})
		nextSeq++
	}
	return heap.Pop(&h).(*treeNode)
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*treeNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*treeNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
