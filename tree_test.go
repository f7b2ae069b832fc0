package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkTree walks the whole tree and verifies its structural invariants:
// every internal node has exactly two children and weighs as much as both
// together, and only leaves carry symbols.  It returns the leaf count.
func checkTree(t *testing.T, root *treeNode) int {
	t.Helper()

	leaves := 0
	stack := []*treeNode{root}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.isLeaf() {
			require.NotEqual(t, InvalidSymbol, n.symbol)
			leaves++
			continue
		}
		require.NotNil(t, n.left)
		require.NotNil(t, n.right)
		require.Equal(t, InvalidSymbol, n.symbol)
		require.Equal(t, n.weight, n.left.weight+n.right.weight)
		stack = append(stack, n.left, n.right)
	}
	return leaves
}

func TestBuildTree(t *testing.T) {
	root := buildTree(CountFrequencies(SymbolsOf("abracadabra")))
	require.NotNil(t, root)
	require.Equal(t, uint64(11), root.weight)
	require.Equal(t, 5, checkTree(t, root))
}

func TestBuildTree_Empty(t *testing.T) {
	require.Nil(t, buildTree(nil))
}

func TestBuildTree_SingleLeaf(t *testing.T) {
	root := buildTree(CountFrequencies(SymbolsOf("aaaa")))
	require.NotNil(t, root)
	require.True(t, root.isLeaf())
	require.Equal(t, Symbol('a'), root.symbol)
	require.Equal(t, uint64(4), root.weight)
}

func TestBuildTree_Deterministic(t *testing.T) {
	table := CountFrequencies(SymbolsOf("deterministic merge order"))
	first := assignCodes(buildTree(table))
	second := assignCodes(buildTree(table))
	require.Equal(t, first.CodeOf, second.CodeOf)
	require.Equal(t, first.SymbolOf, second.SymbolOf)
}
