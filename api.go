package trie

// Node is a subtree of a trie: the set of suffixes reachable from it. The
// concrete shape of a node depends on how many edges leave it and changes as
// words are inserted, so the node returned by Insert replaces the receiver.
type Node interface {
	Type() NodeType
	// Insert adds s and returns the root of the resulting subtree, which is
	// not necessarily the receiver. On error the subtree is unchanged.
	Insert(s string) (Node, error)
	Contains(s string) bool
	// Completions returns the subtree reached by following prefix, or nil.
	Completions(prefix string) Node
	// Collect appends every suffix in the subtree, in ascending order and
	// preceded by prefix, to into.
	Collect(prefix []byte, into []string) []string

	walk(buf *[]byte, fn Callback) traverseAction
}

type Tree interface {
	Insert(word string) (bool, error)
	Contains(word string) bool
	Completions(prefix string) []string
	ForEachPrefix(prefix string, fn Callback)
	Words() []string
	Root() Node
	Size() int
}

// Callback receives words in ascending order. Returning false stops the walk.
type Callback func(word string) bool

// Empty returns the empty trie.
func Empty() Node {
	return emptyLeaf
}

func New() Tree {
	return &tree{root: emptyLeaf}
}
