package trie

// Insert adds s to the trie rooted at root and returns the new root. A nil
// root is the empty trie. If s holds anything but a-z, root is returned
// unchanged together with an error wrapping ErrInvalidArgument.
func Insert(root Node, s string) (Node, error) {
	if err := validate(s); err != nil {
		return root, err
	}
	if root == nil {
		root = emptyLeaf
	}
	return root.Insert(s)
}

func Contains(root Node, s string) bool {
	if root == nil {
		return false
	}
	return root.Contains(s)
}

// Completions returns the subtree of suffixes completing prefix into stored
// words. ok is false when no stored word starts with prefix.
func Completions(root Node, prefix string) (sub Node, ok bool) {
	if root == nil {
		return nil, false
	}
	sub = root.Completions(prefix)
	return sub, sub != nil
}

// CollectSorted returns every word stored under root in ascending order.
func CollectSorted(root Node) []string {
	words := make([]string, 0)
	if root == nil {
		return words
	}
	return root.Collect(nil, words)
}

// Walk calls fn for every stored word starting with prefix, in ascending
// order, until fn returns false.
func Walk(root Node, prefix string, fn Callback) {
	sub, ok := Completions(root, prefix)
	if !ok {
		return
	}
	buf := []byte(prefix)
	sub.walk(&buf, fn)
}

type tree struct {
	size int
	root Node
}

func (t *tree) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *tree) Root() Node {
	return t.root
}

// Insert reports whether word was added, false if it was already stored.
func (t *tree) Insert(word string) (bool, error) {
	if t.root.Contains(word) {
		return false, nil
	}
	root, err := Insert(t.root, word)
	if err != nil {
		return false, err
	}
	t.root = root
	t.size++
	return true, nil
}

func (t *tree) Contains(word string) bool {
	return t.root.Contains(word)
}

// Completions returns the stored words starting with prefix, sorted.
func (t *tree) Completions(prefix string) []string {
	words := make([]string, 0)
	t.ForEachPrefix(prefix, func(word string) bool {
		words = append(words, word)
		return true
	})
	return words
}

func (t *tree) ForEachPrefix(prefix string, fn Callback) {
	Walk(t.root, prefix, fn)
}

func (t *tree) Words() []string {
	return CollectSorted(t.root)
}
