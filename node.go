package trie

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func (l *leaf) Type() NodeType {
	return Leaf
}

func (l *leaf) Insert(s string) (Node, error) {
	if s == "" {
		return terminalLeaf, nil
	}
	c, err := newChain(s, l.end)
	if err != nil {
		return l, err
	}
	return c, nil
}

func (l *leaf) Contains(s string) bool {
	return s == "" && l.end
}

func (l *leaf) Completions(prefix string) Node {
	if prefix == "" {
		return l
	}
	return nil
}

func (l *leaf) Collect(prefix []byte, into []string) []string {
	return collect(l, prefix, into)
}

func (l *leaf) walk(buf *[]byte, fn Callback) traverseAction {
	if l.end && !fn(string(*buf)) {
		return traverseStop
	}
	return traverseContinue
}

func (c *chain) Type() NodeType {
	return Chain
}

func (c *chain) Insert(s string) (Node, error) {
	switch {
	case s == "":
		c.end = true
		return c, nil
	case s[0] == c.label:
		child, err := c.child.Insert(s[1:])
		if err != nil {
			return c, err
		}
		c.child = child
		return c, nil
	}

	// a second edge is needed, grow to branch
	b, err := newBranch(s, c.end, c.label, c.child)
	if err != nil {
		return c, err
	}
	return b, nil
}

func (c *chain) Contains(s string) bool {
	if s == "" {
		return c.end
	}
	if s[0] != c.label {
		return false
	}
	return c.child.Contains(s[1:])
}

func (c *chain) Completions(prefix string) Node {
	if prefix == "" {
		return c
	}
	if prefix[0] != c.label {
		return nil
	}
	return c.child.Completions(prefix[1:])
}

func (c *chain) Collect(prefix []byte, into []string) []string {
	return collect(c, prefix, into)
}

func (c *chain) walk(buf *[]byte, fn Callback) traverseAction {
	if c.end && !fn(string(*buf)) {
		return traverseStop
	}
	return descend(buf, c.label, c.child, fn)
}

func (b *branch) Type() NodeType {
	return Branch
}

func (b *branch) Insert(s string) (Node, error) {
	if s == "" {
		b.end = true
		return b, nil
	}

	if child, ok := b.children[s[0]]; ok {
		next, err := child.Insert(s[1:])
		if err != nil {
			return b, err
		}
		b.children[s[0]] = next
		return b, nil
	}

	if !isLetter(s[0]) {
		return b, badLetter(s, 0)
	}
	fresh, err := emptyLeaf.Insert(s[1:])
	if err != nil {
		return b, err
	}
	b.children[s[0]] = fresh
	return b, nil
}

func (b *branch) Contains(s string) bool {
	if s == "" {
		return b.end
	}
	child, ok := b.children[s[0]]
	if !ok {
		return false
	}
	return child.Contains(s[1:])
}

func (b *branch) Completions(prefix string) Node {
	if prefix == "" {
		return b
	}
	child, ok := b.children[prefix[0]]
	if !ok {
		return nil
	}
	return child.Completions(prefix[1:])
}

func (b *branch) Collect(prefix []byte, into []string) []string {
	return collect(b, prefix, into)
}

func (b *branch) walk(buf *[]byte, fn Callback) traverseAction {
	if b.end && !fn(string(*buf)) {
		return traverseStop
	}
	for _, label := range b.labels() {
		if descend(buf, label, b.children[label], fn) == traverseStop {
			return traverseStop
		}
	}
	return traverseContinue
}

// labels returns the edge labels in ascending order
func (b *branch) labels() []byte {
	labels := maps.Keys(b.children)
	slices.Sort(labels)
	return labels
}

// descend walks child with label pushed onto buf. buf is restored to its
// entry length on every way out, panics included.
func descend(buf *[]byte, label byte, child Node, fn Callback) traverseAction {
	*buf = append(*buf, label)
	defer func(n int) {
		*buf = (*buf)[:n]
	}(len(*buf) - 1)

	return child.walk(buf, fn)
}

func collect(n Node, prefix []byte, into []string) []string {
	buf := append([]byte(nil), prefix...)
	n.walk(&buf, func(word string) bool {
		into = append(into, word)
		return true
	})
	return into
}
