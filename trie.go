package trie

import (
	"errors"
	"fmt"
)

const (
	Leaf NodeType = iota
	Chain
	Branch
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

const (
	// alphabet bounds, inclusive
	firstLetter = 'a'
	lastLetter  = 'z'

	// a branch is only built once a second edge is needed
	branchMin = 2
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
)

var (
	// the empty trie, and every "no child yet" slot
	emptyLeaf = &leaf{}
	// holds only the empty suffix; what a word bottoms out in
	terminalLeaf = &leaf{end: true}
)

type (
	NodeType int

	traverseAction int

	// leaf has no children. Only emptyLeaf and terminalLeaf exist, both are
	// shared and never modified.
	leaf struct {
		end bool
	}

	// chain has exactly one outgoing edge.
	chain struct {
		end   bool
		label byte
		child Node
	}

	// branch has at least branchMin outgoing edges. It never shrinks.
	branch struct {
		end      bool
		children map[byte]Node
	}
)

// compile time check
var (
	_ Node = (*leaf)(nil)
	_ Node = (*chain)(nil)
	_ Node = (*branch)(nil)
)

// newChain builds a chain labeled s[0] holding s[1:], and the empty string
// when end is set.
func newChain(s string, end bool) (*chain, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: chain needs a first letter", ErrInvalidArgument)
	}
	if !isLetter(s[0]) {
		return nil, badLetter(s, 0)
	}
	child, err := emptyLeaf.Insert(s[1:])
	if err != nil {
		return nil, err
	}
	return &chain{
		end:   end,
		label: s[0],
		child: child,
	}, nil
}

// newBranch builds the branch replacing a chain (end, label, child) that
// has to take s as well. s must start with a letter other than label.
func newBranch(s string, end bool, label byte, child Node) (*branch, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: branch needs a first letter", ErrInvalidArgument)
	}
	if !isLetter(s[0]) {
		return nil, badLetter(s, 0)
	}
	if s[0] == label {
		return nil, fmt.Errorf("%w: %q already leaves on edge %q", ErrInvalidArgument, s, label)
	}
	fresh, err := emptyLeaf.Insert(s[1:])
	if err != nil {
		return nil, err
	}
	return &branch{
		end: end,
		children: map[byte]Node{
			label: child,
			s[0]:  fresh,
		},
	}, nil
}

func (t NodeType) String() string {
	return []string{"Leaf", "Chain", "Branch"}[t]
}

func isLetter(c byte) bool {
	return c >= firstLetter && c <= lastLetter
}

func badLetter(s string, pos int) error {
	return fmt.Errorf("%w: %q has %q at %d, want a-z", ErrInvalidArgument, s, s[pos], pos)
}

// validate reports the first byte of s outside the alphabet.
func validate(s string) error {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return badLetter(s, i)
		}
	}
	return nil
}
