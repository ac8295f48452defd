package tree

import (
	"strings"

	"github.com/mbreuer/gramcheck"
	"github.com/mbreuer/gramcheck/grammar"
)

// Node is a node of an n-ary syntax tree over the original grammar symbols.
// Leaves carry the token they cover and are labelled with its POS tag; inner
// nodes are labelled with a nonterminal. Head, where not grammar.NoHead, is
// the index of the head child as annotated in the grammar.
type Node struct {
	Label    string
	Span     gramcheck.Span
	Token    *gramcheck.Token // leaves only
	Head     int
	Children []*Node
}

// IsLeaf reports whether n covers a single token.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// HeadChild returns the annotated head child, or nil if the node is a leaf
// or carries no head annotation.
func (n *Node) HeadChild() *Node {
	if n.Head == grammar.NoHead || n.Head >= len(n.Children) {
		return nil
	}
	return n.Children[n.Head]
}

// Bracket renders the tree in labelled bracket notation, e.g.
//
//	(S (NP (PRP I)) (VP (VBP run)))
//
// Leaves render as (tag surface).
func (n *Node) Bracket() string {
	var sb strings.Builder
	n.bracket(&sb)
	return sb.String()
}

func (n *Node) bracket(sb *strings.Builder) {
	sb.WriteString("(")
	sb.WriteString(n.Label)
	if n.IsLeaf() {
		sb.WriteString(" ")
		sb.WriteString(n.Token.Surface)
	} else {
		for _, c := range n.Children {
			sb.WriteString(" ")
			c.bracket(sb)
		}
	}
	sb.WriteString(")")
}

func (n *Node) String() string {
	return n.Bracket()
}

// Walk traverses the tree depth-first, parents before children, calling f on
// every node. Traversal stops early when f returns false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(f) {
			return false
		}
	}
	return true
}

// Leaves returns the leaf nodes left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node) bool {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
		return true
	})
	return leaves
}
