/*
Package tree implements concrete derivation trees for LL(1) parses.

Every inner node is labeled with the grammar variable it derives; leaves are
either terminal nodes, carrying the token they have matched, or epsilon
nodes, recording the application of an ε-rule. Children are kept in
left-to-right order, thus reading the terminal leaves of a tree from left to
right reproduces the parsed token sequence.

Nodes own their children. The parent link of a node serves navigation only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/jsub"
	"github.com/npillmayer/jsub/ll"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'jsub.tree'.
func tracer() tracing.Trace {
	return tracing.Select("jsub.tree")
}

// --- Nodes -----------------------------------------------------------------

// Node is a node of a derivation tree. Its label is either a grammar
// variable, ll.Epsilon, or ll.TerminalLabel.
type Node struct {
	label    ll.Variable
	token    jsub.Token
	children []*Node
	parent   *Node
}

// NewNode creates an inner node for a grammar variable, or an epsilon leaf
// for ll.Epsilon.
func NewNode(v ll.Variable) *Node {
	return &Node{label: v}
}

// NewTerminal creates a leaf for a terminal. The token may be a placeholder,
// carrying only the terminal kind, and bound to an input token later.
func NewTerminal(tok jsub.Token) *Node {
	return &Node{label: ll.TerminalLabel, token: tok}
}

// Label returns the label of a node.
func (n *Node) Label() ll.Variable {
	return n.label
}

func (n *Node) IsTerminal() bool {
	return n.label == ll.TerminalLabel
}

func (n *Node) IsEpsilon() bool {
	return n.label == ll.Epsilon
}

// Token returns the token of a terminal node. For other nodes it returns the
// zero token.
func (n *Node) Token() jsub.Token {
	return n.token
}

// Bind writes an input token into a terminal node.
func (n *Node) Bind(tok jsub.Token) {
	if !n.IsTerminal() {
		panic(fmt.Sprintf("tree: cannot bind token %v to non-terminal node", tok))
	}
	n.token = tok
}

// Children returns the children of a node, left to right.
// Clients must not modify the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the i-th child of a node, or nil.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends a child to the right of all existing children and
// returns it.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// --- Trees -----------------------------------------------------------------

// Tree is a derivation tree. Labels are named by the grammar the tree has
// been derived from.
type Tree struct {
	root *Node
	g    *ll.Grammar
}

// NewTree creates a tree for a root node.
func NewTree(root *Node, g *ll.Grammar) *Tree {
	return &Tree{root: root, g: g}
}

func (t *Tree) Root() *Node {
	return t.root
}

// Grammar returns the grammar the tree has been derived from.
func (t *Tree) Grammar() *ll.Grammar {
	return t.g
}

// LabelName returns a display name for the label of a node.
func (t *Tree) LabelName(n *Node) string {
	if n.IsTerminal() {
		return n.token.TokType().String()
	}
	return t.g.VarName(n.label)
}

// Leaves returns the tokens of all terminal nodes, left to right.
// Epsilon leaves are not included.
func (t *Tree) Leaves() []jsub.Token {
	var tokens []jsub.Token
	t.Walk(ListenerFuncs{
		OnTerminal: func(n *Node, level int) {
			tokens = append(tokens, n.token)
		},
	})
	return tokens
}

// Find returns all nodes with a given label, in pre-order.
func (t *Tree) Find(label ll.Variable) []*Node {
	var nodes []*Node
	collect := func(n *Node, level int) {
		if n.label == label {
			nodes = append(nodes, n)
		}
	}
	t.Walk(ListenerFuncs{OnEnter: collect, OnTerminal: collect})
	return nodes
}

// --- Walking a tree --------------------------------------------------------

// Listener is a type for walking a derivation tree. Enter and Exit are
// called for inner nodes and epsilon leaves, Terminal for terminal leaves.
type Listener interface {
	Enter(n *Node, level int)
	Exit(n *Node, level int)
	Terminal(n *Node, level int)
}

// ListenerFuncs is a Listener with optional callbacks.
type ListenerFuncs struct {
	OnEnter    func(n *Node, level int)
	OnExit     func(n *Node, level int)
	OnTerminal func(n *Node, level int)
}

func (l ListenerFuncs) Enter(n *Node, level int) {
	if l.OnEnter != nil {
		l.OnEnter(n, level)
	}
}

func (l ListenerFuncs) Exit(n *Node, level int) {
	if l.OnExit != nil {
		l.OnExit(n, level)
	}
}

func (l ListenerFuncs) Terminal(n *Node, level int) {
	if l.OnTerminal != nil {
		l.OnTerminal(n, level)
	}
}

// Walk walks a tree depth-first, left to right. The walk is iterative, thus
// deep trees cannot exhaust the goroutine stack.
func (t *Tree) Walk(listener Listener) {
	if t == nil || t.root == nil {
		return
	}
	type visit struct {
		n     *Node
		level int
		exit  bool
	}
	stack := []visit{{n: t.root}}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case v.exit:
			listener.Exit(v.n, v.level)
		case v.n.IsTerminal():
			listener.Terminal(v.n, v.level)
		default:
			listener.Enter(v.n, v.level)
			stack = append(stack, visit{n: v.n, level: v.level, exit: true})
			for i := len(v.n.children) - 1; i >= 0; i-- {
				stack = append(stack, visit{n: v.n.children[i], level: v.level + 1})
			}
		}
	}
}

// --- Output ----------------------------------------------------------------

// fingerprintEntry is a node of a tree flattened in pre-order.
type fingerprintEntry struct {
	Label  int
	Kind   int
	Lexeme string
	Level  int
}

// Fingerprint returns a hash of the structure of a tree, including labels
// and lexemes but not input positions. Structurally identical trees have
// identical fingerprints.
func (t *Tree) Fingerprint() (string, error) {
	var entries []fingerprintEntry
	add := func(n *Node, level int) {
		entries = append(entries, fingerprintEntry{
			Label:  int(n.label),
			Kind:   int(n.token.TokType()),
			Lexeme: n.token.Lexeme(),
			Level:  level,
		})
	}
	t.Walk(ListenerFuncs{OnEnter: add, OnTerminal: add})
	return structhash.Hash(entries, 1)
}

// String returns the tree as an s-expression.
func (t *Tree) String() string {
	var b strings.Builder
	t.Walk(ListenerFuncs{
		OnEnter: func(n *Node, level int) {
			if level > 0 {
				b.WriteByte(' ')
			}
			if n.IsEpsilon() {
				b.WriteString("ε")
				return
			}
			b.WriteString("(" + t.g.VarName(n.label))
		},
		OnExit: func(n *Node, level int) {
			if !n.IsEpsilon() {
				b.WriteByte(')')
			}
		},
		OnTerminal: func(n *Node, level int) {
			b.WriteByte(' ')
			b.WriteString(n.token.String())
		},
	})
	return b.String()
}

// Dump is a debugging helper, tracing a tree with indentation.
func (t *Tree) Dump() {
	indent := func(n *Node, level int) {
		tracer().Debugf("%s%s", strings.Repeat("  ", level), t.LabelName(n))
	}
	t.Walk(ListenerFuncs{
		OnEnter: indent,
		OnTerminal: func(n *Node, level int) {
			tracer().Debugf("%s%v", strings.Repeat("  ", level), n.token)
		},
	})
}
