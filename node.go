// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trie

// node - a single trie vertex. It owns one child slot per alphabet
// ordinal and, when it terminates a stored key, the value for that key.
// The parent pointer is a back-reference only; ownership always flows
// root-down, so a node is reachable exactly when its parent's slot for
// its key points at it.
type node[A Alphabet, V any] struct {
	children []*node[A, V]
	parent   *node[A, V]
	value    *V
	key      byte
}

func newNode[A Alphabet, V any](parent *node[A, V], key byte) *node[A, V] {
	var alphabet A
	return &node[A, V]{
		children: make([]*node[A, V], alphabet.Size()),
		parent:   parent,
		key:      key,
	}
}

// Returns the child reached over the edge labeled c, or nil when the slot
// is empty. Characters outside the alphabet are rejected.
func (n *node[A, V]) child(c byte) (*node[A, V], error) {
	var alphabet A
	ord := alphabet.Ord(c)
	if ord < 0 {
		return nil, ErrNotInAlphabet
	}
	return n.children[ord], nil
}

// createChild links a new empty node into the slot for key and returns it.
// An occupied slot is overwritten, dropping its old subtree; callers check
// child first. The key must be a member of the alphabet.
func (n *node[A, V]) createChild(key byte) *node[A, V] {
	var alphabet A
	child := newNode[A, V](n, key)
	n.children[alphabet.Ord(key)] = child
	return child
}

// removeChild detaches the given node if one of the child slots holds it
// and reports whether it did. The detached subtree is no longer reachable.
func (n *node[A, V]) removeChild(ptr *node[A, V]) bool {
	for i, child := range n.children {
		if child != nil && child == ptr {
			n.children[i] = nil
			return true
		}
	}
	return false
}

func (n *node[A, V]) removeChildren() {
	for i := range n.children {
		n.children[i] = nil
	}
}

func (n *node[A, V]) setValue(value V) {
	n.value = &value
}

func (n *node[A, V]) setZeroValue() {
	n.value = new(V)
}

func (n *node[A, V]) removeValue() {
	n.value = nil
}

func (n *node[A, V]) hasValue() bool {
	return n.value != nil
}

func (n *node[A, V]) hasChildren() bool {
	for _, child := range n.children {
		if child != nil {
			return true
		}
	}
	return false
}

func (n *node[A, V]) hasParent() bool {
	return n.parent != nil
}

// getPath walks key from this node and returns every node visited,
// starting with the node itself. A missing edge terminates the walk with
// a trailing nil entry and the rest of the key is left unread. The key
// must already be validated against the alphabet.
func (n *node[A, V]) getPath(key string) []*node[A, V] {
	var alphabet A
	path := make([]*node[A, V], 0, len(key)+1)
	path = append(path, n)

	current := n
	for i := 0; i < len(key); i++ {
		current = current.children[alphabet.Ord(key[i])]
		path = append(path, current)
		if current == nil {
			break
		}
	}
	return path
}
