// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trie

import (
	"bytes"
	"fmt"
	"io"
)

// Trie - a prefix tree over the alphabet policy A storing values of type
// V. The zero Trie is not usable; construct with New. Not safe for
// concurrent use: callers sharing a tree across goroutines must serialize
// access themselves.
type Trie[A Alphabet, V any] struct {
	root *node[A, V]
	size int
}

// Search returns a pointer to the value stored at key, or nil when the
// key holds no value. The pointer aliases the stored value, so callers
// may mutate it in place.
func (t *Trie[A, V]) Search(key string) (*V, error) {
	if err := t.validKey(key); err != nil {
		return nil, err
	}

	path := t.root.getPath(key)
	last := path[len(path)-1]
	if last == nil {
		return nil, nil
	}
	return last.value, nil
}

// At returns a pointer to the value stored at key, or ErrKeyNotFound when
// the path is incomplete or its terminal node holds no value.
func (t *Trie[A, V]) At(key string) (*V, error) {
	if err := t.validKey(key); err != nil {
		return nil, err
	}

	path := t.root.getPath(key)
	last := path[len(path)-1]
	if last == nil || !last.hasValue() {
		return nil, ErrKeyNotFound
	}
	return last.value, nil
}

// Insert stores value at key and reports true, creating any missing nodes
// along the path. A key that already holds a value is left unchanged and
// the call reports false; Insert never overwrites.
func (t *Trie[A, V]) Insert(key string, value V) (bool, error) {
	if err := t.validKey(key); err != nil {
		return false, err
	}

	current := t.root
	for i := 0; i < len(key); i++ {
		next, _ := current.child(key[i]) // key is already validated
		if next == nil {
			next = current.createChild(key[i])
		}
		current = next
	}

	if current.hasValue() {
		return false, nil
	}
	current.setValue(value)
	t.size++
	return true, nil
}

// Remove clears the value stored at key, then prunes upward: every
// ancestor left with no value and no children is detached, stopping at
// the first node that still carries either, or at the root. Removing an
// absent key is a no-op.
func (t *Trie[A, V]) Remove(key string) error {
	if err := t.validKey(key); err != nil {
		return err
	}

	path := t.root.getPath(key)
	last := path[len(path)-1]
	if last == nil {
		return nil
	}

	if last.hasValue() {
		last.removeValue()
		t.size--
	}

	for i := len(path) - 1; i >= 0; i-- {
		current := path[i]
		if current.hasValue() || current.hasChildren() || !current.hasParent() {
			break
		}
		current.parent.removeChild(current)
	}
	return nil
}

// GetOrInsert returns a pointer to the value stored at key, first
// inserting the zero value when the key is absent.
func (t *Trie[A, V]) GetOrInsert(key string) (*V, error) {
	if err := t.validKey(key); err != nil {
		return nil, err
	}

	current := t.root
	for i := 0; i < len(key); i++ {
		next, _ := current.child(key[i]) // key is already validated
		if next == nil {
			next = current.createChild(key[i])
		}
		current = next
	}

	if !current.hasValue() {
		current.setZeroValue()
		t.size++
	}
	return current.value, nil
}

// Items collects every stored key/value pair in a pre-order walk over the
// ordinal-indexed child slots. The order is deterministic; it is
// lexicographic only when the policy assigns ordinals in lexicographic
// rank, as the stock policies do. A value stored at the root is reported
// under the empty key.
func (t *Trie[A, V]) Items() []Item[V] {
	items := make([]Item[V], 0, t.size)
	t.getItems(t.root, &items, nil)
	return items
}

// Recursive helper for Items. The key buffer is passed by value; every
// pair is captured with a string copy before any sibling reuses the
// buffer, so aliasing through append is safe. Recursion depth is bounded
// by the longest stored key.
func (t *Trie[A, V]) getItems(n *node[A, V], items *[]Item[V], key []byte) {
	if n.hasParent() {
		key = append(key, n.key)
	}
	if n.hasValue() {
		*items = append(*items, Item[V]{Key: string(key), Value: *n.value})
	}

	for _, child := range n.children {
		if child != nil {
			t.getItems(child, items, key)
		}
	}
}

// Len returns the number of stored key/value pairs.
func (t *Trie[A, V]) Len() int {
	return t.size
}

// Empty reports whether the trie stores nothing at all.
func (t *Trie[A, V]) Empty() bool {
	return !t.root.hasValue() && !t.root.hasChildren()
}

// Clear drops every stored pair and every node below the root. The root
// itself persists, so the trie remains usable.
func (t *Trie[A, V]) Clear() {
	t.root.removeChildren()
	t.root.removeValue()
	t.size = 0
}

// Clone returns a deep structural copy: every node and every stored value
// is duplicated, nothing is shared with the receiver. The copy is fully
// built before it is returned, so replacing a trie through Clone swaps in
// complete state or none.
func (t *Trie[A, V]) Clone() *Trie[A, V] {
	other := New[A, V]()
	t.copyNode(other.root, t.root)
	other.size = t.size
	return other
}

func (t *Trie[A, V]) copyNode(dst, src *node[A, V]) {
	if src.hasValue() {
		dst.setValue(*src.value)
	}
	for _, child := range src.children {
		if child != nil {
			t.copyNode(dst.createChild(child.key), child)
		}
	}
}

// Draw writes the tree as a Graphviz digraph: one statement per node
// labeled with its value (empty when none), one statement per child link
// labeled with the edge character. Node ids are assigned in pre-order.
// The output is buffered and written once, so a writer error never
// surfaces a partial graph body.
func (t *Trie[A, V]) Draw(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("digraph {\n")
	id := 0
	t.draw(&buf, t.root, &id)
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func (t *Trie[A, V]) draw(buf *bytes.Buffer, n *node[A, V], id *int) {
	nodeID := *id
	label := ""
	if n.hasValue() {
		label = fmt.Sprintf("%v", *n.value)
	}
	fmt.Fprintf(buf, "\"%d\" [label=%q]\n", nodeID, label)

	for _, child := range n.children {
		if child != nil {
			*id++
			fmt.Fprintf(buf, "\"%d\" -> \"%d\" [label=%q]\n", nodeID, *id, string(child.key))
			t.draw(buf, child, id)
		}
	}
}

// validKey checks every character of key against the alphabet before any
// operation touches the tree, so a violation never leaves a partial
// mutation behind.
func (t *Trie[A, V]) validKey(key string) error {
	var alphabet A
	for i := 0; i < len(key); i++ {
		if alphabet.Ord(key[i]) < 0 {
			return ErrNotInAlphabet
		}
	}
	return nil
}
