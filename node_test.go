// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A fresh node carries no value, no children and no parent slot wired up.
func TestNewNodeIsEmpty(t *testing.T) {
	n := newNode[Lowercase, int](nil, 0)

	assert.False(t, n.hasValue())
	assert.False(t, n.hasChildren())
	assert.False(t, n.hasParent())
	assert.Len(t, n.children, 26)
}

// A node should be able to store, report and drop its value.
func TestNodeValue(t *testing.T) {
	n := newNode[Lowercase, string](nil, 0)

	n.setValue("foo")
	if !n.hasValue() || *n.value != "foo" {
		t.Error("Unexpected value for node")
	}

	n.removeValue()
	assert.False(t, n.hasValue())

	n.setZeroValue()
	assert.True(t, n.hasValue())
	assert.Equal(t, "", *n.value)
}

// createChild must wire the child into the ordinal slot with its parent
// back-reference and edge character set.
func TestNodeCreateChildAndChild(t *testing.T) {
	n := newNode[Lowercase, int](nil, 0)

	child := n.createChild('c')
	assert.Equal(t, byte('c'), child.key)
	assert.Equal(t, n, child.parent)
	assert.True(t, child.hasParent())
	assert.True(t, n.hasChildren())

	found, err := n.child('c')
	assert.NoError(t, err)
	assert.Equal(t, child, found)

	missing, err := n.child('d')
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

// Looking up an edge for a character outside the alphabet is an error.
func TestNodeChildOutsideAlphabet(t *testing.T) {
	n := newNode[Lowercase, int](nil, 0)

	_, err := n.child('C')
	assert.ErrorIs(t, err, ErrNotInAlphabet)

	_, err = n.child('!')
	assert.ErrorIs(t, err, ErrNotInAlphabet)
}

// removeChild detaches only the node it is handed.
func TestNodeRemoveChild(t *testing.T) {
	n := newNode[Lowercase, int](nil, 0)
	a := n.createChild('a')
	b := n.createChild('b')

	assert.True(t, n.removeChild(a))
	assert.False(t, n.removeChild(a))

	child, _ := n.child('a')
	assert.Nil(t, child)
	child, _ = n.child('b')
	assert.Equal(t, b, child)

	n.removeChildren()
	assert.False(t, n.hasChildren())
}

// getPath returns every visited node and terminates with a trailing nil
// when an edge is missing, consuming no further characters.
func TestNodeGetPath(t *testing.T) {
	root := newNode[Lowercase, int](nil, 0)
	c := root.createChild('c')
	a := c.createChild('a')
	r := a.createChild('r')

	path := root.getPath("car")
	assert.Equal(t, []*node[Lowercase, int]{root, c, a, r}, path)

	path = root.getPath("cab")
	assert.Equal(t, 4, len(path))
	assert.Equal(t, a, path[2])
	assert.Nil(t, path[3])

	// A miss halfway through a longer key stops the walk right there.
	path = root.getPath("cobalt")
	assert.Equal(t, 3, len(path))
	assert.Equal(t, c, path[1])
	assert.Nil(t, path[2])

	path = root.getPath("")
	assert.Equal(t, []*node[Lowercase, int]{root}, path)
}
