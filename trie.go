// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Package trie implements an associative container mapping strings over a
// fixed, finite alphabet to values, stored as a prefix tree. The container
// is generic over the alphabet policy and the value type; every child
// lookup is a single slot access indexed by the policy's ordinal.
package trie

import "errors"

// Alphabet - the character policy a Trie is instantiated over. Ord maps a
// character to its dense ordinal in [0, Size()), or -1 for characters
// outside the alphabet. Distinct characters map to distinct ordinals.
// Policies must be stateless; they are carried in the type parameter, not
// in the tree.
type Alphabet interface {
	Ord(c byte) int
	Size() int
}

// Item - a single stored key/value pair, as produced by Items.
type Item[V any] struct {
	Key   string
	Value V
}

var (
	// ErrNotInAlphabet is returned when a key contains a character the
	// alphabet policy does not declare. The call leaves the tree untouched.
	ErrNotInAlphabet = errors.New("character is not member of alphabet")

	// ErrKeyNotFound is returned by At for keys with no stored value.
	ErrKeyNotFound = errors.New("key not found")
)

// Lowercase - stock policy over 'a'..'z'. Ordinals follow lexicographic
// rank, so enumeration order is lexicographic under this policy.
type Lowercase struct{}

// Ord returns the ordinal of c under the policy, or -1.
func (Lowercase) Ord(c byte) int {
	if c < 'a' || c > 'z' {
		return -1
	}
	return int(c - 'a')
}

// Size returns the alphabet cardinality.
func (Lowercase) Size() int { return 26 }

// Alphanumeric - stock policy over 'a'..'z' followed by '0'..'9'.
type Alphanumeric struct{}

// Ord returns the ordinal of c under the policy, or -1.
func (Alphanumeric) Ord(c byte) int {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c - 'a')
	case c >= '0' && c <= '9':
		return 26 + int(c-'0')
	}
	return -1
}

// Size returns the alphabet cardinality.
func (Alphanumeric) Size() int { return 36 }

// New - creates an empty trie over the alphabet policy A, storing values
// of type V.
func New[A Alphabet, V any]() *Trie[A, V] {
	return &Trie[A, V]{root: newNode[A, V](nil, 0)}
}
