// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bst implements an in-memory binary search tree over a set of unique
// ordered values.
//
// The tree is built balanced from an input collection and then mutated with
// Insert and Delete.  Unlike AVL or red-black trees, mutations never rotate:
// balance degrades under adversarial insertion order and has to be checked
// with IsBalanced and restored with Rebalance, which rebuilds the whole tree
// from its sorted contents.
//
// Values are ordered by a LessFunc.  New uses the '<' operator for ordered
// types; NewFunc accepts any strict weak ordering.  If !less(a, b) &&
// !less(b, a), a and b are treated as equal and only one of them can be held
// in the tree.  Floating point NaN does not satisfy this and is unsupported.
//
// Insert and the traversals hand out *Node handles.  A handle is only valid
// while its node is attached to the tree: Delete detaches the node it
// unlinks, and Rebalance detaches every node of the structure it replaces.
// See Node.Attached.
//
// A Tree is not safe for concurrent use.  If multiple goroutines access a
// tree and at least one of them modifies it, access must be synchronized
// externally.
package bst

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// LessFunc determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// Less returns a default LessFunc that uses the '<' operator for types that
// support it.
func Less[T constraints.Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

// Node is a single vertex of a Tree.  Its children are exclusively owned by
// it; there is no link back to the parent.
type Node[T any] struct {
	value T
	left  *Node[T]
	right *Node[T]
	t     *Tree[T]
}

// Value returns the value held by n.
func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Attached reports whether n still belongs to a tree.  It returns false for a
// nil node, for a node unlinked by Delete, and for every node that was part
// of a tree before its last Rebalance.
func (n *Node[T]) Attached() bool {
	return n != nil && n.t != nil
}

// detach clears n so that it no longer refers to the tree or its children.
func (n *Node[T]) detach() {
	n.left, n.right, n.t = nil, nil, nil
}

// Tree is a binary search tree of unique values of type T.
//
// The zero value is not usable; create trees with New or NewFunc.
type Tree[T any] struct {
	root   *Node[T]
	length int
	less   LessFunc[T]
	obs    func(Event[T])
}

// Option configures a Tree at construction time.
type Option[T any] func(*Tree[T])

// WithObserver registers fn to receive an Event for every insert, delete,
// rebalance and empty level-order traversal.  Passing several observers
// chains them in order.
func WithObserver[T any](fn func(Event[T])) Option[T] {
	return func(t *Tree[T]) {
		if fn == nil {
			return
		}
		if prev := t.obs; prev != nil {
			t.obs = func(e Event[T]) {
				prev(e)
				fn(e)
			}
			return
		}
		t.obs = fn
	}
}

// New builds a balanced tree holding the distinct elements of values, ordered
// by the '<' operator.  values is not modified and may be empty.
func New[T constraints.Ordered](values []T, opts ...Option[T]) *Tree[T] {
	return NewFunc(values, Less[T](), opts...)
}

// NewFunc builds a balanced tree holding the distinct elements of values,
// ordered by less.
//
// The input is copied, sorted and deduplicated, then the tree is built by
// repeatedly taking the middle element of a range as the subtree root, so the
// result is height-balanced with the left side holding the smaller half on
// even splits.
func NewFunc[T any](values []T, less LessFunc[T], opts ...Option[T]) *Tree[T] {
	if less == nil {
		panic("nil less func")
	}
	t := &Tree[T]{less: less}
	for _, opt := range opts {
		opt(t)
	}
	t.reset(sortedSet(values, less))
	return t
}

// sortedSet returns a sorted copy of values with equal elements removed.
func sortedSet[T any](values []T, less LessFunc[T]) []T {
	s := slices.Clone(values)
	slices.SortFunc(s, less)
	return slices.CompactFunc(s, func(a, b T) bool {
		return !less(a, b) && !less(b, a)
	})
}

// reset replaces the contents of t with a balanced tree over sorted, which
// must be strictly ascending.
func (t *Tree[T]) reset(sorted []T) {
	t.root = t.build(sorted, 0, len(sorted)-1)
	t.length = len(sorted)
}

// build creates the balanced subtree for sorted[start:end+1].
func (t *Tree[T]) build(sorted []T, start, end int) *Node[T] {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	n := t.newNode(sorted[mid])
	n.left = t.build(sorted, start, mid-1)
	n.right = t.build(sorted, mid+1, end)
	return n
}

func (t *Tree[T]) newNode(value T) *Node[T] {
	return &Node[T]{value: value, t: t}
}

func (t *Tree[T]) emit(e Event[T]) {
	if t.obs != nil {
		t.obs(e)
	}
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of values currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Insert adds value to the tree as a new leaf and returns its node.  If an
// equal value is already present the tree is left untouched and Insert
// returns nil.
//
// Insert does not rebalance.
func (t *Tree[T]) Insert(value T) *Node[T] {
	if t.root == nil {
		t.root = t.newNode(value)
		t.length++
		t.emit(Event[T]{Op: OpInsertRoot, Value: value})
		return t.root
	}
	n := t.root
	for {
		switch {
		case t.less(value, n.value):
			if n.left == nil {
				n.left = t.newNode(value)
				t.length++
				t.emit(Event[T]{Op: OpInsertLeft, Value: value, Parent: n.value, HasParent: true})
				return n.left
			}
			n = n.left
		case t.less(n.value, value):
			if n.right == nil {
				n.right = t.newNode(value)
				t.length++
				t.emit(Event[T]{Op: OpInsertRight, Value: value, Parent: n.value, HasParent: true})
				return n.right
			}
			n = n.right
		default:
			t.emit(Event[T]{Op: OpDuplicate, Value: value})
			return nil
		}
	}
}

// Delete removes value from the tree.  Deleting a value that is not present
// is a no-op.
//
// A node with two children is not unlinked itself: it takes over the value of
// its in-order successor, whose node is unlinked instead.  Handles to the
// unlinked node become detached.
func (t *Tree[T]) Delete(value T) {
	var removed bool
	t.root, removed = t.remove(t.root, value)
	if !removed {
		t.emit(Event[T]{Op: OpDeleteMiss, Value: value})
		return
	}
	t.length--
	t.emit(Event[T]{Op: OpDelete, Value: value})
}

// remove deletes value from the subtree rooted at n and returns the new
// subtree root.
func (t *Tree[T]) remove(n *Node[T], value T) (_ *Node[T], removed bool) {
	if n == nil {
		return nil, false
	}
	switch {
	case t.less(value, n.value):
		n.left, removed = t.remove(n.left, value)
	case t.less(n.value, value):
		n.right, removed = t.remove(n.right, value)
	default:
		if n.left == nil {
			r := n.right
			n.detach()
			return r, true
		}
		if n.right == nil {
			l := n.left
			n.detach()
			return l, true
		}
		// The successor has no left child, so removing it below falls into
		// one of the cases above.
		n.value = n.right.first().value
		n.right, removed = t.remove(n.right, n.value)
	}
	return n, removed
}

// first returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) first() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Find reports whether value is in the tree.
func (t *Tree[T]) Find(value T) bool {
	n := t.root
	for n != nil {
		switch {
		case t.less(value, n.value):
			n = n.left
		case t.less(n.value, value):
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Values returns the values of the tree in ascending order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.length)
	inOrder(t.root, func(n *Node[T]) {
		out = append(out, n.value)
	})
	return out
}
