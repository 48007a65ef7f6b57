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

package bst

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the class of errors returned for bad arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNilVisitor is returned by the traversals when no visitor is given.
	ErrNilVisitor = fmt.Errorf("%w: nil visitor", ErrInvalidArgument)
)

// VisitFunc is called once for every node of a traversal.
type VisitFunc[T any] func(n *Node[T])

// LevelOrder calls visit for every node breadth first: the root, then each
// level from left to right.  On an empty tree visit is never called and an
// OpEmpty event is emitted.
func (t *Tree[T]) LevelOrder(visit VisitFunc[T]) error {
	if visit == nil {
		return ErrNilVisitor
	}
	if t.root == nil {
		t.emit(Event[T]{Op: OpEmpty})
		return nil
	}
	queue := []*Node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		visit(n)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
	return nil
}

// InOrder calls visit for every node in left, node, right order, that is in
// ascending order of values.
func (t *Tree[T]) InOrder(visit VisitFunc[T]) error {
	if visit == nil {
		return ErrNilVisitor
	}
	inOrder(t.root, visit)
	return nil
}

// PreOrder calls visit for every node in node, left, right order.
func (t *Tree[T]) PreOrder(visit VisitFunc[T]) error {
	if visit == nil {
		return ErrNilVisitor
	}
	preOrder(t.root, visit)
	return nil
}

// PostOrder calls visit for every node in left, right, node order.
func (t *Tree[T]) PostOrder(visit VisitFunc[T]) error {
	if visit == nil {
		return ErrNilVisitor
	}
	postOrder(t.root, visit)
	return nil
}

func inOrder[T any](n *Node[T], visit VisitFunc[T]) {
	if n == nil {
		return
	}
	inOrder(n.left, visit)
	visit(n)
	inOrder(n.right, visit)
}

func preOrder[T any](n *Node[T], visit VisitFunc[T]) {
	if n == nil {
		return
	}
	visit(n)
	preOrder(n.left, visit)
	preOrder(n.right, visit)
}

func postOrder[T any](n *Node[T], visit VisitFunc[T]) {
	if n == nil {
		return
	}
	postOrder(n.left, visit)
	postOrder(n.right, visit)
	visit(n)
}
