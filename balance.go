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

// Height returns the number of edges on the longest path from n down to a
// leaf.  A nil node has height -1, so a leaf has height 0.
func (t *Tree[T]) Height(n *Node[T]) int {
	return n.Height()
}

// Height returns the height of the subtree rooted at n; see Tree.Height.  It
// may be called on a nil node.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

// Depth returns the number of edges from the root down to n, or -1.
//
// The node is looked up by descending from the root guided by n's value and
// comparing node identity at every step.  Depth therefore returns -1 not only
// for nil or foreign nodes but also for a handle whose value no longer leads
// to it: a node detached by Delete or Rebalance, or one holding an equal
// value that is not the node found by the search.
func (t *Tree[T]) Depth(n *Node[T]) int {
	if n == nil || t.root == nil {
		return -1
	}
	depth := 0
	for cur := t.root; cur != nil; depth++ {
		if cur == n {
			return depth
		}
		if t.less(n.value, cur.value) {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return -1
}

// unbalanced is the sentinel returned by balancedHeight once any subtree is
// found out of balance.
const unbalanced = -1

// IsBalanced reports whether, for every node, the heights of its two subtrees
// differ by at most one.
func (t *Tree[T]) IsBalanced() bool {
	return balancedHeight(t.root) != unbalanced
}

// balancedHeight returns the number of nodes on the longest path down from n,
// or unbalanced as soon as any subtree of n violates the height balance.
func balancedHeight[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	lh := balancedHeight(n.left)
	if lh == unbalanced {
		return unbalanced
	}
	rh := balancedHeight(n.right)
	if rh == unbalanced {
		return unbalanced
	}
	if lh-rh > 1 || rh-lh > 1 {
		return unbalanced
	}
	return 1 + max(lh, rh)
}

// Rebalance rebuilds the tree into a height-balanced shape holding the same
// values.  Every node of the previous structure is detached: handles obtained
// before the call no longer refer to the tree.
func (t *Tree[T]) Rebalance() {
	values := make([]T, 0, t.length)
	_ = t.InOrder(func(n *Node[T]) {
		values = append(values, n.value)
	})
	old := t.root
	t.reset(values)
	postOrder(old, func(n *Node[T]) { n.detach() })
	t.emit(Event[T]{Op: OpRebalance, Values: values})
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
