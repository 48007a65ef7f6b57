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
	"fmt"
	"io"
	"strings"
)

// Fprint writes an ASCII diagram of the subtree rooted at n to w, one node
// per line, lying on its side: right subtrees above their parent, left
// subtrees below.  Nothing is written for a nil node.
func Fprint[T any](w io.Writer, n *Node[T]) error {
	return fprint(w, n, "", true)
}

func fprint[T any](w io.Writer, n *Node[T], prefix string, isLeft bool) error {
	if n == nil {
		return nil
	}
	if n.right != nil {
		if err := fprint(w, n.right, prefix+pick(isLeft, "│   ", "    "), false); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%s%s%v\n", prefix, pick(isLeft, "└── ", "┌── "), n.value); err != nil {
		return err
	}
	if n.left != nil {
		return fprint(w, n.left, prefix+pick(isLeft, "    ", "│   "), true)
	}
	return nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// String returns the diagram Fprint draws for the whole tree.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, t.root)
	return sb.String()
}
