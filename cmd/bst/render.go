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

package main

import (
	"fmt"
	"io"

	"github.com/xlab/treeprint"

	"github.com/google/bst"
)

const (
	formatASCII     = "ascii"
	formatTreeprint = "treeprint"
)

func checkFormat(format string) error {
	switch format {
	case formatASCII, formatTreeprint:
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// render writes a diagram of tr to w in the given format.
func render(w io.Writer, tr *bst.Tree[int], format string) error {
	root := tr.Root()
	if root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	switch format {
	case formatASCII:
		return bst.Fprint(w, root)
	case formatTreeprint:
		tp := treeprint.NewWithRoot(root.Value())
		addChildren(tp, root)
		_, err := io.WriteString(w, tp.String())
		return err
	}
	return checkFormat(format)
}

// addChildren mirrors the subtree below n into branch, tagging each child
// with the side it hangs from.
func addChildren(branch treeprint.Tree, n *bst.Node[int]) {
	if l := n.Left(); l != nil {
		addChildren(branch.AddMetaBranch("L", l.Value()), l)
	}
	if r := n.Right(); r != nil {
		addChildren(branch.AddMetaBranch("R", r.Value()), r)
	}
}
