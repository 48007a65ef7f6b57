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

	"github.com/urfave/cli/v2"

	"github.com/google/bst"
	"github.com/google/bst/zapobserver"
)

var demoValues = []int{1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324}

var cmdDemo = &cli.Command{
	Name:   "demo",
	Usage:  "walk through building, mutating and rebalancing a sample tree",
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	format := cctx.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	log, err := configLogger(cctx)
	if err != nil {
		return err
	}
	defer log.Sync()

	w := cctx.App.Writer
	tr := bst.New(demoValues, bst.WithObserver(zapobserver.New[int](log)))
	fmt.Fprintf(w, "built from %v\n", demoValues)
	fmt.Fprintf(w, "is balanced: %v\n", tr.IsBalanced())

	big := tr.Insert(8694)
	six := tr.Insert(6)
	tr.Insert(4)
	if err := render(w, tr, format); err != nil {
		return err
	}

	tr.Delete(6)
	tr.Delete(8)
	fmt.Fprintf(w, "is 4 in tree: %v\n", tr.Find(4))
	fmt.Fprintf(w, "is 8 in tree: %v\n", tr.Find(8))
	fmt.Fprintf(w, "height of root: %d\n", tr.Height(tr.Root()))
	fmt.Fprintf(w, "depth of root: %d\n", tr.Depth(tr.Root()))
	fmt.Fprintf(w, "depth of 8694: %d\n", tr.Depth(big))
	fmt.Fprintf(w, "depth of 6: %d\n", tr.Depth(six))
	fmt.Fprintf(w, "depth of foreign 0: %d\n", tr.Depth(bst.New([]int{0}).Root()))
	if err := render(w, tr, format); err != nil {
		return err
	}
	fmt.Fprintf(w, "is balanced: %v\n", tr.IsBalanced())

	tr.Rebalance()
	if err := render(w, tr, format); err != nil {
		return err
	}
	fmt.Fprintf(w, "is balanced: %v\n", tr.IsBalanced())
	return nil
}
