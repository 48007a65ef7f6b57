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
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/google/bst"
	"github.com/google/bst/zapobserver"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a tree from integers, apply edits and print it",
	ArgsUsage: `<value>...`,
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "insert",
			Aliases: []string{"i"},
			Usage:   "value to insert after building (repeatable)",
		},
		&cli.IntSliceFlag{
			Name:    "delete",
			Aliases: []string{"d"},
			Usage:   "value to delete after inserting (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "rebalance",
			Usage: "rebuild the tree balanced after the edits",
		},
		&cli.StringFlag{
			Name:  "order",
			Usage: "traversal to print: level, pre, in or post",
			Value: "in",
		},
	},
	Action: runBuild,
}

func runBuild(cctx *cli.Context) error {
	format := cctx.String("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	values, err := parseValues(cctx.Args().Slice())
	if err != nil {
		return err
	}
	log, err := configLogger(cctx)
	if err != nil {
		return err
	}
	defer log.Sync()

	tr := bst.New(values, bst.WithObserver(zapobserver.New[int](log)))
	traverse, err := traversal(tr, cctx.String("order"))
	if err != nil {
		return err
	}
	for _, v := range cctx.IntSlice("insert") {
		tr.Insert(v)
	}
	for _, v := range cctx.IntSlice("delete") {
		tr.Delete(v)
	}
	if cctx.Bool("rebalance") {
		tr.Rebalance()
	}

	w := cctx.App.Writer
	if err := render(w, tr, format); err != nil {
		return err
	}
	var order []string
	if err := traverse(func(n *bst.Node[int]) {
		order = append(order, strconv.Itoa(n.Value()))
	}); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s order: %s\n", cctx.String("order"), strings.Join(order, " "))
	fmt.Fprintf(w, "len: %d\n", tr.Len())
	fmt.Fprintf(w, "height: %d\n", tr.Height(tr.Root()))
	fmt.Fprintf(w, "balanced: %v\n", tr.IsBalanced())
	return nil
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// traversal returns the tree method walking tr in the named order.
func traversal(tr *bst.Tree[int], order string) (func(bst.VisitFunc[int]) error, error) {
	switch order {
	case "level":
		return tr.LevelOrder, nil
	case "pre":
		return tr.PreOrder, nil
	case "in":
		return tr.InOrder, nil
	case "post":
		return tr.PostOrder, nil
	}
	return nil, fmt.Errorf("unknown order %q", order)
}
