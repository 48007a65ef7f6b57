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

// Op identifies what happened to a tree in an Event.
type Op int

const (
	OpInsertRoot  Op = iota // value became the root of an empty tree
	OpInsertLeft            // value inserted as the left child of Parent
	OpInsertRight           // value inserted as the right child of Parent
	OpDuplicate             // value was already present, nothing inserted
	OpDelete                // value removed
	OpDeleteMiss            // value was not present, nothing removed
	OpRebalance             // tree rebuilt from Values
	OpEmpty                 // level-order traversal of an empty tree
)

var opNames = [...]string{
	OpInsertRoot:  "insert_root",
	OpInsertLeft:  "insert_left",
	OpInsertRight: "insert_right",
	OpDuplicate:   "duplicate",
	OpDelete:      "delete",
	OpDeleteMiss:  "delete_miss",
	OpRebalance:   "rebalance",
	OpEmpty:       "empty",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// Event describes a change to, or notable outcome on, a tree.  It is
// delivered to the observer registered with WithObserver.
type Event[T any] struct {
	Op    Op
	Value T
	// Parent is the value of the node the new leaf was attached to.  It is
	// only set, and HasParent true, for OpInsertLeft and OpInsertRight.
	Parent    T
	HasParent bool
	// Values holds the in-order contents the tree was rebuilt from, for
	// OpRebalance.
	Values []T
}
