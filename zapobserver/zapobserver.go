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

// Package zapobserver logs bst tree events with zap.
//
//	log, _ := zap.NewDevelopment()
//	tr := bst.New(values, bst.WithObserver(zapobserver.New[int](log)))
package zapobserver

import (
	"go.uber.org/zap"

	"github.com/google/bst"
)

// New returns an observer for bst.WithObserver writing one log entry per
// event to log.  Rebalances log at info level, everything else at debug.
// A nil log discards all events.
func New[T any](log *zap.Logger) func(bst.Event[T]) {
	if log == nil {
		log = zap.NewNop()
	}
	return func(e bst.Event[T]) {
		op := zap.Stringer("op", e.Op)
		switch e.Op {
		case bst.OpInsertRoot:
			log.Debug("inserted at root", op, zap.Any("value", e.Value))
		case bst.OpInsertLeft:
			log.Debug("inserted to the left", op, zap.Any("value", e.Value), zap.Any("parent", e.Parent))
		case bst.OpInsertRight:
			log.Debug("inserted to the right", op, zap.Any("value", e.Value), zap.Any("parent", e.Parent))
		case bst.OpDuplicate:
			log.Debug("value already exists", op, zap.Any("value", e.Value))
		case bst.OpDelete:
			log.Debug("deleted", op, zap.Any("value", e.Value))
		case bst.OpDeleteMiss:
			log.Debug("value not found", op, zap.Any("value", e.Value))
		case bst.OpRebalance:
			log.Info("tree rebalanced", op, zap.Int("size", len(e.Values)), zap.Any("values", e.Values))
		case bst.OpEmpty:
			log.Debug("tree is empty", op)
		default:
			log.Warn("unknown tree event", op)
		}
	}
}
