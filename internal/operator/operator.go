// Package operator serializes ledger writes through a single queue.
// Entries created in quick succession must land in submission order
// so the createdAt tie-break stays meaningful, so there is exactly
// one writer draining the queue.
package operator

import (
	"context"

	"github.com/gestor-oficina/ledger-server/internal/operator/actions"
	"github.com/gestor-oficina/ledger-server/internal/storage"
)

// Operator is the worker draining the write queue. Each action runs in
// its own transaction; a failed action rolls back and reports without
// stalling the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
}

func NewOperator(s *storage.Storage, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run drains the queue until it is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = item.action.Perform(item.ctx, writer); err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
