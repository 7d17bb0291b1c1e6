package operator

import (
	"context"

	"github.com/carson-networks/budget-forecast/internal/operator/actions"
	"github.com/carson-networks/budget-forecast/internal/storage"
)

// WriteStore opens a transactional Writer. *storage.Storage satisfies it.
type WriteStore interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage WriteStore
	queue   chan ActionItem
}

func NewOperator(s WriteStore, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback(context.WithoutCancel(item.ctx))
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(item.ctx); err != nil {
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
