package operator

import (
	"context"
	"sync"

	"github.com/carson-networks/budget-forecast/internal/operator/actions"
)

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    WriteStore
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

func NewOperatorDelegator(s WriteStore, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, 1000),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for in-flight actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues the action and blocks until a worker has committed or
// rolled it back, or until ctx is done.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	select {
	case d.queue <- item:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
