package operator

import (
	"context"
	"sync"

	"github.com/gestor-oficina/ledger-server/internal/operator/actions"
	"github.com/gestor-oficina/ledger-server/internal/storage"
)

// OperatorDelegator owns the write queue and its single worker, and
// enqueues actions on behalf of callers.
type OperatorDelegator struct {
	storage  *storage.Storage
	queue    chan ActionItem
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewOperatorDelegator(s *storage.Storage) *OperatorDelegator {
	return &OperatorDelegator{
		storage: s,
		queue:   make(chan ActionItem, 1000),
	}
}

// Start launches the worker. Exactly one worker runs; write ordering
// depends on it.
func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	op := NewOperator(d.storage, d.queue)
	go func() {
		defer d.wg.Done()
		op.Run()
	}()
}

// Stop closes the queue and waits for the in-flight action to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		close(d.queue)
		d.wg.Wait()
	})
}

// Process enqueues the action and blocks until it has been applied or
// the context ends.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.queue <- item

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
