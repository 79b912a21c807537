package payout

import (
	"context"
	"errors"
	"time"

	"github.com/MixinNetwork/mixin/logger"
)

const workerBatchSize = 16

// Worker forwards collected mint payments to the fee recipient.
type Worker struct {
	store   Store
	sender  Sender
	assetId string
	batch   int
	period  time.Duration
}

func NewWorker(store Store, sender Sender, assetId string) *Worker {
	return &Worker{
		store:   store,
		sender:  sender,
		assetId: assetId,
		batch:   workerBatchSize,
		period:  3 * time.Second,
	}
}

func (w *Worker) Run(ctx context.Context) {
	for {
		n, err := w.Drain(ctx)
		if err != nil {
			logger.Printf("Worker.Drain() => %d %v\n", n, err)
		}
		if n == w.batch && err == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.period):
		}
	}
}

// Drain settles one batch of pending transactions and returns how many were
// sent or rejected. A transfer that can never succeed is marked rejected. Any
// other failure ends the round and moves that transaction behind the rest of
// the queue, so it is retried without blocking the ones after it.
func (w *Worker) Drain(ctx context.Context) (int, error) {
	txs, err := w.store.ListTransactions(TransactionStateInitial, w.batch)
	if err != nil {
		return 0, err
	}
	for i, tx := range txs {
		if ctx.Err() != nil {
			return i, ctx.Err()
		}
		asset := tx.AssetId
		if asset == "" {
			asset = w.assetId
		}
		snap, err := w.send(ctx, asset, tx)
		switch {
		case errors.Is(err, ErrRejected):
			logger.Printf("Worker.Drain(%s, %s, %s) rejected %v\n", tx.TraceId, tx.Receiver, tx.Amount, err)
			tx.State = TransactionStateRejected
		case err != nil:
			tx.UpdatedAt = time.Now()
			werr := w.store.WriteTransaction(tx)
			if werr != nil {
				return i, werr
			}
			return i, err
		default:
			tx.State = TransactionStateSnapshot
			tx.Snapshot = snap
			logger.Verbosef("Worker.Drain(%s, %s, %s) => %s\n", tx.TraceId, tx.Receiver, tx.Amount, snap)
		}
		tx.UpdatedAt = time.Now()
		err = w.store.WriteTransaction(tx)
		if err != nil {
			return i, err
		}
	}
	return len(txs), nil
}

func (w *Worker) send(ctx context.Context, assetId string, tx *Transaction) (string, error) {
	_, err := parseAmount(tx.Amount)
	if err != nil {
		return "", err
	}
	return w.sender.Transfer(ctx, assetId, tx)
}
