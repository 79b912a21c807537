package payout

import "context"

type Store interface {
	WriteTransaction(tx *Transaction) error
	ReadTransaction(traceId string) (*Transaction, error)
	ListTransactions(state int, limit int) ([]*Transaction, error)
}

// Sender moves funds out and returns the snapshot id of the transfer.
type Sender interface {
	Transfer(ctx context.Context, assetId string, tx *Transaction) (string, error)
}
