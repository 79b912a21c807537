package payout

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/shopspring/decimal"
)

const (
	TransactionStateInitial  = 10
	TransactionStateRejected = 11
	TransactionStateSnapshot = 13
)

// AmountPrecision is the number of decimals a Mixin asset amount may carry.
const AmountPrecision = 8

var MinimumAmount = decimal.New(1, -AmountPrecision)

// ErrRejected marks a transfer that can never succeed.
var ErrRejected = errors.New("transfer rejected")

type Transaction struct {
	TraceId   string
	State     int
	AssetId   string
	Receiver  string
	Amount    string
	Memo      string
	Snapshot  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFeeTransaction forwards the payment of a mint to the fee recipient. The
// trace id is derived from the item id so a retried transfer never pays twice.
func NewFeeTransaction(itemId uint64, assetId, receiver string, amount decimal.Decimal, ts time.Time) *Transaction {
	id := strconv.FormatUint(itemId, 10)
	return &Transaction{
		TraceId:   mixin.UniqueConversationID(id, "fee"),
		State:     TransactionStateInitial,
		AssetId:   assetId,
		Receiver:  receiver,
		Amount:    amount.String(),
		Memo:      "FEE#" + id,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// ValidAmount reports whether amount can be sent as a Mixin transfer.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.Cmp(MinimumAmount) >= 0 && amount.Equal(amount.Truncate(AmountPrecision))
}

func parseAmount(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(s)
	if err != nil || !ValidAmount(amt) {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %s", ErrRejected, s)
	}
	return amt, nil
}

func (tx *Transaction) StateName() string {
	switch tx.State {
	case TransactionStateInitial:
		return "initial"
	case TransactionStateRejected:
		return "rejected"
	case TransactionStateSnapshot:
		return "snapshot"
	}
	panic(tx.State)
}
