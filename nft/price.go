package nft

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// PriceIncrement is what every earlier mint, in any series, adds to the
// price of the next one.
var PriceIncrement = decimal.New(1, -1)

// Price is the linear bonding curve over global issuance. The very first mint
// of the whole ledger is free.
func Price(issued uint64) decimal.Decimal {
	n := decimal.NewFromBigInt(new(big.Int).SetUint64(issued), 0)
	return n.Mul(PriceIncrement)
}
