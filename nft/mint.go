package nft

import (
	"fmt"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/MixinNetwork/mmp/payout"
	"github.com/shopspring/decimal"
)

// Mint issues the next item of the series to the caller and returns its id.
// The whole payment is forwarded to the fee recipient, overpayment included.
func (l *Ledger) Mint(caller string, seriesId uint64, payment decimal.Decimal) (uint64, error) {
	err := ValidateIdentity(caller)
	if err != nil {
		return 0, err
	}
	if payment.Sign() > 0 && !payout.ValidAmount(payment) {
		return 0, fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidPayment, payment, payout.AmountPrecision)
	}

	l.Lock()
	defer l.Unlock()

	s := l.series[seriesId]
	if !s.IsSet() {
		return 0, fmt.Errorf("%w for series %d", ErrMetadataNotSet, seriesId)
	}
	if s.Exhausted() {
		return 0, fmt.Errorf("%w: series %d reached %d mints", ErrSeriesExhausted, seriesId, SeriesCap)
	}
	price := Price(l.issued)
	if payment.Cmp(price) < 0 {
		return 0, fmt.Errorf("%w: sent %s, price %s", ErrInsufficientPayment, payment, price)
	}

	now := l.clock.Next()
	seq := s.Minted + 1
	m := &Mint{
		Series: &Series{Id: s.Id, Pointer: s.Pointer, Minted: seq},
		Item: &Item{
			Id:        ItemId(seriesId, seq),
			Series:    seriesId,
			Sequence:  seq,
			Owner:     caller,
			Price:     price.String(),
			Paid:      payment.String(),
			CreatedAt: now,
		},
		Issuance: l.issued + 1,
	}
	if payment.Sign() > 0 {
		m.Fee = payout.NewFeeTransaction(m.Item.Id, l.asset, l.roles.FeeRecipient, payment, now)
	}

	err = l.store.WriteMint(m)
	if err != nil {
		return 0, err
	}
	l.series[seriesId] = m.Series
	l.issued = m.Issuance
	l.clock.Advance(now)

	if excess := payment.Sub(price); excess.Sign() > 0 {
		logger.Printf("Ledger.Mint(%d) overpaid %s by %s, not refunded\n", m.Item.Id, price, excess)
	}
	logger.Verbosef("Ledger.Mint(%s, %d) => %d price %s\n", caller, seriesId, m.Item.Id, price)
	return m.Item.Id, nil
}

// Transfer moves an item from its current owner, who must be the caller.
func (l *Ledger) Transfer(caller, to string, itemId uint64) error {
	err := ValidateIdentity(to)
	if err != nil {
		return err
	}

	l.Lock()
	defer l.Unlock()

	owner, err := l.store.OwnerOf(itemId)
	if err != nil {
		return err
	}
	if owner != caller {
		return fmt.Errorf("%w: %s does not own %d", ErrNotOwner, caller, itemId)
	}
	err = l.store.TransferItem(itemId, caller, to)
	if err != nil {
		return err
	}
	logger.Verbosef("Ledger.Transfer(%d, %s, %s)\n", itemId, caller, to)
	return nil
}
