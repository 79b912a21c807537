package nft

import (
	"fmt"

	"github.com/MixinNetwork/mixin/logger"
)

// SetMetadata points a series at its metadata, creating the series on first
// use. Only the metadata setter may call it; the minted count is untouched.
func (l *Ledger) SetMetadata(caller string, seriesId uint64, pointer string) error {
	if !l.roles.canSetMetadata(caller) {
		return fmt.Errorf("%w: %s is not the metadata setter", ErrUnauthorized, caller)
	}
	if !validSeries(seriesId) {
		return fmt.Errorf("%w %d", ErrInvalidSeries, seriesId)
	}

	l.Lock()
	defer l.Unlock()

	s := &Series{Id: seriesId, Pointer: pointer}
	if old := l.series[seriesId]; old != nil {
		s.Minted = old.Minted
	}
	err := l.store.WriteSeries(s)
	if err != nil {
		return err
	}
	l.series[seriesId] = s
	logger.Verbosef("Ledger.SetMetadata(%d, %s)\n", seriesId, pointer)
	return nil
}

// ResolvePointer returns the pointer of the series the item id encodes, or an
// empty string when that series has none. The item need not be minted yet.
func (l *Ledger) ResolvePointer(itemId uint64) string {
	l.RLock()
	defer l.RUnlock()

	s := l.series[SeriesOf(itemId)]
	if s == nil {
		return ""
	}
	return s.Pointer
}

func (l *Ledger) TokenURI(itemId uint64) string {
	return l.ResolvePointer(itemId)
}

func (l *Ledger) IsSet(seriesId uint64) bool {
	l.RLock()
	defer l.RUnlock()

	return l.series[seriesId].IsSet()
}
