package nft

import (
	"sync"

	"github.com/MixinNetwork/mixin/logger"
	"github.com/shopspring/decimal"
)

// Ledger issues items into series. All mutations are serialized, and the in
// memory view is only advanced after the store has committed the change.
type Ledger struct {
	sync.RWMutex
	store  Store
	clock  *Clock
	roles  Roles
	asset  string
	series map[uint64]*Series
	issued uint64
}

func NewLedger(store Store, roles Roles) (*Ledger, error) {
	err := roles.validate()
	if err != nil {
		return nil, err
	}
	clock, err := NewClock(store)
	if err != nil {
		return nil, err
	}
	all, err := store.ListSeries()
	if err != nil {
		return nil, err
	}
	issued, err := store.ReadIssuance()
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		store:  store,
		clock:  clock,
		roles:  roles,
		series: make(map[uint64]*Series),
		issued: issued,
	}
	for _, s := range all {
		l.series[s.Id] = s
	}
	logger.Printf("NewLedger(%d series, %d issued)\n", len(all), issued)
	return l, nil
}

func (l *Ledger) Roles() Roles {
	return l.roles
}

// SetPaymentAsset records the asset mint payments are made in. Every fee
// queued afterwards carries it, so a later change of asset does not affect
// fees already pending.
func (l *Ledger) SetPaymentAsset(assetId string) {
	l.Lock()
	defer l.Unlock()

	l.asset = assetId
}

func (l *Ledger) TotalMinted() uint64 {
	l.RLock()
	defer l.RUnlock()

	return l.issued
}

// Price is what the next mint costs, whichever series it targets.
func (l *Ledger) Price() decimal.Decimal {
	l.RLock()
	defer l.RUnlock()

	return Price(l.issued)
}

// Series returns a copy of the series, or nil if it was never set.
func (l *Ledger) Series(seriesId uint64) *Series {
	l.RLock()
	defer l.RUnlock()

	s := l.series[seriesId]
	if s == nil {
		return nil
	}
	cs := *s
	return &cs
}

func (l *Ledger) BalanceOf(owner string) (uint64, error) {
	return l.store.BalanceOf(owner)
}

func (l *Ledger) OwnerOf(itemId uint64) (string, error) {
	return l.store.OwnerOf(itemId)
}

func (l *Ledger) Item(itemId uint64) (*Item, error) {
	return l.store.ReadItem(itemId)
}
