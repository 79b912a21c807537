package nft

import (
	"fmt"
	"sync"

	"github.com/MixinNetwork/mmp/payout"
)

const (
	ownerId  = "11111111-1111-4111-8111-111111111111"
	setterId = "22222222-2222-4222-8222-222222222222"
	feeId    = "33333333-3333-4333-8333-333333333333"
	aliceId  = "44444444-4444-4444-8444-444444444444"
	bobId    = "55555555-5555-4555-8555-555555555555"
)

var testRoles = Roles{Owner: ownerId, MetadataSetter: setterId, FeeRecipient: feeId}

// memoryStore keeps the ledger in maps so the engine can be tested without
// a database behind it.
type memoryStore struct {
	sync.Mutex
	props    map[string][]byte
	series   map[uint64]*Series
	items    map[uint64]*Item
	issued   uint64
	fees     []*payout.Transaction
	failMint error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		props:  make(map[string][]byte),
		series: make(map[uint64]*Series),
		items:  make(map[uint64]*Item),
	}
}

func (ms *memoryStore) WriteProperty(key, val []byte) error {
	ms.Lock()
	defer ms.Unlock()
	ms.props[string(key)] = append([]byte{}, val...)
	return nil
}

func (ms *memoryStore) ReadProperty(key []byte) ([]byte, error) {
	ms.Lock()
	defer ms.Unlock()
	return ms.props[string(key)], nil
}

func (ms *memoryStore) ListSeries() ([]*Series, error) {
	ms.Lock()
	defer ms.Unlock()
	var all []*Series
	for _, s := range ms.series {
		cs := *s
		all = append(all, &cs)
	}
	return all, nil
}

func (ms *memoryStore) WriteSeries(s *Series) error {
	ms.Lock()
	defer ms.Unlock()
	cs := *s
	ms.series[s.Id] = &cs
	return nil
}

func (ms *memoryStore) ReadIssuance() (uint64, error) {
	ms.Lock()
	defer ms.Unlock()
	return ms.issued, nil
}

func (ms *memoryStore) WriteMint(m *Mint) error {
	ms.Lock()
	defer ms.Unlock()
	if ms.failMint != nil {
		return ms.failMint
	}
	if ms.items[m.Item.Id] != nil {
		return fmt.Errorf("duplicate item %d", m.Item.Id)
	}
	cs, ci := *m.Series, *m.Item
	ms.series[cs.Id] = &cs
	ms.items[ci.Id] = &ci
	ms.issued = m.Issuance
	ms.props[ClockPropertyKey] = ClockCheckpoint(m.Item.CreatedAt)
	if m.Fee != nil {
		ms.fees = append(ms.fees, m.Fee)
	}
	return nil
}

func (ms *memoryStore) ReadItem(itemId uint64) (*Item, error) {
	ms.Lock()
	defer ms.Unlock()
	item := ms.items[itemId]
	if item == nil {
		return nil, nil
	}
	ci := *item
	return &ci, nil
}

func (ms *memoryStore) OwnerOf(itemId uint64) (string, error) {
	ms.Lock()
	defer ms.Unlock()
	item := ms.items[itemId]
	if item == nil {
		return "", fmt.Errorf("%w %d", ErrItemNotFound, itemId)
	}
	return item.Owner, nil
}

func (ms *memoryStore) BalanceOf(owner string) (uint64, error) {
	ms.Lock()
	defer ms.Unlock()
	var n uint64
	for _, item := range ms.items {
		if item.Owner == owner {
			n++
		}
	}
	return n, nil
}

func (ms *memoryStore) TransferItem(itemId uint64, from, to string) error {
	ms.Lock()
	defer ms.Unlock()
	item := ms.items[itemId]
	if item == nil {
		return fmt.Errorf("%w %d", ErrItemNotFound, itemId)
	}
	if item.Owner != from {
		return ErrNotOwner
	}
	item.Owner = to
	return nil
}
