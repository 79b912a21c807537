package nft

import (
	"time"

	"github.com/MixinNetwork/mmp/payout"
)

// Registry records which identity owns every minted item.
type Registry interface {
	OwnerOf(itemId uint64) (string, error)
	BalanceOf(owner string) (uint64, error)
	TransferItem(itemId uint64, from, to string) error
}

// Store persists the ledger. WriteMint must apply the whole mint, ownership
// record, fee transaction and clock checkpoint included, in one transaction
// or not at all.
type Store interface {
	Registry

	ReadProperty(key []byte) ([]byte, error)

	ListSeries() ([]*Series, error)
	WriteSeries(s *Series) error
	ReadIssuance() (uint64, error)
	WriteMint(m *Mint) error
	ReadItem(itemId uint64) (*Item, error)
}

type Series struct {
	Id      uint64
	Pointer string
	Minted  uint64
}

func (s *Series) IsSet() bool {
	return s != nil && s.Pointer != ""
}

func (s *Series) Exhausted() bool {
	return s.Minted >= SeriesCap
}

type Item struct {
	Id        uint64
	Series    uint64
	Sequence  uint64
	Owner     string
	Price     string
	Paid      string
	CreatedAt time.Time
}

// Mint is everything a single successful mint writes.
type Mint struct {
	Series   *Series
	Item     *Item
	Issuance uint64
	Fee      *payout.Transaction
}
