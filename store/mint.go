package store

import (
	"fmt"

	"github.com/MixinNetwork/mixin/common"
	"github.com/MixinNetwork/mmp/nft"
	"github.com/dgraph-io/badger/v3"
)

const (
	prefixSeriesPayload = "LEDGER:SERIES:PAYLOAD:"
	prefixItemPayload   = "LEDGER:ITEM:PAYLOAD:"
	prefixItemOwner     = "LEDGER:ITEM:OWNER:"
	keyIssuance         = "LEDGER:ISSUANCE"
)

func (bs *BadgerStore) WriteSeries(s *nft.Series) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readSeries(txn, s.Id)
		if err != nil {
			return err
		}
		if old != nil && old.Minted != s.Minted {
			panic(s.Id)
		}
		return writeSeries(txn, s)
	})
}

func (bs *BadgerStore) ReadSeries(id uint64) (*nft.Series, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readSeries(txn, id)
}

func (bs *BadgerStore) ListSeries() ([]*nft.Series, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefixSeriesPayload)
	it := txn.NewIterator(opts)
	defer it.Close()

	var all []*nft.Series
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var s nft.Series
		err = common.MsgpackUnmarshal(val, &s)
		if err != nil {
			return nil, err
		}
		all = append(all, &s)
	}
	return all, nil
}

func (bs *BadgerStore) ReadIssuance() (uint64, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return readIssuance(txn)
}

func (bs *BadgerStore) WriteMint(m *nft.Mint) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		old, err := bs.readItem(txn, m.Item.Id)
		if err != nil {
			return err
		} else if old != nil {
			panic(m.Item.Id)
		}

		og, err := bs.readSeries(txn, m.Series.Id)
		if err != nil {
			return err
		}
		if og == nil || og.Minted+1 != m.Series.Minted || m.Item.Sequence != m.Series.Minted {
			panic(m.Series.Id)
		}
		issued, err := readIssuance(txn)
		if err != nil {
			return err
		}
		if issued+1 != m.Issuance {
			panic(m.Issuance)
		}

		err = writeSeries(txn, m.Series)
		if err != nil {
			return err
		}
		err = writeItem(txn, m.Item)
		if err != nil {
			return err
		}
		err = txn.Set(itemOwnerKey(m.Item.Owner, m.Item.Id), []byte{1})
		if err != nil {
			return err
		}
		err = txn.Set([]byte(keyIssuance), uint64ToBytes(m.Issuance))
		if err != nil {
			return err
		}
		err = txn.Set([]byte(nft.ClockPropertyKey), nft.ClockCheckpoint(m.Item.CreatedAt))
		if err != nil || m.Fee == nil {
			return err
		}
		return bs.writeTransaction(txn, m.Fee)
	})
}

func (bs *BadgerStore) ReadItem(id uint64) (*nft.Item, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	return bs.readItem(txn, id)
}

func (bs *BadgerStore) OwnerOf(id uint64) (string, error) {
	item, err := bs.ReadItem(id)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", fmt.Errorf("%w %d", nft.ErrItemNotFound, id)
	}
	return item.Owner, nil
}

func (bs *BadgerStore) BalanceOf(owner string) (uint64, error) {
	txn := bs.db.NewTransaction(false)
	defer txn.Discard()

	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(prefixItemOwner + owner + ":")
	it := txn.NewIterator(opts)
	defer it.Close()

	var balance uint64
	for it.Seek(opts.Prefix); it.Valid(); it.Next() {
		balance++
	}
	return balance, nil
}

func (bs *BadgerStore) TransferItem(id uint64, from, to string) error {
	return bs.db.Update(func(txn *badger.Txn) error {
		item, err := bs.readItem(txn, id)
		if err != nil {
			return err
		}
		if item == nil {
			return fmt.Errorf("%w %d", nft.ErrItemNotFound, id)
		}
		if item.Owner != from {
			return fmt.Errorf("%w: %s does not own %d", nft.ErrNotOwner, from, id)
		}
		err = txn.Delete(itemOwnerKey(from, id))
		if err != nil {
			return err
		}
		item.Owner = to
		err = writeItem(txn, item)
		if err != nil {
			return err
		}
		return txn.Set(itemOwnerKey(to, id), []byte{1})
	})
}

func (bs *BadgerStore) readSeries(txn *badger.Txn, id uint64) (*nft.Series, error) {
	key := append([]byte(prefixSeriesPayload), uint64ToBytes(id)...)
	val, err := readProperty(txn, key)
	if err != nil || val == nil {
		return nil, err
	}
	var s nft.Series
	err = common.MsgpackUnmarshal(val, &s)
	return &s, err
}

func (bs *BadgerStore) readItem(txn *badger.Txn, id uint64) (*nft.Item, error) {
	key := append([]byte(prefixItemPayload), uint64ToBytes(id)...)
	val, err := readProperty(txn, key)
	if err != nil || val == nil {
		return nil, err
	}
	var item nft.Item
	err = common.MsgpackUnmarshal(val, &item)
	return &item, err
}

func readIssuance(txn *badger.Txn) (uint64, error) {
	val, err := readProperty(txn, []byte(keyIssuance))
	if err != nil || val == nil {
		return 0, err
	}
	if len(val) != 8 {
		panic(val)
	}
	return bytesToUint64(val), nil
}

func writeSeries(txn *badger.Txn, s *nft.Series) error {
	key := append([]byte(prefixSeriesPayload), uint64ToBytes(s.Id)...)
	return txn.Set(key, common.MsgpackMarshalPanic(s))
}

func writeItem(txn *badger.Txn, item *nft.Item) error {
	key := append([]byte(prefixItemPayload), uint64ToBytes(item.Id)...)
	return txn.Set(key, common.MsgpackMarshalPanic(item))
}

func itemOwnerKey(owner string, id uint64) []byte {
	key := []byte(prefixItemOwner + owner + ":")
	return append(key, uint64ToBytes(id)...)
}
