package nft

import (
	"encoding/binary"
	"sync"
	"time"
)

const ClockPropertyKey = "LEDGER:CLOCK:MONOTONIC"

type PropertyStore interface {
	ReadProperty(key []byte) ([]byte, error)
}

// Clock hands out strictly increasing timestamps that survive restarts, so
// time ordered store keys never collide. A timestamp only counts as used
// once Advance is called, and the store persists it together with the
// write that carries it.
type Clock struct {
	sync.Mutex
	now time.Time
}

func NewClock(store PropertyStore) (*Clock, error) {
	bs, err := store.ReadProperty([]byte(ClockPropertyKey))
	if err != nil {
		return nil, err
	}
	var ts time.Time
	if len(bs) == 8 {
		ts = time.Unix(0, int64(binary.BigEndian.Uint64(bs)))
	}
	return &Clock{now: ts}, nil
}

func (c *Clock) Next() time.Time {
	c.Lock()
	defer c.Unlock()

	now := time.Now()
	if !now.After(c.now) {
		now = c.now.Add(time.Nanosecond)
	}
	return now
}

func (c *Clock) Advance(ts time.Time) {
	c.Lock()
	defer c.Unlock()

	if ts.After(c.now) {
		c.now = ts
	}
}

// ClockCheckpoint encodes ts the way NewClock reads it back.
func ClockCheckpoint(ts time.Time) []byte {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(ts.UnixNano()))
	return val
}
