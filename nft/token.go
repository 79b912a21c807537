package nft

import "math"

const (
	// SeriesCap is the most items a single series can ever mint.
	SeriesCap = 10000

	// ItemIdFactor places the series id in the high digits of an item id.
	ItemIdFactor = 10000

	MaxSeriesId = (math.MaxUint64 - SeriesCap) / ItemIdFactor
)

// ItemId encodes the series and the 1-based sequence within it.
func ItemId(seriesId, sequence uint64) uint64 {
	return seriesId*ItemIdFactor + sequence
}

// SeriesOf recovers the series whose pointer an item id resolves to. The last
// item of a series (sequence 10000) therefore resolves to the next series.
func SeriesOf(itemId uint64) uint64 {
	return itemId / ItemIdFactor
}

func validSeries(seriesId uint64) bool {
	return seriesId > 0 && seriesId <= MaxSeriesId
}
