// Package model defines domain models for auction bid history reconstruction.
package model

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// NanoErgExponent scales base-unit box values to whole ERG.
const NanoErgExponent = -9

// labelLayout renders confirmation times the way the bid chart labels them.
const labelLayout = "Jan 2, 2006 3:04 PM"

// BidRecord is one reconstructed bid.
type BidRecord struct {
	Amount    decimal.Decimal
	Value     uint64
	Timestamp time.Time
	TxID      string
}

// NewBidRecord builds a record from the raw output value of the bid transaction.
func NewBidRecord(txID string, value uint64, timestamp time.Time) BidRecord {
	return BidRecord{
		Amount:    ErgAmount(value),
		Value:     value,
		Timestamp: timestamp,
		TxID:      txID,
	}
}

// ErgAmount converts a nanoERG value into ERG.
func ErgAmount(value uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(value), NanoErgExponent)
}

// Label returns the chart label of the bid in UTC. Use LabelIn to render it in the viewer's zone.
func (r BidRecord) Label() string {
	return r.LabelIn(time.UTC)
}

// LabelIn returns the chart label of the bid in loc. A nil loc means UTC.
func (r BidRecord) LabelIn(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return r.Timestamp.In(loc).Format(labelLayout)
}
