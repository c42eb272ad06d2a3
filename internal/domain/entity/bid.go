package entity

import "time"

// Bid records one accepted bid. Amount equals the item's current price at
// the moment the bid was accepted.
type Bid struct {
	Name     string
	BidderID string
	Amount   int64
	Time     time.Time
}
