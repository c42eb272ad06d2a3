package entity

import (
	"time"

	"lak_auction/internal/domain/value"
)

// Item is a single auction lot. CurrentPrice only grows: it starts at
// OriginalPrice and gains one bid step per accepted bid.
type Item struct {
	ID            value.ItemID
	Name          string
	Description   string
	Images        []string
	OriginalPrice int64
	CurrentPrice  int64
	Status        value.Status
	Bids          []Bid
	LastBidder    *Bid
	CreatedAt     time.Time
}

// Biddable reports whether the item currently accepts bids.
func (i Item) Biddable() bool {
	return i.Status == value.StatusAvailable
}

// PrimaryImage returns the thumbnail URL, empty when the item has no images.
func (i Item) PrimaryImage() string {
	if len(i.Images) == 0 {
		return ""
	}
	return i.Images[0]
}
