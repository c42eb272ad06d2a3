package persistence

import (
	"time"

	"lak_auction/internal/domain/entity"
	"lak_auction/internal/domain/value"
	"lak_auction/pkg/lox"
)

// documentSchema is the on-disk shape: a single JSON object holding every
// item. Field names follow the historical store format, not Go convention.
type documentSchema struct {
	Items []itemSchema `json:"items"`
}

type itemSchema struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Images        []string     `json:"images"`
	OriginalPrice int64        `json:"originalPrice"`
	CurrentPrice  int64        `json:"currentPrice"`
	Status        string       `json:"status"`
	Bids          []bidSchema  `json:"bids"`
	LastBidder    *bidSchema   `json:"lastBidder,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type bidSchema struct {
	Name     string    `json:"name"`
	BidderID string    `json:"bidderId"`
	Amount   int64     `json:"amount"`
	Time     time.Time `json:"time"`
}

func (s itemSchema) toDomain() entity.Item {
	bids := lox.Map(s.Bids, bidSchema.toDomain)

	var lastBidder *entity.Bid
	if s.LastBidder != nil {
		bid := s.LastBidder.toDomain()
		lastBidder = &bid
	}

	return entity.Item{
		ID:            value.ItemID(s.ID),
		Name:          s.Name,
		Description:   s.Description,
		Images:        s.Images,
		OriginalPrice: s.OriginalPrice,
		CurrentPrice:  s.CurrentPrice,
		Status:        value.ParseStatusOrDefault(s.Status),
		Bids:          bids,
		LastBidder:    lastBidder,
		CreatedAt:     s.CreatedAt,
	}
}

func (s bidSchema) toDomain() entity.Bid {
	return entity.Bid{
		Name:     s.Name,
		BidderID: s.BidderID,
		Amount:   s.Amount,
		Time:     s.Time,
	}
}

func fromItem(item entity.Item) itemSchema {
	bids := lox.Map(item.Bids, fromBid)

	var lastBidder *bidSchema
	if item.LastBidder != nil {
		bid := fromBid(*item.LastBidder)
		lastBidder = &bid
	}

	return itemSchema{
		ID:            item.ID.String(),
		Name:          item.Name,
		Description:   item.Description,
		Images:        item.Images,
		OriginalPrice: item.OriginalPrice,
		CurrentPrice:  item.CurrentPrice,
		Status:        item.Status.String(),
		Bids:          bids,
		LastBidder:    lastBidder,
		CreatedAt:     item.CreatedAt,
	}
}

func fromBid(bid entity.Bid) bidSchema {
	return bidSchema{
		Name:     bid.Name,
		BidderID: bid.BidderID,
		Amount:   bid.Amount,
		Time:     bid.Time,
	}
}
