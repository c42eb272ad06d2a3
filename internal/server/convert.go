package server

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"lak_auction/internal/domain/entity"
	"lak_auction/internal/domain/service/auction"
	"lak_auction/internal/domain/value"
	"lak_auction/pkg/lox"
	"lak_auction/pkg/rest"
)

func newRESTItems(items []entity.Item) []rest.Item {
	return lox.Map(items, newRESTItem)
}

func newRESTItem(item entity.Item) rest.Item {
	var lastBidder *rest.Bid
	if item.LastBidder != nil {
		bid := newRESTBid(*item.LastBidder)
		lastBidder = &bid
	}

	images := item.Images
	if images == nil {
		images = []string{}
	}

	bids := item.Bids
	if bids == nil {
		bids = []entity.Bid{}
	}

	return rest.Item{
		ID:            item.ID.String(),
		Name:          item.Name,
		Description:   item.Description,
		Images:        images,
		OriginalPrice: item.OriginalPrice,
		CurrentPrice:  item.CurrentPrice,
		Status:        item.Status.String(),
		Bids:          lox.Map(bids, newRESTBid),
		LastBidder:    lastBidder,
		CreatedAt:     formatTime(item.CreatedAt),
	}
}

func newRESTBid(bid entity.Bid) rest.Bid {
	return rest.Bid{
		Name:     bid.Name,
		BidderID: bid.BidderID,
		Amount:   bid.Amount,
		Time:     formatTime(bid.Time),
	}
}

func newCreateInput(request rest.CreateItemRequest) auction.CreateItemInput {
	return auction.CreateItemInput{
		Name:          request.Name,
		Description:   request.Description,
		Images:        normalizeImages(request.Images),
		OriginalPrice: request.OriginalPrice,
		Status:        value.ParseStatusOrDefault(request.Status),
	}
}

// normalizeImages accepts the two historical request shapes: a JSON array
// of URLs or one comma-joined string.
func normalizeImages(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case string:
		return splitImages(v)
	case []string:
		return cleanImages(v)
	case []any:
		return cleanImages(lo.FilterMap(v, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		}))
	default:
		return []string{}
	}
}

func splitImages(raw string) []string {
	return cleanImages(strings.Split(raw, ","))
}

func cleanImages(parts []string) []string {
	return lo.FilterMap(parts, func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part, part != ""
	})
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
