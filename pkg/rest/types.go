package rest

// Item is the wire representation of an auction item.
type Item struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	OriginalPrice int64    `json:"originalPrice"`
	CurrentPrice  int64    `json:"currentPrice"`
	Status        string   `json:"status"`
	Bids          []Bid    `json:"bids"`
	LastBidder    *Bid     `json:"lastBidder,omitempty"`
	CreatedAt     string   `json:"createdAt"`
}

// Bid is a single accepted bid on an item.
type Bid struct {
	Name     string `json:"name"`
	BidderID string `json:"bidderId"`
	Amount   int64  `json:"amount"`
	Time     string `json:"time"`
}

// PlaceBidRequest is the PATCH /api/items/{id}/bid body.
type PlaceBidRequest struct {
	Name     string `json:"name" validate:"required"`
	BidderID string `json:"bidderId" validate:"required"`
}

// CreateItemRequest is the POST /api/items body. Images accepts either a
// JSON array or a comma-joined string, so it stays untyped here and is
// normalized during conversion. Field validation is left to the service:
// the creation gate must answer Forbidden before any field complaint.
type CreateItemRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Images        any    `json:"images"`
	OriginalPrice int64  `json:"originalPrice"`
	Status        string `json:"status"`
}

// Health is the liveness payload served on /health and /api/health. It
// carries the configured bid step so the front end can label the bid
// control without hardcoding the increment.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	BidStep int64  `json:"bidStep"`
	Time    string `json:"time"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
