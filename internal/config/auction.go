package config

type Store struct {
	Path string `env:"STORE_PATH" envDefault:"data/items.json"`
}

type Auction struct {
	// BidStep is the fixed LAK increment added on every accepted bid.
	BidStep int64 `env:"BID_STEP" envDefault:"100000"`
	// AllowCreate gates POST /api/items; the read-only deployment keeps
	// it off and the catalog is edited via the sync utility instead.
	AllowCreate bool `env:"ALLOW_ITEM_CREATE" envDefault:"false"`
}
