package auction

import (
	"context"
	"slices"
	"strings"
	"time"

	"lak_auction/internal/domain"
	"lak_auction/internal/domain/entity"
	"lak_auction/internal/domain/value"
	"lak_auction/internal/infrastructure/monitoring"
	"lak_auction/pkg/contextx"
	"lak_auction/pkg/errcodes"
	"lak_auction/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const DefaultBidStep = 100_000

type ItemRepository interface {
	Load(ctx context.Context) ([]entity.Item, error)
	Save(ctx context.Context, items []entity.Item) error
}

// Service implements the auction operations over a whole-document item
// repository. Every operation reloads the full set and, when mutating,
// rewrites it; nothing is cached between calls.
type Service struct {
	repo        ItemRepository
	metrics     *monitoring.Metrics
	bidStep     int64
	allowCreate bool
	now         func() time.Time
}

func NewService(repo ItemRepository, metrics *monitoring.Metrics, bidStep int64) *Service {
	if bidStep <= 0 {
		bidStep = DefaultBidStep
	}

	return &Service{
		repo:    repo,
		metrics: metrics,
		bidStep: bidStep,
		now:     time.Now,
	}
}

func (s *Service) WithCreationEnabled(enabled bool) *Service {
	s.allowCreate = enabled
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List returns every item, newest first. Ordering is stable, so items
// sharing a createdAt keep their insertion order.
func (s *Service) List(ctx context.Context) ([]entity.Item, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(items, func(a, b entity.Item) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return items, nil
}

func (s *Service) Get(ctx context.Context, id value.ItemID) (entity.Item, error) {
	items, err := s.repo.Load(ctx)
	if err != nil {
		return entity.Item{}, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return entity.Item{}, domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	return items[idx], nil
}

// PlaceBid accepts a bid on an Available item: the current price grows by
// one bid step and the bid is appended with the new price as its amount.
// Two overlapping bids can both read the pre-bid document; last write wins.
func (s *Service) PlaceBid(ctx context.Context, id value.ItemID, bidderName, bidderID string) (entity.Item, error) {
	bidderName = strings.TrimSpace(bidderName)
	bidderID = strings.TrimSpace(bidderID)

	if bidderName == "" {
		s.metrics.BidRejected("blank_name")
		return entity.Item{}, domain.NewError(errcodes.InvalidBidderName, "bidder name is required")
	}

	if bidderID == "" {
		s.metrics.BidRejected("blank_bidder_id")
		return entity.Item{}, domain.NewError(errcodes.InvalidBidderID, "bidder id is required")
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		return entity.Item{}, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		s.metrics.BidRejected("not_found")
		return entity.Item{}, domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	item := items[idx]

	if !item.Biddable() {
		s.metrics.BidRejected("not_available")
		return entity.Item{}, domain.NewError(errcodes.ItemNotAvailable, "item is not available for bidding")
	}

	item.CurrentPrice += s.bidStep

	bid := entity.Bid{
		Name:     bidderName,
		BidderID: bidderID,
		Amount:   item.CurrentPrice,
		Time:     s.now().UTC(),
	}

	item.Bids = append(item.Bids, bid)
	item.LastBidder = &bid
	items[idx] = item

	if err := s.repo.Save(ctx, items); err != nil {
		return entity.Item{}, err
	}

	s.metrics.BidAccepted()

	logger(ctx).Info(
		"bid accepted",
		logx.FieldItemID, item.ID.String(),
		"amount", bid.Amount,
		"bids", len(item.Bids),
	)

	return item, nil
}

type CreateItemInput struct {
	Name          string
	Description   string
	Images        []string
	OriginalPrice int64
	Status        value.Status
}

// Create adds a new item. Gated by configuration; the read-only deployment
// keeps it disabled and answers Forbidden.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (entity.Item, error) {
	if !s.allowCreate {
		return entity.Item{}, domain.NewError(errcodes.CreationDisabled, "item creation is disabled")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return entity.Item{}, domain.NewError(errcodes.InvalidItemName, "item name is required")
	}

	if input.OriginalPrice < 0 {
		return entity.Item{}, domain.NewError(errcodes.InvalidItemPrice, "original price must not be negative")
	}

	status := input.Status
	if status == "" {
		status = value.StatusAvailable
	}

	item := entity.Item{
		ID:            value.NewItemID(),
		Name:          name,
		Description:   strings.TrimSpace(input.Description),
		Images:        input.Images,
		OriginalPrice: input.OriginalPrice,
		CurrentPrice:  input.OriginalPrice,
		Status:        status,
		Bids:          []entity.Bid{},
		CreatedAt:     s.now().UTC(),
	}

	items, err := s.repo.Load(ctx)
	if err != nil {
		return entity.Item{}, err
	}

	items = append(items, item)

	if err := s.repo.Save(ctx, items); err != nil {
		return entity.Item{}, err
	}

	s.metrics.ItemCreated()

	logger(ctx).Info("item created", logx.FieldItemID, item.ID.String())

	return item, nil
}

func indexOf(items []entity.Item, id value.ItemID) int {
	return slices.IndexFunc(items, func(item entity.Item) bool {
		return item.ID == id
	})
}
