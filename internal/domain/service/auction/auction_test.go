package auction_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"lak_auction/internal/domain"
	"lak_auction/internal/domain/entity"
	"lak_auction/internal/domain/service/auction"
	"lak_auction/internal/domain/value"
	"lak_auction/pkg/errcodes"
)

const testBidStep = 100_000

type repoStub struct {
	items   []entity.Item
	loadErr error
	saveErr error
	saves   int
}

func (r *repoStub) Load(context.Context) ([]entity.Item, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}

	return slices.Clone(r.items), nil
}

func (r *repoStub) Save(_ context.Context, items []entity.Item) error {
	if r.saveErr != nil {
		return r.saveErr
	}

	r.items = slices.Clone(items)
	r.saves++

	return nil
}

func availableItem(id string, price int64) entity.Item {
	return entity.Item{
		ID:            value.ItemID(id),
		Name:          "Item " + id,
		OriginalPrice: price,
		CurrentPrice:  price,
		Status:        value.StatusAvailable,
		Bids:          []entity.Bid{},
		CreatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPlaceBid(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	now := time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)

	repo := &repoStub{items: []entity.Item{availableItem("a1", 500_000)}}
	svc := auction.NewService(repo, nil, testBidStep).WithClock(fixedClock(now))

	item, err := svc.PlaceBid(ctx, "a1", "Sone", "u1")
	rq.NoError(err)
	rq.Equal(int64(600_000), item.CurrentPrice)
	rq.Len(item.Bids, 1)
	rq.Equal("Sone", item.Bids[0].Name)
	rq.Equal("u1", item.Bids[0].BidderID)
	rq.Equal(int64(600_000), item.Bids[0].Amount)
	rq.Equal(now, item.Bids[0].Time)
	rq.NotNil(item.LastBidder)
	rq.Equal("Sone", item.LastBidder.Name)

	item, err = svc.PlaceBid(ctx, "a1", "Mali", "u2")
	rq.NoError(err)
	rq.Equal(int64(700_000), item.CurrentPrice)
	rq.Len(item.Bids, 2)
	rq.Equal("Mali", item.LastBidder.Name)

	// Persisted state matches what was returned.
	rq.Equal(2, repo.saves)
	rq.Equal(item.CurrentPrice, repo.items[0].CurrentPrice)
	rq.Len(repo.items[0].Bids, 2)
}

func TestPlaceBidPriceInvariant(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &repoStub{items: []entity.Item{availableItem("a1", 350_000)}}
	svc := auction.NewService(repo, nil, testBidStep)

	for i := 0; i < 7; i++ {
		_, err := svc.PlaceBid(ctx, "a1", "Sone", "u1")
		rq.NoError(err)
	}

	item := repo.items[0]
	rq.Equal(item.OriginalPrice+testBidStep*int64(len(item.Bids)), item.CurrentPrice)
}

func TestPlaceBidValidation(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	testCases := []struct {
		name       string
		bidderName string
		bidderID   string
		code       failure.ErrorCode
	}{
		{name: "Empty name", bidderName: "", bidderID: "u1", code: errcodes.InvalidBidderName},
		{name: "Whitespace name", bidderName: "   ", bidderID: "u1", code: errcodes.InvalidBidderName},
		{name: "Empty bidder id", bidderName: "Sone", bidderID: "", code: errcodes.InvalidBidderID},
		{name: "Whitespace bidder id", bidderName: "Sone", bidderID: "\t ", code: errcodes.InvalidBidderID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			repo := &repoStub{items: []entity.Item{availableItem("a1", 500_000)}}
			svc := auction.NewService(repo, nil, testBidStep)

			_, err := svc.PlaceBid(ctx, "a1", tc.bidderName, tc.bidderID)
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.code, code)

			// Storage untouched.
			rq.Zero(repo.saves)
			rq.Equal(int64(500_000), repo.items[0].CurrentPrice)
			rq.Empty(repo.items[0].Bids)
		})
	}
}

func TestPlaceBidUnavailableItem(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	for _, status := range []value.Status{value.StatusHold, value.StatusSoldOut} {
		t.Run(status.String(), func(*testing.T) {
			item := availableItem("a1", 500_000)
			item.Status = status

			repo := &repoStub{items: []entity.Item{item}}
			svc := auction.NewService(repo, nil, testBidStep)

			_, err := svc.PlaceBid(ctx, "a1", "Sone", "u1")
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.ItemNotAvailable, code)

			rq.Zero(repo.saves)
			rq.Equal(int64(500_000), repo.items[0].CurrentPrice)
			rq.Empty(repo.items[0].Bids)
		})
	}
}

func TestPlaceBidUnknownItem(t *testing.T) {
	rq := require.New(t)

	repo := &repoStub{items: []entity.Item{availableItem("a1", 500_000)}}
	svc := auction.NewService(repo, nil, testBidStep)

	_, err := svc.PlaceBid(context.Background(), "missing", "Sone", "u1")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ItemNotFound, code)
	rq.Zero(repo.saves)
}

func TestListSortsNewestFirst(t *testing.T) {
	rq := require.New(t)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	oldest := availableItem("old", 100_000)
	oldest.CreatedAt = base

	middle := availableItem("mid", 100_000)
	middle.CreatedAt = base.Add(time.Hour)

	newest := availableItem("new", 100_000)
	newest.CreatedAt = base.Add(2 * time.Hour)

	// Storage order deliberately scrambled.
	repo := &repoStub{items: []entity.Item{middle, newest, oldest}}
	svc := auction.NewService(repo, nil, testBidStep)

	items, err := svc.List(context.Background())
	rq.NoError(err)
	rq.Len(items, 3)
	rq.Equal(value.ItemID("new"), items[0].ID)
	rq.Equal(value.ItemID("mid"), items[1].ID)
	rq.Equal(value.ItemID("old"), items[2].ID)
}

func TestGet(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := &repoStub{items: []entity.Item{availableItem("a1", 500_000)}}
	svc := auction.NewService(repo, nil, testBidStep)

	item, err := svc.Get(ctx, "a1")
	rq.NoError(err)
	rq.Equal(value.ItemID("a1"), item.ID)

	_, err = svc.Get(ctx, "nope")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ItemNotFound, code)
}

func TestCreateDisabledByDefault(t *testing.T) {
	rq := require.New(t)

	repo := &repoStub{}
	svc := auction.NewService(repo, nil, testBidStep)

	_, err := svc.Create(context.Background(), auction.CreateItemInput{Name: "Vase"})
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CreationDisabled, code)
	rq.Zero(repo.saves)
}

func TestCreate(t *testing.T) {
	rq := require.New(t)

	now := time.Date(2024, 5, 3, 9, 0, 0, 0, time.UTC)

	repo := &repoStub{}
	svc := auction.NewService(repo, nil, testBidStep).
		WithCreationEnabled(true).
		WithClock(fixedClock(now))

	item, err := svc.Create(context.Background(), auction.CreateItemInput{
		Name:          "  Silver bowl ",
		Description:   "Hand-hammered",
		Images:        []string{"https://img.example/a.jpg"},
		OriginalPrice: 500_000,
	})
	rq.NoError(err)
	rq.NotEmpty(item.ID)
	rq.Equal("Silver bowl", item.Name)
	rq.Equal(int64(500_000), item.OriginalPrice)
	rq.Equal(int64(500_000), item.CurrentPrice)
	rq.Equal(value.StatusAvailable, item.Status)
	rq.Empty(item.Bids)
	rq.Equal(now, item.CreatedAt)
	rq.Equal(1, repo.saves)

	_, err = svc.Create(context.Background(), auction.CreateItemInput{Name: "   "})
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InvalidItemName, code)
}

func TestRepositoryErrorsPassThrough(t *testing.T) {
	rq := require.New(t)

	storageErr := errors.New("disk on fire")

	repo := &repoStub{loadErr: storageErr}
	svc := auction.NewService(repo, nil, testBidStep)

	_, err := svc.List(context.Background())
	rq.ErrorIs(err, storageErr)

	_, err = svc.PlaceBid(context.Background(), "a1", "Sone", "u1")
	rq.ErrorIs(err, storageErr)
}
