package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"

	"lak_auction/internal/domain/entity"
	"lak_auction/internal/domain/service/auction"
	"lak_auction/internal/domain/value"
	"lak_auction/pkg/errcodes"
	"lak_auction/pkg/httpx/reply"
	"lak_auction/pkg/httpx/req"
	"lak_auction/pkg/rest"
)

type itemService interface {
	List(ctx context.Context) ([]entity.Item, error)
	Get(ctx context.Context, id value.ItemID) (entity.Item, error)
	PlaceBid(ctx context.Context, id value.ItemID, bidderName, bidderID string) (entity.Item, error)
	Create(ctx context.Context, input auction.CreateItemInput) (entity.Item, error)
}

type ItemServer struct {
	itemService itemService
	serviceName string
	bidStep     int64
	now         func() time.Time
}

func NewItemServer(itemService itemService, serviceName string, bidStep int64) ItemServer {
	return ItemServer{
		itemService: itemService,
		serviceName: serviceName,
		bidStep:     bidStep,
		now:         time.Now,
	}
}

// getHealth doubles as the front end's source for the bid step, so the
// button label follows the server configuration.
func (s ItemServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Health{
		Status:  "ok",
		Service: s.serviceName,
		BidStep: s.bidStep,
		Time:    s.now().UTC().Format(time.RFC3339),
	})

	return nil
}

func (s ItemServer) getItems(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	items, err := s.itemService.List(ctx)
	if err != nil {
		return asFailure(fmt.Errorf("itemService.List: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItems(items))

	return nil
}

func (s ItemServer) getItem(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseItemID(r.PathValue("id"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseItemID: %w", err),
			failure.WithCode(errcodes.InvalidItemID),
			failure.WithDescription("Invalid item id"),
		)
	}

	item, err := s.itemService.Get(ctx, id)
	if err != nil {
		return asFailure(fmt.Errorf("itemService.Get: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItem(item))

	return nil
}

func (s ItemServer) postItem(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateItemRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	item, err := s.itemService.Create(ctx, newCreateInput(request))
	if err != nil {
		return asFailure(fmt.Errorf("itemService.Create: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItem(item))

	return nil
}

func (s ItemServer) patchItemBid(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseItemID(r.PathValue("id"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseItemID: %w", err),
			failure.WithCode(errcodes.InvalidItemID),
			failure.WithDescription("Invalid item id"),
		)
	}

	var request rest.PlaceBidRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	item, err := s.itemService.PlaceBid(ctx, id, request.Name, request.BidderID)
	if err != nil {
		return asFailure(fmt.Errorf("itemService.PlaceBid: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTItem(item))

	return nil
}
