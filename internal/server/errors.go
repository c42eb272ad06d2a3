package server

import (
	"errors"

	"git.appkode.ru/pub/go/failure"

	"lak_auction/internal/domain"
	"lak_auction/pkg/errcodes"
)

// asFailure lifts coded domain errors into failure classes so reply.Error
// can pick the HTTP status. Everything uncoded passes through and becomes
// a 500 downstream.
func asFailure(err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	switch appErr.Code {
	case errcodes.ItemNotFound, errcodes.NotFound:
		return failure.NewNotFoundErrorFromError(
			err,
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		)
	case errcodes.CreationDisabled, errcodes.Forbidden:
		return failure.NewForbiddenErrorFromError(
			err,
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		)
	case errcodes.ItemNotAvailable,
		errcodes.InvalidItemID,
		errcodes.InvalidItemName,
		errcodes.InvalidItemPrice,
		errcodes.InvalidItemStatus,
		errcodes.InvalidBidderName,
		errcodes.InvalidBidderID,
		errcodes.ValidationError:
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		)
	default:
		return err
	}
}
