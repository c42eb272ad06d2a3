package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Auction module.
	ItemNotFound       failure.ErrorCode = "ItemNotFound"
	ItemNotAvailable   failure.ErrorCode = "ItemNotAvailable"
	InvalidItemID      failure.ErrorCode = "InvalidItemID"
	InvalidItemName    failure.ErrorCode = "InvalidItemName"
	InvalidItemPrice   failure.ErrorCode = "InvalidItemPrice"
	InvalidItemStatus  failure.ErrorCode = "InvalidItemStatus"
	InvalidBidderName  failure.ErrorCode = "InvalidBidderName"
	InvalidBidderID    failure.ErrorCode = "InvalidBidderID"
	CreationDisabled   failure.ErrorCode = "CreationDisabled"
	StorageUnavailable failure.ErrorCode = "StorageUnavailable"
)
