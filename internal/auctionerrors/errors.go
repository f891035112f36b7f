package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrNoBids        = errors.New("no bids found for offer")
	ErrUserNotFound  = errors.New("user not found")
)

// business logic errors
var (
	ErrInvalidBid      = errors.New("invalid bid")
	ErrBelowFloorPrice = errors.New("bid amount below the offer's starting price")
	ErrBidTooLow       = errors.New("bid amount not above the current highest bid")
)

// auth errors
var (
	ErrUnauthenticated = errors.New("missing or invalid credentials")
)
