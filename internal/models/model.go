package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies what kind of account a user holds. The auth layer
// verifies it once; nothing downstream re-derives it from raw strings.
type Role string

const (
	RoleBuyer   Role = "Buyer"
	RolePartner Role = "Partner"
	RoleAdmin   Role = "Admin"
)

// OfferStatus is the lifecycle state of an offer
type OfferStatus string

const (
	OfferActive  OfferStatus = "Active"
	OfferSoldOut OfferStatus = "Sold Out"
	OfferExpired OfferStatus = "Expired"
)

// User represents a marketplace account. Only the name is ever exposed
// through bid listings.
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// Offer represents a discounted surplus-food listing published by a partner.
// Price doubles as the auction floor price: no bid below it is accepted.
type Offer struct {
	OfferID       string          `json:"offer_id"`
	PartnerID     string          `json:"partner_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Quantity      int             `json:"quantity"`
	PickupTime    string          `json:"pickup_time"`
	Status        OfferStatus     `json:"status"`
}

// Bid represents a user's bid on an offer. Bids are immutable once placed.
type Bid struct {
	BidID    int64           `json:"bid_id"`
	OfferID  string          `json:"offer_id"`
	UserID   string          `json:"user_id"`
	Amount   decimal.Decimal `json:"amount"`
	PlacedAt time.Time       `json:"placed_at"`
}

// AuctionParticipant records that a user committed to an offer's auction
// lobby. At most one row exists per (offer, user) pair.
type AuctionParticipant struct {
	OfferID  string    `json:"offer_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
