package catalog

import (
	"errors"
	"testing"

	"offer-auction/internal/auctionerrors"
	model "offer-auction/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newOffer(offerID string, price int64, quantity int) model.Offer {
	return model.Offer{
		OfferID:   offerID,
		PartnerID: "partner1",
		Title:     "Surprise Bag",
		Price:     decimal.NewFromInt(price),
		Quantity:  quantity,
		Status:    model.OfferActive,
	}
}

func TestMemoryCatalog_GetOffer(t *testing.T) {
	t.Parallel()

	c := NewMemoryCatalog()
	c.AddOffer(newOffer("offer1", 100, 2))

	offer, err := c.GetOffer("offer1")
	require.NoError(t, err)
	require.True(t, offer.Price.Equal(decimal.NewFromInt(100)))

	_, err = c.GetOffer("offerX")
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrOfferNotFound))
}

func TestMemoryCatalog_SetStatus(t *testing.T) {
	t.Parallel()

	c := NewMemoryCatalog()
	c.AddOffer(newOffer("offer1", 100, 2))

	require.NoError(t, c.SetStatus("offer1", model.OfferExpired))

	offer, err := c.GetOffer("offer1")
	require.NoError(t, err)
	require.Equal(t, model.OfferExpired, offer.Status)

	err = c.SetStatus("offerX", model.OfferExpired)
	require.Error(t, err)
	require.True(t, errors.Is(err, auctionerrors.ErrOfferNotFound))
}

func TestMemoryCatalog_DecrementQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		offerID      string
		quantity     int
		decrement    int
		wantError    bool
		wantQuantity int
		wantStatus   model.OfferStatus
	}{
		{name: "partial_decrement", offerID: "offer1", quantity: 3, decrement: 1, wantQuantity: 2, wantStatus: model.OfferActive},
		{name: "last_unit_marks_sold_out", offerID: "offer1", quantity: 2, decrement: 2, wantQuantity: 0, wantStatus: model.OfferSoldOut},
		{name: "over_decrement_rejected", offerID: "offer1", quantity: 1, decrement: 2, wantError: true},
		{name: "zero_decrement_rejected", offerID: "offer1", quantity: 1, decrement: 0, wantError: true},
		{name: "unknown_offer", offerID: "offerX", quantity: 0, decrement: 1, wantError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := NewMemoryCatalog()
			if tc.offerID == "offer1" {
				c.AddOffer(newOffer("offer1", 100, tc.quantity))
			}

			err := c.DecrementQuantity(tc.offerID, tc.decrement)
			if tc.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			offer, err := c.GetOffer(tc.offerID)
			require.NoError(t, err)
			require.Equal(t, tc.wantQuantity, offer.Quantity)
			require.Equal(t, tc.wantStatus, offer.Status)
		})
	}
}
