package handlers

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/campushub/campus-hub/internal/models"
)

var (
	sellerID = uuid.New()
	buyerID  = uuid.New()
	otherID  = uuid.New()
	adminID  = uuid.New()
)

func freeBookListing() *models.Listing {
	return &models.Listing{
		ID:        uuid.New(),
		SellerID:  sellerID,
		Title:     "Calculus Textbook",
		Price:     0,
		Category:  models.CategoryBooks,
		Contact:   "5551234567",
		Seller:    models.User{ID: sellerID, Email: "seller@campus.edu"},
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

func withInterest(l *models.Listing, accepted bool) *models.Listing {
	l.Interests = append(l.Interests, models.Interest{
		ID:        uuid.New(),
		ListingID: l.ID,
		BuyerID:   buyerID,
		Phone:     "9999999999",
		Accepted:  accepted,
		Buyer:     models.User{ID: buyerID, Name: "Rahul"},
	})
	return l
}

// Scenario: a free books listing shows "Free" and its owner gets no
// interest button.
func TestPresentFreeListingToOwner(t *testing.T) {
	view := PresentListing(freeBookListing(), sellerID, models.RoleStudent)

	assert.Equal(t, "Free", view.PriceLabel)
	assert.False(t, view.IsSold)
	assert.True(t, view.IsOwner)
	assert.True(t, view.CanManage)
	assert.False(t, view.CanInterest, "owners never see the interest action")
	assert.Equal(t, "seller", view.SellerName, "name derives from the email local part")
}

func TestPresentPriceLabel(t *testing.T) {
	l := freeBookListing()
	l.Price = 250
	view := PresentListing(l, otherID, models.RoleStudent)
	assert.Equal(t, "₹250", view.PriceLabel)
}

func TestPresentOpenListingToStrangers(t *testing.T) {
	view := PresentListing(freeBookListing(), otherID, models.RoleStudent)

	assert.True(t, view.CanInterest)
	assert.False(t, view.Requested)
	assert.False(t, view.CanManage)
	assert.Empty(t, view.Contact, "contact hidden until the viewer has requested")
}

// A viewer with an existing entry must never be offered "Interested" again.
func TestPresentRequestedViewer(t *testing.T) {
	l := withInterest(freeBookListing(), false)
	view := PresentListing(l, buyerID, models.RoleStudent)

	assert.True(t, view.Requested)
	assert.False(t, view.CanInterest)
	assert.Equal(t, "5551234567", view.Contact, "requested buyers may call while open")
}

// Scenario: after the owner accepts, the owner sees "Closed", a third user
// sees "Sold", and only the accepted buyer keeps the call contact.
func TestPresentSoldListing(t *testing.T) {
	l := withInterest(freeBookListing(), true)

	owner := PresentListing(l, sellerID, models.RoleStudent)
	assert.Equal(t, "Closed", owner.Sold)
	assert.True(t, owner.IsSold)

	buyer := PresentListing(l, buyerID, models.RoleStudent)
	assert.Equal(t, "Sold", buyer.Sold)
	assert.Equal(t, "5551234567", buyer.Contact)
	assert.False(t, buyer.CanInterest)

	third := PresentListing(l, otherID, models.RoleStudent)
	assert.Equal(t, "Sold", third.Sold)
	assert.Empty(t, third.Contact, "third parties never see the contact once sold")
	assert.False(t, third.CanInterest)
}

// Manage controls must follow every role/ownership combination.
func TestPresentManagePermissions(t *testing.T) {
	tcases := []struct {
		name      string
		viewerID  uuid.UUID
		role      string
		canManage bool
	}{
		{"owner student", sellerID, models.RoleStudent, true},
		{"non-owner student", otherID, models.RoleStudent, false},
		{"admin non-owner", adminID, models.RoleAdmin, true},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			view := PresentListing(freeBookListing(), tc.viewerID, tc.role)
			assert.Equal(t, tc.canManage, view.CanManage)
		})
	}
}

func TestPresentInterestNormalizedShape(t *testing.T) {
	l := withInterest(freeBookListing(), false)
	view := PresentInterest(&l.Interests[0])

	assert.Equal(t, buyerID, view.BuyerID)
	assert.Equal(t, "Rahul", view.BuyerName)
	assert.Equal(t, "9999999999", view.Phone)
	assert.False(t, view.Accepted)
}
