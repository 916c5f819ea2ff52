package handlers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/campushub/campus-hub/internal/handlers/dto"
	"github.com/campushub/campus-hub/internal/models"
)

// PresentListing renders one listing for a specific viewer. All state the
// old clients used to derive locally (sold labels, permission flags, who may
// see the contact) is computed here, behind one contract boundary.
func PresentListing(l *models.Listing, viewerID uuid.UUID, viewerRole string) dto.ListingView {
	accepted := l.AcceptedInterest()
	sold := accepted != nil
	isOwner := l.SellerID == viewerID
	isAdmin := viewerRole == models.RoleAdmin
	own := l.InterestOf(viewerID)

	view := dto.ListingView{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		PriceLabel:  priceLabel(l.Price),
		Category:    l.Category,
		Quantity:    l.Quantity,
		ExpiresAt:   l.ExpiresAt,
		SellerID:    l.SellerID,
		SellerName:  l.Seller.DisplayName(),
		Image:       l.ImagePath,
		IsSold:      sold,
		IsOwner:     isOwner,
		CanManage:   isOwner || isAdmin,
		Requested:   own != nil,
	}

	if sold {
		if isOwner {
			view.Sold = "Closed"
		} else {
			view.Sold = "Sold"
		}
	} else {
		view.CanInterest = !isOwner && own == nil
	}

	if viewerMayCall(l, viewerID, isOwner, sold, accepted, own) {
		view.Contact = l.Contact
	}

	return view
}

// viewerMayCall: the owner always, the accepted buyer once sold, and a
// requested buyer while the listing is still open.
func viewerMayCall(l *models.Listing, viewerID uuid.UUID, isOwner, sold bool, accepted, own *models.Interest) bool {
	if isOwner {
		return true
	}
	if sold {
		return accepted.BuyerID == viewerID
	}
	return own != nil
}

func priceLabel(price int) string {
	if price == 0 {
		return "Free"
	}
	return fmt.Sprintf("₹%d", price)
}

// PresentInterest normalizes an interest entry to the one wire shape.
func PresentInterest(i *models.Interest) dto.InterestView {
	return dto.InterestView{
		ID:        i.ID,
		BuyerID:   i.BuyerID,
		BuyerName: i.Buyer.DisplayName(),
		Phone:     i.Phone,
		Accepted:  i.Accepted,
	}
}

func presentInterests(interests []models.Interest) []dto.InterestView {
	views := make([]dto.InterestView, 0, len(interests))
	for i := range interests {
		views = append(views, PresentInterest(&interests[i]))
	}
	return views
}
