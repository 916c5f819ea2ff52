package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateListingRequest accepts both JSON and multipart form posts; the image
// file travels separately in the multipart case.
type CreateListingRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Price       int    `json:"price" form:"price" binding:"min=0"`
	Category    string `json:"category" form:"category"`
	Contact     string `json:"contact" form:"contact"`
	Quantity    int    `json:"quantity" form:"quantity"`
	Days        int    `json:"days" form:"days"`
}

type InterestRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// InterestView is the single normalized interest shape; the buyer is always
// an id plus display name, never a bare identifier or embedded object.
type InterestView struct {
	ID        uuid.UUID `json:"id"`
	BuyerID   uuid.UUID `json:"buyerId"`
	BuyerName string    `json:"buyerName"`
	Phone     string    `json:"phone"`
	Accepted  bool      `json:"accepted"`
}

// ListingView is one listing rendered for a specific viewer. The sold,
// label and permission fields are derived server-side so every client shows
// the same state.
type ListingView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	PriceLabel  string    `json:"priceLabel"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	ExpiresAt   time.Time `json:"expiresAt"`
	SellerID    uuid.UUID `json:"seller"`
	SellerName  string    `json:"sellerName"`
	Image       string    `json:"image,omitempty"`

	Sold        string `json:"statusLabel,omitempty"` // "Closed" to owner, "Sold" to others
	IsSold      bool   `json:"sold"`
	IsOwner     bool   `json:"isOwner"`
	CanManage   bool   `json:"canManage"`
	CanInterest bool   `json:"canExpressInterest"`
	Requested   bool   `json:"requested"`
	Contact     string `json:"contact,omitempty"` // only when the viewer may call
}
