package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryBooks       = "books"
	CategoryEquipment   = "equipment"
	CategoryElectronics = "electronics"
	CategoryOther       = "other"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryBooks, CategoryEquipment, CategoryElectronics, CategoryOther:
		return true
	}
	return false
}

type Listing struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID    uuid.UUID `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Price       int    `gorm:"not null;default:0;check:price >= 0"`
	Category    string `gorm:"not null;check:category IN ('books','equipment','electronics','other')"`
	Contact     string
	Quantity    int `gorm:"default:1"`
	ImagePath   string
	ExpiresAt   time.Time
	CreatedAt   time.Time

	Seller    User       `gorm:"foreignKey:SellerID"`
	Interests []Interest `gorm:"foreignKey:ListingID"`
}

// Interest records one buyer's request on one listing. A buyer may hold at
// most one per listing, and at most one interest per listing may ever be
// accepted.
type Interest struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ListingID uuid.UUID `gorm:"not null;uniqueIndex:idx_listing_buyer"`
	BuyerID   uuid.UUID `gorm:"not null;uniqueIndex:idx_listing_buyer"`
	Phone     string    `gorm:"not null"`
	Accepted  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time

	Buyer User `gorm:"foreignKey:BuyerID"`
}

// AcceptedInterest returns the single accepted interest, or nil.
func (l *Listing) AcceptedInterest() *Interest {
	for i := range l.Interests {
		if l.Interests[i].Accepted {
			return &l.Interests[i]
		}
	}
	return nil
}

// Sold holds exactly when one interest has been accepted.
func (l *Listing) Sold() bool {
	return l.AcceptedInterest() != nil
}

// InterestOf returns the viewer's own interest entry, or nil.
func (l *Listing) InterestOf(userID uuid.UUID) *Interest {
	for i := range l.Interests {
		if l.Interests[i].BuyerID == userID {
			return &l.Interests[i]
		}
	}
	return nil
}

func (l *Listing) Expired(now time.Time) bool {
	return !l.ExpiresAt.IsZero() && l.ExpiresAt.Before(now)
}
