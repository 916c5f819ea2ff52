package database

import (
	"errors"
	"time"

	"github.com/campushub/campus-hub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (d *Database) CreateListing(listing *models.Listing) error {
	return d.db.Create(listing).Error
}

func (d *Database) GetListing(id string) (*models.Listing, error) {
	var listing models.Listing
	err := d.db.
		Preload("Seller").
		Preload("Interests").
		Preload("Interests.Buyer").
		First(&listing, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

// ListActiveListings returns listings that have not expired. Sold listings
// stay visible past expiry so closed deals remain on the board.
func (d *Database) ListActiveListings(now time.Time) ([]models.Listing, error) {
	var listings []models.Listing
	err := d.db.
		Where("expires_at > ?", now).
		Or("id IN (?)", d.db.Model(&models.Interest{}).Select("listing_id").Where("accepted")).
		Order("created_at DESC").
		Preload("Seller").
		Preload("Interests").
		Preload("Interests.Buyer").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// DeleteListing removes the listing and cascades its interests.
func (d *Database) DeleteListing(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Interest{}, "listing_id = ?", id).Error; err != nil {
			return err
		}

		var listing models.Listing
		if err := tx.First(&listing, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&listing).Error
	})
}

// AddInterest registers a buyer on a listing. One entry per (listing, buyer).
func (d *Database) AddInterest(interest *models.Interest) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, "id = ?", interest.ListingID).Error; err != nil {
			return err
		}

		if listing.SellerID == interest.BuyerID {
			return ErrOwnInterest
		}

		var count int64
		err := tx.Model(&models.Interest{}).
			Where("listing_id = ? AND buyer_id = ?", interest.ListingID, interest.BuyerID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateInterest
		}

		if err := tx.Create(interest).Error; err != nil {
			// a concurrent insert can slip past the count; the composite
			// unique index catches it
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateInterest
			}
			return err
		}
		return nil
	})
}

func (d *Database) GetInterests(listingID string) ([]models.Interest, error) {
	var interests []models.Interest
	err := d.db.
		Where("listing_id = ?", listingID).
		Order("created_at ASC").
		Preload("Buyer").
		Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}

// AcceptInterest flips one interest to accepted. The listing row is locked
// for the duration of the transaction, so concurrent accepts serialize and a
// listing never ends up with two accepted interests.
func (d *Database) AcceptInterest(listingID, interestID string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&listing, "id = ?", listingID).Error
		if err != nil {
			return err
		}

		var accepted int64
		err = tx.Model(&models.Interest{}).
			Where("listing_id = ? AND accepted", listingID).
			Count(&accepted).Error
		if err != nil {
			return err
		}
		if accepted > 0 {
			return ErrListingSold
		}

		var interest models.Interest
		if err := tx.First(&interest, "id = ? AND listing_id = ?", interestID, listingID).Error; err != nil {
			return err
		}

		return tx.Model(&interest).Update("accepted", true).Error
	})
}

// IsNotFound reports whether err is the storage layer's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
