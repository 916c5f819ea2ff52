package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListingSold(t *testing.T) {
	buyer := uuid.New()
	l := &Listing{
		Interests: []Interest{
			{ID: uuid.New(), BuyerID: uuid.New()},
			{ID: uuid.New(), BuyerID: buyer},
		},
	}

	assert.False(t, l.Sold(), "listing without accepted interest is not sold")
	assert.Nil(t, l.AcceptedInterest())

	l.Interests[1].Accepted = true
	assert.True(t, l.Sold())
	assert.Equal(t, buyer, l.AcceptedInterest().BuyerID)
}

func TestListingInterestOf(t *testing.T) {
	buyer := uuid.New()
	l := &Listing{Interests: []Interest{{BuyerID: buyer, Phone: "9999999999"}}}

	assert.Nil(t, l.InterestOf(uuid.New()))

	own := l.InterestOf(buyer)
	if assert.NotNil(t, own) {
		assert.Equal(t, "9999999999", own.Phone)
	}
}

func TestListingExpired(t *testing.T) {
	now := time.Now()

	l := &Listing{ExpiresAt: now.Add(24 * time.Hour)}
	assert.False(t, l.Expired(now))

	l.ExpiresAt = now.Add(-time.Minute)
	assert.True(t, l.Expired(now))

	// zero expiry means the listing never expires
	assert.False(t, (&Listing{}).Expired(now))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Priya", (&User{Name: "Priya", Email: "p@campus.edu"}).DisplayName())
	assert.Equal(t, "rahul", (&User{Email: "rahul@campus.edu"}).DisplayName())
	assert.Equal(t, "User", (&User{}).DisplayName())
}

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryBooks, CategoryEquipment, CategoryElectronics, CategoryOther} {
		assert.True(t, ValidCategory(c), c)
	}
	assert.False(t, ValidCategory("vehicles"))
	assert.False(t, ValidCategory(""))
}
