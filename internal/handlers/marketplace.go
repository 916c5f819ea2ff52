package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campushub/campus-hub/internal/database"
	"github.com/campushub/campus-hub/internal/handlers/dto"
	"github.com/campushub/campus-hub/internal/middleware"
	"github.com/campushub/campus-hub/internal/models"
)

const defaultListingDays = 7

type MarketplaceHandler struct {
	repo      database.Repository
	uploadDir string
}

func NewMarketplaceHandler(repo database.Repository, uploadDir string) *MarketplaceHandler {
	return &MarketplaceHandler{repo: repo, uploadDir: uploadDir}
}

// List returns every active listing, rendered for the requesting viewer,
// in one call.
func (h *MarketplaceHandler) List(c *gin.Context) {
	viewerID, viewerRole := middleware.CurrentUser(c)

	listings, err := h.repo.ListActiveListings(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load listings"})
		return
	}

	views := make([]dto.ListingView, 0, len(listings))
	for i := range listings {
		views = append(views, PresentListing(&listings[i], viewerID, viewerRole))
	}

	c.JSON(http.StatusOK, views)
}

// Create accepts a JSON body or a multipart form with an optional image.
func (h *MarketplaceHandler) Create(c *gin.Context) {
	viewerID, _ := middleware.CurrentUser(c)

	var req dto.CreateListingRequest
	var imagePath string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if file, err := c.FormFile("image"); err == nil {
			name := uuid.New().String() + filepath.Ext(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
				return
			}
			imagePath = "/uploads/" + name
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if req.Category == "" {
		req.Category = models.CategoryOther
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	days := req.Days
	if days <= 0 {
		days = defaultListingDays
	}
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	listing := &models.Listing{
		SellerID:    viewerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Contact:     req.Contact,
		Quantity:    quantity,
		ImagePath:   imagePath,
		ExpiresAt:   time.Now().Add(time.Duration(days) * 24 * time.Hour),
		CreatedAt:   time.Now(),
	}

	if err := h.repo.CreateListing(listing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": listing.ID})
}

// Delete removes a listing and all its interests. Owner or admin only.
func (h *MarketplaceHandler) Delete(c *gin.Context) {
	listing, ok := h.manageableListing(c)
	if !ok {
		return
	}

	if err := h.repo.DeleteListing(listing.ID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete listing"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ExpressInterest registers the viewer as a candidate buyer with a phone
// contact. Each buyer gets at most one entry per listing.
func (h *MarketplaceHandler) ExpressInterest(c *gin.Context) {
	viewerID, _ := middleware.CurrentUser(c)

	var req dto.InterestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	interest := &models.Interest{
		ListingID: listingID,
		BuyerID:   viewerID,
		Phone:     req.Phone,
		CreatedAt: time.Now(),
	}

	switch err := h.repo.AddInterest(interest); {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"id": interest.ID})
	case err == database.ErrDuplicateInterest:
		c.JSON(http.StatusConflict, gin.H{"error": "interest already registered"})
	case err == database.ErrOwnInterest:
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot register interest on your own listing"})
	case database.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register interest"})
	}
}

// ListInterests returns the full interest collection. Owner or admin only.
func (h *MarketplaceHandler) ListInterests(c *gin.Context) {
	listing, ok := h.manageableListing(c)
	if !ok {
		return
	}

	interests, err := h.repo.GetInterests(listing.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load interests"})
		return
	}

	c.JSON(http.StatusOK, presentInterests(interests))
}

// AcceptInterest marks one interest accepted, the sole sold transition. The
// response carries the refreshed collection so the caller never renders a
// stale accept state.
func (h *MarketplaceHandler) AcceptInterest(c *gin.Context) {
	listing, ok := h.manageableListing(c)
	if !ok {
		return
	}

	switch err := h.repo.AcceptInterest(listing.ID.String(), c.Param("interestId")); {
	case err == nil:
	case err == database.ErrListingSold:
		c.JSON(http.StatusConflict, gin.H{"error": "listing already sold"})
		return
	case database.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "interest not found"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept interest"})
		return
	}

	interests, err := h.repo.GetInterests(listing.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load interests"})
		return
	}

	c.JSON(http.StatusOK, presentInterests(interests))
}

// manageableListing loads the listing from the path and enforces the
// owner-or-admin rule shared by delete, view-interests and accept.
func (h *MarketplaceHandler) manageableListing(c *gin.Context) (*models.Listing, bool) {
	viewerID, viewerRole := middleware.CurrentUser(c)

	listing, err := h.repo.GetListing(c.Param("id"))
	if err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load listing"})
		}
		return nil, false
	}

	if listing.SellerID != viewerID && viewerRole != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the listing owner"})
		return nil, false
	}

	return listing, true
}
