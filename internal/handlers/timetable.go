package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campus-hub/internal/database"
	"github.com/campushub/campus-hub/internal/handlers/dto"
	"github.com/campushub/campus-hub/internal/middleware"
	"github.com/campushub/campus-hub/internal/models"
	"github.com/campushub/campus-hub/internal/schedule"
)

type TimetableHandler struct {
	repo database.Repository
}

func NewTimetableHandler(repo database.Repository) *TimetableHandler {
	return &TimetableHandler{repo: repo}
}

// Get returns the viewer's timetable in saved order plus the sorted view.
func (h *TimetableHandler) Get(c *gin.Context) {
	viewerID, _ := middleware.CurrentUser(c)

	slots, err := h.repo.GetSlots(viewerID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load timetable"})
		return
	}

	c.JSON(http.StatusOK, timetableResponse(slots))
}

// Replace overwrites the whole timetable with the posted document. There is
// no per-slot update; add, edit and delete are all the same full save. On
// any failure the stored document is left untouched.
func (h *TimetableHandler) Replace(c *gin.Context) {
	viewerID, _ := middleware.CurrentUser(c)

	var req dto.TimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots := make([]models.Slot, 0, len(req.Slots))
	for _, f := range req.Slots {
		if strings.TrimSpace(f.Subject) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "subject is required"})
			return
		}
		if !schedule.ValidDay(f.Day) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown day"})
			return
		}
		slots = append(slots, models.Slot{
			Day:       f.Day,
			StartTime: f.StartTime,
			EndTime:   f.EndTime,
			Subject:   f.Subject,
		})
	}

	saved, err := h.repo.ReplaceSlots(viewerID, slots)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save timetable"})
		return
	}

	c.JSON(http.StatusOK, timetableResponse(saved))
}

func timetableResponse(slots []models.Slot) dto.TimetableResponse {
	return dto.TimetableResponse{
		Slots:  toSlotForms(slots),
		Sorted: toSlotForms(schedule.Sorted(slots)),
	}
}

func toSlotForms(slots []models.Slot) []dto.SlotForm {
	forms := make([]dto.SlotForm, 0, len(slots))
	for _, s := range slots {
		forms = append(forms, dto.SlotForm{
			Day:       s.Day,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Subject:   s.Subject,
		})
	}
	return forms
}
