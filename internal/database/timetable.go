package database

import (
	"github.com/campushub/campus-hub/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (d *Database) GetSlots(userID string) ([]models.Slot, error) {
	var slots []models.Slot
	err := d.db.
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ReplaceSlots overwrites the user's entire timetable. The API contract is
// whole-document replace, so slots carry no identity across saves beyond
// their position.
func (d *Database) ReplaceSlots(userID uuid.UUID, slots []models.Slot) ([]models.Slot, error) {
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Slot{}, "user_id = ?", userID).Error; err != nil {
			return err
		}

		for i := range slots {
			slots[i].ID = uuid.Nil
			slots[i].UserID = userID
			slots[i].Position = i
		}

		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		return nil, err
	}
	return slots, nil
}
