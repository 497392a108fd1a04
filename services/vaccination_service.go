package services

import (
	"errors"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VaccinationInput struct {
	ChildID    uint   `json:"childId" binding:"required"`
	ScheduleID *uint  `json:"scheduleId"`
	Name       string `json:"name" binding:"required"`
	DueDate    string `json:"dueDate" binding:"required"`
	Status     string `json:"status" binding:"omitempty,oneof=pending completed overdue skipped"`
	Location   string `json:"location"`
	Notes      string `json:"notes"`
}

type VaccinationUpdateInput struct {
	Name          *string `json:"name" binding:"omitempty,min=1"`
	CompletedDate *string `json:"completedDate"`
	Status        *string `json:"status" binding:"omitempty,oneof=pending completed overdue skipped"`
	Location      *string `json:"location"`
	Notes         *string `json:"notes"`
	Reactions     *string `json:"reactions"`
}

// DueDateFor computes a due date from the child's birth date and a schedule
// entry: months take precedence, then weeks; a template with neither offset
// falls back to the birth date itself.
func DueDateFor(birthDate time.Time, entry models.VaccinationSchedule) time.Time {
	if entry.AgeMonths != nil {
		return birthDate.AddDate(0, *entry.AgeMonths, 0)
	}
	if entry.AgeWeeks != nil {
		return birthDate.AddDate(0, 0, *entry.AgeWeeks*7)
	}
	return birthDate
}

// expandSchedule materializes the full template for a child in one batch.
// Only called when the child has zero vaccination rows; the (child, schedule)
// unique index turns a concurrent duplicate expansion into a no-op.
func expandSchedule(child *models.Child) error {
	var schedule []models.VaccinationSchedule
	if err := config.DB.Order("display_order ASC").Find(&schedule).Error; err != nil {
		return err
	}
	if len(schedule) == 0 {
		return nil
	}

	rows := make([]models.Vaccination, 0, len(schedule))
	for _, entry := range schedule {
		scheduleID := entry.ID
		rows = append(rows, models.Vaccination{
			ChildID:    child.ID,
			ScheduleID: &scheduleID,
			Name:       entry.NameVi,
			DueDate:    DueDateFor(child.BirthDate, entry),
			Status:     models.VaccinationPending,
		})
	}

	return config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "child_id"}, {Name: "schedule_id"}},
		DoNothing: true,
	}).Create(&rows).Error
}

// ListVaccinations returns a child's vaccination rows ordered by due date,
// generating them from the schedule on first access.
func ListVaccinations(userID, childID uint) ([]models.Vaccination, error) {
	child, err := OwnedChild(userID, childID, true)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := config.DB.Model(&models.Vaccination{}).
		Where("child_id = ?", child.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		if err := expandSchedule(child); err != nil {
			return nil, err
		}
	}

	var vaccinations []models.Vaccination
	err = config.DB.
		Preload("Schedule").
		Where("child_id = ?", child.ID).
		Order("due_date ASC").
		Find(&vaccinations).Error
	return vaccinations, err
}

func CreateVaccination(userID uint, input VaccinationInput) (*models.Vaccination, error) {
	child, err := OwnedChild(userID, input.ChildID, true)
	if err != nil {
		return nil, err
	}

	dueDate, err := utils.ParseDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.VaccinationPending
	}

	vaccination := models.Vaccination{
		ChildID:    child.ID,
		ScheduleID: input.ScheduleID,
		Name:       input.Name,
		DueDate:    dueDate,
		Status:     status,
		Location:   input.Location,
		Notes:      input.Notes,
	}
	if err := config.DB.Create(&vaccination).Error; err != nil {
		return nil, err
	}
	return &vaccination, nil
}

// ownedVaccination resolves a vaccination through its child's owner.
func ownedVaccination(userID, vaccinationID uint) (*models.Vaccination, error) {
	var vaccination models.Vaccination
	err := config.DB.
		Joins("JOIN children ON children.id = vaccinations.child_id").
		Where("vaccinations.id = ? AND children.user_id = ?", vaccinationID, userID).
		First(&vaccination).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vaccination, nil
}

func UpdateVaccination(userID, vaccinationID uint, input VaccinationUpdateInput) (*models.Vaccination, error) {
	vaccination, err := ownedVaccination(userID, vaccinationID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.CanTransitionVaccination(vaccination.Status, *input.Status) {
			return nil, ErrBadTransition
		}
		vaccination.Status = *input.Status
	}
	if input.Name != nil {
		vaccination.Name = *input.Name
	}
	if input.CompletedDate != nil {
		if *input.CompletedDate == "" {
			vaccination.CompletedDate = nil
		} else {
			completed, err := utils.ParseDate(*input.CompletedDate)
			if err != nil {
				return nil, err
			}
			vaccination.CompletedDate = &completed
		}
	}
	if input.Location != nil {
		vaccination.Location = *input.Location
	}
	if input.Notes != nil {
		vaccination.Notes = *input.Notes
	}
	if input.Reactions != nil {
		vaccination.Reactions = *input.Reactions
	}

	if err := config.DB.Save(vaccination).Error; err != nil {
		return nil, err
	}
	return vaccination, nil
}

func DeleteVaccination(userID, vaccinationID uint) error {
	vaccination, err := ownedVaccination(userID, vaccinationID)
	if err != nil {
		return err
	}
	return config.DB.Delete(vaccination).Error
}
