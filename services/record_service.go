package services

import (
	"errors"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"

	"gorm.io/gorm"
)

// CRUD for the time-series records hanging off a child: growth measurements,
// milestones and feeding logs. Every entry point re-verifies child ownership.

type GrowthInput struct {
	MeasureDate       string   `json:"measureDate" binding:"required"`
	Weight            *float64 `json:"weight"`
	Height            *float64 `json:"height"`
	HeadCircumference *float64 `json:"headCircumference"`
	Notes             string   `json:"notes"`
}

type MilestoneInput struct {
	Title        string `json:"title" binding:"required"`
	Category     string `json:"category" binding:"omitempty,oneof=physical cognitive social language"`
	AchievedDate string `json:"achievedDate" binding:"required"`
	Notes        string `json:"notes"`
}

type FeedingInput struct {
	FeedingDate string   `json:"feedingDate" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=breastfeeding formula solid snack water"`
	FoodItems   string   `json:"foodItems"`
	Amount      *float64 `json:"amount"`
	Unit        string   `json:"unit" binding:"omitempty,oneof=ml oz g serving"`
	Notes       string   `json:"notes"`
}

func ListGrowthRecords(userID, childID uint) ([]models.GrowthRecord, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}
	var records []models.GrowthRecord
	err = config.DB.
		Where("child_id = ?", child.ID).
		Order("measure_date ASC").
		Find(&records).Error
	return records, err
}

func CreateGrowthRecord(userID, childID uint, input GrowthInput) (*models.GrowthRecord, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	measureDate, err := utils.ParseDate(input.MeasureDate)
	if err != nil {
		return nil, err
	}

	record := models.GrowthRecord{
		ChildID:           child.ID,
		MeasureDate:       measureDate,
		Weight:            input.Weight,
		Height:            input.Height,
		HeadCircumference: input.HeadCircumference,
		Notes:             input.Notes,
	}
	if err := config.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func ListMilestones(userID, childID uint) ([]models.Milestone, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}
	var milestones []models.Milestone
	err = config.DB.
		Where("child_id = ?", child.ID).
		Order("achieved_date DESC").
		Find(&milestones).Error
	return milestones, err
}

func CreateMilestone(userID, childID uint, input MilestoneInput) (*models.Milestone, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	achievedDate, err := utils.ParseDate(input.AchievedDate)
	if err != nil {
		return nil, err
	}

	milestone := models.Milestone{
		ChildID:      child.ID,
		Title:        input.Title,
		Category:     input.Category,
		AchievedDate: achievedDate,
		Notes:        input.Notes,
	}
	if err := config.DB.Create(&milestone).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func UpdateMilestone(userID, childID, milestoneID uint, input MilestoneInput) (*models.Milestone, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	var milestone models.Milestone
	err = config.DB.
		Where("id = ? AND child_id = ?", milestoneID, child.ID).
		First(&milestone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	achievedDate, err := utils.ParseDate(input.AchievedDate)
	if err != nil {
		return nil, err
	}

	milestone.Title = input.Title
	milestone.Category = input.Category
	milestone.AchievedDate = achievedDate
	milestone.Notes = input.Notes

	if err := config.DB.Save(&milestone).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

func DeleteMilestone(userID, childID, milestoneID uint) error {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return err
	}
	result := config.DB.
		Where("id = ? AND child_id = ?", milestoneID, child.ID).
		Delete(&models.Milestone{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func ListFeedingLogs(userID, childID uint) ([]models.FeedingLog, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}
	var logs []models.FeedingLog
	err = config.DB.
		Where("child_id = ?", child.ID).
		Order("feeding_date DESC").
		Find(&logs).Error
	return logs, err
}

func CreateFeedingLog(userID, childID uint, input FeedingInput) (*models.FeedingLog, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	feedingDate, err := utils.ParseDate(input.FeedingDate)
	if err != nil {
		return nil, err
	}

	entry := models.FeedingLog{
		ChildID:     child.ID,
		FeedingDate: feedingDate,
		Type:        input.Type,
		FoodItems:   input.FoodItems,
		Amount:      input.Amount,
		Unit:        input.Unit,
		Notes:       input.Notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}
