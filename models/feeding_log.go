package models

import "time"

// FeedingLog is one nutrition entry for a child.
type FeedingLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChildID     uint      `gorm:"index;not null" json:"childId"`
	FeedingDate time.Time `gorm:"not null" json:"feedingDate"`
	Type        string    `gorm:"size:16;not null" json:"type"` // breastfeeding | formula | solid | snack | water
	FoodItems   string    `json:"foodItems,omitempty"`
	Amount      *float64  `json:"amount,omitempty"`
	Unit        string    `gorm:"size:8" json:"unit,omitempty"` // ml | oz | g | serving
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
