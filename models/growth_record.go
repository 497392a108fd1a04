package models

import "time"

// GrowthRecord stores one measurement session. No uniqueness on the date;
// several measurements on the same day are fine.
type GrowthRecord struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ChildID           uint      `gorm:"index;not null" json:"childId"`
	MeasureDate       time.Time `gorm:"not null" json:"measureDate"`
	Weight            *float64  `json:"weight,omitempty"` // kg
	Height            *float64  `json:"height,omitempty"` // cm
	HeadCircumference *float64  `json:"headCircumference,omitempty"` // cm
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}
