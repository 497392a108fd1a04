package models

import "time"

// Child is a profile owned by a user. Deleting a child only clears IsActive;
// its vaccination/growth/media rows stay in place.
type Child struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Name           string    `gorm:"not null" json:"name"`
	Nickname       string    `json:"nickname,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	BirthDate      time.Time `gorm:"not null" json:"birthDate"`
	Gender         string    `gorm:"size:10" json:"gender"` // "male" | "female" | "other"
	BloodType      string    `gorm:"size:3" json:"bloodType,omitempty"`
	BirthWeight    *float64  `json:"birthWeight,omitempty"` // kg
	BirthHeight    *float64  `json:"birthHeight,omitempty"` // cm
	BirthCondition string    `gorm:"size:20" json:"birthCondition,omitempty"` // "natural" | "c-section" | "premature"
	IsActive       bool      `gorm:"default:true" json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
