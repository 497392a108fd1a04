package models

import "time"

type Milestone struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ChildID      uint      `gorm:"index;not null" json:"childId"`
	Title        string    `gorm:"not null" json:"title"`
	Category     string    `gorm:"size:10" json:"category,omitempty"` // physical | cognitive | social | language
	AchievedDate time.Time `gorm:"not null" json:"achievedDate"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
