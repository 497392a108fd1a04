package models

// VaccinationSchedule is a read-only reference row from the Vietnam MoH
// schedule, seeded once at startup. Exactly one of AgeWeeks/AgeMonths is set.
type VaccinationSchedule struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	NameVi      string `gorm:"not null" json:"nameVi"`
	AgeWeeks    *int   `json:"ageWeeks,omitempty"`
	AgeMonths   *int   `json:"ageMonths,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required"`
	Order       int    `gorm:"column:display_order" json:"order"`
}
