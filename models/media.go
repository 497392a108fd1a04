package models

import "time"

const MediaRelatedGeneral = "general"

// Media references an object in S3. PublicID is the object key so the file
// can be removed when the row is deleted.
type Media struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ChildID     uint       `gorm:"index;not null" json:"childId"`
	URL         string     `gorm:"not null" json:"url"`
	PublicID    string     `gorm:"not null" json:"publicId"`
	Type        string     `gorm:"size:10;default:image" json:"type"`
	Caption     string     `json:"caption,omitempty"`
	TakenDate   *time.Time `json:"takenDate,omitempty"`
	RelatedType string     `gorm:"size:20;default:general" json:"relatedType"`
	CreatedAt   time.Time  `json:"createdAt"`
}
