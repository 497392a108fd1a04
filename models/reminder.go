package models

import "time"

const (
	ReminderVaccination  = "vaccination"
	ReminderMedicalVisit = "medical_visit"
	ReminderMedication   = "medication"
	ReminderBirthday     = "birthday"
	ReminderMilestone    = "milestone"
)

// Reminder buckets derived at read time, never stored.
const (
	ReminderBucketOverdue   = "overdue"
	ReminderBucketUpcoming  = "upcoming"
	ReminderBucketCompleted = "completed"
)

// Reminder belongs to a user, optionally points at a child and, for synced
// vaccination reminders, at the vaccination row via RelatedID. The composite
// unique index is what keeps the vaccination sync idempotent under races.
type Reminder struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;uniqueIndex:idx_user_type_related" json:"userId"`
	ChildID      *uint      `gorm:"index" json:"childId,omitempty"`
	Child        *Child     `gorm:"foreignKey:ChildID" json:"child,omitempty"`
	Type         string     `gorm:"size:16;not null;uniqueIndex:idx_user_type_related" json:"type"`
	Title        string     `gorm:"not null" json:"title"`
	ReminderDate time.Time  `gorm:"not null" json:"reminderDate"`
	RelatedID    *uint      `gorm:"uniqueIndex:idx_user_type_related" json:"relatedId,omitempty"`
	Sent         bool       `gorm:"default:false" json:"sent"`
	Dismissed    bool       `gorm:"default:false" json:"dismissed"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Bucket classifies a reminder relative to now.
func (r *Reminder) Bucket(now time.Time) string {
	switch {
	case r.Dismissed:
		return ReminderBucketCompleted
	case r.ReminderDate.Before(now):
		return ReminderBucketOverdue
	default:
		return ReminderBucketUpcoming
	}
}
