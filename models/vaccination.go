package models

import "time"

const (
	VaccinationPending   = "pending"
	VaccinationCompleted = "completed"
	VaccinationOverdue   = "overdue"
	VaccinationSkipped   = "skipped"
)

// vaccinationTransitions lists the allowed status changes. Overdue is a
// stored status, never derived from the due date at read time.
var vaccinationTransitions = map[string][]string{
	VaccinationPending:   {VaccinationCompleted, VaccinationOverdue, VaccinationSkipped},
	VaccinationCompleted: {VaccinationPending},
	VaccinationSkipped:   {VaccinationPending},
}

// CanTransitionVaccination reports whether a stored status may move to the
// requested one. Re-asserting the current status is always allowed.
func CanTransitionVaccination(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range vaccinationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Vaccination struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	ChildID       uint                 `gorm:"not null;uniqueIndex:idx_child_schedule" json:"childId"`
	ScheduleID    *uint                `gorm:"uniqueIndex:idx_child_schedule" json:"scheduleId,omitempty"`
	Schedule      *VaccinationSchedule `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	Name          string               `gorm:"not null" json:"name"`
	DueDate       time.Time            `gorm:"not null" json:"dueDate"`
	CompletedDate *time.Time           `json:"completedDate,omitempty"`
	Status        string               `gorm:"size:10;default:pending" json:"status"`
	Location      string               `json:"location,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Reactions     string               `json:"reactions,omitempty"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}
