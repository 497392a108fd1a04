package services

import (
	"log"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"
)

// sendReminderEmail is a seam over the SES helper for tests.
var sendReminderEmail = utils.SendReminderEmail

type DispatchOutcome struct {
	ID      uint   `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type DispatchResult struct {
	Message   string            `json:"message,omitempty"`
	Processed int               `json:"processed"`
	Results   []DispatchOutcome `json:"results,omitempty"`
}

// DispatchDueReminders sends one email per due, unsent, non-dismissed
// reminder belonging to users who opted into notifications. Each reminder is
// marked sent only after its own send succeeds; a failed send is logged and
// left for the next cron invocation (sent stays false).
func DispatchDueReminders(now time.Time) (*DispatchResult, error) {
	var reminders []models.Reminder
	err := config.DB.
		Preload("Child").
		Joins("JOIN users ON users.id = reminders.user_id").
		Where("reminders.reminder_date <= ? AND reminders.sent = ? AND reminders.dismissed = ? AND users.email_notifications = ?",
			now, false, false, true).
		Find(&reminders).Error
	if err != nil {
		return nil, err
	}

	if len(reminders) == 0 {
		return &DispatchResult{Message: "No pending reminders to send"}, nil
	}

	result := &DispatchResult{Processed: len(reminders)}
	for _, reminder := range reminders {
		var user models.User
		if err := config.DB.First(&user, reminder.UserID).Error; err != nil {
			result.Results = append(result.Results, DispatchOutcome{ID: reminder.ID, Error: err.Error()})
			continue
		}

		childName := ""
		if reminder.Child != nil {
			childName = reminder.Child.Name
		}

		if err := sendReminderEmail(user.Email, user.Name, childName, reminder.Title, reminder.ReminderDate); err != nil {
			log.Printf("reminder %d: email to %s failed: %v", reminder.ID, user.Email, err)
			result.Results = append(result.Results, DispatchOutcome{ID: reminder.ID, Error: err.Error()})
			continue
		}

		if err := config.DB.Model(&models.Reminder{}).
			Where("id = ?", reminder.ID).
			Update("sent", true).Error; err != nil {
			result.Results = append(result.Results, DispatchOutcome{ID: reminder.ID, Error: err.Error()})
			continue
		}
		result.Results = append(result.Results, DispatchOutcome{ID: reminder.ID, Success: true})
	}

	return result, nil
}
