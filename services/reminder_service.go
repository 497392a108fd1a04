package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Synced reminders fire this many days ahead of the vaccination due date.
const reminderLeadDays = 3

type ReminderInput struct {
	Type         string `json:"type" binding:"required,oneof=vaccination medical_visit medication birthday milestone"`
	Title        string `json:"title" binding:"required"`
	ReminderDate string `json:"reminderDate" binding:"required"`
	ChildID      *uint  `json:"childId"`
	RelatedID    *uint  `json:"relatedId"`
}

type ReminderUpdateInput struct {
	Type         *string `json:"type" binding:"omitempty,oneof=vaccination medical_visit medication birthday milestone"`
	Title        *string `json:"title" binding:"omitempty,min=1"`
	ReminderDate *string `json:"reminderDate"`
	Dismissed    *bool   `json:"dismissed"`
	ChildID      *uint   `json:"childId"`
	RelatedID    *uint   `json:"relatedId"`
}

// ReminderView is a reminder plus its read-time bucket.
type ReminderView struct {
	models.Reminder
	Bucket string `json:"bucket"`
}

// SyncResult reports what a vaccination sync did. The three zero-result
// causes each carry their own message.
type SyncResult struct {
	Message string `json:"message"`
	Created int    `json:"created"`
}

func ListReminders(userID uint, childID *uint, showDismissed bool, now time.Time) ([]ReminderView, error) {
	q := config.DB.Preload("Child").Where("user_id = ?", userID)
	if childID != nil {
		q = q.Where("child_id = ?", *childID)
	}
	if !showDismissed {
		q = q.Where("dismissed = ?", false)
	}

	var reminders []models.Reminder
	if err := q.Order("reminder_date ASC").Find(&reminders).Error; err != nil {
		return nil, err
	}

	views := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, ReminderView{Reminder: r, Bucket: r.Bucket(now)})
	}
	return views, nil
}

func CreateReminder(userID uint, input ReminderInput) (*models.Reminder, error) {
	reminderDate, err := utils.ParseDate(input.ReminderDate)
	if err != nil {
		return nil, err
	}

	if input.ChildID != nil {
		if _, err := OwnedChild(userID, *input.ChildID, true); err != nil {
			return nil, err
		}
	}

	reminder := models.Reminder{
		UserID:       userID,
		ChildID:      input.ChildID,
		Type:         input.Type,
		Title:        input.Title,
		ReminderDate: reminderDate,
		RelatedID:    input.RelatedID,
	}
	if err := config.DB.Create(&reminder).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Preload("Child").First(&reminder, reminder.ID).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}

func ownedReminder(userID, reminderID uint) (*models.Reminder, error) {
	var reminder models.Reminder
	err := config.DB.
		Where("id = ? AND user_id = ?", reminderID, userID).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reminder, nil
}

func UpdateReminder(userID, reminderID uint, input ReminderUpdateInput) (*models.Reminder, error) {
	reminder, err := ownedReminder(userID, reminderID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		reminder.Type = *input.Type
	}
	if input.Title != nil {
		reminder.Title = *input.Title
	}
	if input.ReminderDate != nil {
		date, err := utils.ParseDate(*input.ReminderDate)
		if err != nil {
			return nil, err
		}
		reminder.ReminderDate = date
	}
	if input.Dismissed != nil {
		reminder.Dismissed = *input.Dismissed
	}
	if input.ChildID != nil {
		reminder.ChildID = input.ChildID
	}
	if input.RelatedID != nil {
		reminder.RelatedID = input.RelatedID
	}

	if err := config.DB.Save(reminder).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Preload("Child").First(reminder, reminder.ID).Error; err != nil {
		return nil, err
	}
	return reminder, nil
}

func DeleteReminder(userID, reminderID uint) error {
	reminder, err := ownedReminder(userID, reminderID)
	if err != nil {
		return err
	}
	return config.DB.Delete(reminder).Error
}

// SyncVaccinationReminders creates one reminder per pending vaccination that
// does not already have one. Safe to re-run: the set difference plus the
// (user, type, related) unique index guarantee nothing is duplicated.
func SyncVaccinationReminders(userID uint, childID *uint) (*SyncResult, error) {
	q := config.DB.Where("user_id = ? AND is_active = ?", userID, true)
	if childID != nil {
		q = q.Where("id = ?", *childID)
	}
	var children []models.Child
	if err := q.Find(&children).Error; err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return &SyncResult{Message: "Không có thông tin bé", Created: 0}, nil
	}

	childIDs := make([]uint, 0, len(children))
	for _, c := range children {
		childIDs = append(childIDs, c.ID)
	}

	var vaccinations []models.Vaccination
	err := config.DB.
		Where("child_id IN ? AND status = ?", childIDs, models.VaccinationPending).
		Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	if len(vaccinations) == 0 {
		return &SyncResult{Message: "Không có lịch tiêm chủng nào đang chờ", Created: 0}, nil
	}

	vaccinationIDs := make([]uint, 0, len(vaccinations))
	for _, v := range vaccinations {
		vaccinationIDs = append(vaccinationIDs, v.ID)
	}

	var existing []models.Reminder
	err = config.DB.
		Where("user_id = ? AND type = ? AND related_id IN ?", userID, models.ReminderVaccination, vaccinationIDs).
		Find(&existing).Error
	if err != nil {
		return nil, err
	}

	covered := make(map[uint]bool, len(existing))
	for _, r := range existing {
		if r.RelatedID != nil {
			covered[*r.RelatedID] = true
		}
	}

	reminders := make([]models.Reminder, 0, len(vaccinations))
	for _, v := range vaccinations {
		if covered[v.ID] {
			continue
		}
		cid := v.ChildID
		relatedID := v.ID
		reminders = append(reminders, models.Reminder{
			UserID:       userID,
			ChildID:      &cid,
			Type:         models.ReminderVaccination,
			Title:        fmt.Sprintf("Tiêm chủng: %s", v.Name),
			ReminderDate: v.DueDate.AddDate(0, 0, -reminderLeadDays),
			RelatedID:    &relatedID,
		})
	}

	if len(reminders) == 0 {
		return &SyncResult{Message: "Tất cả lịch tiêm đã có nhắc nhở", Created: 0}, nil
	}

	created, err := insertVaccinationReminders(reminders)
	if err != nil {
		return nil, err
	}

	return &SyncResult{
		Message: fmt.Sprintf("Đã tạo %d nhắc nhở tiêm chủng", created),
		Created: created,
	}, nil
}

// insertVaccinationReminders batch-inserts, letting the (user, type, related)
// unique index swallow rows another request created first. The returned count
// only covers rows actually written.
func insertVaccinationReminders(reminders []models.Reminder) (int, error) {
	res := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}, {Name: "related_id"}},
		DoNothing: true,
	}).Create(&reminders)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
