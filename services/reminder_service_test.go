package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncWithoutChildren(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")

	result, err := SyncVaccinationReminders(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, "Không có thông tin bé", result.Message)
}

func TestSyncWithoutPendingVaccinations(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")
	createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))

	// Child exists but no vaccination rows were ever generated.
	result, err := SyncVaccinationReminders(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, "Không có lịch tiêm chủng nào đang chờ", result.Message)
}

func TestSyncCreatesOneReminderPerPendingVaccination(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")
	child := createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))

	vaccinations, err := ListVaccinations(user.ID, child.ID)
	require.NoError(t, err)

	result, err := SyncVaccinationReminders(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, len(vaccinations), result.Created)
	assert.Equal(t, fmt.Sprintf("Đã tạo %d nhắc nhở tiêm chủng", len(vaccinations)), result.Message)

	var reminders []models.Reminder
	require.NoError(t, config.DB.Where("user_id = ?", user.ID).Find(&reminders).Error)
	require.Len(t, reminders, len(vaccinations))

	dueByID := map[uint]models.Vaccination{}
	for _, v := range vaccinations {
		dueByID[v.ID] = v
	}
	for _, r := range reminders {
		assert.Equal(t, models.ReminderVaccination, r.Type)
		assert.False(t, r.Sent)
		assert.False(t, r.Dismissed)
		require.NotNil(t, r.RelatedID)
		v, ok := dueByID[*r.RelatedID]
		require.True(t, ok)
		assert.Equal(t, "Tiêm chủng: "+v.Name, r.Title)
		assert.Equal(t, v.DueDate.AddDate(0, 0, -3), r.ReminderDate)
	}
}

func TestSyncIsIdempotent(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")
	child := createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))

	_, err := ListVaccinations(user.ID, child.ID)
	require.NoError(t, err)

	first, err := SyncVaccinationReminders(user.ID, nil)
	require.NoError(t, err)
	require.NotZero(t, first.Created)

	second, err := SyncVaccinationReminders(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, "Tất cả lịch tiêm đã có nhắc nhở", second.Message)

	var count int64
	require.NoError(t, config.DB.Model(&models.Reminder{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, first.Created, count)
}

func TestSyncSkipsNonPendingVaccinations(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")
	child := createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))

	vaccinations, err := ListVaccinations(user.ID, child.ID)
	require.NoError(t, err)

	completed := models.VaccinationCompleted
	_, err = UpdateVaccination(user.ID, vaccinations[0].ID, VaccinationUpdateInput{Status: &completed})
	require.NoError(t, err)

	result, err := SyncVaccinationReminders(user.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, len(vaccinations)-1, result.Created)
}

func TestSyncWithChildFilter(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")
	first := createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))
	second := createTestChild(t, user.ID, "Bé Bình", localDate(2023, 6, 1))

	_, err := ListVaccinations(user.ID, first.ID)
	require.NoError(t, err)
	_, err = ListVaccinations(user.ID, second.ID)
	require.NoError(t, err)

	result, err := SyncVaccinationReminders(user.ID, &first.ID)
	require.NoError(t, err)

	var count int64
	require.NoError(t, config.DB.Model(&models.Reminder{}).
		Where("user_id = ? AND child_id = ?", user.ID, second.ID).
		Count(&count).Error)
	assert.Zero(t, count)
	assert.NotZero(t, result.Created)
}

func TestSyncCountSkipsRowsAnotherRequestWon(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")
	child := createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))

	// A concurrent sync already wrote the reminder for vaccination 1; our
	// batch still carries it, the insert must skip it and not count it.
	relatedA, relatedB := uint(1), uint(2)
	existing := models.Reminder{
		UserID:       user.ID,
		ChildID:      &child.ID,
		Type:         models.ReminderVaccination,
		Title:        "Tiêm chủng: Lao (BCG)",
		ReminderDate: localDate(2024, 1, 5),
		RelatedID:    &relatedA,
	}
	require.NoError(t, config.DB.Create(&existing).Error)

	created, err := insertVaccinationReminders([]models.Reminder{
		{
			UserID:       user.ID,
			ChildID:      &child.ID,
			Type:         models.ReminderVaccination,
			Title:        "Tiêm chủng: Lao (BCG)",
			ReminderDate: localDate(2024, 1, 5),
			RelatedID:    &relatedA,
		},
		{
			UserID:       user.ID,
			ChildID:      &child.ID,
			Type:         models.ReminderVaccination,
			Title:        "Tiêm chủng: Viêm gan B (mũi 1)",
			ReminderDate: localDate(2024, 1, 5),
			RelatedID:    &relatedB,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var count int64
	require.NoError(t, config.DB.Model(&models.Reminder{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestReminderBuckets(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	overdue := models.Reminder{ReminderDate: now.Add(-time.Hour)}
	upcoming := models.Reminder{ReminderDate: now.Add(time.Hour)}
	dismissed := models.Reminder{ReminderDate: now.Add(-time.Hour), Dismissed: true}

	assert.Equal(t, models.ReminderBucketOverdue, overdue.Bucket(now))
	assert.Equal(t, models.ReminderBucketUpcoming, upcoming.Bucket(now))
	assert.Equal(t, models.ReminderBucketCompleted, dismissed.Bucket(now))
}

func TestListRemindersHidesDismissedByDefault(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "parent@example.com")

	_, err := CreateReminder(user.ID, ReminderInput{
		Type:         models.ReminderMedication,
		Title:        "Uống vitamin D",
		ReminderDate: "2024-06-01",
	})
	require.NoError(t, err)

	visible, err := CreateReminder(user.ID, ReminderInput{
		Type:         models.ReminderBirthday,
		Title:        "Sinh nhật bé",
		ReminderDate: "2024-07-01",
	})
	require.NoError(t, err)

	dismissed := true
	_, err = UpdateReminder(user.ID, visible.ID, ReminderUpdateInput{Dismissed: &dismissed})
	require.NoError(t, err)

	now := time.Now()
	defaultList, err := ListReminders(user.ID, nil, false, now)
	require.NoError(t, err)
	assert.Len(t, defaultList, 1)

	fullList, err := ListReminders(user.ID, nil, true, now)
	require.NoError(t, err)
	assert.Len(t, fullList, 2)
}

func TestReminderOwnership(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	stranger := createTestUser(t, "stranger@example.com")

	reminder, err := CreateReminder(owner.ID, ReminderInput{
		Type:         models.ReminderMedication,
		Title:        "Uống vitamin D",
		ReminderDate: "2024-06-01",
	})
	require.NoError(t, err)

	title := "hacked"
	_, err = UpdateReminder(stranger.ID, reminder.ID, ReminderUpdateInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, DeleteReminder(stranger.ID, reminder.ID), ErrNotFound)

	require.NoError(t, DeleteReminder(owner.ID, reminder.ID))
}

func TestCreateReminderRejectsForeignChild(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "owner@example.com")
	stranger := createTestUser(t, "stranger@example.com")
	child := createTestChild(t, owner.ID, "Bé An", localDate(2024, 1, 1))

	_, err := CreateReminder(stranger.ID, ReminderInput{
		Type:         models.ReminderBirthday,
		Title:        "Sinh nhật bé",
		ReminderDate: "2024-07-01",
		ChildID:      &child.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
