package services

import (
	"errors"
	"testing"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to        string
	childName string
	title     string
}

func stubMailer(t *testing.T, fail map[string]error) *[]sentMail {
	t.Helper()
	var sent []sentMail
	orig := sendReminderEmail
	sendReminderEmail = func(to, userName, childName, title string, reminderDate time.Time) error {
		if err, ok := fail[title]; ok {
			return err
		}
		sent = append(sent, sentMail{to: to, childName: childName, title: title})
		return nil
	}
	t.Cleanup(func() { sendReminderEmail = orig })
	return &sent
}

func createDueReminder(t *testing.T, userID uint, childID *uint, title string, due time.Time) *models.Reminder {
	t.Helper()
	reminder := models.Reminder{
		UserID:       userID,
		ChildID:      childID,
		Type:         models.ReminderMedication,
		Title:        title,
		ReminderDate: due,
	}
	require.NoError(t, config.DB.Create(&reminder).Error)
	return &reminder
}

func TestDispatchNothingDue(t *testing.T) {
	setupTestDB(t)
	stubMailer(t, nil)

	user := createTestUser(t, "parent@example.com")
	createDueReminder(t, user.ID, nil, "Tương lai", time.Now().Add(24*time.Hour))

	result, err := DispatchDueReminders(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "No pending reminders to send", result.Message)
	assert.Zero(t, result.Processed)
}

func TestDispatchSendsAndMarksSent(t *testing.T) {
	setupTestDB(t)
	sent := stubMailer(t, nil)

	user := createTestUser(t, "parent@example.com")
	child := createTestChild(t, user.ID, "Bé An", localDate(2024, 1, 1))
	reminder := createDueReminder(t, user.ID, &child.ID, "Tiêm chủng: Lao (BCG)", time.Now().Add(-time.Hour))

	result, err := DispatchDueReminders(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	require.Len(t, *sent, 1)
	assert.Equal(t, "parent@example.com", (*sent)[0].to)
	assert.Equal(t, "Bé An", (*sent)[0].childName)

	var reloaded models.Reminder
	require.NoError(t, config.DB.First(&reloaded, reminder.ID).Error)
	assert.True(t, reloaded.Sent)

	// Already-sent reminders stay out of the next run.
	again, err := DispatchDueReminders(time.Now())
	require.NoError(t, err)
	assert.Zero(t, again.Processed)
}

func TestDispatchSkipsOptedOutAndDismissed(t *testing.T) {
	setupTestDB(t)
	sent := stubMailer(t, nil)

	optedOut := createTestUser(t, "quiet@example.com")
	optedOut.EmailNotifications = false
	require.NoError(t, config.DB.Save(optedOut).Error)
	createDueReminder(t, optedOut.ID, nil, "Im lặng", time.Now().Add(-time.Hour))

	subscriber := createTestUser(t, "parent@example.com")
	dismissed := createDueReminder(t, subscriber.ID, nil, "Đã tắt", time.Now().Add(-time.Hour))
	dismissed.Dismissed = true
	require.NoError(t, config.DB.Save(dismissed).Error)
	createDueReminder(t, subscriber.ID, nil, "Còn hiệu lực", time.Now().Add(-time.Hour))

	result, err := DispatchDueReminders(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	require.Len(t, *sent, 1)
	assert.Equal(t, "Còn hiệu lực", (*sent)[0].title)
}

func TestDispatchFailedSendDoesNotBlockOthers(t *testing.T) {
	setupTestDB(t)
	sent := stubMailer(t, map[string]error{"Hỏng": errors.New("ses unavailable")})

	user := createTestUser(t, "parent@example.com")
	failing := createDueReminder(t, user.ID, nil, "Hỏng", time.Now().Add(-2*time.Hour))
	working := createDueReminder(t, user.ID, nil, "Chạy tốt", time.Now().Add(-time.Hour))

	result, err := DispatchDueReminders(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	require.Len(t, *sent, 1)

	outcomes := map[uint]DispatchOutcome{}
	for _, o := range result.Results {
		outcomes[o.ID] = o
	}
	assert.False(t, outcomes[failing.ID].Success)
	assert.NotEmpty(t, outcomes[failing.ID].Error)
	assert.True(t, outcomes[working.ID].Success)

	// The failed reminder keeps sent=false, so the next cron run retries it.
	var reloaded models.Reminder
	require.NoError(t, config.DB.First(&reloaded, failing.ID).Error)
	assert.False(t, reloaded.Sent)

	reloaded = models.Reminder{}
	require.NoError(t, config.DB.First(&reloaded, working.ID).Error)
	assert.True(t, reloaded.Sent)
}
