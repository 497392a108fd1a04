package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func InitSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// SendHTMLEmail is the generic SES sender.
func SendHTMLEmail(to, subject, html string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data: aws.String(html),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// ReminderEmailHTML builds the notification body. Copy and palette follow the
// BabyVerse web app.
func ReminderEmailHTML(userName, childName, title string, reminderDate time.Time) string {
	if userName == "" {
		userName = "ba mẹ"
	}
	if childName == "" {
		childName = "con"
	}
	dateStr := FormatDateTimeVi(reminderDate)

	return fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #f0f0f0; border-radius: 8px;">
    <h2 style="color: #db2777;">🔔 Nhắc nhở từ BabyVerse</h2>
    <p>Chào %s,</p>
    <p>Bạn có một nhắc nhở mới cho bé <strong>%s</strong>:</p>
    <div style="background-color: #fce7f3; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-size: 18px; font-weight: bold; color: #9d174d;">%s</p>
        <p style="margin: 5px 0 0 0; color: #be185d;">⏰ Thời gian: %s</p>
    </div>
    <p>Chúc bé yêu luôn khỏe mạnh! ❤️</p>
    <hr style="border: none; border-top: 1px solid #f0f0f0; margin: 20px 0;" />
    <p style="font-size: 12px; color: #999; text-align: center;">
        Bạn nhận được email này vì bạn đã bật thông báo trong ứng dụng BabyVerse.
    </p>
</div>`, userName, childName, title, dateStr)
}

// SendReminderEmail delivers one reminder notification.
func SendReminderEmail(to, userName, childName, title string, reminderDate time.Time) error {
	subject := fmt.Sprintf("🔔 Nhắc nhở: %s - BabyVerse", title)
	html := ReminderEmailHTML(userName, childName, title, reminderDate)
	return SendHTMLEmail(to, subject, html)
}
