package bot

import (
	"context"
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

var errorNoChatAlerts = errors.New("no alerts are linked to this chat")

// chatAlerts returns the alerts of email that deliver to chatID.
// Alerts created on the website without this chat are not managed from Telegram.
func chatAlerts(ctx context.Context, alerts alertManager, email string, chatID int64) ([]models.JobAlert, error) {
	all, err := alerts.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	result := make([]models.JobAlert, 0, len(all))
	for _, alert := range all {
		if alert.TelegramChatID == chatID {
			result = append(result, alert)
		}
	}
	if len(result) == 0 {
		return nil, errorNoChatAlerts
	}
	return result, nil
}

type alertInput struct {
	chatID     int64
	chatAlerts []models.JobAlert
	onFinish   func(alert models.JobAlert)
}

func newAlertInput(chatID int64, alerts []models.JobAlert, onFinish func(alert models.JobAlert)) *alertInput {
	return &alertInput{chatID: chatID, chatAlerts: alerts, onFinish: onFinish}
}

func (a *alertInput) InitMessage() botApi.Chattable {
	msg := botApi.NewMessage(a.chatID, "Enter the alert number:\n"+alertsToText(a.chatAlerts))
	msg.ReplyMarkup = keyboardWithExit()
	return msg
}

func (a *alertInput) HandleInput(input string) botApi.Chattable {

	number, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return botApi.NewMessage(a.chatID, "Enter a number!")
	}

	if number < 1 || number > len(a.chatAlerts) {
		return botApi.NewMessage(a.chatID, "There is no alert with that number.")
	}

	a.onFinish(a.chatAlerts[number-1])
	return nil
}

func alertsToText(alerts []models.JobAlert) string {
	var sb strings.Builder
	for i, alert := range alerts {
		query := alert.Query
		if query == "" {
			query = "all jobs"
		}
		fmt.Fprintf(&sb, "%d: \"%s\"", i+1, query)

		if alert.Location != "" {
			fmt.Fprintf(&sb, ", %s", alert.Location)
		}
		if alert.Remote != nil {
			if *alert.Remote {
				sb.WriteString(", remote only")
			} else {
				sb.WriteString(", on-site only")
			}
		}
		if alert.MinAIScore > 0 {
			fmt.Fprintf(&sb, ", AI resistance %d+", alert.MinAIScore)
		}
		fmt.Fprintf(&sb, ", %s, created %s\n", alert.Frequency, alert.CreatedAt.Format("2006-01-02"))
	}
	return sb.String()
}
