package notify

import (
	"fmt"
	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	log "github.com/sirupsen/logrus"
	"strings"
)

type telegramAPI interface {
	Send(c botApi.Chattable) (botApi.Message, error)
}

// TelegramNotifier sends alert matches to the alert's chat and contact messages to the admin chat.
type TelegramNotifier struct {
	api         telegramAPI
	adminChatID int64
}

func NewTelegramNotifier(token string, adminChatID int64, bus EventBus.Bus) (*TelegramNotifier, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	if err = botApi.SetLogger(log.StandardLogger()); err != nil {
		return nil, err
	}

	return newTelegramNotifier(api, adminChatID, bus)
}

func newTelegramNotifier(api telegramAPI, adminChatID int64, bus EventBus.Bus) (*TelegramNotifier, error) {
	n := &TelegramNotifier{api: api, adminChatID: adminChatID}

	if err := bus.Subscribe(events.AlertMatchedTopic, n.onAlertMatched); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ContactReceivedTopic, n.onContactReceived); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *TelegramNotifier) onAlertMatched(event events.AlertMatched) {
	if event.Alert.TelegramChatID == 0 {
		return
	}
	n.send(event.Alert.TelegramChatID, alertMessage(event.Alert, event.Jobs))
}

func (n *TelegramNotifier) onContactReceived(event events.ContactReceived) {
	if n.adminChatID == 0 {
		return
	}
	n.send(n.adminChatID, contactMessage(event.Message))
}

func (n *TelegramNotifier) send(chatID int64, text string) {
	msg := botApi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.api.Send(msg); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).Errorf("error occured while sending message: %v", err)
	}
}

func alertMessage(alert models.JobAlert, jobs []models.JobListing) string {
	var sb strings.Builder
	title := alert.Query
	if title == "" {
		title = "all jobs"
	}
	fmt.Fprintf(&sb, "New jobs for your alert \"%s\":\n", title)
	for _, job := range jobs {
		fmt.Fprintf(&sb, "\n%s at %s (AI resistance %d/10)", job.Title, job.Company, job.AIResistanceScore)
		if job.Location != "" {
			fmt.Fprintf(&sb, ", %s", job.Location)
		}
		if job.SourceURL != "" {
			fmt.Fprintf(&sb, "\n%s", job.SourceURL)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func contactMessage(message models.ContactMessage) string {
	return fmt.Sprintf("Contact form message #%d\nFrom: %s <%s>\nSubject: %s\n\n%s",
		message.ID, message.Name, message.Email, message.Subject, message.Message)
}
