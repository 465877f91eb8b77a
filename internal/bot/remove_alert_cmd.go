package bot

import (
	"context"
	"errors"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	"github.com/maxaizer/irreplaceable/internal/services"
	log "github.com/sirupsen/logrus"
)

const removeAlertCommandName = "Remove alert"

type removeAlertCommand struct {
	api                  apiInterface
	chatID               int64
	alerts               alertManager
	input                inputHandler
	email                string
	finishCallback       func()
	finalMessageKeyboard *botApi.ReplyKeyboardMarkup
}

func newRemoveAlertCommand(api apiInterface, chatID int64, alerts alertManager) *removeAlertCommand {
	cmd := &removeAlertCommand{api: api, chatID: chatID, alerts: alerts}
	cmd.input = newEmailInput(chatID, cmd.onEmail)
	return cmd
}

func (c *removeAlertCommand) WithFinishCallback(callback func()) {
	c.finishCallback = callback
}

func (c *removeAlertCommand) WithKeyboardOnFinalMessage(keyboard botApi.ReplyKeyboardMarkup) {
	c.finalMessageKeyboard = &keyboard
}

func (c *removeAlertCommand) Run() {
	_, _ = sendWithLogError(c.api, c.input.InitMessage())
}

func (c *removeAlertCommand) OnUserInput(input string) {
	if msg := c.input.HandleInput(input); msg != nil {
		_, _ = sendWithLogError(c.api, msg)
	}
}

func (c *removeAlertCommand) onEmail(email string) {

	alerts, err := chatAlerts(context.Background(), c.alerts, email, c.chatID)
	if err != nil {
		c.finish(alertsErrorText(err))
		return
	}

	c.email = email
	c.input = newAlertInput(c.chatID, alerts, c.removeAlert)
	_, _ = sendWithLogError(c.api, c.input.InitMessage())
}

func (c *removeAlertCommand) removeAlert(alert models.JobAlert) {

	if err := c.alerts.Delete(context.Background(), alert.ID, c.email); err != nil {
		c.finish(alertsErrorText(err))
		return
	}
	c.finish("Alert removed!")
}

func (c *removeAlertCommand) finish(text string) {
	_, _ = sendWithLogError(c.api, finalMessage(c.chatID, text, c.finalMessageKeyboard))
	if c.finishCallback != nil {
		c.finishCallback()
	}
}

const listAlertsCommandName = "My alerts"

type listAlertsCommand struct {
	api                  apiInterface
	chatID               int64
	alerts               alertManager
	input                inputHandler
	finishCallback       func()
	finalMessageKeyboard *botApi.ReplyKeyboardMarkup
}

func newListAlertsCommand(api apiInterface, chatID int64, alerts alertManager) *listAlertsCommand {
	cmd := &listAlertsCommand{api: api, chatID: chatID, alerts: alerts}
	cmd.input = newEmailInput(chatID, cmd.listAlerts)
	return cmd
}

func (c *listAlertsCommand) WithFinishCallback(callback func()) {
	c.finishCallback = callback
}

func (c *listAlertsCommand) WithKeyboardOnFinalMessage(keyboard botApi.ReplyKeyboardMarkup) {
	c.finalMessageKeyboard = &keyboard
}

func (c *listAlertsCommand) Run() {
	_, _ = sendWithLogError(c.api, c.input.InitMessage())
}

func (c *listAlertsCommand) OnUserInput(input string) {
	if msg := c.input.HandleInput(input); msg != nil {
		_, _ = sendWithLogError(c.api, msg)
	}
}

func (c *listAlertsCommand) listAlerts(email string) {

	text := ""
	alerts, err := chatAlerts(context.Background(), c.alerts, email, c.chatID)
	if err != nil {
		text = alertsErrorText(err)
	} else {
		text = "Your alerts:\n" + alertsToText(alerts)
	}

	_, _ = sendWithLogError(c.api, finalMessage(c.chatID, text, c.finalMessageKeyboard))
	if c.finishCallback != nil {
		c.finishCallback()
	}
}

func alertsErrorText(err error) string {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, errorNoChatAlerts):
		return "You have no alerts linked to this chat."
	case errors.Is(err, services.ErrNotFound):
		return "That alert no longer exists."
	case errors.Is(err, services.ErrForbidden):
		return "That alert belongs to another email."
	case errors.As(err, &validationErr):
		return validationErr.Reason
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Error(err)
		return "Internal error!"
	}
}
