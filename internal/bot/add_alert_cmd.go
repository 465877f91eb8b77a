package bot

import (
	"context"
	"encoding/json"
	"errors"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	"github.com/maxaizer/irreplaceable/internal/services"
	log "github.com/sirupsen/logrus"
)

const addAlertCommandName = "New alert"

type addAlertCommand struct {
	api                  apiInterface
	chatID               int64
	alerts               alertManager
	inputHandlers        []inputHandler
	curHandlerIndex      int
	email                string
	query                string
	location             string
	remote               *bool
	minAIScore           int
	frequency            models.AlertFrequency
	finishCallback       func()
	finalMessageKeyboard *botApi.ReplyKeyboardMarkup
}

func newAddAlertCommand(api apiInterface, chatID int64, alerts alertManager) *addAlertCommand {

	cmd := &addAlertCommand{api: api, chatID: chatID, alerts: alerts}

	next := func() { cmd.curHandlerIndex++ }
	cmd.inputHandlers = []inputHandler{
		newEmailInput(chatID, func(email string) { cmd.email = email; next() }),
		newKeywordsInput(chatID, func(query string) { cmd.query = query; next() }),
		newLocationInput(chatID, func(location string) { cmd.location = location; next() }),
		newRemoteInput(chatID, func(remote *bool) { cmd.remote = remote; next() }),
		newMinScoreInput(chatID, func(score int) { cmd.minAIScore = score; next() }),
		newFrequencyInput(chatID, func(frequency models.AlertFrequency) { cmd.frequency = frequency; next() }),
	}
	return cmd
}

func (c *addAlertCommand) WithFinishCallback(callback func()) {
	c.finishCallback = callback
}

func (c *addAlertCommand) WithKeyboardOnFinalMessage(keyboard botApi.ReplyKeyboardMarkup) {
	c.finalMessageKeyboard = &keyboard
}

type addAlertState struct {
	CurHandlerIndex int                   `json:"curHandlerIndex"`
	Email           string                `json:"email"`
	Query           string                `json:"query"`
	Location        string                `json:"location"`
	Remote          *bool                 `json:"remote"`
	MinAIScore      int                   `json:"minAiScore"`
	Frequency       models.AlertFrequency `json:"frequency"`
}

func (c *addAlertCommand) SaveState() ([]byte, error) {
	return json.Marshal(addAlertState{
		CurHandlerIndex: c.curHandlerIndex,
		Email:           c.email,
		Query:           c.query,
		Location:        c.location,
		Remote:          c.remote,
		MinAIScore:      c.minAIScore,
		Frequency:       c.frequency,
	})
}

func (c *addAlertCommand) LoadState(data []byte) error {
	var state addAlertState
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	if state.CurHandlerIndex < 0 || state.CurHandlerIndex >= len(c.inputHandlers) {
		return errors.New("saved dialog step is out of range")
	}

	c.curHandlerIndex = state.CurHandlerIndex
	c.email = state.Email
	c.query = state.Query
	c.location = state.Location
	c.remote = state.Remote
	c.minAIScore = state.MinAIScore
	c.frequency = state.Frequency
	return nil
}

func (c *addAlertCommand) Run() {
	_, _ = sendWithLogError(c.api, c.inputHandlers[0].InitMessage())
}

func (c *addAlertCommand) OnUserInput(input string) {

	previousIndex := c.curHandlerIndex
	msg := c.inputHandlers[c.curHandlerIndex].HandleInput(input)

	handlerChanged := previousIndex != c.curHandlerIndex
	allHandlersFinished := c.curHandlerIndex >= len(c.inputHandlers)

	if !handlerChanged {
		_, _ = sendWithLogError(c.api, msg)
		return
	}

	if !allHandlersFinished {
		_, _ = sendWithLogError(c.api, c.inputHandlers[c.curHandlerIndex].InitMessage())
		return
	}

	c.addAlert()
	if c.finishCallback != nil {
		c.finishCallback()
	}
}

func (c *addAlertCommand) addAlert() {

	_, err := c.alerts.Create(context.Background(), models.JobAlert{
		Email:          c.email,
		Query:          c.query,
		Location:       c.location,
		Remote:         c.remote,
		MinAIScore:     c.minAIScore,
		Frequency:      c.frequency,
		TelegramChatID: c.chatID,
	})

	var validationErr *services.ValidationError
	switch {
	case err == nil:
		_, _ = sendWithLogError(c.api, finalMessage(c.chatID, "Alert created! New matches will be sent here.", c.finalMessageKeyboard))
	case errors.As(err, &validationErr):
		_, _ = sendWithLogError(c.api, finalMessage(c.chatID, "Couldn't create the alert: "+validationErr.Reason, c.finalMessageKeyboard))
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Error(err)
		_, _ = sendWithLogError(c.api, finalMessage(c.chatID, "Internal error!", c.finalMessageKeyboard))
	}
}
