package bot

import (
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
)

type choice[T any] struct {
	label string
	value T
}

// choiceInput offers a fixed set of answers on the reply keyboard.
type choiceInput[T any] struct {
	chatID   int64
	prompt   string
	choices  []choice[T]
	onFinish func(value T)
}

func (c *choiceInput[T]) InitMessage() botApi.Chattable {
	msg := botApi.NewMessage(c.chatID, c.prompt)
	row := make([]botApi.KeyboardButton, 0, len(c.choices))
	for _, ch := range c.choices {
		row = append(row, botApi.NewKeyboardButton(ch.label))
	}
	msg.ReplyMarkup = botApi.NewReplyKeyboard(row, botApi.NewKeyboardButtonRow(botApi.NewKeyboardButton(backToMenuCommandName)))
	return msg
}

func (c *choiceInput[T]) HandleInput(input string) botApi.Chattable {
	for _, ch := range c.choices {
		if ch.label == input {
			c.onFinish(ch.value)
			return nil
		}
	}
	return botApi.NewMessage(c.chatID, "Please pick one of the buttons.")
}

func newRemoteInput(chatID int64, onFinish func(remote *bool)) *choiceInput[*bool] {
	remote, onSite := true, false
	return &choiceInput[*bool]{
		chatID: chatID,
		prompt: "Should the job be remote?",
		choices: []choice[*bool]{
			{label: "Remote only", value: &remote},
			{label: "On-site only", value: &onSite},
			{label: "Doesn't matter", value: nil},
		},
		onFinish: onFinish,
	}
}

func newFrequencyInput(chatID int64, onFinish func(frequency models.AlertFrequency)) *choiceInput[models.AlertFrequency] {
	return &choiceInput[models.AlertFrequency]{
		chatID: chatID,
		prompt: "How often should I send new matches?",
		choices: []choice[models.AlertFrequency]{
			{label: "Daily", value: models.Daily},
			{label: "Weekly", value: models.Weekly},
		},
		onFinish: onFinish,
	}
}
