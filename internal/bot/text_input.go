package bot

import (
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"net/mail"
	"strconv"
	"strings"
)

type validation struct {
	function     func(input string) bool
	errorMessage string
}

type textInput struct {
	chatID      int64
	initMessage string
	onFinish    func(input string)
	validations []validation
}

func newTextInput(chatID int64, initMessage string, onFinish func(input string)) *textInput {
	return &textInput{chatID: chatID, initMessage: initMessage, onFinish: onFinish}
}

func (a *textInput) AddValidation(validation validation) {
	a.validations = append(a.validations, validation)
}

func (a *textInput) InitMessage() botApi.Chattable {
	msg := botApi.NewMessage(a.chatID, a.initMessage)
	msg.ReplyMarkup = keyboardWithExit()
	return msg
}

func (a *textInput) HandleInput(input string) botApi.Chattable {

	input = strings.TrimSpace(input)
	for _, v := range a.validations {
		if !v.function(input) {
			return botApi.NewMessage(a.chatID, v.errorMessage)
		}
	}

	a.onFinish(input)
	return nil
}

func newEmailInput(chatID int64, onFinish func(email string)) *textInput {
	input := newTextInput(chatID, "Enter the email your alerts are registered to.", func(email string) {
		onFinish(strings.ToLower(email))
	})
	input.AddValidation(validation{
		function: func(input string) bool {
			addr, err := mail.ParseAddress(input)
			return err == nil && addr.Address == input
		},
		errorMessage: "That doesn't look like an email address.",
	})
	return input
}

func newKeywordsInput(chatID int64, onFinish func(keywords string)) *textInput {
	input := newTextInput(chatID, "Enter keywords for the alert, e.g. \"nurse\" or \"electrician\". "+
		"Send \"-\" to get every new job.", func(keywords string) {
		if keywords == skipValue {
			keywords = ""
		}
		onFinish(keywords)
	})
	input.AddValidation(validation{
		function:     func(input string) bool { return len(input) <= 200 },
		errorMessage: "Keywords must be at most 200 characters.",
	})
	return input
}

func newLocationInput(chatID int64, onFinish func(location string)) *textInput {
	input := newTextInput(chatID, "Enter a city or region, or \"-\" if location doesn't matter.",
		func(location string) {
			if location == skipValue {
				location = ""
			}
			onFinish(location)
		})
	input.AddValidation(validation{
		function:     func(input string) bool { return len(input) <= 200 },
		errorMessage: "Location must be at most 200 characters.",
	})
	return input
}

func newMinScoreInput(chatID int64, onFinish func(score int)) *textInput {
	input := newTextInput(chatID, "Minimum AI-resistance score from 0 to 10 (0 for any).", func(input string) {
		score, _ := strconv.Atoi(input)
		onFinish(score)
	})
	input.AddValidation(validation{
		function: func(input string) bool {
			score, err := strconv.Atoi(input)
			return err == nil && score >= 0 && score <= 10
		},
		errorMessage: "Enter a number from 0 to 10.",
	})
	return input
}

const skipValue = "-"
