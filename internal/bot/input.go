package bot

import botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// inputHandler asks for one value. HandleInput returns a reply when the input was rejected.
type inputHandler interface {
	InitMessage() botApi.Chattable
	HandleInput(input string) botApi.Chattable
}
