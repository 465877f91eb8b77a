// Package bot runs the Telegram dialog that lets people manage their job alerts from a chat.
package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	log "github.com/sirupsen/logrus"
	"slices"
	"sync"
)

type dataRepository interface {
	Save(ctx context.Context, id string, data []byte) error
	Load(ctx context.Context, id string) ([]byte, error)
	Remove(ctx context.Context, id string) error
}

type alertManager interface {
	Create(ctx context.Context, alert models.JobAlert) (models.JobAlert, error)
	ListByEmail(ctx context.Context, email string) ([]models.JobAlert, error)
	Delete(ctx context.Context, id int, email string) error
}

type botAPI interface {
	apiInterface
	GetUpdatesChan(config botApi.UpdateConfig) botApi.UpdatesChannel
	StopReceivingUpdates()
}

type Bot struct {
	api          botAPI
	mu           sync.Mutex
	userContexts map[int64]*userContext
	alerts       alertManager
	data         dataRepository
}

const (
	backToMenuCommandName = "Back to menu"
	userContextsDataKey   = "user_contexts"
)

var globalCommands = []string{addAlertCommandName, listAlertsCommandName, removeAlertCommandName, backToMenuCommandName}

func NewBot(token string, alerts alertManager, data dataRepository) (*Bot, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	return newBot(api, alerts, data)
}

func newBot(api botAPI, alerts alertManager, data dataRepository) (*Bot, error) {

	if alerts == nil {
		return nil, errors.New("alert manager is nil")
	}

	if data == nil {
		return nil, errors.New("data repository is nil")
	}

	return &Bot{api: api, userContexts: make(map[int64]*userContext), alerts: alerts, data: data}, nil
}

func (b *Bot) Run() {

	err := b.loadUserContexts()
	if err != nil {
		log.Errorf("Error loading user contexts: %v", err)
	}

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.api.GetUpdatesChan(updateConfig)

	for update := range updates {

		if update.Message == nil || !update.Message.Chat.IsPrivate() {
			continue
		}

		b.handleMessage(update.Message)
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()

	err := b.saveUserContexts()
	if err != nil {
		log.Errorf("Error saving user contexts: %v", err)
	}
}

func (b *Bot) handleMessage(message *botApi.Message) {

	b.mu.Lock()
	defer b.mu.Unlock()

	cmd := message.Command()
	if cmd == "" && slices.Contains(globalCommands, message.Text) {
		cmd = message.Text
	}

	if cmd != "" {
		b.handleCommand(message.Chat.ID, cmd)
	} else {
		b.handleInput(message.Chat.ID, message.Text)
	}
}

func (b *Bot) handleCommand(chatID int64, command string) {

	var response botApi.Chattable

	switch command {
	case "start", "chatid", backToMenuCommandName:
		messageResponse := botApi.NewMessage(chatID, welcomeMessage(chatID))
		messageResponse.ReplyMarkup = defaultReplyKeyboard()
		response = messageResponse
		delete(b.userContexts, chatID)
	case addAlertCommandName, listAlertsCommandName, removeAlertCommandName:
		ctx := newUserContext(chatID)
		b.userContexts[chatID] = ctx
		ctx.RunCommand(b.createCommand(command, chatID), command)
		if !ctx.HasRunningCommand() {
			delete(b.userContexts, chatID)
		}
	default:
		response = botApi.NewMessage(chatID, "Unknown command!")
	}

	if response == nil {
		return
	}

	_, _ = sendWithLogError(b.api, response)
}

func (b *Bot) createCommand(name string, chatID int64) command {
	switch name {
	case addAlertCommandName:
		return newAddAlertCommand(b.api, chatID, b.alerts)
	case removeAlertCommandName:
		return newRemoveAlertCommand(b.api, chatID, b.alerts)
	case listAlertsCommandName:
		return newListAlertsCommand(b.api, chatID, b.alerts)
	default:
		return nil
	}
}

func (b *Bot) handleInput(chatID int64, input string) {

	ctx := b.userContexts[chatID]
	if ctx == nil || !ctx.HasRunningCommand() {
		msg := botApi.NewMessage(chatID, "Pick a command from the menu.")
		msg.ReplyMarkup = defaultReplyKeyboard()
		_, _ = sendWithLogError(b.api, msg)
		return
	}

	ctx.OnUserInput(input)
	if !ctx.HasRunningCommand() {
		delete(b.userContexts, chatID)
	}
}

func (b *Bot) saveUserContexts() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.Marshal(b.userContexts)
	if err != nil {
		return err
	}
	return b.data.Save(context.Background(), userContextsDataKey, data)
}

func (b *Bot) loadUserContexts() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := b.data.Load(context.Background(), userContextsDataKey)
	if err != nil || data == nil {
		return err
	}
	if err = b.data.Remove(context.Background(), userContextsDataKey); err != nil {
		return err
	}
	if err = json.Unmarshal(data, &b.userContexts); err != nil {
		return err
	}

	var errs []error
	for chatID, ctx := range b.userContexts {

		if ctx.curCommandName == "" {
			delete(b.userContexts, chatID)
			continue
		}

		cmd := b.createCommand(ctx.curCommandName, ctx.chatID)
		if cmd == nil {
			errs = append(errs, fmt.Errorf("unknown command: %v", ctx.curCommandName))
			delete(b.userContexts, chatID)
			continue
		}

		if saveableCmd, ok := cmd.(saveable); ok {
			if err = saveableCmd.LoadState(ctx.curCommandState); err != nil {
				errs = append(errs, err)
				delete(b.userContexts, chatID)
				continue
			}
		}

		ctx.ResumeCommandAfterBotRestart(cmd)
	}

	return errors.Join(errs...)
}

func welcomeMessage(chatID int64) string {
	return fmt.Sprintf("Hi! I send new AI-resistant jobs that match your alerts.\n"+
		"Your chat id is %d, you can attach it to alerts created on the website too.", chatID)
}

func defaultReplyKeyboard() botApi.ReplyKeyboardMarkup {
	return botApi.NewReplyKeyboard(
		botApi.NewKeyboardButtonRow(
			botApi.NewKeyboardButton(addAlertCommandName),
			botApi.NewKeyboardButton(listAlertsCommandName),
			botApi.NewKeyboardButton(removeAlertCommandName),
		),
	)
}

func keyboardWithExit() botApi.ReplyKeyboardMarkup {
	return botApi.NewReplyKeyboard(
		botApi.NewKeyboardButtonRow(
			botApi.NewKeyboardButton(backToMenuCommandName),
		),
	)
}
