package bot

import (
	"context"
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

type mockAlerts struct {
	Alerts []models.JobAlert
	nextID int
}

func (m *mockAlerts) Create(_ context.Context, alert models.JobAlert) (models.JobAlert, error) {
	if alert.MinAIScore > 10 {
		return models.JobAlert{}, &services.ValidationError{Reason: "minAiScore is too high"}
	}
	m.nextID++
	alert.ID = m.nextID
	m.Alerts = append(m.Alerts, alert)
	return alert, nil
}

func (m *mockAlerts) ListByEmail(_ context.Context, email string) ([]models.JobAlert, error) {
	result := make([]models.JobAlert, 0)
	for _, alert := range m.Alerts {
		if alert.Email == email {
			result = append(result, alert)
		}
	}
	return result, nil
}

func (m *mockAlerts) Delete(_ context.Context, id int, email string) error {
	for i, alert := range m.Alerts {
		if alert.ID != id {
			continue
		}
		if alert.Email != email {
			return services.ErrForbidden
		}
		m.Alerts = append(m.Alerts[:i], m.Alerts[i+1:]...)
		return nil
	}
	return services.ErrNotFound
}

type mockApi struct {
	SentMessages []botApi.Chattable
	updates      chan botApi.Update
}

func (m *mockApi) Send(chattable botApi.Chattable) (botApi.Message, error) {
	m.SentMessages = append(m.SentMessages, chattable)
	return botApi.Message{}, nil
}

func (m *mockApi) GetUpdatesChan(_ botApi.UpdateConfig) botApi.UpdatesChannel {
	return m.updates
}

func (m *mockApi) StopReceivingUpdates() {}

func (m *mockApi) lastText() string {
	if len(m.SentMessages) == 0 {
		return ""
	}
	msg, _ := m.SentMessages[len(m.SentMessages)-1].(botApi.MessageConfig)
	return msg.Text
}

type memoryData map[string][]byte

func (m memoryData) Save(_ context.Context, id string, data []byte) error {
	m[id] = data
	return nil
}

func (m memoryData) Load(_ context.Context, id string) ([]byte, error) {
	return m[id], nil
}

func (m memoryData) Remove(_ context.Context, id string) error {
	delete(m, id)
	return nil
}

func simulateUserInput(cmd command, inputs []string) {
	for _, input := range inputs {
		cmd.OnUserInput(input)
	}
}

func textMessage(chatID int64, text string) *botApi.Message {
	msg := &botApi.Message{Text: text, Chat: &botApi.Chat{ID: chatID, Type: "private"}}
	if strings.HasPrefix(text, "/") {
		msg.Entities = []botApi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(strings.Fields(text)[0])}}
	}
	return msg
}

func Test_AddAlertCmd_WhenValidData_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	alerts := &mockAlerts{}
	finished := false

	cmd := newAddAlertCommand(&mockApi{}, 42, alerts)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	simulateUserInput(cmd, []string{"Ann@Example.com", "nurse", "Austin", "Remote only", "7", "Weekly"})

	assert.True(finished)
	require.Len(t, alerts.Alerts, 1)
	created := alerts.Alerts[0]
	assert.Equal("ann@example.com", created.Email)
	assert.Equal("nurse", created.Query)
	assert.Equal("Austin", created.Location)
	require.NotNil(t, created.Remote)
	assert.True(*created.Remote)
	assert.Equal(7, created.MinAIScore)
	assert.Equal(models.Weekly, created.Frequency)
	assert.Equal(int64(42), created.TelegramChatID)
}

func Test_AddAlertCmd_WhenInvalidInput_ShouldWaitForValid(t *testing.T) {

	assert := assert.New(t)

	alerts := &mockAlerts{}
	api := &mockApi{}
	finished := false

	cmd := newAddAlertCommand(api, 1, alerts)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	simulateUserInput(cmd, []string{"not an email", "a@b.com"})
	cmd.OnUserInput("-")
	cmd.OnUserInput("-")
	simulateUserInput(cmd, []string{"Sometimes", "Doesn't matter"})
	simulateUserInput(cmd, []string{"11", "ten", "0"})
	assert.False(finished)
	simulateUserInput(cmd, []string{"Hourly", "Daily"})

	assert.True(finished)
	require.Len(t, alerts.Alerts, 1)
	assert.Equal("", alerts.Alerts[0].Query)
	assert.Equal("", alerts.Alerts[0].Location)
	assert.Nil(alerts.Alerts[0].Remote)
	assert.Equal(models.Daily, alerts.Alerts[0].Frequency)
	assert.Contains(api.lastText(), "Alert created")
}

func Test_AddAlertCmd_StateSurvivesRestart(t *testing.T) {

	alerts := &mockAlerts{}
	cmd := newAddAlertCommand(&mockApi{}, 5, alerts)
	cmd.Run()
	simulateUserInput(cmd, []string{"a@b.com", "electrician"})

	state, err := cmd.SaveState()
	require.NoError(t, err)

	restored := newAddAlertCommand(&mockApi{}, 5, alerts)
	require.NoError(t, restored.LoadState(state))
	simulateUserInput(restored, []string{"Denver", "On-site only", "5", "Daily"})

	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, "electrician", alerts.Alerts[0].Query)
	assert.Equal(t, "Denver", alerts.Alerts[0].Location)
	assert.False(t, *alerts.Alerts[0].Remote)
}

func Test_RemoveAlertCmd_WhenValidData_ShouldBeSuccessful(t *testing.T) {

	assert := assert.New(t)

	alerts := &mockAlerts{Alerts: []models.JobAlert{
		{ID: 1, Email: "a@b.com", Query: "web", TelegramChatID: 0},
		{ID: 2, Email: "a@b.com", Query: "plumber", TelegramChatID: 9},
	}}
	finished := false

	cmd := newRemoveAlertCommand(&mockApi{}, 9, alerts)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	cmd.OnUserInput("a@b.com")
	cmd.OnUserInput("1") // only the alert linked to chat 9 is listed

	assert.True(finished)
	require.Len(t, alerts.Alerts, 1)
	assert.Equal(1, alerts.Alerts[0].ID)
}

func Test_RemoveAlertCmd_WhenInvalidInput_ShouldWaitForValid(t *testing.T) {

	assert := assert.New(t)

	alerts := &mockAlerts{Alerts: []models.JobAlert{{ID: 4, Email: "a@b.com", TelegramChatID: 3}}}
	finished := false

	cmd := newRemoveAlertCommand(&mockApi{}, 3, alerts)
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	cmd.OnUserInput("a@b.com")
	simulateUserInput(cmd, []string{"-1", "2", "x"})
	assert.False(finished)
	cmd.OnUserInput("1")

	assert.True(finished)
	assert.Empty(alerts.Alerts)
}

func Test_RemoveAlertCmd_WhenNoChatAlerts_ShouldFinish(t *testing.T) {

	api := &mockApi{}
	finished := false

	cmd := newRemoveAlertCommand(api, 3, &mockAlerts{})
	cmd.WithFinishCallback(func() { finished = true })

	cmd.Run()
	cmd.OnUserInput("a@b.com")

	assert.True(t, finished)
	assert.Contains(t, api.lastText(), "no alerts linked")
}

func Test_ListAlertsCmd_ShouldDescribeAlerts(t *testing.T) {

	remote := true
	api := &mockApi{}
	alerts := &mockAlerts{Alerts: []models.JobAlert{
		{ID: 1, Email: "a@b.com", Query: "nurse", Location: "Austin", Remote: &remote, MinAIScore: 8,
			Frequency: models.Daily, TelegramChatID: 3},
	}}

	cmd := newListAlertsCommand(api, 3, alerts)
	cmd.Run()
	cmd.OnUserInput("a@b.com")

	assert.Contains(t, api.lastText(), "1: \"nurse\", Austin, remote only, AI resistance 8+, daily")
}

func Test_Bot_Run_ShouldDriveDialogAndAnswerStart(t *testing.T) {

	alerts := &mockAlerts{}
	api := &mockApi{updates: make(chan botApi.Update, 16)}
	b, err := newBot(api, alerts, memoryData{})
	require.NoError(t, err)

	for _, text := range []string{"/start", addAlertCommandName, "a@b.com", "welder", "-", "Doesn't matter", "0", "Daily", "hello"} {
		api.updates <- botApi.Update{Message: textMessage(77, text)}
	}
	api.updates <- botApi.Update{Message: &botApi.Message{Text: "ignored", Chat: &botApi.Chat{ID: -5, Type: "group"}}}
	close(api.updates)

	b.Run()

	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, "welder", alerts.Alerts[0].Query)
	assert.Equal(t, int64(77), alerts.Alerts[0].TelegramChatID)
	first, _ := api.SentMessages[0].(botApi.MessageConfig)
	assert.Contains(t, first.Text, "Your chat id is 77")
	assert.Contains(t, api.lastText(), "Pick a command")
	assert.Empty(t, b.userContexts)
}

func Test_Bot_StopAndRun_ShouldResumeDialog(t *testing.T) {

	alerts := &mockAlerts{}
	data := memoryData{}

	api := &mockApi{updates: make(chan botApi.Update, 4)}
	b, err := newBot(api, alerts, data)
	require.NoError(t, err)
	api.updates <- botApi.Update{Message: textMessage(8, addAlertCommandName)}
	api.updates <- botApi.Update{Message: textMessage(8, "a@b.com")}
	close(api.updates)
	b.Run()
	b.Stop()
	require.NotEmpty(t, data[userContextsDataKey])

	restartedApi := &mockApi{updates: make(chan botApi.Update, 8)}
	restarted, err := newBot(restartedApi, alerts, data)
	require.NoError(t, err)
	for _, text := range []string{"chef", "Paris", "On-site only", "3", "Weekly"} {
		restartedApi.updates <- botApi.Update{Message: textMessage(8, text)}
	}
	close(restartedApi.updates)
	restarted.Run()

	require.Len(t, alerts.Alerts, 1)
	assert.Equal(t, "a@b.com", alerts.Alerts[0].Email)
	assert.Equal(t, "chef", alerts.Alerts[0].Query)
	assert.Empty(t, data[userContextsDataKey])
}

func Test_AlertsErrorText_ShouldHideInternalErrors(t *testing.T) {
	assert.Equal(t, "Internal error!", alertsErrorText(fmt.Errorf("db is down")))
	assert.Equal(t, "That alert belongs to another email.", alertsErrorText(services.ErrForbidden))
}
