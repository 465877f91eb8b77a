// Package notify delivers alert matches and contact messages to people.
package notify

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	log "github.com/sirupsen/logrus"
)

// LogNotifier records every notification in the service log.
type LogNotifier struct{}

func NewLogNotifier(bus EventBus.Bus) (*LogNotifier, error) {
	n := &LogNotifier{}
	if err := bus.Subscribe(events.AlertMatchedTopic, n.onAlertMatched); err != nil {
		return nil, err
	}
	if err := bus.Subscribe(events.ContactReceivedTopic, n.onContactReceived); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *LogNotifier) onAlertMatched(event events.AlertMatched) {
	log.WithFields(log.Fields{
		"alert_id": event.Alert.ID,
		"email":    event.Alert.Email,
		"jobs":     len(event.Jobs),
	}).Info("job alert matched")
}

func (n *LogNotifier) onContactReceived(event events.ContactReceived) {
	log.WithFields(log.Fields{
		"contact_id": event.Message.ID,
		"email":      event.Message.Email,
		"subject":    event.Message.Subject,
	}).Info("contact message received")
}
