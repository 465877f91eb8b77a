package events

import (
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"time"
)

var JobsRefreshedTopic = "JobsRefreshedEvent"

type JobsRefreshed struct {
	Jobs        []models.JobListing
	RefreshedAt time.Time
}

var AlertMatchedTopic = "AlertMatchedEvent"

type AlertMatched struct {
	Alert models.JobAlert
	Jobs  []models.JobListing
}

var ContactReceivedTopic = "ContactReceivedEvent"

type ContactReceived struct {
	Message models.ContactMessage
}
