package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/logger"
	log "github.com/sirupsen/logrus"
	"strings"
	"time"
)

const (
	maxAlertsPerEmail = 10
	maxJobsPerAlert   = 10
	alertsPageSize    = 100
)

type alertRepository interface {
	Add(ctx context.Context, alert *models.JobAlert) error
	GetByEmail(ctx context.Context, email string) ([]models.JobAlert, error)
	GetByID(ctx context.Context, id int) (*models.JobAlert, error)
	GetActive(ctx context.Context, limit int, offset int) ([]models.JobAlert, error)
	UpdateLastNotified(ctx context.Context, id int, notifiedAt time.Time) error
	Remove(ctx context.Context, id int) error
}

type AlertService struct {
	bus    EventBus.Bus
	alerts alertRepository
	now    func() time.Time
}

// NewAlertService matches active alerts against every refreshed feed.
func NewAlertService(bus EventBus.Bus, alerts alertRepository) (*AlertService, error) {
	s := &AlertService{bus: bus, alerts: alerts, now: time.Now}
	if err := bus.SubscribeAsync(events.JobsRefreshedTopic, s.onJobsRefreshed, true); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AlertService) Create(ctx context.Context, alert models.JobAlert) (models.JobAlert, error) {
	alert.ID = 0
	alert.Email = normalizeEmail(alert.Email)
	alert.Query = strings.TrimSpace(alert.Query)
	alert.Location = strings.TrimSpace(alert.Location)
	alert.Active = true
	alert.LastNotifiedAt = nil
	if alert.Frequency == "" {
		alert.Frequency = models.Daily
	}
	if err := validateStruct(alert); err != nil {
		return models.JobAlert{}, err
	}

	existing, err := s.alerts.GetByEmail(ctx, alert.Email)
	if err != nil {
		return models.JobAlert{}, err
	}
	if len(existing) >= maxAlertsPerEmail {
		return models.JobAlert{}, newValidationError("no more than %d alerts per email", maxAlertsPerEmail)
	}

	alert.CreatedAt = s.now().UTC()
	if err = s.alerts.Add(ctx, &alert); err != nil {
		return models.JobAlert{}, err
	}
	return alert, nil
}

func (s *AlertService) ListByEmail(ctx context.Context, email string) ([]models.JobAlert, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, newValidationError("email is required")
	}
	return s.alerts.GetByEmail(ctx, email)
}

// Delete removes the alert only on behalf of its owner.
func (s *AlertService) Delete(ctx context.Context, id int, email string) error {
	alert, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if alert == nil {
		return ErrNotFound
	}
	if alert.Email != normalizeEmail(email) {
		return ErrForbidden
	}
	return s.alerts.Remove(ctx, id)
}

func (s *AlertService) onJobsRefreshed(event events.JobsRefreshed) {
	ctx := context.Background()
	now := s.now()
	notified := 0

	for offset := 0; ; offset += alertsPageSize {
		alerts, err := s.alerts.GetActive(ctx, alertsPageSize, offset)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get active alerts: %v", err)
			return
		}

		for _, alert := range alerts {
			if !alert.IsDue(now) {
				continue
			}
			jobs := matchingJobs(alert, event.Jobs)
			if len(jobs) == 0 {
				continue
			}

			s.bus.Publish(events.AlertMatchedTopic, events.AlertMatched{Alert: alert, Jobs: jobs})
			notified++
			if err = s.alerts.UpdateLastNotified(ctx, alert.ID, now); err != nil {
				log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
					Errorf("failed to update alert %d notification time: %v", alert.ID, err)
			}
		}

		if len(alerts) < alertsPageSize {
			break
		}
	}

	log.Infof("%d job alerts matched the refreshed feed", notified)
}

func matchingJobs(alert models.JobAlert, jobs []models.JobListing) []models.JobListing {
	since := alert.CreatedAt
	if alert.LastNotifiedAt != nil {
		since = *alert.LastNotifiedAt
	}
	// listings posted on the day of the last notification may not have been seen yet
	since = since.Truncate(24 * time.Hour)

	matched := make([]models.JobListing, 0)
	for _, job := range jobs {
		if len(matched) == maxJobsPerAlert {
			break
		}
		if job.PostedDate.Before(since) || !alertAccepts(alert, job) {
			continue
		}
		matched = append(matched, job)
	}
	return matched
}

func alertAccepts(alert models.JobAlert, job models.JobListing) bool {
	switch {
	case !matchesQuery(job, alert.Query):
		return false
	case alert.Location != "" && !job.Remote && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(alert.Location)):
		return false
	case alert.Category != "" && !strings.EqualFold(alert.Category, job.Category):
		return false
	case alert.Remote != nil && *alert.Remote != job.Remote:
		return false
	case alert.MinSalary > 0 && job.SalaryMin() < alert.MinSalary:
		return false
	case job.AIResistanceScore < alert.MinAIScore:
		return false
	default:
		return true
	}
}
