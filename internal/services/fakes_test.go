package services

import (
	"context"
	"fmt"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/sources"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func listing(id, title, company string, score int) models.JobListing {
	return models.JobListing{
		ID:                id,
		Title:             title,
		Company:           company,
		AIResistanceScore: score,
		Category:          "Healthcare",
		ExperienceLevel:   models.MidLevel,
		PostedDate:        testNow.Add(-time.Hour),
		Source:            "test",
		Tags:              []string{},
		Requirements:      []string{},
	}
}

type fakeSource struct {
	name    string
	enabled bool
	delay   time.Duration
	err     error
	jobs    map[string][]models.JobListing
	calls   atomic.Int32
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) IsEnabled() bool { return f.enabled }

func (f *fakeSource) Search(ctx context.Context, query sources.Query) ([]models.JobListing, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs[query.Text], nil
}

type fakeAggregator struct {
	mu      sync.Mutex
	jobs    []models.JobListing
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (f *fakeAggregator) AggregateJobs(_ context.Context, _ []string, _ string) []models.JobListing {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
		<-f.release
	}
	return f.jobs
}

type memoryFeed struct {
	mu   sync.Mutex
	jobs []models.JobListing
	err  error
}

func (m *memoryFeed) List(_ context.Context) ([]models.JobListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.JobListing{}, m.jobs...), m.err
}

func (m *memoryFeed) ReplaceAll(_ context.Context, jobs []models.JobListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append([]models.JobListing{}, jobs...)
	return m.err
}

type memoryData struct {
	mu     sync.Mutex
	values map[string][]byte
}

func (m *memoryData) Save(_ context.Context, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string][]byte{}
	}
	m.values[id] = data
	return nil
}

func (m *memoryData) Load(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[id], nil
}

type memoryProfiles struct {
	profiles map[string]models.SkillProfile
}

func (m *memoryProfiles) Save(_ context.Context, profile models.SkillProfile) error {
	if m.profiles == nil {
		m.profiles = map[string]models.SkillProfile{}
	}
	m.profiles[profile.Email] = profile
	return nil
}

func (m *memoryProfiles) GetByEmail(_ context.Context, email string) (*models.SkillProfile, error) {
	profile, found := m.profiles[email]
	if !found {
		return nil, nil
	}
	return &profile, nil
}

type fixedCorpus []models.JobListing

func (c fixedCorpus) Corpus(_ context.Context) []models.JobListing {
	return c
}

type memoryAlerts struct {
	mu     sync.Mutex
	nextID int
	alerts map[int]models.JobAlert
}

func newMemoryAlerts() *memoryAlerts {
	return &memoryAlerts{alerts: map[int]models.JobAlert{}}
}

func (m *memoryAlerts) Add(_ context.Context, alert *models.JobAlert) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	alert.ID = m.nextID
	m.alerts[alert.ID] = *alert
	return nil
}

func (m *memoryAlerts) GetByEmail(_ context.Context, email string) ([]models.JobAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var alerts []models.JobAlert
	for _, alert := range m.sorted() {
		if alert.Email == email {
			alerts = append(alerts, alert)
		}
	}
	return alerts, nil
}

func (m *memoryAlerts) GetByID(_ context.Context, id int) (*models.JobAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	alert, found := m.alerts[id]
	if !found {
		return nil, nil
	}
	return &alert, nil
}

func (m *memoryAlerts) GetActive(_ context.Context, limit int, offset int) ([]models.JobAlert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var active []models.JobAlert
	for _, alert := range m.sorted() {
		if alert.Active {
			active = append(active, alert)
		}
	}
	if offset >= len(active) {
		return nil, nil
	}
	return active[offset:min(offset+limit, len(active))], nil
}

func (m *memoryAlerts) UpdateLastNotified(_ context.Context, id int, notifiedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	alert, found := m.alerts[id]
	if !found {
		return fmt.Errorf("alert %d not found", id)
	}
	alert.LastNotifiedAt = &notifiedAt
	m.alerts[id] = alert
	return nil
}

func (m *memoryAlerts) Remove(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.alerts, id)
	return nil
}

func (m *memoryAlerts) sorted() []models.JobAlert {
	alerts := make([]models.JobAlert, 0, len(m.alerts))
	for _, alert := range m.alerts {
		alerts = append(alerts, alert)
	}
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].ID < alerts[j].ID })
	return alerts
}
