package httpapi

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/services"
	"github.com/stretchr/testify/mock"
)

type mockJobSearcher struct {
	mock.Mock
}

func (m *mockJobSearcher) Search(ctx context.Context, filter services.SearchFilter) (services.JobPage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(services.JobPage), args.Error(1)
}

type stubSources []string

func (s stubSources) GetEnabledSources() []string {
	return s
}

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) Refresh(ctx context.Context) (services.RefreshStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.RefreshStats), args.Error(1)
}

func (m *mockRefresher) LastStats(ctx context.Context) (*services.RefreshStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RefreshStats), args.Error(1)
}

type mockAlerts struct {
	mock.Mock
}

func (m *mockAlerts) Create(ctx context.Context, alert models.JobAlert) (models.JobAlert, error) {
	args := m.Called(ctx, alert)
	return args.Get(0).(models.JobAlert), args.Error(1)
}

func (m *mockAlerts) ListByEmail(ctx context.Context, email string) ([]models.JobAlert, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobAlert), args.Error(1)
}

func (m *mockAlerts) Delete(ctx context.Context, id int, email string) error {
	return m.Called(ctx, id, email).Error(0)
}

type mockReferrals struct {
	mock.Mock
}

func (m *mockReferrals) Create(ctx context.Context, referral models.Referral) (models.Referral, error) {
	args := m.Called(ctx, referral)
	return args.Get(0).(models.Referral), args.Error(1)
}

func (m *mockReferrals) GetByCode(ctx context.Context, code string) (*models.Referral, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Referral), args.Error(1)
}

func (m *mockReferrals) ListByReferrer(ctx context.Context, email string) ([]models.Referral, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Referral), args.Error(1)
}

func (m *mockReferrals) UpdateStatus(ctx context.Context, code string, status string, referrerEmail string) (*models.Referral, error) {
	args := m.Called(ctx, code, status, referrerEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Referral), args.Error(1)
}

type mockReviews struct {
	mock.Mock
}

func (m *mockReviews) Create(ctx context.Context, review models.CompanyReview) (models.CompanyReview, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(models.CompanyReview), args.Error(1)
}

func (m *mockReviews) ListByCompany(ctx context.Context, company string, page int) (services.ReviewPage, error) {
	args := m.Called(ctx, company, page)
	return args.Get(0).(services.ReviewPage), args.Error(1)
}

func (m *mockReviews) Summary(ctx context.Context, company string) (models.CompanyRating, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(models.CompanyRating), args.Error(1)
}

type mockNewsletter struct {
	mock.Mock
}

func (m *mockNewsletter) Subscribe(ctx context.Context, email string, interests []string) (models.Subscriber, error) {
	args := m.Called(ctx, email, interests)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *mockNewsletter) Unsubscribe(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
