package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/domain/events"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
)

type mockReferrals struct {
	mock.Mock
}

func (m *mockReferrals) Add(ctx context.Context, referral *models.Referral) error {
	return m.Called(ctx, referral).Error(0)
}

func (m *mockReferrals) ExistsCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockReferrals) GetByCode(ctx context.Context, code string) (*models.Referral, error) {
	args := m.Called(ctx, code)
	referral, _ := args.Get(0).(*models.Referral)
	return referral, args.Error(1)
}

func (m *mockReferrals) GetByReferrer(ctx context.Context, email string) ([]models.Referral, error) {
	args := m.Called(ctx, email)
	referrals, _ := args.Get(0).([]models.Referral)
	return referrals, args.Error(1)
}

func (m *mockReferrals) UpdateStatus(ctx context.Context, code string, status models.ReferralStatus) error {
	return m.Called(ctx, code, status).Error(0)
}

type mockReviews struct {
	mock.Mock
}

func (m *mockReviews) Add(ctx context.Context, review *models.CompanyReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviews) GetByCompany(ctx context.Context, company string, limit int, offset int) ([]models.CompanyReview, int64, error) {
	args := m.Called(ctx, company, limit, offset)
	reviews, _ := args.Get(0).([]models.CompanyReview)
	return reviews, args.Get(1).(int64), args.Error(2)
}

func (m *mockReviews) GetRating(ctx context.Context, company string) (models.CompanyRating, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(models.CompanyRating), args.Error(1)
}

type mockSubscribers struct {
	mock.Mock
}

func (m *mockSubscribers) Save(ctx context.Context, subscriber models.Subscriber) error {
	return m.Called(ctx, subscriber).Error(0)
}

func (m *mockSubscribers) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	args := m.Called(ctx, email)
	subscriber, _ := args.Get(0).(*models.Subscriber)
	return subscriber, args.Error(1)
}

func (m *mockSubscribers) RemoveByToken(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

type mockContacts struct {
	mock.Mock
}

func (m *mockContacts) Add(ctx context.Context, message *models.ContactMessage) error {
	return m.Called(ctx, message).Error(0)
}

func Test_ReferralService_Create_ShouldGenerateUniqueCode(t *testing.T) {
	repo := &mockReferrals{}
	repo.On("ExistsCode", mock.Anything, mock.Anything).Return(true, nil).Once()
	repo.On("ExistsCode", mock.Anything, mock.Anything).Return(false, nil).Once()
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)

	referral, err := NewReferralService(repo).Create(context.Background(), models.Referral{
		ReferrerEmail:  "Ann@example.com",
		CandidateEmail: "bob@example.com",
		CandidateName:  "Bob",
	})

	require.NoError(t, err)
	assert.Len(t, referral.Code, 8)
	assert.Equal(t, models.ReferralPending, referral.Status)
	assert.Equal(t, "ann@example.com", referral.ReferrerEmail)
	repo.AssertNumberOfCalls(t, "ExistsCode", 2)
}

func Test_ReferralService_Create_SelfReferral_ShouldFail(t *testing.T) {
	repo := &mockReferrals{}

	_, err := NewReferralService(repo).Create(context.Background(), models.Referral{
		ReferrerEmail:  "ann@example.com",
		CandidateEmail: "ANN@example.com",
		CandidateName:  "Ann",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func Test_ReferralService_UpdateStatus(t *testing.T) {
	stored := &models.Referral{Code: "ABCD1234", ReferrerEmail: "ann@example.com", Status: models.ReferralPending}
	repo := &mockReferrals{}
	repo.On("GetByCode", mock.Anything, "ABCD1234").Return(stored, nil)
	repo.On("GetByCode", mock.Anything, "MISSING").Return(nil, nil)
	repo.On("UpdateStatus", mock.Anything, "ABCD1234", models.ReferralHired).Return(nil)
	service := NewReferralService(repo)

	_, err := service.UpdateStatus(context.Background(), "abcd1234", "promoted", "ann@example.com")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = service.UpdateStatus(context.Background(), "missing", "hired", "ann@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.UpdateStatus(context.Background(), "abcd1234", "hired", "bob@example.com")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := service.UpdateStatus(context.Background(), "abcd1234", "hired", "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.ReferralHired, updated.Status)
}

func Test_ReviewService_Create_ShouldValidateRating(t *testing.T) {
	repo := &mockReviews{}
	service := NewReviewService(repo)

	_, err := service.Create(context.Background(), models.CompanyReview{
		Company: "Mercy", Rating: 6, Title: "t", Body: "b", AuthorEmail: "ann@example.com",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func Test_ReviewService_ListByCompany_ShouldPaginate(t *testing.T) {
	repo := &mockReviews{}
	repo.On("GetByCompany", mock.Anything, "Mercy", reviewsPageSize, reviewsPageSize).
		Return([]models.CompanyReview{{ID: 11}}, int64(21), nil)

	page, err := NewReviewService(repo).ListByCompany(context.Background(), "Mercy", 2)

	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasMore)
	assert.Len(t, page.Reviews, 1)
}

func Test_ReviewService_Summary_ShouldRoundAverage(t *testing.T) {
	repo := &mockReviews{}
	repo.On("GetRating", mock.Anything, "Mercy Health").
		Return(models.CompanyRating{Company: "Mercy Health", Average: 4.266, Count: 3}, nil)

	rating, err := NewReviewService(repo).Summary(context.Background(), "  Mercy   Health ")

	require.NoError(t, err)
	assert.Equal(t, 4.3, rating.Average)
	assert.Equal(t, int64(3), rating.Count)
}

func Test_NewsletterService_Subscribe_ShouldBeIdempotent(t *testing.T) {
	existing := &models.Subscriber{Email: "ann@example.com", UnsubscribeToken: "token-1"}
	repo := &mockSubscribers{}
	repo.On("GetByEmail", mock.Anything, "ann@example.com").Return(existing, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	subscriber, err := NewNewsletterService(repo).Subscribe(context.Background(), "ANN@example.com",
		[]string{"Healthcare", "healthcare", " "})

	require.NoError(t, err)
	assert.Equal(t, "token-1", subscriber.UnsubscribeToken)
	assert.Equal(t, []string{"healthcare"}, subscriber.Interests)
}

func Test_NewsletterService_Subscribe_NewSubscriberGetsToken(t *testing.T) {
	repo := &mockSubscribers{}
	repo.On("GetByEmail", mock.Anything, "bob@example.com").Return(nil, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	subscriber, err := NewNewsletterService(repo).Subscribe(context.Background(), "bob@example.com", nil)

	require.NoError(t, err)
	assert.NotEmpty(t, subscriber.UnsubscribeToken)
	assert.False(t, subscriber.SubscribedAt.IsZero())
}

func Test_NewsletterService_Unsubscribe(t *testing.T) {
	repo := &mockSubscribers{}
	repo.On("RemoveByToken", mock.Anything, "known").Return(true, nil)
	repo.On("RemoveByToken", mock.Anything, "unknown").Return(false, nil)
	service := NewNewsletterService(repo)

	assert.NoError(t, service.Unsubscribe(context.Background(), "known"))
	assert.ErrorIs(t, service.Unsubscribe(context.Background(), "unknown"), ErrNotFound)
}

func Test_ContactService_Submit_ShouldPublishEvent(t *testing.T) {
	bus := EventBus.New()
	repo := &mockContacts{}
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)

	var received *events.ContactReceived
	require.NoError(t, bus.Subscribe(events.ContactReceivedTopic, func(event events.ContactReceived) {
		received = &event
	}))

	_, err := NewContactService(bus, repo).Submit(context.Background(), models.ContactMessage{
		Name: "Ann", Email: "ann@example.com", Subject: "Hello", Message: "I would like to partner with you.",
	})

	require.NoError(t, err)
	require.NotNil(t, received)
	assert.Equal(t, "Hello", received.Message.Subject)
}

func Test_ContactService_Submit_RepositoryError(t *testing.T) {
	repo := &mockContacts{}
	repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := NewContactService(EventBus.New(), repo).Submit(context.Background(), models.ContactMessage{
		Name: "Ann", Email: "ann@example.com", Subject: "Hello", Message: "I would like to partner with you.",
	})

	assert.Error(t, err)
}
