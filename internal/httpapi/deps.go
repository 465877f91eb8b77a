package httpapi

import (
	"context"
	"github.com/maxaizer/irreplaceable/internal/domain/models"
	"github.com/maxaizer/irreplaceable/internal/services"
	"net/http"
)

type JobSearcher interface {
	Search(ctx context.Context, filter services.SearchFilter) (services.JobPage, error)
}

type SourceLister interface {
	GetEnabledSources() []string
}

type FeedRefresher interface {
	Refresh(ctx context.Context) (services.RefreshStats, error)
	LastStats(ctx context.Context) (*services.RefreshStats, error)
}

type SkillMatcher interface {
	SaveProfile(ctx context.Context, profile models.SkillProfile) (models.SkillProfile, error)
	GetProfile(ctx context.Context, email string) (*models.SkillProfile, error)
	MatchProfile(ctx context.Context, email string, limit int) (services.MatchReport, error)
	MatchJobs(ctx context.Context, profile models.SkillProfile, limit int) (services.MatchReport, error)
}

type AlertManager interface {
	Create(ctx context.Context, alert models.JobAlert) (models.JobAlert, error)
	ListByEmail(ctx context.Context, email string) ([]models.JobAlert, error)
	Delete(ctx context.Context, id int, email string) error
}

type ReferralManager interface {
	Create(ctx context.Context, referral models.Referral) (models.Referral, error)
	GetByCode(ctx context.Context, code string) (*models.Referral, error)
	ListByReferrer(ctx context.Context, email string) ([]models.Referral, error)
	UpdateStatus(ctx context.Context, code string, status string, referrerEmail string) (*models.Referral, error)
}

type ReviewManager interface {
	Create(ctx context.Context, review models.CompanyReview) (models.CompanyReview, error)
	ListByCompany(ctx context.Context, company string, page int) (services.ReviewPage, error)
	Summary(ctx context.Context, company string) (models.CompanyRating, error)
}

type NewsletterManager interface {
	Subscribe(ctx context.Context, email string, interests []string) (models.Subscriber, error)
	Unsubscribe(ctx context.Context, token string) error
}

type ContactSubmitter interface {
	Submit(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
}

type Deps struct {
	Jobs          JobSearcher
	Sources       SourceLister
	Refresher     FeedRefresher
	Skills        SkillMatcher
	Alerts        AlertManager
	Referrals     ReferralManager
	Reviews       ReviewManager
	Newsletter    NewsletterManager
	Contact       ContactSubmitter
	RefreshSecret string
	Metrics       http.Handler
}
