package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/irreplaceable/internal/bot"
	"github.com/maxaizer/irreplaceable/internal/clients/adzuna"
	"github.com/maxaizer/irreplaceable/internal/clients/hh"
	"github.com/maxaizer/irreplaceable/internal/clients/jsearch"
	"github.com/maxaizer/irreplaceable/internal/config"
	"github.com/maxaizer/irreplaceable/internal/httpapi"
	"github.com/maxaizer/irreplaceable/internal/logger"
	"github.com/maxaizer/irreplaceable/internal/metrics"
	"github.com/maxaizer/irreplaceable/internal/notify"
	"github.com/maxaizer/irreplaceable/internal/repositories"
	"github.com/maxaizer/irreplaceable/internal/services"
	"github.com/maxaizer/irreplaceable/internal/sources"
	log "github.com/sirupsen/logrus"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

var adzunaCurrencies = map[string]string{
	"us": "USD",
	"gb": "GBP",
	"ca": "CAD",
	"au": "AUD",
	"de": "EUR",
	"fr": "EUR",
	"nl": "EUR",
}

func buildSources(cfg config.SourcesConfig) []sources.Source {

	adzunaClient := adzuna.NewClient(cfg.Adzuna.AppID, cfg.Adzuna.AppKey, cfg.Adzuna.Country)
	adzunaClient.SetRateLimit(cfg.Adzuna.MaxRequestsPerSecond)
	currency, ok := adzunaCurrencies[strings.ToLower(cfg.Adzuna.Country)]
	if !ok {
		currency = "USD"
	}

	jsearchClient := jsearch.NewClient(cfg.JSearch.APIKey, cfg.JSearch.Host)
	jsearchClient.SetRateLimit(cfg.JSearch.MaxRequestsPerSecond)

	hhClient := hh.NewClient()
	hhClient.SetRateLimit(cfg.HH.MaxRequestsPerSecond)

	return []sources.Source{
		sources.NewAdzuna(adzunaClient, currency),
		sources.NewJSearch(jsearchClient),
		sources.NewHH(hhClient, cfg.HH.Enabled, cfg.HH.AreaID),
	}
}

func runTelegram(cfg config.NotifierConfig, bus EventBus.Bus, alerts *services.AlertService,
	data *repositories.Data) (stop func()) {

	if _, err := notify.NewLogNotifier(bus); err != nil {
		log.Fatalf("can't create log notifier: %v", err)
	}

	if cfg.TelegramToken == "" {
		log.Info("telegram token is not set, telegram notifications are disabled")
		return func() {}
	}

	if _, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.AdminChatID, bus); err != nil {
		log.Fatalf("can't create telegram notifier: %v", err)
	}

	tgbot, err := bot.NewBot(cfg.TelegramToken, alerts, data)
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run()
	return tgbot.Stop
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(ctx, cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if err = dbContext.Migrate(); err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)
	data := repositories.NewDataRepository(dbContext.DB)
	profiles := repositories.NewCachedSkillProfiles(repositories.NewSkillProfilesRepository(dbContext.DB))
	alerts := repositories.NewAlertsRepository(dbContext.DB)
	referrals := repositories.NewReferralsRepository(dbContext.DB)
	reviews := repositories.NewReviewsRepository(dbContext.DB)
	subscribers := repositories.NewSubscribersRepository(dbContext.DB)
	contacts := repositories.NewContactsRepository(dbContext.DB)

	bus := EventBus.New()

	aggregator := services.NewAggregator(buildSources(cfg.Sources), cfg.Sources.MaxConcurrency, cfg.Sources.Timeout)
	log.Infof("enabled job sources: %v", aggregator.GetEnabledSources())

	search := services.NewJobSearchService(jobs, aggregator, cfg.Search)

	refresher, err := services.NewJobsRefresher(bus, aggregator, jobs, data, cfg.Refresh)
	if err != nil {
		log.Fatalf("can't create jobs refresher: %v", err)
	}

	cleaner, err := services.NewFeedCleaner(jobs, cfg.Refresh.ExpirationDays)
	if err != nil {
		log.Fatalf("can't create feed cleaner: %v", err)
	}

	alertService, err := services.NewAlertService(bus, alerts)
	if err != nil {
		log.Fatalf("can't create alert service: %v", err)
	}

	stopTelegram := runTelegram(cfg.Notifier, bus, alertService, data)

	router := httpapi.NewRouter(httpapi.Deps{
		Jobs:          search,
		Sources:       aggregator,
		Refresher:     refresher,
		Skills:        services.NewSkillMatchService(profiles, search),
		Alerts:        alertService,
		Referrals:     services.NewReferralService(referrals),
		Reviews:       services.NewReviewService(reviews),
		Newsletter:    services.NewNewsletterService(subscribers),
		Contact:       services.NewContactService(bus, contacts),
		RefreshSecret: cfg.Server.RefreshSecret,
		Metrics:       metrics.Handler(),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	refresher.Start()
	cleaner.Start()

	go func() {
		log.Infof("http server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
	refresher.Stop()
	cleaner.Stop()
	stopTelegram()
	log.Info("Services stopped.")
}
