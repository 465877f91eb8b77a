package httpapi

import "net/http"

func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	jh := JobsHandler{Jobs: d.Jobs, Sources: d.Sources, Refresher: d.Refresher, RefreshSecret: d.RefreshSecret}
	mux.HandleFunc("GET /api/jobs", jh.Search)
	mux.HandleFunc("GET /api/jobs/sources", jh.EnabledSources)
	mux.HandleFunc("POST /api/jobs/refresh", jh.Refresh)
	mux.HandleFunc("GET /api/jobs/refresh", jh.LastRefresh)
	mux.HandleFunc("POST /api/score", jh.Score)

	mux.HandleFunc("GET /api/careers", ListCareers)
	mux.HandleFunc("GET /api/careers/{id}", GetCareer)

	sh := SkillsHandler{Skills: d.Skills}
	mux.HandleFunc("PUT /api/skills/profile", sh.SaveProfile)
	mux.HandleFunc("GET /api/skills/profile", sh.GetProfile)
	mux.HandleFunc("POST /api/skills/match", sh.Match)

	ah := AlertsHandler{Alerts: d.Alerts}
	mux.HandleFunc("POST /api/alerts", ah.Create)
	mux.HandleFunc("GET /api/alerts", ah.List)
	mux.HandleFunc("DELETE /api/alerts/{id}", ah.Delete)

	rh := ReferralsHandler{Referrals: d.Referrals}
	mux.HandleFunc("POST /api/referrals", rh.Create)
	mux.HandleFunc("GET /api/referrals", rh.List)
	mux.HandleFunc("GET /api/referrals/{code}", rh.Get)
	mux.HandleFunc("PATCH /api/referrals/{code}", rh.UpdateStatus)

	vh := ReviewsHandler{Reviews: d.Reviews}
	mux.HandleFunc("POST /api/reviews", vh.Create)
	mux.HandleFunc("GET /api/reviews", vh.List)
	mux.HandleFunc("GET /api/reviews/summary", vh.Summary)

	nh := NewsletterHandler{Newsletter: d.Newsletter}
	mux.HandleFunc("POST /api/newsletter", nh.Subscribe)
	mux.HandleFunc("DELETE /api/newsletter/{token}", nh.Unsubscribe)

	ch := ContactHandler{Contact: d.Contact}
	mux.HandleFunc("POST /api/contact", ch.Submit)

	mux.HandleFunc("GET /healthz", Health)
	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	return Chain(mux, RequestID, Recover, AccessLog)
}
