package middlewares

import (
	"freeslot-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit limits every client IP to App.MaxRequests per second.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(constvars.ErrDevRequestLimitExceeded))
		}),
	)
}

// SubmitEmailRateLimiter builds the per-IP limiter guarding the webhook backed form.
func (m *Middlewares) SubmitEmailRateLimiter() *RateLimiter {
	app := m.InternalConfig.App
	return NewRateLimiter(
		app.SubmitEmailMaxRequests,
		time.Duration(app.SubmitEmailPerSeconds)*time.Second,
		time.Duration(app.SubmitEmailBlockInSeconds)*time.Second,
		constvars.TextTooManySubmissions,
	)
}
