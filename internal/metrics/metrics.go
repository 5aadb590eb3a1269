package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_registrations_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	uploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_uploads_total",
		Help: "Number of note uploads grouped by status.",
	}, []string{"status"})

	downloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_downloads_total",
		Help: "Number of file downloads grouped by status.",
	}, []string{"status"})

	likes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_likes_total",
		Help: "Number of like actions grouped by status.",
	}, []string{"status"})

	adminDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_admin_deletes_total",
		Help: "Admin deletions grouped by entity and status.",
	}, []string{"entity", "status"})

	forbidden = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_forbidden_total",
		Help: "Rejected requests grouped by guard (session or admin).",
	}, []string{"guard"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notes_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registrations.WithLabelValues(status).Inc()
}

// IncUpload increments the upload counter.
func IncUpload(status string) {
	uploads.WithLabelValues(status).Inc()
}

// IncDownload increments the download counter.
func IncDownload(status string) {
	downloads.WithLabelValues(status).Inc()
}

// IncLike increments the like counter.
func IncLike(status string) {
	likes.WithLabelValues(status).Inc()
}

// IncAdminDelete increments the admin deletion counter.
func IncAdminDelete(entity, status string) {
	adminDeletes.WithLabelValues(entity, status).Inc()
}

// IncForbidden increments the guard rejection counter.
func IncForbidden(guard string) {
	forbidden.WithLabelValues(guard).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
