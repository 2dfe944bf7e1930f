package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxgym_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "boxgym_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// BookingsTotal counts booking attempts by outcome.
	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxgym_bookings_total",
			Help: "Total number of booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boxgym_booking_cancellations_total",
			Help: "Total number of booking cancellations",
		},
	)

	SpotsAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "boxgym_slot_spots_available",
			Help: "Seats left per schedule slot as of the last schedule read",
		},
		[]string{"slot_id"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "boxgym_emails_sent_total",
			Help: "Total number of emails processed",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "boxgym_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	ContactSubmissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boxgym_contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)

	NewsletterSignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "boxgym_newsletter_signups_total",
			Help: "Total number of newsletter sign-ups",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingCancellation() {
	BookingCancellationsTotal.Inc()
}

func RecordSpotsAvailable(slotID string, spots int) {
	SpotsAvailable.WithLabelValues(slotID).Set(float64(spots))
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordContactSubmission() {
	ContactSubmissionsTotal.Inc()
}

func RecordNewsletterSignup() {
	NewsletterSignupsTotal.Inc()
}
