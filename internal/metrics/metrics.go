package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tour",
			Name:      "registration_total",
			Help:      "Count of successful registrations by role.",
		},
		[]string{"role"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tour",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by customers.",
		},
	)

	bookingCanceled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tour",
			Name:      "booking_canceled_total",
			Help:      "Count of bookings canceled by users, by status at cancellation.",
		},
		[]string{"status"},
	)

	paymentConfirmed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tour",
			Name:      "payment_confirmed_total",
			Help:      "Count of confirmed payments.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(registrations, bookingCreated, bookingCanceled, paymentConfirmed)
	})
}

func IncRegistration(role string) {
	registrations.WithLabelValues(role).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingCanceled(status string) {
	bookingCanceled.WithLabelValues(status).Inc()
}

func IncPaymentConfirmed() {
	paymentConfirmed.Inc()
}
