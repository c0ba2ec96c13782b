package monitoring

import "time"

// RecordRPC records one handled RPC's status code and latency.
func RecordRPC(method, code string, duration time.Duration) {
	rpcRequestsTotal.WithLabelValues(method, code).Inc()
	rpcRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func AppointmentScheduled() { appointmentsScheduledTotal.Inc() }
func AppointmentCancelled() { appointmentsCancelledTotal.Inc() }

func BloodRequestSubmitted(urgency string) {
	bloodRequestsTotal.WithLabelValues(urgency).Inc()
}

// EligibilityChecked counts a completed questionnaire.
func EligibilityChecked(eligible bool) {
	result := "not_eligible"
	if eligible {
		result = "eligible"
	}
	eligibilityChecksTotal.WithLabelValues(result).Inc()
}

func RateLimited() { rateLimitedTotal.Inc() }
