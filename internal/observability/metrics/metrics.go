package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters for the form-submission pipeline.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	emailsTotal      *prometheus.CounterVec
	sheetAppendTotal *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashspace",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total form submissions by outcome",
		}, []string{"outcome"}),
		emailsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashspace",
			Subsystem: "leads",
			Name:      "emails_total",
			Help:      "Total lead alert email sends by outcome",
		}, []string{"outcome"}),
		sheetAppendTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flashspace",
			Subsystem: "leads",
			Name:      "sheet_appends_total",
			Help:      "Total spreadsheet row appends by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.emailsTotal, m.sheetAppendTotal)
	return m
}

func (m *LeadMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveEmail(outcome string) {
	if m == nil {
		return
	}
	m.emailsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveSheetAppend(ok bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if ok {
		outcome = "success"
	}
	m.sheetAppendTotal.WithLabelValues(outcome).Inc()
}
