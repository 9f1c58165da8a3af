package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "sos"

// Значения метки result
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Metrics - счетчики запросов SOS и отправок SMS
type Metrics struct {
	Requests *prometheus.CounterVec
	Sends    *prometheus.CounterVec
}

// New создает счетчики и регистрирует их в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Number of SOS requests by result.",
		}, []string{"result"}),
		Sends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sms_sends_total",
			Help:      "Number of per-recipient SMS sends by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.Requests, m.Sends)
	return m
}

// ObserveRequest учитывает запрос с результатом result
func (m *Metrics) ObserveRequest(result string) {
	m.Requests.WithLabelValues(result).Inc()
}

// ObserveSend учитывает одну отправку получателю
func (m *Metrics) ObserveSend(err error) {
	if err != nil {
		m.Sends.WithLabelValues(ResultError).Inc()
		return
	}
	m.Sends.WithLabelValues(ResultSuccess).Inc()
}
