package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	HttpLogsIngested   Counter
	LogsIngested       Counter
	ResponsesTruncated Counter
	IngestRequests     Counter
	BrokerMessages     Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "logidash",
		Name:      name,
		Help:      help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		HttpLogsIngested: NewPrometheusCounter(reg,
			"http_logs_ingested_total",
			"Number of HTTP log events stored",
			[]string{"method", "status_class"},
		),
		LogsIngested: NewPrometheusCounter(reg,
			"logs_ingested_total",
			"Number of generic log lines stored",
			[]string{"level"},
		),
		ResponsesTruncated: NewPrometheusCounter(reg,
			"responses_truncated_total",
			"Number of ingested responses cut to the storage limit",
			[]string{"kind"},
		),
		IngestRequests: NewPrometheusCounter(reg,
			"ingest_requests_total",
			"Number of ingestion requests by outcome",
			[]string{"endpoint", "status"},
		),
		BrokerMessages: NewPrometheusCounter(reg,
			"broker_messages_total",
			"Number of events published to the broker by outcome",
			[]string{"status"},
		),
	}
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

// NewTestCounters registers on a private registry so tests can build many instances.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}

// StatusClass buckets a status code as "2xx", "4xx"... and "unknown" outside 100-599.
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return string(rune('0'+code/100)) + "xx"
}
