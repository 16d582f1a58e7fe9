package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "numpart"

// Prometheus implements Recorder backed by Prometheus collectors.
//
// Collectors are created and registered lazily on the first event, once.
// Registration failures (e.g. duplicate registration on a shared registry)
// leave the collectors usable but unexported; Err reports them.
type Prometheus struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once
	regErr    error

	nodes    *prometheus.CounterVec
	prunes   *prometheus.CounterVec
	yields   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	binsUsed *prometheus.GaugeVec
}

// Compile-time assertion that Prometheus implements Recorder.
var _ Recorder = (*Prometheus)(nil)

// NewPrometheus creates a Prometheus-backed Recorder.
//
// Parameters:
//   - reg: registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: metric namespace ("numpart" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &Prometheus{reg: reg, namespace: namespace}
}

func (p *Prometheus) ensureRegistered() {
	p.once.Do(func() {
		p.nodes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "nodes_total",
			Help:      "Search nodes expanded, by search kind.",
		}, []string{"search"})

		p.prunes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "prunes_total",
			Help:      "Subtrees pruned, by search kind and bound.",
		}, []string{"search", "reason"})

		p.yields = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "search",
			Name:      "yields_total",
			Help:      "Results produced, by search kind.",
		}, []string{"search"})

		p.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solve",
			Name:      "duration_seconds",
			Help:      "Wall time of finished solves, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs .. ~42s
		}, []string{"algo"})

		p.binsUsed = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "solve",
			Name:      "bins",
			Help:      "Bins in the most recent solution, by algorithm.",
		}, []string{"algo"})

		for _, c := range []prometheus.Collector{p.nodes, p.prunes, p.yields, p.duration, p.binsUsed} {
			if err := p.reg.Register(c); err != nil && p.regErr == nil {
				p.regErr = err
			}
		}
	})
}

// Err returns the first registration error, if any.
func (p *Prometheus) Err() error {
	p.ensureRegistered()

	return p.regErr
}

// RecordNode increments the node counter for search.
func (p *Prometheus) RecordNode(search string) {
	p.ensureRegistered()
	p.nodes.WithLabelValues(search).Inc()
}

// RecordPrune increments the prune counter for search and reason.
func (p *Prometheus) RecordPrune(search, reason string) {
	p.ensureRegistered()
	p.prunes.WithLabelValues(search, reason).Inc()
}

// RecordYield increments the yield counter for search.
func (p *Prometheus) RecordYield(search string) {
	p.ensureRegistered()
	p.yields.WithLabelValues(search).Inc()
}

// RecordSolve observes the solve duration and sets the bins gauge.
func (p *Prometheus) RecordSolve(algo string, seconds float64, bins int) {
	p.ensureRegistered()
	p.duration.WithLabelValues(algo).Observe(seconds)
	p.binsUsed.WithLabelValues(algo).Set(float64(bins))
}
