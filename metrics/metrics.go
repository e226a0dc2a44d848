package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "list_authors"

// Environments a list can be rendered for.
const (
	EnvServer = "server"
	EnvEditor = "editor"
)

// Recorder owns a private registry so tests can create as many as they
// like. A nil *Recorder records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	renders       *prometheus.CounterVec
	renderedRows  *prometheus.HistogramVec
	countQueries  *prometheus.CounterVec
	authorQueries *prometheus.HistogramVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Author lists rendered, by environment and outcome.",
		}, []string{"environment", "outcome"}),
		renderedRows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rendered_rows",
			Help:      "Rows per rendered author list.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		}, []string{"environment"}),
		countQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "post_count_queries_total",
			Help:      "Grouped post count aggregates executed.",
		}, []string{"outcome"}),
		authorQueries: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "author_query_duration_seconds",
			Help:      "Latency of author queries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.renders,
		r.renderedRows,
		r.countQueries,
		r.authorQueries,
	)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveRender records one render. Empty lists are their own outcome.
func (r *Recorder) ObserveRender(env string, rows int, err error) {
	if r == nil {
		return
	}
	o := outcome(err)
	if err == nil && rows == 0 {
		o = "empty"
	}
	r.renders.WithLabelValues(env, o).Inc()
	if err == nil {
		r.renderedRows.WithLabelValues(env).Observe(float64(rows))
	}
}

func (r *Recorder) ObserveCountQuery(err error) {
	if r == nil {
		return
	}
	r.countQueries.WithLabelValues(outcome(err)).Inc()
}

func (r *Recorder) ObserveAuthorQuery(start time.Time, err error) {
	if r == nil {
		return
	}
	r.authorQueries.WithLabelValues(outcome(err)).Observe(time.Since(start).Seconds())
}
