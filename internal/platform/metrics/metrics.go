// Package metrics owns the process-wide Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry bundles the registry handed to module collectors with the
// process-level metrics registered on it.
type Registry struct {
	*prometheus.Registry

	BuildInfo *prometheus.GaugeVec
}

// NewRegistry creates a registry with Go runtime, process and build info collectors.
func NewRegistry(version string) *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		Registry: reg,
		BuildInfo: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "decision_engine_build_info",
			Help: "Build information; always 1",
		}, []string{"version"}),
	}
	r.BuildInfo.WithLabelValues(version).Set(1)
	return r
}
