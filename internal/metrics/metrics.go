// Package metrics exposes storage counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "procurement"

const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultSkipped = "skipped"
)

// Storage counts collection reads and writes.
type Storage struct {
	operations   *prometheus.CounterVec
	readFailures *prometheus.CounterVec
}

// NewStorage registers the storage collectors on reg. A nil reg leaves them unregistered,
// which is what tests want when several stores live in one process.
func NewStorage(reg prometheus.Registerer) *Storage {
	s := &Storage{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Collection reads and writes by outcome.",
		}, []string{"op", "collection", "result"}),
		readFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "read_failures_total",
			Help:      "Collections that could not be read or decoded and were served empty.",
		}, []string{"collection"}),
	}
	if reg != nil {
		reg.MustRegister(s.operations, s.readFailures)
	}
	return s
}

func (s *Storage) Read(collection, result string) {
	if s == nil {
		return
	}
	s.operations.WithLabelValues("read", collection, result).Inc()
	if result == ResultError {
		s.readFailures.WithLabelValues(collection).Inc()
	}
}

func (s *Storage) Write(collection, result string) {
	if s == nil {
		return
	}
	s.operations.WithLabelValues("write", collection, result).Inc()
}

// Operations is exported for tests and the dashboard.
func (s *Storage) Operations() *prometheus.CounterVec { return s.operations }

func (s *Storage) ReadFailures() *prometheus.CounterVec { return s.readFailures }
