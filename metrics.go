package benchsample

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each collection load.
	// duration is the total time taken, err is nil if successful.
	RecordLoad(duration time.Duration, err error)

	// RecordSample is called after each sampling operation.
	// records and answers are the output cardinalities.
	RecordSample(records, answers int, duration time.Duration)

	// RecordSave is called after each collection save.
	RecordSave(duration time.Duration, err error)

	// RecordFile is called once per processed file.
	// err is nil if the file was sampled and written successfully.
	RecordFile(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(time.Duration, error)      {}
func (NoopMetricsCollector) RecordSample(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordSave(time.Duration, error)      {}
func (NoopMetricsCollector) RecordFile(time.Duration, error)      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount      atomic.Int64
	LoadErrors     atomic.Int64
	SampledRecords atomic.Int64
	SampledAnswers atomic.Int64
	SaveCount      atomic.Int64
	SaveErrors     atomic.Int64
	FileCount      atomic.Int64
	FileErrors     atomic.Int64
	FileTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordLoad(_ time.Duration, err error) {
	c.LoadCount.Add(1)
	if err != nil {
		c.LoadErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordSample(records, answers int, _ time.Duration) {
	c.SampledRecords.Add(int64(records))
	c.SampledAnswers.Add(int64(answers))
}

func (c *BasicMetricsCollector) RecordSave(_ time.Duration, err error) {
	c.SaveCount.Add(1)
	if err != nil {
		c.SaveErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordFile(d time.Duration, err error) {
	c.FileCount.Add(1)
	c.FileTotalNanos.Add(int64(d))
	if err != nil {
		c.FileErrors.Add(1)
	}
}
