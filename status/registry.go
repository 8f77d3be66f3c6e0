package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry groups counters and gauges written by the simulation and read by the host
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Reset zeroes every registered metric without unregistering it
func (r *Registry) Reset() {
	r.Ints.Range(func(_ string, v *atomic.Int64) { v.Store(0) })
	r.Floats.Range(func(_ string, v *AtomicFloat) { v.Set(0) })
}

// Format renders "key=value" pairs in key order, ints first
func (r *Registry) Format() string {
	var b strings.Builder
	r.Ints.Range(func(k string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", k, v.Load())
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%.2f", k, v.Get())
	})
	return b.String()
}

// SumInts totals every integer metric whose key starts with prefix
func (r *Registry) SumInts(prefix string) int64 {
	var total int64
	r.Ints.Range(func(k string, v *atomic.Int64) {
		if strings.HasPrefix(k, prefix) {
			total += v.Load()
		}
	})
	return total
}
