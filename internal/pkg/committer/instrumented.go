package committer

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// Applier is anything that can apply a plan.
type Applier interface {
	Apply(ctx context.Context, plan *Plan) error
}

// Instrumented counts committed writes per table and op.
type Instrumented struct {
	next   Applier
	writes *prometheus.CounterVec
	failed prometheus.Counter
}

// NewInstrumented wraps next and registers its collectors with reg.
func NewInstrumented(next Applier, reg prometheus.Registerer) *Instrumented {
	in := &Instrumented{
		next: next,
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "materials",
			Subsystem: "store",
			Name:      "writes_total",
			Help:      "Rows written by committed plans.",
		}, []string{"table", "op"}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "materials",
			Subsystem: "store",
			Name:      "failed_commits_total",
			Help:      "Plans that failed to commit.",
		}),
	}
	reg.MustRegister(in.writes, in.failed)
	return in
}

func (in *Instrumented) Apply(ctx context.Context, plan *Plan) error {
	if err := in.next.Apply(ctx, plan); err != nil {
		in.failed.Inc()
		return err
	}
	if plan == nil {
		return nil
	}
	for _, w := range plan.Writes() {
		in.writes.WithLabelValues(w.Table, string(w.Op)).Inc()
	}
	return nil
}
