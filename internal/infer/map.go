package infer

import (
	"sort"

	"github.com/edda-ml/edda/internal/autodiff"
	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/nn"
	"github.com/edda-ml/edda/internal/rv"
)

// NewMAP creates maximum-a-posteriori estimation as KLqp with an
// auto-built PointMass guide: each latent site named in points is pinned
// to its parameter tensor, so the negative ELBO reduces to the negative
// log-joint at the point and gradient steps climb the posterior density.
//
// Example:
//
//	theta := nn.NewParameter("theta", tensor.Zeros(shape, backend))
//	m := infer.NewMAP(model, map[string]*nn.Parameter{"theta": theta}, backend, cfg)
//	result, err := m.Run(ctx)
func NewMAP(model rv.Model, points map[string]*nn.Parameter, backend *autodiff.Backend, config KLqpConfig) *KLqp {
	names := make([]string, 0, len(points))
	for name := range points {
		names = append(names, name)
	}
	sort.Strings(names)

	params := make([]*nn.Parameter, 0, len(names))
	for _, name := range names {
		params = append(params, points[name])
	}

	guide := func(t *rv.Trace) {
		for _, name := range names {
			t.Sample(name, dist.NewPointMass(points[name].Tensor()))
		}
	}
	return NewKLqp(model, guide, params, backend, config)
}
