// Package rv implements trace-based execution of probabilistic models.
//
// A model is a plain Go function that declares random variables against a
// Trace. Running the model records every site (name, distribution, value)
// and accumulates the log-joint density as a tensor expression, so a
// model executed on a recording autodiff backend yields a differentiable
// log-joint.
//
// Inference re-runs the same model function under different trace modes:
// prior sampling, value substitution (latents pinned to guide samples or
// MCMC positions), and predictive replay (observed sites re-sampled).
//
// Example:
//
//	model := func(t *rv.Trace) {
//	    theta := t.Sample("theta", dist.NewBeta(one, one))
//	    t.Observe("x", dist.NewBernoulli(theta), xData)
//	}
//	tr := rv.Run(model, backend)
//	lj := tr.LogJoint() // scalar tensor
package rv

import (
	"fmt"

	"github.com/edda-ml/edda/internal/dist"
	"github.com/edda-ml/edda/internal/tensor"
)

// Model declares random variables against a trace.
type Model func(t *Trace)

// Site is one recorded random variable.
type Site struct {
	Name     string
	Dist     dist.Distribution
	Value    *tensor.Tensor
	Observed bool
	LogProb  *tensor.Tensor // scalar: sum over the site's batch
}

// Trace records the sites and log densities of one model execution.
type Trace struct {
	backend    tensor.Backend
	values     map[string]*tensor.Tensor // substituted latent values
	predictive bool

	sites  map[string]*Site
	order  []string
	logJnt *tensor.Tensor // scalar accumulator
	logLik *tensor.Tensor // observed-site part of the log-joint
}

// Option configures a trace run.
type Option func(t *Trace)

// WithValues pins latent sites to the given values instead of sampling.
func WithValues(values map[string]*tensor.Tensor) Option {
	return func(t *Trace) {
		for name, v := range values {
			t.values[name] = v
		}
	}
}

// Predictive makes Observe draw from the likelihood instead of
// conditioning on the passed value (posterior/prior predictive replay).
func Predictive() Option {
	return func(t *Trace) { t.predictive = true }
}

// Run executes the model under the given options and returns its trace.
func Run(m Model, backend tensor.Backend, opts ...Option) *Trace {
	t := &Trace{
		backend: backend,
		values:  make(map[string]*tensor.Tensor),
		sites:   make(map[string]*Site),
		logJnt:  tensor.Scalar(0, backend),
		logLik:  tensor.Scalar(0, backend),
	}
	for _, opt := range opts {
		opt(t)
	}
	m(t)
	return t
}

// Sample declares a latent site. If a value was pinned via WithValues it
// is used, otherwise the distribution is sampled. The site's log density
// is added to the log-joint.
func (t *Trace) Sample(name string, d dist.Distribution) *tensor.Tensor {
	t.checkFresh(name)
	value, ok := t.values[name]
	if !ok {
		value = d.Sample()
	}
	lp := d.LogProb(value).Sum()
	t.logJnt = t.logJnt.Add(lp)
	t.record(&Site{Name: name, Dist: d, Value: value, LogProb: lp})
	return value
}

// Observe declares an observed site conditioned on value. In predictive
// mode the value is ignored and the likelihood is sampled instead.
func (t *Trace) Observe(name string, d dist.Distribution, value *tensor.Tensor) *tensor.Tensor {
	t.checkFresh(name)
	if t.predictive {
		value = d.Sample()
	}
	lp := d.LogProb(value).Sum()
	t.logJnt = t.logJnt.Add(lp)
	t.logLik = t.logLik.Add(lp)
	t.record(&Site{Name: name, Dist: d, Value: value, Observed: true, LogProb: lp})
	return value
}

func (t *Trace) checkFresh(name string) {
	if _, exists := t.sites[name]; exists {
		panic(fmt.Sprintf("trace: duplicate site %q", name))
	}
}

func (t *Trace) record(s *Site) {
	t.sites[s.Name] = s
	t.order = append(t.order, s.Name)
}

// Backend returns the backend the trace runs on.
func (t *Trace) Backend() tensor.Backend { return t.backend }

// LogJoint returns the scalar log-joint density of the execution.
func (t *Trace) LogJoint() *tensor.Tensor { return t.logJnt }

// LogLikelihood returns the observed-site part of the log-joint.
func (t *Trace) LogLikelihood() *tensor.Tensor { return t.logLik }

// Value returns the value recorded at a site, or nil.
func (t *Trace) Value(name string) *tensor.Tensor {
	if s, ok := t.sites[name]; ok {
		return s.Value
	}
	return nil
}

// Site returns the recorded site, or nil.
func (t *Trace) Site(name string) *Site { return t.sites[name] }

// Sites returns all sites in declaration order.
func (t *Trace) Sites() []*Site {
	out := make([]*Site, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.sites[name])
	}
	return out
}

// LatentNames returns the names of unobserved sites in declaration order.
func (t *Trace) LatentNames() []string {
	var out []string
	for _, name := range t.order {
		if !t.sites[name].Observed {
			out = append(out, name)
		}
	}
	return out
}

// ObservedNames returns the names of observed sites in declaration order.
func (t *Trace) ObservedNames() []string {
	var out []string
	for _, name := range t.order {
		if t.sites[name].Observed {
			out = append(out, name)
		}
	}
	return out
}

// LatentValues returns a name-to-value map of the unobserved sites.
func (t *Trace) LatentValues() map[string]*tensor.Tensor {
	out := make(map[string]*tensor.Tensor)
	for _, name := range t.LatentNames() {
		out[name] = t.sites[name].Value
	}
	return out
}
