package main

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/edda-ml/edda/autodiff"
	"github.com/edda-ml/edda/backend/cpu"
	"github.com/edda-ml/edda/dist"
	"github.com/edda-ml/edda/infer"
	"github.com/edda-ml/edda/nn"
	"github.com/edda-ml/edda/rv"
	"github.com/edda-ml/edda/tensor"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an experiment from a YAML config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		return runExperiment(cmd.Context(), cfg)
	},
}

func init() {
	runCmd.Flags().StringVarP(&configPath, "config", "c", "experiment.yaml", "experiment config file")
}

func runExperiment(ctx context.Context, cfg *ExperimentConfig) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	tensor.SeedRNG(cfg.Seed)
	backend := autodiff.New(cpu.New())

	logger.Info("experiment start",
		zap.String("model", cfg.Model),
		zap.String("inference", cfg.Inference),
		zap.Int64("seed", cfg.Seed))

	model, guide, params := buildModel(cfg, backend)

	if cfg.Inference == "klqp" {
		k := infer.NewKLqp(model, guide, params, backend, infer.KLqpConfig{
			Steps:  cfg.Steps,
			LR:     cfg.LR,
			Logger: logger,
		})
		result, err := k.Run(ctx)
		if err != nil {
			return err
		}
		logger.Info("experiment done",
			zap.String("run_id", result.RunID),
			zap.Float64("final_loss", result.FinalLoss()))
		return nil
	}

	var chain *infer.Chain
	switch cfg.Inference {
	case "hmc":
		chain, err = infer.NewHMC(model, backend, infer.HMCConfig{
			StepSize:   cfg.StepSize,
			NumSamples: cfg.Samples,
			BurnIn:     cfg.BurnIn,
			Logger:     logger,
		}).Run(ctx)
	case "mh":
		chain, err = infer.NewMetropolisHastings(model, backend, infer.MHConfig{
			ProposalStd: cfg.StepSize,
			NumSamples:  cfg.Samples,
			BurnIn:      cfg.BurnIn,
			Logger:      logger,
		}).Run(ctx)
	case "sgld":
		chain, err = infer.NewSGLD(model, backend, infer.SGLDConfig{
			StepSize:   cfg.StepSize,
			NumSamples: cfg.Samples,
			BurnIn:     cfg.BurnIn,
			Logger:     logger,
		}).Run(ctx)
	}
	if err != nil {
		return err
	}

	for _, name := range chain.Names() {
		mean := chain.Empirical(name).Mean()
		logger.Info("posterior",
			zap.String("run_id", chain.RunID()),
			zap.String("site", name),
			zap.Float64s("mean", mean.Data()),
			zap.Float64("accept_rate", chain.AcceptRate()))
	}
	return nil
}

// buildModel constructs the model, a mean-field normal guide and its
// parameters. Latents stay unconstrained so every sampler applies.
func buildModel(cfg *ExperimentConfig, backend *autodiff.Backend) (rv.Model, rv.Model, []*nn.Parameter) {
	switch cfg.Model {
	case "logreg":
		return buildLogreg(cfg, backend)
	default:
		return buildCoinflip(cfg, backend)
	}
}

// buildCoinflip simulates flips from a fixed coin and models the heads
// probability on the logit scale.
func buildCoinflip(cfg *ExperimentConfig, backend *autodiff.Backend) (rv.Model, rv.Model, []*nn.Parameter) {
	data := make([]float64, cfg.Flips)
	for i := range data {
		if tensor.RandUniform() < 0.7 {
			data[i] = 1
		}
	}
	x := tensor.New(tensor.FromData(data, tensor.Shape{cfg.Flips}), backend)

	zero := tensor.Zeros(tensor.Shape{1}, backend)
	two := tensor.Full(tensor.Shape{1}, 2, backend)
	model := func(t *rv.Trace) {
		logit := t.Sample("logit_p", dist.NewNormal(zero, two))
		t.Observe("x", dist.NewBernoulliLogits(logit), x)
	}

	loc := nn.NewParameter("q_loc", tensor.Zeros(tensor.Shape{1}, backend))
	logScale := nn.NewParameter("q_log_scale", tensor.Zeros(tensor.Shape{1}, backend))
	guide := func(t *rv.Trace) {
		t.Sample("logit_p", dist.NewNormal(loc.Tensor(), logScale.Tensor().Exp()))
	}
	return model, guide, []*nn.Parameter{loc, logScale}
}

// buildLogreg simulates a two-feature logistic regression.
func buildLogreg(cfg *ExperimentConfig, backend *autodiff.Backend) (rv.Model, rv.Model, []*nn.Parameter) {
	trueW := []float64{1.5, -2.0}
	fdata := make([]float64, cfg.N*2)
	ldata := make([]float64, cfg.N)
	for i := 0; i < cfg.N; i++ {
		x0, x1 := tensor.RandNormal(), tensor.RandNormal()
		fdata[i*2], fdata[i*2+1] = x0, x1
		logit := trueW[0]*x0 + trueW[1]*x1 + 0.5
		if tensor.RandUniform() < 1/(1+math.Exp(-logit)) {
			ldata[i] = 1
		}
	}
	features := tensor.New(tensor.FromData(fdata, tensor.Shape{cfg.N, 2}), backend)
	labels := tensor.New(tensor.FromData(ldata, tensor.Shape{cfg.N, 1}), backend)

	zeroW := tensor.Zeros(tensor.Shape{2, 1}, backend)
	oneW := tensor.Ones(tensor.Shape{2, 1}, backend)
	zeroB := tensor.Zeros(tensor.Shape{1, 1}, backend)
	oneB := tensor.Ones(tensor.Shape{1, 1}, backend)
	model := func(t *rv.Trace) {
		w := t.Sample("w", dist.NewNormal(zeroW, oneW))
		b := t.Sample("b", dist.NewNormal(zeroB, oneB))
		t.Observe("y", dist.NewBernoulliLogits(features.MatMul(w).Add(b)), labels)
	}

	wLoc := nn.NewParameter("qw_loc", tensor.Zeros(tensor.Shape{2, 1}, backend))
	wLogScale := nn.NewParameter("qw_log_scale", tensor.Zeros(tensor.Shape{2, 1}, backend))
	bLoc := nn.NewParameter("qb_loc", tensor.Zeros(tensor.Shape{1, 1}, backend))
	bLogScale := nn.NewParameter("qb_log_scale", tensor.Zeros(tensor.Shape{1, 1}, backend))
	guide := func(t *rv.Trace) {
		t.Sample("w", dist.NewNormal(wLoc.Tensor(), wLogScale.Tensor().Exp()))
		t.Sample("b", dist.NewNormal(bLoc.Tensor(), bLogScale.Tensor().Exp()))
	}
	return model, guide, []*nn.Parameter{wLoc, wLogScale, bLoc, bLogScale}
}
