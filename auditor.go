package effaudit

import (
	"context"
	"time"
)

// Auditor is the assembled surface: a classifier backed by the
// configured oracle, plus the corpus-driven self-validation loop.
type Auditor struct {
	Classifier *Classifier
	cfg        Config
}

// New assembles an Auditor from config. With oracle_provider=none the
// classifier runs on heuristics alone.
func New(cfg Config) *Auditor {
	return &Auditor{
		Classifier: &Classifier{Oracle: NewOracle(cfg)},
		cfg:        cfg,
	}
}

// NewOracle builds the configured oracle backend, or nil for
// provider "none".
func NewOracle(cfg Config) Oracle {
	timeout := time.Duration(cfg.OracleTimeout) * time.Second
	switch cfg.OracleProvider {
	case "anthropic":
		return &AnthropicOracle{APIKey: cfg.AnthropicAPIKey, Model: cfg.OracleModel, Timeout: timeout}
	case "openai":
		return &OpenAIOracle{APIKey: cfg.OpenAIAPIKey, Model: cfg.OracleModel, Timeout: timeout}
	default:
		return nil
	}
}

// AuditRequest is one fragment-plus-measurement to audit. Class may
// be set when the caller already knows what the fragment implements;
// left empty, the classifier decides from Code.
type AuditRequest struct {
	Code      string
	Class     ProblemClass
	InputSize int
	Counts    OperationCounts
	Params    BoundParams
}

// AnalyzeEfficiency classifies the fragment (unless the request pins
// a class) and audits its measured operation counts against the
// theoretical minimum. Params.N defaults to InputSize when unset.
func (a *Auditor) AnalyzeEfficiency(ctx context.Context, req AuditRequest) (EfficiencyResult, error) {
	cls := ClassificationResult{Class: req.Class, Confidence: 1, Reasoning: "class supplied by caller"}
	if req.Class == "" || !req.Class.Valid() {
		cls = a.Classifier.Classify(ctx, req.Code)
	}

	params := req.Params
	if params.N == 0 {
		params.N = req.InputSize
	}
	return CalculateEfficiency(cls, req.InputSize, selectActualOps(cls.Class, req.Counts), params)
}

// SelfValidate runs the built-in benchmark corpus through the
// auditor's classifier and returns the scorecard.
func (a *Auditor) SelfValidate(ctx context.Context) BenchmarkSummary {
	return RunBenchmark(ctx, a.Classifier, BenchmarkOptions{Concurrency: a.cfg.BenchmarkConcurrency})
}
