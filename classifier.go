package effaudit

import (
	"context"
	"fmt"
	"log"
)

// Heuristic hits are corroborating evidence, not proof, so they never
// carry full confidence.
const heuristicConfidence = 0.70

// Confidence assigned when the oracle answers unknown and we fall
// back to a heuristic guess.
const fallbackConfidence = 0.50

const maxAlternatives = 3

// Classifier yields one final classification per code fragment by
// running the local heuristics first and consulting the oracle when
// one is configured. A nil Oracle disables the network path entirely;
// classification is then pure and deterministic.
type Classifier struct {
	Oracle Oracle
}

// Classify never returns an error: every failure mode degrades to the
// unknown classification with the reason recorded in Reasoning, so
// callers always get a displayable result.
func (c *Classifier) Classify(ctx context.Context, code string) ClassificationResult {
	patterns := DetectCodePatterns(code)
	guess, guessed := heuristicClassify(code, patterns)

	if c == nil || c.Oracle == nil {
		if guessed {
			return ClassificationResult{
				Class:      guess,
				Confidence: heuristicConfidence,
				Reasoning:  fmt.Sprintf("heuristic pattern match for %s (oracle disabled)", guess),
			}
		}
		return ClassificationResult{
			Class:     ClassUnknown,
			Reasoning: "no heuristic pattern matched and oracle is disabled",
		}
	}

	oracleResult, err := c.Oracle.Classify(ctx, code)
	if err != nil {
		log.Printf("classifier oracle error (non-fatal): %v", err)
		return ClassificationResult{
			Class:     ClassUnknown,
			Reasoning: fmt.Sprintf("oracle unavailable: %v", err),
		}
	}

	result := sanitizeClassification(oracleResult)
	if result.Class == ClassUnknown && guessed {
		return ClassificationResult{
			Class:      guess,
			Confidence: fallbackConfidence,
			Reasoning:  fmt.Sprintf("oracle returned unknown; falling back to heuristic pattern match for %s", guess),
		}
	}
	return result
}

// sanitizeClassification enforces the result invariants on whatever
// the oracle produced: the class must be one of the closed
// enumeration (anything else is coerced to unknown), confidences are
// clamped to [0,1], and alternatives are filtered to valid classes
// and capped.
func sanitizeClassification(r ClassificationResult) ClassificationResult {
	if !r.Class.Valid() {
		log.Printf("classifier coerced invalid oracle class %q to unknown", r.Class)
		r.Reasoning = fmt.Sprintf("oracle reported unrecognized class %q; %s", r.Class, r.Reasoning)
		r.Class = ClassUnknown
		r.Confidence = 0
	}
	r.Confidence = clamp01(r.Confidence)

	var alts []AlternativeClass
	for _, alt := range r.Alternatives {
		if !alt.Class.Valid() || alt.Class == ClassUnknown {
			continue
		}
		alts = append(alts, AlternativeClass{Class: alt.Class, Confidence: clamp01(alt.Confidence)})
		if len(alts) == maxAlternatives {
			break
		}
	}
	r.Alternatives = alts
	return r
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
