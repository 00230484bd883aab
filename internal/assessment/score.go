package assessment

import (
	"math"

	"lead-assessment-service/internal/domain"
)

// DenominatorMode selects what raw point totals are divided by.
type DenominatorMode string

const (
	// DenominatorFixed divides by a configured constant regardless of the question weights.
	DenominatorFixed DenominatorMode = "fixed"
	// DenominatorMax divides by the highest total the questionnaire can produce.
	DenominatorMax DenominatorMode = "max"
)

// DefaultFixedDenominator matches the score scale the assessment was designed around.
const DefaultFixedDenominator = 100

// Tier thresholds; both bounds belong to the lower tier.
const (
	BeginnerMaxPercentage     = 35
	IntermediateMaxPercentage = 70
)

// Scoring configures percentage normalization.
type Scoring struct {
	Mode  DenominatorMode
	Fixed int
}

// DefaultScoring divides by 100.
func DefaultScoring() Scoring {
	return Scoring{Mode: DenominatorFixed, Fixed: DefaultFixedDenominator}
}

// Denominator returns the divisor for the given questions.
func (sc Scoring) Denominator(questions []domain.Question) int {
	if sc.Mode == DenominatorMax {
		return MaxPossible(questions)
	}
	if sc.Fixed <= 0 {
		return DefaultFixedDenominator
	}
	return sc.Fixed
}

// MaxPossible sums the best option of every question.
func MaxPossible(questions []domain.Question) int {
	total := 0
	for _, q := range questions {
		total += q.MaxPoints()
	}
	return total
}

// ComputeScore sums the points of every answered option and classifies the result.
// It does not modify its inputs.
func ComputeScore(questions []domain.Question, answers map[string]string, sc Scoring) domain.ScoreResult {
	raw := 0
	for questionID, value := range answers {
		q, ok := findQuestion(questions, questionID)
		if !ok {
			continue
		}
		if opt, ok := q.Option(value); ok {
			raw += opt.Points
		}
	}

	denominator := sc.Denominator(questions)
	pct := Percentage(raw, denominator)
	return domain.ScoreResult{
		RawTotal:    raw,
		Denominator: denominator,
		Percentage:  pct,
		Tier:        ClassifyTier(pct),
	}
}

// Percentage rounds raw/denominator to a whole percent in [0, 100].
func Percentage(raw, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	pct := int(math.Round(float64(raw) * 100 / float64(denominator)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ClassifyTier maps a percentage onto a tier.
func ClassifyTier(percentage int) domain.Tier {
	switch {
	case percentage <= BeginnerMaxPercentage:
		return domain.TierBeginner
	case percentage <= IntermediateMaxPercentage:
		return domain.TierIntermediate
	default:
		return domain.TierAdvanced
	}
}
